package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATA_DIR", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	Load()

	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Env)
	assert.Equal(t, "./data", AppConfig.DataDir)
	assert.Equal(t, "info", AppConfig.LogLevel)
	assert.Equal(t, "*", AppConfig.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("DATA_DIR", "/var/lib/sleep")

	Load()

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "production", AppConfig.Env)
	assert.Equal(t, "/var/lib/sleep", AppConfig.DataDir)
}
