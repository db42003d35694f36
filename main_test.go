package main

import (
	"context"
	"log/slog"
	"testing"

	"sleep-tracker/config"

	"github.com/stretchr/testify/assert"
)

func TestGetLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for level, want := range tests {
		config.AppConfig = &config.Config{LogLevel: level}
		assert.Equal(t, want, getLogLevel(), level)
	}
}

func TestSetupLogger(t *testing.T) {
	config.AppConfig = &config.Config{Env: "production", LogLevel: "warn"}
	logger := setupLogger()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}
