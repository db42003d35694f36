package validator

import (
	"testing"

	"sleep-tracker/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestValidator_SetQuality(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.SetQualityRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Lowest rating",
			req:       models.SetQualityRequest{Quality: intPtr(0)},
			wantError: false,
		},
		{
			name:      "Highest rating",
			req:       models.SetQualityRequest{Quality: intPtr(5)},
			wantError: false,
		},
		{
			name:      "Missing quality",
			req:       models.SetQualityRequest{},
			wantError: true,
			errorMsg:  "quality is required",
		},
		{
			name:      "Unrated marker is rejected",
			req:       models.SetQualityRequest{Quality: intPtr(-1)},
			wantError: true,
			errorMsg:  "quality must be between 0 and 5",
		},
		{
			name:      "Above range",
			req:       models.SetQualityRequest{Quality: intPtr(6)},
			wantError: true,
			errorMsg:  "quality must be between 0 and 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Timezone(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&models.TimeQuery{}))
	assert.NoError(t, v.Validate(&models.TimeQuery{Timezone: "UTC"}))
	assert.NoError(t, v.Validate(&models.TimeQuery{Timezone: "Europe/Berlin"}))

	err := v.Validate(&models.TimeQuery{Timezone: "Mars/Olympus_Mons"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timezone must be a valid timezone")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "quality", Message: "quality is required", Tag: "required"},
		{Field: "timezone", Message: "timezone must be a valid timezone", Tag: "timezone"},
	}

	errMsg := errs.Error()
	assert.Contains(t, errMsg, "quality is required")
	assert.Contains(t, errMsg, "timezone must be a valid timezone")
}
