package services

import "errors"

// Common service-level errors
var (
	ErrNightNotFound     = errors.New("night not found")
	ErrNightInProgress   = errors.New("a night is already being tracked")
	ErrNoNightInProgress = errors.New("no night is being tracked")
	ErrInvalidQuality    = errors.New("invalid sleep quality")
)
