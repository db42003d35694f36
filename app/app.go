package app

import (
	"log/slog"

	"sleep-tracker/services"
	"sleep-tracker/validator"
)

// App holds all application dependencies
type App struct {
	Tracker   *services.SleepTrackerService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(tracker *services.SleepTrackerService, logger *slog.Logger) *App {
	return &App{
		Tracker:   tracker,
		Validator: validator.New(),
		Logger:    logger,
	}
}
