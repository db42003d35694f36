package handlers

import (
	"errors"

	"sleep-tracker/app"
	"sleep-tracker/models"
	"sleep-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func nightResponses(nights []models.SleepNight) []models.NightResponse {
	out := make([]models.NightResponse, 0, len(nights))
	for _, n := range nights {
		out = append(out, models.NewNightResponse(n))
	}
	return out
}

func nightPayload(night *models.SleepNight) fiber.Map {
	if night == nil {
		return fiber.Map{"night": nil}
	}
	return fiber.Map{"night": models.NewNightResponse(*night)}
}

// trackerError maps service errors onto HTTP statuses
func trackerError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrNightNotFound):
		return notFound(c, "Night not found")
	case errors.Is(err, services.ErrNightInProgress):
		return conflict(c, "A night is already being tracked")
	case errors.Is(err, services.ErrNoNightInProgress):
		return conflict(c, "No night is being tracked")
	case errors.Is(err, services.ErrInvalidQuality):
		return badRequest(c, "Invalid sleep quality")
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

func nightID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, false
	}
	return int64(id), true
}

// ListNights returns the whole sleep history, newest first
func ListNights(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		nights, err := a.Tracker.Nights()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch nights", err)
		}

		return success(c, fiber.Map{
			"nights": nightResponses(nights),
			"count":  len(nights),
		})
	}
}

// GetTonight returns the most recent night, null if nothing was tracked yet
func GetTonight(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tonight, err := a.Tracker.Tonight()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch tonight", err)
		}
		return success(c, nightPayload(tonight))
	}
}

func GetNight(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := nightID(c)
		if !ok {
			return badRequest(c, "Invalid night id")
		}

		night, err := a.Tracker.Night(id)
		if err != nil {
			return trackerError(c, err, "Failed to fetch night")
		}
		return success(c, nightPayload(night))
	}
}

func StartTracking(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		night, err := a.Tracker.StartTracking()
		if err != nil {
			return trackerError(c, err, "Failed to start tracking")
		}

		a.Logger.Info("sleep tracking started", "night_id", night.NightID)
		return created(c, nightPayload(night))
	}
}

func StopTracking(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		night, err := a.Tracker.StopTracking()
		if err != nil {
			return trackerError(c, err, "Failed to stop tracking")
		}

		a.Logger.Info("sleep tracking stopped", "night_id", night.NightID, "duration", night.Duration())
		return success(c, nightPayload(night))
	}
}

func SetQuality(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := nightID(c)
		if !ok {
			return badRequest(c, "Invalid night id")
		}

		var req models.SetQualityRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		night, err := a.Tracker.SetQuality(id, *req.Quality)
		if err != nil {
			return trackerError(c, err, "Failed to save sleep quality")
		}
		return success(c, nightPayload(night))
	}
}

// ClearNights wipes the sleep history
func ClearNights(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Tracker.Clear(); err != nil {
			return serverErrorWithDetails(c, "Failed to clear nights", err)
		}

		a.Logger.Info("sleep history cleared")
		return success(c, fiber.Map{"message": "Sleep history cleared"})
	}
}
