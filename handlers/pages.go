package handlers

import (
	"time"

	"sleep-tracker/app"
	"sleep-tracker/models"

	"github.com/gofiber/fiber/v2"
)

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ServerTime reports the current time in the requested timezone, UTC by default
func ServerTime(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var query models.TimeQuery
		if err := c.QueryParser(&query); err != nil {
			return badRequest(c, "Invalid query parameters")
		}

		if err := a.Validator.Validate(&query); err != nil {
			return validationError(c, err)
		}

		timezone := query.Timezone
		if timezone == "" {
			timezone = "UTC"
		}

		// Already checked by the timezone validator
		loc, _ := time.LoadLocation(timezone)
		now := time.Now().In(loc)

		return c.JSON(fiber.Map{
			"timestamp": now.Unix(),
			"timezone":  timezone,
			"iso":       now.Format(time.RFC3339),
		})
	}
}
