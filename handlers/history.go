package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phrasebook/app"
	"phrasebook/middleware"
	"phrasebook/models"
	"phrasebook/services"
)

// RecordHistory stores one phrase interaction for the authenticated user
func RecordHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RecordHistoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		entry, err := a.HistoryService.Record(userID, req.PhraseID, req.Action)
		if err != nil {
			if errors.Is(err, services.ErrInvalidHistoryAction) {
				return badRequest(c, "Unknown history action")
			}
			return serverErrorWithDetails(c, "Failed to record history", err)
		}

		return created(c, fiber.Map{"history": entry})
	}
}

// GetHistory retrieves the authenticated user's history
func GetHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)
		limit := c.QueryInt("limit", 50)

		entries, err := a.HistoryService.ListForUser(userID, limit)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch history", err)
		}

		return success(c, fiber.Map{"history": entries})
	}
}
