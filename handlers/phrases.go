package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phrasebook/app"
	"phrasebook/models"
	"phrasebook/services"
)

// GetPhrases retrieves every phrase
func GetPhrases(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		phrases, err := a.PhraseService.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch phrases", err)
		}

		return success(c, fiber.Map{"phrases": phrases})
	}
}

// CreatePhrase adds a new phrase
func CreatePhrase(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePhraseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		phrase, err := a.PhraseService.Create(req)
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				return badRequest(c, "Category not found")
			}
			return serverErrorWithDetails(c, "Failed to create phrase", err)
		}

		return created(c, fiber.Map{"phrase": phrase})
	}
}

// UpdatePhrase merges the given fields into an existing phrase
func UpdatePhrase(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		phraseID := c.Params("id")
		if phraseID == "" {
			return badRequest(c, "phrase ID is required")
		}

		var req models.UpdatePhraseRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.PhraseService.Update(phraseID, req); err != nil {
			if errors.Is(err, services.ErrPhraseNotFound) {
				return notFound(c, "Phrase not found")
			}
			if errors.Is(err, services.ErrCategoryNotFound) {
				return badRequest(c, "Category not found")
			}
			if errors.Is(err, services.ErrPhraseTextEmpty) {
				return badRequest(c, "Phrase text cannot be empty")
			}
			return serverErrorWithDetails(c, "Failed to update phrase", err)
		}

		return success(c, fiber.Map{"message": "Phrase updated successfully"})
	}
}

// DeletePhrase removes a phrase; deleting an absent id succeeds
func DeletePhrase(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		phraseID := c.Params("id")
		if phraseID == "" {
			return badRequest(c, "phrase ID is required")
		}

		if err := a.PhraseService.Delete(phraseID); err != nil {
			return serverErrorWithDetails(c, "Failed to delete phrase", err)
		}

		return success(c, fiber.Map{"message": "Phrase deleted"})
	}
}

// SearchPhrases retrieves phrases matching the q parameter
func SearchPhrases(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		phrases, err := a.PhraseService.Search(c.Query("q"))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to search phrases", err)
		}

		return success(c, fiber.Map{"phrases": phrases})
	}
}
