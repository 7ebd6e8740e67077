package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phrasebook/app"
	"phrasebook/models"
	"phrasebook/services"
)

// GetCategories retrieves all categories, seeding defaults on first use
func GetCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.CategoryService.List()
		if err != nil {
			if errors.Is(err, services.ErrSeedingFailed) {
				return serverErrorWithDetails(c, "Failed to seed default categories", err)
			}
			return serverErrorWithDetails(c, "Failed to fetch categories", err)
		}

		return success(c, fiber.Map{"categories": categories})
	}
}

// CreateCategory creates a new category
func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		cat, err := a.CategoryService.Create(req.Title, req.Icon)
		if err != nil {
			if errors.Is(err, services.ErrCategoryAlreadyExists) {
				return conflict(c, "Category with this title already exists")
			}
			return serverErrorWithDetails(c, "Failed to create category", err)
		}

		return created(c, fiber.Map{"category": cat})
	}
}

// DeleteCategory removes a category, all of its phrases, and the
// favorites that carried its title
func DeleteCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID := c.Params("id")
		if categoryID == "" {
			return badRequest(c, "category ID is required")
		}

		if err := a.CategoryService.Delete(categoryID); err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				return notFound(c, "Category not found")
			}
			return serverErrorWithDetails(c, "Failed to delete category", err)
		}

		return success(c, fiber.Map{"message": "Category and its phrases deleted"})
	}
}

// GetPhrasesByCategory retrieves all phrases in a category
func GetPhrasesByCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID := c.Params("id")
		if categoryID == "" {
			return badRequest(c, "category ID is required")
		}

		phrases, err := a.PhraseService.ListByCategory(categoryID)
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				return notFound(c, "Category not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch phrases", err)
		}

		return success(c, fiber.Map{"phrases": phrases})
	}
}
