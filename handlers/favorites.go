package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phrasebook/app"
	"phrasebook/middleware"
	"phrasebook/models"
	"phrasebook/services"
)

// GetFavorites retrieves the authenticated user's favorites
func GetFavorites(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		favorites, err := a.FavoriteService.ListForUser(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch favorites", err)
		}

		return success(c, fiber.Map{"favorites": favorites})
	}
}

// AddFavorite favorites a phrase for the authenticated user
func AddFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AddFavoriteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		fav, err := a.FavoriteService.Add(userID, req.PhraseID)
		if err != nil {
			if errors.Is(err, services.ErrPhraseNotFound) {
				return notFound(c, "Phrase not found")
			}
			return serverErrorWithDetails(c, "Failed to add favorite", err)
		}

		return created(c, fiber.Map{"favorite": fav})
	}
}

// RemoveFavorite deletes a favorite by its record id
func RemoveFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		favoriteID := c.Params("id")
		if favoriteID == "" {
			return badRequest(c, "favorite ID is required")
		}

		if err := a.FavoriteService.Remove(favoriteID); err != nil {
			if errors.Is(err, services.ErrFavoriteNotFound) {
				return notFound(c, "Favorite not found")
			}
			return serverErrorWithDetails(c, "Failed to remove favorite", err)
		}

		return success(c, fiber.Map{"message": "Favorite removed"})
	}
}

// GetFavoritesGrouped returns the user's favorites bucketed by category
func GetFavoritesGrouped(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		groups, err := a.FavoriteService.GroupedByCategory(userID)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch grouped favorites", err)
		}

		return success(c, fiber.Map{"groups": groups})
	}
}

// GetFavoriteStatus reports which of the posted phrase ids are favorited
func GetFavoriteStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.FavoriteStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		status, err := a.FavoriteService.StatusFor(userID, req.PhraseIDs)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch favorite status", err)
		}

		return success(c, fiber.Map{"status": status})
	}
}

// ToggleAllFavorites favorites or unfavorites a whole category at once
func ToggleAllFavorites(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ToggleAllFavoritesRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		if err := a.FavoriteService.ToggleAllInCategory(userID, req.CategoryID, req.AllFavorited); err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				return notFound(c, "Category not found")
			}
			return serverErrorWithDetails(c, "Failed to toggle favorites", err)
		}

		return success(c, fiber.Map{"message": "Favorites updated"})
	}
}
