package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"phrasebook/app"
	"phrasebook/middleware"
	"phrasebook/models"
	"phrasebook/services"
)

// Register creates a new user account
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, token, err := a.AuthService.Register(req)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				return conflict(c, "Email is already registered")
			}
			return serverErrorWithDetails(c, "Failed to register user", err)
		}

		return created(c, fiber.Map{"user": user, "token": token})
	}
}

// Login authenticates a user and issues a token
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, token, err := a.AuthService.Login(req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return unauthorized(c, "Invalid email or password")
			}
			return serverErrorWithDetails(c, "Failed to log in", err)
		}

		return success(c, fiber.Map{"user": user, "token": token})
	}
}

// Me returns the authenticated user's record
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		user, err := a.AuthService.Me(userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return notFound(c, "User not found")
			}
			return serverErrorWithDetails(c, "Failed to fetch user", err)
		}

		return success(c, fiber.Map{"user": user})
	}
}
