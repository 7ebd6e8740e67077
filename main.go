package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"phrasebook/app"
	"phrasebook/config"
	"phrasebook/database"
	"phrasebook/handlers"
	"phrasebook/middleware"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	// Initialize SQLite database
	db, err := database.New(config.AppConfig.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database initialized", "path", config.AppConfig.DBPath)

	repo := database.NewRepository(db)
	application := app.New(repo, config.AppConfig.JWTSecret, 30*24*time.Hour, logger)

	srv := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
		ReadBufferSize:        8192,
	})

	srv.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins:     config.GetEnv("CORS_ORIGINS", "*"),
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
			AllowCredentials: false,
			MaxAge:           86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	srv.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	srv.Post("/api/auth/register", handlers.Register(application))
	srv.Post("/api/auth/login", handlers.Login(application))

	api := srv.Group("/api", middleware.AuthRequired(config.AppConfig.JWTSecret), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("userID").(string); ok {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	api.Get("/auth/me", handlers.Me(application))

	api.Get("/categories", handlers.GetCategories(application))
	api.Post("/categories", handlers.CreateCategory(application))
	api.Delete("/categories/:id", handlers.DeleteCategory(application))
	api.Get("/categories/:id/phrases", handlers.GetPhrasesByCategory(application))

	api.Get("/phrases", handlers.GetPhrases(application))
	api.Get("/phrases/search", handlers.SearchPhrases(application))
	api.Post("/phrases", handlers.CreatePhrase(application))
	api.Put("/phrases/:id", handlers.UpdatePhrase(application))
	api.Delete("/phrases/:id", handlers.DeletePhrase(application))

	api.Get("/favorites", handlers.GetFavorites(application))
	api.Get("/favorites/grouped", handlers.GetFavoritesGrouped(application))
	api.Post("/favorites", handlers.AddFavorite(application))
	api.Post("/favorites/status", handlers.GetFavoriteStatus(application))
	api.Post("/favorites/toggle-all", handlers.ToggleAllFavorites(application))
	api.Delete("/favorites/:id", handlers.RemoveFavorite(application))

	api.Get("/history", handlers.GetHistory(application))
	api.Post("/history", handlers.RecordHistory(application))

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := srv.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
