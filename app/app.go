package app

import (
	"log/slog"
	"time"

	"phrasebook/database"
	"phrasebook/services"
	"phrasebook/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo            *database.Repository
	AuthService     *services.AuthService
	CategoryService *services.CategoryService
	PhraseService   *services.PhraseService
	FavoriteService *services.FavoriteService
	HistoryService  *services.HistoryService
	Validator       *validator.Validator
	Logger          *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, jwtSecret string, tokenTTL time.Duration, logger *slog.Logger) *App {
	return &App{
		Repo:            repo,
		AuthService:     services.NewAuthService(repo, jwtSecret, tokenTTL),
		CategoryService: services.NewCategoryService(repo),
		PhraseService:   services.NewPhraseService(repo),
		FavoriteService: services.NewFavoriteService(repo),
		HistoryService:  services.NewHistoryService(repo),
		Validator:       validator.New(),
		Logger:          logger,
	}
}
