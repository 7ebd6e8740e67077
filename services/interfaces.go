package services

import (
	"time"

	"phrasebook/models"
)

// CategoryRepository defines the data access needed by CategoryService
type CategoryRepository interface {
	GetCategories() ([]models.Category, error)
	GetCategoryByID(categoryID string) (*models.Category, error)
	GetCategoryByTitle(title string) (*models.Category, error)
	CountCategories() (int, error)
	CountPhrases() (int, error)
	CreateCategory(cat *models.Category) error
	CreatePhrase(p *models.Phrase) error
	DeleteCategoryCascade(categoryID, title string) error
}

// PhraseRepository defines the data access needed by PhraseService
type PhraseRepository interface {
	GetPhrases() ([]models.Phrase, error)
	GetPhraseByID(phraseID string) (*models.Phrase, error)
	GetPhrasesByCategoryID(categoryID string) ([]models.Phrase, error)
	SearchPhrases(query string) ([]models.Phrase, error)
	GetCategoryByID(categoryID string) (*models.Category, error)
	CreatePhrase(p *models.Phrase) error
	UpdatePhrase(phraseID string, req models.UpdatePhraseRequest) (int64, error)
	DeletePhrase(phraseID string) error
}

// FavoriteRepository defines the data access needed by FavoriteService
type FavoriteRepository interface {
	GetFavoritesByUser(userID string) ([]models.Favorite, error)
	CreateFavorite(fav *models.Favorite) error
	CreateFavorites(favorites []models.Favorite) error
	DeleteFavorite(favoriteID string) (int64, error)
	DeleteFavoritesByUserAndCategory(userID, category string) error
	GetPhraseByID(phraseID string) (*models.Phrase, error)
	GetPhrasesByCategoryID(categoryID string) ([]models.Phrase, error)
	GetCategoryByID(categoryID string) (*models.Category, error)
}

// UserRepository defines the data access needed by AuthService
type UserRepository interface {
	GetUser(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateLastLogin(userID string, t time.Time) error
}

// HistoryRepository defines the data access needed by HistoryService
type HistoryRepository interface {
	CreateHistory(h *models.History) error
	GetHistoryByUser(userID string, limit int) ([]models.History, error)
}
