package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

type Phrase struct {
	ID            string `json:"id"`
	CategoryID    string `json:"category_id"`
	English       string `json:"english"`
	Vietnamese    string `json:"vietnamese"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

// Favorite links a user to a phrase. Category holds the title of the
// phrase's category as it was when the favorite was created; it is not
// kept in sync if the phrase moves to another category later.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PhraseID  string    `json:"phrase_id"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// History actions
const (
	HistoryActionView     = "view"
	HistoryActionSearch   = "search"
	HistoryActionFavorite = "favorite"
)

type History struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PhraseID  string    `json:"phrase_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

// FavoriteGroup is one bucket of the grouped favorites view: a category
// title plus the still-existing favorited phrases under it.
type FavoriteGroup struct {
	Category string   `json:"category"`
	Phrases  []Phrase `json:"phrases"`
}

// ==================== REQUEST TYPES ====================

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCategoryRequest struct {
	Title string `json:"title" validate:"required,categorytitle,max=100"`
	Icon  string `json:"icon" validate:"omitempty,iconname"`
}

type CreatePhraseRequest struct {
	CategoryID    string `json:"category_id" validate:"required"`
	English       string `json:"english" validate:"required,max=500"`
	Vietnamese    string `json:"vietnamese" validate:"required,max=500"`
	Pronunciation string `json:"pronunciation" validate:"max=500"`
}

// UpdatePhraseRequest carries a partial update; nil fields are left
// untouched on the stored record.
type UpdatePhraseRequest struct {
	CategoryID    *string `json:"category_id,omitempty"`
	English       *string `json:"english,omitempty" validate:"omitempty,max=500"`
	Vietnamese    *string `json:"vietnamese,omitempty" validate:"omitempty,max=500"`
	Pronunciation *string `json:"pronunciation,omitempty" validate:"omitempty,max=500"`
}

type AddFavoriteRequest struct {
	PhraseID string `json:"phrase_id" validate:"required"`
}

type FavoriteStatusRequest struct {
	PhraseIDs []string `json:"phrase_ids" validate:"required"`
}

type ToggleAllFavoritesRequest struct {
	CategoryID string `json:"category_id" validate:"required"`
	// AllFavorited is the client's view of the toggle: true means every
	// phrase in the category is currently favorited and should be cleared.
	AllFavorited bool `json:"all_favorited"`
}

type RecordHistoryRequest struct {
	PhraseID string `json:"phrase_id" validate:"required"`
	Action   string `json:"action" validate:"required,oneof=view search favorite"`
}
