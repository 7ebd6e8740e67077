package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	// Category errors
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrSeedingFailed         = errors.New("failed to seed default categories")

	// Phrase errors
	ErrPhraseNotFound  = errors.New("phrase not found")
	ErrPhraseTextEmpty = errors.New("phrase text cannot be empty")

	// Favorite errors
	ErrFavoriteNotFound = errors.New("favorite not found")

	// History errors
	ErrInvalidHistoryAction = errors.New("unknown history action")
)
