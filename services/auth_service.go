package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"phrasebook/models"
)

// AuthService handles signup, login, and token issuance
type AuthService struct {
	repo      UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(repo UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a user account and returns it with a signed token
func (as *AuthService) Register(req models.RegisterRequest) (*models.User, string, error) {
	email := normalizeEmail(req.Email)

	existing, err := as.repo.GetUserByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLoginAt:  now,
	}

	if err := as.repo.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := as.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials, bumps the last-login stamp, and returns the
// user with a signed token
func (as *AuthService) Login(req models.LoginRequest) (*models.User, string, error) {
	user, err := as.repo.GetUserByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	user.LastLoginAt = time.Now()
	if err := as.repo.UpdateLastLogin(user.ID, user.LastLoginAt); err != nil {
		return nil, "", err
	}

	token, err := as.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Me retrieves the user behind a verified token subject
func (as *AuthService) Me(userID string) (*models.User, error) {
	user, err := as.repo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (as *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(as.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(as.jwtSecret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
