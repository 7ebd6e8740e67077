package database

import (
	"database/sql"
	"time"

	"phrasebook/models"
)

// ==================== USER OPERATIONS ====================

// GetUser retrieves a user by ID
func (r *Repository) GetUser(userID string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at, last_login_at
		FROM users WHERE id = ?
	`, userID).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash,
		&user.CreatedAt, &user.LastLoginAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email address
func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at, last_login_at
		FROM users WHERE email = ?
	`, email).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash,
		&user.CreatedAt, &user.LastLoginAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateUser inserts a new user record
func (r *Repository) CreateUser(user *models.User) error {
	_, err := r.db.Exec(`
		INSERT INTO users (id, email, display_name, password_hash, created_at, last_login_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, user.ID, user.Email, user.DisplayName, user.PasswordHash,
		user.CreatedAt, user.LastLoginAt,
	)
	return err
}

// UpdateLastLogin stamps the user's last login time
func (r *Repository) UpdateLastLogin(userID string, t time.Time) error {
	_, err := r.db.Exec(`
		UPDATE users SET last_login_at = ? WHERE id = ?
	`, t, userID)
	return err
}
