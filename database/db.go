package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Users table
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			display_name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_login_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Categories table
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			title TEXT UNIQUE NOT NULL,
			icon TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Phrases table
		`CREATE TABLE IF NOT EXISTS phrases (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL,
			english TEXT NOT NULL,
			vietnamese TEXT NOT NULL,
			pronunciation TEXT NOT NULL DEFAULT '',
			FOREIGN KEY (category_id) REFERENCES categories(id)
		)`,

		// Favorites table. No foreign key on phrase_id: a favorite may
		// outlive its phrase and readers skip the dangling ones.
		`CREATE TABLE IF NOT EXISTS favorites (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			phrase_id TEXT NOT NULL,
			category TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,

		// History table
		`CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			phrase_id TEXT NOT NULL,
			action TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_phrases_category ON phrases(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user_category ON favorites(user_id, category)`,
		`CREATE INDEX IF NOT EXISTS idx_history_user ON history(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
