package database

import (
	"database/sql"

	"phrasebook/models"
)

// ==================== CATEGORY OPERATIONS ====================

// GetCategories retrieves all categories in creation order
func (r *Repository) GetCategories() ([]models.Category, error) {
	rows, err := r.db.Query(`
		SELECT id, title, icon, created_at
		FROM categories
		ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	categories := make([]models.Category, 0)
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Title, &cat.Icon, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

// GetCategoryByID retrieves a category by its ID
func (r *Repository) GetCategoryByID(categoryID string) (*models.Category, error) {
	var cat models.Category
	err := r.db.QueryRow(`
		SELECT id, title, icon, created_at
		FROM categories
		WHERE id = ?
	`, categoryID).Scan(&cat.ID, &cat.Title, &cat.Icon, &cat.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

// GetCategoryByTitle retrieves a category by its title
func (r *Repository) GetCategoryByTitle(title string) (*models.Category, error) {
	var cat models.Category
	err := r.db.QueryRow(`
		SELECT id, title, icon, created_at
		FROM categories
		WHERE title = ?
	`, title).Scan(&cat.ID, &cat.Title, &cat.Icon, &cat.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cat, nil
}

// CountCategories returns the number of category records
func (r *Repository) CountCategories() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}

// CreateCategory inserts a new category record
func (r *Repository) CreateCategory(cat *models.Category) error {
	_, err := r.db.Exec(`
		INSERT INTO categories (id, title, icon, created_at)
		VALUES (?, ?, ?, ?)
	`, cat.ID, cat.Title, cat.Icon, cat.CreatedAt)
	return err
}

// DeleteCategoryCascade removes a category, every phrase in it, and every
// favorite labeled with its title, in a single transaction. Either all of
// it happens or none of it does.
func (r *Repository) DeleteCategoryCascade(categoryID, title string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM favorites WHERE category = ?`, title); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM phrases WHERE category_id = ?`, categoryID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM categories WHERE id = ?`, categoryID); err != nil {
		return err
	}

	return tx.Commit()
}
