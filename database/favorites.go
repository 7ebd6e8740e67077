package database

import (
	"phrasebook/models"
)

// ==================== FAVORITE OPERATIONS ====================

// GetFavoritesByUser retrieves a user's favorites in creation order
func (r *Repository) GetFavoritesByUser(userID string) ([]models.Favorite, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, phrase_id, category, created_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var fav models.Favorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.PhraseID, &fav.Category, &fav.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}

	return favorites, rows.Err()
}

// CreateFavorite inserts a favorite record. There is deliberately no
// uniqueness constraint on (user_id, phrase_id): favoriting twice makes
// two records.
func (r *Repository) CreateFavorite(fav *models.Favorite) error {
	_, err := r.db.Exec(`
		INSERT INTO favorites (id, user_id, phrase_id, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, fav.ID, fav.UserID, fav.PhraseID, fav.Category, fav.CreatedAt)
	return err
}

// CreateFavorites inserts a batch of favorite records in one transaction
func (r *Repository) CreateFavorites(favorites []models.Favorite) error {
	if len(favorites) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO favorites (id, user_id, phrase_id, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, fav := range favorites {
		if _, err := stmt.Exec(fav.ID, fav.UserID, fav.PhraseID, fav.Category, fav.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteFavorite removes a favorite by its own record id.
// Returns the number of rows affected so callers can detect a missing id.
func (r *Repository) DeleteFavorite(favoriteID string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM favorites WHERE id = ?`, favoriteID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteFavoritesByUserAndCategory removes every favorite a user has under
// a category label in one statement
func (r *Repository) DeleteFavoritesByUserAndCategory(userID, category string) error {
	_, err := r.db.Exec(`
		DELETE FROM favorites WHERE user_id = ? AND category = ?
	`, userID, category)
	return err
}
