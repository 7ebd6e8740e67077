package database

import (
	"phrasebook/models"
)

// ==================== HISTORY OPERATIONS ====================

// CreateHistory inserts a history record
func (r *Repository) CreateHistory(h *models.History) error {
	_, err := r.db.Exec(`
		INSERT INTO history (id, user_id, phrase_id, action, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, h.ID, h.UserID, h.PhraseID, h.Action, h.CreatedAt)
	return err
}

// GetHistoryByUser retrieves a user's history, newest first
func (r *Repository) GetHistoryByUser(userID string, limit int) ([]models.History, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, phrase_id, action, created_at
		FROM history
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.History, 0)
	for rows.Next() {
		var h models.History
		if err := rows.Scan(&h.ID, &h.UserID, &h.PhraseID, &h.Action, &h.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, h)
	}

	return entries, rows.Err()
}
