package database

import (
	"database/sql"
	"strings"

	"phrasebook/models"
)

// ==================== PHRASE OPERATIONS ====================

// GetPhrases retrieves every phrase record
func (r *Repository) GetPhrases() ([]models.Phrase, error) {
	rows, err := r.db.Query(`
		SELECT id, category_id, english, vietnamese, pronunciation
		FROM phrases
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPhrases(rows)
}

// GetPhraseByID retrieves a single phrase by its ID
func (r *Repository) GetPhraseByID(phraseID string) (*models.Phrase, error) {
	var p models.Phrase
	err := r.db.QueryRow(`
		SELECT id, category_id, english, vietnamese, pronunciation
		FROM phrases
		WHERE id = ?
	`, phraseID).Scan(&p.ID, &p.CategoryID, &p.English, &p.Vietnamese, &p.Pronunciation)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// GetPhrasesByCategoryID retrieves all phrases belonging to a category
func (r *Repository) GetPhrasesByCategoryID(categoryID string) ([]models.Phrase, error) {
	rows, err := r.db.Query(`
		SELECT id, category_id, english, vietnamese, pronunciation
		FROM phrases
		WHERE category_id = ?
		ORDER BY rowid ASC
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPhrases(rows)
}

// SearchPhrases retrieves phrases whose english, vietnamese, or
// pronunciation text contains the query, case-insensitively.
func (r *Repository) SearchPhrases(query string) ([]models.Phrase, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	rows, err := r.db.Query(`
		SELECT id, category_id, english, vietnamese, pronunciation
		FROM phrases
		WHERE lower(english) LIKE ? ESCAPE '\'
		   OR lower(vietnamese) LIKE ? ESCAPE '\'
		   OR lower(pronunciation) LIKE ? ESCAPE '\'
		ORDER BY rowid ASC
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPhrases(rows)
}

// CountPhrases returns the number of phrase records
func (r *Repository) CountPhrases() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM phrases`).Scan(&count)
	return count, err
}

// CreatePhrase inserts a new phrase record
func (r *Repository) CreatePhrase(p *models.Phrase) error {
	_, err := r.db.Exec(`
		INSERT INTO phrases (id, category_id, english, vietnamese, pronunciation)
		VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.CategoryID, p.English, p.Vietnamese, p.Pronunciation)
	return err
}

// UpdatePhrase merges the non-nil fields of req into the stored record.
// Returns the number of rows affected so callers can detect a missing id.
func (r *Repository) UpdatePhrase(phraseID string, req models.UpdatePhraseRequest) (int64, error) {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	if req.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *req.CategoryID)
	}
	if req.English != nil {
		sets = append(sets, "english = ?")
		args = append(args, *req.English)
	}
	if req.Vietnamese != nil {
		sets = append(sets, "vietnamese = ?")
		args = append(args, *req.Vietnamese)
	}
	if req.Pronunciation != nil {
		sets = append(sets, "pronunciation = ?")
		args = append(args, *req.Pronunciation)
	}

	if len(sets) == 0 {
		// Nothing to change; still report whether the record exists
		var one int
		err := r.db.QueryRow(`SELECT 1 FROM phrases WHERE id = ?`, phraseID).Scan(&one)
		if err == sql.ErrNoRows {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return 1, nil
	}

	args = append(args, phraseID)
	res, err := r.db.Exec(`UPDATE phrases SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeletePhrase removes a phrase record. Deleting an absent id is a no-op.
func (r *Repository) DeletePhrase(phraseID string) error {
	_, err := r.db.Exec(`DELETE FROM phrases WHERE id = ?`, phraseID)
	return err
}

func scanPhrases(rows *sql.Rows) ([]models.Phrase, error) {
	phrases := make([]models.Phrase, 0)
	for rows.Next() {
		var p models.Phrase
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.English, &p.Vietnamese, &p.Pronunciation); err != nil {
			return nil, err
		}
		phrases = append(phrases, p)
	}
	return phrases, rows.Err()
}

// escapeLike neutralizes LIKE wildcards in user-supplied search text
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
