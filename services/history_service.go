package services

import (
	"time"

	"github.com/google/uuid"

	"phrasebook/models"
)

// HistoryService records phrase interactions (views, searches, favorites)
type HistoryService struct {
	repo HistoryRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(repo HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Record stores one interaction. The action must be one of the known
// history actions.
func (hs *HistoryService) Record(userID, phraseID, action string) (*models.History, error) {
	switch action {
	case models.HistoryActionView, models.HistoryActionSearch, models.HistoryActionFavorite:
	default:
		return nil, ErrInvalidHistoryAction
	}

	entry := &models.History{
		ID:        uuid.New().String(),
		UserID:    userID,
		PhraseID:  phraseID,
		Action:    action,
		CreatedAt: time.Now(),
	}

	if err := hs.repo.CreateHistory(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListForUser retrieves a user's history, newest first
func (hs *HistoryService) ListForUser(userID string, limit int) ([]models.History, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return hs.repo.GetHistoryByUser(userID, limit)
}
