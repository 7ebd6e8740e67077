package services

import (
	"strings"

	"github.com/google/uuid"

	"phrasebook/models"
)

// PhraseService handles business logic for phrases
type PhraseService struct {
	repo PhraseRepository
}

// NewPhraseService creates a new phrase service
func NewPhraseService(repo PhraseRepository) *PhraseService {
	return &PhraseService{repo: repo}
}

// List retrieves every phrase
func (ps *PhraseService) List() ([]models.Phrase, error) {
	return ps.repo.GetPhrases()
}

// Get retrieves a single phrase by id
func (ps *PhraseService) Get(phraseID string) (*models.Phrase, error) {
	phrase, err := ps.repo.GetPhraseByID(phraseID)
	if err != nil {
		return nil, err
	}
	if phrase == nil {
		return nil, ErrPhraseNotFound
	}
	return phrase, nil
}

// ListByCategory retrieves all phrases in a category
func (ps *PhraseService) ListByCategory(categoryID string) ([]models.Phrase, error) {
	cat, err := ps.repo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	return ps.repo.GetPhrasesByCategoryID(categoryID)
}

// Create adds a new phrase to an existing category
func (ps *PhraseService) Create(req models.CreatePhraseRequest) (*models.Phrase, error) {
	cat, err := ps.repo.GetCategoryByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	phrase := &models.Phrase{
		ID:            uuid.New().String(),
		CategoryID:    cat.ID,
		English:       strings.TrimSpace(req.English),
		Vietnamese:    strings.TrimSpace(req.Vietnamese),
		Pronunciation: strings.TrimSpace(req.Pronunciation),
	}

	if err := ps.repo.CreatePhrase(phrase); err != nil {
		return nil, err
	}

	return phrase, nil
}

// Update merges the given fields into an existing phrase. A present but
// blank english or vietnamese field is rejected, matching what Create
// requires.
func (ps *PhraseService) Update(phraseID string, req models.UpdatePhraseRequest) error {
	if req.English != nil {
		trimmed := strings.TrimSpace(*req.English)
		if trimmed == "" {
			return ErrPhraseTextEmpty
		}
		req.English = &trimmed
	}
	if req.Vietnamese != nil {
		trimmed := strings.TrimSpace(*req.Vietnamese)
		if trimmed == "" {
			return ErrPhraseTextEmpty
		}
		req.Vietnamese = &trimmed
	}
	if req.Pronunciation != nil {
		trimmed := strings.TrimSpace(*req.Pronunciation)
		req.Pronunciation = &trimmed
	}

	if req.CategoryID != nil {
		cat, err := ps.repo.GetCategoryByID(*req.CategoryID)
		if err != nil {
			return err
		}
		if cat == nil {
			return ErrCategoryNotFound
		}
	}

	rows, err := ps.repo.UpdatePhrase(phraseID, req)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPhraseNotFound
	}

	return nil
}

// Delete removes a phrase. Deleting an id that no longer exists succeeds,
// so repeated deletes are safe.
func (ps *PhraseService) Delete(phraseID string) error {
	return ps.repo.DeletePhrase(phraseID)
}

// Search retrieves phrases matching the query in any text field.
// An empty query returns everything.
func (ps *PhraseService) Search(query string) ([]models.Phrase, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return ps.repo.GetPhrases()
	}
	return ps.repo.SearchPhrases(query)
}
