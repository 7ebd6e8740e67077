package services

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"phrasebook/models"
)

// DefaultCategoryIcon is used when a category is created without one
const DefaultCategoryIcon = "book-outline"

// CategoryService handles business logic for categories
type CategoryService struct {
	repo CategoryRepository

	// seedMu serializes first-use seeding so two concurrent empty-store
	// reads cannot both insert the defaults.
	seedMu sync.Mutex
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List retrieves all categories, seeding the default set first if the
// store is empty. The read is retried once after seeding.
func (cs *CategoryService) List() ([]models.Category, error) {
	categories, err := cs.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	if err := cs.seedIfEmpty(); err != nil {
		return nil, err
	}

	categories, err = cs.repo.GetCategories()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrSeedingFailed
	}

	return categories, nil
}

// Create adds a new category
func (cs *CategoryService) Create(title, icon string) (*models.Category, error) {
	title = strings.TrimSpace(title)

	if icon == "" {
		icon = DefaultCategoryIcon
	}

	existing, err := cs.repo.GetCategoryByTitle(title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryAlreadyExists
	}

	cat := &models.Category{
		ID:        uuid.New().String(),
		Title:     title,
		Icon:      icon,
		CreatedAt: time.Now(),
	}

	if err := cs.repo.CreateCategory(cat); err != nil {
		return nil, err
	}

	return cat, nil
}

// Delete removes a category together with its phrases and the favorites
// labeled with its title. The whole cascade is one transaction, so a
// failure partway through deletes nothing.
func (cs *CategoryService) Delete(categoryID string) error {
	cat, err := cs.repo.GetCategoryByID(categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}

	return cs.repo.DeleteCategoryCascade(cat.ID, cat.Title)
}

// seedIfEmpty inserts the default categories when the category table is
// empty, and the default phrases when the phrase table is also empty.
func (cs *CategoryService) seedIfEmpty() error {
	cs.seedMu.Lock()
	defer cs.seedMu.Unlock()

	count, err := cs.repo.CountCategories()
	if err != nil {
		return err
	}

	if count == 0 {
		for _, sc := range defaultCategories {
			cat := &models.Category{
				ID:        uuid.New().String(),
				Title:     sc.Title,
				Icon:      sc.Icon,
				CreatedAt: time.Now(),
			}
			if err := cs.repo.CreateCategory(cat); err != nil {
				return err
			}
		}
		slog.Info("seeded default categories", "count", len(defaultCategories))
	}

	phraseCount, err := cs.repo.CountPhrases()
	if err != nil {
		return err
	}
	if phraseCount > 0 {
		return nil
	}

	for _, sp := range defaultPhrases {
		cat, err := cs.repo.GetCategoryByTitle(sp.Category)
		if err != nil {
			return err
		}
		if cat == nil {
			// Seed phrase references a title the store doesn't have;
			// nothing sensible to attach it to.
			slog.Warn("skipping seed phrase without category", "category", sp.Category, "english", sp.English)
			continue
		}

		phrase := &models.Phrase{
			ID:            uuid.New().String(),
			CategoryID:    cat.ID,
			English:       sp.English,
			Vietnamese:    sp.Vietnamese,
			Pronunciation: sp.Pronunciation,
		}
		if err := cs.repo.CreatePhrase(phrase); err != nil {
			return err
		}
	}
	slog.Info("seeded default phrases", "count", len(defaultPhrases))

	return nil
}
