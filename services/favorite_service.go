package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"phrasebook/models"
)

// FavoriteService handles business logic for favorites
type FavoriteService struct {
	repo FavoriteRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(repo FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// Add favorites a phrase for a user, capturing the phrase's current
// category title on the record. Favoriting the same phrase twice creates
// two records; callers that want toggle semantics remove by favorite id.
func (fs *FavoriteService) Add(userID, phraseID string) (*models.Favorite, error) {
	phrase, err := fs.repo.GetPhraseByID(phraseID)
	if err != nil {
		return nil, err
	}
	if phrase == nil {
		return nil, ErrPhraseNotFound
	}

	category := "Unknown"
	cat, err := fs.repo.GetCategoryByID(phrase.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat != nil {
		category = cat.Title
	}

	fav := &models.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		PhraseID:  phraseID,
		Category:  category,
		CreatedAt: time.Now(),
	}

	if err := fs.repo.CreateFavorite(fav); err != nil {
		return nil, err
	}

	return fav, nil
}

// Remove deletes a favorite by its record id
func (fs *FavoriteService) Remove(favoriteID string) error {
	rows, err := fs.repo.DeleteFavorite(favoriteID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListForUser retrieves a user's favorites in creation order
func (fs *FavoriteService) ListForUser(userID string) ([]models.Favorite, error) {
	return fs.repo.GetFavoritesByUser(userID)
}

// GroupedByCategory returns the user's favorites as category buckets in
// the order the categories were first favorited. Favorites whose phrase
// has since been deleted are skipped and logged, never fatal. The result
// is computed fresh on every call.
func (fs *FavoriteService) GroupedByCategory(userID string) ([]models.FavoriteGroup, error) {
	favorites, err := fs.repo.GetFavoritesByUser(userID)
	if err != nil {
		return nil, err
	}

	groups := make([]models.FavoriteGroup, 0)
	index := make(map[string]int)

	for _, fav := range favorites {
		phrase, err := fs.repo.GetPhraseByID(fav.PhraseID)
		if err != nil {
			return nil, err
		}
		if phrase == nil {
			slog.Warn("skipping favorite with missing phrase",
				"favorite_id", fav.ID, "phrase_id", fav.PhraseID, "user_id", userID)
			continue
		}

		i, ok := index[fav.Category]
		if !ok {
			i = len(groups)
			index[fav.Category] = i
			groups = append(groups, models.FavoriteGroup{Category: fav.Category, Phrases: []models.Phrase{}})
		}
		groups[i].Phrases = append(groups[i].Phrases, *phrase)
	}

	return groups, nil
}

// StatusFor reports which of the given phrases the user has favorited,
// using a single favorites query rather than one per phrase.
func (fs *FavoriteService) StatusFor(userID string, phraseIDs []string) (map[string]bool, error) {
	favorites, err := fs.repo.GetFavoritesByUser(userID)
	if err != nil {
		return nil, err
	}

	favorited := make(map[string]struct{}, len(favorites))
	for _, fav := range favorites {
		favorited[fav.PhraseID] = struct{}{}
	}

	status := make(map[string]bool, len(phraseIDs))
	for _, id := range phraseIDs {
		_, ok := favorited[id]
		status[id] = ok
	}

	return status, nil
}

// ToggleAllInCategory flips a whole category for a user: when every
// phrase is already favorited it clears the user's favorites under that
// category's title, otherwise it favorites each phrase that isn't yet.
// Each direction runs as one statement or transaction, so a failure
// leaves the store as it was rather than half-toggled.
func (fs *FavoriteService) ToggleAllInCategory(userID, categoryID string, allFavorited bool) error {
	cat, err := fs.repo.GetCategoryByID(categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}

	if allFavorited {
		return fs.repo.DeleteFavoritesByUserAndCategory(userID, cat.Title)
	}

	phrases, err := fs.repo.GetPhrasesByCategoryID(categoryID)
	if err != nil {
		return err
	}

	favorites, err := fs.repo.GetFavoritesByUser(userID)
	if err != nil {
		return err
	}
	favorited := make(map[string]struct{}, len(favorites))
	for _, fav := range favorites {
		favorited[fav.PhraseID] = struct{}{}
	}

	now := time.Now()
	toAdd := make([]models.Favorite, 0, len(phrases))
	for _, phrase := range phrases {
		if _, ok := favorited[phrase.ID]; ok {
			continue
		}
		toAdd = append(toAdd, models.Favorite{
			ID:        uuid.New().String(),
			UserID:    userID,
			PhraseID:  phrase.ID,
			Category:  cat.Title,
			CreatedAt: now,
		})
	}

	return fs.repo.CreateFavorites(toAdd)
}
