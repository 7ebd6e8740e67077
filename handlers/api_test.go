package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phrasebook/app"
	"phrasebook/database"
	"phrasebook/handlers"
	"phrasebook/middleware"
)

const testJWTSecret = "test-secret"

// setupTestApp creates a Fiber app over a temporary database with the
// full route table mounted
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "phrasebook-test-*")
	require.NoError(t, err, "Failed to create temp directory")

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	require.NoError(t, db.Migrate(), "Failed to run migrations")

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})

	repo := database.NewRepository(db)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	application := app.New(repo, testJWTSecret, time.Hour, logger)

	srv := fiber.New()

	srv.Post("/api/auth/register", handlers.Register(application))
	srv.Post("/api/auth/login", handlers.Login(application))

	api := srv.Group("/api", middleware.AuthRequired(testJWTSecret))
	api.Get("/auth/me", handlers.Me(application))
	api.Get("/categories", handlers.GetCategories(application))
	api.Post("/categories", handlers.CreateCategory(application))
	api.Delete("/categories/:id", handlers.DeleteCategory(application))
	api.Get("/categories/:id/phrases", handlers.GetPhrasesByCategory(application))
	api.Get("/phrases", handlers.GetPhrases(application))
	api.Get("/phrases/search", handlers.SearchPhrases(application))
	api.Post("/phrases", handlers.CreatePhrase(application))
	api.Put("/phrases/:id", handlers.UpdatePhrase(application))
	api.Delete("/phrases/:id", handlers.DeletePhrase(application))
	api.Get("/favorites", handlers.GetFavorites(application))
	api.Get("/favorites/grouped", handlers.GetFavoritesGrouped(application))
	api.Post("/favorites", handlers.AddFavorite(application))
	api.Post("/favorites/status", handlers.GetFavoriteStatus(application))
	api.Post("/favorites/toggle-all", handlers.ToggleAllFavorites(application))
	api.Delete("/favorites/:id", handlers.RemoveFavorite(application))
	api.Get("/history", handlers.GetHistory(application))
	api.Post("/history", handlers.RecordHistory(application))

	return srv
}

func doJSON(t *testing.T, srv *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}

	return resp.StatusCode, parsed
}

func registerTestUser(t *testing.T, srv *fiber.App) string {
	t.Helper()

	status, body := doJSON(t, srv, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":        "test@example.com",
		"password":     "supersecret",
		"display_name": "Test User",
	})
	require.Equal(t, http.StatusCreated, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "register response has no token")
	return token
}

func TestAPI_RequiresAuth(t *testing.T) {
	srv := setupTestApp(t)

	status, _ := doJSON(t, srv, http.MethodGet, "/api/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_CategoriesSeededOnFirstList(t *testing.T) {
	srv := setupTestApp(t)
	token := registerTestUser(t, srv)

	status, body := doJSON(t, srv, http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, status)

	categories := body["categories"].([]interface{})
	require.Len(t, categories, 4)

	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, c.(map[string]interface{})["title"].(string))
	}
	assert.Equal(t, []string{"Chào hỏi", "Ẩm thực", "Du lịch", "Mua sắm"}, titles)

	// A second list does not seed again
	status, body = doJSON(t, srv, http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["categories"].([]interface{}), 4)

	// Seeded phrases came along
	status, body = doJSON(t, srv, http.MethodGet, "/api/phrases", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["phrases"].([]interface{}), 6)
}

func TestAPI_PhraseLifecycle(t *testing.T) {
	srv := setupTestApp(t)
	token := registerTestUser(t, srv)

	// Seed via first category list and grab a category id
	status, body := doJSON(t, srv, http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, status)
	first := body["categories"].([]interface{})[0].(map[string]interface{})
	categoryID := first["id"].(string)

	// Create
	status, body = doJSON(t, srv, http.MethodPost, "/api/phrases", token, map[string]string{
		"category_id":   categoryID,
		"english":       "See you later",
		"vietnamese":    "Hẹn gặp lại",
		"pronunciation": "hen gap lie",
	})
	require.Equal(t, http.StatusCreated, status)
	phraseID := body["phrase"].(map[string]interface{})["id"].(string)

	// Empty required fields are rejected before they reach the store
	status, _ = doJSON(t, srv, http.MethodPost, "/api/phrases", token, map[string]string{
		"category_id": categoryID,
		"english":     "",
		"vietnamese":  "Hẹn gặp lại",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Partial update
	status, _ = doJSON(t, srv, http.MethodPut, "/api/phrases/"+phraseID, token, map[string]string{
		"pronunciation": "hen gup lai",
	})
	require.Equal(t, http.StatusOK, status)

	// Blanking a required text field is rejected and leaves the phrase intact
	status, _ = doJSON(t, srv, http.MethodPut, "/api/phrases/"+phraseID, token, map[string]string{
		"english": "",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = doJSON(t, srv, http.MethodPut, "/api/phrases/"+phraseID, token, map[string]string{
		"vietnamese": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	// Search finds it with its text untouched
	status, body = doJSON(t, srv, http.MethodGet, "/api/phrases/search?q=see+you", token, nil)
	require.Equal(t, http.StatusOK, status)
	results := body["phrases"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "See you later", results[0].(map[string]interface{})["english"])
	assert.Equal(t, "hen gup lai", results[0].(map[string]interface{})["pronunciation"])

	// Delete twice: both succeed
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/phrases/"+phraseID, token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/phrases/"+phraseID, token, nil)
	assert.Equal(t, http.StatusOK, status)

	// Updating the deleted phrase is a 404
	status, _ = doJSON(t, srv, http.MethodPut, "/api/phrases/"+phraseID, token, map[string]string{
		"english": "Bye",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_CategoryDeleteCascades(t *testing.T) {
	srv := setupTestApp(t)
	token := registerTestUser(t, srv)

	status, body := doJSON(t, srv, http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, status)
	first := body["categories"].([]interface{})[0].(map[string]interface{})
	categoryID := first["id"].(string)

	status, _ = doJSON(t, srv, http.MethodDelete, "/api/categories/"+categoryID, token, nil)
	require.Equal(t, http.StatusOK, status)

	// Listing phrases by the deleted category id fails with NotFound
	status, _ = doJSON(t, srv, http.MethodGet, "/api/categories/"+categoryID+"/phrases", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Deleting again also fails with NotFound
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/categories/"+categoryID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_FavoritesFlow(t *testing.T) {
	srv := setupTestApp(t)
	token := registerTestUser(t, srv)

	status, body := doJSON(t, srv, http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, status)
	first := body["categories"].([]interface{})[0].(map[string]interface{})
	categoryID := first["id"].(string)
	categoryTitle := first["title"].(string)

	status, body = doJSON(t, srv, http.MethodGet, "/api/categories/"+categoryID+"/phrases", token, nil)
	require.Equal(t, http.StatusOK, status)
	phrases := body["phrases"].([]interface{})
	require.Len(t, phrases, 2)
	phraseID := phrases[0].(map[string]interface{})["id"].(string)

	// Favorite one phrase
	status, body = doJSON(t, srv, http.MethodPost, "/api/favorites", token, map[string]string{
		"phrase_id": phraseID,
	})
	require.Equal(t, http.StatusCreated, status)
	favoriteID := body["favorite"].(map[string]interface{})["id"].(string)

	// Status: favorited phrase true, the other false
	otherID := phrases[1].(map[string]interface{})["id"].(string)
	status, body = doJSON(t, srv, http.MethodPost, "/api/favorites/status", token, map[string]interface{}{
		"phrase_ids": []string{phraseID, otherID},
	})
	require.Equal(t, http.StatusOK, status)
	statusMap := body["status"].(map[string]interface{})
	assert.Equal(t, true, statusMap[phraseID])
	assert.Equal(t, false, statusMap[otherID])

	// Toggle-all favorites the remaining phrase
	status, _ = doJSON(t, srv, http.MethodPost, "/api/favorites/toggle-all", token, map[string]interface{}{
		"category_id":   categoryID,
		"all_favorited": false,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, srv, http.MethodGet, "/api/favorites/grouped", token, nil)
	require.Equal(t, http.StatusOK, status)
	groups := body["groups"].([]interface{})
	require.Len(t, groups, 1)
	group := groups[0].(map[string]interface{})
	assert.Equal(t, categoryTitle, group["category"])
	assert.Len(t, group["phrases"].([]interface{}), 2)

	// Remove the original favorite by its record id
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/favorites/"+favoriteID, token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, srv, http.MethodDelete, "/api/favorites/"+favoriteID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
