package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"careproxy/internal/api"
	"careproxy/internal/store"
	"careproxy/pkg/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*store.Store, string, *chi.Mux) {
	dir := t.TempDir()

	conversations, err := store.NewStore(dir)
	require.NoError(t, err)

	router := chi.NewRouter()
	api.NewQueryService(conversations).AddRoutes(router)

	return conversations, dir, router
}

func record(n int) models.ConversationRecord {
	return models.ConversationRecord{
		Timestamp:       fmt.Sprintf("2025-01-%02dT00:00:00Z", n),
		Transcript:      fmt.Sprintf("User: transcript %d", n),
		CaregiverReport: "caregiver report",
		PhysicianReport: "physician report",
	}
}

func TestGetLatestEmpty(t *testing.T) {
	_, _, router := setupService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/latest", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", strings.TrimSpace(rec.Body.String()))
}

func TestGetLatest(t *testing.T) {
	conversations, _, router := setupService(t)
	require.NoError(t, conversations.Save(record(1)))

	req := httptest.NewRequest(http.MethodGet, "/api/latest", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.ConversationRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, record(1), response)
}

func TestGetHistoryEmpty(t *testing.T) {
	_, _, router := setupService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetHistory(t *testing.T) {
	conversations, _, router := setupService(t)
	for n := 1; n <= 3; n++ {
		require.NoError(t, conversations.Save(record(n)))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []models.ConversationRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []models.ConversationRecord{record(1), record(2), record(3)}, response)
}

func TestGetHistoryLimit(t *testing.T) {
	conversations, _, router := setupService(t)
	for n := 1; n <= 3; n++ {
		require.NoError(t, conversations.Save(record(n)))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=2", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []models.ConversationRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []models.ConversationRecord{record(2), record(3)}, response)
}

func TestGetHistoryCorrupt(t *testing.T) {
	_, dir, router := setupService(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("{not json"), 0644))

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	_, _, router := setupService(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
