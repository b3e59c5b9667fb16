package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wordhook/internal/entities"
)

type mockVocabularyStore struct {
	existing  bool
	deleteErr error

	savedWord   string
	savedDefID  uint
	savedHookID *uint
	deletedID   uint
}

func (m *mockVocabularyStore) SaveToVocabulary(accountID uint, wordText string, definitionID uint, memoryHookID *uint) (*entities.VocabularyEntry, bool, error) {
	m.savedWord = wordText
	m.savedDefID = definitionID
	m.savedHookID = memoryHookID
	entry := &entities.VocabularyEntry{ID: 1, AccountID: accountID, DefinitionID: definitionID, MemoryHookID: memoryHookID}
	return entry, !m.existing, nil
}

func (m *mockVocabularyStore) ListEntries(accountID uint) ([]entities.VocabularyEntry, error) {
	return []entities.VocabularyEntry{{ID: 1, AccountID: accountID}}, nil
}

func (m *mockVocabularyStore) DeleteEntry(id, accountID uint) (*entities.VocabularyEntry, error) {
	if m.deleteErr != nil {
		return nil, m.deleteErr
	}
	m.deletedID = id
	return &entities.VocabularyEntry{ID: id, AccountID: accountID}, nil
}

func setupVocabularyRouter(store *mockVocabularyStore, accountID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewVocabularyController(store)

	router := gin.New()
	router.Use(asAccount(accountID))
	router.POST("/api/vocabulary", controller.Save)
	router.GET("/api/vocabulary", controller.List)
	router.DELETE("/api/vocabulary/:id", controller.Delete)
	return router
}

func TestSaveVocabulary_Creates(t *testing.T) {
	store := &mockVocabularyStore{}
	router := setupVocabularyRouter(store, 1)

	body := bytes.NewBufferString(`{"word":"cat","definition_id":10,"memory_hook_id":7}`)
	req, _ := http.NewRequest("POST", "/api/vocabulary", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "cat", store.savedWord)
	assert.Equal(t, uint(10), store.savedDefID)
	require.NotNil(t, store.savedHookID)
	assert.Equal(t, uint(7), *store.savedHookID)
}

func TestSaveVocabulary_UpdatesExisting(t *testing.T) {
	store := &mockVocabularyStore{existing: true}
	router := setupVocabularyRouter(store, 1)

	body := bytes.NewBufferString(`{"word":"cat","definition_id":11}`)
	req, _ := http.NewRequest("POST", "/api/vocabulary", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Repointing an existing entry is 200, not 201.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, store.savedHookID)
}

func TestSaveVocabulary_MissingDefinition(t *testing.T) {
	store := &mockVocabularyStore{}
	router := setupVocabularyRouter(store, 1)

	body := bytes.NewBufferString(`{"word":"cat"}`)
	req, _ := http.NewRequest("POST", "/api/vocabulary", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVocabulary(t *testing.T) {
	store := &mockVocabularyStore{}
	router := setupVocabularyRouter(store, 1)

	req, _ := http.NewRequest("GET", "/api/vocabulary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestDeleteVocabularyEntry(t *testing.T) {
	store := &mockVocabularyStore{}
	router := setupVocabularyRouter(store, 1)

	req, _ := http.NewRequest("DELETE", "/api/vocabulary/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), store.deletedID)
}

func TestDeleteVocabularyEntry_NotFound(t *testing.T) {
	store := &mockVocabularyStore{deleteErr: gorm.ErrRecordNotFound}
	router := setupVocabularyRouter(store, 1)

	req, _ := http.NewRequest("DELETE", "/api/vocabulary/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVocabulary_Unauthenticated(t *testing.T) {
	store := &mockVocabularyStore{}
	router := setupVocabularyRouter(store, 0)

	req, _ := http.NewRequest("GET", "/api/vocabulary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
