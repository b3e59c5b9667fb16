package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wordhook/internal/entities"
)

// VocabularyStore defines database operations for personal vocabulary lists.
type VocabularyStore interface {
	SaveToVocabulary(accountID uint, wordText string, definitionID uint, memoryHookID *uint) (*entities.VocabularyEntry, bool, error)
	ListEntries(accountID uint) ([]entities.VocabularyEntry, error)
	DeleteEntry(id, accountID uint) (*entities.VocabularyEntry, error)
}

// VocabularyController handles an account's personal vocabulary list.
type VocabularyController struct {
	store VocabularyStore
}

func NewVocabularyController(store VocabularyStore) *VocabularyController {
	return &VocabularyController{store: store}
}

type saveVocabularyRequest struct {
	Word         string `json:"word" binding:"required"`
	DefinitionID uint   `json:"definition_id" binding:"required"`
	MemoryHookID *uint  `json:"memory_hook_id"`
}

// Save adds a word to the caller's vocabulary or repoints the existing
// active entry at a different definition and hook.
// POST /api/vocabulary
func (vc *VocabularyController) Save(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	var req saveVocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word and definition_id are required")
		return
	}

	entry, created, err := vc.store.SaveToVocabulary(accountID, req.Word, req.DefinitionID, req.MemoryHookID)
	if err != nil {
		respondInternalError(c, err, "save vocabulary entry")
		return
	}

	if created {
		respondCreated(c, entry)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// List returns the caller's active vocabulary entries.
// GET /api/vocabulary
func (vc *VocabularyController) List(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	entries, err := vc.store.ListEntries(accountID)
	if err != nil {
		respondInternalError(c, err, "list vocabulary entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}

// Delete removes an entry from the caller's vocabulary. Deleting an
// already-removed entry succeeds.
// DELETE /api/vocabulary/:id
func (vc *VocabularyController) Delete(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := vc.store.DeleteEntry(id, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "vocabulary entry")
			return
		}
		respondInternalError(c, err, "delete vocabulary entry")
		return
	}

	respondSuccess(c, "vocabulary entry deleted")
}
