package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wordhook/internal/entities"
)

// WordStore defines read operations for browsing words and their content.
type WordStore interface {
	GetWordByText(text string) (*entities.Word, error)
	ListDefinitionsForWord(wordID, viewerID uint) ([]entities.Definition, error)
	ListMemoryHooksForWord(wordID, viewerID uint) ([]entities.MemoryHook, error)
}

// WordsController serves word lookups: the word row plus the definitions
// and memory hooks visible to the caller.
type WordsController struct {
	store WordStore
}

func NewWordsController(store WordStore) *WordsController {
	return &WordsController{store: store}
}

// WordResponse bundles a word with its visible content.
type WordResponse struct {
	Word        entities.Word         `json:"word"`
	Definitions []entities.Definition `json:"definitions"`
	MemoryHooks []entities.MemoryHook `json:"memory_hooks"`
}

// Get looks up a word by text and returns its active definitions and hooks:
// public ones plus the caller's own private ones.
// GET /api/words/:word
func (wc *WordsController) Get(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	text := c.Param("word")
	if text == "" {
		respondBadRequest(c, "word is required")
		return
	}

	word, err := wc.store.GetWordByText(text)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "word")
			return
		}
		respondInternalError(c, err, "get word")
		return
	}

	defs, err := wc.store.ListDefinitionsForWord(word.ID, accountID)
	if err != nil {
		respondInternalError(c, err, "list definitions")
		return
	}

	hooks, err := wc.store.ListMemoryHooksForWord(word.ID, accountID)
	if err != nil {
		respondInternalError(c, err, "list memory hooks")
		return
	}

	c.JSON(http.StatusOK, WordResponse{
		Word:        *word,
		Definitions: defs,
		MemoryHooks: hooks,
	})
}
