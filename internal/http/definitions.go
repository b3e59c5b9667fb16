package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wordhook/internal/audit"
	"wordhook/internal/database/words"
	"wordhook/internal/entities"
)

// DefinitionStore defines database operations for definitions.
type DefinitionStore interface {
	CreateDefinition(accountID uint, wordText, body string, isPublic bool) (*entities.Definition, error)
	UpdateDefinition(id, accountID uint, body string, isPublic bool) (*entities.Definition, error)
	DeleteDefinition(id uint) (*entities.Definition, error)
	GetDefinitionByID(id uint) (*entities.Definition, error)
}

// DefinitionsController handles definition contributions.
type DefinitionsController struct {
	store        DefinitionStore
	auditService *audit.Service
}

func NewDefinitionsController(store DefinitionStore, auditService *audit.Service) *DefinitionsController {
	return &DefinitionsController{store: store, auditService: auditService}
}

type definitionRequest struct {
	Word     string `json:"word" binding:"required"`
	Body     string `json:"body" binding:"required"`
	IsPublic *bool  `json:"is_public"`
}

type definitionUpdateRequest struct {
	Body     string `json:"body" binding:"required"`
	IsPublic *bool  `json:"is_public"`
}

// Create contributes a new definition for a word. An account can hold at
// most one active definition per word.
// POST /api/definitions
func (dc *DefinitionsController) Create(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	var req definitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word and body are required")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	def, err := dc.store.CreateDefinition(accountID, req.Word, req.Body, isPublic)
	if err != nil {
		if errors.Is(err, words.ErrDuplicateDefinition) {
			respondConflict(c, "an active definition for this word already exists", "duplicate_definition")
			return
		}
		respondInternalError(c, err, "create definition")
		return
	}

	if dc.auditService != nil {
		dc.auditService.LogContribution(accountID, "definition", def.ID,
			"definition_create", "Added definition for: "+req.Word)
	}

	respondCreated(c, def)
}

// Update edits the caller's own active definition.
// PUT /api/definitions/:id
func (dc *DefinitionsController) Update(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req definitionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body is required")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	def, err := dc.store.UpdateDefinition(id, accountID, req.Body, isPublic)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "definition")
			return
		}
		respondInternalError(c, err, "update definition")
		return
	}

	c.JSON(http.StatusOK, def)
}

// Delete soft-deletes the caller's own definition. The body is annotated so
// the original text survives for recovery; a definition still referenced by
// an active vocabulary entry cannot be deleted.
// DELETE /api/definitions/:id
func (dc *DefinitionsController) Delete(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	def, err := dc.store.GetDefinitionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "definition")
			return
		}
		respondInternalError(c, err, "delete definition")
		return
	}
	if def.AccountID != accountID {
		respondNotFound(c, "definition")
		return
	}

	if _, err := dc.store.DeleteDefinition(id); err != nil {
		if errors.Is(err, words.ErrDefinitionInUse) {
			respondConflict(c, "definition is in use by an active vocabulary entry", "definition_in_use")
			return
		}
		respondInternalError(c, err, "delete definition")
		return
	}

	if dc.auditService != nil {
		dc.auditService.LogContribution(accountID, "definition", id,
			"definition_delete", "Deleted definition for: "+def.Word.Word)
	}

	respondSuccess(c, "definition deleted")
}
