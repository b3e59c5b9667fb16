package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wordhook/internal/audit"
	"wordhook/internal/entities"
)

// MemoryHookStore defines database operations for memory hooks.
type MemoryHookStore interface {
	CreateMemoryHook(accountID uint, wordText, body string, isPublic bool) (*entities.MemoryHook, error)
	UpdateMemoryHook(id, accountID uint, body string, isPublic bool) (*entities.MemoryHook, error)
	DeleteMemoryHook(id uint) (*entities.MemoryHook, error)
	GetMemoryHookByID(id uint) (*entities.MemoryHook, error)
}

// HooksController handles memory hook contributions.
type HooksController struct {
	store        MemoryHookStore
	auditService *audit.Service
}

func NewHooksController(store MemoryHookStore, auditService *audit.Service) *HooksController {
	return &HooksController{store: store, auditService: auditService}
}

type hookRequest struct {
	Word     string `json:"word" binding:"required"`
	Body     string `json:"body" binding:"required"`
	IsPublic *bool  `json:"is_public"`
}

type hookUpdateRequest struct {
	Body     string `json:"body" binding:"required"`
	IsPublic *bool  `json:"is_public"`
}

// Create contributes a new memory hook for a word. Unlike definitions,
// multiple active hooks per (word, account) are allowed.
// POST /api/hooks
func (hc *HooksController) Create(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	var req hookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "word and body are required")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	hook, err := hc.store.CreateMemoryHook(accountID, req.Word, req.Body, isPublic)
	if err != nil {
		respondInternalError(c, err, "create memory hook")
		return
	}

	if hc.auditService != nil {
		hc.auditService.LogContribution(accountID, "memory_hook", hook.ID,
			"memory_hook_create", "Added memory hook for: "+req.Word)
	}

	respondCreated(c, hook)
}

// Update edits the caller's own active memory hook.
// PUT /api/hooks/:id
func (hc *HooksController) Update(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req hookUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body is required")
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	hook, err := hc.store.UpdateMemoryHook(id, accountID, req.Body, isPublic)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "memory hook")
			return
		}
		respondInternalError(c, err, "update memory hook")
		return
	}

	c.JSON(http.StatusOK, hook)
}

// Delete soft-deletes the caller's own memory hook. Vocabulary entries
// referencing it keep working since the hook reference is optional.
// DELETE /api/hooks/:id
func (hc *HooksController) Delete(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hook, err := hc.store.GetMemoryHookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "memory hook")
			return
		}
		respondInternalError(c, err, "delete memory hook")
		return
	}
	if hook.AccountID != accountID {
		respondNotFound(c, "memory hook")
		return
	}

	if _, err := hc.store.DeleteMemoryHook(id); err != nil {
		respondInternalError(c, err, "delete memory hook")
		return
	}

	if hc.auditService != nil {
		hc.auditService.LogContribution(accountID, "memory_hook", id,
			"memory_hook_delete", "Deleted memory hook for: "+hook.Word.Word)
	}

	respondSuccess(c, "memory hook deleted")
}
