package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wordhook/internal/audit"
	"wordhook/internal/lifecycle"
)

// AccountDeleter performs the account soft-delete cascade.
type AccountDeleter interface {
	DeleteAccount(accountID uint) (*lifecycle.DeletionSummary, error)
}

// AccountRecoverer restores an account and its epoch-matched content.
type AccountRecoverer interface {
	RecoverAccount(accountID uint) (*lifecycle.RecoverySummary, error)
}

// AccountReporter summarizes an account's content counts.
type AccountReporter interface {
	Report(accountID uint) (*lifecycle.AccountStatus, error)
}

// AccountController handles the account lifecycle endpoints: deletion,
// recovery and status. All operations act on the authenticated account only.
type AccountController struct {
	deleter      AccountDeleter
	recoverer    AccountRecoverer
	reporter     AccountReporter
	auditService *audit.Service
}

func NewAccountController(deleter AccountDeleter, recoverer AccountRecoverer, reporter AccountReporter, auditService *audit.Service) *AccountController {
	return &AccountController{
		deleter:      deleter,
		recoverer:    recoverer,
		reporter:     reporter,
		auditService: auditService,
	}
}

// DeleteResponse is returned by the account delete endpoint.
type DeleteResponse struct {
	Success       bool                       `json:"success"`
	DeletedCounts *lifecycle.DeletionSummary `json:"deletedCounts"`
}

// RecoverResponse is returned by the account recover endpoint.
type RecoverResponse struct {
	Success         bool                       `json:"success"`
	RecoveredCounts *lifecycle.RecoverySummary `json:"recoveredCounts"`
}

// Delete soft-deletes the authenticated account and all of its active
// content. Deleting an already-deleted account succeeds with zero counts.
// POST /api/account/delete
func (ac *AccountController) Delete(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	summary, err := ac.deleter.DeleteAccount(accountID)
	if err != nil {
		if ac.auditService != nil {
			ac.auditService.LogAccountDeletion(accountID, nil, err)
		}
		if errors.Is(err, lifecycle.ErrAccountNotFound) {
			respondNotFound(c, "account")
			return
		}
		respondInternalError(c, err, "delete account")
		return
	}

	if ac.auditService != nil && !summary.AlreadyDeleted {
		ac.auditService.LogAccountDeletion(accountID, summary, nil)
	}

	c.JSON(http.StatusOK, DeleteResponse{Success: true, DeletedCounts: summary})
}

// Recover restores the authenticated account together with the content
// deleted in the same cascade. Content deleted independently beforehand
// stays deleted.
// POST /api/account/recover
func (ac *AccountController) Recover(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	summary, err := ac.recoverer.RecoverAccount(accountID)
	if err != nil {
		if ac.auditService != nil {
			ac.auditService.LogAccountRecovery(accountID, nil, err)
		}
		switch {
		case errors.Is(err, lifecycle.ErrAccountNotFound):
			respondNotFound(c, "account")
		case errors.Is(err, lifecycle.ErrNoRecoverableAccount):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "no recoverable account",
				Code:  "no_recoverable_account",
			})
		default:
			respondInternalError(c, err, "recover account")
		}
		return
	}

	if ac.auditService != nil {
		ac.auditService.LogAccountRecovery(accountID, summary, nil)
	}

	c.JSON(http.StatusOK, RecoverResponse{Success: true, RecoveredCounts: summary})
}

// Status reports the authenticated account's deletion state and per-type
// content counts.
// GET /api/account/status
func (ac *AccountController) Status(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	status, err := ac.reporter.Report(accountID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrAccountNotFound) {
			respondNotFound(c, "account")
			return
		}
		respondInternalError(c, err, "account status")
		return
	}

	c.JSON(http.StatusOK, status)
}
