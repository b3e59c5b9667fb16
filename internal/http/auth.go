package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wordhook/internal/audit"
	"wordhook/internal/auth"
	"wordhook/internal/entities"
)

// AuthController handles registration, login and API token management.
type AuthController struct {
	service        *auth.Service
	sessionManager *auth.SessionManager
	auditService   *audit.Service
}

func NewAuthController(service *auth.Service, sessionManager *auth.SessionManager, auditService *audit.Service) *AuthController {
	return &AuthController{
		service:        service,
		sessionManager: sessionManager,
		auditService:   auditService,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Nickname string `json:"nickname"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// accountResponse is the public view of an account.
type accountResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Deleted  bool   `json:"deleted"`
}

func newAccountResponse(account *entities.Account) accountResponse {
	return accountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Nickname: account.Nickname,
		Deleted:  account.IsDeleted(),
	}
}

// Register creates a new account.
// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username, email and password are required")
		return
	}

	account, err := a.service.Register(req.Username, req.Email, req.Nickname, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountExists):
			respondConflict(c, "account already exists", "account_exists")
		case errors.Is(err, auth.ErrPasswordTooShort),
			errors.Is(err, auth.ErrPasswordTooLong),
			errors.Is(err, auth.ErrUsernameInvalid),
			errors.Is(err, auth.ErrEmailInvalid):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "register account")
		}
		return
	}

	if a.auditService != nil {
		a.auditService.LogAuth(account.ID, "register", c.ClientIP(), c.Request.UserAgent(), true)
	}

	respondCreated(c, newAccountResponse(account))
}

// Login authenticates credentials and starts a session. A soft-deleted
// account may log in so its owner can reach the recovery endpoint.
// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	account, err := a.service.Authenticate(req.Username, req.Password)
	if err != nil {
		if a.auditService != nil {
			a.auditService.LogAuth(0, "login_failed", c.ClientIP(), c.Request.UserAgent(), false)
		}
		respondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if a.sessionManager != nil {
		if err := a.sessionManager.CreateSession(c.Request, account); err != nil {
			respondInternalError(c, err, "create session")
			return
		}
	}

	if a.auditService != nil {
		a.auditService.LogAuth(account.ID, "login", c.ClientIP(), c.Request.UserAgent(), true)
	}

	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Logout destroys the current session.
// POST /api/auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if a.sessionManager != nil {
		if err := a.sessionManager.DestroySession(c.Request); err != nil {
			respondInternalError(c, err, "destroy session")
			return
		}
	}

	if accountID := GetAccountID(c); accountID != 0 && a.auditService != nil {
		a.auditService.LogAuth(accountID, "logout", c.ClientIP(), c.Request.UserAgent(), true)
	}

	respondSuccess(c, "logged out")
}

// GenerateToken creates a new API token for the authenticated account.
// The plaintext token is returned once and never stored.
// POST /api/auth/token
func (a *AuthController) GenerateToken(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	token, err := a.service.GenerateToken(accountID)
	if err != nil {
		respondInternalError(c, err, "generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RevokeToken removes the authenticated account's API token.
// DELETE /api/auth/token
func (a *AuthController) RevokeToken(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	if err := a.service.RevokeToken(accountID); err != nil {
		respondInternalError(c, err, "revoke token")
		return
	}

	respondSuccess(c, "token revoked")
}
