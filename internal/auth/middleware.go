package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wordhook/internal/config"
	"wordhook/internal/entities"
)

// Context keys for account data
const (
	ContextKeyAccountID = "auth_account_id"
	ContextKeyUsername  = "auth_username"
	ContextKeyRole      = "auth_role"
	ContextKeyAuthType  = "auth_type" // "session", "bearer", or "none"
)

// AuthType indicates how the caller was authenticated
type AuthType string

const (
	AuthTypeNone    AuthType = "none"
	AuthTypeSession AuthType = "session"
	AuthTypeBearer  AuthType = "bearer"
)

// Middleware handles authentication for HTTP requests.
type Middleware struct {
	service        *Service
	sessionManager *SessionManager
	config         config.Auth
	publicPaths    map[string]bool
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, sessionManager *SessionManager, cfg config.Auth) *Middleware {
	publicPaths := map[string]bool{
		"/health":            true,
		"/ping":              true,
		"/api/auth/register": true,
		"/api/auth/login":    true,
	}

	return &Middleware{
		service:        service,
		sessionManager: sessionManager,
		config:         cfg,
		publicPaths:    publicPaths,
	}
}

// Handler returns a Gin middleware handler that authenticates requests.
//
// Soft-deleted accounts pass: rejecting them here would cut off the
// recovery endpoint.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.publicPaths[c.Request.URL.Path] {
			c.Set(ContextKeyAuthType, AuthTypeNone)
			c.Next()
			return
		}

		// Try Bearer token first (for API clients)
		if account := m.tryBearerAuth(c); account != nil {
			m.setAccountContext(c, account, AuthTypeBearer)
			c.Next()
			return
		}

		// Try session auth (for browser clients)
		if account := m.trySessionAuth(c); account != nil {
			m.setAccountContext(c, account, AuthTypeSession)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
	}
}

// tryBearerAuth attempts to authenticate using a Bearer token.
func (m *Middleware) tryBearerAuth(c *gin.Context) *entities.Account {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil
	}

	account, err := m.service.ValidateToken(parts[1])
	if err != nil {
		return nil
	}
	return account
}

// trySessionAuth attempts to authenticate using the session cookie.
func (m *Middleware) trySessionAuth(c *gin.Context) *entities.Account {
	if m.sessionManager == nil {
		return nil
	}

	accountID := m.sessionManager.GetAccountID(c.Request)
	if accountID == 0 {
		return nil
	}

	account, err := m.service.GetAccountByID(accountID)
	if err != nil {
		return nil
	}
	return account
}

// setAccountContext stores account information in the Gin context.
func (m *Middleware) setAccountContext(c *gin.Context, account *entities.Account, authType AuthType) {
	c.Set(ContextKeyAccountID, account.ID)
	c.Set(ContextKeyUsername, account.Username)
	c.Set(ContextKeyRole, account.Role)
	c.Set(ContextKeyAuthType, authType)
}

// RequireRole returns a middleware that requires a specific role.
func (m *Middleware) RequireRole(roles ...entities.AccountRole) gin.HandlerFunc {
	roleSet := make(map[entities.AccountRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		if !roleSet[GetAccountRole(c)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient permissions",
			})
			return
		}
		c.Next()
	}
}

// Helper functions to extract auth data from the Gin context

// GetAccountID retrieves the authenticated account's ID from the context.
// Returns 0 if not authenticated.
func GetAccountID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyAccountID); exists {
		if accountID, ok := id.(uint); ok {
			return accountID
		}
	}
	return 0
}

// GetUsername retrieves the authenticated account's username from the context.
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}

// GetAccountRole retrieves the authenticated account's role from the context.
func GetAccountRole(c *gin.Context) entities.AccountRole {
	if r, exists := c.Get(ContextKeyRole); exists {
		if role, ok := r.(entities.AccountRole); ok {
			return role
		}
	}
	return ""
}

// GetAuthType retrieves the authentication method used.
func GetAuthType(c *gin.Context) AuthType {
	if t, exists := c.Get(ContextKeyAuthType); exists {
		if authType, ok := t.(AuthType); ok {
			return authType
		}
	}
	return AuthTypeNone
}
