package http

import (
	"wordhook/internal/audit"
	"wordhook/internal/auth"
	"wordhook/internal/config"
	"wordhook/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Account lifecycle
	AccountDeleter   AccountDeleter
	AccountRecoverer AccountRecoverer
	AccountReporter  AccountReporter

	// Content stores
	DefinitionStore DefinitionStore
	MemoryHookStore MemoryHookStore
	VocabularyStore VocabularyStore
	WordStore       WordStore

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	AuthConfig     config.Auth
	CSRFSecret     []byte
	SecureCookies  bool

	// Audit logging
	AuditService *audit.Service

	// Application info
	Version string
}
