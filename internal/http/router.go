package http

import (
	"github.com/gin-gonic/gin"

	"wordhook/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies, cfg.AuthService))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Auth endpoints
	if cfg.AuthService != nil {
		authController := NewAuthController(cfg.AuthService, cfg.SessionManager, cfg.AuditService)
		router.POST("/api/auth/register", authController.Register)
		router.POST("/api/auth/login", authController.Login)
		router.POST("/api/auth/logout", authController.Logout)
		router.POST("/api/auth/token", authController.GenerateToken)
		router.DELETE("/api/auth/token", authController.RevokeToken)
	}

	// Account lifecycle endpoints
	if cfg.AccountDeleter != nil {
		accountController := NewAccountController(cfg.AccountDeleter, cfg.AccountRecoverer, cfg.AccountReporter, cfg.AuditService)
		router.POST("/api/account/delete", accountController.Delete)
		router.POST("/api/account/recover", accountController.Recover)
		router.GET("/api/account/status", accountController.Status)
	}

	// Definition endpoints
	if cfg.DefinitionStore != nil {
		definitionsController := NewDefinitionsController(cfg.DefinitionStore, cfg.AuditService)
		router.POST("/api/definitions", definitionsController.Create)
		router.PUT("/api/definitions/:id", definitionsController.Update)
		router.DELETE("/api/definitions/:id", definitionsController.Delete)
	}

	// Memory hook endpoints
	if cfg.MemoryHookStore != nil {
		hooksController := NewHooksController(cfg.MemoryHookStore, cfg.AuditService)
		router.POST("/api/hooks", hooksController.Create)
		router.PUT("/api/hooks/:id", hooksController.Update)
		router.DELETE("/api/hooks/:id", hooksController.Delete)
	}

	// Vocabulary endpoints
	if cfg.VocabularyStore != nil {
		vocabController := NewVocabularyController(cfg.VocabularyStore)
		router.POST("/api/vocabulary", vocabController.Save)
		router.GET("/api/vocabulary", vocabController.List)
		router.DELETE("/api/vocabulary/:id", vocabController.Delete)
	}

	// Word browsing endpoints
	if cfg.WordStore != nil {
		wordsController := NewWordsController(cfg.WordStore)
		router.GET("/api/words/:word", wordsController.Get)
	}

	// Audit trail endpoints
	if cfg.AuditService != nil {
		auditController := NewAuditController(cfg.AuditService)
		router.GET("/api/audit/events", auditController.ListEvents)
	}

	return router
}
