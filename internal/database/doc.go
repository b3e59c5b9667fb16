// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── accounts/        # Account lookup and credential storage
//	├── words/           # Words, definitions and memory hooks
//	├── vocabulary/      # Personal vocabulary entries
//	└── audit/           # Audit event log
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./wordhook.db")
//
//	// Create domain-specific repositories
//	accountsRepo := accounts.NewRepository(db.DB)
//	wordsRepo := words.NewRepository(db.DB)
//	vocabRepo := vocabulary.NewRepository(db.DB)
//
//	// Use repositories
//	account, err := accountsRepo.GetByID(123)
//	def, err := wordsRepo.GetDefinitionByID(42)
//
// # Soft deletion
//
// Accounts, definitions, memory hooks and vocabulary entries carry a nullable
// deleted_at column managed entirely by application code. A null value means
// active; any non-null value is the instant the row was logically deleted.
// Account-level cascades stamp one shared epoch across every row they touch
// (see internal/lifecycle); single-item deletes stamp their own. Nothing in
// this layer performs physical deletion of domain rows.
//
// # Adding a New Domain
//
// To add a new domain (e.g., reviews):
//
//  1. Create a new sub-package: internal/database/reviews/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Implement the interface the consuming controller declares
//  5. Add compile-time interface check: var _ SomeInterface = (*Repository)(nil)
package database
