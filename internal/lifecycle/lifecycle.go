// Package lifecycle implements cascading account soft-deletion and
// epoch-correlated recovery.
//
// # Deletion epoch
//
// Deleting an account stamps one shared instant (the epoch) onto the account
// row and every active row it owns: definitions, memory hooks, vocabulary
// entries. Rows the user had already deleted individually keep their own
// earlier instant and are not touched.
//
// Recovery reads the account's epoch and restores exactly the rows whose
// deleted_at equals it. That equality is the sole correlation mechanism
// distinguishing "deleted together with the account" from "already gone
// before" — an independently deleted definition stays deleted after the
// account comes back.
//
// Both operations run as a single GORM transaction with one bulk update per
// entity type, so a concurrent reader never observes a partial cascade. Text
// annotation (see internal/annotate) is folded into the same bulk statements
// via SQL string functions.
package lifecycle

import (
	"errors"
)

var (
	// ErrAccountNotFound is returned when no account exists for the id.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoRecoverableAccount is returned when the account exists but is not
	// in a deleted state.
	ErrNoRecoverableAccount = errors.New("no recoverable account")
)

// DeletionSummary reports how many rows a cascade stamped with the epoch.
type DeletionSummary struct {
	AlreadyDeleted    bool  `json:"alreadyDeleted,omitempty"`
	Definitions       int64 `json:"definitions"`
	MemoryHooks       int64 `json:"hooks"`
	VocabularyEntries int64 `json:"vocabularyEntries"`
}

// RecoverySummary reports how many rows a recovery restored.
type RecoverySummary struct {
	Definitions       int64 `json:"definitions"`
	MemoryHooks       int64 `json:"hooks"`
	VocabularyEntries int64 `json:"vocabularyEntries"`
}
