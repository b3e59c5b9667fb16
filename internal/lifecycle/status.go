package lifecycle

import (
	"errors"

	"gorm.io/gorm"

	"wordhook/internal/entities"
)

// EntityCounts breaks down an account's rows of one entity type by lifecycle
// state.
type EntityCounts struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Deleted int64 `json:"deleted"`
}

// AccountStatus is the lifecycle report for an account: whether it is
// deleted, and how much of its content is active versus deleted. The UI uses
// it to decide whether to offer recovery.
type AccountStatus struct {
	AccountID         uint         `json:"account_id"`
	Nickname          string       `json:"nickname,omitempty"`
	IsDeleted         bool         `json:"is_deleted"`
	Definitions       EntityCounts `json:"definitions"`
	MemoryHooks       EntityCounts `json:"hooks"`
	VocabularyEntries EntityCounts `json:"vocabularyEntries"`
}

// StatusReporter assembles AccountStatus reports.
type StatusReporter struct {
	db *gorm.DB
}

// NewStatusReporter creates a reporter bound to the given store.
func NewStatusReporter(db *gorm.DB) *StatusReporter {
	return &StatusReporter{db: db}
}

// Report returns the lifecycle status of an account, deleted or not.
func (r *StatusReporter) Report(accountID uint) (*AccountStatus, error) {
	var account entities.Account
	if err := r.db.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	status := &AccountStatus{
		AccountID: account.ID,
		Nickname:  account.Nickname,
		IsDeleted: account.DeletedAt != nil,
	}

	var err error
	if status.Definitions, err = r.countFor(&entities.Definition{}, accountID); err != nil {
		return nil, err
	}
	if status.MemoryHooks, err = r.countFor(&entities.MemoryHook{}, accountID); err != nil {
		return nil, err
	}
	if status.VocabularyEntries, err = r.countFor(&entities.VocabularyEntry{}, accountID); err != nil {
		return nil, err
	}

	return status, nil
}

func (r *StatusReporter) countFor(model any, accountID uint) (EntityCounts, error) {
	var counts EntityCounts

	err := r.db.Model(model).Where("account_id = ?", accountID).
		Count(&counts.Total).Error
	if err != nil {
		return counts, err
	}

	err = r.db.Model(model).Where("account_id = ? AND deleted_at IS NULL", accountID).
		Count(&counts.Active).Error
	if err != nil {
		return counts, err
	}

	counts.Deleted = counts.Total - counts.Active
	return counts, nil
}
