package lifecycle

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"wordhook/internal/annotate"
	"wordhook/internal/entities"
)

// SoftDeleteCoordinator orchestrates the cascading logical deletion of an
// account and everything it owns.
type SoftDeleteCoordinator struct {
	db *gorm.DB
}

// NewSoftDeleteCoordinator creates a coordinator bound to the given store.
func NewSoftDeleteCoordinator(db *gorm.DB) *SoftDeleteCoordinator {
	return &SoftDeleteCoordinator{db: db}
}

// DeleteAccount logically deletes the account and all of its active content
// in one atomic transaction, stamping every affected row with the same
// deletion epoch.
//
// Calling it on an already-deleted account is an idempotent no-op: the
// existing epoch is never overwritten and the summary reports zero affected
// rows with AlreadyDeleted set. If any step fails, the whole transaction
// rolls back and no partial cascade is observable.
func (c *SoftDeleteCoordinator) DeleteAccount(accountID uint) (*DeletionSummary, error) {
	summary := &DeletionSummary{}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var account entities.Account
		if err := tx.First(&account, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		if account.DeletedAt != nil {
			summary.AlreadyDeleted = true
			return nil
		}

		epoch := time.Now()

		err := tx.Model(&entities.Account{}).Where("id = ?", accountID).
			Update("deleted_at", epoch).Error
		if err != nil {
			return err
		}

		// One bulk update per entity type. For text-carrying rows the
		// deletion marker is wrapped around the body in the same statement,
		// so annotation and epoch stamping commit together.
		res := tx.Model(&entities.Definition{}).
			Where("account_id = ? AND deleted_at IS NULL", accountID).
			Updates(map[string]any{
				"body":       gorm.Expr("? || body || ?", annotate.Prefix(annotate.KindDefinition), annotate.Suffix()),
				"deleted_at": epoch,
			})
		if res.Error != nil {
			return res.Error
		}
		summary.Definitions = res.RowsAffected

		res = tx.Model(&entities.MemoryHook{}).
			Where("account_id = ? AND deleted_at IS NULL", accountID).
			Updates(map[string]any{
				"body":       gorm.Expr("? || body || ?", annotate.Prefix(annotate.KindMemoryHook), annotate.Suffix()),
				"deleted_at": epoch,
			})
		if res.Error != nil {
			return res.Error
		}
		summary.MemoryHooks = res.RowsAffected

		res = tx.Model(&entities.VocabularyEntry{}).
			Where("account_id = ? AND deleted_at IS NULL", accountID).
			Update("deleted_at", epoch)
		if res.Error != nil {
			return res.Error
		}
		summary.VocabularyEntries = res.RowsAffected

		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
