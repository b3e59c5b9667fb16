package lifecycle

import (
	"errors"

	"gorm.io/gorm"

	"wordhook/internal/annotate"
	"wordhook/internal/entities"
)

// RecoveryCoordinator restores a deleted account and exactly the content that
// was deleted as part of the same deletion event.
type RecoveryCoordinator struct {
	db *gorm.DB
}

// NewRecoveryCoordinator creates a coordinator bound to the given store.
func NewRecoveryCoordinator(db *gorm.DB) *RecoveryCoordinator {
	return &RecoveryCoordinator{db: db}
}

// RecoverAccount reverses a cascading deletion in one atomic transaction.
//
// The account's own deleted_at is the correlation epoch: only rows whose
// deleted_at equals it exactly are restored. Rows deleted independently
// before the account deletion carry a different instant and stay deleted.
// Restored definition and hook bodies have their deletion marker stripped,
// recovering the original text verbatim.
func (c *RecoveryCoordinator) RecoverAccount(accountID uint) (*RecoverySummary, error) {
	summary := &RecoverySummary{}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var account entities.Account
		if err := tx.First(&account, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}

		if account.DeletedAt == nil {
			return ErrNoRecoverableAccount
		}
		epoch := *account.DeletedAt

		err := tx.Model(&entities.Account{}).Where("id = ?", accountID).
			Update("deleted_at", nil).Error
		if err != nil {
			return err
		}

		// Decode while the rows are still selectable by epoch, then clear
		// the epoch in a second bulk statement whose row count is the number
		// restored. The LIKE guard keeps the strip a no-op on any body that
		// does not carry the marker.
		if err := decodeBodies(tx, &entities.Definition{}, annotate.KindDefinition, accountID, epoch); err != nil {
			return err
		}
		res := tx.Model(&entities.Definition{}).
			Where("account_id = ? AND deleted_at = ?", accountID, epoch).
			Update("deleted_at", nil)
		if res.Error != nil {
			return res.Error
		}
		summary.Definitions = res.RowsAffected

		if err := decodeBodies(tx, &entities.MemoryHook{}, annotate.KindMemoryHook, accountID, epoch); err != nil {
			return err
		}
		res = tx.Model(&entities.MemoryHook{}).
			Where("account_id = ? AND deleted_at = ?", accountID, epoch).
			Update("deleted_at", nil)
		if res.Error != nil {
			return res.Error
		}
		summary.MemoryHooks = res.RowsAffected

		res = tx.Model(&entities.VocabularyEntry{}).
			Where("account_id = ? AND deleted_at = ?", accountID, epoch).
			Update("deleted_at", nil)
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

// decodeBodies strips the kind's deletion marker from every epoch-matching
// row in one bulk update. substr arguments are 1-based; the marker is ASCII
// so byte and character lengths agree.
func decodeBodies(tx *gorm.DB, model any, kind annotate.Kind, accountID uint, epoch any) error {
	prefix := annotate.Prefix(kind)
	marker := len(prefix) + len(annotate.Suffix())

	return tx.Model(model).
		Where("account_id = ? AND deleted_at = ? AND body LIKE ?", accountID, epoch, prefix+"%").
		Update("body", gorm.Expr("substr(body, ?, length(body) - ?)", len(prefix)+1, marker)).
		Error
}
