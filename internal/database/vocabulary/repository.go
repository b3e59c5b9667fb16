// Package vocabulary provides database operations for personal vocabulary
// entries: an account's chosen definition (and optional memory hook) for a
// word.
//
// The invariant maintained here is at most one active entry per
// (account, word) pair; saving again updates the existing entry in place.
//
// # Usage
//
//	repo := vocabulary.NewRepository(db)
//	entry, created, err := repo.SaveToVocabulary(accountID, "cat", definitionID, nil)
package vocabulary

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"wordhook/internal/entities"
)

// Repository handles vocabulary entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new vocabulary repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveToVocabulary adds the word to the account's vocabulary list or, when an
// active entry for (account, word) already exists, repoints it at the given
// definition and hook. Returns the entry and whether it was newly created.
// Runs in one transaction so two saves for the same pair cannot produce two
// active entries.
func (r *Repository) SaveToVocabulary(accountID uint, wordText string, definitionID uint, memoryHookID *uint) (*entities.VocabularyEntry, bool, error) {
	var entry entities.VocabularyEntry
	var created bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var word entities.Word
		err := tx.Where("word = ?", wordText).First(&word).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			word = entities.Word{Word: wordText}
			err = tx.Create(&word).Error
		}
		if err != nil {
			return err
		}

		err = tx.Where("account_id = ? AND word_id = ? AND deleted_at IS NULL", accountID, word.ID).
			First(&entry).Error
		if err == nil {
			entry.DefinitionID = definitionID
			entry.MemoryHookID = memoryHookID
			entry.UpdatedAt = time.Now()
			return tx.Save(&entry).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		entry = entities.VocabularyEntry{
			AccountID:    accountID,
			WordID:       word.ID,
			DefinitionID: definitionID,
			MemoryHookID: memoryHookID,
		}
		created = true
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &entry, created, nil
}

// ListEntries returns the account's active vocabulary entries with their
// word, definition and hook loaded, most recently updated first.
func (r *Repository) ListEntries(accountID uint) ([]entities.VocabularyEntry, error) {
	var entries []entities.VocabularyEntry
	err := r.db.Preload("Word").Preload("Definition").Preload("MemoryHook").
		Where("account_id = ? AND deleted_at IS NULL", accountID).
		Order("updated_at DESC").Find(&entries).Error
	return entries, err
}

// GetEntryByID retrieves a vocabulary entry by ID, deleted or not.
func (r *Repository) GetEntryByID(id uint) (*entities.VocabularyEntry, error) {
	var entry entities.VocabularyEntry
	err := r.db.Preload("Word").First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry soft-deletes a single vocabulary entry with its own deletion
// instant. Deleting an already-deleted entry is a no-op.
func (r *Repository) DeleteEntry(id, accountID uint) (*entities.VocabularyEntry, error) {
	var entry entities.VocabularyEntry
	err := r.db.Where("id = ? AND account_id = ?", id, accountID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	if entry.DeletedAt != nil {
		return &entry, nil
	}

	now := time.Now()
	entry.DeletedAt = &now
	if err := r.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
