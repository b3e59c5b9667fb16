// Package words provides database operations for words and the content
// contributed against them: definitions and memory hooks.
//
// Single-item soft deletes here stamp their own deletion instant, independent
// of any account-level cascade. That distinction is what lets recovery tell
// "deleted together with the account" apart from "already gone before" (see
// internal/lifecycle).
//
// # Usage
//
//	repo := words.NewRepository(db)
//	def, err := repo.CreateDefinition(accountID, "cat", "a furry animal", true)
package words

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"wordhook/internal/annotate"
	"wordhook/internal/entities"
)

var (
	// ErrDuplicateDefinition is returned when the account already has an
	// active definition for the word.
	ErrDuplicateDefinition = errors.New("account already has an active definition for this word")
	// ErrDefinitionInUse is returned when an active vocabulary entry still
	// references the definition.
	ErrDefinitionInUse = errors.New("definition is referenced by an active vocabulary entry")
)

// Repository handles word, definition and memory hook database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreateWord resolves the canonical word row, creating it lazily on
// first use.
func (r *Repository) GetOrCreateWord(text string) (*entities.Word, error) {
	return getOrCreateWord(r.db, text)
}

func getOrCreateWord(tx *gorm.DB, text string) (*entities.Word, error) {
	var word entities.Word
	err := tx.Where("word = ?", text).First(&word).Error
	if err == nil {
		return &word, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	word = entities.Word{Word: text}
	if err := tx.Create(&word).Error; err != nil {
		return nil, err
	}
	return &word, nil
}

// CreateDefinition contributes a new definition for a word. At most one
// active definition per (word, account) is allowed.
func (r *Repository) CreateDefinition(accountID uint, wordText, body string, isPublic bool) (*entities.Definition, error) {
	var created *entities.Definition
	err := r.db.Transaction(func(tx *gorm.DB) error {
		word, err := getOrCreateWord(tx, wordText)
		if err != nil {
			return err
		}

		var existing entities.Definition
		err = tx.Where("word_id = ? AND account_id = ? AND deleted_at IS NULL", word.ID, accountID).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateDefinition
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		def := entities.Definition{
			WordID:    word.ID,
			AccountID: accountID,
			Body:      body,
			IsPublic:  isPublic,
		}
		if err := tx.Create(&def).Error; err != nil {
			return err
		}
		def.Word = *word
		created = &def
		return nil
	})
	return created, err
}

// CreateMemoryHook contributes a new memory hook for a word.
func (r *Repository) CreateMemoryHook(accountID uint, wordText, body string, isPublic bool) (*entities.MemoryHook, error) {
	var created *entities.MemoryHook
	err := r.db.Transaction(func(tx *gorm.DB) error {
		word, err := getOrCreateWord(tx, wordText)
		if err != nil {
			return err
		}

		hook := entities.MemoryHook{
			WordID:    word.ID,
			AccountID: accountID,
			Body:      body,
			IsPublic:  isPublic,
		}
		if err := tx.Create(&hook).Error; err != nil {
			return err
		}
		hook.Word = *word
		created = &hook
		return nil
	})
	return created, err
}

// GetDefinitionByID retrieves a definition, deleted or not.
func (r *Repository) GetDefinitionByID(id uint) (*entities.Definition, error) {
	var def entities.Definition
	err := r.db.Preload("Word").First(&def, id).Error
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// GetMemoryHookByID retrieves a memory hook, deleted or not.
func (r *Repository) GetMemoryHookByID(id uint) (*entities.MemoryHook, error) {
	var hook entities.MemoryHook
	err := r.db.Preload("Word").First(&hook, id).Error
	if err != nil {
		return nil, err
	}
	return &hook, nil
}

// ListDefinitionsForWord returns active definitions visible to the viewer:
// public ones plus the viewer's own private ones.
func (r *Repository) ListDefinitionsForWord(wordID, viewerID uint) ([]entities.Definition, error) {
	var defs []entities.Definition
	err := r.db.Where("word_id = ? AND deleted_at IS NULL AND (is_public = ? OR account_id = ?)",
		wordID, true, viewerID).
		Order("created_at ASC").Find(&defs).Error
	return defs, err
}

// ListMemoryHooksForWord returns active memory hooks visible to the viewer.
func (r *Repository) ListMemoryHooksForWord(wordID, viewerID uint) ([]entities.MemoryHook, error) {
	var hooks []entities.MemoryHook
	err := r.db.Where("word_id = ? AND deleted_at IS NULL AND (is_public = ? OR account_id = ?)",
		wordID, true, viewerID).
		Order("created_at ASC").Find(&hooks).Error
	return hooks, err
}

// GetWordByText retrieves a word row by its canonical text.
func (r *Repository) GetWordByText(text string) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Where("word = ?", text).First(&word).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// UpdateDefinition edits the body and visibility of an account's own active
// definition.
func (r *Repository) UpdateDefinition(id, accountID uint, body string, isPublic bool) (*entities.Definition, error) {
	var def entities.Definition
	err := r.db.Where("id = ? AND account_id = ? AND deleted_at IS NULL", id, accountID).
		First(&def).Error
	if err != nil {
		return nil, err
	}

	def.Body = body
	def.IsPublic = isPublic
	if err := r.db.Save(&def).Error; err != nil {
		return nil, err
	}
	return &def, nil
}

// UpdateMemoryHook edits the body and visibility of an account's own active
// memory hook.
func (r *Repository) UpdateMemoryHook(id, accountID uint, body string, isPublic bool) (*entities.MemoryHook, error) {
	var hook entities.MemoryHook
	err := r.db.Where("id = ? AND account_id = ? AND deleted_at IS NULL", id, accountID).
		First(&hook).Error
	if err != nil {
		return nil, err
	}

	hook.Body = body
	hook.IsPublic = isPublic
	if err := r.db.Save(&hook).Error; err != nil {
		return nil, err
	}
	return &hook, nil
}

// DeleteDefinition soft-deletes a single definition with its own deletion
// instant, annotating the body so the original text can be restored later.
// Deleting an already-deleted definition is a no-op returning the row
// unchanged. A definition still referenced by an active vocabulary entry
// cannot be deleted.
func (r *Repository) DeleteDefinition(id uint) (*entities.Definition, error) {
	var def entities.Definition
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&def, id).Error; err != nil {
			return err
		}
		if def.DeletedAt != nil {
			return nil
		}

		var inUse int64
		err := tx.Model(&entities.VocabularyEntry{}).
			Where("definition_id = ? AND deleted_at IS NULL", id).
			Count(&inUse).Error
		if err != nil {
			return err
		}
		if inUse > 0 {
			return ErrDefinitionInUse
		}

		now := time.Now()
		def.Body = annotate.Encode(def.Body, annotate.KindDefinition)
		def.DeletedAt = &now
		return tx.Save(&def).Error
	})
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// DeleteMemoryHook soft-deletes a single memory hook with its own deletion
// instant. Idempotent like DeleteDefinition; vocabulary entries referencing
// the hook keep working since the reference is optional.
func (r *Repository) DeleteMemoryHook(id uint) (*entities.MemoryHook, error) {
	var hook entities.MemoryHook
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&hook, id).Error; err != nil {
			return err
		}
		if hook.DeletedAt != nil {
			return nil
		}

		now := time.Now()
		hook.Body = annotate.Encode(hook.Body, annotate.KindMemoryHook)
		hook.DeletedAt = &now
		return tx.Save(&hook).Error
	})
	if err != nil {
		return nil, err
	}
	return &hook, nil
}
