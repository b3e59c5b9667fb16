package entities

import "time"

// Word is a canonical dictionary key. Rows are created lazily the first time
// any definition, hook or vocabulary entry references the word.
type Word struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Word      string    `gorm:"uniqueIndex;size:100" json:"word"`
	CreatedAt time.Time `json:"created_at"`
}

// Definition is a word sense contributed by an account.
//
// When soft-deleted, Body is rewritten to the reversible annotated form (see
// internal/annotate) and DeletedAt carries the deletion epoch. Rows cascaded
// by an account deletion share the account's epoch; rows deleted individually
// carry their own.
type Definition struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	WordID    uint       `gorm:"index;index:idx_definitions_word_account" json:"word_id"`
	AccountID uint       `gorm:"index;index:idx_definitions_word_account" json:"account_id"`
	Body      string     `gorm:"type:text" json:"body"`
	IsPublic  bool       `gorm:"default:true" json:"is_public"`
	Word      Word       `gorm:"foreignKey:WordID" json:"word_ref,omitempty"`
	Account   Account    `gorm:"foreignKey:AccountID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// MemoryHook is a mnemonic aid contributed by an account. Same lifecycle
// shape as Definition.
type MemoryHook struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	WordID    uint       `gorm:"index" json:"word_id"`
	AccountID uint       `gorm:"index" json:"account_id"`
	Body      string     `gorm:"type:text" json:"body"`
	IsPublic  bool       `gorm:"default:true" json:"is_public"`
	Word      Word       `gorm:"foreignKey:WordID" json:"word_ref,omitempty"`
	Account   Account    `gorm:"foreignKey:AccountID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// VocabularyEntry is an account's personal association between a word, a
// chosen definition and an optional chosen memory hook. At most one active
// entry exists per (account, word) pair.
type VocabularyEntry struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	AccountID    uint       `gorm:"index;index:idx_vocabulary_account_word" json:"account_id"`
	WordID       uint       `gorm:"index;index:idx_vocabulary_account_word" json:"word_id"`
	DefinitionID uint       `gorm:"index" json:"definition_id"`
	MemoryHookID *uint      `gorm:"index" json:"memory_hook_id,omitempty"`
	Word         Word       `gorm:"foreignKey:WordID" json:"word_ref,omitempty"`
	Definition   Definition `gorm:"foreignKey:DefinitionID" json:"definition,omitempty"`
	MemoryHook   *MemoryHook `gorm:"foreignKey:MemoryHookID" json:"memory_hook,omitempty"`
	Account      Account    `gorm:"foreignKey:AccountID" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

func (Word) TableName() string {
	return "words"
}

func (Definition) TableName() string {
	return "definitions"
}

func (MemoryHook) TableName() string {
	return "memory_hooks"
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}
