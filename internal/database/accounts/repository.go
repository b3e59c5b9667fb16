// Package accounts provides database operations for account management.
//
// Lookups intentionally return soft-deleted accounts as well: a deleted
// account must still be able to authenticate in order to reach the recovery
// operation.
//
// # Usage
//
//	repo := accounts.NewRepository(db)
//	account, err := repo.GetByProviderAccountID(providerID)
package accounts

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"gorm.io/gorm"

	"wordhook/internal/entities"
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAccount creates a new account. When the authentication provider did
// not hand us a stable identity (local registration), one is generated.
func (r *Repository) CreateAccount(account *entities.Account) (*entities.Account, error) {
	if account.ProviderAccountID == "" {
		id, err := generateProviderID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate provider account id: %w", err)
		}
		account.ProviderAccountID = id
	}
	if account.Role == "" {
		account.Role = entities.RoleUser
	}

	if err := r.db.Create(account).Error; err != nil {
		return nil, err
	}

	return account, nil
}

// GetByID retrieves an account by ID, deleted or not.
func (r *Repository) GetByID(id uint) (*entities.Account, error) {
	var account entities.Account
	err := r.db.First(&account, id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByProviderAccountID retrieves an account by its external identity.
func (r *Repository) GetByProviderAccountID(providerID string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Where("provider_account_id = ?", providerID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByUsername retrieves an account by username.
func (r *Repository) GetByUsername(username string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Where("username = ?", username).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByTokenHash retrieves an account by the hash of its API token.
func (r *Repository) GetByTokenHash(tokenHash string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Where("token_hash = ?", tokenHash).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateTokenHash stores a new API token hash, or clears it when empty.
func (r *Repository) UpdateTokenHash(id uint, tokenHash string) error {
	return r.db.Model(&entities.Account{}).Where("id = ?", id).
		Update("token_hash", tokenHash).Error
}

// UpdatePasswordHash stores a new password hash.
func (r *Repository) UpdatePasswordHash(id uint, passwordHash string) error {
	return r.db.Model(&entities.Account{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// CountAccounts returns the total number of accounts, deleted included.
func (r *Repository) CountAccounts() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Account{}).Count(&count).Error
	return count, err
}

func generateProviderID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "local:" + hex.EncodeToString(bytes), nil
}
