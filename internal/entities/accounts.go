package entities

import "time"

type AccountRole string

const (
	RoleUser  AccountRole = "user"
	RoleAdmin AccountRole = "admin"
)

// Account is a registered user. ProviderAccountID is the stable identity
// reference handed to us by the authentication provider; lookups from request
// credentials resolve to it.
//
// DeletedAt is a plain nullable timestamp rather than gorm.DeletedAt: account
// deletion cascades a shared epoch onto owned rows and recovery selects rows
// by exact epoch equality, so the column must stay fully under application
// control instead of being scoped away by GORM.
type Account struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	ProviderAccountID string      `gorm:"uniqueIndex;size:128" json:"provider_account_id"`
	Username          string      `gorm:"uniqueIndex;size:100" json:"username"`
	Email             string      `gorm:"uniqueIndex;size:255" json:"email"`
	Nickname          string      `gorm:"size:100" json:"nickname,omitempty"`
	PasswordHash      string      `gorm:"size:255" json:"-"`
	TokenHash         string      `gorm:"index;size:64" json:"-"`
	Role              AccountRole `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	DeletedAt         *time.Time  `gorm:"index" json:"deleted_at,omitempty"`
}

func (Account) TableName() string {
	return "accounts"
}

// IsDeleted reports whether the account is currently soft-deleted.
func (a *Account) IsDeleted() bool {
	return a.DeletedAt != nil
}
