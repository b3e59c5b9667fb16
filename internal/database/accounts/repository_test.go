package accounts

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wordhook/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_accounts_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Account{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_CreateAccount_GeneratesProviderID(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	account, err := repo.CreateAccount(&entities.Account{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Contains(t, account.ProviderAccountID, "local:")
	assert.Equal(t, entities.RoleUser, account.Role)
}

func TestRepository_CreateAccount_KeepsProviderID(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	account, err := repo.CreateAccount(&entities.Account{
		ProviderAccountID: "google:12345",
		Username:          "alice",
		Email:             "alice@example.com",
	})
	require.NoError(t, err)

	found, err := repo.GetByProviderAccountID("google:12345")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateAccount(&entities.Account{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	found, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_LookupsIncludeDeletedAccounts(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateAccount(&entities.Account{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, db.Model(&entities.Account{}).Where("id = ?", created.ID).
		Update("deleted_at", now).Error)

	// A deleted account must still resolve so its owner can recover it.
	found, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.NotNil(t, found.DeletedAt)
}

func TestRepository_UpdateTokenHash(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateAccount(&entities.Account{
		Username: "alice",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTokenHash(created.ID, "abc123"))

	found, err := repo.GetByTokenHash("abc123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
