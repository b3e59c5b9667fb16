package audit

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	auditRepo "wordhook/internal/database/audit"
	"wordhook/internal/entities"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	repo := auditRepo.NewRepository(db)
	svc := NewService(repo, nil)

	return svc, db
}

func TestService_Log(t *testing.T) {
	svc, db := setupTestService(t)

	event := &entities.AuditEvent{
		AccountID:   1,
		EventType:   entities.AuditEventAuth,
		Action:      "login",
		Description: "Test login event",
		Status:      entities.AuditStatusSuccess,
	}

	err := svc.Log(event)
	require.NoError(t, err)

	var saved entities.AuditEvent
	err = db.First(&saved, event.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "login", saved.Action)
}

func TestService_LogAccountDeletion(t *testing.T) {
	svc, db := setupTestService(t)

	t.Run("successful deletion", func(t *testing.T) {
		summary := map[string]int64{"definitions": 3, "hooks": 2, "vocabularyEntries": 1}
		svc.LogAccountDeletion(1, summary, nil)

		// Allow async operation to complete
		time.Sleep(50 * time.Millisecond)

		var event entities.AuditEvent
		err := db.Where("action = ?", "account_delete").First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, entities.AuditEventDelete, event.EventType)
		assert.Equal(t, entities.AuditStatusSuccess, event.Status)
		assert.Equal(t, "account", event.EntityType)
		require.NotNil(t, event.EntityID)
		assert.Equal(t, uint(1), *event.EntityID)
		assert.Contains(t, event.Metadata, "definitions")
	})

	t.Run("failed deletion", func(t *testing.T) {
		svc.LogAccountDeletion(2, nil, errors.New("database is locked"))

		time.Sleep(50 * time.Millisecond)

		var event entities.AuditEvent
		err := db.Where("account_id = ?", 2).First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, entities.AuditStatusFailed, event.Status)
		assert.Contains(t, event.ErrorMsg, "database is locked")
	})
}

func TestService_LogAccountRecovery(t *testing.T) {
	svc, db := setupTestService(t)

	summary := map[string]int64{"definitions": 3}
	svc.LogAccountRecovery(1, summary, nil)

	time.Sleep(50 * time.Millisecond)

	var event entities.AuditEvent
	err := db.Where("action = ?", "account_recover").First(&event).Error
	require.NoError(t, err)
	assert.Equal(t, entities.AuditEventRecover, event.EventType)
	assert.Contains(t, event.Metadata, "definitions")
}

func TestService_LogAuth(t *testing.T) {
	svc, db := setupTestService(t)

	t.Run("successful login", func(t *testing.T) {
		svc.LogAuth(1, "login", "192.168.1.1", "Mozilla/5.0", true)

		time.Sleep(50 * time.Millisecond)

		var event entities.AuditEvent
		err := db.Where("action = ?", "login").First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, entities.AuditStatusSuccess, event.Status)
		assert.Equal(t, "192.168.1.1", event.IPAddress)
	})

	t.Run("failed login", func(t *testing.T) {
		svc.LogAuth(0, "login_failed", "10.0.0.1", "curl/7.68.0", false)

		time.Sleep(50 * time.Millisecond)

		var event entities.AuditEvent
		err := db.Where("action = ?", "login_failed").First(&event).Error
		require.NoError(t, err)
		assert.Equal(t, entities.AuditStatusFailed, event.Status)
	})
}

func TestService_LogContribution(t *testing.T) {
	svc, db := setupTestService(t)

	svc.LogContribution(1, "definition", 42, "definition_delete", "Deleted definition for: cat")

	time.Sleep(50 * time.Millisecond)

	var event entities.AuditEvent
	err := db.Where("action = ?", "definition_delete").First(&event).Error
	require.NoError(t, err)
	assert.Equal(t, entities.AuditEventContrib, event.EventType)
	require.NotNil(t, event.EntityID)
	assert.Equal(t, uint(42), *event.EntityID)
}

func TestService_GetEvents(t *testing.T) {
	svc, _ := setupTestService(t)

	// Create some events synchronously
	for i := 0; i < 5; i++ {
		err := svc.Log(&entities.AuditEvent{
			AccountID: 1,
			EventType: entities.AuditEventAuth,
			Action:    "test",
			Status:    entities.AuditStatusSuccess,
		})
		require.NoError(t, err)
	}

	events, total, err := svc.GetEvents(1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, events, 5)
}

func TestService_DeleteOldEvents(t *testing.T) {
	svc, db := setupTestService(t)

	oldEvent := &entities.AuditEvent{
		AccountID: 1,
		EventType: entities.AuditEventAuth,
		Action:    "old",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, db.Create(oldEvent).Error)

	newEvent := &entities.AuditEvent{
		AccountID: 1,
		EventType: entities.AuditEventDelete,
		Action:    "new",
		Status:    entities.AuditStatusSuccess,
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(newEvent).Error)

	// Delete events older than 24 hours
	deleted, err := svc.DeleteOldEvents(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []entities.AuditEvent
	db.Find(&remaining)
	assert.Len(t, remaining, 1)
	assert.Equal(t, "new", remaining[0].Action)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10c", 10, "exactly10c"},
		{"this is a very long string", 10, "this is..."},
		{"", 5, ""},
	}

	for _, tc := range tests {
		result := truncate(tc.input, tc.maxLen)
		assert.Equal(t, tc.expected, result)
	}
}
