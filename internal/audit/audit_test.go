package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordhook/internal/entities"
)

func TestAuditor(t *testing.T) {
	tempDir := "./test_audit"
	defer os.RemoveAll(tempDir)

	auditor := NewAuditor(tempDir)

	t.Run("SaveJSON creates audit directory and saves file", func(t *testing.T) {
		accountID := uint(7)
		event := &entities.AuditEvent{
			AccountID:   accountID,
			EventType:   entities.AuditEventDelete,
			Action:      "account_delete",
			Description: "Soft-deleted account and owned content",
			EntityType:  "account",
			EntityID:    &accountID,
			Status:      entities.AuditStatusSuccess,
		}

		filename, err := auditor.SaveJSON(event)
		require.NoError(t, err)
		assert.NotEmpty(t, filename)
		assert.Contains(t, filename, ".json")

		// Verify the directory was created
		_, err = os.Stat(tempDir)
		assert.NoError(t, err)

		// Verify the file content round-trips
		fileContent, err := os.ReadFile(filepath.Join(tempDir, filename))
		require.NoError(t, err)

		var saved entities.AuditEvent
		require.NoError(t, json.Unmarshal(fileContent, &saved))
		assert.Equal(t, "account_delete", saved.Action)
		assert.Equal(t, uint(7), saved.AccountID)
	})

	t.Run("SaveJSON generates unique filenames", func(t *testing.T) {
		testData := map[string]string{"key": "value"}

		filename1, err := auditor.SaveJSON(testData)
		require.NoError(t, err)

		filename2, err := auditor.SaveJSON(testData)
		require.NoError(t, err)

		assert.NotEqual(t, filename1, filename2)
	})
}
