package audit

import (
	"encoding/json"
	"log"
	"time"

	"wordhook/internal/database/audit"
	"wordhook/internal/entities"
)

// Service provides high-level audit logging functionality.
//
// Events go to the database log; account lifecycle events are additionally
// dumped to the file auditor when one is configured.
type Service struct {
	repo    *audit.Repository
	auditor *Auditor
}

// NewService creates a new audit service. The auditor may be nil to
// disable file dumps.
func NewService(repo *audit.Repository, auditor *Auditor) *Service {
	return &Service{repo: repo, auditor: auditor}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogAccountDeletion records an account deletion cascade. The summary
// (counts of cascaded rows) is stored as metadata and dumped to the file
// auditor.
func (s *Service) LogAccountDeletion(accountID uint, summary any, err error) {
	event := &entities.AuditEvent{
		AccountID:   accountID,
		EventType:   entities.AuditEventDelete,
		Action:      "account_delete",
		Description: "Soft-deleted account and owned content",
		EntityType:  "account",
		EntityID:    &accountID,
		Status:      entities.AuditStatusSuccess,
	}
	s.finishLifecycleEvent(event, summary, err)
}

// LogAccountRecovery records an account recovery.
func (s *Service) LogAccountRecovery(accountID uint, summary any, err error) {
	event := &entities.AuditEvent{
		AccountID:   accountID,
		EventType:   entities.AuditEventRecover,
		Action:      "account_recover",
		Description: "Recovered account and epoch-matched content",
		EntityType:  "account",
		EntityID:    &accountID,
		Status:      entities.AuditStatusSuccess,
	}
	s.finishLifecycleEvent(event, summary, err)
}

func (s *Service) finishLifecycleEvent(event *entities.AuditEvent, summary any, err error) {
	if summary != nil {
		if mdBytes, e := json.Marshal(summary); e == nil {
			event.Metadata = string(mdBytes)
		}
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	if s.auditor != nil {
		if _, e := s.auditor.SaveJSON(event); e != nil {
			log.Printf("Failed to save audit file: %v", e)
		}
	}

	s.LogAsync(event)
}

// LogContribution records a definition or memory hook change.
func (s *Service) LogContribution(accountID uint, entityType string, entityID uint, action, description string) {
	event := &entities.AuditEvent{
		AccountID:   accountID,
		EventType:   entities.AuditEventContrib,
		Action:      action,
		Description: description,
		EntityType:  entityType,
		EntityID:    &entityID,
		Status:      entities.AuditStatusSuccess,
	}

	s.LogAsync(event)
}

// LogAuth records an authentication event.
func (s *Service) LogAuth(accountID uint, action string, ipAddr, userAgent string, success bool) {
	event := &entities.AuditEvent{
		AccountID: accountID,
		EventType: entities.AuditEventAuth,
		Action:    action,
		IPAddress: ipAddr,
		UserAgent: truncate(userAgent, 500),
		Status:    entities.AuditStatusSuccess,
	}

	if !success {
		event.Status = entities.AuditStatusFailed
	}

	s.LogAsync(event)
}

// LogSettings records a settings change event.
func (s *Service) LogSettings(accountID uint, action, description string) {
	event := &entities.AuditEvent{
		AccountID:   accountID,
		EventType:   entities.AuditEventSettings,
		Action:      action,
		Description: description,
		Status:      entities.AuditStatusSuccess,
	}

	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(accountID uint, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(accountID, limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, accountID uint, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, accountID, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
