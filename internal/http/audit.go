package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wordhook/internal/audit"
	"wordhook/internal/entities"
)

// AuditController exposes the caller's own audit trail.
type AuditController struct {
	service *audit.Service
}

func NewAuditController(service *audit.Service) *AuditController {
	return &AuditController{service: service}
}

// ListEvents returns paginated audit events for the authenticated account,
// optionally filtered by event type.
// GET /api/audit/events?type=delete&limit=50&offset=0
func (ac *AuditController) ListEvents(c *gin.Context) {
	accountID := GetAccountID(c)
	if accountID == 0 {
		respondUnauthorized(c)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var events []entities.AuditEvent
	var total int64
	var err error

	if eventType := c.Query("type"); eventType != "" {
		events, total, err = ac.service.GetEventsByType(entities.AuditEventType(eventType), accountID, limit, offset)
	} else {
		events, total, err = ac.service.GetEvents(accountID, limit, offset)
	}
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
