package audit

import (
	"fmt"

	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuditLogResponse struct {
	ID        uint               `json:"id"`
	CreatedAt string             `json:"created_at"`
	OrderID   uint               `json:"order_id"`
	RoundID   *uint              `json:"round_id"`
	Action    models.AuditAction `json:"action"`
	Note      string             `json:"note"`
	Delta     string             `json:"delta"`
}

// GET /api/audit-logs?order_id=1&round_id=2&action=misprint_add
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.AuditLog{})

		if s := c.Query("order_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err == nil && id > 0 {
				dbq = dbq.Where("order_id = ?", id)
			}
		}
		if s := c.Query("round_id"); s != "" {
			var id uint
			if _, err := fmt.Sscan(s, &id); err == nil && id > 0 {
				dbq = dbq.Where("round_id = ?", id)
			}
		}
		if s := c.Query("action"); s != "" {
			dbq = dbq.Where("action = ?", s)
		}

		var logs []models.AuditLog
		if err := dbq.Order("created_at DESC").Limit(500).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Auditlog kon niet opgehaald worden")
		}

		resp := make([]AuditLogResponse, 0, len(logs))
		for _, entry := range logs {
			resp = append(resp, AuditLogResponse{
				ID:        entry.ID,
				CreatedAt: entry.CreatedAt.Format("2006-01-02 15:04:05"),
				OrderID:   entry.OrderID,
				RoundID:   entry.RoundID,
				Action:    entry.Action,
				Note:      entry.Note,
				Delta:     entry.Delta,
			})
		}

		return c.JSON(resp)
	}
}
