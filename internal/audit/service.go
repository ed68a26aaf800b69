package audit

import (
	"encoding/json"
	"fmt"

	"madcrew-backend/internal/database"
	"madcrew-backend/internal/models"
)

type LogOptions struct {
	OrderID uint
	RoundID *uint
	Action  models.AuditAction
	Note    string
	Delta   any // gestructureerde diff, optioneel
}

// WriteLog: voegt één regel toe aan het audit-spoor. Regels worden nooit
// gewijzigd of verwijderd.
func WriteLog(opts LogOptions) error {
	// Postgres jsonb accepteert geen lege string; gebruik de JSON-waarde null
	deltaStr := "null"
	if opts.Delta != nil {
		if b, err := json.Marshal(opts.Delta); err == nil {
			deltaStr = string(b)
		}
	}

	entry := models.AuditLog{
		OrderID: opts.OrderID,
		RoundID: opts.RoundID,
		Action:  opts.Action,
		Note:    opts.Note,
		Delta:   deltaStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log kon niet opgeslagen worden: %w", err)
	}

	return nil
}

// FieldChange: van/naar-paar voor in een delta.
type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}
