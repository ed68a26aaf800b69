package models

import "time"

type AuditAction string

const (
	AuditActionOrderCreate      AuditAction = "order_create"
	AuditActionOrderEdit        AuditAction = "order_edit"
	AuditActionOrderDelete      AuditAction = "order_delete"
	AuditActionSetPaid          AuditAction = "set_paid"
	AuditActionSetSentToPrinter AuditAction = "set_sent_to_printer"
	AuditActionSetDelivered     AuditAction = "set_delivered"
	AuditActionMisprintAdd      AuditAction = "misprint_add"
	AuditActionResaleAdd        AuditAction = "resale_add"
	AuditActionBufferAdjust     AuditAction = "buffer_adjust"
	AuditActionImport           AuditAction = "import"
	AuditActionRoundOpen        AuditAction = "round_open"
	AuditActionRoundClose       AuditAction = "round_close"
)

// AuditLog: append-only spoor van elke muterende actie. Wordt door de
// applicatie alleen geschreven en voor weergave gelezen, nooit voor logica.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OrderID uint  `gorm:"index" json:"order_id"`
	RoundID *uint `gorm:"index" json:"round_id"`

	Action AuditAction `gorm:"size:50;index" json:"action"`
	Note   string      `gorm:"size:255" json:"note"`

	// Gestructureerde diff (JSON), bijv. {"misprint_qty":{"from":0,"to":2}}
	Delta string `gorm:"type:jsonb" json:"delta"`
}
