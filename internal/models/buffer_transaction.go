package models

import "time"

type BufferTxType string

const (
	BufferTxMisprint BufferTxType = "misprint"
	BufferTxResold   BufferTxType = "resold"
	BufferTxAdjust   BufferTxType = "adjust"
)

// BufferTransaction: mutatie op de winstbuffer (getekend bedrag in euro's).
// Append-only; wordt alleen verwijderd via de cascade bij het verwijderen
// van de bijbehorende bestelling.
type BufferTransaction struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	OrderID   *uint        `gorm:"index" json:"order_id"`
	RoundID   *uint        `gorm:"index" json:"round_id"`
	Type      BufferTxType `gorm:"size:20;not null" json:"type"`
	Amount    float64      `gorm:"not null" json:"amount"`
	Note      string       `gorm:"size:255" json:"note"`
	CreatedAt time.Time    `json:"created_at"`
}
