package models

import "time"

// Resale: doorverkoop van misdruk-voorraad. Append-only.
type Resale struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      uint      `gorm:"index;not null" json:"order_id"`
	RoundID      *uint     `gorm:"index" json:"round_id"`
	Date         string    `gorm:"size:10" json:"date"` // "YYYY-MM-DD"
	Buyer        string    `gorm:"size:100" json:"buyer"`
	Qty          int       `gorm:"not null" json:"qty"`
	PricePerUnit float64   `gorm:"not null" json:"price_per_unit"`
	TotalAmount  float64   `gorm:"not null" json:"total_amount"`
	Note         string    `gorm:"size:255" json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}
