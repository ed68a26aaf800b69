package models

import "time"

// Product: catalogus-sjabloon voor het vooraf invullen van nieuwe
// bestellingen. Bestellingen kopiëren de waarden; er is geen foreign key.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;unique" json:"name"`
	Cost      float64   `json:"cost"`
	Price     float64   `json:"price"`
	Margin    float64   `json:"margin"` // voorgestelde marge per stuk
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
