package models

import (
	"strings"
	"time"
)

// Order: één bestelling binnen een bestelronde.
// Total is normaal Qty×Price maar kan bij import of bewerken afwijken.
// Margin is de totale marge (bufferbijdrage) van deze bestelling.
type Order struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Date     string  `gorm:"size:10;index" json:"date"` // "YYYY-MM-DD"
	Customer string  `gorm:"size:100" json:"customer"`
	Product  string  `gorm:"size:100" json:"product"`
	Color    string  `gorm:"size:50" json:"color"`
	Size     string  `gorm:"size:20" json:"size"`
	Qty      int     `gorm:"not null" json:"qty"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
	Margin   float64 `json:"margin"`

	// Statusvlaggen: legacy Excel-waarden ("Ja"/"Nee") blijven bewaard,
	// nieuwe schrijfacties gebruiken "ja"/"nee". Lezen via FlagSet.
	Paid          string `gorm:"size:20" json:"paid"`
	SentToPrinter string `gorm:"size:20" json:"sent_to_printer"`
	Delivered     string `gorm:"size:20" json:"delivered"`

	Notes string `gorm:"size:500" json:"notes"`

	// Misdruk-administratie. Invariant: 0 <= ResoldQty <= MisprintQty.
	// Misprint (bool) is het oude vlag-model; wordt nog gezet maar niet
	// meer teruggelezen.
	Misprint    bool `json:"misprint"`
	MisprintQty int  `gorm:"not null;default:0" json:"misprint_qty"`
	ResoldQty   int  `gorm:"not null;default:0" json:"resold_qty"`

	RoundID *uint `gorm:"index" json:"round_id"`
	Seq     int   `gorm:"index" json:"seq"` // volgorde binnen de ronde

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FlagSet: interpreteert een statusvlag. Accepteert de legacy
// Excel-notatie ("Ja") naast "true"/"1".
func FlagSet(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "ja", "true", "1":
		return true
	}
	return false
}

// FlagString: canonieke opslagvorm voor een statusvlag.
func FlagString(v bool) string {
	if v {
		return "ja"
	}
	return "nee"
}
