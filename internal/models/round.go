package models

import "time"

type RoundStatus string

const (
	RoundStatusOpen   RoundStatus = "open"
	RoundStatusClosed RoundStatus = "closed"
)

// Round: een bestelronde. Er hoort maximaal één ronde open te staan;
// dat wordt afgedwongen door de "zet open"-sweep, niet door de database.
type Round struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"size:100;not null;index" json:"name"`
	Status    RoundStatus `gorm:"size:10;not null;default:'closed'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
