package model

import (
	"time"
)

// Player represents the database model for players
type Player struct {
	ID         string    `gorm:"primaryKey;size:64"`
	Name       string    `gorm:"not null;size:255;index"`
	TotalCents int64     `gorm:"not null;default:0"` // Derived total in cents
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Player
func (Player) TableName() string {
	return "players"
}
