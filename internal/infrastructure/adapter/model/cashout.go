package model

import (
	"time"
)

// CashOut represents the database model for cash-out requests
type CashOut struct {
	ID          string    `gorm:"primaryKey;size:64"`
	PlayerID    string    `gorm:"not null;size:64;index"`
	AmountCents int64     `gorm:"not null"`
	Reason      string    `gorm:"not null;size:255"`
	Confirmed   bool      `gorm:"not null;default:false;index"`
	Timestamp   time.Time `gorm:"not null;index"`

	Player Player `gorm:"foreignKey:PlayerID;references:ID"`
}

// TableName specifies the table name for CashOut
func (CashOut) TableName() string {
	return "cashouts"
}
