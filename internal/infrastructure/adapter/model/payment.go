package model

import (
	"time"
)

// Payment represents the database model for buy-ins and rebuys
type Payment struct {
	ID               string    `gorm:"primaryKey;size:64"`
	PlayerID         string    `gorm:"not null;size:64;index"`
	AmountCents      int64     `gorm:"not null"`
	Method           string    `gorm:"not null;size:50"`
	Type             string    `gorm:"not null;size:50;index"`
	DealerFeeApplied bool      `gorm:"not null;default:false"`
	Status           string    `gorm:"not null;size:50;index"`
	Timestamp        time.Time `gorm:"not null;index"`

	Player Player `gorm:"foreignKey:PlayerID;references:ID"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
