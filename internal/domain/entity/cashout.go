package entity

import (
	"time"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
)

// DefaultCashOutReason is used when a cash-out request carries no reason
const DefaultCashOutReason = "Player cashed out"

// CashOut represents a player's request to withdraw money from the pot.
// It is created unconfirmed and confirmed exactly once; confirmation is
// irreversible and settles the player's total per the configured policy.
type CashOut struct {
	ID          string    // Opaque unique identifier
	PlayerID    string    // Owning player
	AmountCents int64     // Requested amount in cents, strictly positive
	Reason      string    // Free text, defaulted when empty
	Confirmed   bool      // false -> true, one-way
	CreatedAt   time.Time // Request time
}

// NewCashOut creates a new unconfirmed cash-out request with basic validation
func NewCashOut(
	id string,
	playerID string,
	amount string,
	reason string,
	timeProvider coreport.TimeProvider,
) (*CashOut, error) {
	if playerID == "" {
		return nil, errs.ErrInvalidPlayerID
	}

	amountCents, err := ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = DefaultCashOutReason
	}

	return &CashOut{
		ID:          id,
		PlayerID:    playerID,
		AmountCents: amountCents,
		Reason:      reason,
		Confirmed:   false,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// GetAmount returns the requested amount as a string with 2 decimal places
func (c *CashOut) GetAmount() string {
	return AmountInCentsToString(c.AmountCents)
}

// Confirm transitions the cash-out to confirmed. Confirming twice fails with
// ErrAlreadyConfirmed.
func (c *CashOut) Confirm() error {
	if c.Confirmed {
		return errs.ErrAlreadyConfirmed
	}
	c.Confirmed = true
	return nil
}
