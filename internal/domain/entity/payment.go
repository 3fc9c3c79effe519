package entity

import (
	"fmt"
	"time"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
)

// PaymentMethod represents how the money changed hands
type PaymentMethod string

// Payment methods
const (
	MethodCash     PaymentMethod = "Cash"
	MethodVenmo    PaymentMethod = "Venmo"
	MethodApplePay PaymentMethod = "Apple Pay"
	MethodZelle    PaymentMethod = "Zelle"
	MethodOther    PaymentMethod = "Other"
)

// TransactionType classifies a payment as a first buy-in or a rebuy
type TransactionType string

// Transaction types
const (
	TypeBuyIn TransactionType = "buy-in"
	TypeRebuy TransactionType = "rebuy"
)

// PaymentStatus defines the lifecycle state of a payment
type PaymentStatus string

// Payment lifecycle: pending -> confirmed, one-way
const (
	StatusPending   PaymentStatus = "pending"
	StatusConfirmed PaymentStatus = "confirmed"
)

// Payment represents a buy-in or rebuy submitted by a player. It is created
// pending and confirmed exactly once; the dealer-fee flag is frozen at
// submission time and never revisited.
type Payment struct {
	ID               string          // Opaque unique identifier
	PlayerID         string          // Owning player
	AmountCents      int64           // Amount in cents, strictly positive
	Method           PaymentMethod   // How the money arrived
	Type             TransactionType // buy-in or rebuy
	DealerFeeApplied bool            // True only on the player's first-ever payment
	Status           PaymentStatus   // pending or confirmed
	CreatedAt        time.Time       // Submission time
}

// NewPayment creates a new pending payment with basic validation
func NewPayment(
	id string,
	playerID string,
	amount string,
	method string,
	txType TransactionType,
	dealerFeeApplied bool,
	timeProvider coreport.TimeProvider,
) (*Payment, error) {
	if playerID == "" {
		return nil, errs.ErrInvalidPlayerID
	}
	if !IsValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPaymentMethod, method)
	}
	if txType != TypeBuyIn && txType != TypeRebuy {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}

	amountCents, err := ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Payment{
		ID:               id,
		PlayerID:         playerID,
		AmountCents:      amountCents,
		Method:           PaymentMethod(method),
		Type:             txType,
		DealerFeeApplied: dealerFeeApplied,
		Status:           StatusPending,
		CreatedAt:        timeProvider.Now(),
	}, nil
}

// GetAmount returns the amount as a string with 2 decimal places
func (p *Payment) GetAmount() string {
	return AmountInCentsToString(p.AmountCents)
}

// IsConfirmed reports whether the payment has been confirmed
func (p *Payment) IsConfirmed() bool {
	return p.Status == StatusConfirmed
}

// Confirm transitions the payment from pending to confirmed. Confirming a
// confirmed payment fails with ErrAlreadyConfirmed.
func (p *Payment) Confirm() error {
	if p.Status == StatusConfirmed {
		return errs.ErrAlreadyConfirmed
	}
	p.Status = StatusConfirmed
	return nil
}

// PotContribution returns how many cents this payment adds to the player's
// total once confirmed: the amount minus the dealer fee if the fee applies.
func (p *Payment) PotContribution(dealerFeeCents int64) int64 {
	if p.DealerFeeApplied {
		return p.AmountCents - dealerFeeCents
	}
	return p.AmountCents
}

// IsValidPaymentMethod validates if the payment method is allowed
func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case MethodCash, MethodVenmo, MethodApplePay, MethodZelle, MethodOther:
		return true
	default:
		return false
	}
}

// IsValidTransactionType validates if the transaction type is allowed
func IsValidTransactionType(txType string) bool {
	return txType == string(TypeBuyIn) || txType == string(TypeRebuy)
}

// IsValidPaymentStatus validates if the status is allowed
func IsValidPaymentStatus(status string) bool {
	return status == string(StatusPending) || status == string(StatusConfirmed)
}
