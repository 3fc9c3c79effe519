package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount     = 4001
	CodeInvalidRequest    = 4002
	CodeInvalidMethod     = 4003
	CodeAlreadyConfirmed  = 4004
	CodeCashOutExceedsPot = 4005
	CodePlayerNotFound    = 4040
	CodePaymentNotFound   = 4041
	CodeCashOutNotFound   = 4042
	CodeDuplicatePlayer   = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is malformed or not strictly positive
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidRequest is returned when a request fails validation
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidPaymentMethod is returned when the payment method is not one of the allowed values
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidTransactionType is returned when the transaction type is not buy-in or rebuy
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidPlayerName is returned when a player name is empty
	ErrInvalidPlayerName = errors.New("player name cannot be empty")

	// ErrInvalidPlayerID is returned when a player id is empty
	ErrInvalidPlayerID = errors.New("player ID cannot be empty")

	// ErrPlayerNotFound is returned when the requested player doesn't exist
	ErrPlayerNotFound = errors.New("player not found")

	// ErrPaymentNotFound is returned when the requested payment doesn't exist
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrCashOutNotFound is returned when the requested cash-out doesn't exist
	ErrCashOutNotFound = errors.New("cash out not found")

	// ErrAlreadyConfirmed is returned when confirming a payment or cash-out twice
	ErrAlreadyConfirmed = errors.New("already confirmed")

	// ErrCashOutExceedsPot is returned when a cash-out request exceeds the available pot
	ErrCashOutExceedsPot = errors.New("cash out amount exceeds available pot")

	// ErrDuplicatePlayer is returned when trying to create a player that already exists
	ErrDuplicatePlayer = errors.New("player already exists")

	// ErrMalformedBackup is returned when a restore payload cannot be interpreted
	ErrMalformedBackup = errors.New("malformed backup payload")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidPaymentMethod), errors.Is(err, ErrInvalidTransactionType):
		return CodeInvalidMethod
	case errors.Is(err, ErrAlreadyConfirmed):
		return CodeAlreadyConfirmed
	case errors.Is(err, ErrCashOutExceedsPot):
		return CodeCashOutExceedsPot
	case errors.Is(err, ErrPlayerNotFound):
		return CodePlayerNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrCashOutNotFound):
		return CodeCashOutNotFound
	case errors.Is(err, ErrDuplicatePlayer):
		return CodeDuplicatePlayer
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrMalformedBackup),
		errors.Is(err, ErrInvalidPlayerName), errors.Is(err, ErrInvalidPlayerID):
		return CodeInvalidRequest
	default:
		return CodeInternalServer
	}
}

// CashOutError represents a rejected or failed cash-out with full context
type CashOutError struct {
	PlayerID  string
	Amount    string
	Available string
	Err       error
}

// Error implements the error interface for CashOutError
func (e *CashOutError) Error() string {
	return fmt.Sprintf("cash out failed for player %s (requested: %s, available: %s): %v",
		e.PlayerID, e.Amount, e.Available, e.Err)
}

// Unwrap returns the underlying error
func (e *CashOutError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CashOutError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "cash_out_error",
		"player_id":  e.PlayerID,
		"amount":     e.Amount,
		"available":  e.Available,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewCashOutExceedsPotError creates a detailed admission-control rejection
func NewCashOutExceedsPotError(playerID, amount, available string) error {
	return &CashOutError{
		PlayerID:  playerID,
		Amount:    amount,
		Available: available,
		Err:       ErrCashOutExceedsPot,
	}
}

// PaymentError represents an error related to payment processing
type PaymentError struct {
	PaymentID string
	PlayerID  string
	Amount    string
	Reason    string
	Err       error
}

// Error implements the error interface for PaymentError
func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error for ID %s (player: %s, amount: %s): %s - %v",
		e.PaymentID, e.PlayerID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "payment_error",
		"payment_id": e.PaymentID,
		"player_id":  e.PlayerID,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewPaymentError creates a detailed payment error
func NewPaymentError(paymentID, playerID, amount, reason string, err error) error {
	return &PaymentError{
		PaymentID: paymentID,
		PlayerID:  playerID,
		Amount:    amount,
		Reason:    reason,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPlayerNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrCashOutNotFound)
}

// IsAlreadyConfirmedError checks if the error is a repeated confirmation
func IsAlreadyConfirmedError(err error) bool {
	return errors.Is(err, ErrAlreadyConfirmed)
}

// IsInvalidRequestError checks if the error is any client-side validation failure
func IsInvalidRequestError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidPaymentMethod) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidPlayerName) ||
		errors.Is(err, ErrInvalidPlayerID) ||
		errors.Is(err, ErrCashOutExceedsPot) ||
		errors.Is(err, ErrMalformedBackup)
}

// IsDuplicatePlayerError checks if the error is a duplicate player error
func IsDuplicatePlayerError(err error) bool {
	return errors.Is(err, ErrDuplicatePlayer)
}
