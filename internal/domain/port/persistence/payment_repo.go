package persistence

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
)

// PaymentRepository defines storage operations for payments (buy-ins and
// rebuys). Listings are ordered by creation time unless stated otherwise.
type PaymentRepository interface {
	// Create inserts a new payment
	Create(ctx context.Context, payment *entity.Payment) error

	// GetByID retrieves a payment by id, failing with ErrPaymentNotFound if absent
	GetByID(ctx context.Context, id string) (*entity.Payment, error)

	// ListByPlayer returns all payments for a player, oldest first
	ListByPlayer(ctx context.Context, playerID string) ([]*entity.Payment, error)

	// ListByPlayerAndStatus returns a player's payments with the given status,
	// oldest first
	ListByPlayerAndStatus(ctx context.Context, playerID string, status entity.PaymentStatus) ([]*entity.Payment, error)

	// ListByStatus returns all payments with the given status, newest first
	ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error)

	// ListRecent returns the most recent payments of any status, newest first
	ListRecent(ctx context.Context, limit int) ([]*entity.Payment, error)

	// ListRecentByType returns the most recent payments of one transaction
	// type, newest first
	ListRecentByType(ctx context.Context, txType entity.TransactionType, limit int) ([]*entity.Payment, error)

	// CountByPlayer returns how many payments of any status the player has
	CountByPlayer(ctx context.Context, playerID string) (int64, error)

	// UpdateStatus persists a payment's lifecycle transition
	UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error

	// Delete removes a payment by id, failing with ErrPaymentNotFound if absent
	Delete(ctx context.Context, id string) error

	// DeleteByPlayer removes all payments belonging to the player
	DeleteByPlayer(ctx context.Context, playerID string) error
}
