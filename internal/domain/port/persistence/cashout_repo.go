package persistence

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
)

// CashOutRepository defines storage operations for cash-out requests.
// Cash-outs are never deleted individually, only via player cascade.
type CashOutRepository interface {
	// Create inserts a new cash-out request
	Create(ctx context.Context, cashOut *entity.CashOut) error

	// GetByID retrieves a cash-out by id, failing with ErrCashOutNotFound if absent
	GetByID(ctx context.Context, id string) (*entity.CashOut, error)

	// ListByConfirmed returns cash-outs filtered by the confirmed flag,
	// newest first
	ListByConfirmed(ctx context.Context, confirmed bool) ([]*entity.CashOut, error)

	// ListRecentConfirmed returns the most recent confirmed cash-outs,
	// newest first
	ListRecentConfirmed(ctx context.Context, limit int) ([]*entity.CashOut, error)

	// ListConfirmedByPlayer returns the player's confirmed cash-outs,
	// oldest first
	ListConfirmedByPlayer(ctx context.Context, playerID string) ([]*entity.CashOut, error)

	// List returns every cash-out regardless of state, newest first
	List(ctx context.Context) ([]*entity.CashOut, error)

	// SetConfirmed persists a cash-out's one-way confirmation
	SetConfirmed(ctx context.Context, id string) error

	// DeleteByPlayer removes all cash-outs belonging to the player
	DeleteByPlayer(ctx context.Context, playerID string) error
}
