package memory

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
)

// CashOutRepository is the in-memory cash-out store
type CashOutRepository struct {
	store *Store
}

// Create inserts a new cash-out request. The owning player must exist.
func (r *CashOutRepository) Create(ctx context.Context, cashOut *entity.CashOut) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.players[cashOut.PlayerID]; !exists {
		return errs.ErrPlayerNotFound
	}
	r.store.cashOuts[cashOut.ID] = copyCashOut(cashOut)
	return nil
}

// GetByID retrieves a cash-out by id
func (r *CashOutRepository) GetByID(ctx context.Context, id string) (*entity.CashOut, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cashOut, exists := r.store.cashOuts[id]
	if !exists {
		return nil, errs.ErrCashOutNotFound
	}
	return copyCashOut(cashOut), nil
}

func (r *CashOutRepository) collect(match func(*entity.CashOut) bool) []*entity.CashOut {
	cashOuts := make([]*entity.CashOut, 0)
	for _, cashOut := range r.store.cashOuts {
		if match(cashOut) {
			cashOuts = append(cashOuts, copyCashOut(cashOut))
		}
	}
	return cashOuts
}

// ListByConfirmed returns cash-outs filtered by the confirmed flag, newest first
func (r *CashOutRepository) ListByConfirmed(ctx context.Context, confirmed bool) ([]*entity.CashOut, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cashOuts := r.collect(func(c *entity.CashOut) bool {
		return c.Confirmed == confirmed
	})
	sortCashOutsDesc(cashOuts)
	return cashOuts, nil
}

// ListRecentConfirmed returns the most recent confirmed cash-outs, newest first
func (r *CashOutRepository) ListRecentConfirmed(ctx context.Context, limit int) ([]*entity.CashOut, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cashOuts := r.collect(func(c *entity.CashOut) bool {
		return c.Confirmed
	})
	sortCashOutsDesc(cashOuts)
	if limit >= 0 && len(cashOuts) > limit {
		cashOuts = cashOuts[:limit]
	}
	return cashOuts, nil
}

// ListConfirmedByPlayer returns the player's confirmed cash-outs, oldest first
func (r *CashOutRepository) ListConfirmedByPlayer(ctx context.Context, playerID string) ([]*entity.CashOut, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cashOuts := r.collect(func(c *entity.CashOut) bool {
		return c.PlayerID == playerID && c.Confirmed
	})
	sortCashOutsAsc(cashOuts)
	return cashOuts, nil
}

// List returns every cash-out regardless of state, newest first
func (r *CashOutRepository) List(ctx context.Context) ([]*entity.CashOut, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cashOuts := r.collect(func(c *entity.CashOut) bool { return true })
	sortCashOutsDesc(cashOuts)
	return cashOuts, nil
}

// SetConfirmed persists a cash-out's one-way confirmation
func (r *CashOutRepository) SetConfirmed(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cashOut, exists := r.store.cashOuts[id]
	if !exists {
		return errs.ErrCashOutNotFound
	}
	cashOut.Confirmed = true
	return nil
}

// DeleteByPlayer removes all cash-outs belonging to the player
func (r *CashOutRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, cashOut := range r.store.cashOuts {
		if cashOut.PlayerID == playerID {
			delete(r.store.cashOuts, id)
		}
	}
	return nil
}
