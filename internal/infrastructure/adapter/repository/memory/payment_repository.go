package memory

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
)

// PaymentRepository is the in-memory payment store
type PaymentRepository struct {
	store *Store
}

// Create inserts a new payment. The owning player must exist.
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.players[payment.PlayerID]; !exists {
		return errs.ErrPlayerNotFound
	}
	r.store.payments[payment.ID] = copyPayment(payment)
	return nil
}

// GetByID retrieves a payment by id
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payment, exists := r.store.payments[id]
	if !exists {
		return nil, errs.ErrPaymentNotFound
	}
	return copyPayment(payment), nil
}

func (r *PaymentRepository) collect(match func(*entity.Payment) bool) []*entity.Payment {
	payments := make([]*entity.Payment, 0)
	for _, payment := range r.store.payments {
		if match(payment) {
			payments = append(payments, copyPayment(payment))
		}
	}
	return payments
}

// ListByPlayer returns all payments for a player, oldest first
func (r *PaymentRepository) ListByPlayer(ctx context.Context, playerID string) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := r.collect(func(p *entity.Payment) bool {
		return p.PlayerID == playerID
	})
	sortPaymentsAsc(payments)
	return payments, nil
}

// ListByPlayerAndStatus returns a player's payments with the given status,
// oldest first
func (r *PaymentRepository) ListByPlayerAndStatus(ctx context.Context, playerID string, status entity.PaymentStatus) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := r.collect(func(p *entity.Payment) bool {
		return p.PlayerID == playerID && p.Status == status
	})
	sortPaymentsAsc(payments)
	return payments, nil
}

// ListByStatus returns all payments with the given status, newest first
func (r *PaymentRepository) ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := r.collect(func(p *entity.Payment) bool {
		return p.Status == status
	})
	sortPaymentsDesc(payments)
	return payments, nil
}

// ListRecent returns the most recent payments of any status, newest first
func (r *PaymentRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := r.collect(func(p *entity.Payment) bool { return true })
	sortPaymentsDesc(payments)
	if limit >= 0 && len(payments) > limit {
		payments = payments[:limit]
	}
	return payments, nil
}

// ListRecentByType returns the most recent payments of one transaction type,
// newest first
func (r *PaymentRepository) ListRecentByType(ctx context.Context, txType entity.TransactionType, limit int) ([]*entity.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := r.collect(func(p *entity.Payment) bool {
		return p.Type == txType
	})
	sortPaymentsDesc(payments)
	if limit >= 0 && len(payments) > limit {
		payments = payments[:limit]
	}
	return payments, nil
}

// CountByPlayer returns how many payments of any status the player has
func (r *PaymentRepository) CountByPlayer(ctx context.Context, playerID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, payment := range r.store.payments {
		if payment.PlayerID == playerID {
			count++
		}
	}
	return count, nil
}

// UpdateStatus persists a payment's lifecycle transition
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	payment, exists := r.store.payments[id]
	if !exists {
		return errs.ErrPaymentNotFound
	}
	payment.Status = status
	return nil
}

// Delete removes a payment by id
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.payments[id]; !exists {
		return errs.ErrPaymentNotFound
	}
	delete(r.store.payments, id)
	return nil
}

// DeleteByPlayer removes all payments belonging to the player
func (r *PaymentRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, payment := range r.store.payments {
		if payment.PlayerID == playerID {
			delete(r.store.payments, id)
		}
	}
	return nil
}
