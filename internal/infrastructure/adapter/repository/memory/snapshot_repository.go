package memory

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/persistence"
)

// SnapshotRepository is the in-memory full-store export and replace
type SnapshotRepository struct {
	store *Store
}

// Export reads a consistent snapshot of all three collections
func (r *SnapshotRepository) Export(ctx context.Context) (*persistence.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snapshot := &persistence.Snapshot{
		Players:  make([]*entity.Player, 0, len(r.store.players)),
		Payments: make([]*entity.Payment, 0, len(r.store.payments)),
		CashOuts: make([]*entity.CashOut, 0, len(r.store.cashOuts)),
	}

	for _, player := range r.store.players {
		snapshot.Players = append(snapshot.Players, copyPlayer(player))
	}
	for _, payment := range r.store.payments {
		snapshot.Payments = append(snapshot.Payments, copyPayment(payment))
	}
	for _, cashOut := range r.store.cashOuts {
		snapshot.CashOuts = append(snapshot.CashOuts, copyCashOut(cashOut))
	}

	sortPaymentsAsc(snapshot.Payments)
	sortCashOutsAsc(snapshot.CashOuts)

	return snapshot, nil
}

// Replace wipes the store and installs the snapshot contents
func (r *SnapshotRepository) Replace(ctx context.Context, snapshot *persistence.Snapshot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	players := make(map[string]*entity.Player, len(snapshot.Players))
	payments := make(map[string]*entity.Payment, len(snapshot.Payments))
	cashOuts := make(map[string]*entity.CashOut, len(snapshot.CashOuts))

	for _, player := range snapshot.Players {
		players[player.ID] = copyPlayer(player)
	}
	for _, payment := range snapshot.Payments {
		payments[payment.ID] = copyPayment(payment)
	}
	for _, cashOut := range snapshot.CashOuts {
		cashOuts[cashOut.ID] = copyCashOut(cashOut)
	}

	r.store.players = players
	r.store.payments = payments
	r.store.cashOuts = cashOuts

	return nil
}
