package persistence

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
)

// Snapshot is a full structural dump of the ledger store, used by backup and
// restore. It carries raw entities; derived statistics are recomputed by the
// caller.
type Snapshot struct {
	Players  []*entity.Player
	Payments []*entity.Payment
	CashOuts []*entity.CashOut
}

// SnapshotRepository exports and replaces the entire store as one unit.
// Replace must be atomic: either the whole snapshot is applied or nothing is.
type SnapshotRepository interface {
	// Export reads a consistent snapshot of all three collections
	Export(ctx context.Context) (*Snapshot, error)

	// Replace wipes the store and installs the snapshot contents
	Replace(ctx context.Context, snapshot *Snapshot) error
}
