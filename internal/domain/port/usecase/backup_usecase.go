package usecase

import (
	"context"
	"time"
)

// ArchiveVersion is the current backup document version
const ArchiveVersion = 1

// PlayerRecord is the serializable form of a player inside an archive
type PlayerRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentRecord is the serializable form of a payment inside an archive
type PaymentRecord struct {
	ID               string    `json:"id"`
	PlayerID         string    `json:"player_id"`
	Amount           string    `json:"amount"`
	Method           string    `json:"method"`
	Type             string    `json:"type"`
	DealerFeeApplied bool      `json:"dealer_fee_applied"`
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
}

// CashOutRecord is the serializable form of a cash-out inside an archive
type CashOutRecord struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Amount    string    `json:"amount"`
	Reason    string    `json:"reason"`
	Confirmed bool      `json:"confirmed"`
	Timestamp time.Time `json:"timestamp"`
}

// Archive is a complete structural dump of the ledger store, suitable for
// offline storage and later restore.
type Archive struct {
	Version    int             `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Players    []PlayerRecord  `json:"players"`
	Payments   []PaymentRecord `json:"payments"`
	CashOuts   []CashOutRecord `json:"cashouts"`
}

// RestoreResult reports how many entities a restore installed
type RestoreResult struct {
	Players  int
	Payments int
	CashOuts int
}

// BackupUseCase exports and restores the entire store. Restore replaces all
// existing data atomically; a malformed archive changes nothing.
type BackupUseCase interface {
	Export(ctx context.Context) (*Archive, error)
	Restore(ctx context.Context, archive *Archive) (*RestoreResult, error)
}
