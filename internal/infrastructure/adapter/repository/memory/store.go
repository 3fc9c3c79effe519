package memory

import (
	"sort"
	"sync"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
)

// Store is an in-process storage backend. It keeps all data in maps guarded
// by one mutex and loses everything on restart; it exists so the tracker can
// run without a database, and it backs the repository tests.
type Store struct {
	mu       sync.RWMutex
	players  map[string]*entity.Player
	payments map[string]*entity.Payment
	cashOuts map[string]*entity.CashOut
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		players:  make(map[string]*entity.Player),
		payments: make(map[string]*entity.Payment),
		cashOuts: make(map[string]*entity.CashOut),
	}
}

// Players returns the player repository view of the store
func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{store: s}
}

// Payments returns the payment repository view of the store
func (s *Store) Payments() *PaymentRepository {
	return &PaymentRepository{store: s}
}

// CashOuts returns the cash-out repository view of the store
func (s *Store) CashOuts() *CashOutRepository {
	return &CashOutRepository{store: s}
}

// Snapshots returns the snapshot repository view of the store
func (s *Store) Snapshots() *SnapshotRepository {
	return &SnapshotRepository{store: s}
}

func copyPlayer(p *entity.Player) *entity.Player {
	clone := *p
	return &clone
}

func copyPayment(p *entity.Payment) *entity.Payment {
	clone := *p
	return &clone
}

func copyCashOut(c *entity.CashOut) *entity.CashOut {
	clone := *c
	return &clone
}

func sortPaymentsAsc(payments []*entity.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
}

func sortPaymentsDesc(payments []*entity.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
}

func sortCashOutsAsc(cashOuts []*entity.CashOut) {
	sort.SliceStable(cashOuts, func(i, j int) bool {
		return cashOuts[i].CreatedAt.Before(cashOuts[j].CreatedAt)
	})
}

func sortCashOutsDesc(cashOuts []*entity.CashOut) {
	sort.SliceStable(cashOuts, func(i, j int) bool {
		return cashOuts[i].CreatedAt.After(cashOuts[j].CreatedAt)
	})
}
