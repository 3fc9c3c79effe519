package ledger

import (
	"context"
	"sync"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/persistence"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// unknownPlayerName is rendered for payments and cash-outs whose owner has
// been deleted
const unknownPlayerName = "Unknown Player"

// Engine is the reconciliation engine. It owns no state of its own: every
// derived value is a pure function of the repositories' current contents,
// and the stored player totals are just a cache the engine recomputes after
// each mutation.
type Engine struct {
	players  persistence.PlayerRepository
	payments persistence.PaymentRepository
	cashOuts persistence.CashOutRepository

	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	dealerFeeCents int64
	policy         CashOutPolicy

	serializer *PlayerSerializer

	// Serializes player lookup-or-create across requests. Without it, two
	// rebuys naming the same unknown player could both create them.
	provisionMu sync.Mutex
}

// NewEngine creates a reconciliation engine with the given stores and game
// settings
func NewEngine(
	players persistence.PlayerRepository,
	payments persistence.PaymentRepository,
	cashOuts persistence.CashOutRepository,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	dealerFeeCents int64,
	policy CashOutPolicy,
) *Engine {
	return &Engine{
		players:        players,
		payments:       payments,
		cashOuts:       cashOuts,
		idGen:          idGen,
		timeProvider:   timeProvider,
		logger:         logger,
		dealerFeeCents: dealerFeeCents,
		policy:         policy,
		serializer:     NewPlayerSerializer(logger),
	}
}

// DealerFeeCents returns the configured one-time dealer fee
func (e *Engine) DealerFeeCents() int64 {
	return e.dealerFeeCents
}

// Policy returns the configured cash-out accounting policy
func (e *Engine) Policy() CashOutPolicy {
	return e.policy
}

// Shutdown drains the per-player queues
func (e *Engine) Shutdown() {
	e.serializer.Shutdown()
}

// PlayerCount returns the number of players, for health reporting
func (e *Engine) PlayerCount(ctx context.Context) (int64, error) {
	return e.players.Count(ctx)
}

// playerName resolves a player's display name, tolerating deleted owners
func (e *Engine) playerName(ctx context.Context, playerID string) string {
	player, err := e.players.GetByID(ctx, playerID)
	if err != nil {
		return unknownPlayerName
	}
	return player.Name
}

// paymentView joins a payment with its owner's name
func (e *Engine) paymentView(ctx context.Context, payment *entity.Payment) usecase.PaymentView {
	return usecase.PaymentView{
		ID:               payment.ID,
		PlayerID:         payment.PlayerID,
		PlayerName:       e.playerName(ctx, payment.PlayerID),
		Amount:           payment.GetAmount(),
		Method:           string(payment.Method),
		Type:             string(payment.Type),
		DealerFeeApplied: payment.DealerFeeApplied,
		Status:           string(payment.Status),
		Timestamp:        payment.CreatedAt,
	}
}

// cashOutView joins a cash-out with its owner's name
func (e *Engine) cashOutView(ctx context.Context, cashOut *entity.CashOut) usecase.CashOutView {
	return usecase.CashOutView{
		ID:         cashOut.ID,
		PlayerID:   cashOut.PlayerID,
		PlayerName: e.playerName(ctx, cashOut.PlayerID),
		Amount:     cashOut.GetAmount(),
		Reason:     cashOut.Reason,
		Confirmed:  cashOut.Confirmed,
		Timestamp:  cashOut.CreatedAt,
	}
}

// playerView builds the full player view including payment history. The
// total shown is the one the caller just recomputed or read.
func (e *Engine) playerView(ctx context.Context, player *entity.Player) (*usecase.PlayerView, error) {
	payments, err := e.payments.ListByPlayer(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	paymentViews := make([]usecase.PaymentView, 0, len(payments))
	for _, payment := range payments {
		view := e.paymentView(ctx, payment)
		view.PlayerName = player.Name
		paymentViews = append(paymentViews, view)
	}

	return &usecase.PlayerView{
		ID:        player.ID,
		Name:      player.Name,
		Total:     player.GetTotal(),
		CreatedAt: player.CreatedAt,
		Payments:  paymentViews,
	}, nil
}

// Ensure Engine satisfies the usecase port
var _ usecase.LedgerUseCase = (*Engine)(nil)
