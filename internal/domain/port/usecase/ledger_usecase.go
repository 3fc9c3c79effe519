package usecase

import (
	"context"
	"time"
)

// PaymentView is a payment joined with its owner's display name, with
// amounts formatted for presentation.
type PaymentView struct {
	ID               string
	PlayerID         string
	PlayerName       string
	Amount           string
	Method           string
	Type             string
	DealerFeeApplied bool
	Status           string
	Timestamp        time.Time
}

// PlayerView is a player with the recomputed total and payment history
type PlayerView struct {
	ID        string
	Name      string
	Total     string
	CreatedAt time.Time
	Payments  []PaymentView
}

// RebuyResult describes the outcome of a rebuy submission, including the
// auto-provisioning and fee classification decisions
type RebuyResult struct {
	PlayerID         string
	PlayerName       string
	IsNewPlayer      bool
	IsFirstBuyIn     bool
	DealerFeeApplied bool
	AmountToPot      string
}

// ConfirmPaymentResult reports the player's recomputed total after a
// payment confirmation
type ConfirmPaymentResult struct {
	PlayerID   string
	PlayerName string
	NewTotal   string
}

// DeletePaymentResult describes a removed payment for the caller's message
type DeletePaymentResult struct {
	PlayerName string
	Amount     string
	Type       string
	NewTotal   string
}

// DeletePlayerResult describes a cascaded player deletion
type DeletePlayerResult struct {
	PlayerName       string
	RemovedTotal     string
	TransactionCount int64
}

// CashOutView is a cash-out joined with its owner's display name
type CashOutView struct {
	ID         string
	PlayerID   string
	PlayerName string
	Amount     string
	Reason     string
	Confirmed  bool
	Timestamp  time.Time
}

// ConfirmCashOutResult reports the settlement applied on confirmation
type ConfirmCashOutResult struct {
	PlayerID       string
	PlayerName     string
	Amount         string
	OldPlayerTotal string
	NewPlayerTotal string
}

// MethodBreakdownView is a per-method {total, count} aggregate
type MethodBreakdownView struct {
	Total string
	Count int
}

// GameStatsView is the derived global session view
type GameStatsView struct {
	TotalPot        string
	TotalDealerFees string
	TotalBuyIns     string
	TotalCashOuts   string
	PlayerCount     int
	MethodBreakdown map[string]MethodBreakdownView
}

// PaymentSummaryView aggregates one player's payments per method
type PaymentSummaryView struct {
	PlayerID   string
	PlayerName string
	Summary    map[string]MethodBreakdownView
	TotalInPot string
}

// ReconciliationReport cross-checks money in, confirmed cash-outs and the
// summed stored totals
type ReconciliationReport struct {
	CashOuts               []CashOutView
	TotalConfirmedCashOuts string
	TotalPlayerBalances    string
	TotalMoneyIn           string
	PotShouldBe            string
	Consistent             bool
}

// LedgerUseCase is the full operation set the HTTP layer calls into. Every
// mutating operation is serialized per player by the implementation.
type LedgerUseCase interface {
	CreatePlayer(ctx context.Context, name string) (*PlayerView, error)
	ListPlayers(ctx context.Context) ([]PlayerView, error)
	DeletePlayer(ctx context.Context, playerID string) (*DeletePlayerResult, error)

	SubmitBuyIn(ctx context.Context, playerID, amount, method string) (*PlayerView, error)
	SubmitRebuy(ctx context.Context, playerName, amount, method string) (*RebuyResult, error)
	ConfirmPayment(ctx context.Context, playerID, paymentID string) (*ConfirmPaymentResult, error)
	DeletePayment(ctx context.Context, playerID, paymentID string) (*DeletePaymentResult, error)
	ListPendingPayments(ctx context.Context) ([]PaymentView, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]PaymentView, error)
	ListRecentRebuys(ctx context.Context, limit int) ([]PaymentView, error)

	RequestCashOut(ctx context.Context, playerID, amount, reason string) (*CashOutView, error)
	ConfirmCashOut(ctx context.Context, cashOutID string) (*ConfirmCashOutResult, error)
	ListPendingCashOuts(ctx context.Context) ([]CashOutView, error)
	ListRecentCashOuts(ctx context.Context, limit int) ([]CashOutView, error)
	CashOutHistory(ctx context.Context) ([]CashOutView, error)

	GameStats(ctx context.Context) (*GameStatsView, error)
	PaymentSummary(ctx context.Context, playerID string) (*PaymentSummaryView, error)
	Reconciliation(ctx context.Context) (*ReconciliationReport, error)
	PlayerCount(ctx context.Context) (int64, error)
}
