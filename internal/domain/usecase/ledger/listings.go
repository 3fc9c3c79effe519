package ledger

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// ListPendingPayments returns every payment still awaiting confirmation,
// newest first, joined with player names.
func (e *Engine) ListPendingPayments(ctx context.Context) ([]usecase.PaymentView, error) {
	payments, err := e.payments.ListByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, err
	}
	return e.paymentViews(ctx, payments), nil
}

// ListRecentTransactions returns the latest payments of any status and type,
// newest first.
func (e *Engine) ListRecentTransactions(ctx context.Context, limit int) ([]usecase.PaymentView, error) {
	payments, err := e.payments.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return e.paymentViews(ctx, payments), nil
}

// ListRecentRebuys returns the latest rebuy-type payments, newest first.
// First-ever payments submitted through the rebuy flow are classified as
// buy-ins and do not appear here.
func (e *Engine) ListRecentRebuys(ctx context.Context, limit int) ([]usecase.PaymentView, error) {
	payments, err := e.payments.ListRecentByType(ctx, entity.TypeRebuy, limit)
	if err != nil {
		return nil, err
	}
	return e.paymentViews(ctx, payments), nil
}

// ListPendingCashOuts returns unconfirmed cash-out requests, newest first.
func (e *Engine) ListPendingCashOuts(ctx context.Context) ([]usecase.CashOutView, error) {
	cashOuts, err := e.cashOuts.ListByConfirmed(ctx, false)
	if err != nil {
		return nil, err
	}
	return e.cashOutViews(ctx, cashOuts), nil
}

// ListRecentCashOuts returns the latest confirmed cash-outs, newest first.
func (e *Engine) ListRecentCashOuts(ctx context.Context, limit int) ([]usecase.CashOutView, error) {
	cashOuts, err := e.cashOuts.ListRecentConfirmed(ctx, limit)
	if err != nil {
		return nil, err
	}
	return e.cashOutViews(ctx, cashOuts), nil
}

// CashOutHistory returns every confirmed cash-out, newest first. Requests
// still awaiting confirmation belong to the pending listing only.
func (e *Engine) CashOutHistory(ctx context.Context) ([]usecase.CashOutView, error) {
	cashOuts, err := e.cashOuts.ListByConfirmed(ctx, true)
	if err != nil {
		return nil, err
	}
	return e.cashOutViews(ctx, cashOuts), nil
}

func (e *Engine) paymentViews(ctx context.Context, payments []*entity.Payment) []usecase.PaymentView {
	views := make([]usecase.PaymentView, 0, len(payments))
	for _, payment := range payments {
		views = append(views, e.paymentView(ctx, payment))
	}
	return views
}

func (e *Engine) cashOutViews(ctx context.Context, cashOuts []*entity.CashOut) []usecase.CashOutView {
	views := make([]usecase.CashOutView, 0, len(cashOuts))
	for _, cashOut := range cashOuts {
		views = append(views, e.cashOutView(ctx, cashOut))
	}
	return views
}
