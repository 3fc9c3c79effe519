package ledger

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// GameStats derives the global session view from stored totals, confirmed
// payments and confirmed cash-outs. Nothing here is persisted.
func (e *Engine) GameStats(ctx context.Context) (*usecase.GameStatsView, error) {
	players, err := e.players.List(ctx)
	if err != nil {
		return nil, err
	}
	confirmedPayments, err := e.payments.ListByStatus(ctx, entity.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	confirmedCashOuts, err := e.cashOuts.ListByConfirmed(ctx, true)
	if err != nil {
		return nil, err
	}

	stats := entity.ComputeGameStats(players, confirmedPayments, confirmedCashOuts, e.dealerFeeCents)

	view := &usecase.GameStatsView{
		TotalPot:        entity.AmountInCentsToString(stats.TotalPotCents),
		TotalDealerFees: entity.AmountInCentsToString(stats.TotalDealerFeesCents),
		TotalBuyIns:     entity.AmountInCentsToString(stats.TotalBuyInsCents),
		TotalCashOuts:   entity.AmountInCentsToString(stats.TotalCashOutsCents),
		PlayerCount:     stats.PlayerCount,
		MethodBreakdown: make(map[string]usecase.MethodBreakdownView, len(stats.MethodBreakdown)),
	}
	for method, breakdown := range stats.MethodBreakdown {
		view.MethodBreakdown[string(method)] = usecase.MethodBreakdownView{
			Total: entity.AmountInCentsToString(breakdown.TotalCents),
			Count: breakdown.Count,
		}
	}
	return view, nil
}

// PaymentSummary aggregates one player's payments per method, across all
// statuses, alongside their recomputed confirmed total.
func (e *Engine) PaymentSummary(ctx context.Context, playerID string) (*usecase.PaymentSummaryView, error) {
	player, err := e.players.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	payments, err := e.payments.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	total, err := e.Recompute(ctx, playerID)
	if err != nil {
		return nil, err
	}

	summary := entity.PaymentSummary(payments)
	view := &usecase.PaymentSummaryView{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Summary:    make(map[string]usecase.MethodBreakdownView, len(summary)),
		TotalInPot: entity.AmountInCentsToString(total),
	}
	for method, breakdown := range summary {
		view.Summary[string(method)] = usecase.MethodBreakdownView{
			Total: entity.AmountInCentsToString(breakdown.TotalCents),
			Count: breakdown.Count,
		}
	}
	return view, nil
}

// Reconciliation cross-checks the stored player totals against the amounts
// implied by confirmed payments and confirmed cash-outs. A mismatch means
// some player's total needs a recompute.
func (e *Engine) Reconciliation(ctx context.Context) (*usecase.ReconciliationReport, error) {
	players, err := e.players.List(ctx)
	if err != nil {
		return nil, err
	}
	confirmedPayments, err := e.payments.ListByStatus(ctx, entity.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	confirmedCashOuts, err := e.cashOuts.ListByConfirmed(ctx, true)
	if err != nil {
		return nil, err
	}

	var balances, derived, moneyIn, cashedOut int64
	consistent := true
	for _, player := range players {
		balances += player.Total()

		expected, err := e.deriveTotal(ctx, player.ID)
		if err != nil {
			return nil, err
		}
		derived += expected
		if player.Total() != expected {
			consistent = false
		}
	}
	for _, payment := range confirmedPayments {
		moneyIn += payment.PotContribution(e.dealerFeeCents)
	}
	for _, cashOut := range confirmedCashOuts {
		cashedOut += cashOut.AmountCents
	}

	potShouldBe := moneyIn - cashedOut
	if potShouldBe < 0 {
		potShouldBe = 0
	}

	report := &usecase.ReconciliationReport{
		CashOuts:               e.cashOutViews(ctx, confirmedCashOuts),
		TotalConfirmedCashOuts: entity.AmountInCentsToString(cashedOut),
		TotalPlayerBalances:    entity.AmountInCentsToString(balances),
		TotalMoneyIn:           entity.AmountInCentsToString(moneyIn),
		PotShouldBe:            entity.AmountInCentsToString(potShouldBe),
		Consistent:             consistent,
	}

	if !report.Consistent {
		e.logger.Warn("Reconciliation mismatch detected", map[string]any{
			"total_player_balances": report.TotalPlayerBalances,
			"derived_balances":      entity.AmountInCentsToString(derived),
			"pot_should_be":         report.PotShouldBe,
		})
	}
	return report, nil
}
