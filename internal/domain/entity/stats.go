package entity

// MethodBreakdown holds the per-payment-method aggregate over confirmed payments
type MethodBreakdown struct {
	TotalCents int64
	Count      int
}

// GameStats is the derived global view of the session. Never stored,
// recomputed from the current payment and cash-out sets on every read.
type GameStats struct {
	TotalPotCents        int64
	TotalDealerFeesCents int64
	TotalBuyInsCents     int64
	TotalCashOutsCents   int64
	PlayerCount          int
	MethodBreakdown      map[PaymentMethod]MethodBreakdown
}

// ComputeGameStats derives session statistics from stored player totals,
// confirmed payments and confirmed cash-outs.
func ComputeGameStats(
	players []*Player,
	confirmedPayments []*Payment,
	confirmedCashOuts []*CashOut,
	dealerFeeCents int64,
) *GameStats {
	stats := &GameStats{
		PlayerCount:     len(players),
		MethodBreakdown: make(map[PaymentMethod]MethodBreakdown),
	}

	for _, player := range players {
		stats.TotalPotCents += player.Total()
	}

	for _, payment := range confirmedPayments {
		stats.TotalBuyInsCents += payment.AmountCents
		if payment.DealerFeeApplied {
			stats.TotalDealerFeesCents += dealerFeeCents
		}

		breakdown := stats.MethodBreakdown[payment.Method]
		breakdown.TotalCents += payment.AmountCents
		breakdown.Count++
		stats.MethodBreakdown[payment.Method] = breakdown
	}

	for _, cashOut := range confirmedCashOuts {
		stats.TotalCashOutsCents += cashOut.AmountCents
	}

	return stats
}

// PaymentSummary aggregates a single player's payments per method, over all
// statuses. Mirrors the per-player summary view of the original tracker.
func PaymentSummary(payments []*Payment) map[PaymentMethod]MethodBreakdown {
	summary := make(map[PaymentMethod]MethodBreakdown)
	for _, payment := range payments {
		breakdown := summary[payment.Method]
		breakdown.TotalCents += payment.AmountCents
		breakdown.Count++
		summary[payment.Method] = breakdown
	}
	return summary
}
