package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGameStats(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC)
	dealerFeeCents := int64(3500)

	t.Run("Empty session", func(t *testing.T) {
		stats := ComputeGameStats(nil, nil, nil, dealerFeeCents)

		assert.Equal(t, int64(0), stats.TotalPotCents)
		assert.Equal(t, int64(0), stats.TotalDealerFeesCents)
		assert.Equal(t, int64(0), stats.TotalBuyInsCents)
		assert.Equal(t, int64(0), stats.TotalCashOutsCents)
		assert.Equal(t, 0, stats.PlayerCount)
		assert.Empty(t, stats.MethodBreakdown)
	})

	t.Run("Derives pot, fees and method breakdown", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		alice, err := NewPlayer("p1", "Alice", tp)
		require.NoError(t, err)
		alice.SetTotal(11500)

		bob, err := NewPlayer("p2", "Bob", tp)
		require.NoError(t, err)
		bob.SetTotal(6500)

		// Alice: 100 buy-in with fee plus a 50 rebuy, Bob: 100 buy-in with fee
		firstBuyIn, err := NewPayment("pay1", "p1", "100.00", "Cash", TypeBuyIn, true, tp)
		require.NoError(t, err)
		rebuy, err := NewPayment("pay2", "p1", "50.00", "Venmo", TypeRebuy, false, tp)
		require.NoError(t, err)
		bobBuyIn, err := NewPayment("pay3", "p2", "100.00", "Cash", TypeBuyIn, true, tp)
		require.NoError(t, err)

		cashOut, err := NewCashOut("co1", "p2", "20.00", "", tp)
		require.NoError(t, err)

		stats := ComputeGameStats(
			[]*Player{alice, bob},
			[]*Payment{firstBuyIn, rebuy, bobBuyIn},
			[]*CashOut{cashOut},
			dealerFeeCents,
		)

		assert.Equal(t, int64(18000), stats.TotalPotCents)
		assert.Equal(t, int64(7000), stats.TotalDealerFeesCents)
		assert.Equal(t, int64(25000), stats.TotalBuyInsCents)
		assert.Equal(t, int64(2000), stats.TotalCashOutsCents)
		assert.Equal(t, 2, stats.PlayerCount)

		assert.Equal(t, MethodBreakdown{TotalCents: 20000, Count: 2}, stats.MethodBreakdown[MethodCash])
		assert.Equal(t, MethodBreakdown{TotalCents: 5000, Count: 1}, stats.MethodBreakdown[MethodVenmo])
	})
}

func TestPaymentSummary(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 21, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(t, fixedTime)

	buyIn, err := NewPayment("pay1", "p1", "100.00", "Cash", TypeBuyIn, true, tp)
	require.NoError(t, err)
	rebuy, err := NewPayment("pay2", "p1", "25.00", "Cash", TypeRebuy, false, tp)
	require.NoError(t, err)
	venmo, err := NewPayment("pay3", "p1", "40.00", "Venmo", TypeRebuy, false, tp)
	require.NoError(t, err)

	// Pending payments count too, the summary covers all statuses
	summary := PaymentSummary([]*Payment{buyIn, rebuy, venmo})

	assert.Len(t, summary, 2)
	assert.Equal(t, MethodBreakdown{TotalCents: 12500, Count: 2}, summary[MethodCash])
	assert.Equal(t, MethodBreakdown{TotalCents: 4000, Count: 1}, summary[MethodVenmo])
}
