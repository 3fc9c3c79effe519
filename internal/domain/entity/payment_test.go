package entity

import (
	"testing"
	"time"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coremocks "github.com/mblud/poker-tracker-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTimeProvider(t *testing.T, at time.Time) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(at).Maybe()
	return tp
}

func TestNewPayment(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)

	t.Run("Creates pending payment", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		payment, err := NewPayment("pay-1", "player-1", "100.00", "Cash", TypeBuyIn, true, tp)
		require.NoError(t, err)

		assert.Equal(t, "pay-1", payment.ID)
		assert.Equal(t, "player-1", payment.PlayerID)
		assert.Equal(t, int64(10000), payment.AmountCents)
		assert.Equal(t, MethodCash, payment.Method)
		assert.Equal(t, TypeBuyIn, payment.Type)
		assert.True(t, payment.DealerFeeApplied)
		assert.Equal(t, StatusPending, payment.Status)
		assert.Equal(t, fixedTime, payment.CreatedAt)
	})

	t.Run("Rejects empty player id", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		_, err := NewPayment("pay-1", "", "100.00", "Cash", TypeBuyIn, false, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidPlayerID)
	})

	t.Run("Rejects unknown payment method", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		_, err := NewPayment("pay-1", "player-1", "100.00", "Bitcoin", TypeBuyIn, false, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("Rejects unknown transaction type", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		_, err := NewPayment("pay-1", "player-1", "100.00", "Cash", TransactionType("refund"), false, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})

	t.Run("Rejects zero and negative amounts", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		_, err := NewPayment("pay-1", "player-1", "0.00", "Cash", TypeBuyIn, false, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewPayment("pay-1", "player-1", "-10.00", "Cash", TypeBuyIn, false, tp)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestPaymentConfirm(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(t, fixedTime)

	payment, err := NewPayment("pay-1", "player-1", "50.00", "Venmo", TypeRebuy, false, tp)
	require.NoError(t, err)

	assert.False(t, payment.IsConfirmed())

	err = payment.Confirm()
	require.NoError(t, err)
	assert.True(t, payment.IsConfirmed())
	assert.Equal(t, StatusConfirmed, payment.Status)

	// Confirmation is one-way
	err = payment.Confirm()
	assert.ErrorIs(t, err, errs.ErrAlreadyConfirmed)
	assert.True(t, payment.IsConfirmed())
}

func TestPaymentPotContribution(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	dealerFeeCents := int64(3500)

	t.Run("First payment contributes amount minus fee", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		payment, err := NewPayment("pay-1", "player-1", "100.00", "Cash", TypeBuyIn, true, tp)
		require.NoError(t, err)

		assert.Equal(t, int64(6500), payment.PotContribution(dealerFeeCents))
	})

	t.Run("Later payments contribute the full amount", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)
		payment, err := NewPayment("pay-2", "player-1", "50.00", "Cash", TypeRebuy, false, tp)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), payment.PotContribution(dealerFeeCents))
	})
}

func TestPaymentValidators(t *testing.T) {
	t.Run("Payment methods", func(t *testing.T) {
		for _, method := range []string{"Cash", "Venmo", "Apple Pay", "Zelle", "Other"} {
			assert.True(t, IsValidPaymentMethod(method), method)
		}
		assert.False(t, IsValidPaymentMethod("cash"))
		assert.False(t, IsValidPaymentMethod("PayPal"))
		assert.False(t, IsValidPaymentMethod(""))
	})

	t.Run("Transaction types", func(t *testing.T) {
		assert.True(t, IsValidTransactionType("buy-in"))
		assert.True(t, IsValidTransactionType("rebuy"))
		assert.False(t, IsValidTransactionType("cashout"))
	})

	t.Run("Payment statuses", func(t *testing.T) {
		assert.True(t, IsValidPaymentStatus("pending"))
		assert.True(t, IsValidPaymentStatus("confirmed"))
		assert.False(t, IsValidPaymentStatus("rejected"))
	})
}

func TestPaymentGetAmount(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(t, fixedTime)

	payment, err := NewPayment("pay-1", "player-1", "10.5", "Zelle", TypeBuyIn, false, tp)
	require.NoError(t, err)

	assert.Equal(t, "10.50", payment.GetAmount())
}
