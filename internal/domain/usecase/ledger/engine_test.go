package ledger

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/repository/memory"
	coremocks "github.com/mblud/poker-tracker-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDealerFeeCents = int64(3500)

// testEnv wires a reconciliation engine over the in-memory store with a
// ticking clock and sequential ids, so every test run is deterministic.
type testEnv struct {
	engine *Engine
	store  *memory.Store
}

func newTestEngine(t *testing.T, policy CashOutPolicy) *testEnv {
	store := memory.NewStore()

	base := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	var ticks int64
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().RunAndReturn(func() time.Time {
		return base.Add(time.Duration(atomic.AddInt64(&ticks, 1)) * time.Second)
	}).Maybe()

	var seq int64
	idGen := coremocks.NewMockIDGenerator(t)
	idGen.EXPECT().NewID().RunAndReturn(func() string {
		return fmt.Sprintf("id-%d", atomic.AddInt64(&seq, 1))
	}).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	engine := NewEngine(
		store.Players(),
		store.Payments(),
		store.CashOuts(),
		idGen,
		timeProvider,
		logger,
		testDealerFeeCents,
		policy,
	)
	t.Cleanup(engine.Shutdown)

	return &testEnv{engine: engine, store: store}
}

func TestCreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates player with zero total", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		view, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		assert.NotEmpty(t, view.ID)
		assert.Equal(t, "Alice", view.Name)
		assert.Equal(t, "0.00", view.Total)
		assert.Empty(t, view.Payments)
	})

	t.Run("Rejects blank name", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		_, err := env.engine.CreatePlayer(ctx, "   ")
		assert.ErrorIs(t, err, errs.ErrInvalidPlayerName)
	})

	t.Run("Rejects duplicate name case-insensitively", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		_, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		_, err = env.engine.CreatePlayer(ctx, "alice")
		assert.ErrorIs(t, err, errs.ErrDuplicatePlayer)
	})
}

func TestSubmitBuyIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending buy-in does not move the total", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		view, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)

		assert.Equal(t, "0.00", view.Total)
		require.Len(t, view.Payments, 1)
		assert.Equal(t, "100.00", view.Payments[0].Amount)
		assert.Equal(t, "pending", view.Payments[0].Status)
		assert.True(t, view.Payments[0].DealerFeeApplied)
	})

	t.Run("Dealer fee attaches only to the first payment", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		first, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)
		assert.True(t, first.Payments[0].DealerFeeApplied)

		second, err := env.engine.SubmitBuyIn(ctx, player.ID, "50.00", "Venmo")
		require.NoError(t, err)
		require.Len(t, second.Payments, 2)
		assert.False(t, second.Payments[1].DealerFeeApplied)
	})

	t.Run("Unknown player fails", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		_, err := env.engine.SubmitBuyIn(ctx, "missing", "100.00", "Cash")
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
	})

	t.Run("Invalid method fails", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		_, err = env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Bitcoin")
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirming applies the amount minus the dealer fee", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		view, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)

		result, err := env.engine.ConfirmPayment(ctx, player.ID, view.Payments[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "65.00", result.NewTotal)
		assert.Equal(t, "Alice", result.PlayerName)
	})

	t.Run("A later rebuy contributes its full amount", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		first, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)
		_, err = env.engine.ConfirmPayment(ctx, player.ID, first.Payments[0].ID)
		require.NoError(t, err)

		second, err := env.engine.SubmitBuyIn(ctx, player.ID, "50.00", "Cash")
		require.NoError(t, err)

		result, err := env.engine.ConfirmPayment(ctx, player.ID, second.Payments[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "115.00", result.NewTotal)
	})

	t.Run("Double confirmation fails and changes nothing", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		view, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)
		paymentID := view.Payments[0].ID

		_, err = env.engine.ConfirmPayment(ctx, player.ID, paymentID)
		require.NoError(t, err)

		_, err = env.engine.ConfirmPayment(ctx, player.ID, paymentID)
		assert.ErrorIs(t, err, errs.ErrAlreadyConfirmed)
		assert.True(t, errs.IsAlreadyConfirmedError(err))

		total, err := env.engine.Recompute(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(6500), total)
	})

	t.Run("Payment id under the wrong player reads as not found", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		alice, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)
		bob, err := env.engine.CreatePlayer(ctx, "Bob")
		require.NoError(t, err)

		view, err := env.engine.SubmitBuyIn(ctx, alice.ID, "100.00", "Cash")
		require.NoError(t, err)

		_, err = env.engine.ConfirmPayment(ctx, bob.ID, view.Payments[0].ID)
		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})
}

func TestDeletePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Deleting a confirmed payment recomputes the total", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		view, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)
		_, err = env.engine.ConfirmPayment(ctx, player.ID, view.Payments[0].ID)
		require.NoError(t, err)

		result, err := env.engine.DeletePayment(ctx, player.ID, view.Payments[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "0.00", result.NewTotal)
		assert.Equal(t, "100.00", result.Amount)
		assert.Equal(t, "buy-in", result.Type)
	})

	t.Run("Deletion never resurrects the dealer fee", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		first, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)
		second, err := env.engine.SubmitBuyIn(ctx, player.ID, "50.00", "Cash")
		require.NoError(t, err)
		secondID := second.Payments[1].ID

		_, err = env.engine.ConfirmPayment(ctx, player.ID, secondID)
		require.NoError(t, err)

		// Removing the fee-bearing first payment leaves the second fee-free
		_, err = env.engine.DeletePayment(ctx, player.ID, first.Payments[0].ID)
		require.NoError(t, err)

		total, err := env.engine.Recompute(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), total)
	})
}

func TestSubmitRebuy(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown name auto-provisions and classifies as first buy-in", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		result, err := env.engine.SubmitRebuy(ctx, "Bob", "100.00", "Cash")
		require.NoError(t, err)

		assert.True(t, result.IsNewPlayer)
		assert.True(t, result.IsFirstBuyIn)
		assert.True(t, result.DealerFeeApplied)
		assert.Equal(t, "Bob", result.PlayerName)
		assert.Equal(t, "65.00", result.AmountToPot)
	})

	t.Run("Existing name matches case-insensitively", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Bob")
		require.NoError(t, err)

		view, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)
		_, err = env.engine.ConfirmPayment(ctx, player.ID, view.Payments[0].ID)
		require.NoError(t, err)

		result, err := env.engine.SubmitRebuy(ctx, "bob", "50.00", "Venmo")
		require.NoError(t, err)

		assert.False(t, result.IsNewPlayer)
		assert.False(t, result.IsFirstBuyIn)
		assert.False(t, result.DealerFeeApplied)
		assert.Equal(t, player.ID, result.PlayerID)
		assert.Equal(t, "50.00", result.AmountToPot)

		// No second player was created
		count, err := env.engine.PlayerCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestDeletePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Cascades to payments and cash-outs", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		player, err := env.engine.CreatePlayer(ctx, "Alice")
		require.NoError(t, err)

		view, err := env.engine.SubmitBuyIn(ctx, player.ID, "100.00", "Cash")
		require.NoError(t, err)
		_, err = env.engine.ConfirmPayment(ctx, player.ID, view.Payments[0].ID)
		require.NoError(t, err)
		_, err = env.engine.RequestCashOut(ctx, player.ID, "10.00", "")
		require.NoError(t, err)

		result, err := env.engine.DeletePlayer(ctx, player.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", result.PlayerName)
		assert.Equal(t, "65.00", result.RemovedTotal)
		assert.Equal(t, int64(1), result.TransactionCount)

		_, err = env.store.Players().GetByID(ctx, player.ID)
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)

		payments, err := env.store.Payments().ListByPlayer(ctx, player.ID)
		require.NoError(t, err)
		assert.Empty(t, payments)

		cashOuts, err := env.store.CashOuts().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, cashOuts)
	})

	t.Run("Unknown player fails", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		_, err := env.engine.DeletePlayer(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
	})
}

func TestListPlayers(t *testing.T) {
	ctx := context.Background()
	env := newTestEngine(t, PolicyTable)

	alice, err := env.engine.CreatePlayer(ctx, "Alice")
	require.NoError(t, err)
	_, err = env.engine.CreatePlayer(ctx, "Bob")
	require.NoError(t, err)

	view, err := env.engine.SubmitBuyIn(ctx, alice.ID, "100.00", "Cash")
	require.NoError(t, err)
	_, err = env.engine.ConfirmPayment(ctx, alice.ID, view.Payments[0].ID)
	require.NoError(t, err)

	// Corrupt the stored total; listing repairs it through recompute
	require.NoError(t, env.store.Players().UpdateTotal(ctx, alice.ID, 999999))

	players, err := env.engine.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, "65.00", players[0].Total)
	assert.Len(t, players[0].Payments, 1)

	assert.Equal(t, "Bob", players[1].Name)
	assert.Equal(t, "0.00", players[1].Total)
}
