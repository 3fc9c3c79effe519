package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompute(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent over an unchanged set", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		aliceID := confirmedBuyIn(t, env, "Alice", "100.00")

		first, err := env.engine.Recompute(ctx, aliceID)
		require.NoError(t, err)
		second, err := env.engine.Recompute(ctx, aliceID)
		require.NoError(t, err)

		assert.Equal(t, int64(6500), first)
		assert.Equal(t, first, second)
	})

	t.Run("Repairs a drifted stored total", func(t *testing.T) {
		env := newTestEngine(t, PolicyTable)

		aliceID := confirmedBuyIn(t, env, "Alice", "100.00")
		require.NoError(t, env.store.Players().UpdateTotal(ctx, aliceID, 123456))

		total, err := env.engine.Recompute(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, int64(6500), total)

		stored, err := env.store.Players().GetByID(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, int64(6500), stored.Total())
	})

	t.Run("Clamps a negative total to zero under the player policy", func(t *testing.T) {
		env := newTestEngine(t, PolicyPlayer)

		aliceID := confirmedBuyIn(t, env, "Alice", "100.00")

		view, err := env.engine.RequestCashOut(ctx, aliceID, "65.00", "")
		require.NoError(t, err)
		_, err = env.engine.ConfirmCashOut(ctx, view.ID)
		require.NoError(t, err)

		// Deleting the confirmed payment after the cash-out would drive the
		// derived total below zero
		payments, err := env.store.Payments().ListByPlayer(ctx, aliceID)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		_, err = env.engine.DeletePayment(ctx, aliceID, payments[0].ID)
		require.NoError(t, err)

		total, err := env.engine.Recompute(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}
