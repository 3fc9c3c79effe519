package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)

func newPlayerAt(id, name string, offset time.Duration) *entity.Player {
	return &entity.Player{ID: id, Name: name, CreatedAt: baseTime.Add(offset)}
}

func newPaymentAt(id, playerID string, amountCents int64, status entity.PaymentStatus, txType entity.TransactionType, offset time.Duration) *entity.Payment {
	return &entity.Payment{
		ID:          id,
		PlayerID:    playerID,
		AmountCents: amountCents,
		Method:      entity.MethodCash,
		Type:        txType,
		Status:      status,
		CreatedAt:   baseTime.Add(offset),
	}
}

func newCashOutAt(id, playerID string, amountCents int64, confirmed bool, offset time.Duration) *entity.CashOut {
	return &entity.CashOut{
		ID:          id,
		PlayerID:    playerID,
		AmountCents: amountCents,
		Reason:      entity.DefaultCashOutReason,
		Confirmed:   confirmed,
		CreatedAt:   baseTime.Add(offset),
	}
}

func TestPlayerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create and retrieve", func(t *testing.T) {
		repo := NewStore().Players()

		require.NoError(t, repo.Create(ctx, newPlayerAt("p1", "Alice", 0)))

		player, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", player.Name)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Duplicate id is rejected", func(t *testing.T) {
		repo := NewStore().Players()

		require.NoError(t, repo.Create(ctx, newPlayerAt("p1", "Alice", 0)))
		err := repo.Create(ctx, newPlayerAt("p1", "Bob", time.Second))
		assert.ErrorIs(t, err, errs.ErrDuplicatePlayer)
	})

	t.Run("GetByName ignores case and whitespace", func(t *testing.T) {
		repo := NewStore().Players()
		require.NoError(t, repo.Create(ctx, newPlayerAt("p1", "Alice", 0)))

		player, err := repo.GetByName(ctx, "  aLiCe  ")
		require.NoError(t, err)
		assert.Equal(t, "p1", player.ID)

		_, err = repo.GetByName(ctx, "Bob")
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
	})

	t.Run("List orders by creation time", func(t *testing.T) {
		repo := NewStore().Players()
		require.NoError(t, repo.Create(ctx, newPlayerAt("p2", "Bob", time.Minute)))
		require.NoError(t, repo.Create(ctx, newPlayerAt("p1", "Alice", 0)))

		players, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, "p1", players[0].ID)
		assert.Equal(t, "p2", players[1].ID)
	})

	t.Run("UpdateTotal persists the derived total", func(t *testing.T) {
		repo := NewStore().Players()
		require.NoError(t, repo.Create(ctx, newPlayerAt("p1", "Alice", 0)))

		require.NoError(t, repo.UpdateTotal(ctx, "p1", 6500))

		player, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(6500), player.Total())

		assert.ErrorIs(t, repo.UpdateTotal(ctx, "ghost", 100), errs.ErrPlayerNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewStore().Players()
		require.NoError(t, repo.Create(ctx, newPlayerAt("p1", "Alice", 0)))

		require.NoError(t, repo.Delete(ctx, "p1"))
		_, err := repo.GetByID(ctx, "p1")
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, "p1"), errs.ErrPlayerNotFound)
	})

	t.Run("Reads return copies", func(t *testing.T) {
		repo := NewStore().Players()
		require.NoError(t, repo.Create(ctx, newPlayerAt("p1", "Alice", 0)))

		player, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		player.SetTotal(999999)

		stored, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored.Total())
	})
}

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *PaymentRepository {
		t.Helper()
		store := NewStore()
		require.NoError(t, store.Players().Create(ctx, newPlayerAt("p1", "Alice", 0)))
		require.NoError(t, store.Players().Create(ctx, newPlayerAt("p2", "Bob", 0)))
		repo := store.Payments()
		require.NoError(t, repo.Create(ctx, newPaymentAt("pay1", "p1", 10000, entity.StatusConfirmed, entity.TypeBuyIn, 0)))
		require.NoError(t, repo.Create(ctx, newPaymentAt("pay2", "p1", 5000, entity.StatusPending, entity.TypeRebuy, time.Minute)))
		require.NoError(t, repo.Create(ctx, newPaymentAt("pay3", "p2", 4000, entity.StatusPending, entity.TypeBuyIn, 2*time.Minute)))
		return repo
	}

	t.Run("GetByID", func(t *testing.T) {
		repo := seed(t)

		payment, err := repo.GetByID(ctx, "pay2")
		require.NoError(t, err)
		assert.Equal(t, int64(5000), payment.AmountCents)

		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})

	t.Run("Create rejects an unknown player", func(t *testing.T) {
		repo := seed(t)

		err := repo.Create(ctx, newPaymentAt("pay4", "ghost", 100, entity.StatusPending, entity.TypeBuyIn, 0))
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)

		_, err = repo.GetByID(ctx, "pay4")
		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})

	t.Run("ListByPlayer oldest first", func(t *testing.T) {
		repo := seed(t)

		payments, err := repo.ListByPlayer(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, "pay1", payments[0].ID)
		assert.Equal(t, "pay2", payments[1].ID)
	})

	t.Run("ListByPlayerAndStatus", func(t *testing.T) {
		repo := seed(t)

		payments, err := repo.ListByPlayerAndStatus(ctx, "p1", entity.StatusPending)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, "pay2", payments[0].ID)
	})

	t.Run("ListByStatus newest first", func(t *testing.T) {
		repo := seed(t)

		payments, err := repo.ListByStatus(ctx, entity.StatusPending)
		require.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, "pay3", payments[0].ID)
		assert.Equal(t, "pay2", payments[1].ID)
	})

	t.Run("ListRecent honors the limit", func(t *testing.T) {
		repo := seed(t)

		payments, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, "pay3", payments[0].ID)
		assert.Equal(t, "pay2", payments[1].ID)
	})

	t.Run("ListRecentByType", func(t *testing.T) {
		repo := seed(t)

		payments, err := repo.ListRecentByType(ctx, entity.TypeRebuy, 10)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, "pay2", payments[0].ID)
	})

	t.Run("CountByPlayer", func(t *testing.T) {
		repo := seed(t)

		count, err := repo.CountByPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = repo.CountByPlayer(ctx, "ghost")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		repo := seed(t)

		require.NoError(t, repo.UpdateStatus(ctx, "pay2", entity.StatusConfirmed))
		payment, err := repo.GetByID(ctx, "pay2")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusConfirmed, payment.Status)

		assert.ErrorIs(t, repo.UpdateStatus(ctx, "ghost", entity.StatusConfirmed), errs.ErrPaymentNotFound)
	})

	t.Run("Delete and DeleteByPlayer", func(t *testing.T) {
		repo := seed(t)

		require.NoError(t, repo.Delete(ctx, "pay3"))
		assert.ErrorIs(t, repo.Delete(ctx, "pay3"), errs.ErrPaymentNotFound)

		require.NoError(t, repo.DeleteByPlayer(ctx, "p1"))
		payments, err := repo.ListByPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestCashOutRepository(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *CashOutRepository {
		t.Helper()
		store := NewStore()
		require.NoError(t, store.Players().Create(ctx, newPlayerAt("p1", "Alice", 0)))
		require.NoError(t, store.Players().Create(ctx, newPlayerAt("p2", "Bob", 0)))
		repo := store.CashOuts()
		require.NoError(t, repo.Create(ctx, newCashOutAt("co1", "p1", 2000, true, 0)))
		require.NoError(t, repo.Create(ctx, newCashOutAt("co2", "p1", 3000, false, time.Minute)))
		require.NoError(t, repo.Create(ctx, newCashOutAt("co3", "p2", 1000, true, 2*time.Minute)))
		return repo
	}

	t.Run("GetByID", func(t *testing.T) {
		repo := seed(t)

		cashOut, err := repo.GetByID(ctx, "co1")
		require.NoError(t, err)
		assert.Equal(t, int64(2000), cashOut.AmountCents)

		_, err = repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrCashOutNotFound)
	})

	t.Run("Create rejects an unknown player", func(t *testing.T) {
		repo := seed(t)

		err := repo.Create(ctx, newCashOutAt("co5", "ghost", 100, false, 0))
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
	})

	t.Run("ListByConfirmed newest first", func(t *testing.T) {
		repo := seed(t)

		confirmed, err := repo.ListByConfirmed(ctx, true)
		require.NoError(t, err)
		require.Len(t, confirmed, 2)
		assert.Equal(t, "co3", confirmed[0].ID)
		assert.Equal(t, "co1", confirmed[1].ID)

		pending, err := repo.ListByConfirmed(ctx, false)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "co2", pending[0].ID)
	})

	t.Run("ListRecentConfirmed honors the limit", func(t *testing.T) {
		repo := seed(t)

		cashOuts, err := repo.ListRecentConfirmed(ctx, 1)
		require.NoError(t, err)
		require.Len(t, cashOuts, 1)
		assert.Equal(t, "co3", cashOuts[0].ID)
	})

	t.Run("ListConfirmedByPlayer oldest first", func(t *testing.T) {
		repo := seed(t)
		require.NoError(t, repo.Create(ctx, newCashOutAt("co4", "p1", 500, true, 3*time.Minute)))

		cashOuts, err := repo.ListConfirmedByPlayer(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, cashOuts, 2)
		assert.Equal(t, "co1", cashOuts[0].ID)
		assert.Equal(t, "co4", cashOuts[1].ID)
	})

	t.Run("SetConfirmed", func(t *testing.T) {
		repo := seed(t)

		require.NoError(t, repo.SetConfirmed(ctx, "co2"))
		cashOut, err := repo.GetByID(ctx, "co2")
		require.NoError(t, err)
		assert.True(t, cashOut.Confirmed)

		assert.ErrorIs(t, repo.SetConfirmed(ctx, "ghost"), errs.ErrCashOutNotFound)
	})

	t.Run("DeleteByPlayer", func(t *testing.T) {
		repo := seed(t)

		require.NoError(t, repo.DeleteByPlayer(ctx, "p1"))

		cashOuts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, cashOuts, 1)
		assert.Equal(t, "co3", cashOuts[0].ID)
	})
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Export and Replace round-trip", func(t *testing.T) {
		store := NewStore()
		require.NoError(t, store.Players().Create(ctx, newPlayerAt("p1", "Alice", 0)))
		require.NoError(t, store.Payments().Create(ctx, newPaymentAt("pay2", "p1", 5000, entity.StatusPending, entity.TypeRebuy, time.Minute)))
		require.NoError(t, store.Payments().Create(ctx, newPaymentAt("pay1", "p1", 10000, entity.StatusConfirmed, entity.TypeBuyIn, 0)))
		require.NoError(t, store.CashOuts().Create(ctx, newCashOutAt("co1", "p1", 2000, true, 0)))

		snapshot, err := store.Snapshots().Export(ctx)
		require.NoError(t, err)
		require.Len(t, snapshot.Players, 1)
		require.Len(t, snapshot.Payments, 2)
		require.Len(t, snapshot.CashOuts, 1)
		// payments come back oldest first regardless of insertion order
		assert.Equal(t, "pay1", snapshot.Payments[0].ID)
		assert.Equal(t, "pay2", snapshot.Payments[1].ID)

		other := NewStore()
		require.NoError(t, other.Snapshots().Replace(ctx, snapshot))

		player, err := other.Players().GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", player.Name)

		payments, err := other.Payments().ListByPlayer(ctx, "p1")
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})

	t.Run("Replace discards existing contents", func(t *testing.T) {
		store := NewStore()
		require.NoError(t, store.Players().Create(ctx, newPlayerAt("old", "Stale", 0)))
		require.NoError(t, store.Payments().Create(ctx, newPaymentAt("pay-old", "old", 100, entity.StatusPending, entity.TypeBuyIn, 0)))

		require.NoError(t, store.Snapshots().Replace(ctx, &persistence.Snapshot{
			Players: []*entity.Player{newPlayerAt("p1", "Alice", 0)},
		}))

		_, err := store.Players().GetByID(ctx, "old")
		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)

		payments, err := store.Payments().ListRecent(ctx, -1)
		require.NoError(t, err)
		assert.Empty(t, payments)
	})
}
