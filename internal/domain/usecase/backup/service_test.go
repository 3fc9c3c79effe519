package backup

import (
	"context"
	"testing"
	"time"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/persistence"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
	coremocks "github.com/mblud/poker-tracker-backend/mocks/port/core"
	persistencemocks "github.com/mblud/poker-tracker-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBackupService(t *testing.T, snapshots persistence.SnapshotRepository, at time.Time) *Service {
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(at).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	return NewService(snapshots, timeProvider, logger)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 15, 2, 0, 0, 0, time.UTC)
	createdAt := fixedTime.Add(-3 * time.Hour)

	mockSnapshots := persistencemocks.NewMockSnapshotRepository(t)
	service := newBackupService(t, mockSnapshots, fixedTime)

	player := &entity.Player{ID: "p1", Name: "Alice", CreatedAt: createdAt}
	player.SetTotal(6500)

	mockSnapshots.EXPECT().Export(mock.Anything).Return(&persistence.Snapshot{
		Players: []*entity.Player{player},
		Payments: []*entity.Payment{{
			ID:               "pay1",
			PlayerID:         "p1",
			AmountCents:      10000,
			Method:           entity.MethodCash,
			Type:             entity.TypeBuyIn,
			DealerFeeApplied: true,
			Status:           entity.StatusConfirmed,
			CreatedAt:        createdAt,
		}},
		CashOuts: []*entity.CashOut{{
			ID:          "co1",
			PlayerID:    "p1",
			AmountCents: 2000,
			Reason:      "Leaving",
			Confirmed:   true,
			CreatedAt:   createdAt,
		}},
	}, nil).Once()

	archive, err := service.Export(ctx)
	require.NoError(t, err)

	assert.Equal(t, usecase.ArchiveVersion, archive.Version)
	assert.Equal(t, fixedTime, archive.ExportedAt)

	require.Len(t, archive.Players, 1)
	assert.Equal(t, usecase.PlayerRecord{
		ID: "p1", Name: "Alice", Total: "65.00", CreatedAt: createdAt,
	}, archive.Players[0])

	require.Len(t, archive.Payments, 1)
	assert.Equal(t, "100.00", archive.Payments[0].Amount)
	assert.Equal(t, "confirmed", archive.Payments[0].Status)
	assert.True(t, archive.Payments[0].DealerFeeApplied)

	require.Len(t, archive.CashOuts, 1)
	assert.Equal(t, "20.00", archive.CashOuts[0].Amount)
	assert.True(t, archive.CashOuts[0].Confirmed)
}

func TestExportStoreFailure(t *testing.T) {
	mockSnapshots := persistencemocks.NewMockSnapshotRepository(t)
	service := newBackupService(t, mockSnapshots, time.Now())

	mockSnapshots.EXPECT().Export(mock.Anything).Return(nil, assert.AnError).Once()

	archive, err := service.Export(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, archive)
}

func validArchive(at time.Time) *usecase.Archive {
	return &usecase.Archive{
		Version:    usecase.ArchiveVersion,
		ExportedAt: at,
		Players: []usecase.PlayerRecord{
			{ID: "p1", Name: "Alice", Total: "65.00", CreatedAt: at},
		},
		Payments: []usecase.PaymentRecord{
			{
				ID: "pay1", PlayerID: "p1", Amount: "100.00",
				Method: "Cash", Type: "buy-in",
				DealerFeeApplied: true, Status: "confirmed", Timestamp: at,
			},
		},
		CashOuts: []usecase.CashOutRecord{
			{ID: "co1", PlayerID: "p1", Amount: "20.00", Confirmed: false, Timestamp: at},
		},
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 15, 2, 0, 0, 0, time.UTC)

	t.Run("Rebuilds and atomically replaces the store", func(t *testing.T) {
		mockSnapshots := persistencemocks.NewMockSnapshotRepository(t)
		service := newBackupService(t, mockSnapshots, fixedTime)

		var replaced *persistence.Snapshot
		mockSnapshots.EXPECT().Replace(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, snapshot *persistence.Snapshot) {
				replaced = snapshot
			}).Return(nil).Once()

		result, err := service.Restore(ctx, validArchive(fixedTime))
		require.NoError(t, err)

		assert.Equal(t, &usecase.RestoreResult{Players: 1, Payments: 1, CashOuts: 1}, result)

		require.NotNil(t, replaced)
		require.Len(t, replaced.Players, 1)
		assert.Equal(t, "p1", replaced.Players[0].ID)
		assert.Equal(t, int64(6500), replaced.Players[0].Total())
		assert.Equal(t, fixedTime, replaced.Players[0].CreatedAt)

		require.Len(t, replaced.Payments, 1)
		assert.Equal(t, int64(10000), replaced.Payments[0].AmountCents)
		assert.Equal(t, entity.StatusConfirmed, replaced.Payments[0].Status)

		require.Len(t, replaced.CashOuts, 1)
		assert.Equal(t, entity.DefaultCashOutReason, replaced.CashOuts[0].Reason)
	})

	t.Run("Replace failure propagates", func(t *testing.T) {
		mockSnapshots := persistencemocks.NewMockSnapshotRepository(t)
		service := newBackupService(t, mockSnapshots, fixedTime)

		mockSnapshots.EXPECT().Replace(mock.Anything, mock.Anything).Return(assert.AnError).Once()

		result, err := service.Restore(ctx, validArchive(fixedTime))
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, result)
	})

	t.Run("Nil archive is malformed", func(t *testing.T) {
		mockSnapshots := persistencemocks.NewMockSnapshotRepository(t)
		service := newBackupService(t, mockSnapshots, fixedTime)

		_, err := service.Restore(ctx, nil)
		assert.ErrorIs(t, err, errs.ErrMalformedBackup)
	})

	t.Run("Validation failures leave the store untouched", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(a *usecase.Archive)
		}{
			{"Duplicate player id", func(a *usecase.Archive) {
				a.Players = append(a.Players, a.Players[0])
			}},
			{"Unparseable player total", func(a *usecase.Archive) {
				a.Players[0].Total = "lots"
			}},
			{"Payment missing id", func(a *usecase.Archive) {
				a.Payments[0].ID = ""
			}},
			{"Payment referencing unknown player", func(a *usecase.Archive) {
				a.Payments[0].PlayerID = "ghost"
			}},
			{"Payment with invalid method", func(a *usecase.Archive) {
				a.Payments[0].Method = "Bitcoin"
			}},
			{"Payment with invalid status", func(a *usecase.Archive) {
				a.Payments[0].Status = "rejected"
			}},
			{"Payment with zero amount", func(a *usecase.Archive) {
				a.Payments[0].Amount = "0.00"
			}},
			{"Cash-out referencing unknown player", func(a *usecase.Archive) {
				a.CashOuts[0].PlayerID = "ghost"
			}},
			{"Cash-out with negative amount", func(a *usecase.Archive) {
				a.CashOuts[0].Amount = "-5.00"
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				// Replace is never expected, the mock fails the test if called
				mockSnapshots := persistencemocks.NewMockSnapshotRepository(t)
				service := newBackupService(t, mockSnapshots, fixedTime)

				archive := validArchive(fixedTime)
				tc.mutate(archive)

				_, err := service.Restore(ctx, archive)
				assert.ErrorIs(t, err, errs.ErrMalformedBackup)
			})
		}
	})
}
