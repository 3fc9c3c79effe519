package backup

import (
	"context"
	"fmt"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/persistence"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// Service implements full-store export and atomic restore on top of the
// snapshot repository.
type Service struct {
	snapshots    persistence.SnapshotRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a backup service
func NewService(
	snapshots persistence.SnapshotRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		snapshots:    snapshots,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Export dumps the whole store into a serializable archive
func (s *Service) Export(ctx context.Context) (*usecase.Archive, error) {
	snapshot, err := s.snapshots.Export(ctx)
	if err != nil {
		return nil, err
	}

	archive := &usecase.Archive{
		Version:    usecase.ArchiveVersion,
		ExportedAt: s.timeProvider.Now(),
		Players:    make([]usecase.PlayerRecord, 0, len(snapshot.Players)),
		Payments:   make([]usecase.PaymentRecord, 0, len(snapshot.Payments)),
		CashOuts:   make([]usecase.CashOutRecord, 0, len(snapshot.CashOuts)),
	}

	for _, player := range snapshot.Players {
		archive.Players = append(archive.Players, usecase.PlayerRecord{
			ID:        player.ID,
			Name:      player.Name,
			Total:     player.GetTotal(),
			CreatedAt: player.CreatedAt,
		})
	}
	for _, payment := range snapshot.Payments {
		archive.Payments = append(archive.Payments, usecase.PaymentRecord{
			ID:               payment.ID,
			PlayerID:         payment.PlayerID,
			Amount:           payment.GetAmount(),
			Method:           string(payment.Method),
			Type:             string(payment.Type),
			DealerFeeApplied: payment.DealerFeeApplied,
			Status:           string(payment.Status),
			Timestamp:        payment.CreatedAt,
		})
	}
	for _, cashOut := range snapshot.CashOuts {
		archive.CashOuts = append(archive.CashOuts, usecase.CashOutRecord{
			ID:        cashOut.ID,
			PlayerID:  cashOut.PlayerID,
			Amount:    cashOut.GetAmount(),
			Reason:    cashOut.Reason,
			Confirmed: cashOut.Confirmed,
			Timestamp: cashOut.CreatedAt,
		})
	}

	s.logger.Info("Backup exported", map[string]any{
		"players":   len(archive.Players),
		"payments":  len(archive.Payments),
		"cash_outs": len(archive.CashOuts),
	})
	return archive, nil
}

// Restore validates the archive, rebuilds the entities and atomically
// replaces the store contents. A validation failure leaves the existing data
// untouched.
func (s *Service) Restore(ctx context.Context, archive *usecase.Archive) (*usecase.RestoreResult, error) {
	if archive == nil {
		return nil, fmt.Errorf("%w: missing archive", errs.ErrMalformedBackup)
	}

	snapshot, err := s.buildSnapshot(archive)
	if err != nil {
		return nil, err
	}

	if err := s.snapshots.Replace(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Info("Backup restored", map[string]any{
		"players":   len(snapshot.Players),
		"payments":  len(snapshot.Payments),
		"cash_outs": len(snapshot.CashOuts),
	})

	return &usecase.RestoreResult{
		Players:  len(snapshot.Players),
		Payments: len(snapshot.Payments),
		CashOuts: len(snapshot.CashOuts),
	}, nil
}

func (s *Service) buildSnapshot(archive *usecase.Archive) (*persistence.Snapshot, error) {
	snapshot := &persistence.Snapshot{
		Players:  make([]*entity.Player, 0, len(archive.Players)),
		Payments: make([]*entity.Payment, 0, len(archive.Payments)),
		CashOuts: make([]*entity.CashOut, 0, len(archive.CashOuts)),
	}

	playerIDs := make(map[string]struct{}, len(archive.Players))

	for i, record := range archive.Players {
		player, err := entity.NewPlayer(record.ID, record.Name, s.timeProvider)
		if err != nil {
			return nil, fmt.Errorf("%w: player %d: %v", errs.ErrMalformedBackup, i, err)
		}

		totalCents, err := entity.ValidateAndConvertAmount(record.Total)
		if err != nil {
			return nil, fmt.Errorf("%w: player %d total: %v", errs.ErrMalformedBackup, i, err)
		}
		player.SetTotal(totalCents)
		player.CreatedAt = record.CreatedAt

		if _, exists := playerIDs[player.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate player id %s", errs.ErrMalformedBackup, player.ID)
		}
		playerIDs[player.ID] = struct{}{}
		snapshot.Players = append(snapshot.Players, player)
	}

	for i, record := range archive.Payments {
		if record.ID == "" {
			return nil, fmt.Errorf("%w: payment %d: missing id", errs.ErrMalformedBackup, i)
		}
		if _, exists := playerIDs[record.PlayerID]; !exists {
			return nil, fmt.Errorf("%w: payment %d: unknown player %s", errs.ErrMalformedBackup, i, record.PlayerID)
		}
		if !entity.IsValidPaymentMethod(record.Method) {
			return nil, fmt.Errorf("%w: payment %d: invalid method %s", errs.ErrMalformedBackup, i, record.Method)
		}
		if !entity.IsValidTransactionType(record.Type) {
			return nil, fmt.Errorf("%w: payment %d: invalid type %s", errs.ErrMalformedBackup, i, record.Type)
		}
		if !entity.IsValidPaymentStatus(record.Status) {
			return nil, fmt.Errorf("%w: payment %d: invalid status %s", errs.ErrMalformedBackup, i, record.Status)
		}

		amountCents, err := entity.ValidatePositiveAmount(record.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: payment %d amount: %v", errs.ErrMalformedBackup, i, err)
		}

		snapshot.Payments = append(snapshot.Payments, &entity.Payment{
			ID:               record.ID,
			PlayerID:         record.PlayerID,
			AmountCents:      amountCents,
			Method:           entity.PaymentMethod(record.Method),
			Type:             entity.TransactionType(record.Type),
			DealerFeeApplied: record.DealerFeeApplied,
			Status:           entity.PaymentStatus(record.Status),
			CreatedAt:        record.Timestamp,
		})
	}

	for i, record := range archive.CashOuts {
		if record.ID == "" {
			return nil, fmt.Errorf("%w: cash out %d: missing id", errs.ErrMalformedBackup, i)
		}
		if _, exists := playerIDs[record.PlayerID]; !exists {
			return nil, fmt.Errorf("%w: cash out %d: unknown player %s", errs.ErrMalformedBackup, i, record.PlayerID)
		}

		amountCents, err := entity.ValidatePositiveAmount(record.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: cash out %d amount: %v", errs.ErrMalformedBackup, i, err)
		}

		reason := record.Reason
		if reason == "" {
			reason = entity.DefaultCashOutReason
		}

		snapshot.CashOuts = append(snapshot.CashOuts, &entity.CashOut{
			ID:          record.ID,
			PlayerID:    record.PlayerID,
			AmountCents: amountCents,
			Reason:      reason,
			Confirmed:   record.Confirmed,
			CreatedAt:   record.Timestamp,
		})
	}

	return snapshot, nil
}

var _ usecase.BackupUseCase = (*Service)(nil)
