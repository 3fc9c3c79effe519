package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/persistence"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/model"
)

// SnapshotRepository implements full-store export and replace using GORM
type SnapshotRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSnapshotRepository creates a new SnapshotRepository instance
func NewSnapshotRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Export reads a consistent snapshot of all three collections
func (r *SnapshotRepository) Export(ctx context.Context) (*persistence.Snapshot, error) {
	snapshot := &persistence.Snapshot{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := NewPlayerRepository(tx, r.timeProvider, r.logger)
		payments := NewPaymentRepository(tx, r.logger)
		cashOuts := NewCashOutRepository(tx, r.logger)

		var err error
		if snapshot.Players, err = players.List(ctx); err != nil {
			return err
		}

		var paymentModels []model.Payment
		if err := tx.Order("timestamp asc").Find(&paymentModels).Error; err != nil {
			return payments.handleDatabaseError("exporting payments", err, "")
		}
		for i := range paymentModels {
			snapshot.Payments = append(snapshot.Payments, paymentModelToEntity(&paymentModels[i]))
		}

		var cashOutModels []model.CashOut
		if err := tx.Order("timestamp asc").Find(&cashOutModels).Error; err != nil {
			return cashOuts.handleDatabaseError("exporting cash outs", err, "")
		}
		for i := range cashOutModels {
			snapshot.CashOuts = append(snapshot.CashOuts, cashOutModelToEntity(&cashOutModels[i]))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Replace wipes the store and installs the snapshot contents in one
// database transaction
func (r *SnapshotRepository) Replace(ctx context.Context, snapshot *persistence.Snapshot) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Children first to satisfy foreign keys
		if err := tx.Where("1 = 1").Delete(&model.Payment{}).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if err := tx.Where("1 = 1").Delete(&model.CashOut{}).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if err := tx.Where("1 = 1").Delete(&model.Player{}).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}

		for _, player := range snapshot.Players {
			playerModel := model.Player{
				ID:         player.ID,
				Name:       player.Name,
				TotalCents: player.Total(),
				CreatedAt:  player.CreatedAt,
			}
			if err := tx.Create(&playerModel).Error; err != nil {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
			}
		}
		for _, payment := range snapshot.Payments {
			if err := tx.Create(paymentEntityToModel(payment)).Error; err != nil {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
			}
		}
		for _, cashOut := range snapshot.CashOuts {
			if err := tx.Create(cashOutEntityToModel(cashOut)).Error; err != nil {
				return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Store contents replaced", map[string]any{
		"players":   len(snapshot.Players),
		"payments":  len(snapshot.Payments),
		"cash_outs": len(snapshot.CashOuts),
	})
	return nil
}
