package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/model"
)

// CashOutRepository implements the CashOutRepository interface using GORM
type CashOutRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCashOutRepository creates a new CashOutRepository instance
func NewCashOutRepository(db *gorm.DB, logger coreport.Logger) *CashOutRepository {
	return &CashOutRepository{
		db:     db,
		logger: logger,
	}
}

func cashOutModelToEntity(cashOutModel *model.CashOut) *entity.CashOut {
	return &entity.CashOut{
		ID:          cashOutModel.ID,
		PlayerID:    cashOutModel.PlayerID,
		AmountCents: cashOutModel.AmountCents,
		Reason:      cashOutModel.Reason,
		Confirmed:   cashOutModel.Confirmed,
		CreatedAt:   cashOutModel.Timestamp,
	}
}

func cashOutEntityToModel(cashOut *entity.CashOut) *model.CashOut {
	return &model.CashOut{
		ID:          cashOut.ID,
		PlayerID:    cashOut.PlayerID,
		AmountCents: cashOut.AmountCents,
		Reason:      cashOut.Reason,
		Confirmed:   cashOut.Confirmed,
		Timestamp:   cashOut.CreatedAt,
	}
}

func (r *CashOutRepository) handleDatabaseError(operation string, err error, cashOutID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Cash out not found", map[string]any{
			"cash_out_id": cashOutID,
		})
		return errs.ErrCashOutNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"cash_out_id": cashOutID,
		"error":       err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

func (r *CashOutRepository) listModels(result *gorm.DB, operation string) ([]*entity.CashOut, error) {
	var cashOutModels []model.CashOut
	if err := result.Find(&cashOutModels).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, "")
	}

	cashOuts := make([]*entity.CashOut, 0, len(cashOutModels))
	for i := range cashOutModels {
		cashOuts = append(cashOuts, cashOutModelToEntity(&cashOutModels[i]))
	}
	return cashOuts, nil
}

// Create inserts a new cash-out request
func (r *CashOutRepository) Create(ctx context.Context, cashOut *entity.CashOut) error {
	r.logger.Debug("Creating cash out", map[string]any{
		"cash_out_id": cashOut.ID,
		"player_id":   cashOut.PlayerID,
		"amount":      cashOut.GetAmount(),
	})

	result := r.db.WithContext(ctx).Create(cashOutEntityToModel(cashOut))
	if result.Error != nil {
		return r.handleDatabaseError("creating cash out", result.Error, cashOut.ID)
	}
	return nil
}

// GetByID retrieves a cash-out by id
func (r *CashOutRepository) GetByID(ctx context.Context, id string) (*entity.CashOut, error) {
	var cashOutModel model.CashOut
	result := r.db.WithContext(ctx).First(&cashOutModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting cash out", result.Error, id)
	}
	return cashOutModelToEntity(&cashOutModel), nil
}

// ListByConfirmed returns cash-outs filtered by the confirmed flag, newest first
func (r *CashOutRepository) ListByConfirmed(ctx context.Context, confirmed bool) ([]*entity.CashOut, error) {
	query := r.db.WithContext(ctx).
		Where("confirmed = ?", confirmed).
		Order("timestamp desc")
	return r.listModels(query, "listing cash outs by confirmed")
}

// ListRecentConfirmed returns the most recent confirmed cash-outs, newest first
func (r *CashOutRepository) ListRecentConfirmed(ctx context.Context, limit int) ([]*entity.CashOut, error) {
	query := r.db.WithContext(ctx).
		Where("confirmed = ?", true).
		Order("timestamp desc").
		Limit(limit)
	return r.listModels(query, "listing recent confirmed cash outs")
}

// ListConfirmedByPlayer returns the player's confirmed cash-outs, oldest first
func (r *CashOutRepository) ListConfirmedByPlayer(ctx context.Context, playerID string) ([]*entity.CashOut, error) {
	query := r.db.WithContext(ctx).
		Where("player_id = ? AND confirmed = ?", playerID, true).
		Order("timestamp asc")
	return r.listModels(query, "listing confirmed cash outs by player")
}

// List returns every cash-out regardless of state, newest first
func (r *CashOutRepository) List(ctx context.Context) ([]*entity.CashOut, error) {
	query := r.db.WithContext(ctx).Order("timestamp desc")
	return r.listModels(query, "listing cash outs")
}

// SetConfirmed persists a cash-out's one-way confirmation
func (r *CashOutRepository) SetConfirmed(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.CashOut{}).
		Where("id = ?", id).
		Update("confirmed", true)
	if result.Error != nil {
		return r.handleDatabaseError("confirming cash out", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCashOutNotFound
	}
	return nil
}

// DeleteByPlayer removes all cash-outs belonging to the player
func (r *CashOutRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	result := r.db.WithContext(ctx).Delete(&model.CashOut{}, "player_id = ?", playerID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting cash outs by player", result.Error, "")
	}
	return nil
}
