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

// PaymentRepository implements the PaymentRepository interface using GORM
type PaymentRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:     db,
		logger: logger,
	}
}

func paymentModelToEntity(paymentModel *model.Payment) *entity.Payment {
	return &entity.Payment{
		ID:               paymentModel.ID,
		PlayerID:         paymentModel.PlayerID,
		AmountCents:      paymentModel.AmountCents,
		Method:           entity.PaymentMethod(paymentModel.Method),
		Type:             entity.TransactionType(paymentModel.Type),
		DealerFeeApplied: paymentModel.DealerFeeApplied,
		Status:           entity.PaymentStatus(paymentModel.Status),
		CreatedAt:        paymentModel.Timestamp,
	}
}

func paymentEntityToModel(payment *entity.Payment) *model.Payment {
	return &model.Payment{
		ID:               payment.ID,
		PlayerID:         payment.PlayerID,
		AmountCents:      payment.AmountCents,
		Method:           string(payment.Method),
		Type:             string(payment.Type),
		DealerFeeApplied: payment.DealerFeeApplied,
		Status:           string(payment.Status),
		Timestamp:        payment.CreatedAt,
	}
}

func (r *PaymentRepository) handleDatabaseError(operation string, err error, paymentID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Payment not found", map[string]any{
			"payment_id": paymentID,
		})
		return errs.ErrPaymentNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"payment_id": paymentID,
		"error":      err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

func (r *PaymentRepository) listModels(result *gorm.DB, operation string) ([]*entity.Payment, error) {
	var paymentModels []model.Payment
	if err := result.Find(&paymentModels).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, "")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		payments = append(payments, paymentModelToEntity(&paymentModels[i]))
	}
	return payments, nil
}

// Create inserts a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.logger.Debug("Creating payment", map[string]any{
		"payment_id": payment.ID,
		"player_id":  payment.PlayerID,
		"amount":     payment.GetAmount(),
		"type":       string(payment.Type),
	})

	result := r.db.WithContext(ctx).Create(paymentEntityToModel(payment))
	if result.Error != nil {
		return r.handleDatabaseError("creating payment", result.Error, payment.ID)
	}
	return nil
}

// GetByID retrieves a payment by id
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	var paymentModel model.Payment
	result := r.db.WithContext(ctx).First(&paymentModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting payment", result.Error, id)
	}
	return paymentModelToEntity(&paymentModel), nil
}

// ListByPlayer returns all payments for a player, oldest first
func (r *PaymentRepository) ListByPlayer(ctx context.Context, playerID string) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("timestamp asc")
	return r.listModels(query, "listing payments by player")
}

// ListByPlayerAndStatus returns a player's payments with the given status,
// oldest first
func (r *PaymentRepository) ListByPlayerAndStatus(ctx context.Context, playerID string, status entity.PaymentStatus) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).
		Where("player_id = ? AND status = ?", playerID, string(status)).
		Order("timestamp asc")
	return r.listModels(query, "listing payments by player and status")
}

// ListByStatus returns all payments with the given status, newest first
func (r *PaymentRepository) ListByStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("timestamp desc")
	return r.listModels(query, "listing payments by status")
}

// ListRecent returns the most recent payments of any status, newest first
func (r *PaymentRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).
		Order("timestamp desc").
		Limit(limit)
	return r.listModels(query, "listing recent payments")
}

// ListRecentByType returns the most recent payments of one transaction type,
// newest first
func (r *PaymentRepository) ListRecentByType(ctx context.Context, txType entity.TransactionType, limit int) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).
		Where("type = ?", string(txType)).
		Order("timestamp desc").
		Limit(limit)
	return r.listModels(query, "listing recent payments by type")
}

// CountByPlayer returns how many payments of any status the player has
func (r *PaymentRepository) CountByPlayer(ctx context.Context, playerID string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("player_id = ?", playerID).
		Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting payments by player", result.Error, "")
	}
	return count, nil
}

// UpdateStatus persists a payment's lifecycle transition
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return r.handleDatabaseError("updating payment status", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}
	return nil
}

// Delete removes a payment by id
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Payment{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting payment", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentNotFound
	}
	return nil
}

// DeleteByPlayer removes all payments belonging to the player
func (r *PaymentRepository) DeleteByPlayer(ctx context.Context, playerID string) error {
	result := r.db.WithContext(ctx).Delete(&model.Payment{}, "player_id = ?", playerID)
	if result.Error != nil {
		return r.handleDatabaseError("deleting payments by player", result.Error, "")
	}
	return nil
}
