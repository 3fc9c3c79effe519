package ledger

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// ConfirmPayment transitions a payment from pending to confirmed and
// recomputes the owner's total. The transition is one-way: confirming a
// confirmed payment fails with ErrAlreadyConfirmed and changes nothing.
func (e *Engine) ConfirmPayment(ctx context.Context, playerID, paymentID string) (*usecase.ConfirmPaymentResult, error) {
	var result *usecase.ConfirmPaymentResult

	err := e.serializer.Run(ctx, playerID, func(ctx context.Context) error {
		payment, err := e.payments.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.PlayerID != playerID {
			// A payment id under the wrong player is indistinguishable from a
			// missing one to the caller
			return errs.ErrPaymentNotFound
		}

		player, err := e.players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}

		if err := payment.Confirm(); err != nil {
			return errs.NewPaymentError(paymentID, playerID, payment.GetAmount(),
				"payment already confirmed", err)
		}

		if err := e.payments.UpdateStatus(ctx, paymentID, entity.StatusConfirmed); err != nil {
			return err
		}

		total, err := e.recomputeLocked(ctx, playerID)
		if err != nil {
			return err
		}

		e.logger.Info("Payment confirmed", map[string]any{
			"player_id":  playerID,
			"payment_id": paymentID,
			"amount":     payment.GetAmount(),
			"new_total":  entity.AmountInCentsToString(total),
		})

		result = &usecase.ConfirmPaymentResult{
			PlayerID:   playerID,
			PlayerName: player.Name,
			NewTotal:   entity.AmountInCentsToString(total),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeletePayment removes a payment and recomputes the owner's total from the
// remaining confirmed set. Deleting never resurrects the dealer fee on a
// later payment: fee decisions are frozen at submission.
func (e *Engine) DeletePayment(ctx context.Context, playerID, paymentID string) (*usecase.DeletePaymentResult, error) {
	var result *usecase.DeletePaymentResult

	err := e.serializer.Run(ctx, playerID, func(ctx context.Context) error {
		player, err := e.players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}

		payment, err := e.payments.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.PlayerID != playerID {
			return errs.ErrPaymentNotFound
		}

		if err := e.payments.Delete(ctx, paymentID); err != nil {
			return err
		}

		total, err := e.recomputeLocked(ctx, playerID)
		if err != nil {
			return err
		}

		e.logger.Info("Payment deleted", map[string]any{
			"player_id":  playerID,
			"payment_id": paymentID,
			"amount":     payment.GetAmount(),
			"type":       string(payment.Type),
			"new_total":  entity.AmountInCentsToString(total),
		})

		result = &usecase.DeletePaymentResult{
			PlayerName: player.Name,
			Amount:     payment.GetAmount(),
			Type:       string(payment.Type),
			NewTotal:   entity.AmountInCentsToString(total),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
