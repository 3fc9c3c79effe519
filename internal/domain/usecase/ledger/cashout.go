package ledger

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// availableForCashOut computes the admission ceiling for a cash-out request
// under the configured policy: the player's own recomputed total, or the
// global pot summed across all players.
func (e *Engine) availableForCashOut(ctx context.Context, playerTotal int64) (int64, error) {
	if e.policy == PolicyPlayer {
		return playerTotal, nil
	}

	players, err := e.players.List(ctx)
	if err != nil {
		return 0, err
	}

	var pot int64
	for _, player := range players {
		pot += player.Total()
	}
	return pot, nil
}

// RequestCashOut records an unconfirmed cash-out for the player after
// admission control. A rejected request leaves every total untouched.
func (e *Engine) RequestCashOut(ctx context.Context, playerID, amount, reason string) (*usecase.CashOutView, error) {
	var view *usecase.CashOutView

	err := e.serializer.Run(ctx, playerID, func(ctx context.Context) error {
		if _, err := e.players.GetByID(ctx, playerID); err != nil {
			return err
		}

		amountCents, err := entity.ValidatePositiveAmount(amount)
		if err != nil {
			return err
		}

		// Recompute first so admission control never judges against a stale
		// stored total
		playerTotal, err := e.recomputeLocked(ctx, playerID)
		if err != nil {
			return err
		}

		available, err := e.availableForCashOut(ctx, playerTotal)
		if err != nil {
			return err
		}

		if amountCents > available {
			rejection := &errs.CashOutError{
				PlayerID:  playerID,
				Amount:    entity.AmountInCentsToString(amountCents),
				Available: entity.AmountInCentsToString(available),
				Err:       errs.ErrCashOutExceedsPot,
			}
			e.logger.Warn("Cash out request rejected", rejection.LogFields())
			return rejection
		}

		cashOut, err := entity.NewCashOut(e.idGen.NewID(), playerID, amount, reason, e.timeProvider)
		if err != nil {
			return err
		}

		if err := e.cashOuts.Create(ctx, cashOut); err != nil {
			return err
		}

		e.logger.Info("Cash out requested", map[string]any{
			"player_id":   playerID,
			"cash_out_id": cashOut.ID,
			"amount":      cashOut.GetAmount(),
			"policy":      string(e.policy),
		})

		v := e.cashOutView(ctx, cashOut)
		view = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// ConfirmCashOut irreversibly confirms a cash-out and settles the player's
// total per the configured policy, exactly once. Confirming twice fails with
// ErrAlreadyConfirmed.
func (e *Engine) ConfirmCashOut(ctx context.Context, cashOutID string) (*usecase.ConfirmCashOutResult, error) {
	// Resolve the owning player before entering their queue
	cashOut, err := e.cashOuts.GetByID(ctx, cashOutID)
	if err != nil {
		return nil, err
	}

	var result *usecase.ConfirmCashOutResult

	err = e.serializer.Run(ctx, cashOut.PlayerID, func(ctx context.Context) error {
		// Re-read inside the queue: another request may have confirmed it
		// while we were waiting
		cashOut, err := e.cashOuts.GetByID(ctx, cashOutID)
		if err != nil {
			return err
		}

		player, err := e.players.GetByID(ctx, cashOut.PlayerID)
		if err != nil {
			return err
		}

		oldTotal, err := e.recomputeLocked(ctx, player.ID)
		if err != nil {
			return err
		}

		if err := cashOut.Confirm(); err != nil {
			return err
		}
		if err := e.cashOuts.SetConfirmed(ctx, cashOutID); err != nil {
			return err
		}

		newTotal, err := e.recomputeLocked(ctx, player.ID)
		if err != nil {
			return err
		}

		e.logger.Info("Cash out confirmed", map[string]any{
			"player_id":   player.ID,
			"player_name": player.Name,
			"cash_out_id": cashOutID,
			"amount":      cashOut.GetAmount(),
			"old_total":   entity.AmountInCentsToString(oldTotal),
			"new_total":   entity.AmountInCentsToString(newTotal),
			"policy":      string(e.policy),
		})

		result = &usecase.ConfirmCashOutResult{
			PlayerID:       player.ID,
			PlayerName:     player.Name,
			Amount:         cashOut.GetAmount(),
			OldPlayerTotal: entity.AmountInCentsToString(oldTotal),
			NewPlayerTotal: entity.AmountInCentsToString(newTotal),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
