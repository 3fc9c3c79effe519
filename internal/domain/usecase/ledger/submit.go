package ledger

import (
	"context"
	"errors"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// decideDealerFee applies the fee eligibility rule: the fee attaches if and
// only if the player has no prior payment of any status or kind. The
// decision is made here, at submission time, inside the player's queue, and
// frozen into the payment forever.
func (e *Engine) decideDealerFee(ctx context.Context, playerID string) (bool, error) {
	priorCount, err := e.payments.CountByPlayer(ctx, playerID)
	if err != nil {
		return false, err
	}
	return priorCount == 0, nil
}

// SubmitBuyIn records a pending buy-in for an existing player. The payment
// starts pending regardless of caller input; the player's stored total does
// not move until the host confirms.
func (e *Engine) SubmitBuyIn(ctx context.Context, playerID, amount, method string) (*usecase.PlayerView, error) {
	var view *usecase.PlayerView

	err := e.serializer.Run(ctx, playerID, func(ctx context.Context) error {
		player, err := e.players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}

		feeApplied, err := e.decideDealerFee(ctx, playerID)
		if err != nil {
			return err
		}

		payment, err := entity.NewPayment(
			e.idGen.NewID(), playerID, amount, method, entity.TypeBuyIn, feeApplied, e.timeProvider)
		if err != nil {
			return err
		}

		if err := e.payments.Create(ctx, payment); err != nil {
			return err
		}

		e.logger.Info("Buy-in submitted", map[string]any{
			"player_id":   playerID,
			"payment_id":  payment.ID,
			"amount":      payment.GetAmount(),
			"method":      string(payment.Method),
			"fee_applied": feeApplied,
		})

		// The pending payment does not contribute yet; recomputing keeps the
		// stored total honest if it had drifted
		total, err := e.recomputeLocked(ctx, playerID)
		if err != nil {
			return err
		}
		player.SetTotal(total)

		view, err = e.playerView(ctx, player)
		return err
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// SubmitRebuy records a pending payment for a player named by display name.
// Unknown names auto-provision the player first; a player's first-ever
// payment is classified as a buy-in with the dealer fee, anything later is a
// rebuy without it. This is the one path where player creation and payment
// submission form a single request.
func (e *Engine) SubmitRebuy(ctx context.Context, playerName, amount, method string) (*usecase.RebuyResult, error) {
	player, isNewPlayer, err := e.resolveOrProvision(ctx, playerName)
	if err != nil {
		return nil, err
	}

	var result *usecase.RebuyResult

	err = e.serializer.Run(ctx, player.ID, func(ctx context.Context) error {
		isFirstBuyIn, err := e.decideDealerFee(ctx, player.ID)
		if err != nil {
			return err
		}

		txType := entity.TypeRebuy
		if isFirstBuyIn {
			txType = entity.TypeBuyIn
		}

		payment, err := entity.NewPayment(
			e.idGen.NewID(), player.ID, amount, method, txType, isFirstBuyIn, e.timeProvider)
		if err != nil {
			return err
		}

		if err := e.payments.Create(ctx, payment); err != nil {
			return err
		}

		e.logger.Info("Rebuy submitted", map[string]any{
			"player_id":     player.ID,
			"player_name":   player.Name,
			"payment_id":    payment.ID,
			"amount":        payment.GetAmount(),
			"method":        string(payment.Method),
			"type":          string(txType),
			"is_new_player": isNewPlayer,
		})

		result = &usecase.RebuyResult{
			PlayerID:         player.ID,
			PlayerName:       player.Name,
			IsNewPlayer:      isNewPlayer,
			IsFirstBuyIn:     isFirstBuyIn,
			DealerFeeApplied: isFirstBuyIn,
			AmountToPot:      entity.AmountInCentsToString(payment.PotContribution(e.dealerFeeCents)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// resolveOrProvision finds a player by case-insensitive name, creating them
// with a zero total when absent
func (e *Engine) resolveOrProvision(ctx context.Context, name string) (*entity.Player, bool, error) {
	e.provisionMu.Lock()
	defer e.provisionMu.Unlock()

	player, err := e.players.GetByName(ctx, name)
	if err == nil {
		return player, false, nil
	}
	if !errors.Is(err, errs.ErrPlayerNotFound) {
		return nil, false, err
	}

	player, err = entity.NewPlayer(e.idGen.NewID(), name, e.timeProvider)
	if err != nil {
		return nil, false, err
	}
	if err := e.players.Create(ctx, player); err != nil {
		return nil, false, err
	}

	e.logger.Info("Player auto-provisioned for rebuy", map[string]any{
		"player_id": player.ID,
		"name":      player.Name,
	})

	return player, true, nil
}
