package ledger

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
)

// Recompute derives the player's total from the current confirmed payment
// and cash-out sets and persists it. It is idempotent: re-running it for an
// unchanged set always yields the same total, which is what makes it safe to
// use both after mutations and as drift repair. Runs on the player's queue.
func (e *Engine) Recompute(ctx context.Context, playerID string) (int64, error) {
	var total int64
	err := e.serializer.Run(ctx, playerID, func(ctx context.Context) error {
		var innerErr error
		total, innerErr = e.recomputeLocked(ctx, playerID)
		return innerErr
	})
	return total, err
}

// recomputeLocked derives the player's total and persists it. Callers must
// already hold the player's queue.
func (e *Engine) recomputeLocked(ctx context.Context, playerID string) (int64, error) {
	total, err := e.deriveTotal(ctx, playerID)
	if err != nil {
		return 0, err
	}

	if err := e.players.UpdateTotal(ctx, playerID, total); err != nil {
		return 0, err
	}

	e.logger.Debug("Recomputed player total", map[string]any{
		"player_id": playerID,
		"total":     entity.AmountInCentsToString(total),
	})

	return total, nil
}

// deriveTotal computes the player's total from the confirmed payment and
// cash-out sets under the active policy without writing anything. The
// reconciliation report uses it to cross-check stored totals.
func (e *Engine) deriveTotal(ctx context.Context, playerID string) (int64, error) {
	confirmed, err := e.payments.ListByPlayerAndStatus(ctx, playerID, entity.StatusConfirmed)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, payment := range confirmed {
		total += payment.PotContribution(e.dealerFeeCents)
	}

	confirmedCashOuts, err := e.cashOuts.ListConfirmedByPlayer(ctx, playerID)
	if err != nil {
		return 0, err
	}

	switch e.policy {
	case PolicyPlayer:
		for _, cashOut := range confirmedCashOuts {
			total -= cashOut.AmountCents
		}
		if total < 0 {
			// Admission control caps requests at the player's total, so this
			// only happens when a confirmed payment was deleted afterwards
			e.logger.Warn("Recomputed total went negative, clamping to zero", map[string]any{
				"player_id": playerID,
				"total":     entity.AmountInCentsToString(total),
			})
			total = 0
		}
	default: // PolicyTable
		if len(confirmedCashOuts) > 0 {
			// A confirmed cash-out takes the player out of the game entirely
			total = 0
		}
	}

	return total, nil
}
