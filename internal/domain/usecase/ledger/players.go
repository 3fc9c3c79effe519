package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/domain/port/usecase"
)

// CreatePlayer creates a player with a zero total. Display names are unique
// case-insensitively because rebuys resolve players by name.
func (e *Engine) CreatePlayer(ctx context.Context, name string) (*usecase.PlayerView, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrInvalidPlayerName
	}

	e.provisionMu.Lock()
	defer e.provisionMu.Unlock()

	_, err := e.players.GetByName(ctx, name)
	if err == nil {
		return nil, errs.ErrDuplicatePlayer
	}
	if !errors.Is(err, errs.ErrPlayerNotFound) {
		return nil, err
	}

	player, err := entity.NewPlayer(e.idGen.NewID(), name, e.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := e.players.Create(ctx, player); err != nil {
		e.logger.Error("Failed to create player", map[string]any{
			"name":  name,
			"error": err.Error(),
		})
		return nil, err
	}

	e.logger.Info("Player created", map[string]any{
		"player_id": player.ID,
		"name":      player.Name,
	})

	return &usecase.PlayerView{
		ID:        player.ID,
		Name:      player.Name,
		Total:     player.GetTotal(),
		CreatedAt: player.CreatedAt,
		Payments:  []usecase.PaymentView{},
	}, nil
}

// ListPlayers returns every player with a freshly recomputed total and full
// payment history. Recomputing here repairs any stored total that drifted,
// through the same explicit path every mutation uses.
func (e *Engine) ListPlayers(ctx context.Context) ([]usecase.PlayerView, error) {
	players, err := e.players.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.PlayerView, 0, len(players))
	for _, player := range players {
		total, err := e.Recompute(ctx, player.ID)
		if err != nil {
			// Player may have been deleted between the list and the recompute
			if errors.Is(err, errs.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		player.SetTotal(total)

		view, err := e.playerView(ctx, player)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

// DeletePlayer removes the player and cascades to all of their payments and
// cash-outs. Runs on the player's queue so no mutation interleaves with the
// cascade.
func (e *Engine) DeletePlayer(ctx context.Context, playerID string) (*usecase.DeletePlayerResult, error) {
	var result *usecase.DeletePlayerResult

	err := e.serializer.Run(ctx, playerID, func(ctx context.Context) error {
		player, err := e.players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}

		transactionCount, err := e.payments.CountByPlayer(ctx, playerID)
		if err != nil {
			return err
		}

		if err := e.payments.DeleteByPlayer(ctx, playerID); err != nil {
			return err
		}
		if err := e.cashOuts.DeleteByPlayer(ctx, playerID); err != nil {
			return err
		}
		if err := e.players.Delete(ctx, playerID); err != nil {
			return err
		}

		e.logger.Info("Player deleted", map[string]any{
			"player_id":         playerID,
			"name":              player.Name,
			"removed_total":     player.GetTotal(),
			"transaction_count": transactionCount,
		})

		result = &usecase.DeletePlayerResult{
			PlayerName:       player.Name,
			RemovedTotal:     player.GetTotal(),
			TransactionCount: transactionCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
