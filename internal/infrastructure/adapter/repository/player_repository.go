package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/model"
)

// PlayerRepository implements the PlayerRepository interface using GORM
type PlayerRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPlayerRepository creates a new PlayerRepository instance
func NewPlayerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PlayerRepository {
	return &PlayerRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// playerModelToEntity converts a player model to an entity
func (r *PlayerRepository) playerModelToEntity(playerModel *model.Player) (*entity.Player, error) {
	player, err := entity.NewPlayer(playerModel.ID, playerModel.Name, r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create player entity", map[string]any{
			"player_id": playerModel.ID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create player entity: %s", errs.ErrInternalServer, err.Error())
	}

	player.SetTotal(playerModel.TotalCents)
	player.CreatedAt = playerModel.CreatedAt

	return player, nil
}

// handleDatabaseError standardizes database error handling
func (r *PlayerRepository) handleDatabaseError(operation string, err error, playerID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Player not found", map[string]any{
			"player_id": playerID,
		})
		return errs.ErrPlayerNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"player_id": playerID,
		"error":     err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicatePlayer
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create creates a new player
func (r *PlayerRepository) Create(ctx context.Context, player *entity.Player) error {
	r.logger.Debug("Creating new player", map[string]any{
		"player_id": player.ID,
		"name":      player.Name,
	})

	playerModel := model.Player{
		ID:         player.ID,
		Name:       player.Name,
		TotalCents: player.Total(),
		CreatedAt:  player.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&playerModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating player", result.Error, player.ID)
	}

	return nil
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	var playerModel model.Player
	result := r.db.WithContext(ctx).First(&playerModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting player", result.Error, id)
	}

	return r.playerModelToEntity(&playerModel)
}

// GetByName retrieves a player by display name, ignoring case and
// surrounding whitespace
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*entity.Player, error) {
	var playerModel model.Player
	result := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&playerModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting player by name", result.Error, name)
	}

	return r.playerModelToEntity(&playerModel)
}

// List returns all players ordered by creation time
func (r *PlayerRepository) List(ctx context.Context) ([]*entity.Player, error) {
	var playerModels []model.Player
	result := r.db.WithContext(ctx).Order("created_at asc").Find(&playerModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing players", result.Error, "")
	}

	players := make([]*entity.Player, 0, len(playerModels))
	for i := range playerModels {
		player, err := r.playerModelToEntity(&playerModels[i])
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

// UpdateTotal persists a player's derived total
func (r *PlayerRepository) UpdateTotal(ctx context.Context, id string, totalCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.Player{}).
		Where("id = ?", id).
		Update("total_cents", totalCents)
	if result.Error != nil {
		return r.handleDatabaseError("updating player total", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Player not found during total update", map[string]any{
			"player_id": id,
		})
		return errs.ErrPlayerNotFound
	}

	return nil
}

// Delete removes the player row. The caller cascades payments and cash-outs
// before calling this.
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Player{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting player", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPlayerNotFound
	}

	return nil
}

// Count returns the number of players
func (r *PlayerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Player{}).Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting players", result.Error, "")
	}
	return count, nil
}
