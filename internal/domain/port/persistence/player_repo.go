package persistence

import (
	"context"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
)

// PlayerRepository defines storage operations for players. Implementations
// must surface ErrPlayerNotFound for unknown ids and reflect the latest
// committed writes on every read.
type PlayerRepository interface {
	// Create inserts a new player
	Create(ctx context.Context, player *entity.Player) error

	// GetByID retrieves a player by id, failing with ErrPlayerNotFound if absent
	GetByID(ctx context.Context, id string) (*entity.Player, error)

	// GetByName retrieves a player by display name, matched case-insensitively;
	// fails with ErrPlayerNotFound if no player matches
	GetByName(ctx context.Context, name string) (*entity.Player, error)

	// List returns all players ordered by creation time
	List(ctx context.Context) ([]*entity.Player, error)

	// UpdateTotal persists a recomputed derived total for the player
	UpdateTotal(ctx context.Context, id string, totalCents int64) error

	// Delete removes the player row only; payment and cash-out cascades are
	// the caller's responsibility so the whole cascade runs in one place
	Delete(ctx context.Context, id string) error

	// Count returns the number of players
	Count(ctx context.Context) (int64, error)
}
