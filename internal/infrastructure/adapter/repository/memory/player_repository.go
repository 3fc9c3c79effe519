package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/mblud/poker-tracker-backend/internal/domain/entity"
	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
)

// PlayerRepository is the in-memory player store
type PlayerRepository struct {
	store *Store
}

// Create inserts a new player
func (r *PlayerRepository) Create(ctx context.Context, player *entity.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.players[player.ID]; exists {
		return errs.ErrDuplicatePlayer
	}
	r.store.players[player.ID] = copyPlayer(player)
	return nil
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	player, exists := r.store.players[id]
	if !exists {
		return nil, errs.ErrPlayerNotFound
	}
	return copyPlayer(player), nil
}

// GetByName retrieves a player by display name, ignoring case and
// surrounding whitespace
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*entity.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	trimmed := strings.TrimSpace(name)
	for _, player := range r.store.players {
		if strings.EqualFold(player.Name, trimmed) {
			return copyPlayer(player), nil
		}
	}
	return nil, errs.ErrPlayerNotFound
}

// List returns all players ordered by creation time
func (r *PlayerRepository) List(ctx context.Context) ([]*entity.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	players := make([]*entity.Player, 0, len(r.store.players))
	for _, player := range r.store.players {
		players = append(players, copyPlayer(player))
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].CreatedAt.Before(players[j].CreatedAt)
	})
	return players, nil
}

// UpdateTotal persists a player's derived total
func (r *PlayerRepository) UpdateTotal(ctx context.Context, id string, totalCents int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	player, exists := r.store.players[id]
	if !exists {
		return errs.ErrPlayerNotFound
	}
	player.SetTotal(totalCents)
	return nil
}

// Delete removes the player row
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.players[id]; !exists {
		return errs.ErrPlayerNotFound
	}
	delete(r.store.players, id)
	return nil
}

// Count returns the number of players
func (r *PlayerRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.players)), nil
}
