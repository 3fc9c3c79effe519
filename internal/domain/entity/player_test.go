package entity

import (
	"testing"
	"time"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)

	t.Run("Creates player with zero total", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		player, err := NewPlayer("player-1", "Alice", tp)
		require.NoError(t, err)

		assert.Equal(t, "player-1", player.ID)
		assert.Equal(t, "Alice", player.Name)
		assert.Equal(t, int64(0), player.Total())
		assert.Equal(t, "0.00", player.GetTotal())
		assert.Equal(t, fixedTime, player.CreatedAt)
	})

	t.Run("Trims surrounding whitespace from the name", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		player, err := NewPlayer("player-1", "  Bob  ", tp)
		require.NoError(t, err)
		assert.Equal(t, "Bob", player.Name)
	})

	t.Run("Rejects empty id", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		_, err := NewPlayer("", "Alice", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidPlayerID)
	})

	t.Run("Rejects blank name", func(t *testing.T) {
		tp := fixedTimeProvider(t, fixedTime)

		_, err := NewPlayer("player-1", "   ", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidPlayerName)
	})
}

func TestPlayerSetTotal(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(t, fixedTime)

	player, err := NewPlayer("player-1", "Alice", tp)
	require.NoError(t, err)

	player.SetTotal(6500)
	assert.Equal(t, int64(6500), player.Total())
	assert.Equal(t, "65.00", player.GetTotal())
}

func TestPlayerNameEquals(t *testing.T) {
	fixedTime := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	tp := fixedTimeProvider(t, fixedTime)

	player, err := NewPlayer("player-1", "Alice", tp)
	require.NoError(t, err)

	assert.True(t, player.NameEquals("Alice"))
	assert.True(t, player.NameEquals("alice"))
	assert.True(t, player.NameEquals("  ALICE "))
	assert.False(t, player.NameEquals("Alicia"))
	assert.False(t, player.NameEquals(""))
}
