package ledger

import (
	"context"
	"sync"
	"testing"

	coremocks "github.com/mblud/poker-tracker-backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSerializer(t *testing.T) *PlayerSerializer {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	s := NewPlayerSerializer(logger)
	t.Cleanup(s.Shutdown)
	return s
}

func TestPlayerSerializerRunsTasksSequentially(t *testing.T) {
	ctx := context.Background()
	s := newTestSerializer(t)

	// A plain int is safe if and only if tasks never overlap
	const tasks = 200
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Run(ctx, "player-1", func(ctx context.Context) error {
				counter++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, tasks, counter)
}

func TestPlayerSerializerIsolatesPlayers(t *testing.T) {
	ctx := context.Background()
	s := newTestSerializer(t)

	// A task on one player's queue must not block another player's queue
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = s.Run(ctx, "slow-player", func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, "other-player", func(ctx context.Context) error {
			return nil
		})
	}()

	require.NoError(t, <-done)
	close(release)
}

func TestPlayerSerializerReturnsTaskError(t *testing.T) {
	ctx := context.Background()
	s := newTestSerializer(t)

	wantErr := assert.AnError
	err := s.Run(ctx, "player-1", func(ctx context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestPlayerSerializerHonorsContextCancellation(t *testing.T) {
	s := newTestSerializer(t)

	release := make(chan struct{})
	started := make(chan struct{})
	defer close(release)

	go func() {
		_ = s.Run(context.Background(), "player-1", func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// The waiting caller gives up when its context is canceled
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, "player-1", func(ctx context.Context) error {
			return nil
		})
	}()
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}
