package ledger

import (
	"context"
	"sync"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	coreport "github.com/mblud/poker-tracker-backend/internal/domain/port/core"
)

// PlayerSerializer provides sequential execution of ledger mutations per
// player. All operations that can change one player's total run on that
// player's single worker goroutine; operations for different players run
// independently. This is what upholds the first-payment-gets-the-fee and
// total-equals-sum-of-confirmed invariants under concurrent requests.
type PlayerSerializer struct {
	logger coreport.Logger

	// Player-keyed task queues for strict ordering
	playerQueues   sync.Map // map[string]chan *playerTask
	queueWaitGroup sync.WaitGroup
}

// playerTask represents a queued ledger mutation
type playerTask struct {
	ctx        context.Context
	run        func(ctx context.Context) error
	resultChan chan error
}

// NewPlayerSerializer creates a new per-player serializer
func NewPlayerSerializer(logger coreport.Logger) *PlayerSerializer {
	return &PlayerSerializer{
		logger:       logger,
		playerQueues: sync.Map{},
	}
}

// Run enqueues fn on the player's queue and waits for it to complete.
// Returns fn's error, or the context's error if it is canceled first.
func (s *PlayerSerializer) Run(ctx context.Context, playerID string, fn func(ctx context.Context) error) error {
	resultChan := make(chan error, 1)

	// Get or create queue for this player
	var queue chan *playerTask
	queueIface, loaded := s.playerQueues.LoadOrStore(playerID, make(chan *playerTask, 100))
	if queueCh, ok := queueIface.(chan *playerTask); ok {
		queue = queueCh
	} else {
		s.logger.Error("Failed to type assert queue channel", nil)
		return errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		s.logger.Debug("Starting ledger queue worker for player", map[string]any{
			"player_id": playerID,
		})
		s.queueWaitGroup.Add(1)
		go s.processPlayerTasks(playerID, queue)
	}

	task := &playerTask{
		ctx:        ctx,
		run:        fn,
		resultChan: resultChan,
	}

	select {
	case queue <- task:
	case <-ctx.Done():
		s.logger.Warn("Context canceled while enqueueing ledger task", map[string]any{
			"player_id": playerID,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-resultChan:
		return err
	case <-ctx.Done():
		s.logger.Warn("Context canceled while waiting for ledger task result", map[string]any{
			"player_id": playerID,
			"error":     ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// processPlayerTasks handles the worker goroutine for one player's queue
func (s *PlayerSerializer) processPlayerTasks(playerID string, queue chan *playerTask) {
	defer s.queueWaitGroup.Done()

	for task := range queue {
		task.resultChan <- task.run(task.ctx)
		close(task.resultChan)
	}

	s.logger.Debug("Ledger queue worker stopped", map[string]any{
		"player_id": playerID,
	})
}

// Shutdown stops all worker goroutines cleanly
func (s *PlayerSerializer) Shutdown() {
	s.logger.Info("Shutting down player serializer", nil)

	s.playerQueues.Range(func(playerID, queueIface interface{}) bool {
		if queue, ok := queueIface.(chan *playerTask); ok {
			close(queue)
		}
		return true
	})

	s.queueWaitGroup.Wait()
	s.logger.Info("Player serializer shut down successfully", nil)
}
