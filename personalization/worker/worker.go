package worker

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sync"
	"time"

	"github.com/Abraxas-365/conecta/personalization"
	"github.com/Abraxas-365/conecta/personalization/personalizationsrv"
	"github.com/Abraxas-365/conecta/pkg/logx"
)

// maxApplyAttempts bounds how often a failed event is retried before it
// is dropped
const maxApplyAttempts = 3

// PersonalizationWorker consumes behavior events and folds them into user
// profiles. Events are dispatched to a fixed worker goroutine chosen by a
// hash of the user ID, so each user's profile updates are applied by a
// single writer even with many workers running.
type PersonalizationWorker struct {
	service        *personalizationsrv.PersonalizationService
	queue          personalization.EventQueue
	workers        int
	dequeueTimeout time.Duration
	sweepTick      time.Duration

	channels []chan personalization.BehaviorEvent
	wg       sync.WaitGroup
}

// NewPersonalizationWorker creates a worker pool of the given size
func NewPersonalizationWorker(
	service *personalizationsrv.PersonalizationService,
	queue personalization.EventQueue,
	workers int,
	dequeueTimeout time.Duration,
	sweepTick time.Duration,
) *PersonalizationWorker {
	if workers < 1 {
		workers = 1
	}

	return &PersonalizationWorker{
		service:        service,
		queue:          queue,
		workers:        workers,
		dequeueTimeout: dequeueTimeout,
		sweepTick:      sweepTick,
	}
}

// Start launches the dispatcher, the delayed-event mover and the worker
// goroutines. It returns immediately; call Wait after cancelling the
// context to drain.
func (w *PersonalizationWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d personalization workers", w.workers)

	w.channels = make([]chan personalization.BehaviorEvent, w.workers)
	for i := range w.channels {
		w.channels[i] = make(chan personalization.BehaviorEvent, 64)
	}

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.applyEvents(ctx, i)
	}

	go w.moveDelayedEvents(ctx)
	go w.dispatch(ctx)
}

// Wait blocks until all workers have drained after context cancellation
func (w *PersonalizationWorker) Wait() {
	w.wg.Wait()
}

// dispatch pulls events off the queue and routes each to the worker that
// owns its user
func (w *PersonalizationWorker) dispatch(ctx context.Context) {
	defer func() {
		for _, ch := range w.channels {
			close(ch)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logx.Info("Personalization dispatcher stopping")
			return
		default:
			data, err := w.queue.Dequeue(ctx, w.dequeueTimeout)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logx.Errorf("Dispatcher dequeue error: %v", err)
				continue
			}

			// Timeout with no events available
			if len(data) == 0 {
				continue
			}

			var event personalization.BehaviorEvent
			if err := json.Unmarshal(data, &event); err != nil {
				logx.Errorf("Dispatcher unmarshal error: %v (data: %s)", err, string(data))
				continue
			}

			select {
			case w.channels[w.ownerOf(event.UserID.String())] <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

// applyEvents is one worker goroutine; it owns a partition of the user
// space and applies events serially
func (w *PersonalizationWorker) applyEvents(ctx context.Context, workerID int) {
	defer w.wg.Done()

	logx.Infof("Personalization worker %d started", workerID)

	for event := range w.channels[workerID] {
		logx.Debugf("Worker %d applying %s event for user %s", workerID, event.Type, event.UserID)
		if err := w.service.ApplyEvent(ctx, event); err != nil {
			w.retryLater(ctx, event, err)
		}
	}

	logx.Infof("Personalization worker %d stopping", workerID)
}

// retryLater parks a failed event on the delayed queue with exponential
// backoff; once the attempt budget is spent the event is dropped.
func (w *PersonalizationWorker) retryLater(ctx context.Context, event personalization.BehaviorEvent, cause error) {
	event.Attempts++
	if event.Attempts >= maxApplyAttempts {
		logx.Errorf("Dropping event for user %s after %d attempts: %v", event.UserID, event.Attempts, cause)
		return
	}

	retryDelay := time.Duration(1<<uint(event.Attempts)) * time.Second
	logx.Warnf("Event failed, will retry: User=%s, Type=%s, Attempt=%d/%d, NextRetry=%v, Error=%s",
		event.UserID, event.Type, event.Attempts, maxApplyAttempts, retryDelay, cause.Error())

	if err := w.queue.EnqueueDelayed(ctx, event, retryDelay); err != nil {
		logx.Errorf("Failed to enqueue event for retry: %v", err)
	}
}

// moveDelayedEvents periodically promotes due delayed events
func (w *PersonalizationWorker) moveDelayedEvents(ctx context.Context) {
	ticker := time.NewTicker(w.sweepTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logx.Errorf("Failed to move delayed events: %v", err)
				}
			} else if count > 0 {
				logx.Infof("Moved %d delayed events to ready queue", count)
			}
		}
	}
}

// ownerOf maps a user ID to its worker index
func (w *PersonalizationWorker) ownerOf(userID string) int {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return int(h.Sum32() % uint32(w.workers))
}
