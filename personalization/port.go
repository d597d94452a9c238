package personalization

import (
	"context"
	"time"

	"github.com/Abraxas-365/conecta/pkg/kernel"
)

// ProfileStore persists the long-lived personalization state of a user:
// interest profile, frequency map and recent searches
type ProfileStore interface {
	// GetInterests loads the interest profile; an empty profile is returned
	// when the user has none yet
	GetInterests(ctx context.Context, userID kernel.UserID) (*InterestProfile, error)

	// SaveInterests stores the interest profile
	SaveInterests(ctx context.Context, userID kernel.UserID, profile *InterestProfile) error

	// GetFrequencies loads the page-time frequency map
	GetFrequencies(ctx context.Context, userID kernel.UserID) (FrequencyMap, error)

	// SaveFrequencies stores the frequency map
	SaveFrequencies(ctx context.Context, userID kernel.UserID, frequencies FrequencyMap) error

	// GetSearchHistory returns the recent searches, most recent first
	GetSearchHistory(ctx context.Context, userID kernel.UserID) ([]string, error)

	// PushSearch records a search term, trimming history to the limit
	PushSearch(ctx context.Context, userID kernel.UserID, term string) error

	// Reset drops all personalization state of a user
	Reset(ctx context.Context, userID kernel.UserID) error
}

// EventQueue transports behavior events from the API to the worker pool
type EventQueue interface {
	// Enqueue adds an event to the queue
	Enqueue(ctx context.Context, event BehaviorEvent) error

	// EnqueueDelayed schedules an event for later processing (for retries)
	EnqueueDelayed(ctx context.Context, event BehaviorEvent, delay time.Duration) error

	// Dequeue gets a raw event from the queue (blocking with timeout);
	// returns nil bytes when the timeout elapses with no event
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// MoveDelayedToReady moves due delayed events to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// Size returns the number of queued events
	Size(ctx context.Context) (int64, error)

	// DelayedSize returns the number of events waiting on the delayed queue
	DelayedSize(ctx context.Context) (int64, error)

	// Clear removes all events (testing/maintenance)
	Clear(ctx context.Context) error
}
