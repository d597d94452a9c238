package personalizationinfra

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Abraxas-365/conecta/personalization"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) personalization.EventQueue {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisEventQueue(client, "personalization:events")
}

func TestRedisEventQueue_EnqueueDequeue(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	event := personalization.BehaviorEvent{
		UserID:     "user-1",
		Type:       personalization.EventTypeSearch,
		Term:       "golang",
		OccurredAt: time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, queue.Enqueue(ctx, event))

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	data, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, data)

	var decoded personalization.BehaviorEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.UserID, decoded.UserID)
	assert.Equal(t, event.Type, decoded.Type)
	assert.Equal(t, event.Term, decoded.Term)
}

func TestRedisEventQueue_FIFOOrder(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	for _, term := range []string{"first", "second", "third"} {
		require.NoError(t, queue.Enqueue(ctx, personalization.BehaviorEvent{
			UserID: "user-1",
			Type:   personalization.EventTypeSearch,
			Term:   term,
		}))
	}

	for _, expected := range []string{"first", "second", "third"} {
		data, err := queue.Dequeue(ctx, time.Second)
		require.NoError(t, err)

		var event personalization.BehaviorEvent
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, expected, event.Term)
	}
}

func TestRedisEventQueue_MoveDelayedToReady(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	event := personalization.BehaviorEvent{
		UserID:  "user-1",
		Type:    personalization.EventTypePageView,
		Page:    "jobs",
		Seconds: 30,
	}

	// Already due: scheduled in the past
	require.NoError(t, queue.EnqueueDelayed(ctx, event, -time.Minute))

	moved, err := queue.MoveDelayedToReady(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)
}

func TestRedisEventQueue_DelayedNotDueStaysPut(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	event := personalization.BehaviorEvent{
		UserID: "user-1",
		Type:   personalization.EventTypeSearch,
		Term:   "golang",
	}

	require.NoError(t, queue.EnqueueDelayed(ctx, event, time.Hour))

	moved, err := queue.MoveDelayedToReady(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, moved)

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)

	delayed, err := queue.DelayedSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), delayed)
}

func TestRedisEventQueue_Clear(t *testing.T) {
	queue := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, personalization.BehaviorEvent{
		UserID: "user-1",
		Type:   personalization.EventTypeSearch,
		Term:   "golang",
	}))
	require.NoError(t, queue.Clear(ctx))

	size, err := queue.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}
