package personalizationinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/conecta/personalization"
	"github.com/go-redis/redis/v8"
)

// RedisEventQueue implements EventQueue using Redis
type RedisEventQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisEventQueue creates a new Redis-based behavior event queue
func NewRedisEventQueue(client *redis.Client, queueName string) personalization.EventQueue {
	return &RedisEventQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds an event to the queue
func (q *RedisEventQueue) Enqueue(ctx context.Context, event personalization.BehaviorEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for user %s: %w", event.UserID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue event for user %s: %w", event.UserID, err)
	}

	return nil
}

// EnqueueDelayed schedules an event for later processing (for retries)
func (q *RedisEventQueue) EnqueueDelayed(ctx context.Context, event personalization.BehaviorEvent, delay time.Duration) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal delayed event for user %s: %w", event.UserID, err)
	}

	score := float64(time.Now().Add(delay).Unix())
	delayedQueue := q.queueName + ":delayed"

	if err := q.client.ZAdd(ctx, delayedQueue, &redis.Z{
		Score:  score,
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delayed event for user %s: %w", event.UserID, err)
	}

	return nil
}

// Dequeue gets an event from the queue (blocking with timeout)
func (q *RedisEventQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when timeout occurs
		if err == redis.Nil {
			return nil, nil // No events available
		}
		return nil, fmt.Errorf("dequeue event: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return []byte(result[1]), nil
}

// MoveDelayedToReady moves delayed events that are due to the main queue
func (q *RedisEventQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	delayedQueue := q.queueName + ":delayed"
	now := float64(time.Now().Unix())

	// Get events ready to process
	events, err := q.client.ZRangeByScore(ctx, delayedQueue, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()

	if err != nil {
		return 0, fmt.Errorf("get delayed events: %w", err)
	}

	if len(events) == 0 {
		return 0, nil
	}

	// Use pipeline for atomic operations
	pipe := q.client.Pipeline()
	for _, event := range events {
		pipe.LPush(ctx, q.queueName, event)
		pipe.ZRem(ctx, delayedQueue, event)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move delayed events to ready: %w", err)
	}

	return len(events), nil
}

// Size returns the number of events in the queue
func (q *RedisEventQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// DelayedSize returns the number of events parked on the delayed queue
func (q *RedisEventQueue) DelayedSize(ctx context.Context) (int64, error) {
	size, err := q.client.ZCard(ctx, q.queueName+":delayed").Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed queue size: %w", err)
	}
	return size, nil
}

// Clear removes all events from the queue (for testing/maintenance)
func (q *RedisEventQueue) Clear(ctx context.Context) error {
	pipe := q.client.Pipeline()
	pipe.Del(ctx, q.queueName)
	pipe.Del(ctx, q.queueName+":delayed")

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("clear queue: %w", err)
	}

	return nil
}
