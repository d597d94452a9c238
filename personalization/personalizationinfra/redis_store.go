package personalizationinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/conecta/personalization"
	"github.com/Abraxas-365/conecta/pkg/kernel"
	"github.com/go-redis/redis/v8"
)

const (
	interestsKeyPrefix   = "personalization:interests:"
	frequenciesKeyPrefix = "personalization:frequencies:"
	searchesKeyPrefix    = "personalization:searches:"
)

// RedisProfileStore implements ProfileStore on Redis. State is stored in
// the legacy JSON shapes ([{"term","weight"}] for interests, {"key":
// seconds} for frequencies) so existing data keeps loading. Every write
// refreshes a sliding TTL, which is the retention policy for the
// otherwise unbounded frequency map.
type RedisProfileStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProfileStore creates a Redis-backed profile store
func NewRedisProfileStore(client *redis.Client, ttl time.Duration) personalization.ProfileStore {
	return &RedisProfileStore{
		client: client,
		ttl:    ttl,
	}
}

// GetInterests loads the interest profile; missing key means empty profile
func (s *RedisProfileStore) GetInterests(ctx context.Context, userID kernel.UserID) (*personalization.InterestProfile, error) {
	data, err := s.client.Get(ctx, interestsKeyPrefix+userID.String()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return personalization.NewInterestProfile(), nil
		}
		return nil, fmt.Errorf("get interests for user %s: %w", userID, err)
	}

	var interests []personalization.Interest
	if err := json.Unmarshal(data, &interests); err != nil {
		return nil, fmt.Errorf("unmarshal interests for user %s: %w", userID, err)
	}

	return personalization.NewInterestProfile(interests...), nil
}

// SaveInterests stores the profile as a [{"term","weight"}] JSON array
func (s *RedisProfileStore) SaveInterests(ctx context.Context, userID kernel.UserID, profile *personalization.InterestProfile) error {
	data, err := json.Marshal(profile.Interests())
	if err != nil {
		return fmt.Errorf("marshal interests for user %s: %w", userID, err)
	}

	if err := s.client.Set(ctx, interestsKeyPrefix+userID.String(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save interests for user %s: %w", userID, err)
	}

	return nil
}

// GetFrequencies loads the frequency map; missing key means empty map
func (s *RedisProfileStore) GetFrequencies(ctx context.Context, userID kernel.UserID) (personalization.FrequencyMap, error) {
	data, err := s.client.Get(ctx, frequenciesKeyPrefix+userID.String()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return personalization.FrequencyMap{}, nil
		}
		return nil, fmt.Errorf("get frequencies for user %s: %w", userID, err)
	}

	var frequencies personalization.FrequencyMap
	if err := json.Unmarshal(data, &frequencies); err != nil {
		return nil, fmt.Errorf("unmarshal frequencies for user %s: %w", userID, err)
	}

	return frequencies, nil
}

// SaveFrequencies stores the map as a {"key": seconds} JSON object
func (s *RedisProfileStore) SaveFrequencies(ctx context.Context, userID kernel.UserID, frequencies personalization.FrequencyMap) error {
	data, err := json.Marshal(frequencies)
	if err != nil {
		return fmt.Errorf("marshal frequencies for user %s: %w", userID, err)
	}

	if err := s.client.Set(ctx, frequenciesKeyPrefix+userID.String(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save frequencies for user %s: %w", userID, err)
	}

	return nil
}

// GetSearchHistory returns recent searches, most recent first
func (s *RedisProfileStore) GetSearchHistory(ctx context.Context, userID kernel.UserID) ([]string, error) {
	history, err := s.client.LRange(ctx, searchesKeyPrefix+userID.String(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("get search history for user %s: %w", userID, err)
	}
	return history, nil
}

// PushSearch prepends a search term and trims the list to the limit
func (s *RedisProfileStore) PushSearch(ctx context.Context, userID kernel.UserID, term string) error {
	key := searchesKeyPrefix + userID.String()

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, key, term)
	pipe.LTrim(ctx, key, 0, personalization.SearchHistoryLimit-1)
	pipe.Expire(ctx, key, s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push search for user %s: %w", userID, err)
	}

	return nil
}

// Reset drops all personalization state of a user
func (s *RedisProfileStore) Reset(ctx context.Context, userID kernel.UserID) error {
	keys := []string{
		interestsKeyPrefix + userID.String(),
		frequenciesKeyPrefix + userID.String(),
		searchesKeyPrefix + userID.String(),
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("reset personalization for user %s: %w", userID, err)
	}

	return nil
}
