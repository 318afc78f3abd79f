package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asm2526/schedule-manager-app/internal/logger"
	"github.com/asm2526/schedule-manager-app/internal/models"
)

// EventCacheRepository caches per-day event lists in Redis, keyed by
// (owner, date). The schedule service fills it on read misses and
// invalidates the touched day on every write.
type EventCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewEventCacheRepository creates a new cache repository with the given
// entry TTL.
func NewEventCacheRepository(client *redis.Client, expiration time.Duration) *EventCacheRepository {
	return &EventCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func dayKey(username, date string) string {
	return fmt.Sprintf("events_day:%s:%s", username, date)
}

// GetDay returns the cached event list for a day, or (nil, nil) on a
// cache miss.
func (r *EventCacheRepository) GetDay(ctx context.Context, username, date string) ([]models.EventDB, error) {
	key := dayKey(username, date)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var events []models.EventDB
	if err := json.Unmarshal([]byte(val), &events); err != nil {
		logger.Log.Warnw("dropping undecodable cache entry",
			"key", key,
			"error", err,
		)
		r.client.Del(ctx, key)
		return nil, nil
	}

	logger.Log.Infow("cache read",
		"key", key,
		"result", len(events),
	)
	return events, nil
}

// SetDay caches the event list for a day with the configured TTL.
func (r *EventCacheRepository) SetDay(ctx context.Context, username, date string, events []models.EventDB) error {
	key := dayKey(username, date)

	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", key,
		"result", len(events),
		"error", err,
	)
	return err
}

// InvalidateDay drops the cached list for a day after a mutation.
func (r *EventCacheRepository) InvalidateDay(ctx context.Context, username, date string) error {
	key := dayKey(username, date)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache invalidate",
		"key", key,
		"error", err,
	)
	return err
}
