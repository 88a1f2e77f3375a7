package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisProfileCache keeps display snapshots in redis in front of another ProfileDisplayStore.
// Only hits are cached; emails without a profile are looked up again next time.
type RedisProfileCache struct {
	next   ProfileDisplayStore
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisProfileCache wraps next with a redis read-through cache
func NewRedisProfileCache(next ProfileDisplayStore, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisProfileCache {
	return &RedisProfileCache{next: next, cache: cache, ttl: ttl, logger: logger}
}

func profileKey(email string) string {
	return fmt.Sprintf("profile:%s", email)
}

// GetDisplayByEmails serves cached snapshots and loads the misses from the wrapped store
func (c *RedisProfileCache) GetDisplayByEmails(ctx context.Context, emails []string) ([]models.ProfileDisplay, error) {
	if len(emails) == 0 {
		return []models.ProfileDisplay{}, nil
	}

	keys := make([]string, len(emails))
	for i, email := range emails {
		keys[i] = profileKey(email)
	}

	cached := make(map[string]models.ProfileDisplay, len(emails))
	vals, err := c.cache.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("profile cache read failed", zap.Error(err))
	}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var snap models.ProfileDisplay
		if uErr := json.Unmarshal([]byte(str), &snap); uErr == nil {
			cached[emails[i]] = snap
		}
	}

	missing := make([]string, 0, len(emails))
	for _, email := range emails {
		if _, ok := cached[email]; !ok {
			missing = append(missing, email)
		}
	}

	if len(missing) > 0 {
		loaded, err := c.next.GetDisplayByEmails(ctx, missing)
		if err != nil {
			return nil, err
		}
		pipe := c.cache.Pipeline()
		for _, snap := range loaded {
			cached[snap.Email] = snap
			if payload, err := json.Marshal(snap); err == nil {
				pipe.Set(ctx, profileKey(snap.Email), payload, c.ttl)
			}
		}
		if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
			c.logger.Warn("profile cache write failed", zap.Error(err))
		}
	}

	result := make([]models.ProfileDisplay, 0, len(cached))
	for _, email := range emails {
		if snap, ok := cached[email]; ok {
			result = append(result, snap)
		}
	}
	return result, nil
}

// Invalidate drops the cached snapshots of the given emails
func (c *RedisProfileCache) Invalidate(ctx context.Context, emails ...string) error {
	if len(emails) == 0 {
		return nil
	}
	keys := make([]string, len(emails))
	for i, email := range emails {
		keys[i] = profileKey(email)
	}
	return c.cache.Del(ctx, keys...).Err()
}
