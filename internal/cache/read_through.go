package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"showcase/internal/domain"
	"showcase/internal/logger"

	"go.uber.org/zap"
)

// GetOrLoad returns the JSON value cached under key, or calls load and caches its result
// for ttl. Cache failures are logged and fall through to load; a nil cache always loads.
func GetOrLoad[T any](ctx context.Context, c domain.Cache, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	if c != nil {
		cached, err := c.Get(ctx, key)
		switch {
		case err == nil:
			var value T
			jsonErr := json.Unmarshal([]byte(cached), &value)
			if jsonErr == nil {
				return value, nil
			}
			logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(jsonErr))
		case !errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if c != nil {
		encoded, jsonErr := json.Marshal(value)
		if jsonErr != nil {
			logger.Get().Warn("Failed to encode value for cache", zap.String("key", key), zap.Error(jsonErr))
			return value, nil
		}
		if setErr := c.Set(ctx, key, string(encoded), ttl); setErr != nil {
			logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(setErr))
		}
	}
	return value, nil
}
