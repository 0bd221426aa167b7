package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"showcase/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.entries[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

func TestGetOrLoad_MissThenHit(t *testing.T) {
	c := newMemoryCache()
	calls := 0
	load := func(context.Context) ([]domain.Category, error) {
		calls++
		return []domain.Category{{ID: 1, Type: "Science"}}, nil
	}

	first, err := GetOrLoad(context.Background(), c, "k", time.Minute, load)
	require.NoError(t, err)
	second, err := GetOrLoad(context.Background(), c, "k", time.Minute, load)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoad_CacheErrorFallsThrough(t *testing.T) {
	c := newMemoryCache()
	c.getErr = errors.New("connection refused")

	value, err := GetOrLoad(context.Background(), c, "k", time.Minute, func(context.Context) (int, error) {
		return 7, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestGetOrLoad_CorruptEntryReloads(t *testing.T) {
	c := newMemoryCache()
	c.entries["k"] = "{not json"

	value, err := GetOrLoad(context.Background(), c, "k", time.Minute, func(context.Context) (string, error) {
		return "fresh", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "fresh", value)
	assert.Equal(t, `"fresh"`, c.entries["k"])
}

func TestGetOrLoad_LoadError(t *testing.T) {
	c := newMemoryCache()
	loadErr := errors.New("ORA-12541: no listener")

	_, err := GetOrLoad(context.Background(), c, "k", time.Minute, func(context.Context) (int, error) {
		return 0, loadErr
	})

	assert.ErrorIs(t, err, loadErr)
	assert.Empty(t, c.entries)
}

func TestGetOrLoad_NilCache(t *testing.T) {
	value, err := GetOrLoad[int](context.Background(), nil, "k", time.Minute, func(context.Context) (int, error) {
		return 3, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, value)
}
