package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetCachesWithinWindow(t *testing.T) {
	calls := 0
	c := NewTimedCache(time.Minute, func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	})

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	value, hit, err := c.Get(context.Background())
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"a", "b"}, value)

	now = now.Add(30 * time.Second)
	_, hit, err = c.Get(context.Background())
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, calls)
}

func TestGetReloadsAfterExpiry(t *testing.T) {
	calls := 0
	c := NewTimedCache(time.Minute, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	value, _, _ := c.Get(context.Background())
	assert.Equal(t, 1, value)

	now = now.Add(61 * time.Second)
	value, hit, _ := c.Get(context.Background())
	assert.False(t, hit)
	assert.Equal(t, 2, value)
}

func TestInvalidateForcesReload(t *testing.T) {
	calls := 0
	c := NewTimedCache(time.Hour, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	c.Get(context.Background())
	c.Invalidate()
	value, hit, _ := c.Get(context.Background())

	assert.False(t, hit)
	assert.Equal(t, 2, value)
}

func TestLoadErrorIsNotCached(t *testing.T) {
	calls := 0
	c := NewTimedCache(time.Hour, func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("cuota excedida")
		}
		return 7, nil
	})

	_, _, err := c.Get(context.Background())
	assert.Error(t, err)

	value, hit, err := c.Get(context.Background())
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 7, value)
}
