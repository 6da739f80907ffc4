package cache

import (
	"context"
	"testing"
	"time"

	dom "github.com/yotakeys/todolist-express/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *TodoCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTodoCache(rdb, time.Minute)
}

func TestTodoCacheMiss(t *testing.T) {
	c := newTestCache(t)

	list, err := c.GetList(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestTodoCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := []dom.Todo{{ID: 1, Title: "buy milk", UserID: 1}}
	require.NoError(t, c.SetList(ctx, 1, in))

	out, err := c.GetList(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "buy milk", out[0].Title)

	// Other users do not see this entry.
	other, err := c.GetList(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestTodoCacheEmptyListIsAHit(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, 1, nil))

	out, err := c.GetList(ctx, 1)
	require.NoError(t, err)
	// Non-nil empty slice distinguishes "cached empty" from a miss.
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestTodoCacheInvalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetList(ctx, 1, []dom.Todo{{ID: 1, Title: "x", UserID: 1}}))
	require.NoError(t, c.Invalidate(ctx, 1))

	out, err := c.GetList(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, out)
}
