package service

import (
	"context"
	"testing"
	"time"

	"github.com/yotakeys/todolist-express/internal/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedTodoService(t *testing.T) (*TodoService, *memTodoRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	r := newMemTodoRepo()
	return NewTodoService(r, cache.NewTodoCache(rdb, time.Minute)), r
}

func TestTodoListUsesCache(t *testing.T) {
	svc, repo := newCachedTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "buy milk")
	require.NoError(t, err)

	// First list fills the cache.
	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Mutate storage behind the service's back; the cached copy is served.
	delete(repo.todos, created.ID)
	list, err = svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTodoWriteInvalidatesCache(t *testing.T) {
	svc, _ := newCachedTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "buy milk")
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))

	list, err = svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
