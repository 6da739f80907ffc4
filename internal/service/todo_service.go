package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/yotakeys/todolist-express/internal/cache"
	dom "github.com/yotakeys/todolist-express/internal/domain"
	"github.com/yotakeys/todolist-express/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

const maxTitleLen = 128

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create stores a new todo owned by userID. Completed always starts false.
func (s *TodoService) Create(ctx context.Context, userID int64, title string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > maxTitleLen {
		return dom.Todo{}, ErrInvalidInput
	}

	t, err := s.repo.Create(ctx, dom.Todo{
		UserID: userID,
		Title:  title,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// List returns all todos owned by userID.
func (s *TodoService) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx, userID)
}

// Update loads the todo by id and applies only the fields present in the patch.
// There is no check that the caller owns the row; any authenticated user may
// mutate any todo by id. That matches the original service's contract.
func (s *TodoService) Update(ctx context.Context, id int64, title *string, completed *bool) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	patch := existing
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" || len(trimmed) > maxTitleLen {
			return dom.Todo{}, ErrInvalidInput
		}
		patch.Title = trimmed
	}
	if completed != nil {
		patch.Completed = *completed
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, t.UserID)
	return t, nil
}

// Delete removes the todo by id. Same ownership gap as Update.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, existing.UserID)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
