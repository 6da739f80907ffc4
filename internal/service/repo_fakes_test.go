package service

import (
	"context"
	"time"

	dom "github.com/yotakeys/todolist-express/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repo fakes. They mimic the pgx surface the services depend on:
// pgx.ErrNoRows for missing rows and PgError 23505 for unique violations.

type memUserRepo struct {
	nextID int64
	users  map[string]dom.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]dom.User)}
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, ok := r.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *memUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	if _, ok := r.users[username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	}
	r.nextID++
	now := time.Now()
	u := dom.User{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[username] = u
	return u, nil
}

type memTodoRepo struct {
	nextID int64
	todos  map[int64]dom.Todo
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{todos: make(map[int64]dom.Todo)}
}

func (r *memTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	r.nextID++
	now := time.Now()
	t.ID = r.nextID
	t.CreatedAt = now
	t.UpdatedAt = now
	r.todos[t.ID] = t
	return t, nil
}

func (r *memTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	var list []dom.Todo
	for _, t := range r.todos {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *memTodoRepo) Update(ctx context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Title = patch.Title
	t.Completed = patch.Completed
	t.UpdatedAt = time.Now()
	r.todos[id] = t
	return t, nil
}

func (r *memTodoRepo) Delete(ctx context.Context, id int64) error {
	delete(r.todos, id)
	return nil
}
