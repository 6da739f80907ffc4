package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yotakeys/todolist-express/internal/auth"
	dom "github.com/yotakeys/todolist-express/internal/domain"
	"github.com/yotakeys/todolist-express/internal/repo"
	"github.com/yotakeys/todolist-express/internal/utils"

	"github.com/jackc/pgx/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidInput covers malformed registration data, including a duplicate
// username. The public contract does not tell those cases apart.
var ErrInvalidInput = errors.New("invalid data")

const maxUsernameLen = 128

// UserService handles registration and credential checks.
type UserService struct {
	repo   repo.UserRepo
	tokens *auth.TokenService
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, tokens *auth.TokenService) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > maxUsernameLen || password == "" {
		return dom.User{}, ErrInvalidInput
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrInvalidInput
		}
		return dom.User{}, err
	}
	return u, nil
}

// Login checks the credentials and mints a bearer token on success.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.validateCredentials(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(u.ID)
}

// validateCredentials checks username and password; returns the user if valid.
func (s *UserService) validateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
