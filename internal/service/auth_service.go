package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/crypto"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/models"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with a hashed password. Email uniqueness is
// enforced by lookup before insert.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:       newID(),
		Email:    email,
		Password: hash,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login returns the user when the email exists and the password verifies.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if !crypto.VerifyPassword(password, u.Password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// newID returns an opaque 32-character hex identifier.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
