package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type (
	servicer interface {
		Register(ctx context.Context, req RegisterRequest) (*User, error)
		Login(ctx context.Context, req LoginRequest) (string, error)
	}

	service struct {
		repo   repoer
		tokens *TokenService
		logger zerolog.Logger
	}
)

func NewService(repo repoer, tokens *TokenService, logger zerolog.Logger) servicer {
	return &service{
		repo:   repo,
		tokens: tokens,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Register hashes the password and persists a new credential. The caller
// validates the payload; duplicate usernames come back as ErrUsernameTaken.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("username", user.Username).Str("user_id", user.ID.String()).Msg("User registered")
	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown
// usernames and wrong passwords both return ErrInvalidCredentials so the
// response never discloses whether the username exists.
func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := CheckPassword(user.PasswordHash, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}

	s.logger.Debug().Str("username", user.Username).Msg("Login successful")
	return token, nil
}
