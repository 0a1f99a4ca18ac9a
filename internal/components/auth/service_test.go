package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebook-dev/recipebook/internal/shared/config"
)

// fakeRepo is an in-memory credential store enforcing username uniqueness.
type fakeRepo struct {
	users map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*User{}}
}

func (f *fakeRepo) Create(_ context.Context, user *User) error {
	if _, exists := f.users[user.Username]; exists {
		return ErrUsernameTaken
	}
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func newTestService(t *testing.T) (servicer, *fakeRepo, *TokenService) {
	t.Helper()
	repo := newFakeRepo()
	tokens := NewTokenService(&config.Config{JWTSecret: "service-test-secret"})
	return NewService(repo, tokens, zerolog.Nop()), repo, tokens
}

func TestService_RegisterThenLogin(t *testing.T) {
	svc, repo, tokens := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// The stored hash must never equal the plaintext.
	stored := repo.users["alice"]
	assert.NotEqual(t, "secret-pass", stored.PasswordHash)

	token, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)

	// The issued token encodes the registered user's id.
	gotID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)
}

func TestService_RegisterTrimsUsername(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{Username: "  alice  ", Password: "secret-pass"})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	_, ok := repo.users["alice"]
	assert.True(t, ok)

	// The trimmed name is what login matches against.
	_, err = svc.Login(ctx, LoginRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)
}

func TestService_RegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Username: "alice", Password: "other-pass9"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, LoginRequest{Username: "alice", Password: "nope-nope"})
	_, unknownUser := svc.Login(ctx, LoginRequest{Username: "mallory", Password: "secret-pass"})

	// Wrong password and unknown username must produce the exact same
	// error so responses cannot be used to enumerate usernames.
	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"valid", RegisterRequest{Username: "alice", Password: "long-enough"}, false},
		{"blank username", RegisterRequest{Username: "", Password: "long-enough"}, true},
		{"blank password", RegisterRequest{Username: "alice", Password: ""}, true},
		{"short username", RegisterRequest{Username: "al", Password: "long-enough"}, true},
		{"short password", RegisterRequest{Username: "alice", Password: "short"}, true},
		// Padding must not let a too-short name through the length rule.
		{"padded short username", RegisterRequest{Username: "  ab  ", Password: "long-enough"}, true},
		{"padded valid username", RegisterRequest{Username: "  alice  ", Password: "long-enough"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
