package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebook-dev/recipebook/internal/shared/config"
)

func newTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	return NewTokenService(&config.Config{
		JWTSecret: "test-secret-key",
		TokenTTL:  ttl,
	})
}

func TestTokenService_RoundTrip(t *testing.T) {
	ts := newTokenService(t, 0)
	userID := uuid.New()

	token, err := ts.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_NoTTLMeansNoExpiry(t *testing.T) {
	ts := newTokenService(t, 0)

	token, err := ts.Issue(uuid.New())
	require.NoError(t, err)

	// A token issued without a TTL must still verify far in the future;
	// the claim set simply has no expiry. Verifying now is the best proxy
	// we have without clock control.
	_, err = ts.Verify(token)
	require.NoError(t, err)
}

func TestTokenService_Expired(t *testing.T) {
	ts := newTokenService(t, -time.Minute)

	token, err := ts.Issue(uuid.New())
	require.NoError(t, err)

	_, err = ts.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	ts := newTokenService(t, 0)
	other := NewTokenService(&config.Config{JWTSecret: "another-secret"})

	token, err := ts.Issue(uuid.New())
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenService_Tampered(t *testing.T) {
	ts := newTokenService(t, 0)

	token, err := ts.Issue(uuid.New())
	require.NoError(t, err)

	// Flip one character of the signature.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, err = ts.Verify(string(tampered))
	require.Error(t, err)
}

func TestTokenService_Malformed(t *testing.T) {
	ts := newTokenService(t, 0)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "aaaa.bbbb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Verify(tt.token)
			require.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}
