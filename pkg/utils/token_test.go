package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func newTestTokens() *TokenService {
	return NewTokenService(testSecret, "homecare-tracker", "homecare-tracker", 24*time.Hour)
}

func TestGenerateToken_ValidatesAndCarriesSubject(t *testing.T) {
	tokens := newTestTokens()

	token, err := tokens.GenerateToken("alice@example.com")
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateToken_UniqueTokenIDs(t *testing.T) {
	tokens := newTestTokens()

	a, err := tokens.GenerateToken("alice@example.com")
	require.NoError(t, err)
	b, err := tokens.GenerateToken("alice@example.com")
	require.NoError(t, err)

	ca, err := tokens.ValidateToken(a)
	require.NoError(t, err)
	cb, err := tokens.ValidateToken(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestValidateToken_Tampered(t *testing.T) {
	tokens := newTestTokens()
	token, err := tokens.GenerateToken("alice@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// ganti payload dengan milik user lain, signature lama dipertahankan
	other, err := tokens.GenerateToken("mallory@example.com")
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

	_, err = tokens.ValidateToken(forged)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	tokens := newTestTokens()
	past := tokens.WithClock(func() time.Time { return time.Now().Add(-25 * time.Hour) })

	token, err := past.GenerateToken("alice@example.com")
	require.NoError(t, err)

	_, err = tokens.ValidateToken(token)
	assert.Error(t, err)

	// dari sudut pandang jam yang sama token masih berlaku
	_, err = past.ValidateToken(token)
	assert.NoError(t, err)
}

func TestValidateToken_WrongIssuerAudienceOrSecret(t *testing.T) {
	tokens := newTestTokens()

	cases := map[string]*TokenService{
		"issuer":   NewTokenService(testSecret, "someone-else", "homecare-tracker", time.Hour),
		"audience": NewTokenService(testSecret, "homecare-tracker", "someone-else", time.Hour),
		"secret":   NewTokenService("another-secret-0123456789", "homecare-tracker", "homecare-tracker", time.Hour),
	}
	for name, issuer := range cases {
		t.Run(name, func(t *testing.T) {
			token, err := issuer.GenerateToken("alice@example.com")
			require.NoError(t, err)

			_, err = tokens.ValidateToken(token)
			assert.Error(t, err)
		})
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestTokens().ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
