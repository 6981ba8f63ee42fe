package session

import (
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWithExp(t *testing.T, exp time.Time) string {
	tok, err := jwt.NewBuilder().
		Subject("emp-001").
		Expiration(exp).
		Build()
	require.NoError(t, err)

	// Signed with a throwaway key; the agent never verifies signatures.
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, []byte("test-secret")))
	require.NoError(t, err)
	return string(signed)
}

func TestSession_TokenValid(t *testing.T) {
	raw := tokenWithExp(t, time.Now().Add(time.Hour))
	s := New(raw, Employee{ID: "emp-001", Name: "Priya"})

	got, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	assert.Equal(t, "emp-001", s.Employee().ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt(), 5*time.Second)
}

func TestSession_TokenExpired(t *testing.T) {
	s := New(tokenWithExp(t, time.Now().Add(-time.Minute)), Employee{ID: "emp-001"})

	_, err := s.Token()
	assert.ErrorIs(t, err, ErrExpired)
}

func TestSession_OpaqueTokenHasNoExpiry(t *testing.T) {
	s := New("not-a-jwt", Employee{ID: "emp-001"})

	got, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", got)
	assert.True(t, s.ExpiresAt().IsZero())
}

func TestSession_Clear(t *testing.T) {
	s := New(tokenWithExp(t, time.Now().Add(time.Hour)), Employee{ID: "emp-001", Name: "Priya"})
	s.Clear()

	_, err := s.Token()
	assert.ErrorIs(t, err, ErrExpired)
	assert.Empty(t, s.Employee().ID)
}
