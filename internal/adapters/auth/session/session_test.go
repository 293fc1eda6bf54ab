package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"cow-inspection/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, now time.Time) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: "test-secret"})
	require.NoError(t, err)
	m.now = func() time.Time { return now }
	return m
}

func TestNewManager_RequiresSecret(t *testing.T) {
	_, err := NewManager(Config{Secret: "  "})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)
	assert.Equal(t, 24*time.Hour, m.TTL())

	tok, exp, err := m.Issue(context.Background(), auth.Claims{VetID: "vet-1", Email: "a@b.c", Region: "North"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), exp)

	claims, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "vet-1", claims.VetID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "North", claims.Region)
	assert.True(t, claims.ExpiresAt.Equal(exp))
}

func TestVerify_RejectsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	tok, _, err := m.Issue(context.Background(), auth.Claims{VetID: "vet-1", Region: "North"})
	require.NoError(t, err)

	// Un segundo antes del vencimiento sigue valiendo.
	m.now = func() time.Time { return now.Add(24*time.Hour - time.Second) }
	_, err = m.Verify(context.Background(), tok)
	require.NoError(t, err)

	m.now = func() time.Time { return now.Add(24*time.Hour + time.Second) }
	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_RejectsTamperedSignature(t *testing.T) {
	m := newTestManager(t, time.Now())
	tok, _, err := m.Issue(context.Background(), auth.Claims{VetID: "vet-1", Region: "North"})
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.Verify(context.Background(), tampered)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_RejectsOtherSecretAndGarbage(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, now)

	other, err := NewManager(Config{Secret: "other-secret"})
	require.NoError(t, err)
	tok, _, err := other.Issue(context.Background(), auth.Claims{VetID: "vet-1"})
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	for _, bad := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err = m.Verify(context.Background(), bad)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, "token %q", bad)
	}
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestManager(t, time.Now())

	tok := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		VetID: "vet-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(context.Background(), s)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssue_RequiresVetID(t *testing.T) {
	m := newTestManager(t, time.Now())
	_, _, err := m.Issue(context.Background(), auth.Claims{Email: "x@y.z"})
	assert.Error(t, err)
}
