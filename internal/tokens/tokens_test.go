package tokens

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	now := time.Now()

	raw, err := SignAccessToken(42, secret, now)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := AccessClaimsFromToken(raw, secret)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, now.Add(AccessTTL), claims.ExpiresAt.Time, time.Second)

	userID, err := claims.SubjectUserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestAccessClaimsFromToken_RejectsExpired(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	issued := time.Now().Add(-AccessTTL - time.Hour)

	raw, err := SignAccessToken(1, secret, issued)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(raw, secret)
	require.Error(t, err)
}

func TestAccessClaimsFromToken_RejectsTampered(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	raw, err := SignAccessToken(1, secret, time.Now())
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = AccessClaimsFromToken(tampered, secret)
	require.Error(t, err)
}

func TestAccessClaimsFromToken_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := SignAccessToken(1, []byte("secret-a"), time.Now())
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(raw, []byte("secret-b"))
	require.Error(t, err)
}
