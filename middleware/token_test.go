package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService([]byte("secret"), 5*time.Hour)

	tok, err := svc.Issue(map[string]any{"email": "jane@example.com", "name": "Jane"})
	require.NoError(t, err)

	id, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", id.Email)
	assert.Equal(t, "Jane", id.Claims["name"])

	exp, err := id.Claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := id.Claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Hour, exp.Sub(iat.Time))
}

func TestTokenService_IssueRequiresEmail(t *testing.T) {
	svc := NewTokenService([]byte("secret"), time.Hour)

	_, err := svc.Issue(map[string]any{"name": "Jane"})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = svc.Issue(map[string]any{"email": 42})
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestTokenService_VerifyRejects(t *testing.T) {
	svc := NewTokenService([]byte("secret"), time.Hour)
	other := NewTokenService([]byte("other-secret"), time.Hour)

	foreign, err := other.Issue(map[string]any{"email": "jane@example.com"})
	require.NoError(t, err)

	expiredSvc := NewTokenService([]byte("secret"), time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Issue(map[string]any{"email": "jane@example.com"})
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "jane@example.com",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "jane@example.com",
		"exp":   jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":           "",
		"malformed":       "not.a.token",
		"wrong signature": foreign,
		"expired":         expired,
		"no email":        noEmail,
		"no expiry":       noExp,
		"other algorithm": hs512,
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(tok)
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}
