package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims, method jwt.SigningMethod) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestVerify_ValidToken(t *testing.T) {
	v, err := NewVerifier(Config{Secret: "s3cret", Issuer: "meds"})
	require.NoError(t, err)

	tok := sign(t, "s3cret", jwt.MapClaims{
		"sub":   "user-42",
		"email": "a@b.c",
		"iss":   "meds",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256)

	c, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user-42", c.UserID)
	assert.Equal(t, "a@b.c", c.Email)
	require.NotNil(t, c.ExpiresAt)
}

func TestVerify_Rejects(t *testing.T) {
	v, err := NewVerifier(Config{Secret: "s3cret"})
	require.NoError(t, err)

	cases := map[string]string{
		"wrong secret": sign(t, "other", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()}, jwt.SigningMethodHS256),
		"expired":      sign(t, "s3cret", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()}, jwt.SigningMethodHS256),
		"no exp":       sign(t, "s3cret", jwt.MapClaims{"sub": "u"}, jwt.SigningMethodHS256),
		"wrong alg":    sign(t, "s3cret", jwt.MapClaims{"sub": "u", "exp": time.Now().Add(time.Hour).Unix()}, jwt.SigningMethodHS512),
		"garbage":      "not.a.jwt",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err = v.Verify(context.Background(), " ")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	missingSub := sign(t, "s3cret", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}, jwt.SigningMethodHS256)
	_, err = v.Verify(context.Background(), missingSub)
	assert.ErrorIs(t, err, ErrMissingSub)
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
