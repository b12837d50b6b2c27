package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer, err := NewIssuer("top-secret")
	require.NoError(t, err)
	verifier, err := NewVerifier("top-secret")
	require.NoError(t, err)

	token, err := issuer.Issue("author", time.Minute)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "author", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyRejects(t *testing.T) {
	verifier, err := NewVerifier("top-secret")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewIssuer("another-secret")
		token, err := other.Issue("author", time.Minute)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		issuer, _ := NewIssuer("top-secret")
		issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := issuer.Issue("author", time.Minute)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("no expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "author"}).
			SignedString([]byte("top-secret"))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.Error(t, err)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte("top-secret"))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		assert.Error(t, err)
	})
}

func TestEmptySecret(t *testing.T) {
	_, err := NewVerifier("")
	assert.ErrorIs(t, err, ErrEmptySecret)
	_, err = NewIssuer("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
