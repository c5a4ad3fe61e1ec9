package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestRecoveryToken_RoundTrip(t *testing.T) {
	token, err := IssueRecoveryToken("a@x.com", testSecret)
	require.NoError(t, err)

	email, err := VerifyRecoveryToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestRecoveryToken_Expired(t *testing.T) {
	// A token issued 601 seconds ago is past its window
	issuedAt := time.Now().Add(-601 * time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenValidity)),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)

	_, err = VerifyRecoveryToken(signed, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRecoveryToken_BadSignature(t *testing.T) {
	token, err := IssueRecoveryToken("a@x.com", []byte("other-secret"))
	require.NoError(t, err)

	// Expiry and signature failures must stay distinguishable
	_, err = VerifyRecoveryToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestRecoveryToken_Garbage(t *testing.T) {
	_, err := VerifyRecoveryToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
