package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long a password-recovery token stays usable.
const TokenValidity = 600 * time.Second

var (
	// ErrTokenExpired means the signature checked out but the token is past
	// its validity window. Users see "link expired" for this one.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")
)

// IssueRecoveryToken signs {email, issuedAt} into a tamper-evident token used
// to prove control of the email address during password reset.
func IssueRecoveryToken(email string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
	})
	return token.SignedString(secret)
}

// VerifyRecoveryToken returns the email a token was issued for. Expiry and
// signature failures are distinct so callers can show different messages.
func VerifyRecoveryToken(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
