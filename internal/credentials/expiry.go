package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry reads the exp claim of a JWT without verifying its signature; the
// client never holds the signing key. Tokens that are not JWTs, or carry no
// exp claim, return ErrNoExpiry.
func Expiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, ErrNoExpiry
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// Expired reports whether token has an exp claim at or before now
func Expired(token string, now time.Time) bool {
	exp, err := Expiry(token)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
