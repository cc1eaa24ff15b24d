package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the client reads out of a session token. The parse is
// unverified: the backend holds the signing key and is the only verifier,
// the client just needs display data and the expiry.
type TokenClaims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// ParseToken decodes a JWT session token without verifying its signature.
func ParseToken(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// TokenExpired reports whether a token carries an expiry in the past.
// Opaque (non-JWT) tokens and tokens without an exp claim pass through; the
// backend rejects them if they are stale.
func TokenExpired(token string) bool {
	claims, err := ParseToken(token)
	if err != nil {
		return false
	}
	return !claims.ExpiresAt.IsZero() && time.Now().After(claims.ExpiresAt)
}
