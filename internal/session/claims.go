package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the subset of the upstream token payload the gateway
// reads locally. The signature is never verified here: only the server
// that issued the token can do that, and the decoded values are used for
// UI gating, not authorization.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var unverifiedParser = jwt.NewParser()

func decodeClaims(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := unverifiedParser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// RoleFromToken extracts the role claim from a token payload.
// Returns RoleUser when the token cannot be decoded or the claim is absent.
func RoleFromToken(token string) string {
	claims, err := decodeClaims(token)
	if err != nil || claims.Role == "" {
		return RoleUser
	}
	return claims.Role
}

// TokenExpired reports whether the token's exp claim is before now.
// A token that cannot be decoded is treated as expired; a token without
// an exp claim never expires.
func TokenExpired(token string, now time.Time) bool {
	claims, err := decodeClaims(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
