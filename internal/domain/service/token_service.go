package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given user and role.
	Issue(userID int64, role string) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	// No route here requires a token; this is the check downstream services
	// sharing the signing secret apply, and what tests use to read issued tokens.
	ValidateToken(tokenString string) (*Claims, error)
}
