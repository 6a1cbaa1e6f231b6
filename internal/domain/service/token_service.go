package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the access tokens handed out after a
// successful login. The dashboard routes are guarded by these tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the account email.
	GenerateAccessToken(email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
