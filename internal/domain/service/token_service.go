package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the validated claim set carried by an access token.
// Subject identifies the account the token speaks for.
type Claims struct {
	Subject int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed access token for the given account id,
	// expiring after the configured lifetime.
	IssueToken(subject int64) (string, error)

	// ValidateToken checks signature, expiry and encoding atomically and
	// returns the claims. It never returns partial claims on failure.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
