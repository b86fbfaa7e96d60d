package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are carried by the session cookie. Subject holds the session id.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for signing and validating session cookies.
type TokenService interface {
	// IssueSessionToken signs a token referencing the given session id.
	IssueSessionToken(sessionID string) (string, error)

	// ParseSessionToken validates the token and returns its session id.
	ParseSessionToken(tokenString string) (string, error)
}
