// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pixorva/config"
	"pixorva/internal/domain/constants"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
)

// jwtService signs the session cookie. The cookie only references a server-side session.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: cfg.Session.Secret,
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// IssueSessionToken creates a token whose subject is the session id.
func (s *jwtService) IssueSessionToken(sessionID string) (string, error) {
	now := s.now()
	claims := service.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,                          // Session the cookie refers to
			Issuer:    constants.SessionTokenIssuer,       // Issuer
			IssuedAt:  jwt.NewNumericDate(now),            // Issued At
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)), // Expiration Time
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ParseSessionToken checks the token against the secret and returns its session id.
func (s *jwtService) ParseSessionToken(tokenString string) (string, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	},
		jwt.WithIssuer(constants.SessionTokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", errors.Wrap(err, "invalid session token")
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}

	return claims.Subject, nil
}
