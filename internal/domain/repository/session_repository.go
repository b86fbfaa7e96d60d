package repository

import (
	"context"
	"time"

	"pixorva/internal/domain/entity"
)

// SessionRepository keeps the principal signed in on each browser session.
type SessionRepository interface {
	// Save stores the principal for sid, replacing any previous one.
	Save(ctx context.Context, sid string, principal *entity.Principal, ttl time.Duration) error

	// Find returns the principal for sid, or nil when the session is signed out or expired.
	Find(ctx context.Context, sid string) (*entity.Principal, error)

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, sid string) error
}
