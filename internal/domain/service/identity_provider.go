package service

import (
	"context"

	"pixorva/internal/domain/entity"
)

// IdentityProvider abstracts the remote email/password identity source.
type IdentityProvider interface {
	// SignIn verifies the credentials. Wrong credentials return domainerrors.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*entity.Principal, error)

	// CreateAccount registers a new identity. Rejections return domainerrors.ErrCreateAccountFailed
	// or domainerrors.ErrEmailAlreadyInUse.
	CreateAccount(ctx context.Context, email, password string) (*entity.Principal, error)
}
