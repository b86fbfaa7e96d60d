// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pixorva/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	FullName        string
	Email           string
	Password        string
	AccountType     entity.AccountType
	BusinessName    string
	BusinessAddress string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AccountOutput returns the signed-in principal and where to send it next.
type AccountOutput struct {
	Principal  *entity.Principal
	Profile    *entity.Profile
	RedirectTo string
}

// AccountUsecase defines the interface for signup and login.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AccountOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AccountOutput, error)
}
