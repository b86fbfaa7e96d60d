// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pixorva/internal/delivery/context"
	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/repository"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
	"pixorva/internal/guard"
	"pixorva/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	identity service.IdentityProvider
	profiles repository.ProfileRepository
	logger   *slog.Logger
	now      func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Identity service.IdentityProvider
	Profiles repository.ProfileRepository
	Logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		identity: params.Identity,
		profiles: params.Profiles,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the identity, writes the profile record once, and picks the landing route.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AccountOutput, error) {
	accountType := input.AccountType
	if accountType == "" {
		accountType = entity.AccountTypeBuyer
	}
	if !accountType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("accountType must be buyer or seller")
	}
	if accountType == entity.AccountTypeSeller && (input.BusinessName == "" || input.BusinessAddress == "") {
		return nil, domainerrors.ErrBusinessDetailsRequired
	}

	principal, err := srv.identity.CreateAccount(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Info("Account creation rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	profile := entity.NewProfile(principal, input.FullName, accountType, input.BusinessName, input.BusinessAddress, srv.now())
	if err := srv.profiles.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to write profile after account creation",
			slog.String("uid", principal.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrCreateAccountFailed, err.Error())
	}

	srv.log(ctx).Info("Account created",
		slog.String("uid", principal.ID),
		slog.String("account_type", string(accountType)),
	)

	return &usecase.AccountOutput{
		Principal:  principal,
		Profile:    profile,
		RedirectTo: guard.Landing(profile.IsSeller, profile.IsVerified),
	}, nil
}

// Login checks credentials and reads the profile once to decide where to land.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
	principal, err := srv.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	profile, err := srv.profiles.Get(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProfileNotFound) {
			srv.log(ctx).Warn("Signed-in principal has no profile", slog.String("uid", principal.ID))

			return nil, domainerrors.ErrProfileMissing
		}
		srv.log(ctx).Error("Failed to read profile on login",
			slog.String("uid", principal.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
	}

	return &usecase.AccountOutput{
		Principal:  principal,
		Profile:    profile,
		RedirectTo: guard.Landing(profile.IsSeller, profile.IsVerified),
	}, nil
}
