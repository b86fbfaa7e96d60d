package impl

import (
	"context"
	"testing"
	"time"

	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/route"
	"pixorva/internal/errors"
	mockRepo "pixorva/internal/mocks/repository"
	mockSvc "pixorva/internal/mocks/service"
	"pixorva/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service  *accountService
	identity *mockSvc.MockIdentityProvider
	profiles *mockRepo.MockProfileRepository
	now      time.Time
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	identity := mockSvc.NewMockIdentityProvider(t)
	profiles := mockRepo.NewMockProfileRepository(t)
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	srv := NewAccountService(AccountServiceParams{
		Identity: identity,
		Profiles: profiles,
		Logger:   newDiscardLogger(),
	}).(*accountService)
	srv.now = func() time.Time { return now }

	return accountServiceFixtures{
		service:  srv,
		identity: identity,
		profiles: profiles,
		now:      now,
	}
}

func TestAccountService_SignUp_Seller(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	principal := &entity.Principal{ID: "uid-1", Email: "shop@example.com"}

	fx.identity.EXPECT().CreateAccount(ctx, "shop@example.com", "secret1").Return(principal, nil)

	var written *entity.Profile
	fx.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(_ context.Context, profile *entity.Profile) { written = profile }).
		Return(nil)

	out, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		FullName:        "Asha Rao",
		Email:           "shop@example.com",
		Password:        "secret1",
		AccountType:     entity.AccountTypeSeller,
		BusinessName:    "Rao Textiles",
		BusinessAddress: "12 Market Road",
	})

	require.NoError(t, err)
	assert.Equal(t, route.SellerVerify, out.RedirectTo)
	require.NotNil(t, written)
	assert.Equal(t, "uid-1", written.UID)
	assert.True(t, written.IsSeller)
	assert.False(t, written.IsVerified)
	assert.Equal(t, "Rao Textiles", written.BusinessName)
	assert.Equal(t, "12 Market Road", written.BusinessAddress)
	assert.Equal(t, entity.VerificationStatusNone, written.VerificationStatus)
	assert.Equal(t, fx.now, written.CreatedAt)
}

func TestAccountService_SignUp_Buyer(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	principal := &entity.Principal{ID: "uid-2", Email: "buyer@example.com"}

	fx.identity.EXPECT().CreateAccount(ctx, "buyer@example.com", "secret1").Return(principal, nil)
	fx.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return !p.IsSeller && !p.IsVerified && p.AccountType == entity.AccountTypeBuyer && p.BusinessName == ""
	})).Return(nil)

	out, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		FullName: "Ravi",
		Email:    "buyer@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, route.Home, out.RedirectTo)
}

func TestAccountService_SignUp_SellerWithoutBusinessDetails(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:       "shop@example.com",
		Password:    "secret1",
		AccountType: entity.AccountTypeSeller,
	})

	require.ErrorIs(t, err, domainerrors.ErrBusinessDetailsRequired)
	fx.identity.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_SignUp_IdentityRejects(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, "taken@example.com", "secret1").Return(nil, domainerrors.ErrEmailAlreadyInUse)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "taken@example.com", Password: "secret1"})

	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestAccountService_SignUp_ProfileWriteFails(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().CreateAccount(ctx, "a@example.com", "secret1").Return(&entity.Principal{ID: "uid-3", Email: "a@example.com"}, nil)
	fx.profiles.EXPECT().Create(ctx, mock.Anything).Return(errors.New("unavailable"))

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "a@example.com", Password: "secret1"})

	require.ErrorIs(t, err, domainerrors.ErrCreateAccountFailed)
}

func TestAccountService_Login_Landing(t *testing.T) {
	tests := []struct {
		name    string
		profile *entity.Profile
		want    string
	}{
		{name: "verified seller", profile: &entity.Profile{IsSeller: true, IsVerified: true}, want: route.SellerDashboard},
		{name: "unverified seller", profile: &entity.Profile{IsSeller: true}, want: route.SellerVerify},
		{name: "buyer", profile: &entity.Profile{}, want: route.Home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()
			principal := &entity.Principal{ID: "uid-1", Email: "u@example.com"}

			fx.identity.EXPECT().SignIn(ctx, "u@example.com", "pw").Return(principal, nil)
			fx.profiles.EXPECT().Get(ctx, "uid-1").Return(tt.profile, nil)

			out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "u@example.com", Password: "pw"})

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.RedirectTo)
			assert.Equal(t, principal, out.Principal)
		})
	}
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().SignIn(ctx, "u@example.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "u@example.com", Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_MissingProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.identity.EXPECT().SignIn(ctx, "u@example.com", "pw").Return(&entity.Principal{ID: "uid-9", Email: "u@example.com"}, nil)
	fx.profiles.EXPECT().Get(ctx, "uid-9").Return(nil, domainerrors.ErrProfileNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "u@example.com", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrProfileMissing)
	assert.Equal(t, "User data not found.", domainerrors.ErrProfileMissing.Message())
}
