// Package identity implements the email/password identity provider on Firebase Authentication.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pixorva/config"
	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
)

const defaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com"

// userCreator is the subset of *auth.Client used for signup
type userCreator interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

type firebaseIdentityProvider struct {
	users      userCreator
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the identity provider, injected by Fx.
type Params struct {
	fx.In

	Auth   *auth.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseIdentityProvider creates the provider. Signup goes through the Admin SDK;
// password sign-in goes through the Identity Toolkit REST endpoint with the web API key.
func NewFirebaseIdentityProvider(params Params) (service.IdentityProvider, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.APIKey == "" {
		return nil, errors.New("firebase api key is required for password sign-in")
	}

	return newFirebaseIdentityProvider(params.Auth, params.Config.Firebase.APIKey, defaultIdentityToolkitURL, params.Logger), nil
}

func newFirebaseIdentityProvider(users userCreator, apiKey, baseURL string, logger *slog.Logger) *firebaseIdentityProvider {
	return &firebaseIdentityProvider{
		users:   users,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// CreateAccount registers a new email/password identity
func (p *firebaseIdentityProvider) CreateAccount(ctx context.Context, email, password string) (*entity.Principal, error) {
	record, err := p.users.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrEmailAlreadyInUse
		}

		return nil, domainerrors.ErrCreateAccountFailed.WithDetails(err.Error())
	}

	return &entity.Principal{ID: record.UID, Email: record.Email}, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type identityToolkitError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn verifies an email/password pair. Every rejection maps to ErrInvalidCredentials.
func (p *firebaseIdentityProvider) SignIn(ctx context.Context, email, password string) (*entity.Principal, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	endpoint := p.baseURL + "/v1/accounts:signInWithPassword?key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("Identity toolkit request failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr identityToolkitError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		p.logger.Info("Password sign-in rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("reason", apiErr.Error.Message),
		)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, apiErr.Error.Message)
	}

	var out signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "failed to decode sign-in response")
	}
	if out.LocalID == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in response has no localId")
	}

	return &entity.Principal{ID: out.LocalID, Email: out.Email}, nil
}
