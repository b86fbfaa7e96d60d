// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pixorva/config"
	"pixorva/internal/delivery/api/middleware"
	"pixorva/internal/delivery/api/response"
	deliverycontext "pixorva/internal/delivery/context"
	"pixorva/internal/domain/entity"
	"pixorva/internal/domain/route"
	"pixorva/internal/errors"
	"pixorva/internal/guard"
	"pixorva/internal/session"
	"pixorva/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Manager   *session.Manager
	Sessions  *middleware.SessionMiddleware
	Config    *config.Config
	Logger    *slog.Logger
}

// AccountHandler serves signup, login, logout and the session view.
type AccountHandler struct {
	accountUC   usecase.AccountUsecase
	manager     *session.Manager
	sessions    *middleware.SessionMiddleware
	loadingWait time.Duration
	logger      *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:   params.AccountUC,
		manager:     params.Manager,
		sessions:    params.Sessions,
		loadingWait: params.Config.Session.LoadingWait,
		logger:      params.Logger,
	}
}

// SignUpRequest is the signup form.
type SignUpRequest struct {
	FullName        string `json:"fullName" form:"fullName"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required,min=6"`
	AccountType     string `json:"accountType" form:"accountType" validate:"omitempty,oneof=buyer seller"`
	BusinessName    string `json:"businessName" form:"businessName"`
	BusinessAddress string `json:"businessAddress" form:"businessAddress"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SignUp creates the account and its profile, signs the session in and redirects to the landing route.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		AccountType:     entity.AccountType(req.AccountType),
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.signIn(c, out.Principal); err != nil {
		return err
	}

	return response.Redirect(c, out.RedirectTo)
}

// Login checks the credentials, signs the session in and redirects to the landing route.
// A missing profile leaves the session signed out.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.signIn(c, out.Principal); err != nil {
		return err
	}

	return response.Redirect(c, out.RedirectTo)
}

// Logout signs the session out and clears the cookie.
func (h *AccountHandler) Logout(c echo.Context) error {
	if sid := deliverycontext.GetSessionID(c); sid != "" {
		if err := h.manager.SignOut(c.Request().Context(), sid); err != nil {
			return errors.WithStack(err)
		}
	}
	h.sessions.Clear(c)

	return response.Redirect(c, route.Home)
}

// Session returns the current view and navigation, waiting briefly for it to settle.
func (h *AccountHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, toSessionResponse(h.settledView(c)))
}

// Home is the public landing page.
func (h *AccountHandler) Home(c echo.Context) error {
	view := h.settledView(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"title":      "Welcome to Pixorva!",
		"navigation": guard.Navigation(view),
	})
}

// StartSelling sends sellers to their landing route and everyone else to seller signup.
func (h *AccountHandler) StartSelling(c echo.Context) error {
	view := h.settledView(c)
	if view.Loading {
		return response.Loading(c)
	}
	if view.IsSeller() {
		return response.Redirect(c, guard.Landing(true, view.IsVerified()))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"signedIn":    view.SignedIn(),
		"signup":      route.Signup,
		"accountType": entity.AccountTypeSeller,
	})
}

// signIn rotates the session id and stores the principal on the new session.
func (h *AccountHandler) signIn(c echo.Context, principal *entity.Principal) error {
	ctx := c.Request().Context()
	previous := deliverycontext.GetSessionID(c)

	sid, err := h.sessions.Issue(c)
	if err != nil {
		return err
	}
	if err := h.manager.SignIn(ctx, sid, principal); err != nil {
		return errors.WithStack(err)
	}
	if previous != "" {
		if err := h.manager.SignOut(ctx, previous); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to drop previous session", slog.Any("error", err))
		}
	}

	return nil
}

func (h *AccountHandler) settledView(c echo.Context) session.View {
	controller, ok := deliverycontext.GetController(c)
	if !ok {
		return session.View{}
	}
	if h.loadingWait <= 0 {
		return controller.View()
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.loadingWait)
	defer cancel()
	view, _ := controller.AwaitSettled(ctx)

	return view
}
