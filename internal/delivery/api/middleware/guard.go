package middleware

import (
	"context"
	"log/slog"
	"time"

	"pixorva/config"
	"pixorva/internal/delivery/api/response"
	deliverycontext "pixorva/internal/delivery/context"
	"pixorva/internal/errors"
	"pixorva/internal/guard"

	"github.com/labstack/echo/v4"
)

// GuardMiddleware applies a route policy to the session view.
type GuardMiddleware struct {
	loadingWait time.Duration
	logger      *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(cfg *config.Config, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{
		loadingWait: cfg.Session.LoadingWait,
		logger:      logger,
	}
}

// Require waits up to the loading wait for the view to settle, then renders, redirects with
// 303, or answers with the loading interstitial.
// It must be used AFTER the session middleware.
func (m *GuardMiddleware) Require(policy guard.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			controller, ok := deliverycontext.GetController(c)
			if !ok {
				return errors.New("guarded route without a session")
			}

			view := controller.View()
			if view.Loading && m.loadingWait > 0 {
				ctx, cancel := context.WithTimeout(c.Request().Context(), m.loadingWait)
				view, _ = controller.AwaitSettled(ctx)
				cancel()
			}

			decision := guard.Navigate(policy(view), c.Request().URL.Path)
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Guard decision",
				slog.String("outcome", decision.Outcome.String()),
				slog.String("target", decision.Target),
			)

			switch decision.Outcome {
			case guard.Render:
				deliverycontext.SetView(c, view)

				return next(c)
			case guard.Redirect:
				return response.Redirect(c, decision.Target)
			default:
				return response.Loading(c)
			}
		}
	}
}
