package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"pixorva/config"
	deliverycontext "pixorva/internal/delivery/context"
	"pixorva/internal/domain/service"
	"pixorva/internal/errors"
	"pixorva/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Manager *session.Manager
	Tokens  service.TokenService
	Config  *config.Config
	Logger  *slog.Logger
}

// SessionMiddleware binds each request to a browser session through a signed cookie.
type SessionMiddleware struct {
	manager *session.Manager
	tokens  service.TokenService
	cfg     config.SessionConfig
	logger  *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		manager: params.Manager,
		tokens:  params.Tokens,
		cfg:     params.Config.Session,
		logger:  params.Logger,
	}
}

// Process resolves the session id from the cookie, starting a new anonymous session when the
// cookie is missing or invalid, and attaches the session controller to the request.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

		sid := ""
		if cookie, err := c.Cookie(m.cfg.CookieName); err == nil {
			parsed, err := m.tokens.ParseSessionToken(cookie.Value)
			if err != nil {
				logger.Debug("Discarding invalid session cookie", slog.Any("error", err))
			} else {
				sid = parsed
			}
		}

		if sid == "" {
			var err error
			if sid, err = m.Issue(c); err != nil {
				return err
			}
		}

		controller, err := m.manager.Controller(c.Request().Context(), sid)
		if err != nil {
			return errors.Wrap(err, "failed to load session")
		}
		deliverycontext.SetSession(c, sid, controller)

		return next(c)
	}
}

// Issue starts a fresh session id and writes its cookie.
func (m *SessionMiddleware) Issue(c echo.Context) (string, error) {
	sid := uuid.NewString()
	token, err := m.tokens.IssueSessionToken(sid)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue session token")
	}

	c.SetCookie(m.cookie(token, int(m.cfg.TTL/time.Second)))

	return sid, nil
}

// Clear expires the session cookie.
func (m *SessionMiddleware) Clear(c echo.Context) {
	c.SetCookie(m.cookie("", -1))
}

func (m *SessionMiddleware) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
