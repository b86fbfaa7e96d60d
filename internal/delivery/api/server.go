package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"pixorva/config"
	"pixorva/internal/delivery"
	apimiddleware "pixorva/internal/delivery/api/middleware"
	"pixorva/internal/delivery/api/router"
	"pixorva/internal/delivery/api/validator"
	"pixorva/internal/delivery/middleware"
	"pixorva/internal/domain/lifecycle"
	"pixorva/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// sessionHSTSMaxAge applies only when the session cookie is marked Secure.
const sessionHSTSMaxAge = 365 * 24 * 60 * 60

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEchoServer(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEchoServer builds the echo instance with every middleware except the per-group session ones.
func newEchoServer(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
	echoServer.Server.ErrorLog = slog.NewLogLogger(logger.Handler(), slog.LevelWarn)

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Security headers; HSTS follows the session cookie's Secure flag
	secure := echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "same-origin",
	}
	if cfg.Session.Secure {
		secure.HSTSMaxAge = sessionHSTSMaxAge
	}
	echoServer.Use(echomiddleware.SecureWithConfig(secure))

	// 5. CORS without credentials
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost},
		ExposeHeaders: []string{echo.HeaderXRequestID},
	}))

	// 6. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// Session middleware is attached per route group by the router

	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	return echoServer
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Pixorva HTTP server",
		slog.String("host_port", hostPort),
		slog.String("session_cookie", s.cfg.Session.CookieName),
		slog.Bool("session_cookie_secure", s.cfg.Session.Secure),
		slog.Duration("session_ttl", s.cfg.Session.TTL),
		slog.Duration("session_idle_timeout", s.cfg.Session.IdleTimeout),
		slog.String("store_driver", s.cfg.Store.Driver),
	)
	if !s.cfg.Session.Secure && !s.cfg.Env.Debug {
		s.logger.Warn("Session cookie is sent over plain HTTP", slog.String("session_cookie", s.cfg.Session.CookieName))
	}
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Pixorva HTTP server", slog.Duration("grace", lifecycle.DefaultTimeout))

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
