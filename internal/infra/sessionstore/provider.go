// Package sessionstore keeps the principal signed in on each browser session.
package sessionstore

import (
	"log/slog"

	"pixorva/config"
	"pixorva/internal/domain/repository"

	"go.uber.org/fx"
)

// Params holds dependencies for the session store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository returns the Redis store when Redis is configured, otherwise
// an in-process store whose sessions end with the process.
func NewSessionRepository(params Params) repository.SessionRepository {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis not configured, keeping sessions in memory")

		return NewMemoryStore()
	}

	params.Logger.Info("Using Redis session store", slog.String("addr", params.Config.Redis.Addr))

	return NewRedisStore(params.Lc, params.Config.Redis, params.Logger)
}
