package sessionstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pixorva/config"
	"pixorva/internal/domain/entity"
	"pixorva/internal/domain/lifecycle"
	"pixorva/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "pixorva:session:"

type storedPrincipal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// RedisStore keeps sessions in Redis with a TTL.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore builds a Redis-backed session store and ties the client to the app lifecycle.
func NewRedisStore(lc fx.Lifecycle, cfg *config.RedisConfig, logger *slog.Logger) *RedisStore {
	store := newRedisStore(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), cfg.Prefix, logger)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(store.client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(context.Context) error {
			return store.client.Close()
		},
	})

	return store
}

func newRedisStore(client *redis.Client, prefix string, logger *slog.Logger) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{client: client, prefix: prefix, logger: logger}
}

func (s *RedisStore) key(sid string) string {
	return s.prefix + sid
}

func (s *RedisStore) Save(ctx context.Context, sid string, principal *entity.Principal, ttl time.Duration) error {
	payload, err := json.Marshal(storedPrincipal{ID: principal.ID, Email: principal.Email})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.client.Set(ctx, s.key(sid), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

func (s *RedisStore) Find(ctx context.Context, sid string) (*entity.Principal, error) {
	payload, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}

	var stored storedPrincipal
	if err := json.Unmarshal(payload, &stored); err != nil {
		s.logger.Warn("Dropping unreadable session", slog.String("sid", sid), slog.Any("error", err))

		return nil, nil
	}

	return &entity.Principal{ID: stored.ID, Email: stored.Email}, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
