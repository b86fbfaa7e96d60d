package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pixorva/config"
	"pixorva/internal/domain/entity"
	"pixorva/internal/domain/lifecycle"
	"pixorva/internal/domain/repository"
	"pixorva/internal/errors"

	"go.uber.org/fx"
)

// Manager maps browser session ids to their controllers.
type Manager struct {
	sessions    repository.SessionRepository
	profiles    repository.ProfileRepository
	logger      *slog.Logger
	ttl         time.Duration
	idleTimeout time.Duration
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	auth       *AuthState
	controller *Controller
	lastSeen   time.Time
}

// ManagerParams holds dependencies for the session manager
type ManagerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Sessions  repository.SessionRepository
	Profiles  repository.ProfileRepository
}

// NewManager creates the manager and runs idle eviction while the app is running.
func NewManager(params ManagerParams) *Manager {
	manager := newManager(
		params.Sessions,
		params.Profiles,
		params.Logger,
		params.Config.Session.TTL,
		params.Config.Session.IdleTimeout,
	)

	sweepEvery := params.Config.Session.SweepEvery
	var stopSweep context.CancelFunc
	var sweepDone chan struct{}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			stopSweep = cancel
			sweepDone = make(chan struct{})
			go manager.runSweeper(ctx, sweepEvery, sweepDone)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if stopSweep != nil {
				stopSweep()
				select {
				case <-sweepDone:
				case <-ctx.Done():
				}
			}
			manager.Close()

			return nil
		},
	})

	return manager
}

func newManager(sessions repository.SessionRepository, profiles repository.ProfileRepository, logger *slog.Logger, ttl, idleTimeout time.Duration) *Manager {
	return &Manager{
		sessions:    sessions,
		profiles:    profiles,
		logger:      logger,
		ttl:         ttl,
		idleTimeout: idleTimeout,
		now:         time.Now,
		entries:     make(map[string]*entry),
	}
}

// Controller returns the running controller of sid after syncing it with the stored principal.
func (m *Manager) Controller(ctx context.Context, sid string) (*Controller, error) {
	principal, err := m.sessions.Find(ctx, sid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session")
	}

	e := m.touch(sid, principal)
	e.controller.Start()
	e.auth.Set(principal)

	return e.controller, nil
}

// SignIn stores principal on sid and emits it to the session's controller.
func (m *Manager) SignIn(ctx context.Context, sid string, principal *entity.Principal) error {
	if err := m.sessions.Save(ctx, sid, principal, m.ttl); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	m.mu.Lock()
	e, ok := m.entries[sid]
	m.mu.Unlock()
	if ok {
		e.auth.Set(principal)
	}

	return nil
}

// SignOut removes the stored session, emits a nil principal and closes the controller.
func (m *Manager) SignOut(ctx context.Context, sid string) error {
	m.mu.Lock()
	e, ok := m.entries[sid]
	delete(m.entries, sid)
	m.mu.Unlock()

	if ok {
		e.auth.Set(nil)
		e.controller.Close()
	}

	if err := m.sessions.Delete(ctx, sid); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// Sweep closes controllers idle for longer than the idle timeout and returns how many were evicted.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	var evicted []*entry
	for sid, e := range m.entries {
		if e.lastSeen.Before(cutoff) {
			evicted = append(evicted, e)
			delete(m.entries, sid)
		}
	}
	m.mu.Unlock()

	for _, e := range evicted {
		e.controller.Close()
	}

	return len(evicted)
}

// Close closes every controller.
func (m *Manager) Close() {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		e.controller.Close()
	}
}

func (m *Manager) touch(sid string, principal *entity.Principal) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[sid]
	if !ok {
		auth := NewAuthState(principal)
		e = &entry{
			auth:       auth,
			controller: NewController(auth, m.profiles, m.logger.With(slog.String("component", "session_controller"))),
		}
		m.entries[sid] = e
	}
	e.lastSeen = m.now()

	return e
}

func (m *Manager) runSweeper(ctx context.Context, every time.Duration, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				m.logger.Debug("Evicted idle session controllers", slog.Int("count", n))
			}
		}
	}
}
