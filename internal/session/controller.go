package session

import (
	"context"
	"log/slog"
	"sync"

	"pixorva/internal/domain/entity"
)

// ProfileWatcher opens a live subscription to one profile record.
type ProfileWatcher interface {
	Watch(ctx context.Context, uid string, onChange func(entity.ProfileState), onError func(error)) (stop func())
}

// Controller owns the View of one browser session.
//
// Each identity event bumps the generation, tears down the previous profile
// subscription and then installs a new one stamped with the new generation.
// Profile callbacks with an older stamp are dropped.
type Controller struct {
	identity IdentitySource
	profiles ProfileWatcher
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	startOnce sync.Once

	notifyMu      sync.Mutex
	lastPublished uint64

	mu                  sync.Mutex
	view                View
	version             uint64
	generation          uint64
	stopProfile         func()
	unsubscribeIdentity func()
	changed             chan struct{}
	subscribers         map[uint64]func(View)
	nextSubscriberID    uint64
	closed              bool
}

// NewController creates a controller. Nothing is subscribed until Start.
func NewController(identity IdentitySource, profiles ProfileWatcher, logger *slog.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		identity:    identity,
		profiles:    profiles,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		view:        View{Loading: true},
		changed:     make(chan struct{}),
		subscribers: make(map[uint64]func(View)),
	}
}

// Start subscribes to the identity source. Later calls are no-ops.
func (c *Controller) Start() {
	c.startOnce.Do(func() {
		unsubscribe := c.identity.OnAuthStateChanged(c.handleAuthStateChanged)

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			unsubscribe()

			return
		}
		c.unsubscribeIdentity = unsubscribe
		c.mu.Unlock()
	})
}

// Close releases the identity subscription and the active profile subscription.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.closed = true
	c.generation++
	stopProfile := c.stopProfile
	unsubscribe := c.unsubscribeIdentity
	c.stopProfile = nil
	c.unsubscribeIdentity = nil
	c.view = View{}
	c.version++
	c.broadcastLocked()
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if stopProfile != nil {
		stopProfile()
	}
	c.cancel()
}

// View returns a copy of the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.view.clone()
}

// Changed returns a channel closed on the next state update.
func (c *Controller) Changed() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.changed
}

// Subscribe registers fn to receive each new View. fn must not block.
func (c *Controller) Subscribe(fn func(View)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubscriberID
	c.nextSubscriberID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

// AwaitSettled blocks until the view is no longer loading or ctx ends.
// It always returns the latest view it observed.
func (c *Controller) AwaitSettled(ctx context.Context) (View, error) {
	for {
		c.mu.Lock()
		view := c.view.clone()
		changed := c.changed
		c.mu.Unlock()

		if !view.Loading {
			return view, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return view, ctx.Err()
		}
	}
}

func (c *Controller) handleAuthStateChanged(principal *entity.Principal) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}

	c.generation++
	generation := c.generation
	previousStop := c.stopProfile
	c.stopProfile = nil

	c.view = View{
		Principal: clonePrincipal(principal),
		Profile:   entity.AbsentProfile(),
		Loading:   principal != nil,
	}
	c.version++
	view, version := c.view.clone(), c.version
	c.broadcastLocked()
	c.mu.Unlock()

	if previousStop != nil {
		previousStop()
	}
	c.publish(view, version)

	if principal == nil {
		return
	}

	stop := c.profiles.Watch(c.ctx, principal.ID,
		func(state entity.ProfileState) {
			c.handleProfile(generation, state, nil)
		},
		func(err error) {
			c.handleProfile(generation, entity.AbsentProfile(), err)
		},
	)

	c.mu.Lock()
	if !c.closed && c.generation == generation {
		c.stopProfile = stop
		c.mu.Unlock()

		return
	}
	c.mu.Unlock()

	// superseded while subscribing
	stop()
}

func (c *Controller) handleProfile(generation uint64, state entity.ProfileState, err error) {
	c.mu.Lock()
	if c.closed || generation != c.generation {
		c.mu.Unlock()
		c.logger.Debug("Dropped stale profile callback", slog.Uint64("generation", generation))

		return
	}

	if err != nil {
		state = entity.AbsentProfile()
	}
	c.view.Profile = state
	c.view.Loading = false
	c.version++
	view, version := c.view.clone(), c.version
	c.broadcastLocked()
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Failed to read profile, falling back to least privilege",
			slog.String("uid", view.Principal.ID),
			slog.Any("error", err),
		)
	}
	c.publish(view, version)
}

func (c *Controller) broadcastLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}

func (c *Controller) publish(view View, version uint64) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	if version <= c.lastPublished {
		return
	}
	c.lastPublished = version

	c.mu.Lock()
	subscribers := make([]func(View), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subscribers = append(subscribers, fn)
	}
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(view.clone())
	}
}
