package postgres

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileTable struct {
	mu      sync.Mutex
	profile *entity.Profile
	err     error
}

func (f *fakeProfileTable) load(context.Context, string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil {
		return nil, domainerrors.ErrProfileNotFound
	}
	cp := *f.profile

	return &cp, nil
}

func (f *fakeProfileTable) set(profile *entity.Profile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = profile
}

type stateRecorder struct {
	mu     sync.Mutex
	states []entity.ProfileState
	errs   []error
	seen   chan struct{}
}

func newStateRecorder() *stateRecorder {
	return &stateRecorder{seen: make(chan struct{}, 16)}
}

func (r *stateRecorder) onChange(state entity.ProfileState) {
	r.mu.Lock()
	r.states = append(r.states, state)
	r.mu.Unlock()
	r.seen <- struct{}{}
}

func (r *stateRecorder) onError(err error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
	r.seen <- struct{}{}
}

func (r *stateRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.seen:
	case <-time.After(time.Second):
		t.Fatal("no watch callback delivered")
	}
}

func newTestHub(table *fakeProfileTable) *watchHub {
	return newWatchHub(table.load, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWatchHub_DeliversInitialAbsentThenPresent(t *testing.T) {
	table := &fakeProfileTable{}
	hub := newTestHub(table)
	rec := newStateRecorder()

	stop := hub.watch(context.Background(), "uid-1", rec.onChange, rec.onError)
	defer stop()

	rec.wait(t)
	table.set(&entity.Profile{UID: "uid-1", IsSeller: true})
	hub.notify("uid-1")
	rec.wait(t)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.states, 2)
	assert.False(t, rec.states[0].IsPresent())
	profile, ok := rec.states[1].Get()
	require.True(t, ok)
	assert.True(t, profile.IsSeller)
}

func TestWatchHub_SuppressesUnchangedState(t *testing.T) {
	table := &fakeProfileTable{profile: &entity.Profile{UID: "uid-1"}}
	hub := newTestHub(table)
	rec := newStateRecorder()

	stop := hub.watch(context.Background(), "uid-1", rec.onChange, rec.onError)
	defer stop()
	rec.wait(t)

	hub.notify("uid-1")
	table.set(&entity.Profile{UID: "uid-1", IsVerified: true})
	hub.notify("uid-1")
	rec.wait(t)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.states, 2)
	profile, _ := rec.states[1].Get()
	assert.True(t, profile.IsVerified)
}

func TestWatchHub_ReadErrorEndsWatch(t *testing.T) {
	table := &fakeProfileTable{err: errors.New("connection refused")}
	hub := newTestHub(table)
	rec := newStateRecorder()

	stop := hub.watch(context.Background(), "uid-1", rec.onChange, rec.onError)
	defer stop()
	rec.wait(t)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Empty(t, rec.states)
	require.Len(t, rec.errs, 1)
}

func TestWatchHub_StopRemovesWatcher(t *testing.T) {
	table := &fakeProfileTable{}
	hub := newTestHub(table)
	rec := newStateRecorder()

	stop := hub.watch(context.Background(), "uid-1", rec.onChange, rec.onError)
	rec.wait(t)
	stop()
	stop()

	assert.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()

		return len(hub.watchers) == 0
	}, time.Second, 10*time.Millisecond)
}
