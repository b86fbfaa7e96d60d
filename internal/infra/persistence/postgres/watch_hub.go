package postgres

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"pixorva/internal/domain/entity"
	domainerrors "pixorva/internal/domain/errors"
	"pixorva/internal/errors"
)

type profileLoader func(ctx context.Context, uid string) (*entity.Profile, error)

// watchHub fans profile changes out to watchers in this process.
type watchHub struct {
	load         profileLoader
	pollInterval time.Duration
	logger       *slog.Logger

	mu       sync.Mutex
	watchers map[string]map[*watcher]struct{}
}

type watcher struct {
	signal chan struct{}
}

func newWatchHub(load profileLoader, pollInterval time.Duration, logger *slog.Logger) *watchHub {
	return &watchHub{
		load:         load,
		pollInterval: pollInterval,
		logger:       logger,
		watchers:     make(map[string]map[*watcher]struct{}),
	}
}

// notify wakes every watcher of uid. It never blocks.
func (h *watchHub) notify(uid string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for w := range h.watchers[uid] {
		select {
		case w.signal <- struct{}{}:
		default:
		}
	}
}

// watch delivers the current state, then every distinct state seen after a notify or poll.
// A read error is reported once and ends the watch.
func (h *watchHub) watch(ctx context.Context, uid string, onChange func(entity.ProfileState), onError func(error)) func() {
	watchCtx, cancel := context.WithCancel(ctx)
	w := &watcher{signal: make(chan struct{}, 1)}

	h.mu.Lock()
	if h.watchers[uid] == nil {
		h.watchers[uid] = make(map[*watcher]struct{})
	}
	h.watchers[uid][w] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer h.remove(uid, w)

		var ticker <-chan time.Time
		if h.pollInterval > 0 {
			t := time.NewTicker(h.pollInterval)
			defer t.Stop()
			ticker = t.C
		}

		var last *entity.ProfileState
		for {
			state, err := h.read(watchCtx, uid)
			if err != nil {
				if watchCtx.Err() != nil {
					return
				}
				h.logger.Warn("Profile watch read failed", slog.String("uid", uid), slog.Any("error", err))
				onError(err)

				return
			}
			if last == nil || !reflect.DeepEqual(*last, state) {
				last = &state
				onChange(state)
			}

			select {
			case <-watchCtx.Done():
				return
			case <-w.signal:
			case <-ticker:
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(cancel)
	}
}

func (h *watchHub) read(ctx context.Context, uid string) (entity.ProfileState, error) {
	profile, err := h.load(ctx, uid)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProfileNotFound) {
			return entity.AbsentProfile(), nil
		}

		return entity.AbsentProfile(), err
	}

	return entity.PresentProfile(*profile), nil
}

func (h *watchHub) remove(uid string, w *watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.watchers[uid], w)
	if len(h.watchers[uid]) == 0 {
		delete(h.watchers, uid)
	}
}
