// Package session derives the per-browser-session view (principal, profile, loading)
// from identity events and a live profile subscription.
package session

import (
	"sync"

	"pixorva/internal/domain/entity"
)

// IdentitySource emits the signed-in principal of one browser session.
type IdentitySource interface {
	// OnAuthStateChanged registers listener, invokes it once with the current principal,
	// and then on every change until unsubscribe is called.
	OnAuthStateChanged(listener func(*entity.Principal)) (unsubscribe func())
}

// AuthState is the identity source of one browser session. Events are delivered
// in order and never concurrently.
type AuthState struct {
	emitMu sync.Mutex

	mu        sync.Mutex
	principal *entity.Principal
	listeners map[uint64]func(*entity.Principal)
	nextID    uint64
}

// NewAuthState creates an identity source holding initial.
func NewAuthState(initial *entity.Principal) *AuthState {
	return &AuthState{
		principal: clonePrincipal(initial),
		listeners: make(map[uint64]func(*entity.Principal)),
	}
}

// Current returns a copy of the current principal.
func (s *AuthState) Current() *entity.Principal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clonePrincipal(s.principal)
}

// OnAuthStateChanged implements IdentitySource.
func (s *AuthState) OnAuthStateChanged(listener func(*entity.Principal)) func() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	current := clonePrincipal(s.principal)
	s.mu.Unlock()

	listener(current)

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Set replaces the principal and notifies listeners when it changed.
func (s *AuthState) Set(principal *entity.Principal) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if s.principal.Equal(principal) {
		s.mu.Unlock()

		return
	}
	s.principal = clonePrincipal(principal)
	listeners := make([]func(*entity.Principal), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(clonePrincipal(principal))
	}
}

func clonePrincipal(p *entity.Principal) *entity.Principal {
	if p == nil {
		return nil
	}
	cp := *p

	return &cp
}
