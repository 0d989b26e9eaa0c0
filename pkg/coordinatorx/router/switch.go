package router

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/internal"
)

// HandlerFunc handles one kind of route.
type HandlerFunc[R Route] func(route R)

// Switch is a Router that dispatches each route to the handler registered
// for its key. Handlers are registered with Handle, and a single fallback
// receives routes nobody handles.
//
// Handlers run without the switch's lock held, so a handler may trigger
// further routes or register new handlers.
type Switch[R Route, K comparable] struct {
	key func(R) K

	mu       sync.RWMutex
	handlers map[K]HandlerFunc[R]
	order    []K
	fallback HandlerFunc[R]

	logger *slog.Logger
}

// NewSwitch creates a Switch that looks routes up by key(route).
func NewSwitch[R Route, K comparable](key func(R) K) *Switch[R, K] {
	return &Switch[R, K]{
		key:      key,
		handlers: make(map[K]HandlerFunc[R]),
		logger:   internal.GetInternalLogger(),
	}
}

// NewValueSwitch creates a Switch keyed by the route value itself.
// Suited to routes declared as typed constants.
func NewValueSwitch[R comparable]() *Switch[R, R] {
	return NewSwitch(func(route R) R { return route })
}

// Handle registers fn for routes whose key is k, replacing any earlier handler.
func (s *Switch[R, K]) Handle(k K, fn HandlerFunc[R]) *Switch[R, K] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.handlers[k]; !exists {
		s.order = append(s.order, k)
	}
	s.handlers[k] = fn
	return s
}

// Fallback sets the handler for routes with no registered handler.
func (s *Switch[R, K]) Fallback(fn HandlerFunc[R]) *Switch[R, K] {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fallback = fn
	return s
}

// Trigger dispatches route to its handler, or to the fallback.
// Routes with neither are logged and ignored.
func (s *Switch[R, K]) Trigger(route R) {
	k := s.key(route)

	s.mu.RLock()
	fn, ok := s.handlers[k]
	if !ok {
		fn = s.fallback
	}
	s.mu.RUnlock()

	if fn == nil {
		s.logger.Warn("No handler for route", "route", route, "key", k)
		return
	}
	fn(route)
}

// Routes returns the registered keys in registration order.
func (s *Switch[R, K]) Routes() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()

	routes := make([]K, len(s.order))
	copy(routes, s.order)
	return routes
}
