// Package routertest provides utilities for testing code that triggers routes.
package routertest

import "sync"

// Recorder is a Router that remembers every route it was triggered with.
// It is safe for concurrent use.
type Recorder[R any] struct {
	mu     sync.Mutex
	routes []R
	onCall func(R)
}

// NewRecorder creates an empty Recorder.
func NewRecorder[R any]() *Recorder[R] {
	return &Recorder[R]{}
}

// OnTrigger registers fn to be called after each recorded trigger.
func (r *Recorder[R]) OnTrigger(fn func(R)) *Recorder[R] {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.onCall = fn
	return r
}

// Trigger records route.
func (r *Recorder[R]) Trigger(route R) {
	r.mu.Lock()
	r.routes = append(r.routes, route)
	fn := r.onCall
	r.mu.Unlock()

	if fn != nil {
		fn(route)
	}
}

// Routes returns a copy of the recorded routes in call order.
func (r *Recorder[R]) Routes() []R {
	r.mu.Lock()
	defer r.mu.Unlock()

	routes := make([]R, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Len returns the number of recorded triggers.
func (r *Recorder[R]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.routes)
}

// Last returns the most recent route, and false if nothing was recorded.
func (r *Recorder[R]) Last() (R, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero R
	if len(r.routes) == 0 {
		return zero, false
	}
	return r.routes[len(r.routes)-1], true
}

// Reset forgets all recorded routes.
func (r *Recorder[R]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes = nil
}
