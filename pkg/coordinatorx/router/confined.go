package router

import (
	"log/slog"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/internal"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
)

// Confined is a Router whose triggers always execute on one designated
// context. It may be shared freely between goroutines.
type Confined[R Route] struct {
	ctx    mainctx.Context
	router Router[R]
	logger *slog.Logger
}

// Confine wraps r so that its Trigger only ever runs on c.
func Confine[R Route](c mainctx.Context, r Router[R]) *Confined[R] {
	return &Confined[R]{
		ctx:    c,
		router: r,
		logger: internal.GetInternalLogger(),
	}
}

// Trigger runs the wrapped router's Trigger on the designated context.
// On the context it runs inline; elsewhere it is queued and Trigger returns
// immediately. A trigger the context refuses is logged and dropped.
func (c *Confined[R]) Trigger(route R) {
	if err := c.TryTrigger(route); err != nil {
		c.logger.Warn("Dropped route trigger", "route", route, "error", err)
	}
}

// TryTrigger behaves like Trigger but reports why a trigger could not be
// handed to the context.
func (c *Confined[R]) TryTrigger(route R) error {
	if c.ctx.IsCurrent() {
		c.router.Trigger(route)
		return nil
	}

	return c.ctx.Post(func() {
		c.router.Trigger(route)
	})
}

// Context returns the designated context triggers run on.
func (c *Confined[R]) Context() mainctx.Context {
	return c.ctx
}

// Unwrap returns the confined router.
func (c *Confined[R]) Unwrap() Router[R] {
	return c.router
}
