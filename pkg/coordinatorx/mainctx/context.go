package mainctx

import (
	"context"
	"errors"
)

// Sentinel errors returned when posting to a loop.
var (
	// ErrLoopClosed indicates the loop no longer accepts tasks.
	ErrLoopClosed = errors.New("mainctx: loop closed")

	// ErrLoopRunning indicates Run was called on a loop that already ran.
	ErrLoopRunning = errors.New("mainctx: loop already running")

	// ErrQueueFull indicates the loop reached its pending task limit.
	ErrQueueFull = errors.New("mainctx: task queue full")
)

// Context is a designated execution context.
//
// Post must be safe to call from any goroutine, including from a task already
// running on the context, and must never block waiting for the task to run.
// Tasks posted to the same Context run in the order Post accepted them.
//
// IsCurrent reports whether the caller is running on the context.
// Implementations that cannot tell must return false.
type Context interface {
	Post(task func()) error
	IsCurrent() bool
}

// Do runs fn on c and waits for it to finish.
// When the caller is already on c, fn runs inline.
// If ctx ends first, Do returns ctx.Err() and fn may still run later.
func Do(ctx context.Context, c Context, fn func()) error {
	if c.IsCurrent() {
		fn()
		return nil
	}

	done := make(chan struct{})
	if err := c.Post(func() {
		defer close(done)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsClosed checks if an error indicates the context stopped accepting tasks.
func IsClosed(err error) bool {
	return errors.Is(err, ErrLoopClosed)
}
