// Package sdlmain makes the SDL main thread the designated context.
//
// SDL requires most calls to happen on the thread that initialized it.
// go-sdl2 exposes that thread through sdl.Main and sdl.Do; a Loop built here
// hands every task to sdl.Do, so routers confined to it trigger on the SDL
// thread alongside rendering and event polling.
package sdlmain

import (
	"context"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultLoopName labels loops created by this package.
const DefaultLoopName = "sdl"

// NewLoop creates a Loop that runs its tasks on the SDL main thread.
// It must be started from inside sdl.Main.
func NewLoop(opts mainctx.LoopOptions) *mainctx.Loop {
	if opts.Name == "" {
		opts.Name = DefaultLoopName
	}
	opts.Executor = sdl.Do
	return mainctx.NewLoop(opts)
}

// Main enters sdl.Main, starts an SDL-bound loop and calls run with it.
// The loop is shut down once run returns, after its queued tasks finish.
// Call Main from the program's main goroutine.
func Main(opts mainctx.LoopOptions, run func(ctx context.Context, loop *mainctx.Loop) error) error {
	var err error

	sdl.Main(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		loop := NewLoop(opts)
		if err = loop.Start(ctx); err != nil {
			return
		}

		err = run(ctx, loop)

		if shutdownErr := loop.Shutdown(ctx); err == nil {
			err = shutdownErr
		}
	})

	return err
}
