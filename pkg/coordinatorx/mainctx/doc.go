// Package mainctx provides the designated execution context that routers are
// confined to.
//
// A Context accepts tasks from any goroutine and runs them one at a time, in
// the order they were posted, on a single OS thread. It plays the role a UI
// main thread plays in a desktop toolkit: state touched by a router's Trigger
// is only ever mutated there.
//
// # Basic Usage
//
//	loop := mainctx.NewLoop(mainctx.LoopOptions{Name: "main"})
//	if err := loop.Start(ctx); err != nil {
//	    return err
//	}
//	defer loop.Close()
//
//	// From any goroutine
//	_ = loop.Post(func() {
//	    // runs on the loop thread
//	})
//
//	// Wait for completion
//	_ = mainctx.Do(ctx, loop, func() { ... })
//
// Applications that already own a main thread (SDL, for example) supply an
// Executor so tasks are handed to that thread instead of one the loop locks
// itself. See the platform/sdlmain package.
package mainctx
