// Package router defines the Router capability: something that can be
// triggered with a strongly typed route value.
//
// A Router has exactly one operation, Trigger, which takes a route of the
// router's own type and returns nothing. What a trigger does (push a screen,
// open a dialog, start a flow) is decided by the implementation; failures are
// handled there too and never surface to the caller.
//
// # Designated Context
//
// Trigger bodies run on one designated execution context, the way UI code
// runs on a main thread. Wrap a router with Confine to get that guarantee:
//
//	loop := mainctx.NewLoop(mainctx.LoopOptions{})
//	_ = loop.Start(ctx)
//
//	screens := router.NewValueSwitch[Screen]().
//	    Handle(ScreenLibrary, showLibrary).
//	    Handle(ScreenSettings, showSettings)
//
//	r := router.Confine[Screen](loop, screens)
//
//	// From any goroutine
//	r.Trigger(ScreenSettings)
//
// Calls made on the context run inline and in order. Calls from other
// goroutines are queued onto the context in the order they arrive.
//
// # Route Types
//
// Each router is generic over a single route type, so a Router[Screen] cannot
// be passed where a Router[Dialog] is expected. Routes carry no behavior of
// their own; typed constants work well:
//
//	type Screen int
//
//	const (
//	    ScreenLibrary Screen = iota
//	    ScreenSettings
//	)
package router
