// Package input turns hardware key presses into route triggers.
//
// Key events are read from an evdev device on their own goroutine, which is
// never the designated context, so the router passed to Listen is normally a
// router.Confined. Bindings map evdev key codes to virtual buttons and
// virtual buttons to routes; a per-button cool down absorbs bouncing keys
// such as a power button.
//
// Listening requires Linux.
package input
