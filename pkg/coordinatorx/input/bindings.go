//go:build linux

package input

import (
	"sync"
	"time"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/constants"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/router"
	"github.com/holoplot/go-evdev"
)

// Key event values reported by evdev.
const (
	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// DefaultKeyMap maps a keyboard and the power button to virtual buttons.
func DefaultKeyMap() map[evdev.EvCode]constants.VirtualButton {
	return map[evdev.EvCode]constants.VirtualButton{
		evdev.EvCode(evdev.KEY_UP):    constants.VirtualButtonUp,
		evdev.EvCode(evdev.KEY_DOWN):  constants.VirtualButtonDown,
		evdev.EvCode(evdev.KEY_LEFT):  constants.VirtualButtonLeft,
		evdev.EvCode(evdev.KEY_RIGHT): constants.VirtualButtonRight,
		evdev.EvCode(evdev.KEY_A):     constants.VirtualButtonA,
		evdev.EvCode(evdev.KEY_B):     constants.VirtualButtonB,
		evdev.EvCode(evdev.KEY_X):     constants.VirtualButtonX,
		evdev.EvCode(evdev.KEY_Y):     constants.VirtualButtonY,
		evdev.EvCode(evdev.KEY_ENTER): constants.VirtualButtonStart,
		evdev.EvCode(evdev.KEY_SPACE): constants.VirtualButtonSelect,
		evdev.EvCode(evdev.KEY_MENU):  constants.VirtualButtonMenu,
		evdev.EvCode(evdev.KEY_POWER): constants.VirtualButtonPower,
	}
}

// Bindings resolves key events to routes of type R.
type Bindings[R router.Route] struct {
	mu       sync.Mutex
	keys     map[evdev.EvCode]constants.VirtualButton
	routes   map[constants.VirtualButton]R
	coolDown time.Duration
	lastFire map[constants.VirtualButton]time.Time
	now      func() time.Time
}

// NewBindings creates Bindings using DefaultKeyMap. Presses of the same
// button closer together than coolDown are ignored; zero disables that.
func NewBindings[R router.Route](coolDown time.Duration) *Bindings[R] {
	return &Bindings[R]{
		keys:     DefaultKeyMap(),
		routes:   make(map[constants.VirtualButton]R),
		coolDown: coolDown,
		lastFire: make(map[constants.VirtualButton]time.Time),
		now:      time.Now,
	}
}

// MapKey maps an evdev key code to a virtual button, replacing the default.
func (b *Bindings[R]) MapKey(code evdev.EvCode, button constants.VirtualButton) *Bindings[R] {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.keys[code] = button
	return b
}

// Bind triggers route when button is pressed.
func (b *Bindings[R]) Bind(button constants.VirtualButton, route R) *Bindings[R] {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.routes[button] = route
	return b
}

// Button returns the virtual button for a key code.
func (b *Bindings[R]) Button(code evdev.EvCode) constants.VirtualButton {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.keys[code]
}

// Resolve returns the route bound to the key pressed in ev.
// Only key presses resolve; releases, auto-repeats and presses inside the
// cool down window do not.
func (b *Bindings[R]) Resolve(ev *evdev.InputEvent) (R, bool) {
	var zero R

	if ev == nil || ev.Type != evdev.EvType(evdev.EV_KEY) || ev.Value != keyPressed {
		return zero, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	button, ok := b.keys[ev.Code]
	if !ok {
		return zero, false
	}

	route, ok := b.routes[button]
	if !ok {
		return zero, false
	}

	now := b.now()
	if last, fired := b.lastFire[button]; fired && b.coolDown > 0 && now.Sub(last) < b.coolDown {
		return zero, false
	}
	b.lastFire[button] = now

	return route, true
}
