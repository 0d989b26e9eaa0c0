//go:build linux

package input

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/internal"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/router"
	"github.com/holoplot/go-evdev"
)

// Listen reads key events from the evdev device at devicePath and triggers r
// with every route b resolves. It blocks until ctx is cancelled, which returns
// nil, or the device fails.
func Listen[R router.Route](ctx context.Context, devicePath string, b *Bindings[R], r router.Router[R]) error {
	dev, err := evdev.Open(devicePath)
	if err != nil {
		return fmt.Errorf("input: open %s: %w", devicePath, err)
	}

	// Closing the device unblocks ReadOne.
	stop := context.AfterFunc(ctx, func() {
		dev.Close()
	})
	defer func() {
		if stop() {
			dev.Close()
		}
	}()

	logger := internal.GetInternalLogger().With("device", devicePath)
	if name, err := dev.Name(); err == nil {
		logger = logger.With("device_name", name)
	}
	logger.Debug("Listening for input")

	return listen(ctx, dev, b, r, logger.Debug)
}

type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
}

func listen[R router.Route](ctx context.Context, dev eventReader, b *Bindings[R], r router.Router[R], debug func(msg string, args ...any)) error {
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("input: read: %w", err)
		}

		route, ok := b.Resolve(ev)
		if !ok {
			continue
		}

		debug("Key triggered route", "code", ev.Code, "route", route)
		r.Trigger(route)
	}
}
