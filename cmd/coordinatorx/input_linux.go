//go:build linux

package main

import (
	"context"
	"flag"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/constants"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/input"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/router"
	"github.com/cristalhq/acmd"
)

func init() {
	platformCommands = append(platformCommands, acmd.Command{
		Name:        "input",
		Description: "Run the demo router, driven by an evdev input device",
		ExecFunc:    runInput,
	})
}

func runInput(runCtx context.Context, args []string) error {
	var device string
	options, err := parseOptions("input", args, func(fs *flag.FlagSet) {
		fs.StringVar(&device, "device", "", "evdev device path (overrides config)")
	})
	if err != nil {
		return err
	}
	if device != "" {
		options.Input.Device = device
	}

	bindings := input.NewBindings[string](options.Input.CoolDown).
		Bind(constants.VirtualButtonStart, routeHome).
		Bind(constants.VirtualButtonA, routeLibrary).
		Bind(constants.VirtualButtonMenu, routeSettings).
		Bind(constants.VirtualButtonPower, routeQuit)

	return runLoop(runCtx, options, func(ctx context.Context, r router.Router[string], loop *mainctx.Loop) {
		if err := input.Listen(ctx, options.Input.Device, bindings, r); err != nil {
			coordinatorx.GetLogger().Error("Input listener stopped", "device", options.Input.Device, "error", err)
		}
		loop.Close()
	})
}
