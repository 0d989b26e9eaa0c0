package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route names understood by the demo router.
const (
	routeHome     = "home"
	routeLibrary  = "library"
	routeSettings = "settings"
	routeQuit     = "quit"
)

func runStdin(runCtx context.Context, args []string) error {
	options, err := parseOptions("run", args, nil)
	if err != nil {
		return err
	}

	return runLoop(runCtx, options, func(ctx context.Context, r router.Router[string], loop *mainctx.Loop) {
		readRoutes(os.Stdin, r)
		loop.Close()
	})
}

// runLoop runs the designated context on the calling goroutine and starts
// feed on another one, so every trigger crosses contexts.
func runLoop(runCtx context.Context, options coordinatorx.Options, feed func(ctx context.Context, r router.Router[string], loop *mainctx.Loop)) error {
	coordinatorx.Init(options)
	defer coordinatorx.Close()

	logger := coordinatorx.GetLogger()
	loop := coordinatorx.NewMainLoop(options)
	r := router.Confine[string](loop, newDemoRouter(logger, loop))

	if options.Metrics.Enabled && options.Metrics.Addr != "" {
		go serveMetrics(options.Metrics.Addr)
	}

	go feed(runCtx, r, loop)

	logger.Info("Router ready", "loop", loop.Name(), "loop_id", loop.ID())
	return loop.Run(runCtx)
}

// newDemoRouter logs navigation between a few screens. It keeps the current
// screen without locking, which is only sound because it is confined to loop.
func newDemoRouter(logger *slog.Logger, loop *mainctx.Loop) *router.Switch[string, string] {
	current := routeHome

	show := func(route string) {
		logger.Info("Navigated", "from", current, "to", route)
		current = route
	}

	return router.NewValueSwitch[string]().
		Handle(routeHome, show).
		Handle(routeLibrary, show).
		Handle(routeSettings, show).
		Handle(routeQuit, func(string) {
			logger.Info("Quitting", "from", current)
			loop.Close()
		}).
		Fallback(func(route string) {
			logger.Warn("Unknown route", "route", route)
		})
}

// readRoutes triggers r with every non-empty line read from in.
func readRoutes(in io.Reader, r router.Router[string]) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		route := strings.TrimSpace(scanner.Text())
		if route == "" {
			continue
		}
		r.Trigger(route)
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		coordinatorx.GetLogger().Error("Metrics server stopped", "addr", addr, "error", err)
	}
}
