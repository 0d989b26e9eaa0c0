// Package coordinatorx provides typed routers confined to a designated
// execution context, for applications (UI shells, handheld launchers) whose
// navigation state must only be touched from one main thread.
//
// The router package defines the Router capability, mainctx provides the
// designated context, and platform/sdlmain binds it to the SDL main thread.
// This package wires logging and configuration for all of them.
package coordinatorx

import (
	"log/slog"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/constants"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/internal"
	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
	"github.com/prometheus/client_golang/prometheus"
)

// Init applies the logging settings in options.
// Call it before creating loops so their loggers pick up the settings.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	internal.SetRawLogLevel(options.LogLevel)

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else if options.InternalLogLevel != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(options.InternalLogLevel))
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// NewMainLoop creates the designated-context loop described by options.
// Loop metrics go to prometheus.DefaultRegisterer when options.Metrics.Enabled.
func NewMainLoop(options Options) *mainctx.Loop {
	var reg prometheus.Registerer
	if options.Metrics.Enabled {
		reg = prometheus.DefaultRegisterer
	}

	return mainctx.NewLoop(mainctx.LoopOptions{
		Name:       options.Loop.Name,
		MaxPending: options.Loop.MaxPending,
		Registerer: reg,
		Logger:     internal.GetInternalLogger(),
	})
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
