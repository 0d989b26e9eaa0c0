package coordinatorx

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/constants"
	"github.com/BurntSushi/toml"
)

// Options configures logging, the main loop and input handling.
// It is usually loaded from a TOML file with LoadOptions.
type Options struct {
	LogPath          string         `toml:"log_path"`           // Full path for the log file; empty logs to stdout only
	LogLevel         string         `toml:"log_level"`          // Application log level
	InternalLogLevel string         `toml:"internal_log_level"` // Library log level (defaults to error, debug in DEV)
	Loop             LoopOptions    `toml:"loop"`
	Input            InputOptions   `toml:"input"`
	Metrics          MetricsOptions `toml:"metrics"`
}

// LoopOptions configures the designated-context loop.
type LoopOptions struct {
	Name       string `toml:"name"`
	MaxPending int    `toml:"max_pending"` // 0 for unbounded
}

// InputOptions configures hardware key input.
type InputOptions struct {
	Device   string        `toml:"device"`    // evdev device path
	CoolDown time.Duration `toml:"cool_down"` // e.g. "150ms"
}

// MetricsOptions configures prometheus metrics.
type MetricsOptions struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"` // listen address for /metrics; empty to not serve
}

// DefaultOptions returns the options used when no file is given.
func DefaultOptions() Options {
	return Options{
		LogLevel: "info",
		Loop: LoopOptions{
			Name:       constants.DefaultLoopName,
			MaxPending: constants.DefaultMaxPending,
		},
		Input: InputOptions{
			Device:   constants.DefaultInputDevice,
			CoolDown: constants.DefaultInputCoolDown,
		},
	}
}

// LoadOptions decodes the TOML file at path over DefaultOptions and then
// applies environment overrides. Unknown keys are an error.
// An empty path skips the file.
func LoadOptions(path string) (Options, error) {
	options := DefaultOptions()

	if path != "" {
		md, err := toml.DecodeFile(path, &options)
		if err != nil {
			return Options{}, NewInfrastructureError("load_options", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return Options{}, NewInfrastructureError("load_options",
				fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", ")))
		}
	}

	options.applyEnv()

	if err := options.Validate(); err != nil {
		return Options{}, err
	}

	return options, nil
}

// Validate reports option values that cannot be used.
func (o Options) Validate() error {
	if o.Loop.MaxPending < 0 {
		return NewInfrastructureError("validate_options", fmt.Errorf("loop.max_pending must not be negative, got %d", o.Loop.MaxPending))
	}
	if o.Input.CoolDown < 0 {
		return NewInfrastructureError("validate_options", fmt.Errorf("input.cool_down must not be negative, got %s", o.Input.CoolDown))
	}
	return nil
}

func (o *Options) applyEnv() {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		o.LogLevel = v
	}
	if v := os.Getenv(constants.LogPathEnvVar); v != "" {
		o.LogPath = v
	}
	if v := os.Getenv(constants.InputDeviceEnvVar); v != "" {
		o.Input.Device = v
	}
}
