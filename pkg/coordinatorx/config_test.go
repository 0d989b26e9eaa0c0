package coordinatorx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOptionsDefaults(t *testing.T) {
	options, err := LoadOptions("")
	require.NoError(t, err)

	assert.Equal(t, DefaultOptions(), options)
	assert.Equal(t, constants.DefaultLoopName, options.Loop.Name)
	assert.Equal(t, constants.DefaultInputCoolDown, options.Input.CoolDown)
}

func TestLoadOptionsFromFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
log_path = "/tmp/coordinatorx/app.log"

[loop]
name = "ui"
max_pending = 64

[input]
device = "/dev/input/event2"
cool_down = "1s"

[metrics]
enabled = true
addr = ":9090"
`)

	options, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", options.LogLevel)
	assert.Equal(t, "/tmp/coordinatorx/app.log", options.LogPath)
	assert.Equal(t, LoopOptions{Name: "ui", MaxPending: 64}, options.Loop)
	assert.Equal(t, "/dev/input/event2", options.Input.Device)
	assert.Equal(t, time.Second, options.Input.CoolDown)
	assert.Equal(t, MetricsOptions{Enabled: true, Addr: ":9090"}, options.Metrics)
}

func TestLoadOptionsKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
[loop]
max_pending = 8
`)

	options, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultLoopName, options.Loop.Name)
	assert.Equal(t, 8, options.Loop.MaxPending)
	assert.Equal(t, "info", options.LogLevel)
}

func TestLoadOptionsRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[loop]
name = "ui"
queue_size = 10
`)

	_, err := LoadOptions(path)
	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
	assert.Contains(t, err.Error(), "loop.queue_size")
}

func TestLoadOptionsRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[loop]
max_pending = -1
`)

	_, err := LoadOptions(path)
	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOptionsEnvOverrides(t *testing.T) {
	t.Setenv(constants.LogLevelEnvVar, "error")
	t.Setenv(constants.InputDeviceEnvVar, "/dev/input/event9")

	path := writeConfig(t, `log_level = "debug"`)

	options, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "error", options.LogLevel)
	assert.Equal(t, "/dev/input/event9", options.Input.Device)
}
