package coordinatorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("disk on fire")
	err := fmt.Errorf("startup: %w", NewInfrastructureError("load_options", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "startup: coordinatorx: load_options: disk on fire", err.Error())

	assert.Equal(t, "coordinatorx: validate", NewInfrastructureError("validate", nil).Error())
	assert.False(t, IsInfrastructureError(cause))
}

func TestIsLoopClosed(t *testing.T) {
	assert.True(t, IsLoopClosed(fmt.Errorf("post: %w", mainctx.ErrLoopClosed)))
	assert.False(t, IsLoopClosed(mainctx.ErrQueueFull))
}

func TestNewMainLoop(t *testing.T) {
	options := DefaultOptions()
	options.Loop.Name = "ui"
	options.Loop.MaxPending = 1

	loop := NewMainLoop(options)
	defer loop.Close()

	assert.Equal(t, "ui", loop.Name())
	assert.NoError(t, loop.Post(func() {}))
	assert.ErrorIs(t, loop.Post(func() {}), mainctx.ErrQueueFull)
}
