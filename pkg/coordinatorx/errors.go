package coordinatorx

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/coordinatorx/pkg/coordinatorx/mainctx"
)

// InfrastructureError represents a setup failure in coordinatorx itself
// (unreadable config, invalid options). Route triggers never produce one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_options")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coordinatorx: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("coordinatorx: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsLoopClosed checks if an error indicates the main loop stopped accepting work.
func IsLoopClosed(err error) bool {
	return mainctx.IsClosed(err)
}
