// Package constants defines shared constants, types, and configuration values
// used throughout coordinatorx.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by coordinatorx.
const (
	EnvironmentEnvVar = "ENVIRONMENT"
	LogLevelEnvVar    = "COORDINATORX_LOG_LEVEL"
	LogPathEnvVar     = "COORDINATORX_LOG_PATH"
	InputDeviceEnvVar = "COORDINATORX_INPUT_DEVICE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Defaults for the designated-context loop and input handling.
const (
	DefaultLoopName          = "main"
	DefaultMaxPending        = 0 // unbounded
	DefaultInputDevice       = "/dev/input/event1"
	DefaultInputCoolDown     = 150 * time.Millisecond
	DefaultMetricsNamespace  = "coordinatorx"
	DefaultLoopMetricsSubsys = "loop"
)

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Input bindings resolve hardware key codes to virtual buttons and virtual
// buttons to routes.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// VirtualButtonByName is the inverse of GetName. Matching is exact.
func VirtualButtonByName(name string) (VirtualButton, bool) {
	for vb := VirtualButtonUp; vb <= VirtualButtonPower; vb++ {
		if vb.GetName() == name {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}
