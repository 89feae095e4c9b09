package rvr

import "fmt"

// Color is an RGB color.
type Color struct {
	// R is the red component (0-255)
	R byte

	// G is the green component (0-255)
	G byte

	// B is the blue component (0-255)
	B byte
}

// Common colors.
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
	Orange  = Color{255, 165, 0}
	Purple  = Color{128, 0, 128}
)

// ColorFromHex builds a Color from a 24-bit hex value, e.g. 0xFF0000 for red.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: byte(hex >> 16),
		G: byte(hex >> 8),
		B: byte(hex),
	}
}

// VoltageState classifies the battery voltage.
type VoltageState byte

// Battery voltage states reported by GetBatteryVoltageState.
const (
	VoltageUnknown  VoltageState = 0x00
	VoltageOK       VoltageState = 0x01
	VoltageLow      VoltageState = 0x02
	VoltageCritical VoltageState = 0x03
)

func (s VoltageState) String() string {
	switch s {
	case VoltageOK:
		return "ok"
	case VoltageLow:
		return "low"
	case VoltageCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// FirmwareVersion identifies the robot's application firmware.
type FirmwareVersion struct {
	Major byte
	Minor byte
	Patch byte
}

func (v FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
