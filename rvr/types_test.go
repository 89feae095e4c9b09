package rvr

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name     string
		hex      uint32
		expected Color
	}{
		{"red", 0xFF0000, Red},
		{"green", 0x00FF00, Green},
		{"blue", 0x0000FF, Blue},
		{"mixed", 0x80FF40, Color{0x80, 0xFF, 0x40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorFromHex(tt.hex); got != tt.expected {
				t.Errorf("ColorFromHex(0x%06X) = %+v, want %+v", tt.hex, got, tt.expected)
			}
		})
	}
}

func TestLEDAllCoversEveryLED(t *testing.T) {
	all := LEDRightHeadlight | LEDLeftHeadlight | LEDLeftStatus |
		LEDRightStatus | LEDBatteryDoorFront | LEDBatteryDoorRear
	if all != LEDAll {
		t.Errorf("OR of individual LEDs = 0x%02X, want 0x%02X", all, LEDAll)
	}
}

func TestVoltageStateString(t *testing.T) {
	tests := []struct {
		state    VoltageState
		expected string
	}{
		{VoltageOK, "ok"},
		{VoltageLow, "low"},
		{VoltageCritical, "critical"},
		{VoltageUnknown, "unknown"},
		{VoltageState(0x7F), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("VoltageState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
