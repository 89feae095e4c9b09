package rvr

import "fmt"

// CommandError reports that the robot answered a command with a non-success
// status code.
type CommandError struct {
	// DeviceID and CommandID identify the command that failed
	DeviceID  byte
	CommandID byte

	// Code is the raw status code from the response payload
	Code byte
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command 0x%02X/0x%02X failed: %s (0x%02X)",
		e.DeviceID, e.CommandID, codeName(e.Code), e.Code)
}

// codeName returns a human-readable name for a status code.
func codeName(code byte) string {
	switch code {
	case CodeSuccess:
		return "success"
	case CodeBadDeviceID:
		return "bad device ID"
	case CodeBadCommandID:
		return "bad command ID"
	case CodeNotYetImplemented:
		return "not yet implemented"
	case CodeRestricted:
		return "command is restricted"
	case CodeBadDataLength:
		return "bad data length"
	case CodeFailed:
		return "command failed"
	case CodeBadParameterValue:
		return "bad parameter value"
	case CodeBusy:
		return "device is busy"
	default:
		return fmt.Sprintf("unknown status code 0x%02X", code)
	}
}
