package protocol

// Frame marker and escaping constants.
const (
	// SOP is the start-of-packet marker (0x8D)
	SOP = 0x8D

	// EOP is the end-of-packet marker (0xD8)
	EOP = 0xD8

	// ESC introduces a two-byte escape sequence (0xAB)
	ESC = 0xAB

	// ESCMask is cleared when escaping and restored when unescaping (0x88)
	ESCMask = 0x88
)

// MinBodySize is the minimum unescaped body size in bytes:
// FLAGS(1) + DEVICE_ID(1) + COMMAND_ID(1) + SEQ(1) + CHECKSUM(1),
// with no optional identifiers and an empty payload.
const MinBodySize = 5
