package protocol

import (
	"errors"
	"fmt"
)

// Framing errors. All of them are scoped to a single frame: the parser has
// already returned to a valid state when one is reported, and the caller
// should log it and keep feeding bytes.
var (
	// ErrUnexpectedStart reports a SOP marker seen mid-frame. The previous
	// EOP was lost; the parser discards the partial frame and resynchronizes
	// onto the new one.
	ErrUnexpectedStart = errors.New("unexpected SOP mid-frame, resynchronizing")

	// ErrInvalidEscape reports a SOP, EOP, or ESC byte immediately following
	// an ESC. A correctly escaped byte never equals one of the three markers.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrIncompleteEscape reports an ESC with no following byte, either at
	// the end of a buffer or directly before EOP.
	ErrIncompleteEscape = errors.New("incomplete escape sequence")
)

// ChecksumError indicates that a frame's trailing checksum byte does not
// match the checksum computed over the body.
type ChecksumError struct {
	// Expected is the checksum computed over the received body
	Expected byte

	// Actual is the checksum byte carried by the frame
	Actual byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%02X, got 0x%02X", e.Expected, e.Actual)
}

// TruncatedError indicates that a frame body ended before a required field.
type TruncatedError struct {
	// Field is the field that could not be read
	Field string

	// Len is the body length that was available
	Len int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated packet: body of %d bytes ends before %s", e.Len, e.Field)
}
