package transport

import (
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the UART speed of the RVR's expansion port.
const DefaultBaudRate = 115200

// serialReadTimeout bounds each blocking read so the dispatcher's reader
// can poll its shutdown signal without busy-waiting.
const serialReadTimeout = 100 * time.Millisecond

// OpenSerial opens the serial device at path with the robot's line settings
// (8 data bits, no parity, one stop bit) and returns it as a channel
// suitable for NewDispatcher.
//
// Reads are configured with a short timeout and return (0, nil) when no
// data arrived in time; writes block until the port has drained.
func OpenSerial(path string, baudRate int) (io.ReadWriteCloser, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", path, err)
	}
	if err := port.SetReadTimeout(serialReadTimeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", path, err)
	}

	return &serialChannel{port: port}, nil
}

// serialChannel adapts serial.Port to the dispatcher's channel contract:
// timed-out reads report no data, and writes drain before returning.
type serialChannel struct {
	port serial.Port
}

func (c *serialChannel) Read(p []byte) (int, error) {
	return c.port.Read(p)
}

func (c *serialChannel) Write(p []byte) (int, error) {
	n, err := c.port.Write(p)
	if err != nil {
		return n, err
	}
	return n, c.port.Drain()
}

func (c *serialChannel) Close() error {
	return c.port.Close()
}
