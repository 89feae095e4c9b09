package rvr

import (
	"fmt"

	"github.com/robolink/go-rvr/protocol"
	"github.com/robolink/go-rvr/transport"
)

// Commander is the transport surface the client needs. *transport.Dispatcher
// satisfies it; tests can substitute anything else.
type Commander interface {
	SendCommand(pkt *protocol.Packet) (*protocol.Packet, error)
	SendWithoutResponse(pkt *protocol.Packet) error
	TakeNotifications() <-chan *protocol.Packet
	Close() error
}

// Client is a high-level typed client for the robot.
//
// Client is safe for concurrent use; independent commands may be issued from
// multiple goroutines and wait only on their own responses.
type Client struct {
	t      Commander
	routed bool
	target byte
	source byte
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithoutRouting disables the target/source node IDs on outgoing commands.
// Only useful on links that bypass the robot's internal routing mesh.
func WithoutRouting() ClientOption {
	return func(c *Client) {
		c.routed = false
	}
}

// WithRouting overrides the routing node IDs. The defaults address the
// primary processor from the UART expansion port.
func WithRouting(target, source byte) ClientOption {
	return func(c *Client) {
		c.routed = true
		c.target = target
		c.source = source
	}
}

// New wraps an existing transport in a Client. Commands are routed to the
// primary processor from the UART port unless an option says otherwise.
func New(t Commander, opts ...ClientOption) *Client {
	if t == nil {
		panic("transport cannot be nil")
	}

	c := &Client{
		t:      t,
		routed: true,
		target: NodePrimaryProcessor,
		source: NodeUARTPort,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect opens the serial device at path and returns a ready client.
//
// Example:
//
//	client, err := rvr.Connect("/dev/serial0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func Connect(path string, opts ...ClientOption) (*Client, error) {
	ch, err := transport.OpenSerial(path, transport.DefaultBaudRate)
	if err != nil {
		return nil, err
	}
	return New(transport.NewDispatcher(ch), opts...), nil
}

// Wake brings the robot out of sleep mode. The robot must be awake before
// most other commands do anything; this is typically the first command sent
// after connecting.
func (c *Client) Wake() error {
	_, err := c.send(DevicePower, CmdWake, nil)
	return err
}

// Sleep puts the robot into low-power sleep mode. Wake resumes it.
func (c *Client) Sleep() error {
	_, err := c.send(DevicePower, CmdSleep, nil)
	return err
}

// SetAllLEDs sets every LED to the same color.
func (c *Client) SetAllLEDs(color Color) error {
	return c.SetLEDs(LEDAll, color)
}

// SetLEDs sets the LEDs selected by mask (see the LED* constants) to color.
//
// Example:
//
//	headlights := byte(rvr.LEDLeftHeadlight | rvr.LEDRightHeadlight)
//	err := client.SetLEDs(headlights, rvr.Blue)
func (c *Client) SetLEDs(mask byte, color Color) error {
	payload := []byte{mask, color.R, color.G, color.B}
	_, err := c.send(DeviceIO, CmdSetAllLEDs, payload)
	return err
}

// GetBatteryPercentage returns the battery charge as a percentage (0-100).
func (c *Client) GetBatteryPercentage() (int, error) {
	data, err := c.send(DevicePower, CmdGetBatteryPercentage, nil)
	if err != nil {
		return 0, err
	}
	if len(data) < 1 {
		return 0, fmt.Errorf("battery percentage response has no data")
	}
	return int(data[0]), nil
}

// GetBatteryVoltageState returns the coarse battery voltage classification.
func (c *Client) GetBatteryVoltageState() (VoltageState, error) {
	data, err := c.send(DevicePower, CmdGetBatteryVoltageState, nil)
	if err != nil {
		return VoltageUnknown, err
	}
	if len(data) < 1 {
		return VoltageUnknown, fmt.Errorf("battery voltage state response has no data")
	}
	return VoltageState(data[0]), nil
}

// DriveWithHeading drives at speed (0-255) toward heading in degrees
// (0-359). Set reverse to drive backwards along the same heading.
func (c *Client) DriveWithHeading(speed byte, heading uint16, reverse bool) error {
	var driveFlags byte
	if reverse {
		driveFlags = 0x01
	}
	payload := []byte{speed, byte(heading >> 8), byte(heading), driveFlags}
	_, err := c.send(DeviceDrive, CmdDriveWithHeading, payload)
	return err
}

// SetRawMotors drives each tread directly: a mode (MotorOff, MotorForward,
// MotorReverse) and a speed (0-255) per side.
func (c *Client) SetRawMotors(leftMode, leftSpeed, rightMode, rightSpeed byte) error {
	payload := []byte{leftMode, leftSpeed, rightMode, rightSpeed}
	_, err := c.send(DeviceDrive, CmdSetRawMotors, payload)
	return err
}

// ResetYaw zeroes the robot's yaw angle, making the current orientation the
// new zero heading.
func (c *Client) ResetYaw() error {
	_, err := c.send(DeviceDrive, CmdResetYaw, nil)
	return err
}

// Stop halts both motors. With brake the treads hold; without, the robot
// coasts to a stop.
func (c *Client) Stop(brake bool) error {
	mode := byte(StopCoast)
	if brake {
		mode = StopBrake
	}
	_, err := c.send(DeviceDrive, CmdStop, []byte{mode})
	return err
}

// GetFirmwareVersion returns the robot's application firmware version.
func (c *Client) GetFirmwareVersion() (FirmwareVersion, error) {
	data, err := c.send(DeviceSystemInfo, CmdGetFirmwareVersion, nil)
	if err != nil {
		return FirmwareVersion{}, err
	}
	if len(data) < 3 {
		return FirmwareVersion{}, fmt.Errorf("firmware version response has %d bytes, want 3", len(data))
	}
	return FirmwareVersion{Major: data[0], Minor: data[1], Patch: data[2]}, nil
}

// GetMACAddress returns the robot's Bluetooth MAC address as reported by the
// system info device (ASCII, without separators).
func (c *Client) GetMACAddress() (string, error) {
	data, err := c.send(DeviceSystemInfo, CmdGetMACAddress, nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Notifications hands out the unsolicited-packet channel (sensor data,
// events). Only the first call succeeds; see transport.Dispatcher.
func (c *Client) Notifications() <-chan *protocol.Packet {
	return c.t.TakeNotifications()
}

// Close shuts down the underlying transport. The robot keeps its current
// state (awake or asleep).
func (c *Client) Close() error {
	return c.t.Close()
}

// send issues one command and returns the response data after the status
// byte. A non-success status comes back as a *CommandError.
func (c *Client) send(deviceID, commandID byte, payload []byte) ([]byte, error) {
	pkt := protocol.NewCommand(deviceID, commandID, payload)
	if c.routed {
		pkt = pkt.WithRouting(c.target, c.source)
	}

	resp, err := c.t.SendCommand(pkt)
	if err != nil {
		return nil, err
	}

	// Response payload: [STATUS][DATA...]. An empty payload is success
	// with no data.
	if len(resp.Payload) == 0 {
		return nil, nil
	}
	if code := resp.Payload[0]; code != CodeSuccess {
		return nil, &CommandError{DeviceID: deviceID, CommandID: commandID, Code: code}
	}
	return resp.Payload[1:], nil
}
