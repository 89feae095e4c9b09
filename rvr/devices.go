package rvr

// Device IDs for the robot's subsystems.
const (
	// DeviceSystemInfo reports firmware and hardware identity
	DeviceSystemInfo = 0x11

	// DevicePower controls wake, sleep, and battery status
	DevicePower = 0x13

	// DeviceDrive controls motors, speed, and heading
	DeviceDrive = 0x16

	// DeviceSensor streams IMU, color sensor, and encoder data
	DeviceSensor = 0x18

	// DeviceIO controls LEDs, buttons, and IR
	DeviceIO = 0x1A
)

// Power device commands.
const (
	CmdSleep                  = 0x01
	CmdWake                   = 0x0D
	CmdGetBatteryPercentage   = 0x10
	CmdGetBatteryVoltageState = 0x17
)

// IO device commands.
const (
	CmdSetAllLEDs = 0x1A
	CmdSetLEDs    = 0x1B
	CmdGetRGBLED  = 0x1C
)

// Drive device commands.
const (
	CmdSetRawMotors     = 0x01
	CmdResetYaw         = 0x06
	CmdDriveWithHeading = 0x07
	CmdStop             = 0x08
)

// Sensor device commands.
const (
	CmdSetSensorStreaming   = 0x39
	CmdStartSensorStreaming = 0x3A
	CmdStopSensorStreaming  = 0x3B
	CmdClearSensorStreaming = 0x3C
	CmdSetStreamingInterval = 0x46
)

// System info device commands.
const (
	CmdGetFirmwareVersion = 0x02
	CmdGetHardwareVersion = 0x03
	CmdGetMACAddress      = 0x06
)

// Routing node IDs for the robot's internal mesh. Packets entering through
// the external UART expansion port must name both ends or the router may
// drop them.
const (
	// NodePrimaryProcessor is the Nordic MCU, the target for most commands
	NodePrimaryProcessor = 0x01

	// NodeUARTPort is the UART expansion port, the source for external senders
	NodeUARTPort = 0x02
)

// LED bitmask values for SetLEDs.
const (
	LEDRightHeadlight   = 0x01
	LEDLeftHeadlight    = 0x02
	LEDLeftStatus       = 0x04
	LEDRightStatus      = 0x08
	LEDBatteryDoorFront = 0x10
	LEDBatteryDoorRear  = 0x20
	LEDAll              = 0x3F
)

// Raw motor modes for SetRawMotors.
const (
	MotorOff     = 0x00
	MotorForward = 0x01
	MotorReverse = 0x02
)

// Stop modes.
const (
	StopCoast = 0x00
	StopBrake = 0x01
)

// Status codes carried in the first byte of a response payload.
const (
	CodeSuccess           = 0x00
	CodeBadDeviceID       = 0x01
	CodeBadCommandID      = 0x02
	CodeNotYetImplemented = 0x03
	CodeRestricted        = 0x04
	CodeBadDataLength     = 0x05
	CodeFailed            = 0x06
	CodeBadParameterValue = 0x07
	CodeBusy              = 0x08
)
