// Package transport multiplexes command/response exchanges and unsolicited
// notifications over one duplex byte channel to the robot.
//
// # Overview
//
// Dispatcher owns the physical channel. It assigns sequence numbers to
// outgoing commands, frames and writes them, and runs a background reader
// that feeds every received byte through the protocol parser. Completed
// packets are routed by their flags: solicited responses go to the caller
// whose sequence number they carry, everything else goes to the
// notification channel.
//
// # Basic Usage
//
//	ch, err := transport.OpenSerial("/dev/serial0", transport.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d := transport.NewDispatcher(ch)
//	defer d.Close()
//
//	resp, err := d.SendCommand(protocol.NewCommand(0x13, 0x0D, nil))
//
// Any number of goroutines may call SendCommand concurrently; each blocks
// only on its own response, bounded by the configured timeout.
//
// # Notifications
//
// Sensor data and events arrive without being requested. Claim the
// notification channel once and drain it from a dedicated goroutine:
//
//	if notif := d.TakeNotifications(); notif != nil {
//	    go func() {
//	        for pkt := range notif {
//	            // handle sensor data / events
//	        }
//	    }()
//	}
//
// # Hardware Independence
//
// The dispatcher only needs an io.ReadWriteCloser. OpenSerial provides a
// real serial port; tests and simulators can supply anything else. Read may
// block briefly or return (0, nil) when no data is available; Write must
// not return before the bytes are handed to the device.
package transport
