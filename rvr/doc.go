// Package rvr provides a high-level typed client for the Sphero RVR.
//
// # Overview
//
// Client wraps the transport dispatcher with strongly typed methods for the
// robot's subsystems: power (wake, sleep, battery), IO (LEDs), drive
// (heading, raw motors), and system info (firmware version, MAC address).
//
// # Basic Usage
//
//	client, err := rvr.Connect("/dev/serial0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := client.Wake(); err != nil {
//	    log.Fatal(err)
//	}
//	client.SetAllLEDs(rvr.Green)
//
//	pct, err := client.GetBatteryPercentage()
//
// # UART Routing
//
// Commands sent over the external UART expansion port traverse the robot's
// internal routing mesh and carry target/source node IDs (the primary
// processor and the UART port). Connect enables this by default; it can be
// switched off for links that do not route:
//
//	client, err := rvr.Connect("/dev/serial0", rvr.WithoutRouting())
//
// # Error Handling
//
// When the robot reports a failure, the error is a *CommandError carrying
// the raw status code:
//
//	var cmdErr *rvr.CommandError
//	if errors.As(err, &cmdErr) && cmdErr.Code == rvr.CodeBusy {
//	    // retry later
//	}
//
// Transport-level failures (timeouts, serial errors) pass through from the
// transport package unchanged.
package rvr
