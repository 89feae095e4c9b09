// Command rvrctl sends one-off commands to a Sphero RVR over a serial port.
//
// Usage:
//
//	rvrctl [-config config.toml] wake
//	rvrctl [-config config.toml] sleep
//	rvrctl [-config config.toml] led <red> <green> <blue>
//	rvrctl [-config config.toml] battery
//	rvrctl [-config config.toml] version
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/robolink/go-rvr/rvr"
	"github.com/robolink/go-rvr/transport"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rvrctl: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "rvrctl: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, args []string) error {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	ch, err := transport.OpenSerial(cfg.Port, cfg.BaudRate)
	if err != nil {
		return err
	}

	d := transport.NewDispatcher(ch,
		transport.WithResponseTimeout(cfg.ResponseTimeout),
		transport.WithLogger(transport.NewZerologLogger(zl)),
	)

	var opts []rvr.ClientOption
	if !cfg.Routing {
		opts = append(opts, rvr.WithoutRouting())
	}
	client := rvr.New(d, opts...)
	defer client.Close()

	switch cmd, rest := args[0], args[1:]; cmd {
	case "wake":
		if err := client.Wake(); err != nil {
			return err
		}
		fmt.Println("awake")
		return nil

	case "sleep":
		if err := client.Sleep(); err != nil {
			return err
		}
		fmt.Println("sleeping")
		return nil

	case "led":
		if len(rest) != 3 {
			return fmt.Errorf("led needs three arguments: red green blue")
		}
		color, err := parseColor(rest)
		if err != nil {
			return err
		}
		return client.SetAllLEDs(color)

	case "battery":
		pct, err := client.GetBatteryPercentage()
		if err != nil {
			return err
		}
		state, err := client.GetBatteryVoltageState()
		if err != nil {
			return err
		}
		fmt.Printf("battery: %d%% (voltage %s)\n", pct, state)
		return nil

	case "version":
		version, err := client.GetFirmwareVersion()
		if err != nil {
			return err
		}
		fmt.Printf("firmware: %s\n", version)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseColor(args []string) (rvr.Color, error) {
	var rgb [3]byte
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			return rvr.Color{}, fmt.Errorf("color component %q: must be 0-255", arg)
		}
		rgb[i] = byte(v)
	}
	return rvr.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: rvrctl [-config config.toml] <command>

Commands:
  wake               wake the robot from sleep
  sleep              put the robot to sleep
  led <r> <g> <b>    set all LEDs to an RGB color (components 0-255)
  battery            print battery percentage and voltage state
  version            print the firmware version
`)
}
