package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/valerio/go-duallfo/duallfo/backend"
	"github.com/valerio/go-duallfo/duallfo/backend/headless"
	"github.com/valerio/go-duallfo/duallfo/backend/terminal"
	"github.com/valerio/go-duallfo/duallfo/ledbar"
	"github.com/valerio/go-duallfo/duallfo/monitor"
	"github.com/valerio/go-duallfo/duallfo/serial"
	"github.com/valerio/go-duallfo/duallfo/timing"
	"github.com/valerio/go-duallfo/duallfo/wavetable"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running duallfo", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "duallfo"
	app.Description = "Inspect, step and upload the pulse8 LFO wavetable"
	app.Usage = "duallfo [global options] command [command options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})
			slog.SetDefault(slog.New(handler))
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "dump",
			Usage: "Print the table, one 'index value' pair per line, or write it as raw bytes",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "format",
					Value: "dec",
					Usage: "Output format: dec, hex, bin or raw",
				},
				cli.StringFlag{
					Name:  "out",
					Usage: "Write to this file instead of stdout",
				},
			},
			Action: runDump,
		},
		{
			Name:      "verify",
			Usage:     "Check that a raw table file matches pulse8",
			ArgsUsage: "<file>",
			Action:    runVerify,
		},
		{
			Name:  "run",
			Usage: "Step through the table, showing each sample on an LED bar",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "headless",
					Usage: "Run without a terminal interface",
				},
				cli.IntFlag{
					Name:  "ticks",
					Value: wavetable.Size,
					Usage: "Number of ticks to run in headless mode",
				},
				cli.StringFlag{
					Name:  "trace",
					Usage: "Write a per-tick trace to this file in headless mode",
				},
				cli.IntFlag{
					Name:  "step",
					Value: 1,
					Usage: "Indices to advance per tick",
				},
				cli.Float64Flag{
					Name:  "rate",
					Value: timing.DefaultRate,
					Usage: "Ticks per second in terminal mode",
				},
				cli.IntFlag{
					Name:  "leds",
					Value: 8,
					Usage: "Number of LEDs on the bar",
				},
				cli.IntFlag{
					Name:  "first-pin",
					Value: 2,
					Usage: "Pin of the first LED",
				},
			},
			Action: runMonitor,
		},
		{
			Name:  "upload",
			Usage: "Send the raw table to a device over a serial port",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "port",
					Usage:  "Serial device, e.g. /dev/ttyACM0",
					EnvVar: "DUALLFO_PORT",
				},
				cli.IntFlag{
					Name:  "baud",
					Value: 9600,
					Usage: "Baud rate",
				},
				cli.BoolFlag{
					Name:  "verify",
					Usage: "Expect the device to echo the table back and compare it",
				},
			},
			Action: runUpload,
		},
	}
	return app
}

func runDump(c *cli.Context) error {
	var out io.Writer = os.Stdout
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	if err := writeDump(out, wavetable.Pulse8(), c.String("format")); err != nil {
		return err
	}
	slog.Debug("Table dumped", "format", c.String("format"), "out", c.String("out"))
	return nil
}

func writeDump(w io.Writer, t wavetable.Table, format string) error {
	var line string
	switch format {
	case "raw":
		_, err := t.WriteTo(w)
		return err
	case "dec":
		line = "%d %d\n"
	case "hex":
		line = "0x%02X 0x%02X\n"
	case "bin":
		line = "%d %08b\n"
	default:
		return fmt.Errorf("unknown format %q (want dec, hex, bin or raw)", format)
	}

	for i := 0; i < t.Len(); i++ {
		if _, err := fmt.Fprintf(w, line, i, t.Sample(i)); err != nil {
			return err
		}
	}
	return nil
}

func runVerify(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, "verify")
		return errors.New("no table file provided")
	}
	path := c.Args().Get(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := verifyTable(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("Table matches pulse8", "path", path)
	return nil
}

func verifyTable(data []byte) error {
	got, err := wavetable.Decode(data)
	if err != nil {
		return err
	}
	want := wavetable.Pulse8()
	for i := 0; i < wavetable.Size; i++ {
		if got.Sample(i) != want.Sample(i) {
			return fmt.Errorf("sample %d is %d, want %d", i, got.Sample(i), want.Sample(i))
		}
	}
	return nil
}

func runMonitor(c *cli.Context) error {
	firstPin := c.Int("first-pin")
	if firstPin < 0 || firstPin > math.MaxUint8 {
		return fmt.Errorf("--first-pin must be between 0 and %d, got %d", math.MaxUint8, firstPin)
	}
	bar, err := ledbar.New(ledbar.NewMemoryDriver(), ledbar.Pin(firstPin), c.Int("leds"))
	if err != nil {
		return err
	}

	var (
		be      backend.Backend
		limiter timing.Limiter
	)
	if c.Bool("headless") {
		ticks := c.Int("ticks")
		if ticks <= 0 {
			return errors.New("headless mode requires --ticks option with a positive value")
		}
		traceConfig, err := headless.CreateTraceConfig(c.String("trace"))
		if err != nil {
			return err
		}
		be = headless.New(ticks, traceConfig)
		limiter = timing.NewNoOpLimiter()
	} else {
		ticker := timing.NewTickerLimiter(c.Float64("rate"))
		defer ticker.Stop()
		be = terminal.New()
		limiter = ticker
	}

	mon, err := monitor.New(monitor.Config{
		Title:   "pulse8",
		Table:   wavetable.Pulse8(),
		Step:    c.Int("step"),
		Bar:     bar,
		Backend: be,
		Limiter: limiter,
		Verbose: c.GlobalBool("verbose"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = mon.Run(ctx)
	if errors.Is(err, context.Canceled) {
		slog.Info("Received signal to stop")
		return nil
	}
	return err
}

func runUpload(c *cli.Context) error {
	cfg := serial.DefaultConfig(c.String("port"))
	cfg.Baud = c.Int("baud")

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	if err := serial.Upload(port, wavetable.Pulse8(), c.Bool("verify")); err != nil {
		return err
	}
	slog.Info("Table uploaded", "port", cfg.Device, "baud", cfg.Baud, "bytes", wavetable.Size)
	return nil
}
