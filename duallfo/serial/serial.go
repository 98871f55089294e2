// Package serial sends wavetables to a device over a serial line.
package serial

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tarm/serial"

	"github.com/valerio/go-duallfo/duallfo/wavetable"
)

// Port represents an open serial line
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the settings used by the upload command
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600,
		ReadTimeout: 1000,
	}
}

// Open opens a native serial port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, fmt.Errorf("serial device is required")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return port, nil
}

// ErrEchoMismatch is returned when a device echoes back different bytes.
var ErrEchoMismatch = errors.New("serial: echoed table differs from sent table")

// Upload writes the raw table to w. When verify is set, w must also be an
// io.Reader and the device is expected to echo the table back.
func Upload(w io.Writer, t wavetable.Table, verify bool) error {
	if _, err := t.WriteTo(w); err != nil {
		return fmt.Errorf("failed to send table: %w", err)
	}
	slog.Debug("Table sent", "bytes", wavetable.Size)

	if !verify {
		return nil
	}

	r, ok := w.(io.Reader)
	if !ok {
		return errors.New("serial: verify requires a readable port")
	}
	echo, err := wavetable.Read(r)
	if err != nil {
		return fmt.Errorf("failed to read echo: %w", err)
	}
	if !echo.Equal(t) {
		return ErrEchoMismatch
	}
	slog.Debug("Table echo verified")
	return nil
}
