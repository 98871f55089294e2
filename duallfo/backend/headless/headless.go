package headless

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/valerio/go-duallfo/duallfo/backend"
	"github.com/valerio/go-duallfo/duallfo/bit"
	"github.com/valerio/go-duallfo/duallfo/input/action"
)

// Backend implements the Backend interface for automated testing and batch processing
type Backend struct {
	config      backend.Config
	tickCount   int
	maxTicks    int
	traceConfig TraceConfig

	trace     *bufio.Writer
	traceFile *os.File
}

// TraceConfig holds configuration for the per-tick text trace
type TraceConfig struct {
	Enabled bool
	Path    string    // File to write the trace to, used when Writer is nil
	Writer  io.Writer // Destination for the trace, takes precedence over Path
}

func New(maxTicks int, traceConfig TraceConfig) *Backend {
	return &Backend{
		maxTicks:    maxTicks,
		traceConfig: traceConfig,
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	if config.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	if h.traceConfig.Enabled {
		w := h.traceConfig.Writer
		if w == nil {
			f, err := os.Create(h.traceConfig.Path)
			if err != nil {
				return fmt.Errorf("failed to create trace file: %w", err)
			}
			h.traceFile = f
			w = f
		}
		h.trace = bufio.NewWriter(w)
	}

	slog.Info("Running headless mode",
		"ticks", h.maxTicks,
		"trace", h.traceConfig.Enabled,
		"trace_path", h.traceConfig.Path)

	return nil
}

// Update records a frame and signals quit once the tick budget is spent
func (h *Backend) Update(frame backend.Frame) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	h.tickCount++

	if h.trace != nil {
		_, err := fmt.Fprintf(h.trace, "%d %d %d %s\n",
			frame.Tick, frame.Index, frame.Sample,
			bit.String(frame.LEDs, h.config.LEDs, '1', '0'))
		if err != nil {
			return nil, fmt.Errorf("failed to write trace: %w", err)
		}
	}

	// Log progress periodically
	if h.tickCount%256 == 0 {
		slog.Debug("Tick progress", "completed", h.tickCount, "total", h.maxTicks)
	}

	if h.tickCount >= h.maxTicks {
		slog.Info("Headless execution completed", "ticks", h.maxTicks)
		events = append(events, backend.InputEvent{Action: action.MonitorQuit})
	}

	return events, nil
}

func (h *Backend) Cleanup() error {
	if h.trace != nil {
		if err := h.trace.Flush(); err != nil {
			return fmt.Errorf("failed to flush trace: %w", err)
		}
	}
	if h.traceFile != nil {
		if err := h.traceFile.Close(); err != nil {
			return fmt.Errorf("failed to close trace file: %w", err)
		}
		h.traceFile = nil
	}
	return nil
}

// Ticks returns the number of frames seen so far
func (h *Backend) Ticks() int {
	return h.tickCount
}

// CreateTraceConfig creates a trace configuration from CLI parameters
func CreateTraceConfig(path string) (TraceConfig, error) {
	config := TraceConfig{
		Enabled: path != "",
		Path:    path,
	}

	if !config.Enabled {
		return config, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return config, fmt.Errorf("failed to create trace directory: %v", err)
		}
	}

	return config, nil
}
