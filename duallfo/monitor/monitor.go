// Package monitor steps a wavetable with a consumer-owned cursor, shows each
// sample on an LED bar and hands the result to a backend.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/go-duallfo/duallfo/backend"
	"github.com/valerio/go-duallfo/duallfo/input/action"
	"github.com/valerio/go-duallfo/duallfo/ledbar"
	"github.com/valerio/go-duallfo/duallfo/phase"
	"github.com/valerio/go-duallfo/duallfo/timing"
	"github.com/valerio/go-duallfo/duallfo/wavetable"
)

// MaxStep bounds the cursor step reachable through StepUp/StepDown actions.
const MaxStep = wavetable.Size / 2

// Config holds everything a Monitor needs.
type Config struct {
	Title   string
	Table   wavetable.Table
	Step    int
	Bar     *ledbar.Bar
	Backend backend.Backend
	Limiter timing.Limiter // nil means no pacing
	Verbose bool
}

// Monitor is the tick loop.
type Monitor struct {
	title   string
	table   wavetable.Table
	cursor  *phase.Cursor
	bar     *ledbar.Bar
	backend backend.Backend
	limiter timing.Limiter
	verbose bool

	tick    uint64
	paused  bool
	running bool
}

func New(cfg Config) (*Monitor, error) {
	if cfg.Backend == nil {
		return nil, errors.New("monitor: backend is required")
	}
	if cfg.Bar == nil {
		return nil, errors.New("monitor: LED bar is required")
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	return &Monitor{
		title:   cfg.Title,
		table:   cfg.Table,
		cursor:  phase.New(cfg.Step),
		bar:     cfg.Bar,
		backend: cfg.Backend,
		limiter: limiter,
		verbose: cfg.Verbose,
		running: true,
	}, nil
}

// Run initializes the backend and ticks until the backend asks to quit,
// ctx is cancelled or an error occurs.
func (m *Monitor) Run(ctx context.Context) (err error) {
	err = m.backend.Init(backend.Config{
		Title:   m.title,
		Table:   m.table,
		LEDs:    m.bar.Len(),
		Verbose: m.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if cerr := m.backend.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to clean up backend: %w", cerr)
		}
		if cerr := m.bar.Clear(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to clear LED bar: %w", cerr)
		}
	}()

	m.limiter.Reset()
	for m.running {
		select {
		case <-ctx.Done():
			slog.Info("Monitor stopped", "ticks", m.tick, "reason", ctx.Err())
			return ctx.Err()
		default:
		}

		if _, err := m.Tick(); err != nil {
			return err
		}
		m.limiter.WaitForNextTick()
	}

	slog.Info("Monitor finished", "ticks", m.tick)
	return nil
}

// Tick reads one sample, shows it on the bar and passes the frame to the
// backend. While paused the cursor stays put and the last frame is repeated.
func (m *Monitor) Tick() (backend.Frame, error) {
	index := m.cursor.Index()
	sample := m.table.Sample(index)

	if err := m.bar.DisplayNum(int(sample)); err != nil {
		return backend.Frame{}, fmt.Errorf("failed to update LED bar: %w", err)
	}

	frame := backend.Frame{
		Tick:   m.tick,
		Index:  index,
		Sample: sample,
		Step:   m.cursor.Step(),
		LEDs:   m.bar.Value(),
		Paused: m.paused,
	}

	events, err := m.backend.Update(frame)
	if err != nil {
		return frame, fmt.Errorf("backend update failed: %w", err)
	}

	if !m.paused {
		m.cursor.Advance()
		m.tick++
	}

	for _, ev := range events {
		m.handleAction(ev.Action)
	}

	return frame, nil
}

func (m *Monitor) handleAction(act action.Action) {
	slog.Debug("Monitor action", "action", act)

	switch act {
	case action.MonitorQuit:
		m.running = false
	case action.MonitorPauseToggle:
		m.paused = !m.paused
		m.limiter.Reset()
	case action.MonitorStepUp:
		if m.cursor.Step() < MaxStep {
			m.cursor.SetStep(m.cursor.Step() + 1)
		}
	case action.MonitorStepDown:
		if m.cursor.Step() > -MaxStep {
			m.cursor.SetStep(m.cursor.Step() - 1)
		}
	case action.MonitorReset:
		m.cursor.Reset()
	}
}

// Running reports whether the loop has not been asked to quit.
func (m *Monitor) Running() bool {
	return m.running
}

func (m *Monitor) Paused() bool {
	return m.paused
}

// Index returns the cursor position that the next tick will read.
func (m *Monitor) Index() int {
	return m.cursor.Index()
}

func (m *Monitor) Step() int {
	return m.cursor.Step()
}
