package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/valerio/go-duallfo/duallfo/backend"
	"github.com/valerio/go-duallfo/duallfo/bit"
	"github.com/valerio/go-duallfo/duallfo/input/action"
	"github.com/valerio/go-duallfo/duallfo/wavetable"
)

const (
	maxPlotHeight = 16
	minTermWidth  = 40
	minTermHeight = 12
	logLines      = 100
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	traceStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	ledOnStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	ledOffStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	logStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen tcell.Screen
	config backend.Config

	logs       *LogBuffer
	prevLogger *slog.Logger

	mu      sync.Mutex
	pending []backend.InputEvent

	cancel context.CancelFunc
	group  *errgroup.Group
}

// New creates a terminal backend on the process terminal
func New() *Backend {
	return &Backend{}
}

// NewWithScreen creates a terminal backend drawing on screen, which is
// initialized by Init.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the screen and starts the input loop
func (t *Backend) Init(config backend.Config) error {
	t.config = config

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %v", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	level := slog.LevelInfo
	if config.Verbose {
		level = slog.LevelDebug
	}
	t.logs = NewLogBuffer(logLines)
	t.prevLogger = slog.Default()
	slog.SetDefault(slog.New(newLogHandler(t.logs, level)))

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.group, ctx = errgroup.WithContext(ctx)
	t.group.Go(func() error {
		return t.pollInput(ctx)
	})

	slog.Info("Terminal backend initialized", "title", config.Title, "leds", config.LEDs)
	return nil
}

// Update draws the frame and returns the actions queued since the last call
func (t *Backend) Update(frame backend.Frame) ([]backend.InputEvent, error) {
	t.render(frame)
	t.screen.Show()

	t.mu.Lock()
	events := t.pending
	t.pending = nil
	t.mu.Unlock()

	return events, nil
}

// Cleanup stops the input loop and restores the terminal
func (t *Backend) Cleanup() error {
	if t.screen == nil {
		return nil
	}
	slog.Info("Cleaning up terminal backend")

	if t.cancel != nil {
		t.cancel()
	}
	// Fini unblocks PollEvent
	t.screen.Fini()

	var err error
	if t.group != nil {
		err = t.group.Wait()
	}
	if t.prevLogger != nil {
		slog.SetDefault(t.prevLogger)
	}
	return err
}

func (t *Backend) pollInput(ctx context.Context) error {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if act, ok := keyAction(ev); ok {
				slog.Debug("Key event", "key", ev.Name(), "action", act)
				t.queue(act)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *Backend) queue(act action.Action) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(t.pending, backend.InputEvent{Action: act})
}

var keyMapping = map[tcell.Key]action.Action{
	tcell.KeyEscape: action.MonitorQuit,
	tcell.KeyCtrlC:  action.MonitorQuit,
	tcell.KeyUp:     action.MonitorStepUp,
	tcell.KeyDown:   action.MonitorStepDown,
}

var runeMapping = map[rune]action.Action{
	'q': action.MonitorQuit,
	' ': action.MonitorPauseToggle,
	'+': action.MonitorStepUp,
	'=': action.MonitorStepUp,
	'-': action.MonitorStepDown,
	'r': action.MonitorReset,
}

func keyAction(ev *tcell.EventKey) (action.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		act, ok := runeMapping[ev.Rune()]
		return act, ok
	}
	act, ok := keyMapping[ev.Key()]
	return act, ok
}

func (t *Backend) render(frame backend.Frame) {
	t.screen.Clear()
	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		drawText(t.screen, 0, 0, termWidth, titleStyle,
			fmt.Sprintf("Terminal too small (%dx%d, need %dx%d)", termWidth, termHeight, minTermWidth, minTermHeight))
		return
	}

	status := fmt.Sprintf("%s  index=%3d  sample=%3d  step=%d  tick=%d",
		t.config.Title, frame.Index, frame.Sample, frame.Step, frame.Tick)
	if frame.Paused {
		status += "  [PAUSED]"
	}
	drawText(t.screen, 0, 0, termWidth, titleStyle, status)

	plotHeight := termHeight - 8
	if plotHeight > maxPlotHeight {
		plotHeight = maxPlotHeight
	}
	top := 2
	t.drawPlot(top, termWidth, plotHeight, frame.Index)

	ledRow := top + plotHeight + 2
	t.drawLEDs(ledRow, frame.LEDs)

	logTop := ledRow + 2
	helpRow := termHeight - 1
	if n := helpRow - logTop; n > 0 {
		for i, entry := range t.logs.Recent(n) {
			drawText(t.screen, 0, logTop+i, termWidth, logStyle, FormatLogEntry(entry))
		}
	}
	drawText(t.screen, 0, helpRow, termWidth, helpStyle, "q quit  space pause  +/- step  r reset")
}

func (t *Backend) drawPlot(top, width, height, cursor int) {
	for col := 0; col < width; col++ {
		row := plotRow(&t.config.Table, col, width, height)
		t.screen.SetContent(col, top+row, '█', nil, traceStyle)
	}
	t.screen.SetContent(cursorColumn(cursor, width), top+height, '▲', nil, cursorStyle)
}

// drawLEDs shows the bar with LED 0 on the left, matching pin order.
func (t *Backend) drawLEDs(row int, leds uint16) {
	drawText(t.screen, 0, row, 5, textStyle, "LEDs ")
	for i := 0; i < t.config.LEDs; i++ {
		r, style := '○', ledOffStyle
		if bit.IsSet(uint16(i), leds) {
			r, style = '●', ledOnStyle
		}
		t.screen.SetContent(5+2*i, row, r, nil, style)
	}
}

// plotRow returns the row, counted from the top of a plot of height rows,
// where column col of a width-column plot of t is drawn.
func plotRow(t *wavetable.Table, col, width, height int) int {
	index := col * wavetable.Size / width
	level := int(t.Sample(index)) * (height - 1) / int(wavetable.High)
	return height - 1 - level
}

// cursorColumn maps a table index onto a width-column plot.
func cursorColumn(index, width int) int {
	return index * width / wavetable.Size
}

func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}
