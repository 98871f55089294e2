package backend

import (
	"github.com/valerio/go-duallfo/duallfo/input/action"
	"github.com/valerio/go-duallfo/duallfo/wavetable"
)

// Backend presents the monitor's state (terminal scope, headless trace, ...).
// Backends are responsible for:
// - Showing each frame on their specific output
// - Translating platform-specific input to Actions
// - Handling backend-specific features (traces, progress logging)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config Config) error

	// Update presents one frame and returns any input gathered since the
	// previous call.
	Update(frame Frame) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// Config holds configuration for backends
type Config struct {
	Title   string
	Table   wavetable.Table // Table being stepped, for backends that plot it
	LEDs    int             // Number of LEDs on the bar
	Verbose bool
}

// Frame is the state after one tick.
type Frame struct {
	Tick   uint64
	Index  int    // Index that was read
	Sample uint8  // Value read at Index
	Step   int    // Cursor step in effect
	LEDs   uint16 // Bar state, bit i for LED i
	Paused bool
}

// InputEvent carries an action requested by the backend.
type InputEvent struct {
	Action action.Action
}
