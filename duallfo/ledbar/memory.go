package ledbar

import (
	"fmt"
	"sync"
)

// MemoryDriver is a PinDriver that keeps pin levels in memory. It backs the
// bar on hosts without GPIO and in tests.
type MemoryDriver struct {
	mu         sync.Mutex
	configured map[Pin]bool
	levels     map[Pin]bool
	writes     int
}

func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{
		configured: make(map[Pin]bool),
		levels:     make(map[Pin]bool),
	}
}

func (d *MemoryDriver) ConfigureOutput(pin Pin) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.configured[pin] = true
	return nil
}

func (d *MemoryDriver) SetPin(pin Pin, high bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.configured[pin] {
		return fmt.Errorf("pin %d not configured as output", pin)
	}
	d.levels[pin] = high
	d.writes++
	return nil
}

// Level reports the last level written to pin.
func (d *MemoryDriver) Level(pin Pin) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.levels[pin]
}

// Writes returns how many SetPin calls succeeded.
func (d *MemoryDriver) Writes() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.writes
}
