// Package phase provides the consumer side of a wavetable: an index that is
// owned by the caller, advanced once per tick and wrapped at the table
// boundary before every read.
package phase

import "github.com/valerio/go-duallfo/duallfo/wavetable"

// Wrap maps any index, including negative ones, into [0, wavetable.Size).
func Wrap(i int) int {
	i %= wavetable.Size
	if i < 0 {
		i += wavetable.Size
	}
	return i
}

// Cursor walks a table with a fixed integer step.
type Cursor struct {
	index int
	step  int
}

// New creates a cursor at index 0.
func New(step int) *Cursor {
	return &Cursor{step: step}
}

func (c *Cursor) Index() int {
	return c.index
}

func (c *Cursor) Step() int {
	return c.step
}

// SetStep changes the step used by Advance. Negative steps walk backwards.
func (c *Cursor) SetStep(step int) {
	c.step = step
}

// Advance moves the cursor by one step, wrapping at the table boundary.
func (c *Cursor) Advance() {
	c.index = Wrap(c.index + c.step)
}

// Seek moves the cursor to i, wrapped.
func (c *Cursor) Seek(i int) {
	c.index = Wrap(i)
}

// Reset moves the cursor back to index 0 without touching the step.
func (c *Cursor) Reset() {
	c.index = 0
}

// Next reads the sample under the cursor and then advances it.
func (c *Cursor) Next(t *wavetable.Table) uint8 {
	s := t.Sample(c.index)
	c.Advance()
	return s
}
