package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-duallfo/duallfo/wavetable"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{7, 7},
		{255, 255},
		{256, 0},
		{257, 1},
		{512, 0},
		{-1, 255},
		{-256, 0},
		{-257, 255},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.in), "Wrap(%d)", tt.in)
	}
}

func TestPulse8_EndToEnd(t *testing.T) {
	table := wavetable.Pulse8()
	indices := []int{0, 4, 7, 8, 100, 255, 256}
	expected := []uint8{255, 255, 255, 0, 0, 0, 255}

	got := make([]uint8, 0, len(indices))
	for _, i := range indices {
		got = append(got, table.Sample(Wrap(i)))
	}
	assert.Equal(t, expected, got)
}

func TestCursor_Advance(t *testing.T) {
	c := New(100)
	assert.Equal(t, 0, c.Index())

	c.Advance()
	assert.Equal(t, 100, c.Index())
	c.Advance()
	assert.Equal(t, 200, c.Index())
	c.Advance()
	assert.Equal(t, 44, c.Index(), "300 wraps to 44")

	c.SetStep(-50)
	c.Advance()
	assert.Equal(t, 250, c.Index(), "-6 wraps to 250")
	assert.Equal(t, -50, c.Step())
}

func TestCursor_SeekReset(t *testing.T) {
	c := New(1)
	c.Seek(-3)
	assert.Equal(t, 253, c.Index())

	c.Reset()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, c.Step(), "reset keeps the step")
}

func TestCursor_NextFullPeriod(t *testing.T) {
	table := wavetable.Pulse8()
	c := New(1)

	high := 0
	for i := 0; i < wavetable.Size; i++ {
		if c.Next(&table) == wavetable.High {
			high++
		}
	}
	assert.Equal(t, 8, high)
	assert.Equal(t, 0, c.Index(), "one full period brings the cursor home")

	// second period starts high again
	assert.Equal(t, wavetable.High, c.Next(&table))
}

func TestCursor_ZeroStepHolds(t *testing.T) {
	table := wavetable.Pulse8()
	c := New(0)
	c.Seek(3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, wavetable.High, c.Next(&table))
	}
	assert.Equal(t, 3, c.Index())
}
