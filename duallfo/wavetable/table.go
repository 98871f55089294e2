// Package wavetable provides fixed-length 8-bit waveform tables that LFO
// routines step through, one sample per tick.
//
// Tables are plain arrays: they are copied by value, so a caller can never
// modify the package-level instances. On TinyGo targets the instances are
// read-only data and end up in flash.
package wavetable

//go:generate go run ../../cmd/gentable -high 8 -o pulse8.go

const (
	// Size is the number of samples in one waveform period.
	Size = 256

	// High is the full-scale sample value
	High uint8 = 0xFF
	// Low is the zero-level sample value
	Low uint8 = 0x00
)

// Table is one period of a waveform.
type Table [Size]uint8

// Pulse8 returns the 8-sample pulse wave (duty cycle 8/256).
func Pulse8() Table {
	return pulse8
}

// Sample returns the sample at index.
// The index must already be wrapped into [0, Size); the table does no range
// handling of its own and an out-of-range index panics.
func (t *Table) Sample(index int) uint8 {
	return t[index]
}

// Len always returns Size.
func (t *Table) Len() int {
	return len(t)
}

// Bytes returns a copy of the samples in index order.
func (t *Table) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, t[:])
	return b
}

// DutyCycle returns the fraction of the period spent at High.
func (t *Table) DutyCycle() float64 {
	high := 0
	for _, s := range t {
		if s == High {
			high++
		}
	}
	return float64(high) / float64(Size)
}

func (t *Table) Equal(other Table) bool {
	return *t == other
}
