// Package ledbar drives a bar of LEDs wired to consecutive output pins and
// shows a number on it in binary, least significant bit on the first pin.
package ledbar

import (
	"errors"
	"fmt"

	"github.com/valerio/go-duallfo/duallfo/bit"
)

// MaxLength is the longest bar supported.
const MaxLength = 16

var ErrLength = errors.New("ledbar: length must be between 1 and 16")

// Bar is an LED bar on pins first .. first+length-1.
type Bar struct {
	driver PinDriver
	first  Pin
	length int
	value  uint16
}

// New configures every pin of the bar as an output and turns it off.
func New(driver PinDriver, first Pin, length int) (*Bar, error) {
	if length < 1 || length > MaxLength {
		return nil, fmt.Errorf("%w: got %d", ErrLength, length)
	}
	if int(first)+length-1 > 0xFF {
		return nil, fmt.Errorf("ledbar: pins %d..%d out of range", first, int(first)+length-1)
	}

	b := &Bar{
		driver: driver,
		first:  first,
		length: length,
	}
	for i := 0; i < length; i++ {
		pin := first + Pin(i)
		if err := driver.ConfigureOutput(pin); err != nil {
			return nil, fmt.Errorf("failed to configure pin %d: %w", pin, err)
		}
		if err := driver.SetPin(pin, false); err != nil {
			return nil, fmt.Errorf("failed to clear pin %d: %w", pin, err)
		}
	}
	return b, nil
}

// DisplayNum shows the low Len() bits of n. Higher bits are ignored.
func (b *Bar) DisplayNum(n int) error {
	var shown uint16
	for i := 0; i < b.length; i++ {
		on := bit.IsSet(uint16(i), uint16(n))
		if err := b.driver.SetPin(b.first+Pin(i), on); err != nil {
			return fmt.Errorf("failed to set pin %d: %w", b.first+Pin(i), err)
		}
		shown = bit.Assign(uint16(i), shown, on)
	}
	b.value = shown
	return nil
}

// Clear turns every LED off.
func (b *Bar) Clear() error {
	return b.DisplayNum(0)
}

// Value returns the bits currently shown, bit i for LED i.
func (b *Bar) Value() uint16 {
	return b.value
}

func (b *Bar) Len() int {
	return b.length
}
