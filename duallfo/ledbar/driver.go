package ledbar

// Pin identifies a digital output pin.
type Pin uint8

// PinDriver is the GPIO interface the bar drives.
// Platform-specific implementations handle actual hardware control.
type PinDriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin Pin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin Pin, high bool) error
}
