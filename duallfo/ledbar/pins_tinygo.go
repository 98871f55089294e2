//go:build tinygo

package ledbar

import "machine"

// MachineDriver drives real GPIO pins through the TinyGo machine package.
type MachineDriver struct{}

func (MachineDriver) ConfigureOutput(pin Pin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (MachineDriver) SetPin(pin Pin, high bool) error {
	machine.Pin(pin).Set(high)
	return nil
}
