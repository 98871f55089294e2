//go:build tinygo

// Firmware that steps pulse8 on an LED bar wired to D2..D7.
package main

import (
	"machine"
	"time"

	"github.com/valerio/go-duallfo/duallfo/ledbar"
	"github.com/valerio/go-duallfo/duallfo/phase"
	"github.com/valerio/go-duallfo/duallfo/timing"
	"github.com/valerio/go-duallfo/duallfo/wavetable"
)

const barLength = 6

func main() {
	bar, err := ledbar.New(ledbar.MachineDriver{}, ledbar.Pin(machine.D2), barLength)
	if err != nil {
		halt()
	}

	table := wavetable.Pulse8()
	cursor := phase.New(1)
	interval := timing.TickDuration(timing.DefaultRate)

	for {
		if err := bar.DisplayNum(int(cursor.Next(&table))); err != nil {
			halt()
		}
		time.Sleep(interval)
	}
}

// halt lights the onboard LED and never returns.
func halt() {
	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		machine.LED.High()
		time.Sleep(time.Second)
	}
}
