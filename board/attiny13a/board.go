// ATtiny13A reference board
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package attiny13a

import (
	"github.com/kelpie-labs/aquatend/board"
	"github.com/kelpie-labs/aquatend/internal/reg"
)

type attiny13a struct {
	button    pin
	pump1     pin
	pump2     pin
	overflow1 pin
	overflow2 pin
	wdt       watchdog
	timer     millisTimer
	sleep     sleeper
}

// New returns the reference board: button on PORTB pin 0, pump 1 on pin 3,
// pump 2 on pin 4, overflow sensor 1 on pin 1, overflow sensor 2 on pin 2.
func New() board.Board {
	return &attiny13a{
		button:    pin{num: pinButton},
		pump1:     pin{num: pinPump1},
		pump2:     pin{num: pinPump2},
		overflow1: pin{num: pinOverflow1},
		overflow2: pin{num: pinOverflow2},
	}
}

func (b *attiny13a) Button() board.Pin { return b.button }

func (b *attiny13a) Pump(n int) board.Pin {
	switch n {
	case 1:
		return b.pump1
	case 2:
		return b.pump2
	default:
		panic("attiny13a: invalid pump number")
	}
}

func (b *attiny13a) Overflow(n int) board.Pin {
	switch n {
	case 1:
		return b.overflow1
	case 2:
		return b.overflow2
	default:
		panic("attiny13a: invalid overflow sensor number")
	}
}

func (b *attiny13a) Watchdog() board.HardwareWatchdog { return b.wdt }
func (b *attiny13a) Timer() board.MillisTimer         { return b.timer }
func (b *attiny13a) Sleep() board.Sleeper             { return b.sleep }

// EnablePinChangeInterrupt arms the button line's pin-change interrupt,
// leaving any other pin's interrupt mask bit untouched.
func (b *attiny13a) EnablePinChangeInterrupt() {
	reg.Set(pcmsk, pinButton)
}

// DisablePinChangeInterrupt disarms the button line's pin-change interrupt.
// It does not retract an interrupt already queued for servicing.
func (b *attiny13a) DisablePinChangeInterrupt() {
	reg.Clear(pcmsk, pinButton)
}

// DisableUnusedPeripherals configures the entire output port low, enables
// the button and overflow sensor pins with their pull-ups, and arms the
// pin-change interrupt. The ADC, analog comparator and similar unused
// peripherals on this chip have no register modeled here since nothing in
// this firmware ever enables them in the first place.
func (b *attiny13a) DisableUnusedPeripherals() {
	reg.Write(ddrb, 0)
	reg.Write(portb, 0)

	b.button.In()
	b.button.High() // enable pull-up

	b.overflow1.In()
	b.overflow1.High()
	b.overflow2.In()
	b.overflow2.High()

	b.pump1.Out()
	b.pump2.Out()

	reg.Set(gimsk, gimskPCIE)
	b.EnablePinChangeInterrupt()
}
