// Event loop and startup wiring
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package firmware implements the event loop and the startup sequence that
// wires a concrete board into the core subsystems (event, vwdt, mstimer,
// button, pump).
package firmware

import (
	"github.com/kelpie-labs/aquatend/avr"
	"github.com/kelpie-labs/aquatend/board"
	"github.com/kelpie-labs/aquatend/button"
	"github.com/kelpie-labs/aquatend/event"
	"github.com/kelpie-labs/aquatend/mstimer"
	"github.com/kelpie-labs/aquatend/pump"
	"github.com/kelpie-labs/aquatend/vwdt"
)

// initialIntervalSeconds is the virtual-watchdog interval armed at startup,
// before the first watering cycle or button gesture has happened: the
// standard 24-hour watering interval.
const initialIntervalSeconds uint32 = 24 * 60 * 60

// Init wires b into every core subsystem, disables unused peripherals, and
// arms the initial watering interval, leaving the system ready for Run. It
// is split from Startup so the simulation harness can drive the event
// dispatch itself instead of entering the non-returning loop.
func Init(b board.Board) {
	vwdt.Watchdog.Init(b)
	mstimer.Ticker.Init(b)
	button.Default.Init(b)
	pump.Init(b)

	b.DisableUnusedPeripherals()

	vwdt.Watchdog.Arm(initialIntervalSeconds)
}

// Startup initialises the system and runs the event loop. Never returns.
func Startup(b board.Board) {
	Init(b)
	Run(b)
}

// Run is the event loop: never returns. Each iteration dispatches BUTTON
// before WDT (a button gesture always preempts pending watchdog work), then
// arms deep sleep using the race-free protocol in armSleep.
func Run(b board.Board) {
	for {
		// Flags are cleared after the handler returns, not before it
		// starts, so a same-flag interrupt firing mid-handler is
		// silently absorbed rather than queued for the next
		// iteration.
		if event.Flags.IsSet(event.BUTTON) {
			button.Default.Handle()
			event.Flags.Clear(event.BUTTON)
		}

		if event.Flags.IsSet(event.WDT) {
			pump.Run()
			event.Flags.Clear(event.WDT)
		}

		armSleep(b)
	}
}

// armSleep arms deep sleep without racing a concurrently posted event: mask
// interrupts, re-check for a pending flag (if one is now set, a handler is
// required, so unmask and loop again without sleeping), else select the
// deepest sleep mode, unmask interrupts, and execute the sleep instruction.
// The architecture guarantees the instruction immediately following
// unmasking runs before any pending interrupt is serviced, so arming the
// sleep-enable latch before unmasking and sleeping immediately after cannot
// miss a wakeup.
func armSleep(b board.Board) {
	avr.DisableInterrupts()

	if event.Flags.IsSet(event.BUTTON) || event.Flags.IsSet(event.WDT) {
		avr.EnableInterrupts()
		return
	}

	b.Sleep().ArmDeepSleep()
	avr.EnableInterrupts()
	b.Sleep().EnterDeepSleep()
}
