// Debounced push-button handler
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package button implements the debounced push-button handler: a short
// press (<1s) runs a manual test cycle of the pump routine, a long press
// (≥1s) records the hold duration as the new pump-on duration.
package button

import (
	"github.com/kelpie-labs/aquatend/board"
	"github.com/kelpie-labs/aquatend/event"
	"github.com/kelpie-labs/aquatend/mstimer"
	"github.com/kelpie-labs/aquatend/nvram"
	"github.com/kelpie-labs/aquatend/pump"
	"github.com/kelpie-labs/aquatend/vwdt"
)

// debouncedDown and debouncedUp are the two steady states of the 8-bit
// shift-register debounce accumulator: eight consecutive samples of the
// same level, roughly 8ms of stable contact, comfortably past typical
// pushbutton bounce while remaining responsive.
const (
	debouncedDown uint8 = 0x00
	debouncedUp   uint8 = 0xFF
)

// oneSecondMillis is the hold-duration threshold separating a test cycle
// from a configure-duration hold.
const oneSecondMillis uint32 = 1000

// standardIntervalSeconds is the long watering interval armed after a
// configure-duration hold completes.
const standardIntervalSeconds uint32 = 24 * 60 * 60

// Handler is the process-wide button handler.
type Handler struct {
	board board.Board
}

// Default is the process-wide button handler, in the singleton style used
// throughout this firmware.
var Default Handler

// Init wires the handler to the board whose button and pump 1 pins it
// drives. MUST be called once during startup.
func (h *Handler) Init(b board.Board) {
	h.board = b
}

// Handle runs the button-press handler. Entry precondition: a pin-change
// interrupt fired and posted event.BUTTON.
func (h *Handler) Handle() {
	b := h.board

	// First always stop the pumps, if running.
	b.Pump(1).Low()
	b.Pump(2).Low()

	// Do not allow more pin change interrupts to fire. This does NOT
	// retract an interrupt already queued on another pin, if any.
	b.DisablePinChangeInterrupt()

	// Cancel any armed virtual watchdog.
	vwdt.Watchdog.Cancel()

	// Clear the event flags: a pin-change or watchdog interrupt that
	// fired before being disabled above may have left flags pending.
	event.Flags.Reset()

	h.debounce()

	// Stop and power down the millisecond timer.
	mstimer.Ticker.Stop()

	// Re-enable pin change interrupts to allow this code to be reached
	// again.
	b.EnablePinChangeInterrupt()
}

// debounce runs the 8-sample shift-register debounce loop, blocking until
// the press has been classified and handled, or discarded as noise.
func (h *Handler) debounce() {
	b := h.board

	mstimer.Ticker.Start()

	// Start from a released history, so a debounced DOWN needs eight
	// consecutive pressed samples.
	acc := debouncedUp
	var lastMs uint8
	started := false

	for {
		// Wait for a tick event every ~1ms.
		for mstimer.Ticker.Millis() == lastMs {
		}
		lastMs = mstimer.Ticker.Millis()

		// Sample the button: 1 = released under pull-up, 0 = pressed.
		var sample uint8
		if b.Button().Value() {
			sample = 1
		}

		acc = acc<<1 | sample

		switch acc {
		case debouncedDown:
			if !started {
				started = true
				// The button has been depressed for the first time:
				// start measuring the hold. Reset the counter, then
				// lastMs, so a concurrently firing tick causes the
				// next busy-wait to unblock immediately rather than
				// missing a full millisecond.
				mstimer.Ticker.Start()
				lastMs = 0
				continue
			}

			if mstimer.Ticker.Elapsed() >= oneSecondMillis {
				b.Pump(1).High() // configure-gesture visual feedback
			}

		case debouncedUp:
			// Always ensure the feedback pump is now turned off.
			b.Pump(1).Low()

			if !started {
				return // noise: the press never debounced down
			}

			elapsed := mstimer.Ticker.Elapsed()

			if elapsed < oneSecondMillis {
				pump.Run()
				return
			}

			// Record the hold duration as the new pump-on duration.
			// The conversion truncates: a hold long enough to
			// overflow uint16 seconds is outside the operational
			// envelope, and the stored value simply wraps.
			nvram.SetPumpOnSeconds(uint16(elapsed / oneSecondMillis))
			vwdt.Watchdog.Arm(standardIntervalSeconds)
			return
		}
	}
}
