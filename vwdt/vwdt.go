// Long-interval virtual watchdog
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package vwdt implements the long-interval virtual watchdog: it synthesises
// sleeps of up to ~24 hours from a hardware watchdog peripheral whose
// single-shot intervals are limited to the discrete set {1, 2, 4, 8}
// seconds, by repeatedly rearming the hardware interval and subtracting
// elapsed time until the requested duration has elapsed.
package vwdt

import (
	"github.com/kelpie-labs/aquatend/avr"
	"github.com/kelpie-labs/aquatend/board"
	"github.com/kelpie-labs/aquatend/event"
	"github.com/kelpie-labs/aquatend/halt"
)

// supportedIntervals lists the hardware watchdog intervals, in descending
// order, per Table 8-2 of the ATtiny13A datasheet.
var supportedIntervals = [...]uint8{8, 4, 2, 1}

// VirtualWatchdog is the long-interval countdown built on top of a
// board.HardwareWatchdog. There is exactly one of these for the life of the
// program; see Watchdog.
type VirtualWatchdog struct {
	board board.Board
	hw    board.HardwareWatchdog

	// remaining is the user-requested countdown, in seconds.
	remaining uint32

	// currentInterval is the duration, in seconds, of the hardware interval
	// currently armed. Always one of {1, 2, 4, 8} while armed, 0 at rest.
	currentInterval uint8
}

// Watchdog is the process-wide virtual watchdog, in the singleton style of
// event.Flags: exactly one countdown exists, addressed by this variable
// rather than threaded through every caller.
var Watchdog VirtualWatchdog

// Init wires the virtual watchdog to the board it programs. The board is
// kept (not just its HardwareWatchdog) so that an internal invariant
// violation can call halt.Halt with it. MUST be called once, during
// startup, before Arm/Cancel/Tick.
func (w *VirtualWatchdog) Init(b board.Board) {
	w.board = b
	w.hw = b.Watchdog()
}

// Arm replaces any in-progress countdown with one lasting approximately
// seconds, posting event.WDT no earlier than approximately that long after
// Arm returns. Arm(0) posts event.WDT immediately without arming the
// hardware. Always leaves interrupts enabled on return; the caller does not
// need to have entered Arm with interrupts already disabled.
func (w *VirtualWatchdog) Arm(seconds uint32) {
	avr.CriticalForceOn(func() {
		w.remaining = seconds
		w.configureSleep()
	})
}

// Cancel disables the hardware watchdog and clears the countdown. It does
// NOT clear a WDT flag already posted to event.Flags; callers that want that
// must clear it separately.
func (w *VirtualWatchdog) Cancel() {
	avr.Critical(func() {
		w.hw.Disable()
		w.remaining = 0
		w.currentInterval = 0
	})
}

// Tick processes one hardware watchdog interrupt: subtract the interval
// that just elapsed (saturating, in case remaining is no longer a multiple
// of the chosen interval near zero), then rearm or complete. MUST only be
// called from interrupt context (or with interrupts already masked).
func (w *VirtualWatchdog) Tick() {
	if w.remaining >= uint32(w.currentInterval) {
		w.remaining -= uint32(w.currentInterval)
	} else {
		w.remaining = 0
	}

	w.configureSleep()
}

// configureSleep selects and arms the largest supported hardware interval
// not exceeding remaining, or disables the watchdog and posts event.WDT
// immediately if remaining has reached zero. MUST be called with interrupts
// masked.
func (w *VirtualWatchdog) configureSleep() {
	if w.remaining == 0 {
		w.hw.Disable()
		w.currentInterval = 0
		event.Flags.Set(event.WDT)
		return
	}

	iv := w.maximalInterval(w.remaining)
	w.currentInterval = iv
	w.hw.Configure(iv)
}

// maximalInterval returns the largest of supportedIntervals not exceeding
// remaining. remaining is guaranteed non-zero by configureSleep, so this
// always finds a match; reaching the end of the list is an internal
// invariant violation.
func (w *VirtualWatchdog) maximalInterval(remaining uint32) uint8 {
	for _, iv := range supportedIntervals {
		if remaining >= uint32(iv) {
			return iv
		}
	}

	halt.Halt(w.board)
	return 0
}
