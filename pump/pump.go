// Two-pump watering routine
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package pump implements the two-pump watering routine: a single entry
// point resumed across virtual-watchdog wakes, its next step recovered
// entirely from the observable pump-pin levels, with no RAM state kept
// between activations. A spurious reset mid-cycle therefore resumes
// coherently.
package pump

import (
	"github.com/kelpie-labs/aquatend/avr"
	"github.com/kelpie-labs/aquatend/board"
	"github.com/kelpie-labs/aquatend/halt"
	"github.com/kelpie-labs/aquatend/nvram"
	"github.com/kelpie-labs/aquatend/vwdt"
)

// standardIntervalSeconds is the long watering interval re-armed after a
// full two-pump cycle completes.
const standardIntervalSeconds uint32 = 24 * 60 * 60

// settleMillis is the pause between switching pump 1 off and considering
// pump 2, to let current settle.
const settleMillis uint16 = 200

// flashMillis is the on/off duration of each triple-flash pulse used as a
// visual "this pump was skipped" indicator.
const flashMillis uint16 = 100

// State is the pump FSM's next step, decoded from the pump pin levels at
// entry.
type State int

const (
	// Pump1On: both pumps read low, the start of a watering cycle. Start
	// pump 1, or skip it (reservoir full) and fall through toward pump 2.
	Pump1On State = iota

	// Pump1Off: pump 1 reads high. Turn pump 1 off and fall through to
	// consider pump 2.
	Pump1Off

	// Pump2On: start pump 2, or skip it (reservoir full) and finish the
	// cycle. Never decoded directly from the pins; reached only by
	// falling through from Pump1Off.
	Pump2On

	// Pump2Off: pump 2 reads high, the end of a watering cycle. Turn
	// pump 2 off and arm the next long interval.
	Pump2Off

	// invalid: both pumps read high. This routine never produces that
	// pin configuration itself; observing it is a fatal invariant
	// violation.
	invalid
)

// b is the process-wide board Run acts on, wired by Init.
var b board.Board

// Init wires the package to the board whose pump and overflow pins it
// drives. MUST be called once during startup.
func Init(board board.Board) {
	b = board
}

// DecodeState recovers the routine's next step from the current pump pin
// levels.
func DecodeState(pump1High, pump2High bool) State {
	switch {
	case !pump1High && !pump2High:
		return Pump1On
	case pump1High && !pump2High:
		return Pump1Off
	case !pump1High && pump2High:
		return Pump2Off
	default:
		return invalid
	}
}

// Run performs exactly one forward step of the two-pump routine (possibly
// across several fall-through sub-steps), arms the virtual watchdog for the
// next wake, and returns. Never blocks longer than the brief inter-pump
// settling delay and the (skip-only) triple-flash.
//
// The overflow sensors are active-low: Value() true means "OK to pump",
// false means "reservoir full, skip this pump".
func Run() {
	switch DecodeState(b.Pump(1).Value(), b.Pump(2).Value()) {
	case Pump1On:
		if b.Overflow(1).Value() {
			b.Pump(1).High()
			vwdt.Watchdog.Arm(uint32(nvram.PumpOnSeconds()))
			return
		}
		tripleFlash(b.Pump(1))
		fallthrough

	case Pump1Off:
		b.Pump(1).Low()
		avr.DelayMillis(settleMillis)
		fallthrough

	case Pump2On:
		if b.Overflow(2).Value() {
			b.Pump(2).High()
			vwdt.Watchdog.Arm(uint32(nvram.PumpOnSeconds()))
			return
		}
		tripleFlash(b.Pump(2))
		fallthrough

	case Pump2Off:
		b.Pump(2).Low()
		vwdt.Watchdog.Arm(standardIntervalSeconds)

	default:
		halt.Halt(b)
	}
}

// tripleFlash briefly energises pin three times (3 × 100ms on / 100ms off),
// exploiting that a momentary pulse has no appreciable watering effect, to
// visually indicate a skipped (reservoir-full) pump.
func tripleFlash(pin board.Pin) {
	for i := 0; i < 3; i++ {
		pin.High()
		avr.DelayMillis(flashMillis)
		pin.Low()
		avr.DelayMillis(flashMillis)
	}
}
