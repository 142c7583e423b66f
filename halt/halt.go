// Fatal halt
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package halt implements the fatal-halt primitive: drive all outputs low,
// disable all pull-ups, mask interrupts, enter permanent deep sleep, never
// return. It is invoked on any unrecoverable invariant violation (an
// illegal virtual-watchdog interval selection, the pump routine observing
// both pump pins high).
package halt

import (
	"github.com/kelpie-labs/aquatend/avr"
	"github.com/kelpie-labs/aquatend/board"
)

// Halt drives every named pin on b low (which, for the input pins, also
// disables their pull-up), masks interrupts, arms the deepest sleep mode,
// and never returns. Halt takes the board explicitly, rather than reaching
// for a package-level global, so that a test can pass a fakeboard and
// observe the call instead of the process actually blocking forever.
func Halt(b board.Board) {
	avr.DisableInterrupts()

	b.Button().Low()
	b.Pump(1).Low()
	b.Pump(2).Low()
	b.Overflow(1).Low()
	b.Overflow(2).Low()
	b.Sleep().ArmDeepSleep()

	loopForever(b)
}
