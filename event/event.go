// Pending-event flag set
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package event implements the interrupt-safe pending-event flag set shared
// between the two interrupt sources (the button's pin-change interrupt and
// the watchdog tick) and the main event loop.
package event

import "github.com/kelpie-labs/aquatend/avr"

// Flag identifies a single pending-event bit.
type Flag uint8

const (
	// WDT indicates the virtual watchdog's countdown has completed.
	WDT Flag = 1 << iota

	// BUTTON indicates a pin-change interrupt fired on the button line.
	BUTTON
)

type flagSet struct {
	bits uint8
}

// Flags is the process-wide pending-event flag set: there is exactly one of
// these for the life of the program, addressed by the exported variable
// rather than passed around.
//
// Set is called only from interrupt context (or with interrupts already
// masked), and is therefore a plain bit-or: on this class of MCU,
// interrupts are non-reentrant by default, so there is nothing for Set to
// race against. Clear is called from main context and must mask interrupts
// around its read-modify-write, since a concurrently firing ISR calling Set
// between the read and the write would otherwise have its bit silently
// dropped. This asymmetry is intentional, not an oversight.
var Flags flagSet

// Set raises flag. MUST only be called from interrupt context, or from main
// context within an avr.Critical/avr.CriticalForceOn section.
func (f *flagSet) Set(flag Flag) {
	f.bits |= uint8(flag)
}

// Reset clears every pending flag. This is a single store, not a
// read-modify-write, so it needs no masking: it can only ever lose a flag
// that an ISR is concurrently setting, which is the desired behavior when
// called from a handler that is defensively discarding stale events (see
// button.Handler, which resets flags that may have been raised while it was
// still tearing down the previous state).
func (f *flagSet) Reset() {
	f.bits = 0
}

// Clear lowers flag. Masks interrupts for the duration of the
// read-modify-write so a flag raised by an ISR between the read and the
// write is not lost.
func (f *flagSet) Clear(flag Flag) {
	avr.Critical(func() {
		f.bits &^= uint8(flag)
	})
}

// IsSet reports whether flag is currently raised. Safe to call from main
// context without masking: a torn read of a single byte is not possible on
// this architecture, and the caller only needs a momentary snapshot (the
// event loop re-checks under mask before committing to sleep).
func (f *flagSet) IsSet(flag Flag) bool {
	return f.bits&uint8(flag) != 0
}
