// AVR processor support
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package avr provides the cpu-level primitives this firmware is built on:
// global interrupt masking, critical sections, and busy-wait delays, for an
// 8-bit, single-core target with no cache and no MMU.
package avr

// EnableInterrupts globally enables interrupts (the AVR SEI instruction).
func EnableInterrupts() {
	sei()
}

// DisableInterrupts globally disables interrupts (the AVR CLI instruction).
func DisableInterrupts() {
	cli()
}

// Critical runs fn with interrupts disabled, restoring the interrupt enable
// state that was in effect before the call (avr-libc's
// ATOMIC_BLOCK(ATOMIC_RESTORESTATE)).
//
// Use this for read-modify-write sequences on state shared with an ISR where
// the caller may already be running from within another critical section
// (nesting must not unconditionally re-enable interrupts on exit).
func Critical(fn func()) {
	wasEnabled := interruptsEnabled()
	cli()
	fn()
	if wasEnabled {
		sei()
	}
}

// CriticalForceOn runs fn with interrupts disabled, then unconditionally
// re-enables interrupts on return regardless of the prior state (avr-libc's
// ATOMIC_BLOCK(ATOMIC_FORCEON)).
func CriticalForceOn(fn func()) {
	cli()
	fn()
	sei()
}
