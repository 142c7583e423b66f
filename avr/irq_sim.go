// AVR processor support
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tinygo

package avr

// On a host build (tests, the simulation harness in cmd/aquatend-sim) there
// is no real interrupt controller to mask. This firmware has exactly one
// logical thread of control plus "interrupts" delivered synchronously by the
// fake board, so a plain package-level flag faithfully models the single-core
// semantics without needing atomics.
var enabled = true

func cli() {
	enabled = false
}

func sei() {
	enabled = true
}

func interruptsEnabled() bool {
	return enabled
}
