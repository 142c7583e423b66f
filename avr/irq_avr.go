// AVR processor support
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo

package avr

// cli and sei are implemented in irq_avr.s as single-instruction wrappers
// around the AVR CLI/SEI opcodes.
func cli()
func sei()

// interruptsEnabled reports the current global interrupt enable state by
// reading the status register's I-bit.
func interruptsEnabled() bool {
	return sregI()
}

// sregI is implemented in irq_avr.s, returning the status register's I-bit.
func sregI() bool
