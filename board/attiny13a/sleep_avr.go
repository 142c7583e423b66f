// ATtiny13A sleep control
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo

package attiny13a

// sleepCPU is implemented in sleep_avr.s, a single-instruction wrapper
// around the AVR SLEEP opcode.
func sleepCPU()
