// AVR processor support
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo

package avr

// delayMillisStep is implemented in delay_avr.s: a fixed-cycle-count busy
// loop calibrated to the 8MHz clock.
func delayMillisStep()
