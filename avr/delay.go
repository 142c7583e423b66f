// AVR processor support
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package avr

// DelayMillis busy-waits for approximately ms milliseconds, used for the
// pump routine's inter-pump settling pause and the overflow-skip
// triple-flash. This MCU has no free-running cycle counter register to
// poll; the wait is a calibrated busy loop, the same technique avr-libc's
// _delay_ms macro uses.
func DelayMillis(ms uint16) {
	for i := uint16(0); i < ms; i++ {
		delayMillisStep()
	}
}
