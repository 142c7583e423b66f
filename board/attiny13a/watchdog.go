// ATtiny13A watchdog timer
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package attiny13a

import "github.com/kelpie-labs/aquatend/internal/reg"

// watchdog implements board.HardwareWatchdog against WDTCR, using the
// two-step timed-change sequence the datasheet requires for updating the
// prescaler and enable bits.
//
// Callers always invoke Configure/Disable from within an avr.Critical
// section, so there is no masking here.
type watchdog struct{}

// Configure arms the watchdog to interrupt (not reset) after
// intervalSeconds. intervalSeconds must be one of {1, 2, 4, 8}; any other
// value is a programming error in the caller (vwdt has already done the
// greedy interval selection).
func (watchdog) Configure(intervalSeconds uint8) {
	prescaler, ok := wdtPrescaler[intervalSeconds]
	if !ok {
		panic("attiny13a: unsupported watchdog interval")
	}

	// In one operation, write a logic one to WDCE and WDE. A logic one
	// must be written to WDE regardless of its previous value.
	reg.Write(wdtcr, reg.Read(wdtcr)|1<<wdtcrWDCE|1<<wdtcrWDE)

	// Within the next four clock cycles, write the new prescaler bits
	// and WDIE, with WDE and WDCE cleared, in one operation — this
	// disables the watchdog *reset* while enabling its *interrupt*.
	reg.Write(wdtcr, 1<<wdtcrWDIE|prescaler)
}

// Disable stops the watchdog from raising further interrupts or resets,
// using the same timed-change sequence as Configure.
func (watchdog) Disable() {
	reg.Write(wdtcr, reg.Read(wdtcr)|1<<wdtcrWDCE|1<<wdtcrWDE)
	reg.Write(wdtcr, 0)
}
