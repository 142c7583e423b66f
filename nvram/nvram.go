// Persisted pump-on duration
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package nvram implements the single 16-bit little-endian "pump-on
// seconds" cell persisted in on-chip non-volatile storage at a fixed
// address, surviving reset and power loss.
package nvram

// pumpOnSecondsAddr is the fixed EEPROM address of the pump-on-duration
// cell.
const pumpOnSecondsAddr = 0x00

// defaultPumpOnSeconds is the factory default. On real hardware it is
// baked into the EEPROM image at flash time; the host build initialises its
// simulated cell to the same value so a fresh simulation run observes the
// same starting duration a freshly flashed chip would.
const defaultPumpOnSeconds uint16 = 5

// PumpOnSeconds returns the persisted pump-on duration, in seconds.
func PumpOnSeconds() uint16 {
	return eepromReadWord(pumpOnSecondsAddr)
}

// SetPumpOnSeconds persists a new pump-on duration, in seconds. Called only
// by the button handler on completion of a "hold to configure" gesture.
func SetPumpOnSeconds(seconds uint16) {
	eepromWriteWord(pumpOnSecondsAddr, seconds)
}
