// Persisted pump-on duration
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo

package nvram

// eepromReadWord and eepromWriteWord are implemented in nvram_avr.s,
// wrapping the busy-wait-for-EEPE read-modify-write sequence the EEPROM
// peripheral requires (the same sequence avr-libc's eeprom_read_word and
// eeprom_write_word perform).
func eepromReadWord(addr uint16) uint16

func eepromWriteWord(addr uint16, val uint16)
