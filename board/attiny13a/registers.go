// ATtiny13A register map
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package attiny13a implements board.Board for an ATtiny13A-class part,
// wired per the reference pin layout: button on PORTB pin 0 (also its
// pin-change interrupt source), overflow sensor 1 on pin 1, overflow sensor
// 2 on pin 2, pump 1 on pin 3, pump 2 on pin 4. All register addresses below
// are data-memory addresses (I/O address + 0x20, per the classic AVR
// load/store addressing convention) for this class of part.
package attiny13a

const (
	// I/O port B.
	pinb  uintptr = 0x36
	ddrb  uintptr = 0x37
	portb uintptr = 0x38

	// Pin-change interrupt control.
	gimsk uintptr = 0x5b
	pcmsk uintptr = 0x35

	// Watchdog Timer Control Register.
	wdtcr uintptr = 0x41

	// TIMER0.
	tccr0a uintptr = 0x4f
	tccr0b uintptr = 0x53
	tcnt0  uintptr = 0x52
	ocr0a  uintptr = 0x56
	timsk0 uintptr = 0x59

	// MCU Control Register (sleep mode, pull-up disable).
	mcucr uintptr = 0x55
)

const (
	// PORTB pin assignments for the reference board.
	pinButton    = 0
	pinOverflow1 = 1
	pinOverflow2 = 2
	pinPump1     = 3
	pinPump2     = 4
)

const (
	// GIMSK bits.
	gimskPCIE = 5

	// WDTCR bits.
	wdtcrWDIF = 7
	wdtcrWDIE = 6
	wdtcrWDP3 = 5
	wdtcrWDCE = 4
	wdtcrWDE  = 3
	wdtcrWDP2 = 2
	wdtcrWDP1 = 1
	wdtcrWDP0 = 0

	// TCCR0A bits.
	tccr0aWGM01 = 1

	// TCCR0B bits.
	tccr0bCS01 = 1
	tccr0bCS00 = 0

	// TIMSK0 bits.
	timsk0OCIE0A = 2

	// MCUCR bits.
	mcucrPUD = 6
	mcucrSE  = 5
	mcucrSM1 = 4
	mcucrSM0 = 3
)

// wdtPrescaler is the WDTCR WDP3:WDP0 bit pattern for each supported
// hardware watchdog interval, per Table 8-2 of the ATtiny13A datasheet.
var wdtPrescaler = map[uint8]uint8{
	8: 1<<wdtcrWDP3 | 1<<wdtcrWDP0,
	4: 1 << wdtcrWDP3,
	2: 1<<wdtcrWDP2 | 1<<wdtcrWDP1 | 1<<wdtcrWDP0,
	1: 1<<wdtcrWDP2 | 1<<wdtcrWDP1,
}
