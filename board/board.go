// Board abstraction
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package board provides a basic abstraction over the different boards this
// firmware can target. Core packages (event, vwdt, mstimer, button, pump,
// firmware) depend only on these interfaces, never on a concrete chip's
// registers.
package board

// Pin represents a single digital I/O line.
type Pin interface {
	// In configures the line as an input.
	In()
	// Out configures the line as an output.
	Out()
	// High drives the line high (or, for an input, has no effect beyond
	// enabling its pull-up where the board ties High to the pull-up
	// control, as it does for the button and overflow sensor lines).
	High()
	// Low drives the line low.
	Low()
	// Value reads the current line level.
	Value() bool
}

// HardwareWatchdog is the hardware peripheral the virtual watchdog (package
// vwdt) drives. Configure/Disable must perform whatever timed-change
// register sequence the underlying chip requires; the caller always invokes
// these from within an avr.Critical section.
type HardwareWatchdog interface {
	// Configure arms the watchdog to raise its interrupt after
	// intervalSeconds, which is always one of {1, 2, 4, 8}.
	Configure(intervalSeconds uint8)
	// Disable stops the watchdog from raising further interrupts.
	Disable()
}

// MillisTimer is a free-running millisecond counter, scoped to the
// lifetime of a single button press (see button.Handler).
type MillisTimer interface {
	// Start resets the counter to zero and begins incrementing it.
	Start()
	// Stop halts the counter and powers down the underlying peripheral.
	Stop()
	// Ticks returns the number of milliseconds elapsed since Start.
	Ticks() uint32
}

// Sleeper implements the hardware half of the event loop's sleep protocol:
// selecting the deepest available sleep mode and executing the sleep
// instruction. ArmDeepSleep is always called with interrupts masked by the
// caller.
type Sleeper interface {
	// ArmDeepSleep selects the deepest sleep mode and sets the
	// sleep-enable latch.
	ArmDeepSleep()
	// EnterDeepSleep executes the sleep instruction, blocking until an
	// interrupt wakes the CPU, then clears the sleep-enable latch.
	EnterDeepSleep()
}

// Board aggregates the named pins and peripherals this firmware drives.
type Board interface {
	// Button returns the momentary push-button input line.
	Button() Pin
	// Pump returns the pin driving pump n (n is 1 or 2).
	Pump(n int) Pin
	// Overflow returns the reservoir overflow sensor input for pump n
	// (n is 1 or 2), active-low under an internal pull-up.
	Overflow(n int) Pin
	// Watchdog returns the hardware watchdog peripheral.
	Watchdog() HardwareWatchdog
	// Timer returns the millisecond timer peripheral.
	Timer() MillisTimer
	// Sleep returns the deep-sleep control peripheral.
	Sleep() Sleeper
	// EnablePinChangeInterrupt arms the button line's pin-change
	// interrupt.
	EnablePinChangeInterrupt()
	// DisablePinChangeInterrupt disarms the button line's pin-change
	// interrupt, without retracting an already-queued interrupt.
	DisablePinChangeInterrupt()
	// DisableUnusedPeripherals powers down on-chip peripherals this
	// firmware never uses and configures the pins for their roles
	// (pumps as outputs driven low, button and overflow sensors as
	// inputs with pull-ups). Called once at startup.
	DisableUnusedPeripherals()
}
