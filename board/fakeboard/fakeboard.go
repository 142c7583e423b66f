// In-memory board for tests and simulation
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package fakeboard is an in-memory board.Board implementation backing the
// end-to-end scenario tests and the host-side simulation harness, requiring
// no real silicon. Unlike a real chip, time does not pass on its own: tests
// and the simulator drive it explicitly, via Tick (one hardware-watchdog
// interval) and AdvanceMillis (one or more millisecond-timer ticks).
package fakeboard

import (
	"sync/atomic"

	"github.com/kelpie-labs/aquatend/board"
)

// Pin is an in-memory digital I/O line.
type Pin struct {
	name   string
	output bool
	level  bool
}

func (p *Pin) In()            { p.output = false }
func (p *Pin) Out()           { p.output = true }
func (p *Pin) High()          { p.level = true }
func (p *Pin) Low()           { p.level = false }
func (p *Pin) Value() bool    { return p.level }
func (p *Pin) IsOutput() bool { return p.output }
func (p *Pin) Name() string   { return p.name }

// Watchdog is the in-memory board.HardwareWatchdog. It records every
// interval it is programmed for, and whether it is currently disabled, so a
// test can assert on the exact sequence of intervals a countdown was
// decomposed into.
type Watchdog struct {
	History  []uint8
	Disabled bool
}

func (w *Watchdog) Configure(intervalSeconds uint8) {
	w.History = append(w.History, intervalSeconds)
	w.Disabled = false
}

func (w *Watchdog) Disable() {
	w.Disabled = true
}

// MillisTimer is the in-memory board.MillisTimer. Ticks only advance when
// explicitly told to via Board.AdvanceMillis, standing in for the real
// timer-compare interrupt. The count is accessed atomically because test
// harnesses advance it from a separate goroutine while the debounce loop
// busy-waits on it.
type MillisTimer struct {
	running bool
	ticks   uint32
}

func (t *MillisTimer) Start() {
	t.running = true
	atomic.StoreUint32(&t.ticks, 0)
}

func (t *MillisTimer) Stop() {
	t.running = false
}

func (t *MillisTimer) Ticks() uint32 {
	return atomic.LoadUint32(&t.ticks)
}

// Sleeper is the in-memory board.Sleeper. EnterDeepSleep does not block (the
// fake board has nothing to block on); SleepCount records how many times
// the core actually reached the sleep instruction, useful for asserting
// that the event loop did not spin instead of sleeping.
type Sleeper struct {
	Armed      bool
	SleepCount int
}

func (s *Sleeper) ArmDeepSleep() {
	s.Armed = true
}

func (s *Sleeper) EnterDeepSleep() {
	s.SleepCount++
	s.Armed = false
}

// Board is the in-memory board.Board.
type Board struct {
	ButtonPin    Pin
	Pump1Pin     Pin
	Pump2Pin     Pin
	Overflow1Pin Pin
	Overflow2Pin Pin

	Wdt       Watchdog
	MsTimer   MillisTimer
	SleepCtrl Sleeper

	// WdtISR is invoked by Tick, standing in for the chip's watchdog
	// interrupt vector. The test or simulator wires it to
	// vwdt.Watchdog.Tick, the same routine the real vector dispatches to.
	WdtISR func()

	pinChangeEnabled bool

	// DisableUnusedPeripheralsCalled records whether startup ran.
	DisableUnusedPeripheralsCalled bool
}

// New returns a fresh fake board, overflow sensors defaulted to "not full"
// (high, under pull-up) the way a real reservoir starts out empty enough to
// water.
func New() *Board {
	b := &Board{}
	b.ButtonPin.name = "button"
	b.Pump1Pin.name = "pump1"
	b.Pump2Pin.name = "pump2"
	b.Overflow1Pin.name = "overflow1"
	b.Overflow2Pin.name = "overflow2"
	b.Overflow1Pin.level = true
	b.Overflow2Pin.level = true
	return b
}

func (b *Board) Button() board.Pin { return &b.ButtonPin }

func (b *Board) Pump(n int) board.Pin {
	switch n {
	case 1:
		return &b.Pump1Pin
	case 2:
		return &b.Pump2Pin
	default:
		panic("fakeboard: invalid pump number")
	}
}

func (b *Board) Overflow(n int) board.Pin {
	switch n {
	case 1:
		return &b.Overflow1Pin
	case 2:
		return &b.Overflow2Pin
	default:
		panic("fakeboard: invalid overflow sensor number")
	}
}

func (b *Board) Watchdog() board.HardwareWatchdog { return &b.Wdt }
func (b *Board) Timer() board.MillisTimer         { return &b.MsTimer }
func (b *Board) Sleep() board.Sleeper             { return &b.SleepCtrl }

func (b *Board) EnablePinChangeInterrupt()  { b.pinChangeEnabled = true }
func (b *Board) DisablePinChangeInterrupt() { b.pinChangeEnabled = false }

func (b *Board) PinChangeInterruptEnabled() bool { return b.pinChangeEnabled }

func (b *Board) DisableUnusedPeripherals() {
	b.DisableUnusedPeripheralsCalled = true
	b.ButtonPin.In()
	b.ButtonPin.High()
	b.Overflow1Pin.In()
	b.Overflow1Pin.High()
	b.Overflow2Pin.In()
	b.Overflow2Pin.High()
	b.Pump1Pin.Out()
	b.Pump2Pin.Out()
	b.EnablePinChangeInterrupt()
}

// AdvanceMillis advances the millisecond timer by n ticks, simulating n
// firings of the compare-match interrupt. No-op while the timer is stopped,
// matching the real peripheral.
func (b *Board) AdvanceMillis(n uint32) {
	if b.MsTimer.running {
		atomic.AddUint32(&b.MsTimer.ticks, n)
	}
}

// Tick simulates one hardware-watchdog interrupt firing, dispatching to
// WdtISR the way the real interrupt vector would. Panics if the watchdog is
// currently disabled, since a real watchdog interrupt cannot fire with
// WDIE clear.
func (b *Board) Tick() {
	if b.Wdt.Disabled {
		panic("fakeboard: Tick called while the hardware watchdog is disabled")
	}
	if b.WdtISR == nil {
		panic("fakeboard: no WdtISR wired")
	}
	b.WdtISR()
}

// PressButton drives the button pin low (pressed, active-low under
// pull-up), standing in for the physical contact closing. Callers are
// responsible for posting event.BUTTON (simulating the pin-change
// interrupt) and for advancing the millisecond timer via AdvanceMillis so
// the debounce loop's accumulator settles.
func (b *Board) PressButton() {
	b.ButtonPin.Low()
}

// ReleaseButton releases a simulated button press.
func (b *Board) ReleaseButton() {
	b.ButtonPin.High()
}
