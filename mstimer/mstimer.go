// Millisecond tick counter
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mstimer implements the monotonic millisecond tick counter used by
// the button handler's debounce loop: created (enabled and reset) on entry
// to the handler, destroyed (disabled, to save power) on exit.
package mstimer

import "github.com/kelpie-labs/aquatend/board"

// Counter wraps a board.MillisTimer. The debounce loop polls only the low 8
// bits of the running count; overflow at ~49 days is outside the
// operational envelope (a button hold lasting that long is not a case the
// firmware needs to get right).
type Counter struct {
	hw board.MillisTimer
}

// Ticker is the process-wide millisecond counter.
var Ticker Counter

// Init wires the counter to the board's millisecond timer peripheral. MUST
// be called once during startup, before Start.
func (c *Counter) Init(b board.Board) {
	c.hw = b.Timer()
}

// Start resets and enables the counter.
func (c *Counter) Start() {
	c.hw.Start()
}

// Stop disables the counter, powering down the underlying timer peripheral.
func (c *Counter) Stop() {
	c.hw.Stop()
}

// Millis returns the low byte of the number of milliseconds elapsed since
// the last Start. The debounce loop polls this for change on each
// iteration; an 8-bit load cannot tear against the incrementing interrupt.
func (c *Counter) Millis() uint8 {
	return uint8(c.hw.Ticks())
}

// Elapsed returns the full number of milliseconds elapsed since the last
// Start, used once a press has been debounced to classify it as a test
// cycle or a configure-duration hold, and to convert the hold into whole
// seconds — both need more range than the low byte alone provides.
func (c *Counter) Elapsed() uint32 {
	return c.hw.Ticks()
}
