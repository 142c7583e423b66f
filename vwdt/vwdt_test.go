// Long-interval virtual watchdog
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package vwdt

import (
	"testing"

	"github.com/kelpie-labs/aquatend/board/fakeboard"
	"github.com/kelpie-labs/aquatend/event"
)

func setup(t *testing.T) *fakeboard.Board {
	t.Helper()

	event.Flags.Reset()
	b := fakeboard.New()
	Watchdog.Init(b)
	b.WdtISR = Watchdog.Tick
	return b
}

// drainOneCountdown ticks b's fake hardware watchdog (standing in for the
// real watchdog interrupt vector) until the countdown posts event.WDT,
// returning the exact sequence of intervals the hardware watchdog was
// programmed for.
func drainOneCountdown(t *testing.T, b *fakeboard.Board) []uint8 {
	t.Helper()

	const maxTicks = 1 << 20 // generous bound; a real countdown never needs this many

	for i := 0; i < maxTicks; i++ {
		if event.Flags.IsSet(event.WDT) {
			return b.Wdt.History
		}
		b.Tick()
	}

	t.Fatal("countdown never posted event.WDT")
	return nil
}

// TestArmSum verifies that the sum of every armed interval equals the
// requested duration exactly: each tick subtracts exactly the interval that
// elapsed, so no time is lost or double-counted across a countdown.
func TestArmSum(t *testing.T) {
	for _, n := range []uint32{0, 1, 2, 3, 7, 8, 9, 15, 16, 17, 1000, 86400, 1 << 20} {
		b := setup(t)

		Watchdog.Arm(n)

		history := drainOneCountdown(t, b)

		var sum uint32
		for _, iv := range history {
			sum += uint32(iv)
		}
		if sum != n {
			t.Errorf("Arm(%d): interval sum = %d, want %d (history %v)", n, sum, n, history)
		}
	}
}

// TestArmDecomposition verifies the interval schedule is the greedy
// decomposition of the requested duration into {8, 4, 2, 1}, largest first.
func TestArmDecomposition(t *testing.T) {
	cases := []struct {
		n    uint32
		want []uint8
	}{
		{0, nil},
		{1, []uint8{1}},
		{2, []uint8{2}},
		{3, []uint8{2, 1}},
		{7, []uint8{4, 2, 1}},
		{8, []uint8{8}},
		{9, []uint8{8, 1}},
		{15, []uint8{8, 4, 2, 1}},
		{23, []uint8{8, 8, 4, 2, 1}},
	}

	for _, c := range cases {
		b := setup(t)

		Watchdog.Arm(c.n)

		var history []uint8
		if c.n == 0 {
			// Arm(0) posts WDT immediately; no interval is ever
			// programmed.
			if !event.Flags.IsSet(event.WDT) {
				t.Errorf("Arm(0): expected event.WDT posted immediately")
			}
		} else {
			history = drainOneCountdown(t, b)
		}

		if !equalUint8(history, c.want) {
			t.Errorf("Arm(%d): history = %v, want %v", c.n, history, c.want)
		}
	}
}

func equalUint8(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestArmReplacesCountdown verifies that arming while already armed
// abandons the previous countdown rather than stacking on top of it.
func TestArmReplacesCountdown(t *testing.T) {
	b := setup(t)

	Watchdog.Arm(1000)
	b.Tick() // burn one 8s interval of the abandoned countdown

	b.Wdt.History = nil
	Watchdog.Arm(3)

	history := drainOneCountdown(t, b)
	if !equalUint8(history, []uint8{2, 1}) {
		t.Errorf("history after re-arm = %v, want [2 1]", history)
	}
}

// TestCancel verifies Cancel disables the hardware watchdog and does not
// itself clear a flag already posted.
func TestCancel(t *testing.T) {
	b := setup(t)

	Watchdog.Arm(0) // posts event.WDT immediately

	if !event.Flags.IsSet(event.WDT) {
		t.Fatal("expected event.WDT posted")
	}

	Watchdog.Cancel()

	if !b.Wdt.Disabled {
		t.Error("Cancel did not disable the hardware watchdog")
	}
	if !event.Flags.IsSet(event.WDT) {
		t.Error("Cancel must not clear an already-posted flag")
	}
}
