// Fatal halt
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package halt

import (
	"testing"

	"github.com/kelpie-labs/aquatend/board/fakeboard"
)

// TestHaltDrivesAllPinsLowAndSleeps: every named pin driven low, deep sleep
// armed, and control never returns normally (the host build raises Halted
// instead).
func TestHaltDrivesAllPinsLowAndSleeps(t *testing.T) {
	b := fakeboard.New()
	b.Pump1Pin.High()
	b.Pump2Pin.High()
	b.ButtonPin.High()
	b.Overflow1Pin.High()
	b.Overflow2Pin.High()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Halt to never return normally")
		}
		if _, ok := r.(Halted); !ok {
			t.Fatalf("expected Halted panic, got %T: %v", r, r)
		}

		if b.ButtonPin.Value() {
			t.Error("button pin still high after Halt")
		}
		if b.Pump1Pin.Value() || b.Pump2Pin.Value() {
			t.Error("a pump pin still high after Halt")
		}
		if b.Overflow1Pin.Value() || b.Overflow2Pin.Value() {
			t.Error("an overflow pin still high after Halt")
		}
		if !b.SleepCtrl.Armed {
			t.Error("deep sleep not armed by Halt")
		}
	}()

	Halt(b)
}
