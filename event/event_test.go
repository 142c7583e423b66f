// Pending-event flag set
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package event

import "testing"

func TestSetIdempotent(t *testing.T) {
	Flags.Reset()
	Flags.Set(WDT)
	Flags.Set(WDT)

	if !Flags.IsSet(WDT) {
		t.Fatal("WDT not set")
	}
	if Flags.IsSet(BUTTON) {
		t.Fatal("BUTTON unexpectedly set")
	}
}

func TestClearOnlyAffectsItsFlag(t *testing.T) {
	Flags.Reset()
	Flags.Set(WDT)
	Flags.Set(BUTTON)

	Flags.Clear(WDT)

	if Flags.IsSet(WDT) {
		t.Error("WDT still set after Clear")
	}
	if !Flags.IsSet(BUTTON) {
		t.Error("Clear(WDT) unexpectedly cleared BUTTON")
	}
}

func TestReset(t *testing.T) {
	Flags.Set(WDT)
	Flags.Set(BUTTON)

	Flags.Reset()

	if Flags.IsSet(WDT) || Flags.IsSet(BUTTON) {
		t.Fatal("Reset did not clear all flags")
	}
}
