// ATtiny13A interrupt vectors
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo

package attiny13a

import (
	"github.com/kelpie-labs/aquatend/event"
	"github.com/kelpie-labs/aquatend/vwdt"
)

//go:interrupt PCINT0_vect
func pinChangeInterrupt() {
	event.Flags.Set(event.BUTTON)
}

//go:interrupt WDT_vect
func watchdogInterrupt() {
	vwdt.Watchdog.Tick()
}

//go:interrupt TIM0_COMPA_vect
func timer0CompareMatchInterrupt() {
	timer0CompareMatch()
}
