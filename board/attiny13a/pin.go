// ATtiny13A GPIO
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package attiny13a

import "github.com/kelpie-labs/aquatend/internal/reg"

// pin implements board.Pin for a single PORTB line, fixed to PORTB since
// this chip has only the one GPIO port.
type pin struct {
	num int
}

func (p pin) In() {
	reg.Clear(ddrb, p.num)
}

func (p pin) Out() {
	reg.Set(ddrb, p.num)
}

// High drives the line high when configured as an output, or enables its
// internal pull-up when configured as an input — the same PORTB bit serves
// both purposes on this chip.
func (p pin) High() {
	reg.Set(portb, p.num)
}

func (p pin) Low() {
	reg.Clear(portb, p.num)
}

func (p pin) Value() bool {
	return reg.Get(pinb, p.num, 1) == 1
}
