// ATtiny13A TIMER0 millisecond tick
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package attiny13a

import "github.com/kelpie-labs/aquatend/internal/reg"

// millisTimer implements board.MillisTimer using TIMER0 in CTC mode, a
// /64 prescaler, and a compare value of 125 — at 8MHz a total of 125
// prescaled ticks is 1ms (125*64 = 8000, 1/1000th of 8,000,000).
type millisTimer struct{}

// ticks is incremented once per millisecond by the TIMER0 compare-match
// interrupt while the timer is running. It is written only from interrupt
// context; main context reads it via Ticks, or polls just its low byte,
// which a single 8-bit load retrieves untorn.
var ticks uint32

func (millisTimer) Start() {
	ticks = 0
	reg.Write(tcnt0, 0)
	reg.Write(ocr0a, 125)
	reg.Write(tccr0b, 1<<tccr0bCS01|1<<tccr0bCS00)
	reg.Write(tccr0a, 1<<tccr0aWGM01)
	reg.Set(timsk0, timsk0OCIE0A)
}

func (millisTimer) Stop() {
	reg.Clear(timsk0, timsk0OCIE0A)
	reg.Write(tccr0b, 0)
}

func (millisTimer) Ticks() uint32 {
	return ticks
}

// timer0CompareMatch is invoked by the TIM0_COMPA_vect interrupt, wired in
// isr_avr.go for the real target.
func timer0CompareMatch() {
	ticks++
}
