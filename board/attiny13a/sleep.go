// ATtiny13A sleep control
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package attiny13a

import "github.com/kelpie-labs/aquatend/internal/reg"

// sleeper implements board.Sleeper using the deepest sleep mode this chip
// supports (power-down, SM1:SM0 = 10).
type sleeper struct{}

func (sleeper) ArmDeepSleep() {
	reg.Clear(mcucr, mcucrSM0)
	reg.Set(mcucr, mcucrSM1)
	reg.Set(mcucr, mcucrSE)
}

// EnterDeepSleep executes the AVR SLEEP instruction, blocking until an
// interrupt wakes the CPU, then clears the sleep-enable latch.
func (sleeper) EnterDeepSleep() {
	sleepCPU()
	reg.Clear(mcucr, mcucrSE)
}
