// ATtiny13A sleep control
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tinygo

package attiny13a

// sleepCPU is a no-op on a host build: there is no CPU to halt, and the
// fakeboard/simulation harness deliver events synchronously rather than via
// a real wake-from-sleep interrupt.
func sleepCPU() {}
