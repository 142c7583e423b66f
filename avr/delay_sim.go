// AVR processor support
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tinygo

package avr

// delayMillisStep is a no-op on a host build: the simulator and tests model
// elapsed time by advancing a fake clock directly rather than by waiting on
// a real one.
func delayMillisStep() {}
