// Fatal halt
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tinygo

package halt

import "github.com/kelpie-labs/aquatend/board"

// loopForever repeatedly enters the deepest sleep mode with interrupts
// masked, a true permanent halt on real hardware: no enabled interrupt
// source remains to wake the part.
func loopForever(b board.Board) {
	for {
		b.Sleep().EnterDeepSleep()
	}
}
