// Fatal halt
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build !tinygo

package halt

import "github.com/kelpie-labs/aquatend/board"

// Halted is the panic value loopForever raises on a host build. An actual
// infinite sleep loop would hang the test process and the simulator;
// panicking is the portable "control flow does not continue" signal. Tests
// recover from this to assert that a fatal halt occurred.
type Halted struct{}

func loopForever(board.Board) {
	panic(Halted{})
}
