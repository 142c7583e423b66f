// Device entry point
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Command aquatend is the firmware image for the ATtiny13A reference board,
// built with tinygo for the real target. All behavior lives in the library
// packages; this is only the board-to-firmware wiring.
package main

import (
	"github.com/kelpie-labs/aquatend/board/attiny13a"
	"github.com/kelpie-labs/aquatend/firmware"
)

func main() {
	firmware.Startup(attiny13a.New())
}
