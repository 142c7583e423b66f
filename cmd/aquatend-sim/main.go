// Host-side scenario simulator
// https://github.com/kelpie-labs/aquatend
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Command aquatend-sim replays end-to-end watering scenarios against the
// real core packages (event, vwdt, mstimer, button, pump, firmware) and an
// in-memory fakeboard, so a human can watch a 24-hour watering cycle happen
// in well under a second instead of waiting on real silicon.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/kelpie-labs/aquatend/board/fakeboard"
	"github.com/kelpie-labs/aquatend/button"
	"github.com/kelpie-labs/aquatend/event"
	"github.com/kelpie-labs/aquatend/firmware"
	"github.com/kelpie-labs/aquatend/halt"
	"github.com/kelpie-labs/aquatend/nvram"
	"github.com/kelpie-labs/aquatend/pump"
	"github.com/kelpie-labs/aquatend/vwdt"
)

var logger = stumpy.L.New(
	stumpy.L.WithStumpy(stumpy.WithWriter(os.Stdout)),
	stumpy.L.WithLevel(logiface.LevelDebug),
)

// tickLimiter throttles the per-tick debug log: a 24-hour countdown at the
// maximal 8-second hardware interval is 10,800 ticks, and logging all of
// them would flood the terminal.
var tickLimiter = catrate.NewLimiter(map[time.Duration]int{time.Second: 5})

func main() {
	scenario := "full-cycle"
	if len(os.Args) > 1 {
		scenario = os.Args[1]
	}

	if !run(scenario) {
		os.Exit(1)
	}
}

// run drives one named scenario to completion and reports pass/fail.
func run(scenario string) (ok bool) {
	event.Flags.Reset()

	b := fakeboard.New()
	b.WdtISR = vwdt.Watchdog.Tick

	defer func() {
		if r := recover(); r != nil {
			if _, halted := r.(halt.Halted); halted {
				logger.Notice().Str("scenario", scenario).Log("fatal halt reached")
				ok = scenario == "invalid-fsm-state"
				logger.Info().Str("scenario", scenario).Bool("ok", ok).Log("scenario complete")
				return
			}
			panic(r)
		}
	}()

	firmware.Init(b)

	switch scenario {
	case "full-cycle":
		ok = runFullCycle(b)
	case "short-press-test":
		ok = runShortPressTest(b)
	case "long-press-configure":
		ok = runLongPressConfigure(b)
	case "overflow-skip":
		ok = runOverflowSkip(b)
	case "noise":
		ok = runNoise(b)
	case "invalid-fsm-state":
		ok = runInvalidFSMState(b)
	case "button-during-watering":
		ok = runButtonDuringWatering(b)
	default:
		fmt.Fprintf(os.Stderr, "unknown scenario %q\n", scenario)
		ok = false
	}

	logger.Info().Str("scenario", scenario).Bool("ok", ok).Log("scenario complete")
	return ok
}

// drainCountdown ticks the simulated hardware watchdog until the current
// virtual-watchdog countdown posts its WDT event, then clears the flag. The
// scenarios then call the pump routine themselves; the event loop instead
// clears the flag after the pump routine returns.
func drainCountdown(b *fakeboard.Board) {
	var n int
	for !event.Flags.IsSet(event.WDT) {
		b.Tick()
		n++

		if _, allow := tickLimiter.Allow("tick"); allow {
			logger.Debug().Int("ticks", n).Log("watchdog tick")
		}
	}
	event.Flags.Clear(event.WDT)

	logger.Info().Int("ticks", n).Log("countdown complete")
}

// runFullCycle drives a full 24-hour interval, then a complete two-pump
// watering cycle, asserting the pumps end up back off with the long
// interval re-armed.
func runFullCycle(b *fakeboard.Board) bool {
	drainCountdown(b)

	pump.Run()
	logger.Info().Bool("pump1", b.Pump1Pin.Value()).Log("watering step")
	if !b.Pump1Pin.Value() {
		return false
	}

	drainCountdown(b) // the configured pump-on duration elapses

	pump.Run()
	logger.Info().Bool("pump1", b.Pump1Pin.Value()).Bool("pump2", b.Pump2Pin.Value()).Log("watering step")
	if b.Pump1Pin.Value() || !b.Pump2Pin.Value() {
		return false
	}

	drainCountdown(b)

	pump.Run()
	logger.Info().Bool("pump2", b.Pump2Pin.Value()).Log("watering step")

	return !b.Pump1Pin.Value() && !b.Pump2Pin.Value() && !b.Wdt.Disabled
}

func runShortPressTest(b *fakeboard.Board) bool {
	before := nvram.PumpOnSeconds()
	pressButton(b, 200)

	// A short press runs a manual test cycle: pump 1 comes on, the
	// configured duration is armed, and no new duration is persisted.
	return nvram.PumpOnSeconds() == before && b.Pump1Pin.Value()
}

func runLongPressConfigure(b *fakeboard.Board) bool {
	// Comfortably inside the 3-second bucket: the measured hold starts at
	// the debounced DOWN, a handful of ms after the physical press.
	pressButton(b, 3400)
	return nvram.PumpOnSeconds() == 3 && !b.Wdt.Disabled
}

func runOverflowSkip(b *fakeboard.Board) bool {
	b.Overflow1Pin.Low() // reservoir 1 full

	drainCountdown(b)
	pump.Run() // skips pump 1 (triple-flash), starts pump 2

	if b.Pump1Pin.Value() || !b.Pump2Pin.Value() {
		return false
	}

	drainCountdown(b)
	pump.Run() // pump 2 off, long interval re-armed

	return !b.Pump2Pin.Value() && !b.Wdt.Disabled
}

func runNoise(b *fakeboard.Board) bool {
	before := nvram.PumpOnSeconds()

	// A contact that bounces open within a couple of milliseconds never
	// accumulates eight consecutive pressed samples: no action at all.
	pressButton(b, 2)

	return nvram.PumpOnSeconds() == before && !b.Pump1Pin.Value() && !b.Pump2Pin.Value()
}

func runInvalidFSMState(b *fakeboard.Board) bool {
	b.Pump1Pin.High()
	b.Pump2Pin.High()

	pump.Run()

	return false // unreachable: pump.Run always halts from this state
}

func runButtonDuringWatering(b *fakeboard.Board) bool {
	drainCountdown(b)
	pump.Run() // pump 1 energised

	// A short press mid-watering stops both pumps, then runs a fresh test
	// cycle from the top: pump 1 back on with the configured duration.
	pressButton(b, 50)

	if !b.Pump1Pin.Value() {
		return false
	}

	drainCountdown(b)
	pump.Run()
	drainCountdown(b)
	pump.Run()

	return !b.Pump1Pin.Value() && !b.Pump2Pin.Value()
}

// pressButton simulates a press lasting holdMillis, running the real
// button.Default.Handle (and its blocking debounce loop) on its own
// goroutine while this goroutine advances the fake millisecond timer,
// standing in for the timer-compare interrupt that would otherwise drive
// it forward.
func pressButton(b *fakeboard.Board, holdMillis uint32) {
	b.PressButton()
	event.Flags.Set(event.BUTTON)

	logger.Info().Uint64("hold_ms", uint64(holdMillis)).Log("button pressed")

	done := make(chan struct{})
	go func() {
		button.Default.Handle()
		close(done)
	}()

	released := false
	var elapsed uint32
	for {
		select {
		case <-done:
			event.Flags.Clear(event.BUTTON)
			logger.Info().Log("button handler returned")
			return
		default:
		}

		b.AdvanceMillis(1)
		elapsed++

		if !released && elapsed >= holdMillis {
			b.ReleaseButton()
			released = true
		}

		runtime.Gosched()
	}
}
