// Package gameport implements the analog-axis and button registers
// (C061-C067/C070) driven by posted input events, grounded on
// original_source/clem_device.h's clem_gameport_sync signature. This
// supplements a feature the distilled specification does not mention by
// name but which the original exposes alongside ADB.
package gameport

import "github.com/clem-emu/clem/clock"

const (
	RegButton0 = 0x61
	RegButton1 = 0x62
	RegPaddle0 = 0x64
	RegPaddle1 = 0x65
	RegPaddle2 = 0x66
	RegPaddle3 = 0x67
	RegTrigger = 0x70
)

// paddleTimeoutNs bounds the RC-discharge emulation: a paddle register
// reads 0x80 (still counting) for a duration proportional to its axis
// value, then settles to 0x00, matching the classic Apple II analog
// input timing model well enough for a host game loop that only polls
// it after a full frame.
const paddleTimeoutNs = 3_000 // ns per axis unit, roughly matching hardware RC constants

// Gameport owns button state, four analog axes, and the trigger timer
// start timestamp (spec.md §3 "Device state").
type Gameport struct {
	buttons [3]bool
	axes    [4]uint8 // 0-255, host-supplied analog position

	triggerTS   uint64
	triggerAxis [4]uint8
}

func New() *Gameport {
	g := &Gameport{}
	g.Reset()
	return g
}

func (g *Gameport) Reset() {
	g.buttons = [3]bool{}
	g.axes = [4]uint8{}
	g.triggerTS = 0
}

// PostButton and PostAxis are the host-facing input posting calls
// (clem_gameport_sync's counterpart on the input side).
func (g *Gameport) PostButton(n int, down bool) {
	if n >= 0 && n < len(g.buttons) {
		g.buttons[n] = down
	}
}

func (g *Gameport) PostAxis(n int, v uint8) {
	if n >= 0 && n < len(g.axes) {
		g.axes[n] = v
	}
}

func (g *Gameport) Sync(clk *clock.Clock) {
	_ = clk // no periodic state to advance beyond the trigger timer, read on demand
}

// TriggerReset restarts the RC-discharge timer for all four axes
// (C070 "PTRIG" write).
func (g *Gameport) TriggerReset(clk *clock.Clock) {
	g.triggerTS = clk.TS
	g.triggerAxis = g.axes
}

// ReadButton returns the C061/C062 button state in bit 7.
func (g *Gameport) ReadButton(reg uint8) byte {
	idx := 0
	if reg == RegButton1 {
		idx = 1
	}
	if g.buttons[idx] {
		return 0x80
	}
	return 0
}

// ReadPaddle returns bit 7 set while the RC timer for this axis is still
// counting down, matching the analog-input read convention.
func (g *Gameport) ReadPaddle(clk *clock.Clock, reg uint8, noOp bool) byte {
	_ = noOp
	idx := int(reg - RegPaddle0)
	if idx < 0 || idx >= len(g.axes) {
		return 0
	}
	threshold := uint64(g.triggerAxis[idx]) * paddleTimeoutNs
	if threshold == 0 {
		return 0
	}
	if clk.Nanos(clk.Elapsed(g.triggerTS)) < threshold {
		return 0x80
	}
	return 0
}
