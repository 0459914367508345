package gameport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clem-emu/clem/clock"
)

func newNanosClock() *clock.Clock {
	clk := clock.New()
	clk.RefStep = clock.StepDenominator
	return clk
}

func TestButtonStateReflectsPostedInput(t *testing.T) {
	g := New()
	assert.Zero(t, g.ReadButton(RegButton0))

	g.PostButton(0, true)
	assert.Equal(t, byte(0x80), g.ReadButton(RegButton0))

	g.PostButton(0, false)
	assert.Zero(t, g.ReadButton(RegButton0))
}

func TestPaddleReadsHighUntilRCTimeoutElapses(t *testing.T) {
	g := New()
	clk := newNanosClock()
	g.PostAxis(0, 100)
	g.TriggerReset(clk)

	assert.Equal(t, byte(0x80), g.ReadPaddle(clk, RegPaddle0, false), "just triggered: still counting")

	clk.TS += uint64(100) * paddleTimeoutNs
	assert.Zero(t, g.ReadPaddle(clk, RegPaddle0, false), "RC timer must have discharged by now")
}

func TestZeroAxisNeverCountsDown(t *testing.T) {
	g := New()
	clk := newNanosClock()
	g.PostAxis(1, 0)
	g.TriggerReset(clk)
	assert.Zero(t, g.ReadPaddle(clk, RegPaddle1, false))
}
