package vgc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clem-emu/clem/clock"
)

// newNanosClock returns a clock whose RefStep makes Nanos(clocks) == clocks,
// so tests can drive elapsed time directly through TS.
func newNanosClock() *clock.Clock {
	clk := clock.New()
	clk.RefStep = clock.StepDenominator
	return clk
}

func TestVBlankIRQAssertsAtVCounterThreshold(t *testing.T) {
	v := New()
	clk := newNanosClock()
	v.Sync(clk) // first call only initializes timestamps

	v.WriteNewVideo(0x02) // enable VBL IRQ, leave SHGR bank-latch bit alone

	clk.TS = uint64(vblNTSCUpper) * horizScanTimeNS // exactly crosses the boundary
	irq := v.Sync(clk)

	assert.NotZero(t, irq&IRQVBlank, "v-counter at the NTSC lower bound must assert VBL")
}

func TestVBlankIRQNotAssertedBelowThreshold(t *testing.T) {
	v := New()
	clk := newNanosClock()
	v.Sync(clk)

	v.WriteNewVideo(0x02)
	clk.TS = uint64(vblNTSCUpper-1) * horizScanTimeNS
	irq := v.Sync(clk)

	assert.Zero(t, irq&IRQVBlank)
}

func TestVBlankIRQSuppressedWhenDisabled(t *testing.T) {
	v := New()
	clk := newNanosClock()
	v.Sync(clk)

	clk.TS = uint64(vblNTSCUpper) * horizScanTimeNS
	irq := v.Sync(clk)

	assert.Zero(t, irq&IRQVBlank, "VBL IRQ enable bit was never set")
}

func TestVBLBarRegisterReflectsBlankState(t *testing.T) {
	v := New()
	clk := newNanosClock()
	v.Sync(clk)

	clk.TS = uint64(vblNTSCUpper) * horizScanTimeNS
	got := v.ReadSwitch(clk, RegVBLBar, true)

	assert.Equal(t, byte(0x80), got)
}

func TestTextTableLayoutMatchesThreeThirdsInterleave(t *testing.T) {
	v := New()
	assert.Equal(t, uint32(0x0400), v.Text1[0].Offset)
	assert.Equal(t, uint32(0x0400+40), v.Text1[8].Offset)
	assert.Equal(t, uint32(0x0400+80), v.Text1[16].Offset)
	assert.Equal(t, uint32(0x0400+128), v.Text1[1].Offset)
}

func TestHiresTableSubRowStride(t *testing.T) {
	v := New()
	assert.Equal(t, uint32(0x2000), v.HGR1[0].Offset)
	assert.Equal(t, v.HGR1[0].Offset+0x400, v.HGR1[1].Offset)
}

func TestWriteScanlineControlSelectsThenStoresMeta(t *testing.T) {
	v := New()
	v.WriteScanlineControl(false, 5) // C02E: select row 5
	v.WriteScanlineControl(true, 0x3C) // C02F: store control byte, advance to row 6
	v.WriteScanlineControl(true, 0x7E) // row 6

	assert.Equal(t, byte(0x3C), v.SHGR[5].Meta)
	assert.Equal(t, byte(0x7E), v.SHGR[6].Meta)
}

func TestWriteScanlineControlSelectWrapsAtTableLength(t *testing.T) {
	v := New()
	v.WriteScanlineControl(false, byte(len(v.SHGR))) // out-of-range select wraps to 0
	v.WriteScanlineControl(true, 0x11)
	assert.Equal(t, byte(0x11), v.SHGR[0].Meta)
}
