package rtc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clem-emu/clem/clock"
)

func TestBRAMWriteThenRead(t *testing.T) {
	r := New()
	clk := clock.New()

	r.WriteCommand(clk, cmdBRAM|cmdWrite|0x10) // select BRAM address 0x10, write
	r.WriteCommand(clk, 0xAB)                  // data byte

	assert.True(t, r.ClearBRAMDirty())
	assert.False(t, r.ClearBRAMDirty(), "dirty bit is clear-on-read")

	r.WriteCommand(clk, cmdBRAM|0x10) // select BRAM address 0x10, read
	assert.Equal(t, byte(0xAB), r.ReadCommand(clk, false))
}

func TestSecondsAdvanceWithClock(t *testing.T) {
	r := New()
	clk := clock.New()
	clk.RefStep = clock.StepDenominator // Nanos(clocks) == clocks

	r.SetClockTime(1000, clk)
	clk.TS = 5_000_000_000 // 5,000,000 us == 5s elapsed

	got := r.ReadCommand(clk, true)
	assert.Equal(t, byte(1005%256), got)
}

func TestReadUnrelatedToCommandReturnsZero(t *testing.T) {
	r := New()
	clk := clock.New()
	r.WriteCommand(clk, cmdBRAM|cmdWrite|0x05)
	// command left mid-transaction (write pending): read should not
	// fabricate a BRAM value.
	assert.Zero(t, r.ReadCommand(clk, true))
}
