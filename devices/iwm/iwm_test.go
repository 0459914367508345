package iwm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clem-emu/clem/clock"
)

func TestInsertAndStatusByte(t *testing.T) {
	m := New()
	m.InsertDisk(0, []byte{0xAA, 0xBB, 0xCC}, 24, nil)

	clk := clock.New()
	m.WriteSwitch(clk, RegBase+0x09, 0) // motor on
	status := m.ReadSwitch(clk, RegBase+0x0E, false)
	assert.NotZero(t, status&0x80, "drive present bit must be set")
	assert.NotZero(t, status&0x20, "motor-on bit must be set")
}

func TestEjectDiskSynchronous(t *testing.T) {
	m := New()
	m.InsertDisk(0, []byte{0x01}, 8, nil)
	require.True(t, m.EjectDisk(0))
	assert.False(t, m.EjectDisk(0), "already empty")
}

func TestEjectDiskAsyncCompletesOnSecondPoll(t *testing.T) {
	m := New()
	m.InsertDisk(2, []byte{0x01}, 8, nil) // drive index 2 == first 3.5" bay
	assert.False(t, m.EjectDiskAsync(2), "first poll only starts ejecting")
	assert.True(t, m.EjectDiskAsync(2), "second poll completes it")
}

func TestWriteProtectedDriveIgnoresDataWrites(t *testing.T) {
	m := New()
	m.drives[0] = Drive{Nibbles: []byte{0xFF}, BitLength: 8, present: true, WriteProt: true}
	clk := clock.New()
	m.WriteSwitch(clk, RegBase+0x0D, 0x42) // Q6H: write-mode data latch
	assert.Equal(t, byte(0xFF), m.drives[0].Nibbles[0])
}

func TestSpeedDiskGateForcesSlowOn35(t *testing.T) {
	m := New()
	m.speedFast = true
	clk := clock.New()
	m.WriteSwitch(clk, RegBase+0x0A, 0) // use35 = false (5.25")
	assert.True(t, m.SpeedDiskGate())
	m.WriteSwitch(clk, RegBase+0x0B, 0) // use35 = true (3.5")
	assert.False(t, m.SpeedDiskGate())
}
