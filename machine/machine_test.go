package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clem-emu/clem/devices/adb"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	rom := make([]byte, 0x10000)
	rom[0xFFFC] = 0x00 // reset vector low
	rom[0xFFFD] = 0x02 // reset vector high -> $0200
	mach, err := New(Config{ROM: rom, FPIBankCount: 4})
	require.NoError(t, err)
	mach.MMU().Banks.WriteRaw(0, 0x0200, 0xEA) // NOP in bank 0 RAM at $0200
	return mach
}

func TestNewRejectsMissingROM(t *testing.T) {
	_, err := New(Config{FPIBankCount: 4})
	assert.Error(t, err)
}

func TestNewRejectsTooFewBanks(t *testing.T) {
	_, err := New(Config{ROM: []byte{0x00}, FPIBankCount: 2})
	assert.Error(t, err)
}

func TestStepAdvancesCPU(t *testing.T) {
	mach := newTestMachine(t)
	startPC := mach.CPU().PC
	require.NoError(t, mach.Step())
	assert.NotEqual(t, startPC, mach.CPU().PC)
}

func TestRunExecutesBoundedInstructionCount(t *testing.T) {
	mach := newTestMachine(t)
	require.NoError(t, mach.Run(3))
}

func TestPeekReadsWithoutSideEffects(t *testing.T) {
	mach := newTestMachine(t)
	got := mach.Peek(0, 0x0200, 1)
	assert.Equal(t, []byte{0xEA}, got)
}

func TestPostInputReachesADBQueue(t *testing.T) {
	mach := newTestMachine(t)
	mach.PostInput(adb.Event{Kind: adb.EventKeyDown, Code: 0x41})
	assert.NotZero(t, mach.io.ADB.ReadSwitch(adb.RegStatus, true)&0x01)
}

func TestInsertAndEjectDisk(t *testing.T) {
	mach := newTestMachine(t)
	err := mach.InsertDisk(Drive525_1, NibbleDisk{Nibbles: []byte{1, 2, 3}, BitLength: 24})
	require.NoError(t, err)
	assert.True(t, mach.EjectDisk(Drive525_1))
}

func TestEjectDisk35IsAsync(t *testing.T) {
	mach := newTestMachine(t)
	require.NoError(t, mach.InsertDisk(Drive35_1, NibbleDisk{Nibbles: []byte{1}, BitLength: 8}))
	assert.False(t, mach.EjectDisk(Drive35_1), "first poll only starts the eject")
	assert.True(t, mach.EjectDisk(Drive35_1), "second poll completes it")
}

func TestConsumeAudioFramesEmptyByDefault(t *testing.T) {
	mach := newTestMachine(t)
	assert.Empty(t, mach.ConsumeAudioFrames(10))
}

func TestScanlineZeroIsTextByDefault(t *testing.T) {
	mach := newTestMachine(t)
	sl := mach.Scanline(0)
	assert.Equal(t, "text", sl.Mode)
	assert.Equal(t, uint32(0x0400), sl.Offset)
}

func TestLoadHexWritesIntoBank(t *testing.T) {
	mach := newTestMachine(t)
	// checksum for len=01 addrHi=10 addrLo=00 type=00 data=42:
	// sum = 1+0x10+0+0+0x42 = 83 = 0x53; checksum = 0x01+(~0x53) = 0xAD
	hex := ":0110000042AD\n:00000001FF\n"
	n, err := mach.LoadHex(1, strings.NewReader(hex))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0x42}, mach.Peek(1, 0x1000, 1))
}
