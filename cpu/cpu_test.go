package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clem-emu/clem/clock"
	"github.com/clem-emu/clem/mmu"
)

func newTestCpu(t *testing.T) (*Cpu, *mmu.MMU) {
	t.Helper()
	banks, err := mmu.NewBanks(4, make([]byte, 0x10000))
	require.NoError(t, err)
	m := mmu.New(banks, clock.New(), clock.DefaultConfig())
	c := New(m)
	return c, m
}

func load(b *mmu.Banks, bank uint8, addr uint16, bytes ...byte) {
	for i, v := range bytes {
		b.WriteRaw(bank, addr+uint16(i), v)
	}
}

func TestResetReadsVectorAndEntersEmulationMode(t *testing.T) {
	c, m := newTestCpu(t)
	m.Banks.ROM[0xFFFC] = 0x00 // reset vector is read from ROM at power-on
	m.Banks.ROM[0xFFFD] = 0x80
	c.Reset()

	assert.True(t, c.Emulation)
	assert.True(t, c.P.M)
	assert.True(t, c.P.X)
	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint8(0), c.PBR)
	assert.Equal(t, uint16(0x0100), c.S&0xFF00)
}

func TestXCEIntoNativeModeAndBack(t *testing.T) {
	c, _ := newTestCpu(t)
	c.Reset()
	assert.True(t, c.Emulation)

	c.P.Carry = false // will become the new emulation bit
	insXCE(c, Opcode{})
	assert.False(t, c.Emulation, "XCE with C=0 enters native mode")
	assert.True(t, c.P.Carry, "old emulation bit (1) moved into carry")

	c.P.M = false
	c.P.X = false
	c.P.Carry = true
	insXCE(c, Opcode{})
	assert.True(t, c.Emulation, "XCE with C=1 returns to emulation mode")
	assert.True(t, c.P.M)
	assert.True(t, c.P.X)
}

func TestADCDecimalMode8Bit(t *testing.T) {
	c, _ := newTestCpu(t)
	c.Reset()
	c.P.Decimal = true
	c.P.M = true
	c.Emulation = true
	c.A = 0x0025
	c.P.Carry = false

	c.adc8(0x47)

	assert.Equal(t, uint16(0x0072), c.A)
	assert.False(t, c.P.Carry)
}

func TestMVNBlockMove(t *testing.T) {
	c, m := newTestCpu(t)
	c.Reset()
	c.Emulation = false
	c.P.M = false
	c.P.X = false

	load(m.Banks, 0x01, 0x1000, 0x11, 0x22, 0x33)
	c.A = 2 // move 3 bytes
	c.X = 0x1000
	c.Y = 0x2000
	c.PBR = 0
	m.Banks.WriteRaw(0, 0x0000, 0x54) // MVN opcode, unused directly
	c.PC = 0x0001
	load(m.Banks, 0, 0x0001, 0x02, 0x01) // dst bank 2, src bank 1

	insMVN(c, Opcode{})

	assert.Equal(t, byte(0x11), m.Banks.ReadRaw(0x02, 0x2000))
	assert.Equal(t, byte(0x22), m.Banks.ReadRaw(0x02, 0x2001))
	assert.Equal(t, byte(0x33), m.Banks.ReadRaw(0x02, 0x2002))
	assert.Equal(t, uint8(0x02), c.DBR)
	assert.Equal(t, uint16(0x1003), c.X)
	assert.Equal(t, uint16(0x2003), c.Y)
	assert.Equal(t, uint16(0xFFFF), c.A)
}

func TestLDASwitchesWidthWithPFlag(t *testing.T) {
	c, m := newTestCpu(t)
	c.Reset()
	c.Emulation = false
	c.PBR, c.DBR = 0, 0

	c.P.M = true
	load(m.Banks, 0, 0x0200, 0xA9, 0x42) // LDA #$42
	// Step has already consumed the opcode byte when Instruction runs.
	c.PC = 0x0201
	op := Opcodes[0xA9]
	c.curMode = op.AddressingMode
	op.Instruction(c, op)
	assert.Equal(t, uint16(0x0042), c.A)

	c.P.M = false
	load(m.Banks, 0, 0x0202, 0xA9, 0x34, 0x12) // LDA #$1234
	c.PC = 0x0203
	c.curMode = op.AddressingMode
	op.Instruction(c, op)
	assert.Equal(t, uint16(0x1234), c.A)
}

func TestStepReportsUnknownOpcode(t *testing.T) {
	c, m := newTestCpu(t)
	c.Reset()
	// Every opcode byte has a table entry, so blank one slot for the
	// duration of this test to reach the unknown-opcode path.
	saved := Opcodes[0x03]
	Opcodes[0x03] = Opcode{}
	defer func() { Opcodes[0x03] = saved }()
	m.Banks.WriteRaw(c.PBR, c.PC, 0x03)
	err := c.Step()
	require.Error(t, err)
	var unk *ErrUnknownOpcode
	assert.ErrorAs(t, err, &unk)
}

func TestWAIStallsUntilWoken(t *testing.T) {
	c, m := newTestCpu(t)
	c.Reset()
	load(m.Banks, c.PBR, c.PC, 0xCB) // WAI
	require.NoError(t, c.Step())
	assert.True(t, c.Waiting())

	before := c.Cycles
	require.NoError(t, c.Step())
	assert.Equal(t, before+1, c.Cycles, "Step() is a no-op cycle while waiting")

	c.WakeFromWait()
	assert.False(t, c.Waiting())
}
