package mmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clem-emu/clem/clock"
)

func newTestMMU(t *testing.T) *MMU {
	t.Helper()
	banks, err := NewBanks(4, make([]byte, 0x10000))
	require.NoError(t, err)
	clk := clock.New()
	return New(banks, clk, clock.DefaultConfig())
}

func TestZeroPageFollowsAltZPLC(t *testing.T) {
	m := newTestMMU(t)

	m.Write(0xAA, 0x00, 0x0000)
	assert.Equal(t, byte(0xAA), m.Read(0x00, 0x0000, HintData))

	m.SW.AltZPLC = true
	m.RebuildPageMaps()

	// page 0 of bank 0 now redirects to FPI bank 1's storage.
	m.Write(0xBB, 0x00, 0x0000)
	assert.Equal(t, byte(0xBB), m.Banks.FPI[1][0x0000])
	assert.Equal(t, byte(0xAA), m.Banks.FPI[0][0x0000], "original main-bank byte must be untouched")
}

func TestRAMRDRAMWRTIndependence(t *testing.T) {
	m := newTestMMU(t)
	m.SW.RAMRD = false
	m.SW.RAMWRT = true
	m.RebuildPageMaps()

	m.Write(0x42, 0x00, 0x1000)
	assert.Equal(t, byte(0x42), m.Banks.FPI[1][0x1000], "write should land in aux bank")
	assert.Equal(t, byte(0), m.Banks.FPI[0][0x1000])

	m.Banks.FPI[0][0x1000] = 0x11
	assert.Equal(t, byte(0x11), m.Read(0x00, 0x1000, HintData), "read should come from main bank")
}

func TestAuxBankDirectAccessBypassesSubstitution(t *testing.T) {
	m := newTestMMU(t)
	m.SW.RAMRD = true
	m.SW.RAMWRT = true
	m.RebuildPageMaps()

	m.Write(0x99, 0x01, 0x3000)
	assert.Equal(t, byte(0x99), m.Banks.FPI[1][0x3000])
}

func TestShadowedHGR1WriteThroughToMega2(t *testing.T) {
	m := newTestMMU(t)
	m.RebuildPageMaps() // NShadow defaults false -> shadow enabled

	m.Write(0x55, 0x00, 0x2005)
	assert.Equal(t, byte(0x55), m.Banks.FPI[0][0x2005])
	assert.Equal(t, byte(0x55), m.Banks.Mega2[0][0x2005], "HGR1 write must shadow to Mega2 bank 0xE0")

	m.SW.NShadow.HGR1 = true
	m.RebuildPageMaps()
	m.Write(0x66, 0x00, 0x2005)
	assert.Equal(t, byte(0x66), m.Banks.FPI[0][0x2005])
	assert.Equal(t, byte(0x55), m.Banks.Mega2[0][0x2005], "shadowing disabled: Mega2 must not change")
}

func TestIOPageRedirectsToHandler(t *testing.T) {
	m := newTestMMU(t)
	h := &fakeIO{}
	m.SetIOHandler(h)

	m.Write(0x01, 0x00, 0xC030)
	assert.Equal(t, uint8(0x30), h.lastWriteReg)
	assert.Equal(t, byte(0x01), h.lastWriteVal)

	h.readVal = 0x7E
	assert.Equal(t, byte(0x7E), m.Read(0x00, 0xC031, HintData))
	assert.Equal(t, uint8(0x31), h.lastReadReg)
}

func TestNIOLCRedirectsCxROMToROM(t *testing.T) {
	m := newTestMMU(t)
	m.Banks.ROM[0xC200] = 0xDE
	m.SW.NIOLC = true
	m.RebuildPageMaps()

	assert.Equal(t, byte(0xDE), m.Read(0x00, 0xC200, HintData))

	// C000-C0FF stays IOADDR regardless of NIOLC.
	h := &fakeIO{readVal: 0x12}
	m.SetIOHandler(h)
	assert.Equal(t, byte(0x12), m.Read(0x00, 0xC030, HintData))
}

func TestLanguageCardToggle(t *testing.T) {
	m := newTestMMU(t)
	m.Banks.ROM[0xD000] = 0xC9 // distinctive ROM byte at $D000

	m.SW.LCSwitch(0x89) // LC1, ROM read, write-enable
	m.RebuildPageMaps()
	assert.Equal(t, byte(0xC9), m.Read(0x00, 0xD000, HintData))

	m.Write(0x5A, 0x00, 0xD000) // WRLCRAM is enabled; lands in LC RAM
	assert.Equal(t, byte(0xC9), m.Read(0x00, 0xD000, HintData), "ROM still read back until RDLCRAM flips")

	m.SW.LCSwitch(0x88) // LC1, RAM read, write-protect
	m.RebuildPageMaps()
	assert.Equal(t, byte(0x5A), m.Read(0x00, 0xD000, HintData))

	m.Write(0xFF, 0x00, 0xD000)
	assert.Equal(t, byte(0x5A), m.Read(0x00, 0xD000, HintData), "write-protected: must not change")
}

func TestLCBankSelection(t *testing.T) {
	m := newTestMMU(t)
	m.SW.LCSwitch(0x83) // bank 2, RAM read/write
	m.RebuildPageMaps()
	m.Write(0x02, 0x00, 0xD050)

	m.SW.LCSwitch(0x8B) // bank 1, RAM read/write
	m.RebuildPageMaps()
	m.Write(0x01, 0x00, 0xD050)

	assert.Equal(t, byte(0x01), m.LC[0].DBank1[0x50])
	assert.Equal(t, byte(0x02), m.LC[0].DBank2[0x50])
}

func TestFloatingBusForUnmappedBank(t *testing.T) {
	m := newTestMMU(t)
	assert.Equal(t, byte(0xFF), m.Read(0x50, 0x1234, HintData))
}

func TestMega2AccessAlwaysSlow(t *testing.T) {
	m := newTestMMU(t)
	m.SW.SpeedFast = true
	m.RebuildPageMaps()

	before := m.Clock.TS
	m.Read(0xE0, 0x0000, HintData)
	assert.Equal(t, uint64(m.ClockCfg.StepMega2), m.Clock.TS-before)
}

type fakeIO struct {
	lastReadReg, lastWriteReg uint8
	lastWriteVal              byte
	readVal                   byte
}

func (f *fakeIO) ReadIO(reg uint8, hint AccessHint) byte {
	f.lastReadReg = reg
	return f.readVal
}

func (f *fakeIO) WriteIO(reg uint8, v byte) {
	f.lastWriteReg = reg
	f.lastWriteVal = v
}
