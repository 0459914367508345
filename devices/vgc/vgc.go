// Package vgc implements the Video Graphics Controller's scanline/VBL
// timing and scanline offset tables, grounded directly on
// original_source/clem_vgc.c: a free-running v-counter derived from
// elapsed clock time (not an actual hardware counter register), a VBL
// region test, and the documented VERTCNT/HORIZCNT bit encodings.
package vgc

import "github.com/clem-emu/clem/clock"

const (
	// IRQVBlank is the bit this device ORs into the machine's IRQ line
	// when v-counter crosses into the vertical blank region with VBL-IRQ
	// enabled (spec.md §4.6, original_source CLEM_IRQ_VGC_BLANK).
	IRQVBlank = 1 << 2

	horizScanTimeNS = 980 * 65 // 65 cycles/scanline at ~980ns per cycle (clem_vgc.c comment)
	ntscScanTimeNS  = horizScanTimeNS * 262
	vblNTSCUpper    = 200 // v-counter value at which NTSC vertical blank begins
)

// Scanline describes one rendered line: its byte offset into the owning
// bank, and a meta byte (scanline control register bits for super-hires).
type Scanline struct {
	Offset uint32
	Meta   byte
}

// VGC tracks scanline progression and owns the scanline offset tables for
// text, hi-res, and super-hi-res modes (spec.md §3, §4.6).
type VGC struct {
	modeEnableVBLIRQ bool
	language         bool
	pal              bool
	textLanguage     byte
	newVideoSHGR     bool
	textFG, textBG   byte

	tsLastFrame  uint64
	tsScanline0  uint64
	dtScanline   uint64
	initialized  bool

	scanlineSelect int // C02E-selected row into SHGR, auto-incremented by a C02F write

	Text1, Text2   [192]Scanline
	HGR1, HGR2     [192]Scanline
	SHGR           [200]Scanline
}

func New() *VGC {
	v := &VGC{}
	v.Reset()
	return v
}

// Reset rebuilds the scanline offset tables, following the exact layout
// original_source/clem_vgc.c builds at clem_vgc_reset: text pages in
// three groups of 8 rows with a 128-byte stride and a 40/80-byte
// "hole" between the three interleaved thirds of the screen; hires
// extends this with a 1024-byte intra-row stride across 8 sub-rows;
// super-hires is a flat 160-byte-per-line buffer starting at $2000.
func (v *VGC) Reset() {
	v.modeEnableVBLIRQ = false
	v.language = false
	v.pal = false
	v.textLanguage = 0
	v.newVideoSHGR = false
	v.textFG, v.textBG = 0x0F, 0x01
	v.initialized = false
	v.scanlineSelect = 0

	buildTextTable(&v.Text1, 0x0400)
	buildTextTable(&v.Text2, 0x0800)
	buildHiresTable(&v.HGR1, 0x2000)
	buildHiresTable(&v.HGR2, 0x4000)

	offset := uint32(0x2000)
	for row := range v.SHGR {
		v.SHGR[row] = Scanline{Offset: offset}
		offset += 160
	}
}

func buildTextTable(table *[192]Scanline, base uint32) {
	offset := base
	for row := 0; row < 8; row++ {
		table[row] = Scanline{Offset: offset}
		table[row+8] = Scanline{Offset: offset + 40}
		table[row+16] = Scanline{Offset: offset + 80}
		offset += 128
	}
}

func buildHiresTable(table *[192]Scanline, base uint32) {
	for row := 0; row < 8; row++ {
		table[row*8] = Scanline{Offset: base + uint32(row)*128}
		table[64+row*8] = Scanline{Offset: base + 0x28 + uint32(row)*128}
		table[128+row*8] = Scanline{Offset: base + 0x50 + uint32(row)*128}
	}
	for row := 0; row < 24; row++ {
		for inner := 1; inner < 8; inner++ {
			table[row*8+inner] = Scanline{Offset: table[row*8+inner-1].Offset + 0x400}
		}
	}
}

// Sync recomputes the frame/scanline timestamps from clk and returns any
// newly-asserted IRQ bits (spec.md §4.6, clem_vgc_sync).
func (v *VGC) Sync(clk *clock.Clock) (irqLine uint32) {
	if !v.initialized {
		v.tsLastFrame = clk.TS
		v.tsScanline0 = clk.TS
		v.dtScanline = 0
		v.initialized = true
		return 0
	}

	v.dtScanline += clk.Elapsed(v.tsLastFrame)
	scanlineNs := clk.Nanos(v.dtScanline)
	if scanlineNs > uint64(horizScanTimeNS) {
		v.dtScanline = 0
	}

	frameNs := clk.Nanos(clk.Elapsed(v.tsScanline0))
	vCounter := uint32(frameNs / horizScanTimeNS)
	if v.modeEnableVBLIRQ && vCounter >= vblNTSCUpper {
		irqLine |= IRQVBlank
	}
	if frameNs >= uint64(ntscScanTimeNS) {
		v.tsScanline0 = clk.TS - (uint64(ntscScanTimeNS) - frameNs)
	}

	v.tsLastFrame = clk.TS
	return irqLine
}

func (v *VGC) vCounter(clk *clock.Clock) uint32 {
	frameNs := clk.Nanos(clk.Elapsed(v.tsScanline0))
	return uint32(frameNs / horizScanTimeNS)
}

func (v *VGC) hCounter(clk *clock.Clock) uint32 {
	return uint32(clk.Nanos(v.dtScanline) / 980)
}

// ReadSwitch returns the VBLBAR/VERTCNT/HORIZCNT encodings (spec.md §8
// invariant 6 and clem_vgc_read_switch). reg is one of RegVBLBar,
// RegVertCnt, RegHorizCnt, defined in this package; when noOp is false the
// device re-syncs first, matching the original's "sync unless no-op".
func (v *VGC) ReadSwitch(clk *clock.Clock, reg int, noOp bool) byte {
	if !noOp {
		v.Sync(clk)
	}
	vCounter := v.vCounter(clk)
	switch reg {
	case RegVBLBar:
		if vCounter >= vblNTSCUpper {
			return 0x80
		}
		return 0
	case RegVertCnt:
		return byte(((vCounter + 0xFA) >> 1) & 0xFF)
	case RegHorizCnt:
		hCounter := v.hCounter(clk)
		var result byte
		if hCounter >= 1 {
			result = byte(0x3F + hCounter)
		}
		result |= byte((vCounter+0xFA)&1) << 7
		return result
	}
	return 0
}

const (
	RegVBLBar   = iota // spec.md §4.6 "VBLBAR high bit reflects blank state"
	RegVertCnt
	RegHorizCnt
)

func (v *VGC) ReadNewVideo() byte {
	var r byte = 0x01 // bank-latch bit, always set (original source comment)
	if v.newVideoSHGR {
		r |= 0x80
	}
	return r
}

func (v *VGC) WriteNewVideo(val byte) {
	v.newVideoSHGR = val&0x80 != 0
	v.modeEnableVBLIRQ = val&0x02 != 0
}

func (v *VGC) WriteTextColors(val byte) {
	v.textFG = val >> 4
	v.textBG = val & 0x0F
}

// WriteRegion applies the C02B region byte: language/PAL mode bits and
// the 3-bit text-language code (original_source clem_vgc_set_region).
func (v *VGC) WriteRegion(val byte) {
	v.language = val&0x08 != 0
	v.pal = val&0x10 != 0
	v.textLanguage = (val & 0xE0) >> 5
}

func (v *VGC) ReadRegion() byte {
	var r byte
	if v.language {
		r |= 0x08
	}
	if v.pal {
		r |= 0x10
	}
	r |= (v.textLanguage << 5) & 0xE0
	return r
}

// WriteScanlineControl implements the C02E/C02F scanline-control register
// pair (original_source clem_vgc.c: each SHGR scanline carries its own
// meta byte, "the scanline control register"). A C02E write (isData
// false) selects the target row; a C02F write (isData true) stores val
// into that row's Meta and advances to the next row, the same
// select-then-stream protocol the hardware uses to paint one control
// byte per scanline without re-selecting each time. Full SHGR
// rasterization from Meta remains out of scope (spec.md §1 Non-goals);
// only faithfully storing the addressed byte is implemented.
func (v *VGC) WriteScanlineControl(isData bool, val byte) {
	if !isData {
		v.scanlineSelect = int(val) % len(v.SHGR)
		return
	}
	v.SHGR[v.scanlineSelect].Meta = val
	v.scanlineSelect = (v.scanlineSelect + 1) % len(v.SHGR)
}
