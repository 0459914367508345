package mmu

import "github.com/clem-emu/clem/mask"

// NShadowFlags tracks the per-region shadow-write-through bits of the
// shadow register (spec.md §3 "NSHADOW_{TXT1,TXT2,HGR1,HGR2,SHGR,AUX}").
// A true value here means shadowing is DISABLED for that region (the
// "N" prefix is "no shadow", matching the hardware register's polarity).
type NShadowFlags struct {
	Text1 bool
	Text2 bool
	HGR1  bool
	HGR2  bool
	SHGR  bool
	Aux   bool
}

// SoftSwitches accumulates every soft-switch bit the page map builder
// consults (spec.md §3 "Soft-switch state").
type SoftSwitches struct {
	AltZPLC bool // ALTZPLC: page 0/1 follow aux zero-page+stack
	RAMRD   bool // read from aux 48K RAM instead of main
	RAMWRT  bool // write to aux 48K RAM instead of main
	RDLCRAM bool // language-card read source is RAM (vs ROM)
	WRLCRAM bool // language-card writes are enabled
	LCBank2 bool // language-card bank 2 selected (vs bank 1)
	CXROM   bool // slot ROM selected for C100-CFFF (set by C006, cleared by C007)
	C3ROM   bool // slot 3 ROM selected for C300-C3FF (set by C00A, cleared by C00B)
	NIOLC   bool // Cx00-CFFF redirected to internal ROM/LC instead of IOADDR

	NShadow NShadowFlags

	// VGC mode flags
	Col80     bool // 80-column mode
	HiRes     bool
	SHires    bool
	PageAlt   bool // page 2 selected for text/lores
	TextColor bool // RGB vs monochrome text in super hi-res border
	Language  bool // IOU vs GLU language switch (ROM 01 vs 03)

	SpeedFast bool // speed register: true = fast (FPI), false = slow (1 MHz)
	StateReg  byte // composite C068 STATEREG bits, stored verbatim
}

// DefaultSoftSwitches returns the power-on/reset state: main RAM visible,
// ROM read at D000-FFFF, C100-CFFF routed to I/O, LC bank 2, slow speed.
func DefaultSoftSwitches() SoftSwitches {
	return SoftSwitches{
		RDLCRAM: false,
		WRLCRAM: false,
		LCBank2: true,
		CXROM:   false,
		C3ROM:   false,
		NIOLC:   false,
		SpeedFast: false,
	}
}

// LCSwitch applies the documented language-card soft-switch protocol for
// a register in the C080-C08F range. reg is the full register number; only
// its low 4 bits are significant, and bit 2 is a mirror (C080==C084, etc).
//
// This is a direct, if temporally simplified, reproduction of the 16-way
// Apple II language-card truth table: bits 0-1 of the register select one
// of {RAM-read/write-protect, ROM-read/write-enable, ROM-read/write-protect,
// RAM-read/write-enable}, and bit 3 selects bank 1 vs bank 2. Real hardware
// requires two consecutive reads to latch WRLCRAM; this model latches on
// the first access, which spec.md's §9 open questions leave as an
// acceptable simplification for a core with no analog bus-contention model.
func (s *SoftSwitches) LCSwitch(reg byte) {
	code := mask.Last(reg, mask.I2)
	bank1 := mask.IsSet(reg, mask.I5)

	switch code {
	case 0x00:
		s.RDLCRAM = true
		s.WRLCRAM = false
	case 0x01:
		s.RDLCRAM = false
		s.WRLCRAM = true
	case 0x02:
		s.RDLCRAM = false
		s.WRLCRAM = false
	case 0x03:
		s.RDLCRAM = true
		s.WRLCRAM = true
	}
	s.LCBank2 = !bank1
}

// SetShadowReg applies a C035 SHADOW register write: each low bit
// disables write-through shadowing for one video-visible region, and bit
// 6 mirrors NIOLC (spec.md §3 "NSHADOW_{TXT1,TXT2,HGR1,HGR2,SHGR,AUX}").
func (s *SoftSwitches) SetShadowReg(v byte) {
	s.NShadow = NShadowFlags{
		Text1: mask.IsSet(v, mask.I8),
		Text2: mask.IsSet(v, mask.I7),
		HGR1:  mask.IsSet(v, mask.I6),
		HGR2:  mask.IsSet(v, mask.I5),
		SHGR:  mask.IsSet(v, mask.I4),
		Aux:   mask.IsSet(v, mask.I3),
	}
	s.NIOLC = mask.IsSet(v, mask.I2)
}

// SetSpeedReg applies a C036 SPEED register write: bit 7 selects
// fast (FPI) vs slow (1 MHz) bus timing.
func (s *SoftSwitches) SetSpeedReg(v byte) {
	s.SpeedFast = mask.IsSet(v, mask.I1)
}

// StateRegByte composes the C068 STATEREG read value from the
// individual soft switches it amalgamates (spec.md §4.5 "state register
// (composite of C068 bits)"). The exact bit-for-bit layout beyond ALTZP
// and the LC bits is a documented simplification: the two low bits read
// as 1 while CXROM and C3ROM, respectively, are clear (internal ROM).
func (s *SoftSwitches) StateRegByte() byte {
	var v byte
	if s.AltZPLC {
		v = mask.Set(v, mask.I1, 1)
	}
	if s.LCBank2 {
		v = mask.Set(v, mask.I2, 1)
	}
	if s.RDLCRAM {
		v = mask.Set(v, mask.I3, 1)
	}
	if s.WRLCRAM {
		v = mask.Set(v, mask.I4, 1)
	}
	if s.RAMRD {
		v = mask.Set(v, mask.I5, 1)
	}
	if s.RAMWRT {
		v = mask.Set(v, mask.I6, 1)
	}
	if !s.CXROM {
		v = mask.Set(v, mask.I7, 1)
	}
	if !s.C3ROM {
		v = mask.Set(v, mask.I8, 1)
	}
	return v
}
