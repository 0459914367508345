package mmu

import "github.com/clem-emu/clem/clock"

// AccessHint distinguishes the three kinds of memory access the CPU core
// performs (spec.md §4.2): an opcode fetch, a plain data access, or a
// "no-op-read" used by MMIO registers whose read has a side effect that
// must be suppressed (debugger inspection, trace capture).
type AccessHint uint8

const (
	HintData AccessHint = iota
	HintOpcodeFetch
	HintNoOpRead
)

// IOHandler is implemented by the MMIO dispatcher (package mmio) and
// wired in by the machine driver, keeping mmu free of a dependency on
// mmio (spec.md §4.5).
type IOHandler interface {
	ReadIO(reg uint8, hint AccessHint) byte
	WriteIO(reg uint8, v byte)
}

// MMU is the memory management unit: owned banks, the rebuildable page
// map, current soft-switch state, the two language-card instances, and a
// pointer to the shared Clock every access advances (spec.md §2-4).
type MMU struct {
	Banks    *Banks
	Clock    *clock.Clock
	ClockCfg clock.Config

	Pages PageMap
	SW    SoftSwitches
	LC    [2]LanguageCard

	IO IOHandler
}

// New constructs an MMU over banks, ticking clk by the steps in cfg, and
// immediately builds the initial page map from the reset soft-switch
// state.
func New(banks *Banks, clk *clock.Clock, cfg clock.Config) *MMU {
	m := &MMU{
		Banks:    banks,
		Clock:    clk,
		ClockCfg: cfg,
		SW:       DefaultSoftSwitches(),
	}
	m.RebuildPageMaps()
	return m
}

// SetIOHandler wires the MMIO dispatcher in. Must be called before any
// access to an IOADDR page.
func (m *MMU) SetIOHandler(h IOHandler) { m.IO = h }

// Reset restores power-on soft-switch state and rebuilds the page map.
func (m *MMU) Reset() {
	m.SW = DefaultSoftSwitches()
	m.RebuildPageMaps()
}

// RebuildPageMaps regenerates the page map from the current soft-switch
// state (spec.md §4.3). Called after every soft-switch mutation.
func (m *MMU) RebuildPageMaps() {
	RebuildPageMaps(&m.Pages, m.SW)
}

// Read performs a memory read, advancing the clock by the step
// appropriate to the bank addressed (spec.md §4.1-4.2).
func (m *MMU) Read(bank uint8, addr uint16, hint AccessHint) byte {
	mega2 := m.isSlowAccess(bank, addr)
	m.Clock.StepFastOrMega2(m.ClockCfg, mega2)
	return m.readNoStep(bank, addr, hint)
}

// ReadNoEffect reads a byte for display purposes only: no clock step, and
// HintNoOpRead so IO handlers suppress any read side effect (spec.md §6
// "debugger inspection must not perturb device state").
func (m *MMU) ReadNoEffect(bank uint8, addr uint16) byte {
	return m.readNoStep(bank, addr, HintNoOpRead)
}

// readNoStep performs the read without touching the clock; Read steps the
// clock before calling it, and ReadNoEffect calls it directly.
func (m *MMU) readNoStep(bank uint8, addr uint16, hint AccessHint) byte {
	switch {
	case bank == 0 || bank == 1:
		return m.readPage(bank, m.Pages.pages(bank)[addr>>8], addr, hint)
	case IsMega2(bank):
		return m.Banks.Mega2[bank-Mega2BankBase][addr]
	case m.Banks.RomMapped(bank):
		return m.Banks.ReadROM(uint32(bank-m.Banks.romBankStart)<<16 | uint32(addr))
	case int(bank) < len(m.Banks.FPI):
		return m.Banks.FPI[bank][addr]
	default:
		return 0xFF // floating bus (spec.md §7 "documented floating-bus value")
	}
}

func (m *MMU) readPage(bank uint8, p Page, addr uint16, hint AccessHint) byte {
	if p.Flags&IOADDR != 0 {
		if m.IO == nil {
			return 0xFF
		}
		return m.IO.ReadIO(uint8(addr), hint)
	}
	switch p.ReadKind {
	case KindROM:
		return m.Banks.ReadROM(uint32(addr))
	case KindLC:
		lc := &m.LC[0]
		if lcAux(p.ReadBank) {
			lc = &m.LC[1]
		}
		return lc.read(lcBank2(p.ReadBank), addr)
	case KindMega2:
		return m.Banks.Mega2[p.ReadBank][addr]
	default: // KindFPI
		return m.Banks.FPI[p.ReadBank][addr]
	}
}

// Write performs a memory write, advancing the clock and mirroring into
// Mega2 memory when the target page is shadowed (spec.md §3 "Shadowing").
func (m *MMU) Write(v byte, bank uint8, addr uint16) {
	mega2 := m.isSlowAccess(bank, addr)
	m.Clock.StepFastOrMega2(m.ClockCfg, mega2)
	m.writeNoStep(v, bank, addr)
}

func (m *MMU) writeNoStep(v byte, bank uint8, addr uint16) {
	switch {
	case bank == 0 || bank == 1:
		pages := m.Pages.pages(bank)
		p := pages[addr>>8]
		m.writePage(bank, p, addr, v)
	case IsMega2(bank):
		m.Banks.Mega2[bank-Mega2BankBase][addr] = v
	case int(bank) < len(m.Banks.FPI) && !m.Banks.RomMapped(bank):
		m.Banks.FPI[bank][addr] = v
	}
}

func (m *MMU) writePage(bank uint8, p Page, addr uint16, v byte) {
	if p.Flags&IOADDR != 0 {
		if m.IO != nil {
			m.IO.WriteIO(uint8(addr), v)
		}
		return
	}
	if p.Flags&WriteOK == 0 {
		return // ROM / write-protected LC: documented no-op
	}

	switch p.WriteKind {
	case KindLC:
		lc := &m.LC[0]
		if lcAux(p.WriteBank) {
			lc = &m.LC[1]
		}
		lc.write(lcBank2(p.WriteBank), addr, v)
	case KindMega2:
		m.Banks.Mega2[p.WriteBank][addr] = v
	default: // KindFPI
		m.Banks.FPI[p.WriteBank][addr] = v
	}

	if p.ShadowBank >= 0 {
		m.Banks.Mega2[p.ShadowBank][addr] = v
	}
}

// WriteBankByte writes directly into a bank with no page-map translation
// and no clock cost, for bulk program loading (spec.md §6 "Program
// loading"). Satisfies loader.Target.
func (m *MMU) WriteBankByte(bank uint8, addr uint16, v byte) {
	m.Banks.WriteRaw(bank, addr, v)
}

// isSlowAccess classifies an access as Mega2-speed (spec.md §4.1): any
// access to banks 0xE0/0xE1, or any FPI bank-0/1 access landing on a
// page flagged IOADDR or carrying an active shadow, while the speed
// register is set to fast (fast-mode execution still pays the Mega2
// penalty for shadowed/IO regions).
func (m *MMU) isSlowAccess(bank uint8, addr uint16) bool {
	if IsMega2(bank) {
		return true
	}
	if !m.SW.SpeedFast {
		return true
	}
	if bank == 0 || bank == 1 {
		p := m.Pages.pages(bank)[addr>>8]
		return p.Flags&IOADDR != 0 || p.ShadowBank >= 0
	}
	return false
}
