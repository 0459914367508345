// Package cpu implements the WDC 65C816 microprocessor, as used in the
// Apple IIgs, operating in both 6502-emulation and native 16-bit modes.
//
// Descended from a MOS 6502 (NES) interpreter: the register file, pin
// block, fetch/decode/execute tick, and interrupt sequencing below keep
// that interpreter's shape (a struct of registers plus a status-flag
// group, a byte-keyed opcode table, and per-opcode cycle accounting) and
// generalize it to the 65816's wider, mode-dependent register file.
package cpu

import (
	"fmt"

	"github.com/clem-emu/clem/mask"
	"github.com/clem-emu/clem/mmu"
)

// Width is the operand width an instruction currently operates at: 8 bits
// (emulation mode, or native mode with M/X set) or 16 bits.
type Width int

const (
	W8  Width = 1
	W16 Width = 2
)

// Flags is the 8-bit status register (P), modeled as independent bools so
// instruction bodies read/set them by name rather than by bit position
// (spec.md §3 "P (8-bit flags: N, V, M, X, D, I, Z, C)").
type Flags struct {
	Negative bool // N
	Overflow bool // V
	M        bool // accumulator width: 1 = 8-bit
	X        bool // index-register width: 1 = 8-bit
	Decimal  bool // D
	Irq      bool // I: IRQ disable
	Zero     bool // Z
	Carry    bool // C
}

// Byte packs the flags into the native-mode P register encoding
// (N V M X D I Z C).
func (f Flags) Byte() byte {
	var b byte
	if f.Negative {
		b |= 0x80
	}
	if f.Overflow {
		b |= 0x40
	}
	if f.M {
		b |= 0x20
	}
	if f.X {
		b |= 0x10
	}
	if f.Decimal {
		b |= 0x08
	}
	if f.Irq {
		b |= 0x04
	}
	if f.Zero {
		b |= 0x02
	}
	if f.Carry {
		b |= 0x01
	}
	return b
}

// FlagsFromByte unpacks a native-mode P register byte.
func FlagsFromByte(b byte) Flags {
	return Flags{
		Negative: b&0x80 != 0,
		Overflow: b&0x40 != 0,
		M:        b&0x20 != 0,
		X:        b&0x10 != 0,
		Decimal:  b&0x08 != 0,
		Irq:      b&0x04 != 0,
		Zero:     b&0x02 != 0,
		Carry:    b&0x01 != 0,
	}
}

// emulationByte packs the flags using the emulation-mode encoding, where
// bit 5 always reads 1 (unused) and bit 4 is the B (break) flag rather
// than X-width, as pushed by BRK/IRQ/NMI in emulation mode.
func (f Flags) emulationByte(breakFlag bool) byte {
	b := f.Byte() | 0x20
	if breakFlag {
		b |= 0x10
	} else {
		b &^= 0x10
	}
	return b
}

// StateType is the CPU's current lifecycle phase (spec.md §3 "Lifecycle").
type StateType int

const (
	StateReset StateType = iota
	StateExecute
	StateIRQ
	StateNMI
)

// TraceEntry is delivered to a host-supplied callback once per executed
// instruction (spec.md §6 "opcode trace callback").
type TraceEntry struct {
	PBR        uint8
	PC         uint16
	Bytes      []byte
	Mnemonic   string
	Operand    string
	CyclesSpent uint64
}

// Logger is the minimal host-supplied diagnostic sink (spec.md §7
// "Nothing in the core throws; all errors are either return codes or
// diagnostic log entries via a host-supplied logger").
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Debugf(string, ...any) {}

// Cpu is the 65C816 register file, pin block, and interpreter state.
//
// The register file generalizes the teacher's 6502 struct
// (Accumulator/X/Y/Stack/ProgramCounter/Flags) to the 65816's wider file:
// 16-bit A/X/Y with M/X-width masking, PBR/DBR/D/S, emulation mode, and
// the pin block (resbIn/irqbIn/readyOut) named in spec.md §3.
type Cpu struct {
	MMU *mmu.MMU

	PC  uint16
	PBR uint8
	DBR uint8
	D   uint16
	S   uint16
	A   uint16
	X   uint16
	Y   uint16
	P   Flags

	Emulation bool

	ResbIn   bool
	IrqbIn   bool
	NmibEdge bool // NMI edge pin; Step does not sample it (see Step)
	ReadyOut bool

	Enabled bool
	State   StateType

	// Cycles is the cumulative count of bus cycles executed, monotonically
	// non-decreasing (spec.md §8 invariant 2).
	Cycles uint64

	waiting bool // WAI: blocked until an interrupt is pending
	stopped bool // STP: disabled until reset

	// decode scratch, valid only during the execution of a single
	// instruction
	effBank  uint8
	effAddr  uint16
	extraCyc uint64
	curMode  AddressingMode

	Trace  func(TraceEntry)
	Logger Logger
}

// New constructs a Cpu wired to m and runs Reset on it before returning
// (spec.md §6 "Reset is implicit on construction").
func New(m *mmu.MMU) *Cpu {
	c := &Cpu{MMU: m, Logger: nopLogger{}}
	c.Reset()
	return c
}

// aWidth reports the accumulator's current operand width.
func (c *Cpu) aWidth() Width {
	if c.Emulation || c.P.M {
		return W8
	}
	return W16
}

// xWidth reports X/Y's current operand width.
func (c *Cpu) xWidth() Width {
	if c.Emulation || c.P.X {
		return W8
	}
	return W16
}

func (c *Cpu) maskA(v uint16) uint16 {
	if c.aWidth() == W8 {
		return v & 0x00FF
	}
	return v
}

func (c *Cpu) maskX(v uint16) uint16 {
	if c.xWidth() == W8 {
		return v & 0x00FF
	}
	return v
}

// Read is the CPU's data-access entry point into the MMU. The caller
// always passes the bank (DBR, PBR or an explicit bank); Read applies no
// default.
func (c *Cpu) Read(bank uint8, addr uint16) byte {
	return c.MMU.Read(bank, addr, mmu.HintData)
}

// Write mirrors Read.
func (c *Cpu) Write(bank uint8, addr uint16, v byte) {
	c.MMU.Write(v, bank, addr)
}

// fetchOpcodeByte reads the byte at (PBR,PC) as an opcode fetch and
// advances PC.
func (c *Cpu) fetchOpcodeByte() byte {
	v := c.MMU.Read(c.PBR, c.PC, mmu.HintOpcodeFetch)
	c.PC++
	return v
}

// fetchPC8 reads one operand byte following the opcode and advances PC.
func (c *Cpu) fetchPC8() byte {
	v := c.MMU.Read(c.PBR, c.PC, mmu.HintData)
	c.PC++
	return v
}

// fetchPC16 reads a little-endian 16-bit operand following the opcode.
func (c *Cpu) fetchPC16() uint16 {
	lo := c.fetchPC8()
	hi := c.fetchPC8()
	return mask.Word(hi, lo)
}

// fetchPC24 reads a little-endian 24-bit (bank, addr) operand.
func (c *Cpu) fetchPC24() (bank uint8, addr uint16) {
	lo := c.fetchPC8()
	hi := c.fetchPC8()
	bank = c.fetchPC8()
	return bank, mask.Word(hi, lo)
}

// pushByte pushes v onto the stack. In emulation mode S wraps within page
// 1 (spec.md §4.4 "emulation-mode stack wrapping within page 1"); in
// native mode S is a full 16-bit pointer with no wrap.
func (c *Cpu) pushByte(v byte) {
	addr := c.S
	c.Write(0x00, addr, v)
	c.S--
	if c.Emulation {
		c.S = 0x0100 | (c.S & 0x00FF)
	}
}

func (c *Cpu) pullByte() byte {
	c.S++
	if c.Emulation {
		c.S = 0x0100 | (c.S & 0x00FF)
	}
	return c.Read(0x00, c.S)
}

func (c *Cpu) pushWord(v uint16) {
	c.pushByte(mask.Hi(v))
	c.pushByte(mask.Lo(v))
}

func (c *Cpu) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return mask.Word(hi, lo)
}

// Reset brings the CPU up per spec.md §4.4 "Reset sequence": read-then-
// discard three stack locations, force emulation mode and the documented
// flag state, clear PBR/DBR/D, pull PC from the reset vector.
//
// Grounded on the teacher's `reset()` (push/pull-free register clear plus
// vector fetch), extended with the documented dummy stack reads and
// native-mode-specific truncation.
func (c *Cpu) Reset() {
	c.Enabled = true
	c.State = StateReset
	c.ResbIn = false
	c.waiting = false
	c.stopped = false

	// Three dummy reads from the (pre-reset) stack location, discarded.
	for i := 0; i < 3; i++ {
		c.Read(0x00, c.S)
		c.S--
	}

	c.Emulation = true
	c.P.Irq = true
	c.P.Decimal = false
	c.P.M = true
	c.P.X = true
	c.PBR = 0
	c.DBR = 0
	c.D = 0
	c.S = 0x0100 | (c.S & 0x00FF)
	c.X &= 0x00FF
	c.Y &= 0x00FF

	lo := c.Read(0x00, 0xFFFC)
	hi := c.Read(0x00, 0xFFFD)
	c.PC = mask.Word(hi, lo)

	c.State = StateExecute
	c.ResbIn = true
	c.Cycles = 0
}

// vectors for each interrupt kind, indexed [emulation][native].
var (
	vectorNMI  = [2]uint16{0xFFFA, 0xFFEA}
	vectorIRQ  = [2]uint16{0xFFFE, 0xFFEE}
	vectorBRK  = [2]uint16{0xFFFE, 0xFFE6}
	vectorCOP  = [2]uint16{0xFFF4, 0xFFE4}
)

func (c *Cpu) emuIdx() int {
	if c.Emulation {
		return 0
	}
	return 1
}

// serviceInterrupt pushes (PBR,PC,P) — PBR only in native mode — sets
// PBR=0, DBR unchanged, loads PC from vector, and sets the I flag
// (spec.md §4.4 "BRK/COP push... RTI pops... IRQ and NMI follow the same
// push/vector sequence as BRK").
func (c *Cpu) serviceInterrupt(vector [2]uint16, breakFlag bool) {
	if !c.Emulation {
		c.pushByte(c.PBR)
	}
	c.pushWord(c.PC)
	if c.Emulation {
		c.pushByte(c.P.emulationByte(breakFlag))
	} else {
		c.pushByte(c.P.Byte())
	}
	c.P.Irq = true
	c.P.Decimal = false
	c.PBR = 0
	lo := c.Read(0x00, vector[c.emuIdx()])
	hi := c.Read(0x00, vector[c.emuIdx()]+1)
	c.PC = mask.Word(hi, lo)
}

// NMI delivers a non-maskable interrupt; cannot be ignored (spec.md §4.4
// "NMI pin edge").
func (c *Cpu) NMI() {
	c.waiting = false
	c.serviceInterrupt(vectorNMI, false)
}

// IRQ delivers a maskable interrupt if IRQ-disable is clear (spec.md
// §4.4 "IRQ pin low if IRQ-disable clear").
func (c *Cpu) IRQ() {
	if c.P.Irq {
		return
	}
	c.waiting = false
	c.serviceInterrupt(vectorIRQ, false)
}

// Stopped reports whether STP has halted the CPU until the next Reset.
func (c *Cpu) Stopped() bool { return c.stopped }

// Waiting reports whether WAI is blocking further fetches.
func (c *Cpu) Waiting() bool { return c.waiting }

// WakeFromWait clears a WAI stall once an interrupt is pending (spec.md
// §4.4 "WAI lowers readyOut and blocks further fetches until an
// interrupt is pending").
func (c *Cpu) WakeFromWait() {
	if c.waiting {
		c.waiting = false
		c.ReadyOut = true
	}
}

// ErrUnknownOpcode is returned by Step when the fetched opcode has no
// table entry (spec.md §7 "Unknown opcode").
type ErrUnknownOpcode struct {
	PBR uint8
	PC  uint16
	Op  byte
}

func (e *ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at %02X:%04X", e.Op, e.PBR, e.PC)
}

// Step executes a single instruction (or, if RESB is asserted, runs the
// reset micro-op). RESB is the only pin Step samples: NmibEdge and IrqbIn
// are not read, and NMI and IRQ are taken only when a caller invokes NMI
// or IRQ between steps (machine.Step does so for IRQ; nothing raises NMI).
//
// Grounded on the teacher's tick() (fetch opcode, decode address mode,
// invoke Instruction, accumulate Cycles), extended with the per-mode
// opcode table, WAI/STP gating, and the trace callback.
func (c *Cpu) Step() error {
	if !c.ResbIn {
		c.Reset()
		return nil
	}
	if c.stopped {
		return nil
	}
	if c.waiting {
		c.Cycles++
		return nil
	}

	startPBR, startPC := c.PBR, c.PC
	startCycles := c.Cycles

	opByte := c.fetchOpcodeByte()
	op := Opcodes[opByte]
	if op.Instruction == nil {
		c.Logger.Warnf("unimplemented opcode 0x%02X at %02X:%04X", opByte, startPBR, startPC)
		c.stopped = true
		return &ErrUnknownOpcode{PBR: startPBR, PC: startPC, Op: opByte}
	}

	c.extraCyc = 0
	c.curMode = op.AddressingMode
	op.Instruction(c, op)
	c.Cycles += uint64(op.Cycles) + c.extraCyc

	if c.Trace != nil {
		c.Trace(TraceEntry{
			PBR:         startPBR,
			PC:          startPC,
			Bytes:       []byte{opByte},
			Mnemonic:    op.Name,
			Operand:     op.AddressingMode.String(),
			CyclesSpent: c.Cycles - startCycles,
		})
	}
	return nil
}
