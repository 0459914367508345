package cpu

import "github.com/clem-emu/clem/mask"

// AddressingMode enumerates the 65816's addressing modes (spec.md §4.3).
// Generalizes the teacher's AddressingMode enum (which covered only the
// 6502's subset) to the full 65816 set, including the stack-relative and
// indirect-long modes the 6502 never had.
type AddressingMode int

const (
	AddrImplied AddressingMode = iota
	AddrAccumulator
	AddrImmediate
	AddrDirectPage
	AddrDirectPageX
	AddrDirectPageY
	AddrDirectPageIndirect
	AddrDirectPageIndirectLong
	AddrDirectPageIndexedIndirectX
	AddrDirectPageIndirectIndexedY
	AddrDirectPageIndirectLongIndexedY
	AddrAbsolute
	AddrAbsoluteX
	AddrAbsoluteY
	AddrAbsoluteLong
	AddrAbsoluteLongX
	AddrAbsoluteIndirect
	AddrAbsoluteIndirectLong
	AddrAbsoluteIndexedIndirect
	AddrStackRelative
	AddrStackRelativeIndirectIndexedY
	AddrProgramCounterRelative
	AddrProgramCounterRelativeLong
	AddrBlockMove
	AddrStackPush // PEA/PEI/PER: no decode() case, the instruction body computes its own push value
)

func (m AddressingMode) String() string {
	switch m {
	case AddrImplied:
		return "implied"
	case AddrAccumulator:
		return "A"
	case AddrImmediate:
		return "#imm"
	case AddrDirectPage:
		return "dp"
	case AddrDirectPageX:
		return "dp,x"
	case AddrDirectPageY:
		return "dp,y"
	case AddrDirectPageIndirect:
		return "(dp)"
	case AddrDirectPageIndirectLong:
		return "[dp]"
	case AddrDirectPageIndexedIndirectX:
		return "(dp,x)"
	case AddrDirectPageIndirectIndexedY:
		return "(dp),y"
	case AddrDirectPageIndirectLongIndexedY:
		return "[dp],y"
	case AddrAbsolute:
		return "abs"
	case AddrAbsoluteX:
		return "abs,x"
	case AddrAbsoluteY:
		return "abs,y"
	case AddrAbsoluteLong:
		return "long"
	case AddrAbsoluteLongX:
		return "long,x"
	case AddrAbsoluteIndirect:
		return "(abs)"
	case AddrAbsoluteIndirectLong:
		return "[abs]"
	case AddrAbsoluteIndexedIndirect:
		return "(abs,x)"
	case AddrStackRelative:
		return "sr,s"
	case AddrStackRelativeIndirectIndexedY:
		return "(sr,s),y"
	case AddrProgramCounterRelative:
		return "rel"
	case AddrProgramCounterRelativeLong:
		return "rel-long"
	case AddrBlockMove:
		return "block"
	case AddrStackPush:
		return "stack-push"
	default:
		return "?"
	}
}

// decode computes the effective (bank, address) for the current
// instruction's addressing mode, per the per-family bank rules of
// spec.md §4.3, and stores the result in c.effBank/c.effAddr. It never
// auto-reads the operand the way the teacher's decode did — each
// instruction explicitly calls readOperand/writeOperand/forAccumulator,
// since the 65816's variable operand width (8 vs 16 bits, driven by
// P.M/P.X) cannot be resolved generically at decode time.
//
// Direct-page accesses always target bank 0 and incur c.extraCyc++ when
// D's low byte is nonzero (spec.md §4.3 direct-page penalty cycle).
// Absolute addressing uses DBR. PC-relative addressing uses PBR and
// cannot wrap across a bank boundary. Stack-relative is always bank 0.
func (c *Cpu) decode(mode AddressingMode) {
	if mask.Lo(c.D) != 0 {
		switch mode {
		case AddrDirectPage, AddrDirectPageX, AddrDirectPageY,
			AddrDirectPageIndirect, AddrDirectPageIndirectLong,
			AddrDirectPageIndexedIndirectX, AddrDirectPageIndirectIndexedY,
			AddrDirectPageIndirectLongIndexedY:
			c.extraCyc++
		}
	}

	switch mode {
	case AddrImplied, AddrAccumulator, AddrBlockMove, AddrStackPush:
		// no memory operand; instruction bodies handle these directly

	case AddrImmediate:
		c.effBank, c.effAddr = c.PBR, c.PC // operand fetched inline by the instruction

	case AddrDirectPage:
		off := c.fetchPC8()
		c.effBank, c.effAddr = 0, c.D+uint16(off)

	case AddrDirectPageX:
		off := c.fetchPC8()
		c.effBank, c.effAddr = 0, c.D+uint16(off)+c.X

	case AddrDirectPageY:
		off := c.fetchPC8()
		c.effBank, c.effAddr = 0, c.D+uint16(off)+c.Y

	case AddrDirectPageIndirect:
		off := c.fetchPC8()
		ptr := c.D + uint16(off)
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		c.effBank, c.effAddr = c.DBR, mask.Word(hi, lo)

	case AddrDirectPageIndirectLong:
		off := c.fetchPC8()
		ptr := c.D + uint16(off)
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		bank := c.Read(0, ptr+2)
		c.effBank, c.effAddr = bank, mask.Word(hi, lo)

	case AddrDirectPageIndexedIndirectX:
		off := c.fetchPC8()
		ptr := c.D + uint16(off) + c.X
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		c.effBank, c.effAddr = c.DBR, mask.Word(hi, lo)

	case AddrDirectPageIndirectIndexedY:
		off := c.fetchPC8()
		ptr := c.D + uint16(off)
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		c.effBank, c.effAddr = c.DBR, mask.Word(hi, lo)+c.Y

	case AddrDirectPageIndirectLongIndexedY:
		off := c.fetchPC8()
		ptr := c.D + uint16(off)
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		bank := c.Read(0, ptr+2)
		addr := mask.Word(hi, lo) + c.Y
		c.effBank, c.effAddr = bank, addr

	case AddrAbsolute:
		c.effBank, c.effAddr = c.DBR, c.fetchPC16()

	case AddrAbsoluteX:
		c.effBank, c.effAddr = c.DBR, c.fetchPC16()+c.X

	case AddrAbsoluteY:
		c.effBank, c.effAddr = c.DBR, c.fetchPC16()+c.Y

	case AddrAbsoluteLong:
		bank, addr := c.fetchPC24()
		c.effBank, c.effAddr = bank, addr

	case AddrAbsoluteLongX:
		bank, addr := c.fetchPC24()
		c.effBank, c.effAddr = bank, addr+c.X

	case AddrAbsoluteIndirect: // JMP (abs) only; always bank 0 for the pointer
		ptr := c.fetchPC16()
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		c.effBank, c.effAddr = c.PBR, mask.Word(hi, lo)

	case AddrAbsoluteIndirectLong: // JMP [abs]; pointer carries its own bank
		ptr := c.fetchPC16()
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		bank := c.Read(0, ptr+2)
		c.effBank, c.effAddr = bank, mask.Word(hi, lo)

	case AddrAbsoluteIndexedIndirect: // JMP/JSR (abs,x)
		ptr := c.fetchPC16() + c.X
		lo := c.Read(c.PBR, ptr)
		hi := c.Read(c.PBR, ptr+1)
		c.effBank, c.effAddr = c.PBR, mask.Word(hi, lo)

	case AddrStackRelative:
		off := c.fetchPC8()
		c.effBank, c.effAddr = 0, c.S+uint16(off)

	case AddrStackRelativeIndirectIndexedY:
		off := c.fetchPC8()
		ptr := c.S + uint16(off)
		lo := c.Read(0, ptr)
		hi := c.Read(0, ptr+1)
		c.effBank, c.effAddr = c.DBR, mask.Word(hi, lo)+c.Y

	case AddrProgramCounterRelative:
		off := int8(c.fetchPC8())
		c.effBank, c.effAddr = c.PBR, uint16(int32(c.PC)+int32(off))

	case AddrProgramCounterRelativeLong:
		off := int16(c.fetchPC16())
		c.effBank, c.effAddr = c.PBR, uint16(int32(c.PC)+int32(off))
	}
}

// readOperand8 reads a single byte from the decoded effective address.
func (c *Cpu) readOperand8() byte {
	if _, ok := c.immediateMode(); ok {
		v := c.fetchPC8()
		return v
	}
	return c.Read(c.effBank, c.effAddr)
}

// readOperand16 reads a little-endian word from the decoded effective
// address (or inline, for immediate mode).
func (c *Cpu) readOperand16() uint16 {
	if _, ok := c.immediateMode(); ok {
		return c.fetchPC16()
	}
	lo := c.Read(c.effBank, c.effAddr)
	hi := c.Read(c.effBank, c.effAddr+1)
	return mask.Word(hi, lo)
}

// curMode tracks the addressing mode of the instruction currently being
// decoded, so readOperand can special-case AddrImmediate (whose operand
// lives inline in the instruction stream rather than at effAddr).
func (c *Cpu) immediateMode() (AddressingMode, bool) {
	return c.curMode, c.curMode == AddrImmediate
}

func (c *Cpu) writeOperand8(v byte) {
	c.Write(c.effBank, c.effAddr, v)
}

func (c *Cpu) writeOperand16(v uint16) {
	c.Write(c.effBank, c.effAddr, mask.Lo(v))
	c.Write(c.effBank, c.effAddr+1, mask.Hi(v))
}
