package cpu

import "github.com/clem-emu/clem/mask"

// Instruction bodies. Each generalizes the teacher's per-opcode method
// (one function per mnemonic, operating on the decoded effective address)
// to the 65816's variable operand width: every arithmetic/logical/load
// instruction checks c.aWidth()/c.xWidth() and operates 8- or 16-bit
// accordingly, instead of always assuming an 8-bit accumulator.

func setZN8(c *Cpu, v byte) {
	c.P.Zero = v == 0
	c.P.Negative = v&0x80 != 0
}

func setZN16(c *Cpu, v uint16) {
	c.P.Zero = v == 0
	c.P.Negative = v&0x8000 != 0
}

func (c *Cpu) setZNA(v uint16) {
	if c.aWidth() == W8 {
		setZN8(c, byte(v))
	} else {
		setZN16(c, v)
	}
}

func (c *Cpu) setZNX(v uint16) {
	if c.xWidth() == W8 {
		setZN8(c, byte(v))
	} else {
		setZN16(c, v)
	}
}

// --- Loads / stores ---

func insLDA(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		c.A = (c.A & 0xFF00) | uint16(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16()
		c.A = v
		setZN16(c, v)
	}
}

func insLDX(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.xWidth() == W8 {
		v := c.readOperand8()
		c.X = uint16(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16()
		c.X = v
		setZN16(c, v)
	}
}

func insLDY(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.xWidth() == W8 {
		v := c.readOperand8()
		c.Y = uint16(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16()
		c.Y = v
		setZN16(c, v)
	}
}

func insSTA(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		c.writeOperand8(mask.Lo(c.A))
	} else {
		c.writeOperand16(c.A)
	}
}

func insSTX(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.xWidth() == W8 {
		c.writeOperand8(mask.Lo(c.X))
	} else {
		c.writeOperand16(c.X)
	}
}

func insSTY(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.xWidth() == W8 {
		c.writeOperand8(mask.Lo(c.Y))
	} else {
		c.writeOperand16(c.Y)
	}
}

func insSTZ(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		c.writeOperand8(0)
	} else {
		c.writeOperand16(0)
	}
}

// --- Transfers ---

func insTAX(c *Cpu, op Opcode) { c.X = c.maskX(c.A); c.setZNX(c.X) }
func insTAY(c *Cpu, op Opcode) { c.Y = c.maskX(c.A); c.setZNX(c.Y) }
func insTXA(c *Cpu, op Opcode) { c.A = c.maskA(c.X); c.setZNA(c.A) }
func insTYA(c *Cpu, op Opcode) { c.A = c.maskA(c.Y); c.setZNA(c.A) }

func insTSX(c *Cpu, op Opcode) { c.X = c.maskX(c.S); c.setZNX(c.X) }

func insTXS(c *Cpu, op Opcode) {
	if c.Emulation {
		c.S = 0x0100 | (c.X & 0x00FF)
	} else {
		c.S = c.X
	}
}

func insTXY(c *Cpu, op Opcode) { c.Y = c.maskX(c.X); c.setZNX(c.Y) }
func insTYX(c *Cpu, op Opcode) { c.X = c.maskX(c.Y); c.setZNX(c.X) }

// TCD/TDC/TCS/TSC operate on the full 16-bit accumulator regardless of
// M, since D and S are always 16-bit (65816 native behavior).
func insTCD(c *Cpu, op Opcode) { c.D = c.A; setZN16(c, c.D) }
func insTDC(c *Cpu, op Opcode) { c.A = c.D; setZN16(c, c.A) }
func insTCS(c *Cpu, op Opcode) {
	if c.Emulation {
		c.S = 0x0100 | (c.A & 0x00FF)
	} else {
		c.S = c.A
	}
}
func insTSC(c *Cpu, op Opcode) { c.A = c.S; setZN16(c, c.A) }

// --- Stack ---

func insPHA(c *Cpu, op Opcode) {
	if c.aWidth() == W8 {
		c.pushByte(mask.Lo(c.A))
	} else {
		c.pushWord(c.A)
	}
}

func insPLA(c *Cpu, op Opcode) {
	if c.aWidth() == W8 {
		v := c.pullByte()
		c.A = (c.A & 0xFF00) | uint16(v)
		setZN8(c, v)
	} else {
		c.A = c.pullWord()
		setZN16(c, c.A)
	}
}

func insPHX(c *Cpu, op Opcode) {
	if c.xWidth() == W8 {
		c.pushByte(mask.Lo(c.X))
	} else {
		c.pushWord(c.X)
	}
}

func insPLX(c *Cpu, op Opcode) {
	if c.xWidth() == W8 {
		v := c.pullByte()
		c.X = uint16(v)
		setZN8(c, v)
	} else {
		c.X = c.pullWord()
		setZN16(c, c.X)
	}
}

func insPHY(c *Cpu, op Opcode) {
	if c.xWidth() == W8 {
		c.pushByte(mask.Lo(c.Y))
	} else {
		c.pushWord(c.Y)
	}
}

func insPLY(c *Cpu, op Opcode) {
	if c.xWidth() == W8 {
		v := c.pullByte()
		c.Y = uint16(v)
		setZN8(c, v)
	} else {
		c.Y = c.pullWord()
		setZN16(c, c.Y)
	}
}

func insPHP(c *Cpu, op Opcode) {
	if c.Emulation {
		c.pushByte(c.P.emulationByte(false))
	} else {
		c.pushByte(c.P.Byte())
	}
}

func insPLP(c *Cpu, op Opcode) {
	b := c.pullByte()
	wasX := c.P.X
	c.P = FlagsFromByte(b)
	if c.Emulation {
		c.P.M = true
		c.P.X = true
	}
	// widening X/Y when X transitions from 8- to 16-bit is undefined on
	// real hardware; narrowing (X->8) truncates, matching insSEP/insREP.
	if !wasX && c.P.X {
		c.X &= 0x00FF
		c.Y &= 0x00FF
	}
}

func insPHD(c *Cpu, op Opcode) { c.pushWord(c.D) }
func insPLD(c *Cpu, op Opcode) { c.D = c.pullWord(); setZN16(c, c.D) }
func insPHK(c *Cpu, op Opcode) { c.pushByte(c.PBR) }
func insPHB(c *Cpu, op Opcode) { c.pushByte(c.DBR) }
func insPLB(c *Cpu, op Opcode) {
	c.DBR = c.pullByte()
	setZN8(c, c.DBR)
}

// insPEA pushes a 16-bit immediate value (spec.md §4.4 "push effective
// address" family) straight onto the stack; it has no effective address
// of its own to decode, only an inline operand.
func insPEA(c *Cpu, op Opcode) {
	c.pushWord(c.fetchPC16())
}

// insPEI pushes the word stored at bank 0, D+dp — the pointer a
// (dp)-indirect access would dereference, not the value behind it.
func insPEI(c *Cpu, op Opcode) {
	off := c.fetchPC8()
	ptr := c.D + uint16(off)
	lo := c.Read(0, ptr)
	hi := c.Read(0, ptr+1)
	c.pushWord(mask.Word(hi, lo))
}

// insPER pushes PC-relative effective address PC+disp, where disp is a
// signed 16-bit displacement following the opcode (spec.md §4.4 "push
// effective relative address").
func insPER(c *Cpu, op Opcode) {
	disp := int16(c.fetchPC16())
	c.pushWord(uint16(int32(c.PC) + int32(disp)))
}

// --- Arithmetic ---

// bcdAdd8 adds two BCD-encoded bytes plus carry, returning the BCD
// result and the carry out.
func bcdAdd8(a, b byte, carryIn bool) (result byte, carryOut bool) {
	lo := (a & 0x0F) + (b & 0x0F)
	if carryIn {
		lo++
	}
	var loCarry byte
	if lo > 9 {
		lo += 6
		loCarry = 1
	}
	hi := (a >> 4) + (b >> 4) + loCarry
	if hi > 9 {
		hi += 6
		carryOut = true
	}
	result = (hi << 4) | (lo & 0x0F)
	return result, carryOut
}

func binAdd8(a, b byte, carryIn bool) (result byte, carryOut, overflow bool) {
	sum := uint16(a) + uint16(b)
	if carryIn {
		sum++
	}
	result = byte(sum)
	carryOut = sum > 0xFF
	overflow = (a^result)&(b^result)&0x80 != 0
	return result, carryOut, overflow
}

// adc8 performs one 8-bit ADC, honoring decimal mode (spec.md §4.4
// "decimal-mode ADC/SBC with correct V/C for the documented 8-bit BCD
// case"). V is always derived from the equivalent binary operation; in
// decimal mode the digit result, C, N and Z come from the BCD addition.
func (c *Cpu) adc8(operand byte) {
	_, _, binOverflow := binAdd8(mask.Lo(c.A), operand, c.P.Carry)
	if c.P.Decimal {
		result, carry := bcdAdd8(mask.Lo(c.A), operand, c.P.Carry)
		c.A = (c.A & 0xFF00) | uint16(result)
		c.P.Carry = carry
		c.P.Overflow = binOverflow
		setZN8(c, result)
	} else {
		result, carry, overflow := binAdd8(mask.Lo(c.A), operand, c.P.Carry)
		c.A = (c.A & 0xFF00) | uint16(result)
		c.P.Carry = carry
		c.P.Overflow = overflow
		setZN8(c, result)
	}
}

// adc16 composes two adc8-style byte passes for the low and high bytes,
// propagating carry between them, per spec.md §4.4's direction to extend
// the 8-bit BCD algorithm "naively" to 16-bit.
func (c *Cpu) adc16(operand uint16) {
	lo := mask.Lo(operand)
	hi := mask.Hi(operand)
	aLo := mask.Lo(c.A)
	aHi := mask.Hi(c.A)

	var resLo, resHi byte
	var carry, overflow bool
	if c.P.Decimal {
		resLo, carry = bcdAdd8(aLo, lo, c.P.Carry)
		resHi, carry = bcdAdd8(aHi, hi, carry)
		_, _, overflow = binAdd8(aHi, hi, false)
	} else {
		resLo, carry, _ = binAdd8(aLo, lo, c.P.Carry)
		resHi, carry, overflow = binAdd8(aHi, hi, carry)
	}
	c.A = mask.Word(resHi, resLo)
	c.P.Carry = carry
	c.P.Overflow = overflow
	setZN16(c, c.A)
}

func insADC(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		c.adc8(c.readOperand8())
	} else {
		c.adc16(c.readOperand16())
	}
}

// sbc8/sbc16 implement subtraction as addition of the bitwise complement
// in binary mode (the standard 6502/65816 trick); decimal mode uses its
// own nibble-borrow path since BCD subtraction is not simply BCD
// addition of a complement.
func (c *Cpu) sbc8(operand byte) {
	if !c.P.Decimal {
		c.adc8(^operand)
		return
	}
	aLo := mask.Lo(c.A)
	borrow := byte(0)
	if !c.P.Carry {
		borrow = 1
	}
	loNibble := int(aLo&0x0F) - int(operand&0x0F) - int(borrow)
	var loBorrow int
	if loNibble < 0 {
		loNibble += 10
		loBorrow = 1
	}
	hiNibble := int(aLo>>4) - int(operand>>4) - loBorrow
	carryOut := true
	if hiNibble < 0 {
		hiNibble += 10
		carryOut = false
	}
	result := byte(hiNibble<<4) | byte(loNibble&0x0F)
	_, _, overflow := binAdd8(aLo, ^operand, c.P.Carry)
	c.A = (c.A & 0xFF00) | uint16(result)
	c.P.Carry = carryOut
	c.P.Overflow = overflow
	setZN8(c, result)
}

func (c *Cpu) sbc16(operand uint16) {
	if !c.P.Decimal {
		c.adc16(^operand)
		return
	}
	lo := mask.Lo(operand)
	hi := mask.Hi(operand)
	aLo := mask.Lo(c.A)
	aHi := mask.Hi(c.A)

	borrowByte := func(a, b byte, carryIn bool) (byte, bool) {
		borrow := byte(0)
		if !carryIn {
			borrow = 1
		}
		loNibble := int(a&0x0F) - int(b&0x0F) - int(borrow)
		var loBorrow int
		if loNibble < 0 {
			loNibble += 10
			loBorrow = 1
		}
		hiNibble := int(a>>4) - int(b>>4) - loBorrow
		carryOut := true
		if hiNibble < 0 {
			hiNibble += 10
			carryOut = false
		}
		return byte(hiNibble<<4) | byte(loNibble&0x0F), carryOut
	}

	resLo, carry := borrowByte(aLo, lo, c.P.Carry)
	resHi, carry := borrowByte(aHi, hi, carry)
	_, _, overflow := binAdd8(aHi, ^hi, carry)
	c.A = mask.Word(resHi, resLo)
	c.P.Carry = carry
	c.P.Overflow = overflow
	setZN16(c, c.A)
}

func insSBC(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		c.sbc8(c.readOperand8())
	} else {
		c.sbc16(c.readOperand16())
	}
}

func cmp8(c *Cpu, reg, operand byte) {
	result := reg - operand
	c.P.Carry = reg >= operand
	setZN8(c, result)
}

func cmp16(c *Cpu, reg, operand uint16) {
	result := reg - operand
	c.P.Carry = reg >= operand
	setZN16(c, result)
}

func insCMP(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		cmp8(c, mask.Lo(c.A), c.readOperand8())
	} else {
		cmp16(c, c.A, c.readOperand16())
	}
}

func insCPX(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.xWidth() == W8 {
		cmp8(c, mask.Lo(c.X), c.readOperand8())
	} else {
		cmp16(c, c.X, c.readOperand16())
	}
}

func insCPY(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.xWidth() == W8 {
		cmp8(c, mask.Lo(c.Y), c.readOperand8())
	} else {
		cmp16(c, c.Y, c.readOperand16())
	}
}

// --- Increment / decrement ---

func insINC(c *Cpu, op Opcode) {
	if op.AddressingMode == AddrAccumulator {
		c.A = c.maskA(c.A + 1)
		c.setZNA(c.A)
		return
	}
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8() + 1
		c.writeOperand8(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16() + 1
		c.writeOperand16(v)
		setZN16(c, v)
	}
}

func insDEC(c *Cpu, op Opcode) {
	if op.AddressingMode == AddrAccumulator {
		c.A = c.maskA(c.A - 1)
		c.setZNA(c.A)
		return
	}
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8() - 1
		c.writeOperand8(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16() - 1
		c.writeOperand16(v)
		setZN16(c, v)
	}
}

func insINX(c *Cpu, op Opcode) { c.X = c.maskX(c.X + 1); c.setZNX(c.X) }
func insINY(c *Cpu, op Opcode) { c.Y = c.maskX(c.Y + 1); c.setZNX(c.Y) }
func insDEX(c *Cpu, op Opcode) { c.X = c.maskX(c.X - 1); c.setZNX(c.X) }
func insDEY(c *Cpu, op Opcode) { c.Y = c.maskX(c.Y - 1); c.setZNX(c.Y) }

// --- Logic ---

func insAND(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := mask.Lo(c.A) & c.readOperand8()
		c.A = (c.A & 0xFF00) | uint16(v)
		setZN8(c, v)
	} else {
		v := c.A & c.readOperand16()
		c.A = v
		setZN16(c, v)
	}
}

func insORA(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := mask.Lo(c.A) | c.readOperand8()
		c.A = (c.A & 0xFF00) | uint16(v)
		setZN8(c, v)
	} else {
		v := c.A | c.readOperand16()
		c.A = v
		setZN16(c, v)
	}
}

func insEOR(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := mask.Lo(c.A) ^ c.readOperand8()
		c.A = (c.A & 0xFF00) | uint16(v)
		setZN8(c, v)
	} else {
		v := c.A ^ c.readOperand16()
		c.A = v
		setZN16(c, v)
	}
}

func insBIT(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		result := mask.Lo(c.A) & v
		c.P.Zero = result == 0
		if op.AddressingMode != AddrImmediate {
			c.P.Negative = v&0x80 != 0
			c.P.Overflow = v&0x40 != 0
		}
	} else {
		v := c.readOperand16()
		result := c.A & v
		c.P.Zero = result == 0
		if op.AddressingMode != AddrImmediate {
			c.P.Negative = v&0x8000 != 0
			c.P.Overflow = v&0x4000 != 0
		}
	}
}

// TSB tests A against the operand (Z reflects A&M==0, as BIT does) and
// then sets every bit of the operand that A has set, leaving A unchanged.
func insTSB(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		c.P.Zero = mask.Lo(c.A)&v == 0
		c.writeOperand8(v | mask.Lo(c.A))
	} else {
		v := c.readOperand16()
		c.P.Zero = c.A&v == 0
		c.writeOperand16(v | c.A)
	}
}

// TRB tests A against the operand like TSB, but clears the operand's bits
// that A has set instead of setting them.
func insTRB(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		c.P.Zero = mask.Lo(c.A)&v == 0
		c.writeOperand8(v &^ mask.Lo(c.A))
	} else {
		v := c.readOperand16()
		c.P.Zero = c.A&v == 0
		c.writeOperand16(v &^ c.A)
	}
}

// --- Shifts / rotates ---

func insASL(c *Cpu, op Opcode) {
	if op.AddressingMode == AddrAccumulator {
		if c.aWidth() == W8 {
			v := mask.Lo(c.A)
			c.P.Carry = v&0x80 != 0
			v <<= 1
			c.A = (c.A & 0xFF00) | uint16(v)
			setZN8(c, v)
		} else {
			c.P.Carry = c.A&0x8000 != 0
			c.A <<= 1
			setZN16(c, c.A)
		}
		return
	}
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		c.P.Carry = v&0x80 != 0
		v <<= 1
		c.writeOperand8(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16()
		c.P.Carry = v&0x8000 != 0
		v <<= 1
		c.writeOperand16(v)
		setZN16(c, v)
	}
}

func insLSR(c *Cpu, op Opcode) {
	if op.AddressingMode == AddrAccumulator {
		if c.aWidth() == W8 {
			v := mask.Lo(c.A)
			c.P.Carry = v&0x01 != 0
			v >>= 1
			c.A = (c.A & 0xFF00) | uint16(v)
			setZN8(c, v)
		} else {
			c.P.Carry = c.A&0x0001 != 0
			c.A >>= 1
			setZN16(c, c.A)
		}
		return
	}
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		c.P.Carry = v&0x01 != 0
		v >>= 1
		c.writeOperand8(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16()
		c.P.Carry = v&0x0001 != 0
		v >>= 1
		c.writeOperand16(v)
		setZN16(c, v)
	}
}

func insROL(c *Cpu, op Opcode) {
	oldCarry := c.P.Carry
	if op.AddressingMode == AddrAccumulator {
		if c.aWidth() == W8 {
			v := mask.Lo(c.A)
			newCarry := v&0x80 != 0
			v <<= 1
			if oldCarry {
				v |= 0x01
			}
			c.P.Carry = newCarry
			c.A = (c.A & 0xFF00) | uint16(v)
			setZN8(c, v)
		} else {
			newCarry := c.A&0x8000 != 0
			v := c.A << 1
			if oldCarry {
				v |= 0x0001
			}
			c.P.Carry = newCarry
			c.A = v
			setZN16(c, v)
		}
		return
	}
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		newCarry := v&0x80 != 0
		v <<= 1
		if oldCarry {
			v |= 0x01
		}
		c.P.Carry = newCarry
		c.writeOperand8(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16()
		newCarry := v&0x8000 != 0
		v <<= 1
		if oldCarry {
			v |= 0x0001
		}
		c.P.Carry = newCarry
		c.writeOperand16(v)
		setZN16(c, v)
	}
}

func insROR(c *Cpu, op Opcode) {
	oldCarry := c.P.Carry
	if op.AddressingMode == AddrAccumulator {
		if c.aWidth() == W8 {
			v := mask.Lo(c.A)
			newCarry := v&0x01 != 0
			v >>= 1
			if oldCarry {
				v |= 0x80
			}
			c.P.Carry = newCarry
			c.A = (c.A & 0xFF00) | uint16(v)
			setZN8(c, v)
		} else {
			newCarry := c.A&0x0001 != 0
			v := c.A >> 1
			if oldCarry {
				v |= 0x8000
			}
			c.P.Carry = newCarry
			c.A = v
			setZN16(c, v)
		}
		return
	}
	c.decode(op.AddressingMode)
	if c.aWidth() == W8 {
		v := c.readOperand8()
		newCarry := v&0x01 != 0
		v >>= 1
		if oldCarry {
			v |= 0x80
		}
		c.P.Carry = newCarry
		c.writeOperand8(v)
		setZN8(c, v)
	} else {
		v := c.readOperand16()
		newCarry := v&0x0001 != 0
		v >>= 1
		if oldCarry {
			v |= 0x8000
		}
		c.P.Carry = newCarry
		c.writeOperand16(v)
		setZN16(c, v)
	}
}

// --- Branches ---

func (c *Cpu) branchIf(cond bool) {
	c.decode(AddrProgramCounterRelative)
	if cond {
		c.extraCyc++
		if c.PC>>8 != c.effAddr>>8 {
			c.extraCyc++
		}
		c.PC = c.effAddr
	}
}

func insBCC(c *Cpu, op Opcode) { c.branchIf(!c.P.Carry) }
func insBCS(c *Cpu, op Opcode) { c.branchIf(c.P.Carry) }
func insBEQ(c *Cpu, op Opcode) { c.branchIf(c.P.Zero) }
func insBNE(c *Cpu, op Opcode) { c.branchIf(!c.P.Zero) }
func insBMI(c *Cpu, op Opcode) { c.branchIf(c.P.Negative) }
func insBPL(c *Cpu, op Opcode) { c.branchIf(!c.P.Negative) }
func insBVC(c *Cpu, op Opcode) { c.branchIf(!c.P.Overflow) }
func insBVS(c *Cpu, op Opcode) { c.branchIf(c.P.Overflow) }
func insBRA(c *Cpu, op Opcode) { c.branchIf(true) }

func insBRL(c *Cpu, op Opcode) {
	c.decode(AddrProgramCounterRelativeLong)
	c.PC = c.effAddr
}

// --- Jumps / calls / returns ---

func insJMP(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	c.PC = c.effAddr
}

func insJML(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	c.PC = c.effAddr
	c.PBR = c.effBank
}

func insJSR(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	c.pushWord(c.PC - 1)
	c.PC = c.effAddr
}

func insJSL(c *Cpu, op Opcode) {
	c.decode(op.AddressingMode)
	c.pushByte(c.PBR)
	c.pushWord(c.PC - 1)
	c.PC = c.effAddr
	c.PBR = c.effBank
}

func insRTS(c *Cpu, op Opcode) {
	c.PC = c.pullWord() + 1
}

func insRTL(c *Cpu, op Opcode) {
	c.PC = c.pullWord() + 1
	c.PBR = c.pullByte()
}

func insRTI(c *Cpu, op Opcode) {
	b := c.pullByte()
	c.P = FlagsFromByte(b)
	if c.Emulation {
		c.P.M = true
		c.P.X = true
	}
	c.PC = c.pullWord()
	if !c.Emulation {
		c.PBR = c.pullByte()
	}
}

// --- Flags ---

func insCLC(c *Cpu, op Opcode) { c.P.Carry = false }
func insSEC(c *Cpu, op Opcode) { c.P.Carry = true }
func insCLI(c *Cpu, op Opcode) { c.P.Irq = false }
func insSEI(c *Cpu, op Opcode) { c.P.Irq = true }
func insCLV(c *Cpu, op Opcode) { c.P.Overflow = false }
func insCLD(c *Cpu, op Opcode) { c.P.Decimal = false }
func insSED(c *Cpu, op Opcode) { c.P.Decimal = true }

func insREP(c *Cpu, op Opcode) {
	b := c.fetchPC8()
	p := c.P.Byte() &^ b
	c.P = FlagsFromByte(p)
	if c.Emulation {
		c.P.M = true
		c.P.X = true
	}
}

func insSEP(c *Cpu, op Opcode) {
	b := c.fetchPC8()
	p := c.P.Byte() | b
	c.P = FlagsFromByte(p)
	if c.P.X {
		c.X &= 0x00FF
		c.Y &= 0x00FF
	}
}

// insXCE exchanges the carry flag with the emulation-mode bit (spec.md
// §4.4 "XCE into native mode"); switching into emulation forces M/X set,
// truncates X/Y to 8 bits and forces S into page 1. A keeps its high byte.
func insXCE(c *Cpu, op Opcode) {
	wasEmulation := c.Emulation
	c.Emulation = c.P.Carry
	c.P.Carry = wasEmulation
	if c.Emulation {
		c.P.M = true
		c.P.X = true
		c.X &= 0x00FF
		c.Y &= 0x00FF
		c.S = 0x0100 | (c.S & 0x00FF)
	}
}

func insXBA(c *Cpu, op Opcode) {
	lo := mask.Lo(c.A)
	hi := mask.Hi(c.A)
	c.A = mask.Word(lo, hi)
	setZN8(c, mask.Lo(c.A))
}

// --- Block move ---

// blockMove implements MVN/MVP's shared semantics (spec.md §4.4): move
// (C+1) bytes from (srcBank,X) to (dstBank,Y), set DBR to the destination
// bank, and decrement C by one per byte — incrementing X/Y for MVN,
// decrementing for MVP. A full move spans many Step calls in real
// hardware (it re-executes the same instruction with a lower C each
// time); this core performs the whole transfer within one Step, charging
// cycles proportional to the byte count.
func (c *Cpu) blockMove(forward bool) {
	dstBank := c.fetchPC8()
	srcBank := c.fetchPC8()
	c.DBR = dstBank

	count := uint32(c.A) + 1
	for i := uint32(0); i < count; i++ {
		v := c.Read(srcBank, c.X)
		c.Write(dstBank, c.Y, v)
		if forward {
			c.X++
			c.Y++
		} else {
			c.X--
			c.Y--
		}
		c.A--
		c.extraCyc += 2
	}
	if c.xWidth() == W8 {
		c.X &= 0x00FF
		c.Y &= 0x00FF
	}
}

func insMVN(c *Cpu, op Opcode) { c.blockMove(true) }
func insMVP(c *Cpu, op Opcode) { c.blockMove(false) }

// --- Misc ---

func insNOP(c *Cpu, op Opcode) {}

// insWDM consumes its one-byte sub-opcode and does nothing else
// (spec.md §9 open question #2, decided as a no-op for any sub-opcode:
// reserved-for-expansion silicon, not a fault condition).
func insWDM(c *Cpu, op Opcode) {
	c.fetchPC8()
}

func insBRK(c *Cpu, op Opcode) {
	c.fetchPC8() // signature byte, conventionally ignored
	c.serviceInterrupt(vectorBRK, true)
}

func insCOP(c *Cpu, op Opcode) {
	c.fetchPC8()
	c.serviceInterrupt(vectorCOP, false)
}

// insWAI stalls the CPU until NMI/IRQ/RESB is pending (spec.md §4.4
// "WAI lowers readyOut").
func insWAI(c *Cpu, op Opcode) {
	c.waiting = true
	c.ReadyOut = false
}

// insSTP halts the CPU until Reset (spec.md §4.4 "STP halts until
// Reset").
func insSTP(c *Cpu, op Opcode) {
	c.stopped = true
}
