package cpu

// Opcode describes one byte value's instruction: its mnemonic, addressing
// mode, base cycle count, and the function implementing it. Generalizes
// the teacher's Opcode struct (Name/AddressingMode/Cycles/Instruction) by
// one field only — everything else carries over unchanged.
//
// Per spec.md §9's redesign flag ("the opcode table should be built once,
// as an immutable package-level table, not reconstructed per CPU
// instance"), Opcodes below is a single package-level array literal,
// built once at init; no non-test code writes to it.
type Opcode struct {
	Name           string
	AddressingMode AddressingMode
	Cycles         uint8
	Instruction    func(c *Cpu, op Opcode)
}

// Opcodes is the full 256-entry dispatch table, indexed by opcode byte.
// All 256 slots are populated. A zero Opcode (Instruction == nil) in a
// slot would be reported by Step via ErrUnknownOpcode rather than
// panicking (spec.md §7).
var Opcodes = buildOpcodes()

func buildOpcodes() [256]Opcode {
	var t [256]Opcode

	// Loads / stores
	t[0xA9] = Opcode{"LDA", AddrImmediate, 2, insLDA}
	t[0xA5] = Opcode{"LDA", AddrDirectPage, 3, insLDA}
	t[0xB5] = Opcode{"LDA", AddrDirectPageX, 4, insLDA}
	t[0xAD] = Opcode{"LDA", AddrAbsolute, 4, insLDA}
	t[0xBD] = Opcode{"LDA", AddrAbsoluteX, 4, insLDA}
	t[0xB9] = Opcode{"LDA", AddrAbsoluteY, 4, insLDA}
	t[0xAF] = Opcode{"LDA", AddrAbsoluteLong, 5, insLDA}
	t[0xBF] = Opcode{"LDA", AddrAbsoluteLongX, 5, insLDA}
	t[0xA1] = Opcode{"LDA", AddrDirectPageIndexedIndirectX, 6, insLDA}
	t[0xB1] = Opcode{"LDA", AddrDirectPageIndirectIndexedY, 5, insLDA}
	t[0xB2] = Opcode{"LDA", AddrDirectPageIndirect, 5, insLDA}
	t[0xA7] = Opcode{"LDA", AddrDirectPageIndirectLong, 6, insLDA}
	t[0xB7] = Opcode{"LDA", AddrDirectPageIndirectLongIndexedY, 6, insLDA}
	t[0xA3] = Opcode{"LDA", AddrStackRelative, 4, insLDA}
	t[0xB3] = Opcode{"LDA", AddrStackRelativeIndirectIndexedY, 7, insLDA}

	t[0xA2] = Opcode{"LDX", AddrImmediate, 2, insLDX}
	t[0xA6] = Opcode{"LDX", AddrDirectPage, 3, insLDX}
	t[0xB6] = Opcode{"LDX", AddrDirectPageY, 4, insLDX}
	t[0xAE] = Opcode{"LDX", AddrAbsolute, 4, insLDX}
	t[0xBE] = Opcode{"LDX", AddrAbsoluteY, 4, insLDX}

	t[0xA0] = Opcode{"LDY", AddrImmediate, 2, insLDY}
	t[0xA4] = Opcode{"LDY", AddrDirectPage, 3, insLDY}
	t[0xB4] = Opcode{"LDY", AddrDirectPageX, 4, insLDY}
	t[0xAC] = Opcode{"LDY", AddrAbsolute, 4, insLDY}
	t[0xBC] = Opcode{"LDY", AddrAbsoluteX, 4, insLDY}

	t[0x85] = Opcode{"STA", AddrDirectPage, 3, insSTA}
	t[0x95] = Opcode{"STA", AddrDirectPageX, 4, insSTA}
	t[0x8D] = Opcode{"STA", AddrAbsolute, 4, insSTA}
	t[0x9D] = Opcode{"STA", AddrAbsoluteX, 5, insSTA}
	t[0x99] = Opcode{"STA", AddrAbsoluteY, 5, insSTA}
	t[0x8F] = Opcode{"STA", AddrAbsoluteLong, 5, insSTA}
	t[0x9F] = Opcode{"STA", AddrAbsoluteLongX, 5, insSTA}
	t[0x81] = Opcode{"STA", AddrDirectPageIndexedIndirectX, 6, insSTA}
	t[0x91] = Opcode{"STA", AddrDirectPageIndirectIndexedY, 6, insSTA}
	t[0x92] = Opcode{"STA", AddrDirectPageIndirect, 5, insSTA}
	t[0x87] = Opcode{"STA", AddrDirectPageIndirectLong, 6, insSTA}
	t[0x97] = Opcode{"STA", AddrDirectPageIndirectLongIndexedY, 6, insSTA}
	t[0x83] = Opcode{"STA", AddrStackRelative, 4, insSTA}
	t[0x93] = Opcode{"STA", AddrStackRelativeIndirectIndexedY, 7, insSTA}

	t[0x86] = Opcode{"STX", AddrDirectPage, 3, insSTX}
	t[0x96] = Opcode{"STX", AddrDirectPageY, 4, insSTX}
	t[0x8E] = Opcode{"STX", AddrAbsolute, 4, insSTX}

	t[0x84] = Opcode{"STY", AddrDirectPage, 3, insSTY}
	t[0x94] = Opcode{"STY", AddrDirectPageX, 4, insSTY}
	t[0x8C] = Opcode{"STY", AddrAbsolute, 4, insSTY}

	t[0x64] = Opcode{"STZ", AddrDirectPage, 3, insSTZ}
	t[0x74] = Opcode{"STZ", AddrDirectPageX, 4, insSTZ}
	t[0x9C] = Opcode{"STZ", AddrAbsolute, 4, insSTZ}
	t[0x9E] = Opcode{"STZ", AddrAbsoluteX, 5, insSTZ}

	// Transfers
	t[0xAA] = Opcode{"TAX", AddrImplied, 2, insTAX}
	t[0xA8] = Opcode{"TAY", AddrImplied, 2, insTAY}
	t[0x8A] = Opcode{"TXA", AddrImplied, 2, insTXA}
	t[0x98] = Opcode{"TYA", AddrImplied, 2, insTYA}
	t[0xBA] = Opcode{"TSX", AddrImplied, 2, insTSX}
	t[0x9A] = Opcode{"TXS", AddrImplied, 2, insTXS}
	t[0x9B] = Opcode{"TXY", AddrImplied, 2, insTXY}
	t[0xBB] = Opcode{"TYX", AddrImplied, 2, insTYX}
	t[0x5B] = Opcode{"TCD", AddrImplied, 2, insTCD}
	t[0x7B] = Opcode{"TDC", AddrImplied, 2, insTDC}
	t[0x1B] = Opcode{"TCS", AddrImplied, 2, insTCS}
	t[0x3B] = Opcode{"TSC", AddrImplied, 2, insTSC}

	// Stack
	t[0x48] = Opcode{"PHA", AddrImplied, 3, insPHA}
	t[0x68] = Opcode{"PLA", AddrImplied, 4, insPLA}
	t[0xDA] = Opcode{"PHX", AddrImplied, 3, insPHX}
	t[0xFA] = Opcode{"PLX", AddrImplied, 4, insPLX}
	t[0x5A] = Opcode{"PHY", AddrImplied, 3, insPHY}
	t[0x7A] = Opcode{"PLY", AddrImplied, 4, insPLY}
	t[0x08] = Opcode{"PHP", AddrImplied, 3, insPHP}
	t[0x28] = Opcode{"PLP", AddrImplied, 4, insPLP}
	t[0x0B] = Opcode{"PHD", AddrImplied, 4, insPHD}
	t[0x2B] = Opcode{"PLD", AddrImplied, 5, insPLD}
	t[0x4B] = Opcode{"PHK", AddrImplied, 3, insPHK}
	t[0x8B] = Opcode{"PHB", AddrImplied, 3, insPHB}
	t[0xAB] = Opcode{"PLB", AddrImplied, 4, insPLB}
	t[0xF4] = Opcode{"PEA", AddrStackPush, 5, insPEA}
	t[0xD4] = Opcode{"PEI", AddrStackPush, 6, insPEI}
	t[0x62] = Opcode{"PER", AddrStackPush, 6, insPER}

	// Arithmetic
	t[0x69] = Opcode{"ADC", AddrImmediate, 2, insADC}
	t[0x65] = Opcode{"ADC", AddrDirectPage, 3, insADC}
	t[0x75] = Opcode{"ADC", AddrDirectPageX, 4, insADC}
	t[0x6D] = Opcode{"ADC", AddrAbsolute, 4, insADC}
	t[0x7D] = Opcode{"ADC", AddrAbsoluteX, 4, insADC}
	t[0x79] = Opcode{"ADC", AddrAbsoluteY, 4, insADC}
	t[0x6F] = Opcode{"ADC", AddrAbsoluteLong, 5, insADC}
	t[0x7F] = Opcode{"ADC", AddrAbsoluteLongX, 5, insADC}
	t[0x61] = Opcode{"ADC", AddrDirectPageIndexedIndirectX, 6, insADC}
	t[0x71] = Opcode{"ADC", AddrDirectPageIndirectIndexedY, 5, insADC}
	t[0x72] = Opcode{"ADC", AddrDirectPageIndirect, 5, insADC}
	t[0x63] = Opcode{"ADC", AddrStackRelative, 4, insADC}
	t[0x67] = Opcode{"ADC", AddrDirectPageIndirectLong, 6, insADC}
	t[0x77] = Opcode{"ADC", AddrDirectPageIndirectLongIndexedY, 6, insADC}
	t[0x73] = Opcode{"ADC", AddrStackRelativeIndirectIndexedY, 7, insADC}

	t[0xE9] = Opcode{"SBC", AddrImmediate, 2, insSBC}
	t[0xE5] = Opcode{"SBC", AddrDirectPage, 3, insSBC}
	t[0xF5] = Opcode{"SBC", AddrDirectPageX, 4, insSBC}
	t[0xED] = Opcode{"SBC", AddrAbsolute, 4, insSBC}
	t[0xFD] = Opcode{"SBC", AddrAbsoluteX, 4, insSBC}
	t[0xF9] = Opcode{"SBC", AddrAbsoluteY, 4, insSBC}
	t[0xEF] = Opcode{"SBC", AddrAbsoluteLong, 5, insSBC}
	t[0xFF] = Opcode{"SBC", AddrAbsoluteLongX, 5, insSBC}
	t[0xE1] = Opcode{"SBC", AddrDirectPageIndexedIndirectX, 6, insSBC}
	t[0xF1] = Opcode{"SBC", AddrDirectPageIndirectIndexedY, 5, insSBC}
	t[0xF2] = Opcode{"SBC", AddrDirectPageIndirect, 5, insSBC}
	t[0xE7] = Opcode{"SBC", AddrDirectPageIndirectLong, 6, insSBC}
	t[0xF7] = Opcode{"SBC", AddrDirectPageIndirectLongIndexedY, 6, insSBC}
	t[0xE3] = Opcode{"SBC", AddrStackRelative, 4, insSBC}
	t[0xF3] = Opcode{"SBC", AddrStackRelativeIndirectIndexedY, 7, insSBC}

	t[0xC9] = Opcode{"CMP", AddrImmediate, 2, insCMP}
	t[0xC5] = Opcode{"CMP", AddrDirectPage, 3, insCMP}
	t[0xD5] = Opcode{"CMP", AddrDirectPageX, 4, insCMP}
	t[0xCD] = Opcode{"CMP", AddrAbsolute, 4, insCMP}
	t[0xDD] = Opcode{"CMP", AddrAbsoluteX, 4, insCMP}
	t[0xD9] = Opcode{"CMP", AddrAbsoluteY, 4, insCMP}
	t[0xCF] = Opcode{"CMP", AddrAbsoluteLong, 5, insCMP}
	t[0xDF] = Opcode{"CMP", AddrAbsoluteLongX, 5, insCMP}
	t[0xC1] = Opcode{"CMP", AddrDirectPageIndexedIndirectX, 6, insCMP}
	t[0xD1] = Opcode{"CMP", AddrDirectPageIndirectIndexedY, 5, insCMP}
	t[0xD2] = Opcode{"CMP", AddrDirectPageIndirect, 5, insCMP}
	t[0xC7] = Opcode{"CMP", AddrDirectPageIndirectLong, 6, insCMP}
	t[0xD7] = Opcode{"CMP", AddrDirectPageIndirectLongIndexedY, 6, insCMP}
	t[0xC3] = Opcode{"CMP", AddrStackRelative, 4, insCMP}
	t[0xD3] = Opcode{"CMP", AddrStackRelativeIndirectIndexedY, 7, insCMP}

	t[0xE0] = Opcode{"CPX", AddrImmediate, 2, insCPX}
	t[0xE4] = Opcode{"CPX", AddrDirectPage, 3, insCPX}
	t[0xEC] = Opcode{"CPX", AddrAbsolute, 4, insCPX}

	t[0xC0] = Opcode{"CPY", AddrImmediate, 2, insCPY}
	t[0xC4] = Opcode{"CPY", AddrDirectPage, 3, insCPY}
	t[0xCC] = Opcode{"CPY", AddrAbsolute, 4, insCPY}

	// Increment/decrement
	t[0x1A] = Opcode{"INC", AddrAccumulator, 2, insINC}
	t[0xE6] = Opcode{"INC", AddrDirectPage, 5, insINC}
	t[0xF6] = Opcode{"INC", AddrDirectPageX, 6, insINC}
	t[0xEE] = Opcode{"INC", AddrAbsolute, 6, insINC}
	t[0xFE] = Opcode{"INC", AddrAbsoluteX, 7, insINC}
	t[0x3A] = Opcode{"DEC", AddrAccumulator, 2, insDEC}
	t[0xC6] = Opcode{"DEC", AddrDirectPage, 5, insDEC}
	t[0xD6] = Opcode{"DEC", AddrDirectPageX, 6, insDEC}
	t[0xCE] = Opcode{"DEC", AddrAbsolute, 6, insDEC}
	t[0xDE] = Opcode{"DEC", AddrAbsoluteX, 7, insDEC}
	t[0xE8] = Opcode{"INX", AddrImplied, 2, insINX}
	t[0xC8] = Opcode{"INY", AddrImplied, 2, insINY}
	t[0xCA] = Opcode{"DEX", AddrImplied, 2, insDEX}
	t[0x88] = Opcode{"DEY", AddrImplied, 2, insDEY}

	// Logic
	t[0x29] = Opcode{"AND", AddrImmediate, 2, insAND}
	t[0x25] = Opcode{"AND", AddrDirectPage, 3, insAND}
	t[0x35] = Opcode{"AND", AddrDirectPageX, 4, insAND}
	t[0x2D] = Opcode{"AND", AddrAbsolute, 4, insAND}
	t[0x3D] = Opcode{"AND", AddrAbsoluteX, 4, insAND}
	t[0x39] = Opcode{"AND", AddrAbsoluteY, 4, insAND}
	t[0x2F] = Opcode{"AND", AddrAbsoluteLong, 5, insAND}
	t[0x3F] = Opcode{"AND", AddrAbsoluteLongX, 5, insAND}
	t[0x21] = Opcode{"AND", AddrDirectPageIndexedIndirectX, 6, insAND}
	t[0x31] = Opcode{"AND", AddrDirectPageIndirectIndexedY, 5, insAND}
	t[0x32] = Opcode{"AND", AddrDirectPageIndirect, 5, insAND}
	t[0x27] = Opcode{"AND", AddrDirectPageIndirectLong, 6, insAND}
	t[0x37] = Opcode{"AND", AddrDirectPageIndirectLongIndexedY, 6, insAND}
	t[0x23] = Opcode{"AND", AddrStackRelative, 4, insAND}
	t[0x33] = Opcode{"AND", AddrStackRelativeIndirectIndexedY, 7, insAND}

	t[0x09] = Opcode{"ORA", AddrImmediate, 2, insORA}
	t[0x05] = Opcode{"ORA", AddrDirectPage, 3, insORA}
	t[0x15] = Opcode{"ORA", AddrDirectPageX, 4, insORA}
	t[0x0D] = Opcode{"ORA", AddrAbsolute, 4, insORA}
	t[0x1D] = Opcode{"ORA", AddrAbsoluteX, 4, insORA}
	t[0x19] = Opcode{"ORA", AddrAbsoluteY, 4, insORA}
	t[0x0F] = Opcode{"ORA", AddrAbsoluteLong, 5, insORA}
	t[0x1F] = Opcode{"ORA", AddrAbsoluteLongX, 5, insORA}
	t[0x01] = Opcode{"ORA", AddrDirectPageIndexedIndirectX, 6, insORA}
	t[0x11] = Opcode{"ORA", AddrDirectPageIndirectIndexedY, 5, insORA}
	t[0x12] = Opcode{"ORA", AddrDirectPageIndirect, 5, insORA}
	t[0x07] = Opcode{"ORA", AddrDirectPageIndirectLong, 6, insORA}
	t[0x17] = Opcode{"ORA", AddrDirectPageIndirectLongIndexedY, 6, insORA}
	t[0x03] = Opcode{"ORA", AddrStackRelative, 4, insORA}
	t[0x13] = Opcode{"ORA", AddrStackRelativeIndirectIndexedY, 7, insORA}

	t[0x49] = Opcode{"EOR", AddrImmediate, 2, insEOR}
	t[0x45] = Opcode{"EOR", AddrDirectPage, 3, insEOR}
	t[0x55] = Opcode{"EOR", AddrDirectPageX, 4, insEOR}
	t[0x4D] = Opcode{"EOR", AddrAbsolute, 4, insEOR}
	t[0x5D] = Opcode{"EOR", AddrAbsoluteX, 4, insEOR}
	t[0x59] = Opcode{"EOR", AddrAbsoluteY, 4, insEOR}
	t[0x4F] = Opcode{"EOR", AddrAbsoluteLong, 5, insEOR}
	t[0x5F] = Opcode{"EOR", AddrAbsoluteLongX, 5, insEOR}
	t[0x41] = Opcode{"EOR", AddrDirectPageIndexedIndirectX, 6, insEOR}
	t[0x51] = Opcode{"EOR", AddrDirectPageIndirectIndexedY, 5, insEOR}
	t[0x52] = Opcode{"EOR", AddrDirectPageIndirect, 5, insEOR}
	t[0x47] = Opcode{"EOR", AddrDirectPageIndirectLong, 6, insEOR}
	t[0x57] = Opcode{"EOR", AddrDirectPageIndirectLongIndexedY, 6, insEOR}
	t[0x43] = Opcode{"EOR", AddrStackRelative, 4, insEOR}
	t[0x53] = Opcode{"EOR", AddrStackRelativeIndirectIndexedY, 7, insEOR}

	t[0x24] = Opcode{"BIT", AddrDirectPage, 3, insBIT}
	t[0x34] = Opcode{"BIT", AddrDirectPageX, 4, insBIT}
	t[0x2C] = Opcode{"BIT", AddrAbsolute, 4, insBIT}
	t[0x3C] = Opcode{"BIT", AddrAbsoluteX, 4, insBIT}
	t[0x89] = Opcode{"BIT", AddrImmediate, 2, insBIT}

	t[0x04] = Opcode{"TSB", AddrDirectPage, 5, insTSB}
	t[0x0C] = Opcode{"TSB", AddrAbsolute, 6, insTSB}
	t[0x14] = Opcode{"TRB", AddrDirectPage, 5, insTRB}
	t[0x1C] = Opcode{"TRB", AddrAbsolute, 6, insTRB}

	// Shifts/rotates
	t[0x0A] = Opcode{"ASL", AddrAccumulator, 2, insASL}
	t[0x06] = Opcode{"ASL", AddrDirectPage, 5, insASL}
	t[0x16] = Opcode{"ASL", AddrDirectPageX, 6, insASL}
	t[0x0E] = Opcode{"ASL", AddrAbsolute, 6, insASL}
	t[0x1E] = Opcode{"ASL", AddrAbsoluteX, 7, insASL}
	t[0x4A] = Opcode{"LSR", AddrAccumulator, 2, insLSR}
	t[0x46] = Opcode{"LSR", AddrDirectPage, 5, insLSR}
	t[0x56] = Opcode{"LSR", AddrDirectPageX, 6, insLSR}
	t[0x4E] = Opcode{"LSR", AddrAbsolute, 6, insLSR}
	t[0x5E] = Opcode{"LSR", AddrAbsoluteX, 7, insLSR}
	t[0x2A] = Opcode{"ROL", AddrAccumulator, 2, insROL}
	t[0x26] = Opcode{"ROL", AddrDirectPage, 5, insROL}
	t[0x36] = Opcode{"ROL", AddrDirectPageX, 6, insROL}
	t[0x2E] = Opcode{"ROL", AddrAbsolute, 6, insROL}
	t[0x3E] = Opcode{"ROL", AddrAbsoluteX, 7, insROL}
	t[0x6A] = Opcode{"ROR", AddrAccumulator, 2, insROR}
	t[0x66] = Opcode{"ROR", AddrDirectPage, 5, insROR}
	t[0x76] = Opcode{"ROR", AddrDirectPageX, 6, insROR}
	t[0x6E] = Opcode{"ROR", AddrAbsolute, 6, insROR}
	t[0x7E] = Opcode{"ROR", AddrAbsoluteX, 7, insROR}

	// Branches
	t[0x90] = Opcode{"BCC", AddrProgramCounterRelative, 2, insBCC}
	t[0xB0] = Opcode{"BCS", AddrProgramCounterRelative, 2, insBCS}
	t[0xF0] = Opcode{"BEQ", AddrProgramCounterRelative, 2, insBEQ}
	t[0xD0] = Opcode{"BNE", AddrProgramCounterRelative, 2, insBNE}
	t[0x30] = Opcode{"BMI", AddrProgramCounterRelative, 2, insBMI}
	t[0x10] = Opcode{"BPL", AddrProgramCounterRelative, 2, insBPL}
	t[0x50] = Opcode{"BVC", AddrProgramCounterRelative, 2, insBVC}
	t[0x70] = Opcode{"BVS", AddrProgramCounterRelative, 2, insBVS}
	t[0x80] = Opcode{"BRA", AddrProgramCounterRelative, 3, insBRA}
	t[0x82] = Opcode{"BRL", AddrProgramCounterRelativeLong, 4, insBRL}

	// Jumps/calls/returns
	t[0x4C] = Opcode{"JMP", AddrAbsolute, 3, insJMP}
	t[0x6C] = Opcode{"JMP", AddrAbsoluteIndirect, 5, insJMP}
	t[0x7C] = Opcode{"JMP", AddrAbsoluteIndexedIndirect, 6, insJMP}
	t[0x5C] = Opcode{"JML", AddrAbsoluteLong, 4, insJML}
	t[0xDC] = Opcode{"JML", AddrAbsoluteIndirectLong, 6, insJML}
	t[0x20] = Opcode{"JSR", AddrAbsolute, 6, insJSR}
	t[0xFC] = Opcode{"JSR", AddrAbsoluteIndexedIndirect, 8, insJSR}
	t[0x22] = Opcode{"JSL", AddrAbsoluteLong, 8, insJSL}
	t[0x60] = Opcode{"RTS", AddrImplied, 6, insRTS}
	t[0x6B] = Opcode{"RTL", AddrImplied, 6, insRTL}
	t[0x40] = Opcode{"RTI", AddrImplied, 6, insRTI}

	// Flags
	t[0x18] = Opcode{"CLC", AddrImplied, 2, insCLC}
	t[0x38] = Opcode{"SEC", AddrImplied, 2, insSEC}
	t[0x58] = Opcode{"CLI", AddrImplied, 2, insCLI}
	t[0x78] = Opcode{"SEI", AddrImplied, 2, insSEI}
	t[0xB8] = Opcode{"CLV", AddrImplied, 2, insCLV}
	t[0xD8] = Opcode{"CLD", AddrImplied, 2, insCLD}
	t[0xF8] = Opcode{"SED", AddrImplied, 2, insSED}
	t[0xC2] = Opcode{"REP", AddrImmediate, 3, insREP}
	t[0xE2] = Opcode{"SEP", AddrImmediate, 3, insSEP}
	t[0xFB] = Opcode{"XCE", AddrImplied, 2, insXCE}
	t[0xEB] = Opcode{"XBA", AddrImplied, 3, insXBA}

	// Block move
	t[0x54] = Opcode{"MVN", AddrBlockMove, 7, insMVN}
	t[0x44] = Opcode{"MVP", AddrBlockMove, 7, insMVP}

	// Misc
	t[0xEA] = Opcode{"NOP", AddrImplied, 2, insNOP}
	t[0x00] = Opcode{"BRK", AddrImplied, 7, insBRK}
	t[0x02] = Opcode{"COP", AddrImmediate, 7, insCOP}
	t[0xCB] = Opcode{"WAI", AddrImplied, 3, insWAI}
	t[0xDB] = Opcode{"STP", AddrImplied, 3, insSTP}
	t[0x42] = Opcode{"WDM", AddrImmediate, 2, insWDM}

	return t
}
