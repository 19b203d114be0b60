package cpu

// An Opcode describes one of the 151 legal byte values the Cpu recognises.
// Multiple opcodes may execute the same instruction, differing only in
// addressing mode, byte length and cycle cost.
type Opcode struct {
	Name string // mnemonic, for the debugger and tracer

	// Total instruction size, opcode byte included: 1 to 3. step uses it
	// to consume the operand bytes of instructions that do not redirect
	// the PC.
	Length byte

	// Base clock cycles, 2 to 7. Page crosses and taken branches add
	// surcharges on top; those are accounted where they occur.
	//
	// https://www.nesdev.org/wiki/Cycle_counting#Instruction_timings
	Cycles byte

	Mode AddressingMode

	// The handler. Args reach it implicitly, through the mode and the
	// Cpu's registers, never as explicit func args.
	Instruction func(c *Cpu, mode AddressingMode)
}

// Opcodes is the decode table: a dense 256-slot array, built once and read
// forever. A nil slot is an illegal opcode and surfaces as a DecodeError.
// Dense indexing beats a map on the hot path.
var Opcodes = [0x100]*Opcode{
	// Generated from http://www.6502.org/tutorials/6502opcodes.html and
	// https://www.nesdev.org/obelisk-6502-guide/reference.html

	0x69: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 2, Cycles: 2, Mode: Immediate},
	0x65: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x75: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0x6D: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 3, Cycles: 4, Mode: Absolute},
	0x7D: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 3, Cycles: 4, Mode: AbsoluteX},
	0x79: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 3, Cycles: 4, Mode: AbsoluteY},
	0x61: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 2, Cycles: 6, Mode: IndirectX},
	0x71: {Instruction: (*Cpu).ADC, Name: "ADC", Length: 2, Cycles: 5, Mode: IndirectY},

	0x29: {Instruction: (*Cpu).AND, Name: "AND", Length: 2, Cycles: 2, Mode: Immediate},
	0x25: {Instruction: (*Cpu).AND, Name: "AND", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x35: {Instruction: (*Cpu).AND, Name: "AND", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0x2D: {Instruction: (*Cpu).AND, Name: "AND", Length: 3, Cycles: 4, Mode: Absolute},
	0x3D: {Instruction: (*Cpu).AND, Name: "AND", Length: 3, Cycles: 4, Mode: AbsoluteX},
	0x39: {Instruction: (*Cpu).AND, Name: "AND", Length: 3, Cycles: 4, Mode: AbsoluteY},
	0x21: {Instruction: (*Cpu).AND, Name: "AND", Length: 2, Cycles: 6, Mode: IndirectX},
	0x31: {Instruction: (*Cpu).AND, Name: "AND", Length: 2, Cycles: 5, Mode: IndirectY},

	0x0A: {Instruction: (*Cpu).ASL, Name: "ASL", Length: 1, Cycles: 2, Mode: Accumulator},
	0x06: {Instruction: (*Cpu).ASL, Name: "ASL", Length: 2, Cycles: 5, Mode: ZeroPage},
	0x16: {Instruction: (*Cpu).ASL, Name: "ASL", Length: 2, Cycles: 6, Mode: ZeroPageX},
	0x0E: {Instruction: (*Cpu).ASL, Name: "ASL", Length: 3, Cycles: 6, Mode: Absolute},
	0x1E: {Instruction: (*Cpu).ASL, Name: "ASL", Length: 3, Cycles: 7, Mode: AbsoluteX},

	0x24: {Instruction: (*Cpu).BIT, Name: "BIT", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x2C: {Instruction: (*Cpu).BIT, Name: "BIT", Length: 3, Cycles: 4, Mode: Absolute},

	0x00: {Instruction: (*Cpu).BRK, Name: "BRK", Length: 1, Cycles: 7, Mode: Implied},

	0xC9: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 2, Cycles: 2, Mode: Immediate},
	0xC5: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 2, Cycles: 3, Mode: ZeroPage},
	0xD5: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0xCD: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 3, Cycles: 4, Mode: Absolute},
	0xDD: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 3, Cycles: 4, Mode: AbsoluteX},
	0xD9: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 3, Cycles: 4, Mode: AbsoluteY},
	0xC1: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 2, Cycles: 6, Mode: IndirectX},
	0xD1: {Instruction: (*Cpu).CMP, Name: "CMP", Length: 2, Cycles: 5, Mode: IndirectY},

	0xE0: {Instruction: (*Cpu).CPX, Name: "CPX", Length: 2, Cycles: 2, Mode: Immediate},
	0xE4: {Instruction: (*Cpu).CPX, Name: "CPX", Length: 2, Cycles: 3, Mode: ZeroPage},
	0xEC: {Instruction: (*Cpu).CPX, Name: "CPX", Length: 3, Cycles: 4, Mode: Absolute},

	0xC0: {Instruction: (*Cpu).CPY, Name: "CPY", Length: 2, Cycles: 2, Mode: Immediate},
	0xC4: {Instruction: (*Cpu).CPY, Name: "CPY", Length: 2, Cycles: 3, Mode: ZeroPage},
	0xCC: {Instruction: (*Cpu).CPY, Name: "CPY", Length: 3, Cycles: 4, Mode: Absolute},

	0xC6: {Instruction: (*Cpu).DEC, Name: "DEC", Length: 2, Cycles: 5, Mode: ZeroPage},
	0xD6: {Instruction: (*Cpu).DEC, Name: "DEC", Length: 2, Cycles: 6, Mode: ZeroPageX},
	0xCE: {Instruction: (*Cpu).DEC, Name: "DEC", Length: 3, Cycles: 6, Mode: Absolute},
	0xDE: {Instruction: (*Cpu).DEC, Name: "DEC", Length: 3, Cycles: 7, Mode: AbsoluteX},

	0x49: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 2, Cycles: 2, Mode: Immediate},
	0x45: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x55: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0x4D: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 3, Cycles: 4, Mode: Absolute},
	0x5D: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 3, Cycles: 4, Mode: AbsoluteX},
	0x59: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 3, Cycles: 4, Mode: AbsoluteY},
	0x41: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 2, Cycles: 6, Mode: IndirectX},
	0x51: {Instruction: (*Cpu).EOR, Name: "EOR", Length: 2, Cycles: 5, Mode: IndirectY},

	0xE6: {Instruction: (*Cpu).INC, Name: "INC", Length: 2, Cycles: 5, Mode: ZeroPage},
	0xF6: {Instruction: (*Cpu).INC, Name: "INC", Length: 2, Cycles: 6, Mode: ZeroPageX},
	0xEE: {Instruction: (*Cpu).INC, Name: "INC", Length: 3, Cycles: 6, Mode: Absolute},
	0xFE: {Instruction: (*Cpu).INC, Name: "INC", Length: 3, Cycles: 7, Mode: AbsoluteX},

	0x4C: {Instruction: (*Cpu).JMP, Name: "JMP", Length: 3, Cycles: 3, Mode: Absolute},
	0x6C: {Instruction: (*Cpu).JMP, Name: "JMP", Length: 3, Cycles: 5, Mode: Indirect},
	0x20: {Instruction: (*Cpu).JSR, Name: "JSR", Length: 3, Cycles: 6, Mode: Absolute},

	0xA9: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 2, Cycles: 2, Mode: Immediate},
	0xA5: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 2, Cycles: 3, Mode: ZeroPage},
	0xB5: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0xAD: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 3, Cycles: 4, Mode: Absolute},
	0xBD: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 3, Cycles: 4, Mode: AbsoluteX},
	0xB9: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 3, Cycles: 4, Mode: AbsoluteY},
	0xA1: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 2, Cycles: 6, Mode: IndirectX},
	0xB1: {Instruction: (*Cpu).LDA, Name: "LDA", Length: 2, Cycles: 5, Mode: IndirectY},

	0xA2: {Instruction: (*Cpu).LDX, Name: "LDX", Length: 2, Cycles: 2, Mode: Immediate},
	0xA6: {Instruction: (*Cpu).LDX, Name: "LDX", Length: 2, Cycles: 3, Mode: ZeroPage},
	0xB6: {Instruction: (*Cpu).LDX, Name: "LDX", Length: 2, Cycles: 4, Mode: ZeroPageY},
	0xAE: {Instruction: (*Cpu).LDX, Name: "LDX", Length: 3, Cycles: 4, Mode: Absolute},
	0xBE: {Instruction: (*Cpu).LDX, Name: "LDX", Length: 3, Cycles: 4, Mode: AbsoluteY},

	0xA0: {Instruction: (*Cpu).LDY, Name: "LDY", Length: 2, Cycles: 2, Mode: Immediate},
	0xA4: {Instruction: (*Cpu).LDY, Name: "LDY", Length: 2, Cycles: 3, Mode: ZeroPage},
	0xB4: {Instruction: (*Cpu).LDY, Name: "LDY", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0xAC: {Instruction: (*Cpu).LDY, Name: "LDY", Length: 3, Cycles: 4, Mode: Absolute},
	0xBC: {Instruction: (*Cpu).LDY, Name: "LDY", Length: 3, Cycles: 4, Mode: AbsoluteX},

	0x4A: {Instruction: (*Cpu).LSR, Name: "LSR", Length: 1, Cycles: 2, Mode: Accumulator},
	0x46: {Instruction: (*Cpu).LSR, Name: "LSR", Length: 2, Cycles: 5, Mode: ZeroPage},
	0x56: {Instruction: (*Cpu).LSR, Name: "LSR", Length: 2, Cycles: 6, Mode: ZeroPageX},
	0x4E: {Instruction: (*Cpu).LSR, Name: "LSR", Length: 3, Cycles: 6, Mode: Absolute},
	0x5E: {Instruction: (*Cpu).LSR, Name: "LSR", Length: 3, Cycles: 7, Mode: AbsoluteX},

	0xEA: {Instruction: (*Cpu).NOP, Name: "NOP", Length: 1, Cycles: 2, Mode: Implied},

	0x09: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 2, Cycles: 2, Mode: Immediate},
	0x05: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x15: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0x0D: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 3, Cycles: 4, Mode: Absolute},
	0x1D: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 3, Cycles: 4, Mode: AbsoluteX},
	0x19: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 3, Cycles: 4, Mode: AbsoluteY},
	0x01: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 2, Cycles: 6, Mode: IndirectX},
	0x11: {Instruction: (*Cpu).ORA, Name: "ORA", Length: 2, Cycles: 5, Mode: IndirectY},

	0x2A: {Instruction: (*Cpu).ROL, Name: "ROL", Length: 1, Cycles: 2, Mode: Accumulator},
	0x26: {Instruction: (*Cpu).ROL, Name: "ROL", Length: 2, Cycles: 5, Mode: ZeroPage},
	0x36: {Instruction: (*Cpu).ROL, Name: "ROL", Length: 2, Cycles: 6, Mode: ZeroPageX},
	0x2E: {Instruction: (*Cpu).ROL, Name: "ROL", Length: 3, Cycles: 6, Mode: Absolute},
	0x3E: {Instruction: (*Cpu).ROL, Name: "ROL", Length: 3, Cycles: 7, Mode: AbsoluteX},

	0x6A: {Instruction: (*Cpu).ROR, Name: "ROR", Length: 1, Cycles: 2, Mode: Accumulator},
	0x66: {Instruction: (*Cpu).ROR, Name: "ROR", Length: 2, Cycles: 5, Mode: ZeroPage},
	0x76: {Instruction: (*Cpu).ROR, Name: "ROR", Length: 2, Cycles: 6, Mode: ZeroPageX},
	0x6E: {Instruction: (*Cpu).ROR, Name: "ROR", Length: 3, Cycles: 6, Mode: Absolute},
	0x7E: {Instruction: (*Cpu).ROR, Name: "ROR", Length: 3, Cycles: 7, Mode: AbsoluteX},

	0x40: {Instruction: (*Cpu).RTI, Name: "RTI", Length: 1, Cycles: 6, Mode: Implied},
	0x60: {Instruction: (*Cpu).RTS, Name: "RTS", Length: 1, Cycles: 6, Mode: Implied},

	0xE9: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 2, Cycles: 2, Mode: Immediate},
	0xE5: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 2, Cycles: 3, Mode: ZeroPage},
	0xF5: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0xED: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 3, Cycles: 4, Mode: Absolute},
	0xFD: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 3, Cycles: 4, Mode: AbsoluteX},
	0xF9: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 3, Cycles: 4, Mode: AbsoluteY},
	0xE1: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 2, Cycles: 6, Mode: IndirectX},
	0xF1: {Instruction: (*Cpu).SBC, Name: "SBC", Length: 2, Cycles: 5, Mode: IndirectY},

	0x85: {Instruction: (*Cpu).STA, Name: "STA", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x95: {Instruction: (*Cpu).STA, Name: "STA", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0x8D: {Instruction: (*Cpu).STA, Name: "STA", Length: 3, Cycles: 4, Mode: Absolute},
	0x9D: {Instruction: (*Cpu).STA, Name: "STA", Length: 3, Cycles: 5, Mode: AbsoluteX},
	0x99: {Instruction: (*Cpu).STA, Name: "STA", Length: 3, Cycles: 5, Mode: AbsoluteY},
	0x81: {Instruction: (*Cpu).STA, Name: "STA", Length: 2, Cycles: 6, Mode: IndirectX},
	0x91: {Instruction: (*Cpu).STA, Name: "STA", Length: 2, Cycles: 6, Mode: IndirectY},

	0x86: {Instruction: (*Cpu).STX, Name: "STX", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x96: {Instruction: (*Cpu).STX, Name: "STX", Length: 2, Cycles: 4, Mode: ZeroPageY},
	0x8E: {Instruction: (*Cpu).STX, Name: "STX", Length: 3, Cycles: 4, Mode: Absolute},

	0x84: {Instruction: (*Cpu).STY, Name: "STY", Length: 2, Cycles: 3, Mode: ZeroPage},
	0x94: {Instruction: (*Cpu).STY, Name: "STY", Length: 2, Cycles: 4, Mode: ZeroPageX},
	0x8C: {Instruction: (*Cpu).STY, Name: "STY", Length: 3, Cycles: 4, Mode: Absolute},

	// clear, set
	0x18: {Instruction: (*Cpu).CLC, Name: "CLC", Length: 1, Cycles: 2, Mode: Implied},
	0x38: {Instruction: (*Cpu).SEC, Name: "SEC", Length: 1, Cycles: 2, Mode: Implied},
	0x58: {Instruction: (*Cpu).CLI, Name: "CLI", Length: 1, Cycles: 2, Mode: Implied},
	0x78: {Instruction: (*Cpu).SEI, Name: "SEI", Length: 1, Cycles: 2, Mode: Implied},
	0xB8: {Instruction: (*Cpu).CLV, Name: "CLV", Length: 1, Cycles: 2, Mode: Implied},
	0xD8: {Instruction: (*Cpu).CLD, Name: "CLD", Length: 1, Cycles: 2, Mode: Implied},
	0xF8: {Instruction: (*Cpu).SED, Name: "SED", Length: 1, Cycles: 2, Mode: Implied},

	// increment, decrement, transfer
	0xAA: {Instruction: (*Cpu).TAX, Name: "TAX", Length: 1, Cycles: 2, Mode: Implied},
	0x8A: {Instruction: (*Cpu).TXA, Name: "TXA", Length: 1, Cycles: 2, Mode: Implied},
	0xCA: {Instruction: (*Cpu).DEX, Name: "DEX", Length: 1, Cycles: 2, Mode: Implied},
	0xE8: {Instruction: (*Cpu).INX, Name: "INX", Length: 1, Cycles: 2, Mode: Implied},
	0xA8: {Instruction: (*Cpu).TAY, Name: "TAY", Length: 1, Cycles: 2, Mode: Implied},
	0x98: {Instruction: (*Cpu).TYA, Name: "TYA", Length: 1, Cycles: 2, Mode: Implied},
	0x88: {Instruction: (*Cpu).DEY, Name: "DEY", Length: 1, Cycles: 2, Mode: Implied},
	0xC8: {Instruction: (*Cpu).INY, Name: "INY", Length: 1, Cycles: 2, Mode: Implied},

	// branch
	0x10: {Instruction: (*Cpu).BPL, Name: "BPL", Length: 2, Cycles: 2, Mode: Relative},
	0x30: {Instruction: (*Cpu).BMI, Name: "BMI", Length: 2, Cycles: 2, Mode: Relative},
	0x50: {Instruction: (*Cpu).BVC, Name: "BVC", Length: 2, Cycles: 2, Mode: Relative},
	0x70: {Instruction: (*Cpu).BVS, Name: "BVS", Length: 2, Cycles: 2, Mode: Relative},
	0x90: {Instruction: (*Cpu).BCC, Name: "BCC", Length: 2, Cycles: 2, Mode: Relative},
	0xB0: {Instruction: (*Cpu).BCS, Name: "BCS", Length: 2, Cycles: 2, Mode: Relative},
	0xD0: {Instruction: (*Cpu).BNE, Name: "BNE", Length: 2, Cycles: 2, Mode: Relative},
	0xF0: {Instruction: (*Cpu).BEQ, Name: "BEQ", Length: 2, Cycles: 2, Mode: Relative},

	// stack
	0x9A: {Instruction: (*Cpu).TXS, Name: "TXS", Length: 1, Cycles: 2, Mode: Implied},
	0xBA: {Instruction: (*Cpu).TSX, Name: "TSX", Length: 1, Cycles: 2, Mode: Implied},
	0x48: {Instruction: (*Cpu).PHA, Name: "PHA", Length: 1, Cycles: 3, Mode: Implied},
	0x68: {Instruction: (*Cpu).PLA, Name: "PLA", Length: 1, Cycles: 4, Mode: Implied},
	0x08: {Instruction: (*Cpu).PHP, Name: "PHP", Length: 1, Cycles: 3, Mode: Implied},
	0x28: {Instruction: (*Cpu).PLP, Name: "PLP", Length: 1, Cycles: 4, Mode: Implied},
}
