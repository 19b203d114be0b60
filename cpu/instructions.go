package cpu

// One handler per mnemonic; the opcode table maps each byte variant onto the
// same handler with a different addressing mode. Handlers that redirect
// control flow write the PC themselves; everyone else leaves the PC alone
// and lets step advance it past the operand bytes.

// https://www.nesdev.org/obelisk-6502-guide/reference.html
// http://www.6502.org/tutorials/6502opcodes.html

import "gomos/mask"

// addWithCarry implements the shared core of ADC and SBC: A + m + carry-in,
// with Carry from unsigned overflow and Overflow from signed overflow (the
// operands agree in sign but the result disagrees).
func (c *Cpu) addWithCarry(m byte) {
	var carry uint16
	if c.Status.Has(Carry) {
		carry = 1
	}

	sum := uint16(c.A) + uint16(m) + carry
	c.Status.SetTo(Carry, sum > 0xff)

	result := byte(sum)
	c.Status.SetTo(Overflow, (c.A^result)&(m^result)&0x80 != 0)
	c.setA(result)
}

// compare computes register − operand without storing it. Carry doubles as
// "no borrow": set whenever the register is at least the operand, unsigned.
func (c *Cpu) compare(mode AddressingMode, register byte) {
	m := c.fetchOperand(mode)
	c.Status.SetTo(Carry, register >= m)
	c.updateZeroNegative(register - m)
}

// ADC - Add with Carry
func (c *Cpu) ADC(mode AddressingMode) {
	c.addWithCarry(c.fetchOperand(mode))
}

// AND - Logical AND
func (c *Cpu) AND(mode AddressingMode) {
	c.setA(c.A & c.fetchOperand(mode))
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(mode AddressingMode) {
	c.modify(mode, func(b byte) byte {
		c.Status.SetTo(Carry, mask.IsSet(b, 7))
		return b << 1
	})
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC(AddressingMode) {
	c.branch(!c.Status.Has(Carry))
}

// BCS - Branch if Carry Set
func (c *Cpu) BCS(AddressingMode) {
	c.branch(c.Status.Has(Carry))
}

// BEQ - Branch if Equal
func (c *Cpu) BEQ(AddressingMode) {
	c.branch(c.Status.Has(Zero))
}

// BIT - Bit Test
//
// Zero comes from A AND operand; Negative and Overflow are copied straight
// from bits 7 and 6 of the operand. A itself is untouched.
func (c *Cpu) BIT(mode AddressingMode) {
	data := c.Read(c.operand(mode))
	c.Status.SetTo(Zero, data&c.A == 0)
	c.Status.SetTo(Negative, mask.IsSet(data, 7))
	c.Status.SetTo(Overflow, mask.IsSet(data, 6))
}

// BMI - Branch if Minus
func (c *Cpu) BMI(AddressingMode) {
	c.branch(c.Status.Has(Negative))
}

// BNE - Branch if Not Equal
func (c *Cpu) BNE(AddressingMode) {
	c.branch(!c.Status.Has(Zero))
}

// BPL - Branch if Positive
func (c *Cpu) BPL(AddressingMode) {
	c.branch(!c.Status.Has(Negative))
}

// BRK - Force Interrupt
//
// With ServiceBRK set this behaves like hardware: the byte after the opcode
// is padding, the pushed status copy carries the Break bit, and execution
// continues at the IRQ vector. Otherwise the run loop halts, which is what
// test programs terminated by 0x00 expect.
func (c *Cpu) BRK(AddressingMode) {
	if !c.ServiceBRK {
		c.halted = true
		return
	}

	c.PC++ // padding byte
	c.pushWord(c.PC)

	flags := c.Status
	flags.Insert(Break | Unused)
	c.push(flags.Bits())

	c.Status.Insert(InterruptDisable)
	c.PC = c.ReadWord(irqVector)
}

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC(AddressingMode) {
	c.branch(!c.Status.Has(Overflow))
}

// BVS - Branch if Overflow Set
func (c *Cpu) BVS(AddressingMode) {
	c.branch(c.Status.Has(Overflow))
}

// CLC - Clear Carry Flag
func (c *Cpu) CLC(AddressingMode) {
	c.Status.Remove(Carry)
}

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(AddressingMode) {
	c.Status.Remove(Decimal)
}

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(AddressingMode) {
	c.Status.Remove(InterruptDisable)
}

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(AddressingMode) {
	c.Status.Remove(Overflow)
}

// CMP - Compare
func (c *Cpu) CMP(mode AddressingMode) {
	c.compare(mode, c.A)
}

// CPX - Compare X Register
func (c *Cpu) CPX(mode AddressingMode) {
	c.compare(mode, c.X)
}

// CPY - Compare Y Register
func (c *Cpu) CPY(mode AddressingMode) {
	c.compare(mode, c.Y)
}

// DEC - Decrement Memory
func (c *Cpu) DEC(mode AddressingMode) {
	c.modify(mode, func(b byte) byte { return b - 1 })
}

// DEX - Decrement X Register
func (c *Cpu) DEX(AddressingMode) {
	c.setX(c.X - 1)
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(AddressingMode) {
	c.setY(c.Y - 1)
}

// EOR - Exclusive OR
func (c *Cpu) EOR(mode AddressingMode) {
	c.setA(c.A ^ c.fetchOperand(mode))
}

// INC - Increment Memory
func (c *Cpu) INC(mode AddressingMode) {
	c.modify(mode, func(b byte) byte { return b + 1 })
}

// INX - Increment X Register
func (c *Cpu) INX(AddressingMode) {
	c.setX(c.X + 1)
}

// INY - Increment Y Register
func (c *Cpu) INY(AddressingMode) {
	c.setY(c.Y + 1)
}

// JMP - Jump
func (c *Cpu) JMP(mode AddressingMode) {
	base := c.ReadWord(c.PC)
	switch mode {
	case Absolute:
		c.PC = base
	case Indirect:
		c.PC = c.indirectTarget(base)
	default:
		panic("cpu: JMP with non-jump addressing mode")
	}
}

// JSR - Jump to Subroutine
//
// The pushed return address is PC+1, the address of the instruction's last
// byte; RTS corrects with +1. The PC already sits past the opcode here.
func (c *Cpu) JSR(AddressingMode) {
	c.pushWord(c.PC + 1)
	c.PC = c.ReadWord(c.PC)
}

// LDA - Load Accumulator
func (c *Cpu) LDA(mode AddressingMode) {
	c.setA(c.fetchOperand(mode))
}

// LDX - Load X Register
func (c *Cpu) LDX(mode AddressingMode) {
	c.setX(c.fetchOperand(mode))
}

// LDY - Load Y Register
func (c *Cpu) LDY(mode AddressingMode) {
	c.setY(c.fetchOperand(mode))
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(mode AddressingMode) {
	c.modify(mode, func(b byte) byte {
		c.Status.SetTo(Carry, mask.IsSet(b, 0))
		return b >> 1
	})
}

// NOP - No Operation
func (c *Cpu) NOP(AddressingMode) {}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(mode AddressingMode) {
	c.setA(c.A | c.fetchOperand(mode))
}

// PHA - Push Accumulator
func (c *Cpu) PHA(AddressingMode) {
	c.push(c.A)
}

// PHP - Push Processor Status
//
// The pushed copy always carries Break and the unused bit.
func (c *Cpu) PHP(AddressingMode) {
	flags := c.Status
	flags.Insert(Break | Unused)
	c.push(flags.Bits())
}

// PLA - Pull Accumulator
func (c *Cpu) PLA(AddressingMode) {
	c.setA(c.pop())
}

// PLP - Pull Processor Status
//
// The unused bit is forced on and Break forced off; neither exists as real
// state in the register.
func (c *Cpu) PLP(AddressingMode) {
	c.Status = StatusFromBits(c.pop())
	c.Status.Insert(Unused)
	c.Status.Remove(Break)
}

// ROL - Rotate Left
func (c *Cpu) ROL(mode AddressingMode) {
	c.modify(mode, func(b byte) byte {
		carryIn := c.Status.Has(Carry)
		c.Status.SetTo(Carry, mask.IsSet(b, 7))
		b <<= 1
		if carryIn {
			b = mask.Set(b, 0)
		}
		return b
	})
}

// ROR - Rotate Right
func (c *Cpu) ROR(mode AddressingMode) {
	c.modify(mode, func(b byte) byte {
		carryIn := c.Status.Has(Carry)
		c.Status.SetTo(Carry, mask.IsSet(b, 0))
		b >>= 1
		if carryIn {
			b = mask.Set(b, 7)
		}
		return b
	})
}

// RTI - Return from Interrupt
//
// Pops the status register, then the PC — without the +1 adjustment of RTS,
// since the interrupt pushed the address of the next instruction itself.
func (c *Cpu) RTI(AddressingMode) {
	c.PLP(Implied)
	c.PC = c.popWord()
}

// RTS - Return from Subroutine
func (c *Cpu) RTS(AddressingMode) {
	c.PC = c.popWord() + 1
}

// SBC - Subtract with Carry
//
// Equivalent to ADC with the operand's bits inverted; carry-in acts as
// "not borrow".
func (c *Cpu) SBC(mode AddressingMode) {
	c.addWithCarry(^c.fetchOperand(mode))
}

// SEC - Set Carry Flag
func (c *Cpu) SEC(AddressingMode) {
	c.Status.Insert(Carry)
}

// SED - Set Decimal Flag
func (c *Cpu) SED(AddressingMode) {
	c.Status.Insert(Decimal)
}

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(AddressingMode) {
	c.Status.Insert(InterruptDisable)
}

// STA - Store Accumulator
func (c *Cpu) STA(mode AddressingMode) {
	c.Write(c.operand(mode), c.A)
}

// STX - Store X Register
func (c *Cpu) STX(mode AddressingMode) {
	c.Write(c.operand(mode), c.X)
}

// STY - Store Y Register
func (c *Cpu) STY(mode AddressingMode) {
	c.Write(c.operand(mode), c.Y)
}

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(AddressingMode) {
	c.setX(c.A)
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(AddressingMode) {
	c.setY(c.A)
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(AddressingMode) {
	c.setX(c.SP)
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(AddressingMode) {
	c.setA(c.X)
}

// TXS - Transfer X to Stack Pointer
//
// The one transfer that leaves the flags alone.
func (c *Cpu) TXS(AddressingMode) {
	c.SP = c.X
}

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(AddressingMode) {
	c.setA(c.Y)
}
