package cpu

import (
	"fmt"
	"strings"

	"gomos/mask"
)

// Trace renders the instruction at the current PC as one line of a
// Nintendulator-style execution log: PC, raw bytes, disassembly, and the
// register snapshot taken before the instruction executes. Column widths are
// fixed so traces diff line-exact against nestest.log and friends.
//
//	PPPP  BB BB BB  MNEM OPERAND                  A:AA X:XX Y:YY P:PP SP:SS
//
// Feed it to RunWithCallback:
//
//	cpu.RunWithCallback(func(c *cpu.Cpu) bool {
//		fmt.Println(cpu.Trace(c))
//		return true
//	})
func Trace(c *Cpu) string {
	begin := c.PC
	code := c.Read(begin)

	op := Opcodes[code]
	if op == nil {
		op = &Opcode{Name: "???", Length: 1, Mode: Implied}
	}

	// effective address and the byte stored there, for the modes that
	// have one (jumps show their target instead)
	var memAddr uint16
	var stored byte
	switch op.Mode {
	case ZeroPage, ZeroPageX, ZeroPageY, AbsoluteX, AbsoluteY, IndirectX, IndirectY:
		memAddr, _ = c.operandAddress(op.Mode, begin+1)
		stored = c.Read(memAddr)
	case Absolute:
		if code != 0x4c && code != 0x20 { // JMP/JSR: plain target
			memAddr, _ = c.operandAddress(op.Mode, begin+1)
			stored = c.Read(memAddr)
		}
	}

	dump := []byte{code}
	var operand string

	switch op.Length {
	case 1:
		if op.Mode == Accumulator {
			operand = "A"
		}

	case 2:
		arg := c.Read(begin + 1)
		dump = append(dump, arg)

		switch op.Mode {
		case Immediate:
			operand = fmt.Sprintf("#$%02X", arg)
		case ZeroPage:
			operand = fmt.Sprintf("$%02X = %02X", memAddr, stored)
		case ZeroPageX:
			operand = fmt.Sprintf("$%02X,X @ %02X = %02X", arg, memAddr, stored)
		case ZeroPageY:
			operand = fmt.Sprintf("$%02X,Y @ %02X = %02X", arg, memAddr, stored)
		case IndirectX:
			operand = fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X",
				arg, arg+c.X, memAddr, stored)
		case IndirectY:
			operand = fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X",
				arg, memAddr-uint16(c.Y), memAddr, stored)
		case Relative:
			target := begin + 2 + uint16(int8(arg))
			operand = fmt.Sprintf("$%04X", target)
		}

	case 3:
		lo := c.Read(begin + 1)
		hi := c.Read(begin + 2)
		dump = append(dump, lo, hi)
		arg := mask.Word(hi, lo)

		switch {
		case code == 0x6c: // JMP indirect, boundary bug included
			operand = fmt.Sprintf("($%04X) = %04X", arg, c.indirectTarget(arg))
		case code == 0x4c || code == 0x20:
			operand = fmt.Sprintf("$%04X", arg)
		case op.Mode == Absolute:
			operand = fmt.Sprintf("$%04X = %02X", memAddr, stored)
		case op.Mode == AbsoluteX:
			operand = fmt.Sprintf("$%04X,X @ %04X = %02X", arg, memAddr, stored)
		case op.Mode == AbsoluteY:
			operand = fmt.Sprintf("$%04X,Y @ %04X = %02X", arg, memAddr, stored)
		}
	}

	raw := make([]string, len(dump))
	for i, b := range dump {
		raw[i] = fmt.Sprintf("%02X", b)
	}

	asm := fmt.Sprintf("%04X  %-8s %4s %s",
		begin, strings.Join(raw, " "), op.Name, operand)
	asm = strings.TrimRight(asm, " ")

	return fmt.Sprintf("%-47s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		asm, c.A, c.X, c.Y, c.Status.Bits(), c.SP)
}
