// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES.

package cpu

import (
	"fmt"
	"time"

	"gomos/mask"
	"gomos/mem"
)

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/wiki/Cycle_reference_chart#Clock_rates

// ClockHz is the NTSC CPU clock rate. The core itself runs instructions as
// fast as the host allows; embedders that pace execution sleep one Tick per
// elapsed cycle.
const ClockHz = 1_789_773

var Tick = time.Second / ClockHz

const (
	nmiVector   = 0xfffa
	resetVector = 0xfffc
	irqVector   = 0xfffe

	stackBase  = 0x0100
	stackReset = 0xfd

	// interrupt-disable and the unused bit
	statusReset = 0b0010_0100

	loadBase = 0x8000
)

// The Cpu has no memory of its own (aside from a handful of small registers
// amounting to about 7 bytes). Everything else is reached through the Bus.
type Cpu struct {
	Bus mem.Memory

	A  byte // accumulator; primary arithmetic/logic destination
	X  byte // index register
	Y  byte // index register
	SP byte // stack pointer; the effective stack address is 0x0100+SP

	Status Status

	// The PC is a 2-byte address that increments (almost) continuously.
	// The byte located at this address provides the Cpu with the opcode of
	// the next instruction to execute.
	PC uint16

	// Cycles is the running tally of elapsed clock cycles, page-cross and
	// branch surcharges included.
	Cycles uint64

	// OnTick, if set, is invoked after every executed instruction (and
	// every serviced interrupt) with its cycle cost. The PPU and APU clock
	// themselves off this hook.
	OnTick func(cycles byte)

	// ServiceBRK routes BRK through the 0xfffe vector as a software
	// interrupt. When unset (the default), the run loop halts on BRK,
	// which is the behavior unit-test programs rely on.
	ServiceBRK bool

	extra  byte // surcharges accrued by the current instruction
	halted bool
}

// nmiSource is the optional capability a Memory implementation provides to
// deliver non-maskable interrupts. The poll consumes the latch.
type nmiSource interface {
	TakeNMI() bool
}

// New returns a Cpu wired to the given memory. Call Reset (or Load followed
// by Reset) before running.
func New(bus mem.Memory) *Cpu {
	return &Cpu{Bus: bus}
}

// Read reads one byte from the given addr. The addr is typically supplied by
// the program.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write passes data to the Bus, which actually performs the write.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// ReadWord reads a little-endian word through the Bus.
func (c *Cpu) ReadWord(addr uint16) uint16 {
	return mem.ReadWord(c.Bus, addr)
}

// WriteWord writes a little-endian word through the Bus.
func (c *Cpu) WriteWord(addr uint16, data uint16) {
	mem.WriteWord(c.Bus, addr, data)
}

// A DecodeError reports an opcode byte with no table entry. The run aborts;
// there is no way to resume mid-instruction.
type DecodeError struct {
	PC   uint16
	Code byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cpu: illegal opcode %02x at %04x", e.Code, e.PC)
}

// Load copies program into memory at 0x8000 and points the reset vector
// there.
func (c *Cpu) Load(program []byte) {
	c.LoadAt(program, loadBase)
	c.WriteWord(resetVector, loadBase)
}

// LoadAt copies program into memory at addr, leaving the vectors alone.
func (c *Cpu) LoadAt(program []byte, addr uint16) {
	for i, b := range program {
		c.Write(addr+uint16(i), b)
	}
}

// Reset puts the Cpu in its power-on state: registers cleared, stack pointer
// at 0xfd, interrupt-disable set, and the PC loaded from the reset vector.
func (c *Cpu) Reset() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = stackReset
	c.Status = StatusFromBits(statusReset)
	c.PC = c.ReadWord(resetVector)
}

// LoadAndRun loads program at 0x8000, resets, and runs it to completion.
func (c *Cpu) LoadAndRun(program []byte) error {
	c.Load(program)
	c.Reset()
	return c.Run()
}

// Run executes instructions until BRK (unless ServiceBRK is set) or until
// decoding fails.
func (c *Cpu) Run() error {
	return c.RunWithCallback(nil)
}

// RunWithCallback executes instructions like Run, invoking callback before
// each opcode fetch with the current Cpu state. Returning false from the
// callback stops the loop. Tracers hook in here; see Trace.
func (c *Cpu) RunWithCallback(callback func(c *Cpu) bool) error {
	c.halted = false
	for {
		if src, ok := c.Bus.(nmiSource); ok && src.TakeNMI() {
			c.interrupt(nmiVector)
		}
		if callback != nil && !callback(c) {
			return nil
		}
		if err := c.step(); err != nil {
			return err
		}
		if c.halted {
			return nil
		}
	}
}

// step runs a single fetch/decode/execute cycle.
//
// Handlers that redirect control flow (branches, jumps, JSR/RTS/RTI, BRK)
// write the PC themselves; for everything else the PC advances past the
// operand bytes here, so handlers never have to.
func (c *Cpu) step() error {
	code := c.Read(c.PC)
	c.PC++

	op := Opcodes[code]
	if op == nil {
		return &DecodeError{PC: c.PC - 1, Code: code}
	}

	before := c.PC
	op.Instruction(c, op.Mode)
	if c.PC == before {
		c.PC += uint16(op.Length) - 1
	}

	cycles := op.Cycles + c.extra
	c.extra = 0
	c.Cycles += uint64(cycles)
	if c.OnTick != nil {
		c.OnTick(cycles)
	}
	return nil
}

// interrupt services a hardware interrupt through the given vector (the run
// loop and the debugger use it for NMI, vector 0xfffa): the return address
// and status register go onto the stack, further IRQs are masked, and
// execution continues at the handler. BRK does not come through here; the
// BRK handler pushes its own status copy and vectors through 0xfffe.
//
// The pushed status copy has Break clear and the unused bit set,
// distinguishing a hardware interrupt from a BRK push.
func (c *Cpu) interrupt(vector uint16) {
	c.pushWord(c.PC)

	flags := c.Status
	flags.Remove(Break)
	flags.Insert(Unused)
	c.push(flags.Bits())

	c.Status.Insert(InterruptDisable)
	c.PC = c.ReadWord(vector)

	c.Cycles += interruptCost
	if c.OnTick != nil {
		c.OnTick(interruptCost)
	}
}

const interruptCost = 7

// Stack discipline: all traffic goes through the Bus at page 1. Push
// decrements, pop increments; the pointer wraps at 8 bits, silently — that
// is hardware behavior, not an error.

func (c *Cpu) push(data byte) {
	c.Write(stackBase|uint16(c.SP), data)
	c.SP--
}

func (c *Cpu) pop() byte {
	c.SP++
	return c.Read(stackBase | uint16(c.SP))
}

// pushWord pushes high byte first, so popWord reads low then high.
func (c *Cpu) pushWord(data uint16) {
	c.push(mask.Hi(data))
	c.push(mask.Lo(data))
}

func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}

// An AddressingMode tells the Cpu where to look for an instruction's
// operand. Most modes can index the full 64 kB range; the ZeroPage variants,
// and the pointers that IndirectX and IndirectY dereference, are confined to
// the first page, wrapping inside it.
type AddressingMode int

// https://www.nesdev.org/wiki/CPU_addressing_modes
// https://problemkaputt.de/everynes.htm#cpumemoryaddressing

const (
	Implied     AddressingMode = iota // no operand
	Accumulator                       // operates on A

	Immediate // the operand byte is at the PC itself
	ZeroPage  // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX only
	IndirectX // pre-indexed: pointer offset by X, then dereferenced
	IndirectY // post-indexed: dereferenced, then offset by Y
	Relative  // signed 8-bit PC offset; branches only

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect // JMP only
)

// operandAddress computes the effective operand address for mode, with pc
// pointing at the byte after the opcode. The page-crossed result feeds the
// cycle accounting of AbsoluteX/AbsoluteY/IndirectY reads.
//
// The pointer and its successor in the Indirect modes both stay inside the
// zero page; published test ROMs rely on that wrap.
//
// Implied and Accumulator have no address to resolve — asking for one is a
// bug in the opcode table, so it panics rather than returning an error.
func (c *Cpu) operandAddress(mode AddressingMode, pc uint16) (addr uint16, pageCrossed bool) {
	switch mode {

	case Immediate:
		return pc, false

	case ZeroPage:
		return uint16(c.Read(pc)), false

	case ZeroPageX:
		// the index is added before widening, so the result wraps
		// inside page 0
		return uint16(c.Read(pc) + c.X), false

	case ZeroPageY:
		return uint16(c.Read(pc) + c.Y), false

	case Absolute:
		return c.ReadWord(pc), false

	case AbsoluteX:
		base := c.ReadWord(pc)
		addr := base + uint16(c.X)
		return addr, !mask.SamePage(base, addr)

	case AbsoluteY:
		base := c.ReadWord(pc)
		addr := base + uint16(c.Y)
		return addr, !mask.SamePage(base, addr)

	case IndirectX:
		ptr := c.Read(pc) + c.X
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr + 1))
		return mask.Word(hi, lo), false

	case IndirectY:
		base := c.Read(pc)
		lo := c.Read(uint16(base))
		hi := c.Read(uint16(base + 1))
		deref := mask.Word(hi, lo)
		addr := deref + uint16(c.Y)
		return addr, !mask.SamePage(deref, addr)

	default:
		panic(fmt.Sprintf("cpu: addressing mode %d has no operand address", mode))
	}
}

// operand resolves the effective address at the current PC, discarding the
// page-cross flag. Stores and read-modify-write instructions use this: they
// always pay their worst-case cycle cost.
func (c *Cpu) operand(mode AddressingMode) uint16 {
	addr, _ := c.operandAddress(mode, c.PC)
	return addr
}

// fetchOperand reads the operand byte at the current PC, charging the extra
// cycle when the effective address crossed a page.
func (c *Cpu) fetchOperand(mode AddressingMode) byte {
	if mode == Accumulator {
		return c.A
	}
	addr, crossed := c.operandAddress(mode, c.PC)
	if crossed {
		c.extra++
	}
	return c.Read(addr)
}

// modify applies f to the accumulator or to the memory operand, writes the
// result back, and updates Zero/Negative from it. Shifts, rotates, INC and
// DEC all funnel through here.
func (c *Cpu) modify(mode AddressingMode, f func(byte) byte) {
	if mode == Accumulator {
		c.A = f(c.A)
		c.updateZeroNegative(c.A)
		return
	}
	addr := c.operand(mode)
	result := f(c.Read(addr))
	c.Write(addr, result)
	c.updateZeroNegative(result)
}

// branch consumes the signed offset byte and, if the condition held,
// redirects the PC. Taken branches cost an extra cycle, one more when the
// target sits on a different page than the post-offset PC.
func (c *Cpu) branch(condition bool) {
	offset := c.Read(c.PC)
	c.PC++
	if !condition {
		return
	}

	target := c.PC + uint16(int8(offset))
	c.extra++
	if !mask.SamePage(target, c.PC) {
		c.extra++
	}
	c.PC = target
}

// indirectTarget dereferences a JMP (addr) pointer, reproducing the 6502
// page-boundary bug: when the pointer's low byte is 0xff, the high byte of
// the target comes from the start of the same page, not the next one.
//
// http://www.6502.org/tutorials/6502opcodes.html#JMP
func (c *Cpu) indirectTarget(base uint16) uint16 {
	lo := c.Read(base)
	var hi byte
	if mask.Lo(base) == 0xff {
		hi = c.Read(base & 0xff00)
	} else {
		hi = c.Read(base + 1)
	}
	return mask.Word(hi, lo)
}

func (c *Cpu) updateZeroNegative(result byte) {
	c.Status.SetTo(Zero, result == 0)
	c.Status.SetTo(Negative, mask.IsSet(result, 7))
}

func (c *Cpu) setA(value byte) {
	c.A = value
	c.updateZeroNegative(value)
}

func (c *Cpu) setX(value byte) {
	c.X = value
	c.updateZeroNegative(value)
}

func (c *Cpu) setY(value byte) {
	c.Y = value
	c.updateZeroNegative(value)
}
