package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gomos/mem"
)

func traceAll(c *Cpu) []string {
	var result []string
	c.RunWithCallback(func(c *Cpu) bool {
		result = append(result, Trace(c))
		return true
	})
	return result
}

func TestTraceFormat(t *testing.T) {
	bus := &mem.Bus{}
	bus.Write(100, 0xa2)
	bus.Write(101, 0x01)
	bus.Write(102, 0xca)
	bus.Write(103, 0x88)
	bus.Write(104, 0x00)

	c := New(bus)
	c.PC = 0x64
	c.A = 1
	c.X = 2
	c.Y = 3
	c.SP = 0xfd
	c.Status = StatusFromBits(0b0010_0100)

	result := traceAll(c)

	assert.Equal(t,
		"0064  A2 01     LDX #$01                        A:01 X:02 Y:03 P:24 SP:FD",
		result[0])
	assert.Equal(t,
		"0066  CA        DEX                             A:01 X:01 Y:03 P:24 SP:FD",
		result[1])
	assert.Equal(t,
		"0067  88        DEY                             A:01 X:00 Y:03 P:26 SP:FD",
		result[2])
}

func TestTraceFormatMemAccess(t *testing.T) {
	bus := &mem.Bus{}
	// ORA ($33),Y
	bus.Write(100, 0x11)
	bus.Write(101, 0x33)

	// pointer to 0x0400
	bus.Write(0x33, 0x00)
	bus.Write(0x34, 0x04)

	bus.Write(0x400, 0xaa)

	c := New(bus)
	c.PC = 0x64
	c.SP = 0xfd
	c.Status = StatusFromBits(0b0010_0100)

	result := traceAll(c)

	assert.Equal(t,
		"0064  11 33     ORA ($33),Y = 0400 @ 0400 = AA  A:00 X:00 Y:00 P:24 SP:FD",
		result[0])
}

func TestTraceJumps(t *testing.T) {
	bus := &mem.Bus{}
	c := New(bus)
	c.SP = 0xfd
	c.Status = StatusFromBits(0b0010_0100)

	c.LoadAt([]byte{0x4c, 0x34, 0x12}, 0x8000)
	c.PC = 0x8000
	assert.Equal(t,
		"8000  4C 34 12  JMP $1234                       A:00 X:00 Y:00 P:24 SP:FD",
		Trace(c))

	// indirect jump through a pointer ending in 0xff: the bug shows in the
	// resolved target
	c.LoadAt([]byte{0x6c, 0xff, 0x30}, 0x8000)
	bus.Write(0x30ff, 0x40)
	bus.Write(0x3000, 0x80)
	assert.Equal(t,
		"8000  6C FF 30  JMP ($30FF) = 8040              A:00 X:00 Y:00 P:24 SP:FD",
		Trace(c))
}

func TestTraceAccumulatorAndBranch(t *testing.T) {
	bus := &mem.Bus{}
	c := New(bus)
	c.SP = 0xfd
	c.Status = StatusFromBits(0b0010_0100)

	c.LoadAt([]byte{0x0a}, 0x8000)
	c.PC = 0x8000
	assert.Equal(t,
		"8000  0A        ASL A                           A:00 X:00 Y:00 P:24 SP:FD",
		Trace(c))

	// BNE -2: target is relative to the PC past the offset byte
	c.LoadAt([]byte{0xd0, 0xfe}, 0x8000)
	assert.Equal(t,
		"8000  D0 FE     BNE $8000                       A:00 X:00 Y:00 P:24 SP:FD",
		Trace(c))
}
