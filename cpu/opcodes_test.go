package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableCoversLegalSet(t *testing.T) {
	var legal int
	for _, op := range Opcodes {
		if op != nil {
			legal++
		}
	}
	assert.Equal(t, legal, 151)
}

func TestTableEntriesAreWellFormed(t *testing.T) {
	for code, op := range Opcodes {
		if op == nil {
			continue
		}
		assert.Len(t, op.Name, 3, "opcode %02x", code)
		assert.NotNil(t, op.Instruction, "opcode %02x", code)
		assert.GreaterOrEqual(t, op.Cycles, byte(2), "opcode %02x", code)
		assert.LessOrEqual(t, op.Cycles, byte(7), "opcode %02x", code)

		var wantLength byte
		switch op.Mode {
		case Implied, Accumulator:
			wantLength = 1
		case Immediate, ZeroPage, ZeroPageX, ZeroPageY,
			IndirectX, IndirectY, Relative:
			wantLength = 2
		case Absolute, AbsoluteX, AbsoluteY, Indirect:
			wantLength = 3
		}
		assert.Equal(t, op.Length, wantLength, "opcode %02x (%s)", code, op.Name)
	}
}

func TestTableSpotChecks(t *testing.T) {
	assert.Equal(t, Opcodes[0xa9].Name, "LDA")
	assert.Equal(t, Opcodes[0xa9].Mode, Immediate)
	assert.Equal(t, Opcodes[0x6c].Mode, Indirect)
	assert.Equal(t, Opcodes[0x6c].Cycles, byte(5))
	assert.Equal(t, Opcodes[0x91].Cycles, byte(6)) // STA (zp),Y never takes the surcharge
	assert.Nil(t, Opcodes[0xff])
	assert.Nil(t, Opcodes[0x02])
}
