package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert.Equal(t, Word(0x80, 0x40), uint16(0x8040))
	assert.Equal(t, Word(0x00, 0xff), uint16(0x00ff))
	assert.Equal(t, Word(0xff, 0x00), uint16(0xff00))
	assert.Equal(t, Word(0x00, 0x00), uint16(0x0000))
	assert.Equal(t, Word(0xff, 0xff), uint16(0xffff))

	assert.Equal(t, Hi(0x8040), byte(0x80))
	assert.Equal(t, Lo(0x8040), byte(0x40))
	assert.Equal(t, Word(Hi(0xbeef), Lo(0xbeef)), uint16(0xbeef))
}

func TestSamePage(t *testing.T) {
	assert.True(t, SamePage(0x0400, 0x04ff))
	assert.True(t, SamePage(0x0000, 0x00ff))
	assert.False(t, SamePage(0x04ff, 0x0500))
	assert.False(t, SamePage(0xffff, 0x0000))
}

func TestBits(t *testing.T) {
	assert.True(t, IsSet(0b1000_0000, 7))
	assert.False(t, IsSet(0b1000_0000, 6))
	assert.True(t, IsSet(0b0000_0001, 0))
	assert.False(t, IsSet(0b0000_0000, 0))

	assert.Equal(t, Set(0b0000_0000, 7), byte(0b1000_0000))
	assert.Equal(t, Set(0b0000_0001, 0), byte(0b0000_0001))
	assert.Equal(t, Clear(0b1111_1111, 3), byte(0b1111_0111))
	assert.Equal(t, Clear(0b0000_0000, 3), byte(0b0000_0000))

	assert.Equal(t, Clear(Set(0b0010_0100, 5), 5), byte(0b0000_0100))
}

func BenchmarkWord(b *testing.B) {
	for range b.N {
		Word(0x80, 0x40)
	}
}

func BenchmarkIsSet(b *testing.B) {
	for range b.N {
		IsSet(0b1000_1111, 4)
	}
}
