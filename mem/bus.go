// Package mem defines the memory surface the Cpu executes against.
//
// The Cpu owns no memory of its own; it borrows a Memory capability for the
// duration of a run. In a full console the capability is a composite bus
// (RAM mirrors, PPU/APU registers, cartridge mapper); tests inject the flat
// Bus defined here. The Cpu makes no assumptions about which ranges are RAM,
// ROM or I/O — the implementation resolves all of that.
package mem

import "fmt"

// Memory is a byte-granular, 16-bit-addressed read/write capability.
//
// All 2^16 addresses are legal; wrapping at 0xffff is specified behavior,
// not an error.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// ReadWord reads a little-endian 16-bit word: the byte at addr is the low
// byte, the byte at addr+1 the high byte.
func ReadWord(m Memory, addr uint16) uint16 {
	lo := m.Read(addr)
	hi := m.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit word, low byte first.
func WriteWord(m Memory, addr uint16, data uint16) {
	m.Write(addr, byte(data))
	m.Write(addr+1, byte(data>>8))
}

// A Bus is a flat 64 kB memory with an edge-triggered NMI line. It stands in
// for the full console interconnect during development and testing.
//
// The array is exactly 0x10000 bytes so that the top of the address space
// (0xffff) is reachable.
type Bus struct {
	Ram [0x10000]byte

	nmi bool
}

func (b *Bus) Read(addr uint16) byte { return b.Ram[addr] }

func (b *Bus) Write(addr uint16, data byte) { b.Ram[addr] = data }

// SignalNMI asserts the non-maskable interrupt line. The PPU raises this at
// the start of vertical blanking; the Cpu services it before its next opcode
// fetch, regardless of the interrupt-disable flag.
//
// Between two consecutive instruction dispatches an external observer may
// assert the line at most once.
func (b *Bus) SignalNMI() { b.nmi = true }

// TakeNMI reports whether the NMI line is asserted, clearing it. The latch
// is edge triggered: one assert is serviced exactly once.
func (b *Bus) TakeNMI() bool {
	pending := b.nmi
	b.nmi = false
	return pending
}

// A BusError reports a failed memory access. The flat Bus never fails —
// every address is legal — but fault-injecting test buses may panic with
// one.
type BusError struct {
	Addr uint16
	Op   string // "read" or "write"
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bus: %s fault at %04x", e.Op, e.Addr)
}
