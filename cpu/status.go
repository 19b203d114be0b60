package cpu

// Status is the processor status register (the P register): seven flags
// packed into a byte. A packed byte beats a struct of booleans here because
// PHP, PLP, BRK and RTI round-trip the register through the stack in its
// wire format, and flag updates sit on the hot path.
//
// 7654 3210
// NV1B DIZC
type Status byte

const (
	Carry            Status = 1 << iota // bit 0; unsigned overflow, or "no borrow" on SBC/compare
	Zero                                // bit 1; last result was 0
	InterruptDisable                    // bit 2; masks IRQ, never NMI
	Decimal                             // bit 3; inert on the NES variant (no BCD)
	Break                               // bit 4; set in the pushed copy of P during BRK/PHP
	Unused                              // bit 5; always 1 when pushed
	Overflow                            // bit 6; signed overflow, or bit 6 of the operand via BIT
	Negative                            // bit 7; bit 7 of the last result
)

// StatusFromBits reconstructs a Status from its wire byte. All eight bits
// are taken as-is; callers that pop P off the stack normalize Break and
// Unused themselves.
func StatusFromBits(b byte) Status { return Status(b) }

// Bits returns the wire byte.
func (s Status) Bits() byte { return byte(s) }

// Has reports whether every flag in f is set.
func (s Status) Has(f Status) bool { return s&f == f }

// Insert sets the flags in f.
func (s *Status) Insert(f Status) { *s |= f }

// Remove clears the flags in f.
func (s *Status) Remove(f Status) { *s &^= f }

// SetTo sets or clears the flags in f according to v.
func (s *Status) SetTo(f Status, v bool) {
	if v {
		s.Insert(f)
	} else {
		s.Remove(f)
	}
}
