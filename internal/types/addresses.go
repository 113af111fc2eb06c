package types

import "fmt"

// Address represents a location in the 16-bit address space of the CPU.
// It is kept distinct from raw register values, so that a register only
// becomes a memory pointer by an explicit conversion.
type Address uint16

const (
	// HighPage is the base address of the high page, used by the
	// LDH (a8) and LD (C) instructions.
	HighPage Address = 0xFF00
)

// Offset returns the address n bytes past a, wrapping around the
// top of the address space.
func (a Address) Offset(n uint16) Address {
	return a + Address(n)
}

// String returns the address formatted as 0xNNNN.
func (a Address) String() string {
	return fmt.Sprintf("0x%04X", uint16(a))
}
