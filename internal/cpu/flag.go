package cpu

import "github.com/thelolagemann/gbcpu/internal/types"

type Flag = uint8

const (
	FlagZero      Flag = types.Bit7
	FlagSubtract  Flag = types.Bit6
	FlagHalfCarry Flag = types.Bit5
	FlagCarry     Flag = types.Bit4

	// flagMask covers the bits of F that hold flags, the low nibble
	// always reads as zero.
	flagMask Flag = types.HighNibble
)

// setFlags sets the flags in one go, clearing the unused low nibble.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= FlagZero
	}
	if subtract {
		f |= FlagSubtract
	}
	if halfCarry {
		f |= FlagHalfCarry
	}
	if carry {
		f |= FlagCarry
	}
	c.F = f
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag == flag
}

// Flags returns the flag register with the unused low nibble masked off.
func (c *CPU) Flags() uint8 {
	return c.F & flagMask
}
