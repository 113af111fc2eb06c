package cpu

import "fmt"

// OperandKind tags where an Operand reads from or writes to.
type OperandKind uint8

const (
	// OperandReg8 is an 8-bit register.
	OperandReg8 OperandKind = iota
	// OperandReg16 is a 16-bit register. In a byte context it is a
	// pointer, (HL), in a word context it is the register value itself.
	OperandReg16
	// OperandImmediate8 is the byte following the opcode.
	OperandImmediate8
	// OperandImmediate16 is the little-endian word following the opcode.
	// It can only be resolved as a word.
	OperandImmediate16
	// OperandAbsolute is a pointer given by the word following the
	// opcode, (a16).
	OperandAbsolute
	// OperandHigh is a pointer into the high page given by the byte
	// following the opcode, (0xFF00+a8).
	OperandHigh
	// OperandHighC is a pointer into the high page given by register C,
	// (0xFF00+C).
	OperandHighC
)

// Operand describes where an instruction's data comes from or goes to.
// It holds no data itself and is resolved against the registers, memory
// and PC at execution time.
type Operand struct {
	Kind OperandKind
	// Reg8 is set for OperandReg8.
	Reg8 Register8
	// Reg16 is set for OperandReg16.
	Reg16 Register16
}

var (
	Immediate8  = Operand{Kind: OperandImmediate8}
	Immediate16 = Operand{Kind: OperandImmediate16}
	Absolute    = Operand{Kind: OperandAbsolute}
	High        = Operand{Kind: OperandHigh}
	HighC       = Operand{Kind: OperandHighC}
)

// Reg8 returns an operand referring to an 8-bit register.
func Reg8(r Register8) Operand {
	return Operand{Kind: OperandReg8, Reg8: r}
}

// Reg16 returns an operand referring to a 16-bit register.
func Reg16(r Register16) Operand {
	return Operand{Kind: OperandReg16, Reg16: r}
}

// IsPointer reports whether the operand names a memory location when
// used in a byte context.
func (o Operand) IsPointer() bool {
	switch o.Kind {
	case OperandReg16, OperandAbsolute, OperandHigh, OperandHighC:
		return true
	}
	return false
}

// String returns the operand as it appears in a byte context.
func (o Operand) String() string {
	switch o.Kind {
	case OperandReg8:
		return o.Reg8.String()
	case OperandReg16:
		return "(" + o.Reg16.String() + ")"
	case OperandImmediate8:
		return "d8"
	case OperandImmediate16:
		return "d16"
	case OperandAbsolute:
		return "(a16)"
	case OperandHigh:
		return "(a8)"
	case OperandHighC:
		return "(C)"
	}
	return fmt.Sprintf("Operand(%d)", o.Kind)
}

// wordString returns the operand as it appears in a word context.
func (o Operand) wordString() string {
	if o.Kind == OperandReg16 {
		return o.Reg16.String()
	}
	return o.String()
}
