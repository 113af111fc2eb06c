package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcpu/internal/types"
)

// RegisterID identifies either an 8-bit register or a 16-bit register.
// The set is closed: only Register8 and Register16 implement it.
type RegisterID interface {
	fmt.Stringer
	width() uint8
}

// Register8 identifies one of the 8-bit registers.
type Register8 uint8

const (
	A Register8 = iota
	F
	B
	C
	D
	E
	H
	L
)

var register8Names = [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (r Register8) String() string {
	if int(r) < len(register8Names) {
		return register8Names[r]
	}
	return fmt.Sprintf("Register8(%d)", uint8(r))
}

func (Register8) width() uint8 { return 8 }

// Register16 identifies one of the 16-bit registers. AF, BC, DE and HL are
// views over two 8-bit registers, SP and PC have their own storage.
type Register16 uint8

const (
	AF Register16 = iota
	BC
	DE
	HL
	SP
	PC
)

var register16Names = [...]string{"AF", "BC", "DE", "HL", "SP", "PC"}

func (r Register16) String() string {
	if int(r) < len(register16Names) {
		return register16Names[r]
	}
	return fmt.Sprintf("Register16(%d)", uint8(r))
}

func (Register16) width() uint8 { return 16 }

// Register represents a GB Register which is used to hold an 8-bit value.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The first named register of the pair is the high byte.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets both halves of the RegisterPair from the given value.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

// Registers represents the GB CPU registers.
//
//	A F   accumulator, flags (ZNHC----)
//	B C
//	D E
//	H L
//	SP    stack pointer
//	PC    program counter
type Registers struct {
	A Register
	F Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	SP uint16
	PC uint16
}

// pair returns a view over the two 8-bit registers backing id. ok is
// false for SP and PC.
func (r *Registers) pair(id Register16) (p RegisterPair, ok bool) {
	switch id {
	case AF:
		return RegisterPair{&r.A, &r.F}, true
	case BC:
		return RegisterPair{&r.B, &r.C}, true
	case DE:
		return RegisterPair{&r.D, &r.E}, true
	case HL:
		return RegisterPair{&r.H, &r.L}, true
	}
	return RegisterPair{}, false
}

// register8 returns a pointer to the storage of an 8-bit register.
func (r *Registers) register8(id Register8) *Register {
	switch id {
	case A:
		return &r.A
	case F:
		return &r.F
	case B:
		return &r.B
	case C:
		return &r.C
	case D:
		return &r.D
	case E:
		return &r.E
	case H:
		return &r.H
	case L:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register: %d", uint8(id)))
}

// Fetch8 returns the value of an 8-bit register.
func (r *Registers) Fetch8(id Register8) uint8 {
	return *r.register8(id)
}

// Write8 sets the value of an 8-bit register.
func (r *Registers) Write8(id Register8, value uint8) {
	*r.register8(id) = value
}

// Fetch16 returns the value of a 16-bit register, composing pairs from
// their two halves.
func (r *Registers) Fetch16(id Register16) uint16 {
	switch id {
	case SP:
		return r.SP
	case PC:
		return r.PC
	}
	p, ok := r.pair(id)
	if !ok {
		panic(fmt.Sprintf("invalid register pair: %d", uint8(id)))
	}
	return p.Uint16()
}

// Write16 sets the value of a 16-bit register. For pairs both halves are
// written.
func (r *Registers) Write16(id Register16, value uint16) {
	switch id {
	case SP:
		r.SP = value
		return
	case PC:
		r.PC = value
		return
	}
	p, ok := r.pair(id)
	if !ok {
		panic(fmt.Sprintf("invalid register pair: %d", uint8(id)))
	}
	p.SetUint16(value)
}

// Increment adds one to the register, wrapping at its width.
func (r *Registers) Increment(id RegisterID) {
	switch id := id.(type) {
	case Register8:
		r.Write8(id, r.Fetch8(id)+1)
	case Register16:
		r.Write16(id, r.Fetch16(id)+1)
	}
}

// Decrement subtracts one from the register, wrapping at its width.
func (r *Registers) Decrement(id RegisterID) {
	switch id := id.(type) {
	case Register8:
		r.Write8(id, r.Fetch8(id)-1)
	case Register16:
		r.Write16(id, r.Fetch16(id)-1)
	}
}

// AsAddress returns the value of a 16-bit register as a memory address.
func (r *Registers) AsAddress(id Register16) types.Address {
	return types.Address(r.Fetch16(id))
}
