package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbcpu/internal/types"
)

var (
	// ErrDecode is matched by every decode failure.
	ErrDecode = errors.New("decode")
	// ErrFetch is matched when an operand is resolved in a context its
	// kind does not support.
	ErrFetch = errors.New("fetch")
	// ErrUnsupportedInstruction is matched when a decoded instruction
	// cannot be executed.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
)

// DecodeError is returned when an opcode does not match any known bit
// pattern.
type DecodeError struct {
	Opcode        uint8
	X, Y, Z, P, Q uint8
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unmatched opcode 0x%02X (x=%d y=%d z=%d p=%d q=%d)", e.Opcode, e.X, e.Y, e.Z, e.P, e.Q)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// TableIndexError is returned when an index derived from an opcode's bit
// fields falls outside a lookup table.
type TableIndexError struct {
	Table string
	Index uint8
}

func (e *TableIndexError) Error() string {
	return fmt.Sprintf("invalid %s table index %d", e.Table, e.Index)
}

func (e *TableIndexError) Is(target error) bool {
	return target == ErrDecode
}

// FetchError is returned when an operand cannot be resolved to a value of
// the requested width.
type FetchError struct {
	Operand Operand
	Width   uint8
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch %d-bit value from operand %s", e.Width, e.Operand)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// UnsupportedInstructionError is returned for instructions the executor
// recognises but does not implement.
type UnsupportedInstructionError struct {
	Instruction Instruction
}

func (e *UnsupportedInstructionError) Error() string {
	return fmt.Sprintf("unsupported instruction %s", e.Instruction)
}

func (e *UnsupportedInstructionError) Is(target error) bool {
	return target == ErrUnsupportedInstruction
}

// StepError wraps any failure surfaced by Step with the location of the
// failing instruction.
type StepError struct {
	PC     types.Address
	Opcode uint8
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step at %s (opcode 0x%02X): %v", e.PC, e.Opcode, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
