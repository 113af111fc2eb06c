package cpu

import "fmt"

// Kind is the operation performed by an Instruction.
type Kind uint8

const (
	KindNoOp Kind = iota
	KindHalt
	// KindLoad moves a byte from Src to Dest.
	KindLoad
	// KindLoad16 moves a word from Src to Dest.
	KindLoad16
	KindIncrement
	KindDecrement
	// KindArithmetic is recognised by the decoder but not executable.
	KindArithmetic
)

// FollowUp is a side effect applied to the address register of a load
// once the load has completed, as in LD A, (HL+).
type FollowUp uint8

const (
	FollowUpNone FollowUp = iota
	FollowUpIncrement16
	FollowUpDecrement16
)

// ALUOp tags a reserved arithmetic instruction.
type ALUOp uint8

const (
	ALUAdd ALUOp = iota
	ALUAdc
	ALUSub
	ALUSbc
	ALUAnd
	ALUXor
	ALUOr
	ALUCp
	ALUAddHL
	ALUAddSP
	ALULoadHLSP
	ALUIncMemory
	ALUDecMemory
	ALURlca
	ALURrca
	ALURla
	ALURra
	ALUDaa
	ALUCpl
	ALUScf
	ALUCcf
)

var aluNames = [...]string{
	"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP",
	"ADD HL,", "ADD SP,", "LD HL, SP+", "INC", "DEC",
	"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF",
}

func (a ALUOp) String() string {
	if int(a) < len(aluNames) {
		return aluNames[a]
	}
	return fmt.Sprintf("ALUOp(%d)", uint8(a))
}

// Instruction is a decoded opcode. Instructions are immutable values,
// produced by Decode and consumed once by the executor.
type Instruction struct {
	Kind Kind
	Src  Operand
	// Dest is the target of loads, increments and decrements.
	Dest     Operand
	FollowUp FollowUp
	// ALU is set for KindArithmetic.
	ALU ALUOp
	// Cycles is the number of machine cycles the instruction takes.
	Cycles uint8
}

// NoOp returns a NOP instruction.
func NoOp() Instruction {
	return Instruction{Kind: KindNoOp, Cycles: 1}
}

// Halt returns a HALT instruction.
func Halt() Instruction {
	return Instruction{Kind: KindHalt, Cycles: 1}
}

// Load returns an 8-bit load from src into dest.
func Load(src, dest Operand, followUp FollowUp, cycles uint8) Instruction {
	return Instruction{Kind: KindLoad, Src: src, Dest: dest, FollowUp: followUp, Cycles: cycles}
}

// Load16 returns a 16-bit load from src into dest.
func Load16(src, dest Operand, cycles uint8) Instruction {
	return Instruction{Kind: KindLoad16, Src: src, Dest: dest, Cycles: cycles}
}

// Increment returns an increment of the given register operand.
func Increment(op Operand, cycles uint8) Instruction {
	return Instruction{Kind: KindIncrement, Dest: op, Cycles: cycles}
}

// Decrement returns a decrement of the given register operand.
func Decrement(op Operand, cycles uint8) Instruction {
	return Instruction{Kind: KindDecrement, Dest: op, Cycles: cycles}
}

// Arithmetic returns a reserved arithmetic instruction.
func Arithmetic(op ALUOp, src Operand, cycles uint8) Instruction {
	return Instruction{Kind: KindArithmetic, ALU: op, Src: src, Cycles: cycles}
}

// String returns the assembly mnemonic of the instruction.
func (i Instruction) String() string {
	switch i.Kind {
	case KindNoOp:
		return "NOP"
	case KindHalt:
		return "HALT"
	case KindLoad:
		src, dest := i.Src.String(), i.Dest.String()
		if i.FollowUp != FollowUpNone {
			// the followup always applies to the pointer side
			suffix := "+)"
			if i.FollowUp == FollowUpDecrement16 {
				suffix = "-)"
			}
			if i.Src.Kind == OperandReg16 {
				src = src[:len(src)-1] + suffix
			} else {
				dest = dest[:len(dest)-1] + suffix
			}
		}
		return "LD " + dest + ", " + src
	case KindLoad16:
		return "LD " + i.Dest.wordString() + ", " + i.Src.wordString()
	case KindIncrement:
		return "INC " + i.Dest.wordString()
	case KindDecrement:
		return "DEC " + i.Dest.wordString()
	case KindArithmetic:
		switch i.ALU {
		case ALURlca, ALURrca, ALURla, ALURra, ALUDaa, ALUCpl, ALUScf, ALUCcf:
			return i.ALU.String()
		case ALUAddHL:
			return i.ALU.String() + " " + i.Src.wordString()
		case ALUAddSP:
			return i.ALU.String() + " r8"
		case ALULoadHLSP:
			return i.ALU.String() + "r8"
		}
		return i.ALU.String() + " " + i.Src.String()
	}
	return fmt.Sprintf("Instruction(%d)", i.Kind)
}
