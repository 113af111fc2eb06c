package cpu

import (
	"github.com/thelolagemann/gbcpu/internal/types"
	"github.com/thelolagemann/gbcpu/pkg/utils"
)

// readOperand reads the byte at PC and advances PC past it.
func (c *CPU) readOperand() (uint8, error) {
	value, err := c.mem.Read(c.AsAddress(PC))
	if err != nil {
		return 0, err
	}
	c.Increment(PC)
	return value, nil
}

// readOperand16 reads the little-endian word at PC and advances PC past it.
func (c *CPU) readOperand16() (uint16, error) {
	low, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	high, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	return utils.BytesToUint16(high, low), nil
}

// address resolves a pointer operand to the address it refers to,
// consuming any immediate bytes.
func (c *CPU) address(op Operand) (types.Address, error) {
	switch op.Kind {
	case OperandReg16:
		return c.AsAddress(op.Reg16), nil
	case OperandAbsolute:
		addr, err := c.readOperand16()
		return types.Address(addr), err
	case OperandHigh:
		offset, err := c.readOperand()
		return types.HighPage.Offset(uint16(offset)), err
	case OperandHighC:
		return types.HighPage.Offset(uint16(c.C)), nil
	}
	return 0, &FetchError{Operand: op, Width: 16}
}

// fetchByte resolves op to an 8-bit value.
func (c *CPU) fetchByte(op Operand) (uint8, error) {
	switch op.Kind {
	case OperandReg8:
		return c.Fetch8(op.Reg8), nil
	case OperandImmediate8:
		return c.readOperand()
	case OperandReg16, OperandAbsolute, OperandHigh, OperandHighC:
		addr, err := c.address(op)
		if err != nil {
			return 0, err
		}
		return c.mem.Read(addr)
	}
	return 0, &FetchError{Operand: op, Width: 8}
}

// fetchWord resolves op to a 16-bit value.
func (c *CPU) fetchWord(op Operand) (uint16, error) {
	switch op.Kind {
	case OperandReg16:
		return c.Fetch16(op.Reg16), nil
	case OperandImmediate16:
		return c.readOperand16()
	}
	return 0, &FetchError{Operand: op, Width: 16}
}

// execute applies a decoded instruction to the registers and memory.
func (c *CPU) execute(instr Instruction) error {
	switch instr.Kind {
	case KindNoOp:
	case KindHalt:
		c.mode = ModeHalt
	case KindLoad:
		return c.load(instr)
	case KindLoad16:
		return c.load16(instr)
	case KindIncrement, KindDecrement:
		return c.incDec(instr)
	default:
		return &UnsupportedInstructionError{Instruction: instr}
	}
	return nil
}

// load performs an 8-bit load.
//
//	LD r, r'     LD r, (rr)    LD r, d8
//	LD (rr), r   LD (rr), d8   LD (a16), A ...
func (c *CPU) load(instr Instruction) error {
	if instr.Dest.Kind != OperandReg8 && !instr.Dest.IsPointer() {
		return &UnsupportedInstructionError{Instruction: instr}
	}
	pointer, err := followUpPointer(instr)
	if err != nil {
		return err
	}

	value, err := c.fetchByte(instr.Src)
	if err != nil {
		return err
	}

	if instr.Dest.Kind == OperandReg8 {
		c.Write8(instr.Dest.Reg8, value)
	} else {
		addr, err := c.address(instr.Dest)
		if err != nil {
			return err
		}
		if err := c.mem.Write(addr, value); err != nil {
			return err
		}
	}

	switch instr.FollowUp {
	case FollowUpIncrement16:
		c.Increment(pointer)
	case FollowUpDecrement16:
		c.Decrement(pointer)
	}
	return nil
}

// followUpPointer returns the register a load's followup applies to: the
// side of the load that used a register pair as its address.
func followUpPointer(instr Instruction) (Register16, error) {
	if instr.FollowUp == FollowUpNone {
		return 0, nil
	}
	switch {
	case instr.Src.Kind == OperandReg16:
		return instr.Src.Reg16, nil
	case instr.Dest.Kind == OperandReg16:
		return instr.Dest.Reg16, nil
	}
	return 0, &UnsupportedInstructionError{Instruction: instr}
}

// load16 performs a 16-bit load.
//
//	LD rr, d16   LD SP, HL   LD (a16), SP
func (c *CPU) load16(instr Instruction) error {
	switch instr.Dest.Kind {
	case OperandReg16:
		value, err := c.fetchWord(instr.Src)
		if err != nil {
			return err
		}
		c.Write16(instr.Dest.Reg16, value)
	case OperandAbsolute:
		value, err := c.fetchWord(instr.Src)
		if err != nil {
			return err
		}
		addr, err := c.address(instr.Dest)
		if err != nil {
			return err
		}
		high, low := utils.Uint16ToBytes(value)
		if err := c.mem.Write(addr, low); err != nil {
			return err
		}
		return c.mem.Write(addr.Offset(1), high)
	default:
		return &UnsupportedInstructionError{Instruction: instr}
	}
	return nil
}

// incDec performs INC/DEC on a register. 16-bit registers leave the flags
// alone, 8-bit registers update Z, N and H and keep C.
func (c *CPU) incDec(instr Instruction) error {
	op := instr.Dest
	switch op.Kind {
	case OperandReg16:
		if instr.Kind == KindIncrement {
			c.Increment(op.Reg16)
		} else {
			c.Decrement(op.Reg16)
		}
	case OperandReg8:
		old := c.Fetch8(op.Reg8)
		if instr.Kind == KindIncrement {
			c.Increment(op.Reg8)
			c.setFlags(old+1 == 0, false, old&0xF == 0xF, c.isFlagSet(FlagCarry))
		} else {
			c.Decrement(op.Reg8)
			c.setFlags(old-1 == 0, true, old&0xF == 0x0, c.isFlagSet(FlagCarry))
		}
	default:
		return &UnsupportedInstructionError{Instruction: instr}
	}
	return nil
}
