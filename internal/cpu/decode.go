package cpu

// registerTable is the 8-register table r[] used by the load group. Index 6
// is (HL): the HL pair used as a pointer.
var registerTable = [8]Operand{
	Reg8(B), Reg8(C), Reg8(D), Reg8(E), Reg8(H), Reg8(L), Reg16(HL), Reg8(A),
}

// registerPairTable is the rp[] table of 16-bit register pairs.
var registerPairTable = [4]Register16{BC, DE, HL, SP}

// indirectTable maps p to the pointer and followup used by the
// LD (rr), A / LD A, (rr) group.
var indirectTable = [4]struct {
	pair     Register16
	followUp FollowUp
}{
	{BC, FollowUpNone},
	{DE, FollowUpNone},
	{HL, FollowUpIncrement16},
	{HL, FollowUpDecrement16},
}

var aluTable = [8]ALUOp{ALUAdd, ALUAdc, ALUSub, ALUSbc, ALUAnd, ALUXor, ALUOr, ALUCp}

var accumulatorTable = [8]ALUOp{ALURlca, ALURrca, ALURla, ALURra, ALUDaa, ALUCpl, ALUScf, ALUCcf}

func register(index uint8) (Operand, error) {
	if int(index) >= len(registerTable) {
		return Operand{}, &TableIndexError{Table: "r", Index: index}
	}
	return registerTable[index], nil
}

func registerPair(index uint8) (Register16, error) {
	if int(index) >= len(registerPairTable) {
		return 0, &TableIndexError{Table: "rp", Index: index}
	}
	return registerPairTable[index], nil
}

// memoryCycles returns the extra machine cycle taken when an operand of
// the register table touches memory.
func memoryCycles(op Operand) uint8 {
	if op.Kind == OperandReg16 {
		return 1
	}
	return 0
}

// Decode translates an opcode into an Instruction. It does not touch any
// CPU state, immediates are read by the executor.
//
//	00 000 000
//	^^ ^^^ ^^^
//	x  y   z    p = y>>1, q = y&1
func Decode(opcode uint8) (Instruction, error) {
	x, y, z := opcode>>6&0x3, opcode>>3&0x7, opcode&0x7
	p, q := y>>1, y&1

	unmatched := func() (Instruction, error) {
		return Instruction{}, &DecodeError{Opcode: opcode, X: x, Y: y, Z: z, P: p, Q: q}
	}

	switch x {
	case 0: // 0x00 - 0x3F
		switch z {
		case 0:
			switch y {
			case 0: // NOP
				return NoOp(), nil
			case 1: // LD (a16), SP
				return Load16(Reg16(SP), Absolute, 5), nil
			}
		case 1:
			rp, err := registerPair(p)
			if err != nil {
				return Instruction{}, err
			}
			if q == 0 { // LD rr, d16
				return Load16(Immediate16, Reg16(rp), 3), nil
			}
			// ADD HL, rr
			return Arithmetic(ALUAddHL, Reg16(rp), 2), nil
		case 2:
			entry := indirectTable[p]
			if q == 0 { // LD (rr), A
				return Load(Reg8(A), Reg16(entry.pair), entry.followUp, 2), nil
			}
			// LD A, (rr)
			return Load(Reg16(entry.pair), Reg8(A), entry.followUp, 2), nil
		case 3:
			rp, err := registerPair(p)
			if err != nil {
				return Instruction{}, err
			}
			if q == 0 { // INC rr
				return Increment(Reg16(rp), 2), nil
			}
			// DEC rr
			return Decrement(Reg16(rp), 2), nil
		case 4, 5:
			r, err := register(y)
			if err != nil {
				return Instruction{}, err
			}
			if r.Kind == OperandReg16 { // INC/DEC (HL)
				if z == 4 {
					return Arithmetic(ALUIncMemory, r, 3), nil
				}
				return Arithmetic(ALUDecMemory, r, 3), nil
			}
			if z == 4 { // INC r
				return Increment(r, 1), nil
			}
			// DEC r
			return Decrement(r, 1), nil
		case 6: // LD r, d8
			r, err := register(y)
			if err != nil {
				return Instruction{}, err
			}
			return Load(Immediate8, r, FollowUpNone, 2+memoryCycles(r)), nil
		case 7: // RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF
			return Arithmetic(accumulatorTable[y], Reg8(A), 1), nil
		}
	case 1: // 0x40 - 0x7F
		// HALT occupies the slot of LD (HL), (HL)
		if y == 6 && z == 6 {
			return Halt(), nil
		}
		dest, err := register(y)
		if err != nil {
			return Instruction{}, err
		}
		src, err := register(z)
		if err != nil {
			return Instruction{}, err
		}
		if y == z { // LD r, r
			return NoOp(), nil
		}
		return Load(src, dest, FollowUpNone, 1+memoryCycles(src)+memoryCycles(dest)), nil
	case 2: // 0x80 - 0xBF (ALU)
		src, err := register(z)
		if err != nil {
			return Instruction{}, err
		}
		return Arithmetic(aluTable[y], src, 1+memoryCycles(src)), nil
	case 3: // 0xC0 - 0xFF
		if z == 6 { // ALU d8
			return Arithmetic(aluTable[y], Immediate8, 2), nil
		}
		switch opcode {
		case 0xE0: // LDH (a8), A
			return Load(Reg8(A), High, FollowUpNone, 3), nil
		case 0xE2: // LD (C), A
			return Load(Reg8(A), HighC, FollowUpNone, 2), nil
		case 0xE8: // ADD SP, r8
			return Arithmetic(ALUAddSP, Immediate8, 4), nil
		case 0xEA: // LD (a16), A
			return Load(Reg8(A), Absolute, FollowUpNone, 4), nil
		case 0xF0: // LDH A, (a8)
			return Load(High, Reg8(A), FollowUpNone, 3), nil
		case 0xF2: // LD A, (C)
			return Load(HighC, Reg8(A), FollowUpNone, 2), nil
		case 0xF8: // LD HL, SP+r8
			return Arithmetic(ALULoadHLSP, Immediate8, 3), nil
		case 0xF9: // LD SP, HL
			return Load16(Reg16(HL), Reg16(SP), 2), nil
		case 0xFA: // LD A, (a16)
			return Load(Absolute, Reg8(A), FollowUpNone, 4), nil
		}
	}

	return unmatched()
}
