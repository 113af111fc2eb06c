package cpu

import (
	"github.com/thelolagemann/gbcpu/internal/ram"
	"github.com/thelolagemann/gbcpu/internal/types"
	"github.com/thelolagemann/gbcpu/pkg/log"
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by the HALT instruction, the CPU no longer
	// executes instructions.
	ModeHalt
)

// CPU represents the Gameboy CPU. It is responsible for fetching, decoding
// and executing instructions from its memory.
type CPU struct {
	// Registers contains the 8-bit registers, their 16-bit pair views
	// as well as SP and PC.
	Registers

	// Debug enables tracing of every executed instruction.
	Debug bool

	mem *ram.RAM
	log log.Logger

	mode   mode
	cycles uint64
}

// New creates a new CPU with its own zero-filled 64 KiB memory.
func New(opts ...Opt) *CPU {
	return NewCPU(ram.NewRAM(ram.Size), opts...)
}

// NewCPU creates a new CPU instance with the given memory. The memory is
// owned by the CPU from here on.
func NewCPU(mem *ram.RAM, opts ...Opt) *CPU {
	c := &CPU{
		mem: mem,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ types.Resettable = (*CPU)(nil)

// Reset zeroes the registers and returns the CPU to normal mode. Memory
// is left untouched.
func (c *CPU) Reset() {
	c.Registers = Registers{}
	c.mode = ModeNormal
	c.cycles = 0
}

// Halted reports whether the CPU has executed a HALT instruction.
func (c *CPU) Halted() bool {
	return c.mode == ModeHalt
}

// Cycles returns the number of machine cycles executed since the CPU was
// created or last reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// readInstruction reads the opcode at PC and advances PC.
func (c *CPU) readInstruction() (uint8, error) {
	return c.readOperand()
}

// Step fetches, decodes and executes a single instruction, returning the
// number of machine cycles it took. A halted CPU does nothing.
func (c *CPU) Step() (uint8, error) {
	if c.mode == ModeHalt {
		return 0, nil
	}

	pc := c.AsAddress(PC)
	opcode, err := c.readInstruction()
	if err != nil {
		return 0, &StepError{PC: pc, Opcode: opcode, Err: err}
	}

	instr, err := Decode(opcode)
	if err != nil {
		return 0, &StepError{PC: pc, Opcode: opcode, Err: err}
	}

	if err := c.execute(instr); err != nil {
		return 0, &StepError{PC: pc, Opcode: opcode, Err: err}
	}

	if c.Debug {
		c.log.Debugf("%s\t%-16s (%d cycles) A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X",
			pc, instr, instr.Cycles, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
	}

	c.cycles += uint64(instr.Cycles)
	return instr.Cycles, nil
}

// Run steps the CPU until it halts or an instruction fails.
func (c *CPU) Run() error {
	for !c.Halted() {
		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunFor steps the CPU at most n times, stopping early if it halts or an
// instruction fails. It returns the number of instructions executed.
func (c *CPU) RunFor(n int) (int, error) {
	steps := 0
	for ; steps < n && !c.Halted(); steps++ {
		if _, err := c.Step(); err != nil {
			return steps, err
		}
	}
	return steps, nil
}

// Read returns the byte at the given address.
func (c *CPU) Read(address types.Address) (uint8, error) {
	return c.mem.Read(address)
}

// ReadBytes returns a copy of length bytes starting at the given address.
func (c *CPU) ReadBytes(address types.Address, length int) ([]byte, error) {
	return c.mem.ReadBytes(address, length)
}

// Write writes a byte at the given address.
func (c *CPU) Write(address types.Address, value uint8) error {
	return c.mem.Write(address, value)
}

// WriteBytes writes data starting at the given address, used to seed a
// program before running.
func (c *CPU) WriteBytes(address types.Address, data []byte) error {
	return c.mem.WriteBytes(address, data)
}

// Checksum returns a digest of the whole memory.
func (c *CPU) Checksum() uint64 {
	return c.mem.Checksum()
}
