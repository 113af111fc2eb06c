package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcpu/internal/ram"
	"github.com/thelolagemann/gbcpu/internal/types"
	"github.com/thelolagemann/gbcpu/pkg/log"
)

func TestInstruction_Timing(t *testing.T) {
	timings := []uint8{
		1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
		0, 3, 2, 2, 1, 1, 2, 1, 0, 2, 2, 2, 1, 1, 2, 1,
		0, 3, 2, 2, 1, 1, 2, 1, 0, 2, 2, 2, 1, 1, 2, 1,
		0, 3, 2, 2, 3, 3, 3, 1, 0, 2, 2, 2, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
		0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 2, 0,
		0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 2, 0,
		3, 0, 2, 0, 0, 0, 2, 0, 4, 0, 4, 0, 0, 0, 2, 0,
		3, 0, 2, 0, 0, 0, 2, 0, 3, 2, 4, 0, 0, 0, 2, 0,
	}
	for i, timing := range timings {
		instr, err := Decode(uint8(i))
		if timing == 0 {
			if err == nil {
				t.Errorf("0x%02X: expected decode failure, got %s", i, instr)
			}
			continue
		}
		if err != nil {
			t.Errorf("0x%02X: unexpected decode error %v", i, err)
			continue
		}
		if instr.Cycles != timing {
			t.Errorf("0x%02X %s: expected %d cycles, got %d", i, instr, timing, instr.Cycles)
		}
	}
}

func TestCPU_New(t *testing.T) {
	c := New()
	assert.Equal(t, Registers{}, c.Registers)
	assert.False(t, c.Halted())
	assert.Equal(t, ram.NewRAM(ram.Size).Checksum(), c.Checksum())

	c = New(WithPC(0x0100), WithSP(0xFFFE))
	assert.Equal(t, uint16(0x0100), c.PC)
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestCPU_Step(t *testing.T) {
	c := newTestCPU(t, 0x06, 0x69, 0x00)

	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(2), cycles)
	assert.Equal(t, uint16(0x0102), c.PC)

	cycles, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), cycles)
	assert.Equal(t, uint16(0x0103), c.PC)
	assert.Equal(t, uint64(3), c.Cycles())
}

func TestCPU_Run(t *testing.T) {
	program := []uint8{
		0x21, 0x00, 0xC0, // LD HL, 0xC000
		0x3E, 0x11, // LD A, 0x11
		0x22,       // LD (HL+), A
		0x3C,       // INC A
		0x22,       // LD (HL+), A
		0x2B,       // DEC HL
		0x46,       // LD B, (HL)
		0x48,       // LD C, B
		0x76,       // HALT
		0x04,       // INC B (never reached)
	}
	c := newTestCPU(t, program...)

	require.NoError(t, c.Run())
	assert.True(t, c.Halted())

	assert.Equal(t, uint8(0x11), mustRead(t, c, 0xC000))
	assert.Equal(t, uint8(0x12), mustRead(t, c, 0xC001))
	assert.Equal(t, uint16(0xC001), c.Fetch16(HL))
	assert.Equal(t, uint8(0x12), c.B)
	assert.Equal(t, uint8(0x12), c.C)
	assert.Equal(t, uint16(0x010C), c.PC, "PC should rest after HALT")
	assert.Equal(t, uint64(3+2+2+1+2+2+2+1+1), c.Cycles())

	// a halted CPU stays put
	cycles, err := c.Step()
	require.NoError(t, err)
	assert.Zero(t, cycles)
	assert.Equal(t, uint16(0x010C), c.PC)
}

func TestCPU_RunFor(t *testing.T) {
	c := New() // zeroed memory is an endless run of NOPs

	steps, err := c.RunFor(10)
	require.NoError(t, err)
	assert.Equal(t, 10, steps)
	assert.Equal(t, uint16(10), c.PC)
	assert.False(t, c.Halted())

	require.NoError(t, c.Write(10, 0x76))
	steps, err = c.RunFor(10)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)
	assert.True(t, c.Halted())
}

func TestCPU_Errors(t *testing.T) {
	t.Run("unmatched opcode", func(t *testing.T) {
		c := newTestCPU(t, 0x00, 0xC3, 0x00, 0x00)
		err := c.Run()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)

		var stepErr *StepError
		require.True(t, errors.As(err, &stepErr))
		assert.Equal(t, types.Address(0x0101), stepErr.PC)
		assert.Equal(t, uint8(0xC3), stepErr.Opcode)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, uint8(0xC3), decodeErr.Opcode)
		assert.False(t, c.Halted())
	})

	t.Run("unsupported instruction", func(t *testing.T) {
		c := newTestCPU(t, 0x80) // ADD A, B
		_, err := c.Step()
		assert.ErrorIs(t, err, ErrUnsupportedInstruction)
		assert.NotErrorIs(t, err, ErrDecode)
		assert.Contains(t, err.Error(), "ADD A, B")
	})

	t.Run("memory overflow", func(t *testing.T) {
		c := NewCPU(ram.NewRAM(0x200), WithPC(0x0100))
		require.NoError(t, c.WriteBytes(0x0100, []byte{0x21, 0x00, 0x30, 0x7E})) // LD HL, 0x3000; LD A, (HL)

		before := c.Checksum()
		err := c.Run()
		assert.ErrorIs(t, err, ram.ErrMemoryOverflow)
		assert.Equal(t, before, c.Checksum())
		assert.Equal(t, uint16(0x3000), c.Fetch16(HL))
	})

	t.Run("fetch past the end", func(t *testing.T) {
		c := NewCPU(ram.NewRAM(0x10), WithPC(0x10))
		_, err := c.Step()
		assert.ErrorIs(t, err, ram.ErrMemoryOverflow)
	})
}

func TestCPU_Reset(t *testing.T) {
	c := newTestCPU(t, 0x3E, 0x42, 0x76)
	require.NoError(t, c.Run())
	require.True(t, c.Halted())

	c.Reset()
	assert.False(t, c.Halted())
	assert.Equal(t, Registers{}, c.Registers)
	assert.Zero(t, c.Cycles())
	assert.Equal(t, uint8(0x3E), mustRead(t, c, 0x0100), "memory should survive a reset")
}

func TestCPU_Debug(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithLogger(log.NewWithWriter(&buf)), Debug(), WithPC(0x0100))
	require.NoError(t, c.WriteBytes(0x0100, []byte{0x2A, 0x76}))

	require.NoError(t, c.Run())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "0x0100")
	assert.Contains(t, lines[0], "LD A, (HL+)")
	assert.Contains(t, lines[1], "HALT")
}
