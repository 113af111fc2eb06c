package ram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcpu/internal/types"
)

func TestRAM_New(t *testing.T) {
	r := NewRAM(Size)
	assert.Equal(t, 0x10000, r.Size())

	// the last address of the 16-bit space must be addressable
	v, err := r.Read(0xFFFF)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)
}

func TestRAM_ReadWrite(t *testing.T) {
	r := NewRAM(Size)
	require.NoError(t, r.Write(0x100, 0xAA))
	require.NoError(t, r.Write(0x101, 0xBB))

	v, err := r.Read(0x100)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAA), v)

	buf, err := r.ReadBytes(0x100, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, buf)
}

func TestRAM_WriteBytes(t *testing.T) {
	r := NewRAM(Size)
	data := []byte{0xAB, 0xCD, 0xEF}
	require.NoError(t, r.WriteBytes(0x100, data))

	got, err := r.ReadBytes(0x100, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// surrounding memory is untouched
	before, _ := r.Read(0x0FF)
	after, _ := r.Read(0x103)
	assert.Equal(t, uint8(0), before)
	assert.Equal(t, uint8(0), after)

	// the returned slice must not alias the RAM
	got[0] = 0x00
	v, _ := r.Read(0x100)
	assert.Equal(t, uint8(0xAB), v)
}

func TestRAM_Overflow(t *testing.T) {
	r := NewRAM(0x100)

	t.Run("read", func(t *testing.T) {
		_, err := r.Read(0x100)
		assert.ErrorIs(t, err, ErrMemoryOverflow)

		_, err = r.ReadBytes(0xFF, 2)
		assert.ErrorIs(t, err, ErrMemoryOverflow)
	})

	t.Run("write", func(t *testing.T) {
		before := r.Checksum()

		err := r.Write(0x100, 0x42)
		assert.ErrorIs(t, err, ErrMemoryOverflow)

		err = r.WriteBytes(0xFE, []byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrMemoryOverflow)

		var overflow *OverflowError
		require.True(t, errors.As(err, &overflow))
		assert.Equal(t, types.Address(0xFE), overflow.Address)
		assert.Equal(t, 3, overflow.Length)
		assert.Equal(t, 0x100, overflow.Size)

		// no partial write happened
		assert.Equal(t, before, r.Checksum())
		v, _ := r.Read(0xFE)
		assert.Equal(t, uint8(0), v)
	})

	t.Run("exact fit", func(t *testing.T) {
		assert.NoError(t, r.WriteBytes(0xFE, []byte{1, 2}))
	})
}

func TestRAM_Checksum(t *testing.T) {
	a, b := NewRAM(Size), NewRAM(Size)
	assert.Equal(t, a.Checksum(), b.Checksum())

	require.NoError(t, a.Write(0x1234, 0x42))
	assert.NotEqual(t, a.Checksum(), b.Checksum())

	require.NoError(t, b.Write(0x1234, 0x42))
	assert.Equal(t, a.Checksum(), b.Checksum())
}
