// Package ram provides a fixed-size, bounds-checked block of RAM.
package ram

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcpu/internal/types"
)

// Size is the size of the full 16-bit address space, 0x0000 - 0xFFFF
// inclusive.
const Size = 0x10000

// ErrMemoryOverflow is returned when an access reaches past the end of
// the RAM.
var ErrMemoryOverflow = errors.New("memory overflow")

// OverflowError describes an access that did not fit inside the RAM.
type OverflowError struct {
	Address types.Address
	Length  int
	Size    int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("memory overflow: %d byte(s) at %s exceeds size 0x%X", e.Length, e.Address, e.Size)
}

// Is reports whether target is ErrMemoryOverflow.
func (e *OverflowError) Is(target error) bool {
	return target == ErrMemoryOverflow
}

// RAM represents a block of RAM. It is allocated zero-filled and is
// never resized.
type RAM struct {
	data []byte
}

// NewRAM returns a new RAM of the given size.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]byte, size),
	}
}

// Size returns the number of addressable bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// check ensures length bytes starting at address are inside the RAM.
func (r *RAM) check(address types.Address, length int) error {
	if length < 0 || int(address)+length > len(r.data) {
		return &OverflowError{Address: address, Length: length, Size: len(r.data)}
	}
	return nil
}

// Read returns the value at the given address.
func (r *RAM) Read(address types.Address) (uint8, error) {
	if err := r.check(address, 1); err != nil {
		return 0, err
	}
	return r.data[address], nil
}

// ReadBytes returns a copy of length bytes starting at the given address.
func (r *RAM) ReadBytes(address types.Address, length int) ([]byte, error) {
	if err := r.check(address, length); err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, r.data[int(address):int(address)+length])
	return out, nil
}

// Write writes the value to the given address.
func (r *RAM) Write(address types.Address, value uint8) error {
	if err := r.check(address, 1); err != nil {
		return err
	}
	r.data[address] = value
	return nil
}

// WriteBytes writes data starting at the given address. The whole range
// is checked before anything is written, so a failed write leaves the
// RAM untouched.
func (r *RAM) WriteBytes(address types.Address, data []byte) error {
	if err := r.check(address, len(data)); err != nil {
		return err
	}
	copy(r.data[address:], data)
	return nil
}

// Checksum returns the xxhash digest of the entire RAM contents.
func (r *RAM) Checksum() uint64 {
	return xxhash.Sum64(r.data)
}
