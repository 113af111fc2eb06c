// Package program describes byte streams to be placed in memory before
// the CPU is started.
package program

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/gbcpu/internal/types"
	"github.com/thelolagemann/gbcpu/pkg/utils"
)

// Writer is anything a program can be written into, such as a CPU or its
// RAM.
type Writer interface {
	WriteBytes(address types.Address, data []byte) error
}

// Segment is a contiguous run of bytes placed at Address.
type Segment struct {
	Address types.Address
	Data    []byte
	// Source names where the data came from, for error messages.
	Source string
}

// Image is an ordered set of segments. Later segments overwrite earlier
// ones where they overlap.
type Image struct {
	Segments []Segment
}

// Add appends a segment to the image.
func (i *Image) Add(address types.Address, data []byte, source string) {
	i.Segments = append(i.Segments, Segment{Address: address, Data: data, Source: source})
}

// Size returns the total number of bytes across all segments.
func (i *Image) Size() int {
	n := 0
	for _, s := range i.Segments {
		n += len(s.Data)
	}
	return n
}

// LoadInto writes every segment into w. Each segment is written in one go,
// a failing segment does not stop the others, and all failures are
// returned together.
func (i *Image) LoadInto(w Writer) error {
	var result *multierror.Error
	for _, s := range i.Segments {
		if err := w.WriteBytes(s.Address, s.Data); err != nil {
			result = multierror.Append(result, fmt.Errorf("segment %s at %s: %w", s.Source, s.Address, err))
		}
	}
	return result.ErrorOrNil()
}

// ParseAddress parses a 16-bit address in decimal, 0x hex or $ hex
// notation.
func ParseAddress(s string) (types.Address, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return types.Address(v), nil
}

// ParseSegmentSpec splits an "address:file" specification.
func ParseSegmentSpec(spec string) (types.Address, string, error) {
	addr, file, ok := strings.Cut(spec, ":")
	if !ok || file == "" {
		return 0, "", fmt.Errorf("invalid segment %q, expected address:file", spec)
	}
	address, err := ParseAddress(addr)
	if err != nil {
		return 0, "", err
	}
	return address, file, nil
}

// Load builds an image from "address:file" specifications, loading each
// file with utils.LoadFile. Every specification is attempted and all
// failures are returned together.
func Load(specs ...string) (*Image, error) {
	img := &Image{}
	var result *multierror.Error
	for _, spec := range specs {
		address, file, err := ParseSegmentSpec(spec)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		data, err := utils.LoadFile(file)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		img.Add(address, data, file)
	}
	return img, result.ErrorOrNil()
}
