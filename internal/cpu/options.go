package cpu

import (
	"github.com/thelolagemann/gbcpu/internal/types"
	"github.com/thelolagemann/gbcpu/pkg/log"
)

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug enables per instruction tracing through the logger.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(c *CPU) {
		c.log = log
	}
}

// WithPC seeds the program counter.
func WithPC(address types.Address) Opt {
	return func(c *CPU) {
		c.PC = uint16(address)
	}
}

// WithSP seeds the stack pointer.
func WithSP(address types.Address) Opt {
	return func(c *CPU) {
		c.SP = uint16(address)
	}
}
