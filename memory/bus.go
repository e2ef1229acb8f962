// Package memory defines the memory bus contract consumed by the 6502
// core: a flat 16-bit address space with byte granularity and a shared
// databus latch. Concrete memory maps (ROM/RAM chip selects, mirroring,
// mapper bank switching) are the host's responsibility; this package only
// provides the flat RAM-backed implementation the core's own tests and
// command-line tools need.
package memory

import (
	"math/rand"
	"time"
)

// Bus is the capability the cpu package requires of host memory: a
// byte-addressable 64 KiB space that can be read and written. No call ever
// fails; addresses wrap naturally since they're already uint16.
type Bus interface {
	// Read returns the byte stored at addr and updates the databus latch.
	Read(addr uint16) uint8
	// Write stores val at addr and updates the databus latch.
	Write(addr uint16, val uint8)
	// Latch returns the last value to cross the bus via Read or Write.
	Latch() uint8
}

// DatabusSetter is implemented by a Bus that lets the CPU force the shared
// latch without performing a real memory write. The only user is the JAM
// opcode, which freezes the processor with the data bus pinned at 0xFF.
type DatabusSetter interface {
	SetLatch(val uint8)
}

// RAM is a flat, 64 KiB, RAM-backed Bus implementation. It's the memory
// used by the core's own tests and by cmd/nestest, standing in for
// whatever chip-select logic a real host would place in front of the CPU.
type RAM struct {
	mem   [1 << 16]uint8
	latch uint8
}

// NewRAM returns a RAM bank with every byte zeroed.
func NewRAM() *RAM {
	return &RAM{}
}

// PowerOn fills RAM with random bytes, matching real hardware: nothing
// guarantees a 6502's RAM starts at zero, and code relying on that is buggy
// even if it happens to work under this core's NewRAM zero-fill.
func (r *RAM) PowerOn() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range r.mem {
		r.mem[i] = uint8(rng.Intn(256))
	}
}

// Read implements Bus.
func (r *RAM) Read(addr uint16) uint8 {
	r.latch = r.mem[addr]
	return r.latch
}

// Write implements Bus.
func (r *RAM) Write(addr uint16, val uint8) {
	r.latch = val
	r.mem[addr] = val
}

// Latch implements Bus.
func (r *RAM) Latch() uint8 {
	return r.latch
}

// SetLatch implements DatabusSetter.
func (r *RAM) SetLatch(val uint8) {
	r.latch = val
}
