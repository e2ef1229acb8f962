// Package functionality does basic end-to-end verification of the 6502
// core against small hand-assembled programs, driving the public cpu.Chip
// API the way a real host (an emulator main loop) would rather than
// poking package-internal state.
package functionality

import (
	"testing"

	"github.com/mhollis/go6502/cpu"
)

type flatMemory struct {
	addr  [65536]uint8
	latch uint8
}

func (r *flatMemory) Read(addr uint16) uint8 {
	r.latch = r.addr[addr]
	return r.latch
}

func (r *flatMemory) Write(addr uint16, val uint8) {
	r.latch = val
	r.addr[addr] = val
}

func (r *flatMemory) Latch() uint8 { return r.latch }

// run executes at most maxSteps instructions starting at the reset vector,
// stopping early on error (including HaltOpcode from a JAM).
func run(t *testing.T, mem *flatMemory, maxSteps int) *cpu.Chip {
	t.Helper()
	c := cpu.Init(mem, 0x80, 0x00)
	for i := 0; i < maxSteps; i++ {
		if err := c.Step(); err != nil {
			if _, ok := err.(cpu.HaltOpcode); ok {
				return c
			}
			t.Fatalf("Step() failed at step %d: %v", i, err)
		}
	}
	return c
}

// TestFibonacci computes the first several Fibonacci numbers in zero page
// using nothing but load/store/arithmetic/branch, then halts on JAM.
func TestFibonacci(t *testing.T) {
	mem := &flatMemory{}
	prog := []uint8{
		0xA9, 0x00, // LDA #0        ; fib[0]
		0x85, 0x00, // STA $00
		0xA9, 0x01, // LDA #1        ; fib[1]
		0x85, 0x01, // STA $01
		0xA2, 0x00, // LDX #0        ; loop counter

		// loop:
		0xA5, 0x00, // LDA $00
		0x18,       // CLC
		0x65, 0x01, // ADC $01       ; next = fib[n] + fib[n+1]
		0x85, 0x02, // STA $02
		0xA5, 0x01, // LDA $01
		0x85, 0x00, // STA $00
		0xA5, 0x02, // LDA $02
		0x85, 0x01, // STA $01
		0xE8,       // INX
		0xE0, 0x08, // CPX #8
		0xD0, 0xEC, // BNE loop
		0x02,       // JAM
	}
	copy(mem.addr[0x8000:], prog)

	c := run(t, mem, 500)
	if !c.JAM {
		t.Fatalf("program did not halt as expected")
	}
	// fib sequence 0,1,1,2,3,5,8,13,21 -> after 8 iterations fib[0]==21
	if got, want := mem.addr[0x00], uint8(21); got != want {
		t.Errorf("fib[0] = %d, want %d", got, want)
	}
}

// TestIllegalOpcodesStableSubset exercises the documented illegal opcodes
// this core implements (LAX, SAX, DCP, ISB, SLO, SRE, RLA, RRA) in one
// straight-line program, the way they actually show up in nestest-derived
// test ROMs.
func TestIllegalOpcodesStableSubset(t *testing.T) {
	mem := &flatMemory{}
	mem.addr[0x0010] = 0x0F
	prog := []uint8{
		0xA7, 0x10, // LAX $10        -> A=X=0x0F
		0x87, 0x11, // SAX $11        -> mem[0x11] = A&X = 0x0F
		0xC7, 0x11, // DCP $11        -> mem[0x11]-- then CMP A
		0xE7, 0x11, // ISB $11        -> mem[0x11]++ then SBC A
		0x07, 0x11, // SLO $11        -> ASL mem[0x11] then ORA A
		0x47, 0x11, // SRE $11        -> LSR mem[0x11] then EOR A
		0x27, 0x11, // RLA $11        -> ROL mem[0x11] then AND A
		0x67, 0x11, // RRA $11        -> ROR mem[0x11] then ADC A
		0x02, // JAM
	}
	copy(mem.addr[0x8000:], prog)

	c := run(t, mem, 100)
	if !c.JAM {
		t.Fatalf("program did not halt as expected")
	}
	if got, want := c.X, uint8(0x0F); got != want {
		t.Errorf("X after LAX = 0x%.2X, want 0x%.2X", got, want)
	}
}

// TestNMIDuringRun checks that an explicit Nmi() call between Step()s
// vectors through NMIVector and returns control to the interrupted code
// via a matching RTI.
func TestNMIDuringRun(t *testing.T) {
	mem := &flatMemory{}
	mem.addr[0xFFFA] = 0x00
	mem.addr[0xFFFA+1] = 0x90 // NMI vector -> 0x9000
	mem.addr[0x9000] = 0x40   // RTI

	prog := []uint8{
		0xEA, // NOP
		0xEA, // NOP
		0x02, // JAM
	}
	copy(mem.addr[0x8000:], prog)

	c := cpu.Init(mem, 0x80, 0x00)
	if err := c.Step(); err != nil {
		t.Fatalf("Step() 1 failed: %v", err)
	}
	returnPC := c.PC
	c.Nmi()
	if got, want := c.PC, uint16(0x9000); got != want {
		t.Fatalf("PC after Nmi() = 0x%.4X, want 0x%.4X", got, want)
	}
	if err := c.Step(); err != nil { // RTI
		t.Fatalf("Step() through RTI failed: %v", err)
	}
	if c.PC != returnPC {
		t.Errorf("PC after RTI = 0x%.4X, want 0x%.4X (resume point)", c.PC, returnPC)
	}
}
