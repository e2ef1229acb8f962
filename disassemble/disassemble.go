// Package disassemble formats a single instruction at a given address as a
// nestest.log-style trace line. It only ever reads the bus; it never writes
// memory or touches CPU state, so it can safely be called before or after
// a cpu.Chip executes the same instruction. Its reads do update the bus's
// databus latch, as every Bus.Read does.
package disassemble

import (
	"fmt"

	"github.com/mhollis/go6502/cpu"
	"github.com/mhollis/go6502/memory"
)

// Step disassembles the instruction at pc and returns the formatted line
// plus how many bytes (including the opcode) it occupies. It always reads
// at least one byte past pc, so callers must ensure that address is valid
// (harmless for anything but the very top of the address space).
func Step(pc uint16, bus memory.Bus) (string, int) {
	op := bus.Read(pc)
	b1 := bus.Read(pc + 1)
	b2 := bus.Read(pc + 2)
	rel16 := uint16(int16(int8(b1)))

	name := cpu.OpcodeName(op)
	mode := cpu.OpcodeMode(op)
	count := cpu.OperandLen(mode) + 1

	out := fmt.Sprintf("%.4X %.2X ", pc, op)
	switch mode {
	case cpu.ModeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", b1, name, b1)
	case cpu.ModeZeroPage:
		out += fmt.Sprintf("%.2X      %s %.2X        ", b1, name, b1)
	case cpu.ModeZeroPageX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", b1, name, b1)
	case cpu.ModeZeroPageY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", b1, name, b1)
	case cpu.ModeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", b1, name, b1)
	case cpu.ModeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", b1, name, b1)
	case cpu.ModeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", b1, b2, name, b2, b1)
	case cpu.ModeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", b1, b2, name, b2, b1)
	case cpu.ModeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", b1, b2, name, b2, b1)
	case cpu.ModeIndirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", b1, b2, name, b2, b1)
	case cpu.ModeAccumulator:
		out += fmt.Sprintf("        %s A         ", name)
	case cpu.ModeImplied:
		out += fmt.Sprintf("        %s           ", name)
	case cpu.ModeRelative:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", b1, name, b1, pc+rel16+2)
	default:
		panic(fmt.Sprintf("invalid addressing mode: %d", mode))
	}
	return out, count
}
