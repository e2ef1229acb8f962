package cpu

import "github.com/mhollis/go6502/memory"

// Mode identifies one of the thirteen 6502 addressing modes. It's exported
// so external tools (a disassembler, a trace formatter) can label an
// opcode's operand shape without re-deriving it from the mnemonic.
type Mode int

const (
	ModeAccumulator Mode = iota
	ModeImplied
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// addrFunc fetches 0-2 operand bytes starting at PC, advances PC, and sets
// AbsAddress (or RelAddress for relative mode). It reports whether indexing
// crossed a page boundary; only opcodes in the documented penalty set
// (opInfo.pageCrossPenalty) turn that into an extra cycle.
type addrFunc func(c *Chip, bus memory.Bus) bool

func addrAccumulator(c *Chip, bus memory.Bus) bool { return false }

func addrImplied(c *Chip, bus memory.Bus) bool { return false }

func addrImmediate(c *Chip, bus memory.Bus) bool {
	c.AbsAddress = c.PC
	c.PC++
	return false
}

func addrZeroPage(c *Chip, bus memory.Bus) bool {
	c.AbsAddress = uint16(bus.Read(c.PC))
	c.PC++
	return false
}

func addrZeroPageX(c *Chip, bus memory.Bus) bool {
	c.AbsAddress = uint16(bus.Read(c.PC) + c.X)
	c.PC++
	return false
}

func addrZeroPageY(c *Chip, bus memory.Bus) bool {
	c.AbsAddress = uint16(bus.Read(c.PC) + c.Y)
	c.PC++
	return false
}

func (c *Chip) readAbsoluteOperand(bus memory.Bus) uint16 {
	lo := uint16(bus.Read(c.PC))
	c.PC++
	hi := uint16(bus.Read(c.PC))
	c.PC++
	return hi<<8 | lo
}

func addrAbsolute(c *Chip, bus memory.Bus) bool {
	c.AbsAddress = c.readAbsoluteOperand(bus)
	return false
}

func addrAbsoluteX(c *Chip, bus memory.Bus) bool {
	base := c.readAbsoluteOperand(bus)
	c.AbsAddress = base + uint16(c.X)
	return c.AbsAddress&0xFF00 != base&0xFF00
}

func addrAbsoluteY(c *Chip, bus memory.Bus) bool {
	base := c.readAbsoluteOperand(bus)
	c.AbsAddress = base + uint16(c.Y)
	return c.AbsAddress&0xFF00 != base&0xFF00
}

// addrIndirect implements JMP (a), including the well-known 6502 hardware
// bug: if the pointer's low byte is 0xFF, the high byte wraps to the start
// of the same page instead of spilling into the next one.
func addrIndirect(c *Chip, bus memory.Bus) bool {
	ptr := c.readAbsoluteOperand(bus)
	lo := uint16(bus.Read(ptr))
	var hiAddr uint16
	if ptr&0xFF == 0xFF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(bus.Read(hiAddr))
	c.AbsAddress = hi<<8 | lo
	return false
}

func addrIndirectX(c *Chip, bus memory.Bus) bool {
	zp := uint16(bus.Read(c.PC) + c.X)
	c.PC++
	lo := uint16(bus.Read(zp & 0xFF))
	hi := uint16(bus.Read((zp + 1) & 0xFF))
	c.AbsAddress = hi<<8 | lo
	return false
}

func addrIndirectY(c *Chip, bus memory.Bus) bool {
	zp := uint16(bus.Read(c.PC))
	c.PC++
	lo := uint16(bus.Read(zp))
	hi := uint16(bus.Read((zp + 1) & 0xFF))
	base := hi<<8 | lo
	c.AbsAddress = base + uint16(c.Y)
	return c.AbsAddress&0xFF00 != base&0xFF00
}

func addrRelative(c *Chip, bus memory.Bus) bool {
	offset := bus.Read(c.PC)
	c.PC++
	c.RelAddress = uint16(int16(int8(offset)))
	return false
}
