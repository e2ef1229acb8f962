package cpu

import "github.com/mhollis/go6502/memory"

// exec implements one opcode's semantics given the AbsAddress/RelAddress
// already latched by the addressing-mode fetch. Register/memory effects
// and flag updates happen here; cycle accounting is handled by Step.
type exec func(c *Chip, bus memory.Bus)

// ---- load/store ----

func execLDA(c *Chip, bus memory.Bus) {
	c.A = bus.Read(c.AbsAddress)
	c.setZN(c.A)
}

func execLDX(c *Chip, bus memory.Bus) {
	c.X = bus.Read(c.AbsAddress)
	c.setZN(c.X)
}

func execLDY(c *Chip, bus memory.Bus) {
	c.Y = bus.Read(c.AbsAddress)
	c.setZN(c.Y)
}

func execSTA(c *Chip, bus memory.Bus) { bus.Write(c.AbsAddress, c.A) }
func execSTX(c *Chip, bus memory.Bus) { bus.Write(c.AbsAddress, c.X) }
func execSTY(c *Chip, bus memory.Bus) { bus.Write(c.AbsAddress, c.Y) }

// ---- transfers ----

func execTAX(c *Chip, bus memory.Bus) { c.X = c.A; c.setZN(c.X) }
func execTAY(c *Chip, bus memory.Bus) { c.Y = c.A; c.setZN(c.Y) }
func execTSX(c *Chip, bus memory.Bus) { c.X = c.SP; c.setZN(c.X) }
func execTXA(c *Chip, bus memory.Bus) { c.A = c.X; c.setZN(c.A) }
func execTYA(c *Chip, bus memory.Bus) { c.A = c.Y; c.setZN(c.A) }
func execTXS(c *Chip, bus memory.Bus) { c.SP = c.X }

// ---- stack ----

func execPHA(c *Chip, bus memory.Bus) { c.push(c.A) }

func execPHP(c *Chip, bus memory.Bus) {
	c.push(c.P | FlagBreak | FlagUnused)
}

func execPLA(c *Chip, bus memory.Bus) {
	c.A = c.pop()
	c.setZN(c.A)
}

// execPLP implements the canonical hardware reading: bits 4 (B) and 5 (U)
// of the pulled byte are discarded. B has no live flip-flop (it only
// exists in a pushed copy) so it's always cleared; U is hardwired to 1.
func execPLP(c *Chip, bus memory.Bus) {
	pulled := c.pop()
	c.P = (pulled &^ (FlagBreak | FlagUnused)) | FlagUnused
}

// ---- logic ----

func execAND(c *Chip, bus memory.Bus) {
	c.A &= bus.Read(c.AbsAddress)
	c.setZN(c.A)
}

func execORA(c *Chip, bus memory.Bus) {
	c.A |= bus.Read(c.AbsAddress)
	c.setZN(c.A)
}

func execEOR(c *Chip, bus memory.Bus) {
	c.A ^= bus.Read(c.AbsAddress)
	c.setZN(c.A)
}

func execBIT(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress)
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagNegative, m&0x80 != 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
}

// ---- arithmetic ----

func execADC(c *Chip, bus memory.Bus) {
	c.A = c.addWithCarry(bus.Read(c.AbsAddress))
}

func execSBC(c *Chip, bus memory.Bus) {
	c.A = c.addWithCarry(bus.Read(c.AbsAddress) ^ 0xFF)
}

func (c *Chip) compare(reg, m uint8) {
	result := reg - m
	c.setFlag(FlagCarry, reg >= m)
	c.setFlag(FlagZero, reg == m)
	c.setFlag(FlagNegative, result&0x80 != 0)
}

func execCMP(c *Chip, bus memory.Bus) { c.compare(c.A, bus.Read(c.AbsAddress)) }
func execCPX(c *Chip, bus memory.Bus) { c.compare(c.X, bus.Read(c.AbsAddress)) }
func execCPY(c *Chip, bus memory.Bus) { c.compare(c.Y, bus.Read(c.AbsAddress)) }

// ---- inc/dec ----

func execINC(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress) + 1
	bus.Write(c.AbsAddress, m)
	c.setZN(m)
}

func execDEC(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress) - 1
	bus.Write(c.AbsAddress, m)
	c.setZN(m)
}

func execINX(c *Chip, bus memory.Bus) { c.X++; c.setZN(c.X) }
func execINY(c *Chip, bus memory.Bus) { c.Y++; c.setZN(c.Y) }
func execDEX(c *Chip, bus memory.Bus) { c.X--; c.setZN(c.X) }
func execDEY(c *Chip, bus memory.Bus) { c.Y--; c.setZN(c.Y) }

// ---- shifts/rotates ----

func execASLAcc(c *Chip, bus memory.Bus) {
	carry := c.A&0x80 != 0
	c.A <<= 1
	c.setFlag(FlagCarry, carry)
	c.setZN(c.A)
}

func execASL(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress)
	carry := m&0x80 != 0
	m <<= 1
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.setZN(m)
}

func execLSRAcc(c *Chip, bus memory.Bus) {
	carry := c.A&0x01 != 0
	c.A >>= 1
	c.setFlag(FlagCarry, carry)
	c.setZN(c.A)
}

func execLSR(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress)
	carry := m&0x01 != 0
	m >>= 1
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.setZN(m)
}

func execROLAcc(c *Chip, bus memory.Bus) {
	in := uint8(c.carryIn())
	carry := c.A&0x80 != 0
	c.A = (c.A << 1) | in
	c.setFlag(FlagCarry, carry)
	c.setZN(c.A)
}

func execROL(c *Chip, bus memory.Bus) {
	in := uint8(c.carryIn())
	m := bus.Read(c.AbsAddress)
	carry := m&0x80 != 0
	m = (m << 1) | in
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.setZN(m)
}

func execRORAcc(c *Chip, bus memory.Bus) {
	in := uint8(c.carryIn())
	carry := c.A&0x01 != 0
	c.A = (c.A >> 1) | (in << 7)
	c.setFlag(FlagCarry, carry)
	c.setZN(c.A)
}

func execROR(c *Chip, bus memory.Bus) {
	in := uint8(c.carryIn())
	m := bus.Read(c.AbsAddress)
	carry := m&0x01 != 0
	m = (m >> 1) | (in << 7)
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.setZN(m)
}

// ---- jumps/subroutines ----

func execJMP(c *Chip, bus memory.Bus) { c.PC = c.AbsAddress }

func execJSR(c *Chip, bus memory.Bus) {
	ret := c.PC - 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret & 0xFF))
	c.PC = c.AbsAddress
}

func execRTS(c *Chip, bus memory.Bus) {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	c.PC = (hi<<8 | lo) + 1
}

// ---- branches ----

// branch applies the shared taken/page-cross cycle accounting and jump.
func (c *Chip) branch(taken bool) {
	if !taken {
		return
	}
	c.Cycles++
	target := c.PC + c.RelAddress
	if target&0xFF00 != c.PC&0xFF00 {
		c.Cycles++
	}
	c.PC = target
}

func execBCC(c *Chip, bus memory.Bus) { c.branch(!c.flag(FlagCarry)) }
func execBCS(c *Chip, bus memory.Bus) { c.branch(c.flag(FlagCarry)) }
func execBEQ(c *Chip, bus memory.Bus) { c.branch(c.flag(FlagZero)) }
func execBNE(c *Chip, bus memory.Bus) { c.branch(!c.flag(FlagZero)) }
func execBMI(c *Chip, bus memory.Bus) { c.branch(c.flag(FlagNegative)) }
func execBPL(c *Chip, bus memory.Bus) { c.branch(!c.flag(FlagNegative)) }
func execBVC(c *Chip, bus memory.Bus) { c.branch(!c.flag(FlagOverflow)) }
func execBVS(c *Chip, bus memory.Bus) { c.branch(c.flag(FlagOverflow)) }

// ---- flag ops ----

func execCLC(c *Chip, bus memory.Bus) { c.setFlag(FlagCarry, false) }
func execSEC(c *Chip, bus memory.Bus) { c.setFlag(FlagCarry, true) }
func execCLD(c *Chip, bus memory.Bus) { c.setFlag(FlagDecimal, false) }
func execSED(c *Chip, bus memory.Bus) { c.setFlag(FlagDecimal, true) }
func execCLI(c *Chip, bus memory.Bus) { c.setFlag(FlagInterrupt, false) }
func execSEI(c *Chip, bus memory.Bus) { c.setFlag(FlagInterrupt, true) }
func execCLV(c *Chip, bus memory.Bus) { c.setFlag(FlagOverflow, false) }

// ---- BRK / RTI ----

// execBRK advances PC past the signature byte, then runs the shared
// interrupt push/vector-load sequence with B forced on in the pushed copy.
func execBRK(c *Chip, bus memory.Bus) {
	c.PC++
	c.runInterrupt(IRQVector, true)
}

// execRTI pulls P (canonical B/U handling, same as PLP) then PC low/high.
// Unlike RTS, PC is not incremented afterward since the pushed PC already
// pointed at the correct resume address.
func execRTI(c *Chip, bus memory.Bus) {
	pulled := c.pop()
	c.P = (pulled &^ (FlagBreak | FlagUnused)) | FlagUnused
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	c.PC = hi<<8 | lo
}

// ---- no-ops / unimplemented ----

// execNOP covers both the official NOP and the documented-but-undocumented
// NOP variants (multi-byte forms used by real software for padding/timing).
// All effect beyond the address-mode fetch already performed is none.
func execNOP(c *Chip, bus memory.Bus) {}

// execUnimplemented backs every opcode slot spec.md leaves unimplemented.
// Its addressing mode still runs (PC/cycle bookkeeping stays correct and a
// disassembler trace stays readable) but no register, flag, or memory
// mutation happens, per the "no-op that does not modify state" contract.
func execUnimplemented(c *Chip, bus memory.Bus) {}

// execJAM freezes the processor and, when the bus implements
// memory.DatabusSetter, latches the shared data bus at 0xFF, matching real
// NMOS 6502 behavior. A bus without SetLatch keeps its latch unchanged.
// Only Reset recovers from this.
func execJAM(c *Chip, bus memory.Bus) {
	c.JAM = true
	if setter, ok := bus.(memory.DatabusSetter); ok {
		setter.SetLatch(0xFF)
	}
}

// ---- documented illegal opcodes ----

func execLAX(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress)
	c.A = m
	c.X = m
	c.setZN(m)
}

func execSAX(c *Chip, bus memory.Bus) {
	bus.Write(c.AbsAddress, c.A&c.X)
}

func execDCP(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress) - 1
	bus.Write(c.AbsAddress, m)
	c.compare(c.A, m)
}

func execISB(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress) + 1
	bus.Write(c.AbsAddress, m)
	c.A = c.addWithCarry(m ^ 0xFF)
}

func execSLO(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress)
	carry := m&0x80 != 0
	m <<= 1
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.A |= m
	c.setZN(c.A)
}

func execRLA(c *Chip, bus memory.Bus) {
	in := uint8(c.carryIn())
	m := bus.Read(c.AbsAddress)
	carry := m&0x80 != 0
	m = (m << 1) | in
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.A &= m
	c.setZN(c.A)
}

func execSRE(c *Chip, bus memory.Bus) {
	m := bus.Read(c.AbsAddress)
	carry := m&0x01 != 0
	m >>= 1
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.A ^= m
	c.setZN(c.A)
}

// execRRA implements ROR-then-ADC. The ROR carry-out is computed with the
// correct temp&0x0001 mask; see DESIGN.md for why the original reference's
// temp|0x0001 was not carried forward.
func execRRA(c *Chip, bus memory.Bus) {
	in := uint8(c.carryIn())
	m := bus.Read(c.AbsAddress)
	carry := m&0x0001 != 0
	m = (m >> 1) | (in << 7)
	bus.Write(c.AbsAddress, m)
	c.setFlag(FlagCarry, carry)
	c.A = c.addWithCarry(m)
}
