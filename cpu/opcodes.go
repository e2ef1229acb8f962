package cpu

// opInfo is one row of the dispatch table: everything Step needs to run a
// single opcode, plus modeTag for tools (a disassembler, a trace formatter)
// that want to label the operand shape without re-deriving it from name.
type opInfo struct {
	name             string
	modeTag          Mode
	mode             addrFunc
	exec             exec
	cycles           uint8
	pageCrossPenalty bool
}

// opcodeTable is indexed by opcode byte: mnemonic, addressing mode, and
// base cycle count for every one of the 256 opcode slots.
var opcodeTable = [256]opInfo{
	0x00: {"BRK", ModeImplied, addrImplied, execBRK, 7, false},
	0x01: {"ORA", ModeIndirectX, addrIndirectX, execORA, 6, false},
	0x02: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x03: {"SLO", ModeIndirectX, addrIndirectX, execSLO, 8, false},
	0x04: {"NOP", ModeZeroPage, addrZeroPage, execNOP, 3, false},
	0x05: {"ORA", ModeZeroPage, addrZeroPage, execORA, 3, false},
	0x06: {"ASL", ModeZeroPage, addrZeroPage, execASL, 5, false},
	0x07: {"SLO", ModeZeroPage, addrZeroPage, execSLO, 5, false},
	0x08: {"PHP", ModeImplied, addrImplied, execPHP, 3, false},
	0x09: {"ORA", ModeImmediate, addrImmediate, execORA, 2, false},
	0x0A: {"ASL", ModeAccumulator, addrAccumulator, execASLAcc, 2, false},
	0x0B: {"ANC", ModeImmediate, addrImmediate, execUnimplemented, 2, false},
	0x0C: {"NOP", ModeAbsolute, addrAbsolute, execNOP, 4, false},
	0x0D: {"ORA", ModeAbsolute, addrAbsolute, execORA, 4, false},
	0x0E: {"ASL", ModeAbsolute, addrAbsolute, execASL, 6, false},
	0x0F: {"SLO", ModeAbsolute, addrAbsolute, execSLO, 6, false},

	0x10: {"BPL", ModeRelative, addrRelative, execBPL, 2, false},
	0x11: {"ORA", ModeIndirectY, addrIndirectY, execORA, 5, true},
	0x12: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x13: {"SLO", ModeIndirectY, addrIndirectY, execSLO, 8, false},
	0x14: {"NOP", ModeZeroPageX, addrZeroPageX, execNOP, 4, false},
	0x15: {"ORA", ModeZeroPageX, addrZeroPageX, execORA, 4, false},
	0x16: {"ASL", ModeZeroPageX, addrZeroPageX, execASL, 6, false},
	0x17: {"SLO", ModeZeroPageX, addrZeroPageX, execSLO, 6, false},
	0x18: {"CLC", ModeImplied, addrImplied, execCLC, 2, false},
	0x19: {"ORA", ModeAbsoluteY, addrAbsoluteY, execORA, 4, true},
	0x1A: {"NOP", ModeImplied, addrImplied, execNOP, 2, false},
	0x1B: {"SLO", ModeAbsoluteY, addrAbsoluteY, execSLO, 7, false},
	0x1C: {"NOP", ModeAbsoluteX, addrAbsoluteX, execNOP, 4, true},
	0x1D: {"ORA", ModeAbsoluteX, addrAbsoluteX, execORA, 4, true},
	0x1E: {"ASL", ModeAbsoluteX, addrAbsoluteX, execASL, 7, false},
	0x1F: {"SLO", ModeAbsoluteX, addrAbsoluteX, execSLO, 7, false},

	0x20: {"JSR", ModeAbsolute, addrAbsolute, execJSR, 6, false},
	0x21: {"AND", ModeIndirectX, addrIndirectX, execAND, 6, false},
	0x22: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x23: {"RLA", ModeIndirectX, addrIndirectX, execRLA, 8, false},
	0x24: {"BIT", ModeZeroPage, addrZeroPage, execBIT, 3, false},
	0x25: {"AND", ModeZeroPage, addrZeroPage, execAND, 3, false},
	0x26: {"ROL", ModeZeroPage, addrZeroPage, execROL, 5, false},
	0x27: {"RLA", ModeZeroPage, addrZeroPage, execRLA, 5, false},
	0x28: {"PLP", ModeImplied, addrImplied, execPLP, 4, false},
	0x29: {"AND", ModeImmediate, addrImmediate, execAND, 2, false},
	0x2A: {"ROL", ModeAccumulator, addrAccumulator, execROLAcc, 2, false},
	0x2B: {"ANC", ModeImmediate, addrImmediate, execUnimplemented, 2, false},
	0x2C: {"BIT", ModeAbsolute, addrAbsolute, execBIT, 4, false},
	0x2D: {"AND", ModeAbsolute, addrAbsolute, execAND, 4, false},
	0x2E: {"ROL", ModeAbsolute, addrAbsolute, execROL, 6, false},
	0x2F: {"RLA", ModeAbsolute, addrAbsolute, execRLA, 6, false},

	0x30: {"BMI", ModeRelative, addrRelative, execBMI, 2, false},
	0x31: {"AND", ModeIndirectY, addrIndirectY, execAND, 5, true},
	0x32: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x33: {"RLA", ModeIndirectY, addrIndirectY, execRLA, 8, false},
	0x34: {"NOP", ModeZeroPageX, addrZeroPageX, execNOP, 4, false},
	0x35: {"AND", ModeZeroPageX, addrZeroPageX, execAND, 4, false},
	0x36: {"ROL", ModeZeroPageX, addrZeroPageX, execROL, 6, false},
	0x37: {"RLA", ModeZeroPageX, addrZeroPageX, execRLA, 6, false},
	0x38: {"SEC", ModeImplied, addrImplied, execSEC, 2, false},
	0x39: {"AND", ModeAbsoluteY, addrAbsoluteY, execAND, 4, true},
	0x3A: {"NOP", ModeImplied, addrImplied, execNOP, 2, false},
	0x3B: {"RLA", ModeAbsoluteY, addrAbsoluteY, execRLA, 7, false},
	0x3C: {"NOP", ModeAbsoluteX, addrAbsoluteX, execNOP, 4, true},
	0x3D: {"AND", ModeAbsoluteX, addrAbsoluteX, execAND, 4, true},
	0x3E: {"ROL", ModeAbsoluteX, addrAbsoluteX, execROL, 7, false},
	0x3F: {"RLA", ModeAbsoluteX, addrAbsoluteX, execRLA, 7, false},

	0x40: {"RTI", ModeImplied, addrImplied, execRTI, 6, false},
	0x41: {"EOR", ModeIndirectX, addrIndirectX, execEOR, 6, false},
	0x42: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x43: {"SRE", ModeIndirectX, addrIndirectX, execSRE, 8, false},
	0x44: {"NOP", ModeZeroPage, addrZeroPage, execNOP, 3, false},
	0x45: {"EOR", ModeZeroPage, addrZeroPage, execEOR, 3, false},
	0x46: {"LSR", ModeZeroPage, addrZeroPage, execLSR, 5, false},
	0x47: {"SRE", ModeZeroPage, addrZeroPage, execSRE, 5, false},
	0x48: {"PHA", ModeImplied, addrImplied, execPHA, 3, false},
	0x49: {"EOR", ModeImmediate, addrImmediate, execEOR, 2, false},
	0x4A: {"LSR", ModeAccumulator, addrAccumulator, execLSRAcc, 2, false},
	0x4B: {"ALR", ModeImmediate, addrImmediate, execUnimplemented, 2, false},
	0x4C: {"JMP", ModeAbsolute, addrAbsolute, execJMP, 3, false},
	0x4D: {"EOR", ModeAbsolute, addrAbsolute, execEOR, 4, false},
	0x4E: {"LSR", ModeAbsolute, addrAbsolute, execLSR, 6, false},
	0x4F: {"SRE", ModeAbsolute, addrAbsolute, execSRE, 6, false},

	0x50: {"BVC", ModeRelative, addrRelative, execBVC, 2, false},
	0x51: {"EOR", ModeIndirectY, addrIndirectY, execEOR, 5, true},
	0x52: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x53: {"SRE", ModeIndirectY, addrIndirectY, execSRE, 8, false},
	0x54: {"NOP", ModeZeroPageX, addrZeroPageX, execNOP, 4, false},
	0x55: {"EOR", ModeZeroPageX, addrZeroPageX, execEOR, 4, false},
	0x56: {"LSR", ModeZeroPageX, addrZeroPageX, execLSR, 6, false},
	0x57: {"SRE", ModeZeroPageX, addrZeroPageX, execSRE, 6, false},
	0x58: {"CLI", ModeImplied, addrImplied, execCLI, 2, false},
	0x59: {"EOR", ModeAbsoluteY, addrAbsoluteY, execEOR, 4, true},
	0x5A: {"NOP", ModeImplied, addrImplied, execNOP, 2, false},
	0x5B: {"SRE", ModeAbsoluteY, addrAbsoluteY, execSRE, 7, false},
	0x5C: {"NOP", ModeAbsoluteX, addrAbsoluteX, execNOP, 4, true},
	0x5D: {"EOR", ModeAbsoluteX, addrAbsoluteX, execEOR, 4, true},
	0x5E: {"LSR", ModeAbsoluteX, addrAbsoluteX, execLSR, 7, false},
	0x5F: {"SRE", ModeAbsoluteX, addrAbsoluteX, execSRE, 7, false},

	0x60: {"RTS", ModeImplied, addrImplied, execRTS, 6, false},
	0x61: {"ADC", ModeIndirectX, addrIndirectX, execADC, 6, false},
	0x62: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x63: {"RRA", ModeIndirectX, addrIndirectX, execRRA, 8, false},
	0x64: {"NOP", ModeZeroPage, addrZeroPage, execNOP, 3, false},
	0x65: {"ADC", ModeZeroPage, addrZeroPage, execADC, 3, false},
	0x66: {"ROR", ModeZeroPage, addrZeroPage, execROR, 5, false},
	0x67: {"RRA", ModeZeroPage, addrZeroPage, execRRA, 5, false},
	0x68: {"PLA", ModeImplied, addrImplied, execPLA, 4, false},
	0x69: {"ADC", ModeImmediate, addrImmediate, execADC, 2, false},
	0x6A: {"ROR", ModeAccumulator, addrAccumulator, execRORAcc, 2, false},
	0x6B: {"ARR", ModeImmediate, addrImmediate, execUnimplemented, 2, false},
	0x6C: {"JMP", ModeIndirect, addrIndirect, execJMP, 5, false},
	0x6D: {"ADC", ModeAbsolute, addrAbsolute, execADC, 4, false},
	0x6E: {"ROR", ModeAbsolute, addrAbsolute, execROR, 6, false},
	0x6F: {"RRA", ModeAbsolute, addrAbsolute, execRRA, 6, false},

	0x70: {"BVS", ModeRelative, addrRelative, execBVS, 2, false},
	0x71: {"ADC", ModeIndirectY, addrIndirectY, execADC, 5, true},
	0x72: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x73: {"RRA", ModeIndirectY, addrIndirectY, execRRA, 8, false},
	0x74: {"NOP", ModeZeroPageX, addrZeroPageX, execNOP, 4, false},
	0x75: {"ADC", ModeZeroPageX, addrZeroPageX, execADC, 4, false},
	0x76: {"ROR", ModeZeroPageX, addrZeroPageX, execROR, 6, false},
	0x77: {"RRA", ModeZeroPageX, addrZeroPageX, execRRA, 6, false},
	0x78: {"SEI", ModeImplied, addrImplied, execSEI, 2, false},
	0x79: {"ADC", ModeAbsoluteY, addrAbsoluteY, execADC, 4, true},
	0x7A: {"NOP", ModeImplied, addrImplied, execNOP, 2, false},
	0x7B: {"RRA", ModeAbsoluteY, addrAbsoluteY, execRRA, 7, false},
	0x7C: {"NOP", ModeAbsoluteX, addrAbsoluteX, execNOP, 4, true},
	0x7D: {"ADC", ModeAbsoluteX, addrAbsoluteX, execADC, 4, true},
	0x7E: {"ROR", ModeAbsoluteX, addrAbsoluteX, execROR, 7, false},
	0x7F: {"RRA", ModeAbsoluteX, addrAbsoluteX, execRRA, 7, false},

	0x80: {"NOP", ModeImmediate, addrImmediate, execNOP, 2, false},
	0x81: {"STA", ModeIndirectX, addrIndirectX, execSTA, 6, false},
	0x82: {"NOP", ModeImmediate, addrImmediate, execNOP, 2, false},
	0x83: {"SAX", ModeIndirectX, addrIndirectX, execSAX, 6, false},
	0x84: {"STY", ModeZeroPage, addrZeroPage, execSTY, 3, false},
	0x85: {"STA", ModeZeroPage, addrZeroPage, execSTA, 3, false},
	0x86: {"STX", ModeZeroPage, addrZeroPage, execSTX, 3, false},
	0x87: {"SAX", ModeZeroPage, addrZeroPage, execSAX, 3, false},
	0x88: {"DEY", ModeImplied, addrImplied, execDEY, 2, false},
	0x89: {"NOP", ModeImmediate, addrImmediate, execNOP, 2, false},
	0x8A: {"TXA", ModeImplied, addrImplied, execTXA, 2, false},
	0x8B: {"XAA", ModeImmediate, addrImmediate, execUnimplemented, 2, false},
	0x8C: {"STY", ModeAbsolute, addrAbsolute, execSTY, 4, false},
	0x8D: {"STA", ModeAbsolute, addrAbsolute, execSTA, 4, false},
	0x8E: {"STX", ModeAbsolute, addrAbsolute, execSTX, 4, false},
	0x8F: {"SAX", ModeAbsolute, addrAbsolute, execSAX, 4, false},

	0x90: {"BCC", ModeRelative, addrRelative, execBCC, 2, false},
	0x91: {"STA", ModeIndirectY, addrIndirectY, execSTA, 6, false},
	0x92: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0x93: {"AHX", ModeIndirectY, addrIndirectY, execUnimplemented, 6, false},
	0x94: {"STY", ModeZeroPageX, addrZeroPageX, execSTY, 4, false},
	0x95: {"STA", ModeZeroPageX, addrZeroPageX, execSTA, 4, false},
	0x96: {"STX", ModeZeroPageY, addrZeroPageY, execSTX, 4, false},
	0x97: {"SAX", ModeZeroPageY, addrZeroPageY, execSAX, 4, false},
	0x98: {"TYA", ModeImplied, addrImplied, execTYA, 2, false},
	0x99: {"STA", ModeAbsoluteY, addrAbsoluteY, execSTA, 5, false},
	0x9A: {"TXS", ModeImplied, addrImplied, execTXS, 2, false},
	0x9B: {"TAS", ModeAbsoluteY, addrAbsoluteY, execUnimplemented, 5, false},
	0x9C: {"SHY", ModeAbsoluteX, addrAbsoluteX, execUnimplemented, 5, false},
	0x9D: {"STA", ModeAbsoluteX, addrAbsoluteX, execSTA, 5, false},
	0x9E: {"SHX", ModeAbsoluteY, addrAbsoluteY, execUnimplemented, 5, false},
	0x9F: {"AHX", ModeAbsoluteY, addrAbsoluteY, execUnimplemented, 5, false},

	0xA0: {"LDY", ModeImmediate, addrImmediate, execLDY, 2, false},
	0xA1: {"LDA", ModeIndirectX, addrIndirectX, execLDA, 6, false},
	0xA2: {"LDX", ModeImmediate, addrImmediate, execLDX, 2, false},
	0xA3: {"LAX", ModeIndirectX, addrIndirectX, execLAX, 6, false},
	0xA4: {"LDY", ModeZeroPage, addrZeroPage, execLDY, 3, false},
	0xA5: {"LDA", ModeZeroPage, addrZeroPage, execLDA, 3, false},
	0xA6: {"LDX", ModeZeroPage, addrZeroPage, execLDX, 3, false},
	0xA7: {"LAX", ModeZeroPage, addrZeroPage, execLAX, 3, false},
	0xA8: {"TAY", ModeImplied, addrImplied, execTAY, 2, false},
	0xA9: {"LDA", ModeImmediate, addrImmediate, execLDA, 2, false},
	0xAA: {"TAX", ModeImplied, addrImplied, execTAX, 2, false},
	0xAB: {"LAX", ModeImmediate, addrImmediate, execUnimplemented, 2, false},
	0xAC: {"LDY", ModeAbsolute, addrAbsolute, execLDY, 4, false},
	0xAD: {"LDA", ModeAbsolute, addrAbsolute, execLDA, 4, false},
	0xAE: {"LDX", ModeAbsolute, addrAbsolute, execLDX, 4, false},
	0xAF: {"LAX", ModeAbsolute, addrAbsolute, execLAX, 4, false},

	0xB0: {"BCS", ModeRelative, addrRelative, execBCS, 2, false},
	0xB1: {"LDA", ModeIndirectY, addrIndirectY, execLDA, 5, true},
	0xB2: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0xB3: {"LAX", ModeIndirectY, addrIndirectY, execLAX, 5, true},
	0xB4: {"LDY", ModeZeroPageX, addrZeroPageX, execLDY, 4, false},
	0xB5: {"LDA", ModeZeroPageX, addrZeroPageX, execLDA, 4, false},
	0xB6: {"LDX", ModeZeroPageY, addrZeroPageY, execLDX, 4, false},
	0xB7: {"LAX", ModeZeroPageY, addrZeroPageY, execLAX, 4, false},
	0xB8: {"CLV", ModeImplied, addrImplied, execCLV, 2, false},
	0xB9: {"LDA", ModeAbsoluteY, addrAbsoluteY, execLDA, 4, true},
	0xBA: {"TSX", ModeImplied, addrImplied, execTSX, 2, false},
	0xBB: {"LAS", ModeAbsoluteY, addrAbsoluteY, execUnimplemented, 4, true},
	0xBC: {"LDY", ModeAbsoluteX, addrAbsoluteX, execLDY, 4, true},
	0xBD: {"LDA", ModeAbsoluteX, addrAbsoluteX, execLDA, 4, true},
	0xBE: {"LDX", ModeAbsoluteY, addrAbsoluteY, execLDX, 4, true},
	0xBF: {"LAX", ModeAbsoluteY, addrAbsoluteY, execLAX, 4, true},

	0xC0: {"CPY", ModeImmediate, addrImmediate, execCPY, 2, false},
	0xC1: {"CMP", ModeIndirectX, addrIndirectX, execCMP, 6, false},
	0xC2: {"NOP", ModeImmediate, addrImmediate, execNOP, 2, false},
	0xC3: {"DCP", ModeIndirectX, addrIndirectX, execDCP, 8, false},
	0xC4: {"CPY", ModeZeroPage, addrZeroPage, execCPY, 3, false},
	0xC5: {"CMP", ModeZeroPage, addrZeroPage, execCMP, 3, false},
	0xC6: {"DEC", ModeZeroPage, addrZeroPage, execDEC, 5, false},
	0xC7: {"DCP", ModeZeroPage, addrZeroPage, execDCP, 5, false},
	0xC8: {"INY", ModeImplied, addrImplied, execINY, 2, false},
	0xC9: {"CMP", ModeImmediate, addrImmediate, execCMP, 2, false},
	0xCA: {"DEX", ModeImplied, addrImplied, execDEX, 2, false},
	0xCB: {"AXS", ModeImmediate, addrImmediate, execUnimplemented, 2, false},
	0xCC: {"CPY", ModeAbsolute, addrAbsolute, execCPY, 4, false},
	0xCD: {"CMP", ModeAbsolute, addrAbsolute, execCMP, 4, false},
	0xCE: {"DEC", ModeAbsolute, addrAbsolute, execDEC, 6, false},
	0xCF: {"DCP", ModeAbsolute, addrAbsolute, execDCP, 6, false},

	0xD0: {"BNE", ModeRelative, addrRelative, execBNE, 2, false},
	0xD1: {"CMP", ModeIndirectY, addrIndirectY, execCMP, 5, true},
	0xD2: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0xD3: {"DCP", ModeIndirectY, addrIndirectY, execDCP, 8, false},
	0xD4: {"NOP", ModeZeroPageX, addrZeroPageX, execNOP, 4, false},
	0xD5: {"CMP", ModeZeroPageX, addrZeroPageX, execCMP, 4, false},
	0xD6: {"DEC", ModeZeroPageX, addrZeroPageX, execDEC, 6, false},
	0xD7: {"DCP", ModeZeroPageX, addrZeroPageX, execDCP, 6, false},
	0xD8: {"CLD", ModeImplied, addrImplied, execCLD, 2, false},
	0xD9: {"CMP", ModeAbsoluteY, addrAbsoluteY, execCMP, 4, true},
	0xDA: {"NOP", ModeImplied, addrImplied, execNOP, 2, false},
	0xDB: {"DCP", ModeAbsoluteY, addrAbsoluteY, execDCP, 7, false},
	0xDC: {"NOP", ModeAbsoluteX, addrAbsoluteX, execNOP, 4, true},
	0xDD: {"CMP", ModeAbsoluteX, addrAbsoluteX, execCMP, 4, true},
	0xDE: {"DEC", ModeAbsoluteX, addrAbsoluteX, execDEC, 7, false},
	0xDF: {"DCP", ModeAbsoluteX, addrAbsoluteX, execDCP, 7, false},

	0xE0: {"CPX", ModeImmediate, addrImmediate, execCPX, 2, false},
	0xE1: {"SBC", ModeIndirectX, addrIndirectX, execSBC, 6, false},
	0xE2: {"NOP", ModeImmediate, addrImmediate, execNOP, 2, false},
	0xE3: {"ISB", ModeIndirectX, addrIndirectX, execISB, 8, false},
	0xE4: {"CPX", ModeZeroPage, addrZeroPage, execCPX, 3, false},
	0xE5: {"SBC", ModeZeroPage, addrZeroPage, execSBC, 3, false},
	0xE6: {"INC", ModeZeroPage, addrZeroPage, execINC, 5, false},
	0xE7: {"ISB", ModeZeroPage, addrZeroPage, execISB, 5, false},
	0xE8: {"INX", ModeImplied, addrImplied, execINX, 2, false},
	0xE9: {"SBC", ModeImmediate, addrImmediate, execSBC, 2, false},
	0xEA: {"NOP", ModeImplied, addrImplied, execNOP, 2, false},
	0xEB: {"SBC", ModeImmediate, addrImmediate, execSBC, 2, false},
	0xEC: {"CPX", ModeAbsolute, addrAbsolute, execCPX, 4, false},
	0xED: {"SBC", ModeAbsolute, addrAbsolute, execSBC, 4, false},
	0xEE: {"INC", ModeAbsolute, addrAbsolute, execINC, 6, false},
	0xEF: {"ISB", ModeAbsolute, addrAbsolute, execISB, 6, false},

	0xF0: {"BEQ", ModeRelative, addrRelative, execBEQ, 2, false},
	0xF1: {"SBC", ModeIndirectY, addrIndirectY, execSBC, 5, true},
	0xF2: {"JAM", ModeImplied, addrImplied, execJAM, 2, false},
	0xF3: {"ISB", ModeIndirectY, addrIndirectY, execISB, 8, false},
	0xF4: {"NOP", ModeZeroPageX, addrZeroPageX, execNOP, 4, false},
	0xF5: {"SBC", ModeZeroPageX, addrZeroPageX, execSBC, 4, false},
	0xF6: {"INC", ModeZeroPageX, addrZeroPageX, execINC, 6, false},
	0xF7: {"ISB", ModeZeroPageX, addrZeroPageX, execISB, 6, false},
	0xF8: {"SED", ModeImplied, addrImplied, execSED, 2, false},
	0xF9: {"SBC", ModeAbsoluteY, addrAbsoluteY, execSBC, 4, true},
	0xFA: {"NOP", ModeImplied, addrImplied, execNOP, 2, false},
	0xFB: {"ISB", ModeAbsoluteY, addrAbsoluteY, execISB, 7, false},
	0xFC: {"NOP", ModeAbsoluteX, addrAbsoluteX, execNOP, 4, true},
	0xFD: {"SBC", ModeAbsoluteX, addrAbsoluteX, execSBC, 4, true},
	0xFE: {"INC", ModeAbsoluteX, addrAbsoluteX, execINC, 7, false},
	0xFF: {"ISB", ModeAbsoluteX, addrAbsoluteX, execISB, 7, false},
}
