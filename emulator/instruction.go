package emulator

// Instruction is a raw 32 bit MIPS-I opcode with named bitfield accessors.
// Named accessors are used instead of a bitfield struct so the decode has no
// dependency on platform-specific struct layout.
type Instruction uint32

// Op returns bits [31:26], the primary opcode.
func (i Instruction) Op() uint32 {
	return uint32(i) >> 26
}

// Funct returns bits [5:0], the SPECIAL/COP0 secondary opcode.
func (i Instruction) Funct() uint32 {
	return uint32(i) & 0x3f
}

// Rs returns the register index in bits [25:21].
func (i Instruction) Rs() uint32 {
	return (uint32(i) >> 21) & 0x1f
}

// Rt returns the register index in bits [20:16].
func (i Instruction) Rt() uint32 {
	return (uint32(i) >> 16) & 0x1f
}

// Rd returns the register index in bits [15:11].
func (i Instruction) Rd() uint32 {
	return (uint32(i) >> 11) & 0x1f
}

// Shamt returns the shift amount in bits [10:6].
func (i Instruction) Shamt() uint32 {
	return (uint32(i) >> 6) & 0x1f
}

// Imm returns the zero-extended 16 bit immediate in bits [15:0].
func (i Instruction) Imm() uint32 {
	return uint32(i) & 0xffff
}

// ImmSE returns the 16 bit immediate in bits [15:0], sign-extended to 32 bits.
func (i Instruction) ImmSE() uint32 {
	return uint32(int32(int16(uint32(i) & 0xffff)))
}

// Target returns the 26 bit jump target in bits [25:0].
func (i Instruction) Target() uint32 {
	return uint32(i) & 0x3ffffff
}
