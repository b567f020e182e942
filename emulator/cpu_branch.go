package emulator

// branchIf sets next_pc to the branch target, relative to the post-advance
// pc, if `condition` holds.
func (cpu *CPU) branchIf(instruction Instruction, condition bool) {
	if condition {
		cpu.NextPC = cpu.PC + (instruction.ImmSE() << 2)
	}
}

// Jump
func (cpu *CPU) OpJ(instruction Instruction) {
	cpu.NextPC = (cpu.PC & 0xf0000000) | (instruction.Target() << 2)
}

// Jump And Link
func (cpu *CPU) OpJal(instruction Instruction) {
	ra := cpu.NextPC
	cpu.OpJ(instruction)
	cpu.SetReg(31, ra)
}

// Branch if Equal
func (cpu *CPU) OpBeq(instruction Instruction) {
	cpu.branchIf(instruction, cpu.Reg(instruction.Rs()) == cpu.Reg(instruction.Rt()))
}

// Branch if Not Equal
func (cpu *CPU) OpBne(instruction Instruction) {
	cpu.branchIf(instruction, cpu.Reg(instruction.Rs()) != cpu.Reg(instruction.Rt()))
}

// Branch if Less than or Equal to Zero
func (cpu *CPU) OpBlez(instruction Instruction) {
	cpu.branchIf(instruction, int32(cpu.Reg(instruction.Rs())) <= 0)
}

// Branch if Greater Than Zero
func (cpu *CPU) OpBgtz(instruction Instruction) {
	cpu.branchIf(instruction, int32(cpu.Reg(instruction.Rs())) > 0)
}

// Branch on Condition (BLTZ/BGEZ/BLTZAL/BGEZAL), PSX-specific: every value of
// `rt` is a valid encoding, there is no illegal-instruction path here.
func (cpu *CPU) OpBcond(instruction Instruction) {
	rt := instruction.Rt()

	if rt&0x10 != 0 {
		// link unconditionally, regardless of whether the branch is taken
		cpu.SetReg(31, cpu.NextPC)
	}

	v := cpu.Reg(instruction.Rs()) ^ (rt << 31)
	cpu.branchIf(instruction, int32(v) < 0)
}
