package emulator

import "log"

// OpCop0 dispatches COP0 (op 0x10) instructions on rs, and, for anything
// that isn't MFC0/MTC0, on funct.
func (cpu *CPU) OpCop0(instruction Instruction) {
	switch instruction.Rs() {
	case 0x00:
		cpu.OpMfc0(instruction)
	case 0x04:
		cpu.OpMtc0(instruction)
	default:
		switch instruction.Funct() {
		case 0x10:
			cpu.OpRfe(instruction)
		default:
			log.Printf("cpu: illegal COP0 opcode 0x%08x at pc 0x%08x", uint32(instruction), cpu.PC-4)
		}
	}
}

// Move From Coprocessor 0
func (cpu *CPU) OpMfc0(instruction Instruction) {
	cpu.SetReg(instruction.Rt(), cpu.Cop0.MFC0(instruction.Rd()))
}

// Move To Coprocessor 0
func (cpu *CPU) OpMtc0(instruction Instruction) {
	cpu.Cop0.MTC0(instruction.Rd(), cpu.Reg(instruction.Rt()))
}

// Restore From Exception
func (cpu *CPU) OpRfe(instruction Instruction) {
	cpu.Cop0.RFE()
}
