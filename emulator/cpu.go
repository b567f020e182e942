package emulator

import "log"

const ResetPC uint32 = 0xbfc00000

// LoadDelay models the one-slot MIPS-I load-delay pipeline: a load's target
// register is not visible until the instruction after the one following the
// load itself.
type LoadDelay struct {
	RegIndex        uint32
	Value           uint32
	InstrsRemaining int
}

// CPU is the LR33300 interpreter: 32 general purpose registers, the HI/LO
// multiply/divide result registers, a PC/next-PC pair modeling the
// branch-delay slot, one pending load-delay slot, COP0, and a back-reference
// to the bus it fetches and accesses memory through.
type CPU struct {
	GPR         [32]uint32
	PC, NextPC  uint32
	HI, LO      uint32
	Instruction Instruction
	LoadDelay   *LoadDelay

	Cop0 *Cop0
	Bus  *Bus

	Debugger *Debugger // optional; nil if no debugger is attached
}

// Creates a new CPU state, already reset.
func NewCPU(bus *Bus) *CPU {
	cpu := &CPU{Bus: bus, Cop0: NewCop0()}
	cpu.Reset()
	return cpu
}

// Reset zeroes all registers, sets pc to the BIOS entry point, clears the
// load-delay slot and prefetches the instruction at pc.
func (cpu *CPU) Reset() {
	cpu.GPR = [32]uint32{}
	cpu.HI, cpu.LO = 0, 0
	cpu.LoadDelay = nil
	cpu.Cop0 = NewCop0()
	cpu.PC = ResetPC
	cpu.NextPC = cpu.PC + 4
	cpu.Instruction = Instruction(cpu.Bus.Load32(cpu.PC))
}

// Returns the register value at `index`. The first register is always zero.
func (cpu *CPU) Reg(index uint32) uint32 {
	return cpu.GPR[index]
}

// Sets the value at the `index` register, then restores the zero invariant
// on register 0.
func (cpu *CPU) SetReg(index, val uint32) {
	cpu.GPR[index] = val
	cpu.GPR[0] = 0
}

// scheduleLoad arms the load-delay slot for a load that just issued. The
// value becomes visible two steps from now: the instruction immediately
// following the load still observes the old value.
func (cpu *CPU) scheduleLoad(regIndex, value uint32) {
	cpu.LoadDelay = &LoadDelay{RegIndex: regIndex, Value: value, InstrsRemaining: 1}
}

// trap raises an exception for the instruction currently being dispatched.
// cpu.PC has already been advanced past it (step 4 of Step), so Cop0.Trap
// recovers the faulting address as pc-4.
func (cpu *CPU) trap(code Exception, badVaddr uint32) {
	cpu.PC = cpu.Cop0.Trap(code, cpu.PC, badVaddr)
	cpu.NextPC = cpu.PC + 4
}

// Step performs one full fetch/dispatch cycle: retire any pending load
// delay, check alignment, fetch, advance pc/next_pc, dispatch, refetch for
// the debugger, and enforce the r0-is-always-zero invariant.
func (cpu *CPU) Step() {
	// 1. load-delay retire
	if cpu.LoadDelay != nil {
		if cpu.LoadDelay.InstrsRemaining == 0 {
			cpu.SetReg(cpu.LoadDelay.RegIndex, cpu.LoadDelay.Value)
			cpu.LoadDelay = nil
		} else {
			cpu.LoadDelay.InstrsRemaining--
		}
	}

	// 2. alignment check. The fault is raised before pc has been advanced
	// for this cycle, so the handler address is fixed up here instead of
	// going through cpu.trap (which assumes a post-advance pc).
	if cpu.PC&3 != 0 {
		cpu.PC = cpu.Cop0.Trap(ExceptionAdEL, cpu.PC+4, cpu.PC)
		cpu.NextPC = cpu.PC + 4
		cpu.Instruction = Instruction(cpu.Bus.Load32(cpu.PC))
		cpu.GPR[0] = 0
		cpu.runDebuggerHook()
		return
	}

	// 3. fetch
	cpu.Instruction = Instruction(cpu.Bus.Load32(cpu.PC))

	// 4. advance
	cpu.PC = cpu.NextPC
	cpu.NextPC += 4

	// 5. dispatch
	cpu.dispatch(cpu.Instruction)

	// 6. refetch, so debuggers always see the next instruction on inspection
	cpu.Instruction = Instruction(cpu.Bus.Load32(cpu.PC))

	// 7. zero invariant
	cpu.GPR[0] = 0

	// 8. debugger hook
	cpu.runDebuggerHook()
}

func (cpu *CPU) runDebuggerHook() {
	if cpu.Debugger != nil {
		cpu.Debugger.OnStep(cpu.PC, uint32(cpu.Instruction))
	}
}

func (cpu *CPU) dispatch(instruction Instruction) {
	switch instruction.Op() {
	case 0x00:
		cpu.OpSpecial(instruction)
	case 0x01:
		cpu.OpBcond(instruction)
	case 0x02:
		cpu.OpJ(instruction)
	case 0x03:
		cpu.OpJal(instruction)
	case 0x04:
		cpu.OpBeq(instruction)
	case 0x05:
		cpu.OpBne(instruction)
	case 0x06:
		cpu.OpBlez(instruction)
	case 0x07:
		cpu.OpBgtz(instruction)
	case 0x08:
		cpu.OpAddi(instruction)
	case 0x09:
		cpu.OpAddiu(instruction)
	case 0x0a:
		cpu.OpSlti(instruction)
	case 0x0b:
		cpu.OpSltiu(instruction)
	case 0x0c:
		cpu.OpAndi(instruction)
	case 0x0d:
		cpu.OpOri(instruction)
	case 0x0e:
		cpu.OpXori(instruction)
	case 0x0f:
		cpu.OpLui(instruction)
	case 0x10:
		cpu.OpCop0(instruction)
	case 0x20:
		cpu.OpLb(instruction)
	case 0x21:
		cpu.OpLh(instruction)
	case 0x22:
		cpu.OpLwl(instruction)
	case 0x23:
		cpu.OpLw(instruction)
	case 0x24:
		cpu.OpLbu(instruction)
	case 0x25:
		cpu.OpLhu(instruction)
	case 0x26:
		cpu.OpLwr(instruction)
	case 0x28:
		cpu.OpSb(instruction)
	case 0x29:
		cpu.OpSh(instruction)
	case 0x2a:
		cpu.OpSwl(instruction)
	case 0x2b:
		cpu.OpSw(instruction)
	case 0x2e:
		cpu.OpSwr(instruction)
	default:
		log.Printf("cpu: illegal instruction 0x%08x at pc 0x%08x", uint32(instruction), cpu.PC-4)
	}
}

// Load Upper Immediate
func (cpu *CPU) OpLui(instruction Instruction) {
	cpu.SetReg(instruction.Rt(), instruction.Imm()<<16)
}

// Add Immediate (signed, traps on overflow)
func (cpu *CPU) OpAddi(instruction Instruction) {
	s := int32(cpu.Reg(instruction.Rs()))
	imm := int32(instruction.ImmSE())

	result, err := add32Overflow(s, imm)
	if err != nil {
		cpu.trap(ExceptionOvf, 0)
		return
	}
	cpu.SetReg(instruction.Rt(), uint32(result))
}

// Add Immediate Unsigned (wraps, never traps)
func (cpu *CPU) OpAddiu(instruction Instruction) {
	cpu.SetReg(instruction.Rt(), cpu.Reg(instruction.Rs())+instruction.ImmSE())
}

// Set on Less Than Immediate (signed)
func (cpu *CPU) OpSlti(instruction Instruction) {
	v := oneIfTrue(int32(cpu.Reg(instruction.Rs())) < int32(instruction.ImmSE()))
	cpu.SetReg(instruction.Rt(), v)
}

// Set on Less Than Immediate Unsigned (immediate is sign-extended, then
// compared unsigned)
func (cpu *CPU) OpSltiu(instruction Instruction) {
	v := oneIfTrue(cpu.Reg(instruction.Rs()) < instruction.ImmSE())
	cpu.SetReg(instruction.Rt(), v)
}

// Bitwise And Immediate
func (cpu *CPU) OpAndi(instruction Instruction) {
	cpu.SetReg(instruction.Rt(), cpu.Reg(instruction.Rs())&instruction.Imm())
}

// Bitwise Or Immediate
func (cpu *CPU) OpOri(instruction Instruction) {
	cpu.SetReg(instruction.Rt(), cpu.Reg(instruction.Rs())|instruction.Imm())
}

// Bitwise Exclusive Or Immediate
func (cpu *CPU) OpXori(instruction Instruction) {
	cpu.SetReg(instruction.Rt(), cpu.Reg(instruction.Rs())^instruction.Imm())
}
