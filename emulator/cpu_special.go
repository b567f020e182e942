package emulator

import "log"

// OpSpecial dispatches SPECIAL (op 0x00) instructions on funct.
func (cpu *CPU) OpSpecial(instruction Instruction) {
	switch instruction.Funct() {
	case 0x00:
		cpu.OpSll(instruction)
	case 0x02:
		cpu.OpSrl(instruction)
	case 0x03:
		cpu.OpSra(instruction)
	case 0x04:
		cpu.OpSllv(instruction)
	case 0x06:
		cpu.OpSrlv(instruction)
	case 0x07:
		cpu.OpSrav(instruction)
	case 0x08:
		cpu.OpJr(instruction)
	case 0x09:
		cpu.OpJalr(instruction)
	case 0x0c:
		cpu.OpSyscall(instruction)
	case 0x0d:
		cpu.OpBreak(instruction)
	case 0x10:
		cpu.OpMfhi(instruction)
	case 0x11:
		cpu.OpMthi(instruction)
	case 0x12:
		cpu.OpMflo(instruction)
	case 0x13:
		cpu.OpMtlo(instruction)
	case 0x18:
		cpu.OpMult(instruction)
	case 0x19:
		cpu.OpMultu(instruction)
	case 0x1a:
		cpu.OpDiv(instruction)
	case 0x1b:
		cpu.OpDivu(instruction)
	case 0x20:
		cpu.OpAdd(instruction)
	case 0x21:
		cpu.OpAddu(instruction)
	case 0x22:
		cpu.OpSub(instruction)
	case 0x23:
		cpu.OpSubu(instruction)
	case 0x24:
		cpu.OpAnd(instruction)
	case 0x25:
		cpu.OpOr(instruction)
	case 0x26:
		cpu.OpXor(instruction)
	case 0x27:
		cpu.OpNor(instruction)
	case 0x2a:
		cpu.OpSlt(instruction)
	case 0x2b:
		cpu.OpSltu(instruction)
	default:
		log.Printf("cpu: illegal SPECIAL funct 0x%x at pc 0x%08x", instruction.Funct(), cpu.PC-4)
	}
}

// Shift Left Logical
func (cpu *CPU) OpSll(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rt())<<instruction.Shamt())
}

// Shift Right Logical
func (cpu *CPU) OpSrl(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rt())>>instruction.Shamt())
}

// Shift Right Arithmetic
func (cpu *CPU) OpSra(instruction Instruction) {
	v := int32(cpu.Reg(instruction.Rt())) >> instruction.Shamt()
	cpu.SetReg(instruction.Rd(), uint32(v))
}

// Shift Left Logical Variable
func (cpu *CPU) OpSllv(instruction Instruction) {
	shift := cpu.Reg(instruction.Rs()) & 0x1f
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rt())<<shift)
}

// Shift Right Logical Variable
func (cpu *CPU) OpSrlv(instruction Instruction) {
	shift := cpu.Reg(instruction.Rs()) & 0x1f
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rt())>>shift)
}

// Shift Right Arithmetic Variable
func (cpu *CPU) OpSrav(instruction Instruction) {
	shift := cpu.Reg(instruction.Rs()) & 0x1f
	v := int32(cpu.Reg(instruction.Rt())) >> shift
	cpu.SetReg(instruction.Rd(), uint32(v))
}

// Jump Register
func (cpu *CPU) OpJr(instruction Instruction) {
	cpu.NextPC = cpu.Reg(instruction.Rs())
}

// Jump And Link Register
func (cpu *CPU) OpJalr(instruction Instruction) {
	ra := cpu.NextPC
	cpu.NextPC = cpu.Reg(instruction.Rs())
	cpu.SetReg(instruction.Rd(), ra)
}

// System Call
func (cpu *CPU) OpSyscall(instruction Instruction) {
	cpu.trap(ExceptionSys, 0)
}

// Breakpoint
func (cpu *CPU) OpBreak(instruction Instruction) {
	cpu.trap(ExceptionBp, 0)
}

// Move From HI
func (cpu *CPU) OpMfhi(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.HI)
}

// Move To HI
func (cpu *CPU) OpMthi(instruction Instruction) {
	cpu.HI = cpu.Reg(instruction.Rs())
}

// Move From LO
func (cpu *CPU) OpMflo(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.LO)
}

// Move To LO
func (cpu *CPU) OpMtlo(instruction Instruction) {
	cpu.LO = cpu.Reg(instruction.Rs())
}

// Multiply (signed)
func (cpu *CPU) OpMult(instruction Instruction) {
	a := int64(int32(cpu.Reg(instruction.Rs())))
	b := int64(int32(cpu.Reg(instruction.Rt())))
	v := uint64(a * b)
	cpu.HI = uint32(v >> 32)
	cpu.LO = uint32(v)
}

// Multiply Unsigned
func (cpu *CPU) OpMultu(instruction Instruction) {
	a := uint64(cpu.Reg(instruction.Rs()))
	b := uint64(cpu.Reg(instruction.Rt()))
	v := a * b
	cpu.HI = uint32(v >> 32)
	cpu.LO = uint32(v)
}

// Divide (signed), with the LR33300's documented divide-by-zero and
// signed-overflow edge cases.
func (cpu *CPU) OpDiv(instruction Instruction) {
	n := int32(cpu.Reg(instruction.Rs()))
	d := int32(cpu.Reg(instruction.Rt()))

	switch {
	case d == 0:
		cpu.HI = uint32(n)
		if n < 0 {
			cpu.LO = 1
		} else {
			cpu.LO = 0xffffffff
		}
	case uint32(n) == 0x80000000 && d == -1:
		cpu.LO = 0x80000000
		cpu.HI = 0
	default:
		cpu.LO = uint32(n / d)
		cpu.HI = uint32(n % d)
	}
}

// Divide Unsigned
func (cpu *CPU) OpDivu(instruction Instruction) {
	n := cpu.Reg(instruction.Rs())
	d := cpu.Reg(instruction.Rt())

	if d == 0 {
		cpu.LO = 0xffffffff
		cpu.HI = n
		return
	}
	cpu.LO = n / d
	cpu.HI = n % d
}

// Add (signed, traps on overflow)
func (cpu *CPU) OpAdd(instruction Instruction) {
	s := int32(cpu.Reg(instruction.Rs()))
	t := int32(cpu.Reg(instruction.Rt()))

	result, err := add32Overflow(s, t)
	if err != nil {
		cpu.trap(ExceptionOvf, 0)
		return
	}
	cpu.SetReg(instruction.Rd(), uint32(result))
}

// Add Unsigned (wraps, never traps)
func (cpu *CPU) OpAddu(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rs())+cpu.Reg(instruction.Rt()))
}

// Subtract (signed, traps on overflow)
func (cpu *CPU) OpSub(instruction Instruction) {
	s := int32(cpu.Reg(instruction.Rs()))
	t := int32(cpu.Reg(instruction.Rt()))

	result, err := sub32Overflow(s, t)
	if err != nil {
		cpu.trap(ExceptionOvf, 0)
		return
	}
	cpu.SetReg(instruction.Rd(), uint32(result))
}

// Subtract Unsigned (wraps, never traps)
func (cpu *CPU) OpSubu(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rs())-cpu.Reg(instruction.Rt()))
}

// Bitwise And
func (cpu *CPU) OpAnd(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rs())&cpu.Reg(instruction.Rt()))
}

// Bitwise Or
func (cpu *CPU) OpOr(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rs())|cpu.Reg(instruction.Rt()))
}

// Bitwise Exclusive Or
func (cpu *CPU) OpXor(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), cpu.Reg(instruction.Rs())^cpu.Reg(instruction.Rt()))
}

// Bitwise Not Or
func (cpu *CPU) OpNor(instruction Instruction) {
	cpu.SetReg(instruction.Rd(), ^(cpu.Reg(instruction.Rs()) | cpu.Reg(instruction.Rt())))
}

// Set on Less Than (signed)
func (cpu *CPU) OpSlt(instruction Instruction) {
	v := oneIfTrue(int32(cpu.Reg(instruction.Rs())) < int32(cpu.Reg(instruction.Rt())))
	cpu.SetReg(instruction.Rd(), v)
}

// Set on Less Than Unsigned
func (cpu *CPU) OpSltu(instruction Instruction) {
	v := oneIfTrue(cpu.Reg(instruction.Rs()) < cpu.Reg(instruction.Rt()))
	cpu.SetReg(instruction.Rd(), v)
}
