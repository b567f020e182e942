package emulator

// Indices of the COP0 registers given storage. Every other index is backed
// by the same array and behaves as a harmless scratch cell: writable and
// readable, but architecturally meaningless.
const (
	Cop0BadA  = 8
	Cop0SR    = 12
	Cop0Cause = 13
	Cop0EPC   = 14
)

// Coprocessor 0: System Control
type Cop0 struct {
	Regs [32]uint32
}

// Creates a new Cop0 instance
func NewCop0() *Cop0 {
	return &Cop0{}
}

func (cop *Cop0) SR() StatusRegister {
	return StatusRegister(cop.Regs[Cop0SR])
}

func (cop *Cop0) SetSR(sr uint32) {
	cop.Regs[Cop0SR] = sr
}

// MFC0 reads register `index`'s storage slot.
func (cop *Cop0) MFC0(index uint32) uint32 {
	return cop.Regs[index&0x1f]
}

// MTC0 writes `val` into register `index`'s storage slot.
func (cop *Cop0) MTC0(index, val uint32) {
	cop.Regs[index&0x1f] = val
}

// RFE pops the 3 entry interrupt/kernel-user mode stack inside SR.
func (cop *Cop0) RFE() {
	sr := cop.Regs[Cop0SR]
	sr = (sr &^ 0xf) | ((sr & 0x3c) >> 2)
	cop.Regs[Cop0SR] = sr
}

// Trap redirects control to the exception handler, updating EPC, SR, Cause
// and (for address errors) BadA. `pc` is the post-advance program counter,
// i.e. the address of the instruction *after* the one that trapped; Trap
// recovers the trapping instruction's address as `pc - 4`. Returns the
// address execution should resume at.
func (cop *Cop0) Trap(code Exception, pc, badVaddr uint32) uint32 {
	cop.Regs[Cop0EPC] = pc - 4

	sr := cop.Regs[Cop0SR]
	sr = (sr &^ 0x3f) | ((sr & 0x0f) << 2)
	cop.Regs[Cop0SR] = sr

	cause := cop.Regs[Cop0Cause]
	cause = (cause &^ 0xffff00ff) | (uint32(code) << 2)
	cop.Regs[Cop0Cause] = cause

	if code == ExceptionAdEL || code == ExceptionAdES {
		cop.Regs[Cop0BadA] = badVaddr
	}

	return cop.SR().ExceptionHandler()
}
