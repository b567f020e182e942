package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCop0TrapShiftsSRModeStack(t *testing.T) {
	cop := NewCop0()
	cop.SetSR(0x3f) // IEc=KUc=IEp=KUp=IEo=KUo=1, so the shift is observable

	handler := cop.Trap(ExceptionSys, 0x1000, 0)

	assert.Equal(t, uint32(0xffc), cop.Regs[Cop0EPC])
	assert.Equal(t, uint32(0x80000080), handler)
	// (0x3f & 0x0f) << 2: the current and previous pairs move up one level
	assert.Equal(t, uint32(0x3c), cop.Regs[Cop0SR]&0x3f)
	sr := cop.SR()
	assert.True(t, sr.CacheIsolated() == false)
}

func TestCop0TrapUsesBootHandlerWhenBEVSet(t *testing.T) {
	cop := NewCop0()
	cop.SetSR(1 << 22)
	handler := cop.Trap(ExceptionAdEL, 0x80, 0x4)
	assert.Equal(t, uint32(0xbfc00180), handler)
	assert.Equal(t, uint32(0x4), cop.Regs[Cop0BadA])
}

func TestCop0RFERestoresModeStack(t *testing.T) {
	cop := NewCop0()
	// IEp=KUp=IEo=KUo=1, IEc=KUc=0: bits [5:0] = 0b111100
	cop.SetSR(0x3c)
	cop.RFE()
	// the previous (bits [3:2]) and old (bits [5:4]) pairs shift down into
	// current and previous: new bits [3:0] = old bits [5:2]
	assert.Equal(t, uint32(0xf), cop.Regs[Cop0SR]&0xf)
	// bits [5:4] (the old pair) are left untouched by RFE
	assert.Equal(t, uint32(0x3c)&0x30, cop.Regs[Cop0SR]&0x30)
}

func TestCop0MFC0MTC0RoundTrip(t *testing.T) {
	cop := NewCop0()
	cop.MTC0(Cop0Cause, 0xabcd1234)
	assert.Equal(t, uint32(0xabcd1234), cop.MFC0(Cop0Cause))
}
