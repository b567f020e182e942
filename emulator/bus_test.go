package emulator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	bios, err := LoadBIOS(bytes.NewReader(make([]byte, BIOS_SIZE)))
	if err != nil {
		t.Fatalf("loading empty bios: %v", err)
	}
	return NewBus(bios, NewRAM(), NewGPU())
}

func TestBusRAMRoundTrip(t *testing.T) {
	bus := newTestBus(t)
	bus.Store32(0x00001000, 0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), bus.Load32(0x00001000))
	// the same physical address through KSEG0/KSEG1 mirrors
	assert.Equal(t, uint32(0xdeadbeef), bus.Load32(0x80001000))
	assert.Equal(t, uint32(0xdeadbeef), bus.Load32(0xa0001000))
}

func TestBusScratchpadRoundTrip(t *testing.T) {
	bus := newTestBus(t)
	bus.Store8(0x1f800010, 0x42)
	assert.Equal(t, byte(0x42), bus.Load8(0x1f800010))
}

func TestBusGP0RoundTripsThroughGPU(t *testing.T) {
	bus := newTestBus(t)
	bus.Store32(0x1f801810, 0x68000000|0x00ff0000) // GP0: draw rect, color word
	bus.Store32(0x1f801810, 0x00000000)            // position x=0, y=0
	assert.Equal(t, AwaitingCommand, bus.Gpu.State)
}

func TestBusBIOSWritesAreDropped(t *testing.T) {
	bus := newTestBus(t)
	before := bus.Load32(0xbfc00000)
	bus.Store32(0xbfc00000, 0xffffffff)
	assert.Equal(t, before, bus.Load32(0xbfc00000))
}

func TestBusDebuggerHooksFire(t *testing.T) {
	bus := newTestBus(t)
	debugger := NewDebugger()
	debugger.AddWriteWatchpoint(0x1000)
	bus.Debugger = debugger
	bus.Store32(0x1000, 1) // exercised for side effects (log output); must not panic
}
