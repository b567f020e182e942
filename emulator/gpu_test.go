package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGP0DrawRect(t *testing.T) {
	gpu := NewGPU()
	gpu.GP0(0x68000000 | 0x00112233) // color word, nonstandard r/g/b packing
	gpu.GP0(0x00050005)              // position (x=5, y=5)

	assert.Equal(t, AwaitingCommand, gpu.State)
	px := gpu.VRAM[vramIndex(5, 5)]
	// r = 0x33/8, g = 0x22/8, b = 0x11/8, packed (g<<5)|(b<<10)|r
	wantR := uint16(0x33 / 8)
	wantG := uint16(0x22 / 8)
	wantB := uint16(0x11 / 8)
	assert.Equal(t, (wantG<<5)|(wantB<<10)|wantR, px)
}

func TestGP0CPUToVRAMTransfer(t *testing.T) {
	gpu := NewGPU()
	gpu.GP0(0xa0000000)          // CPU->VRAM
	gpu.GP0(0x00000000)          // dest x0=0, y0=0
	gpu.GP0(0x00010002)          // size: w=2, h=1
	gpu.GP0(0xbbbbaaaa)          // one data word, two pixels

	assert.Equal(t, AwaitingCommand, gpu.State)
	assert.Equal(t, uint16(0xaaaa), gpu.VRAM[vramIndex(0, 0)])
	assert.Equal(t, uint16(0xbbbb), gpu.VRAM[vramIndex(1, 0)])
}

func TestGP0VRAMToCPUTransferAdvancesOnRead(t *testing.T) {
	gpu := NewGPU()
	gpu.VRAM[vramIndex(0, 0)] = 0x1111
	gpu.VRAM[vramIndex(1, 0)] = 0x2222

	gpu.GP0(0xc0000000) // VRAM->CPU
	gpu.GP0(0x00000000) // src x0=0, y0=0
	gpu.GP0(0x00010002) // size: w=2, h=1

	assert.Equal(t, TransferringData, gpu.State)
	// writing to GP0 mid-transfer must not advance it
	gpu.GP0(0xdeadbeef)
	assert.Equal(t, TransferringData, gpu.State)

	got := gpu.Read()
	assert.Equal(t, uint32(0x22221111), got)
	assert.Equal(t, AwaitingCommand, gpu.State)
}
