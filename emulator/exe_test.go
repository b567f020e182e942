package emulator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildExeBytes constructs a minimal PS-X EXE image: an 0x800 byte header
// with the four fields this core reads, followed by the payload.
func buildExeBytes(initialPC, dest uint32, payload []byte) []byte {
	header := make([]byte, ExeHeaderSize)
	putWord := func(offset int, v uint32) {
		header[offset] = byte(v)
		header[offset+1] = byte(v >> 8)
		header[offset+2] = byte(v >> 16)
		header[offset+3] = byte(v >> 24)
	}
	putWord(0x10, initialPC)
	putWord(0x14, 0)
	putWord(0x18, dest)
	putWord(0x1c, uint32(len(payload)))
	return append(header, payload...)
}

func TestLoadAndInjectEXE(t *testing.T) {
	payload := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00} // two NOP words
	data := buildExeBytes(0x80010000, 0x80010000, payload)

	exe, err := LoadEXE(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("loading exe: %v", err)
	}
	assert.Equal(t, uint32(0x80010000), exe.InitialPC)
	assert.Equal(t, uint32(0x80010000), exe.Dest)
	assert.Equal(t, uint32(8), exe.Size)

	bios, err := LoadBIOS(bytes.NewReader(make([]byte, BIOS_SIZE)))
	if err != nil {
		t.Fatalf("loading empty bios: %v", err)
	}
	bus := NewBus(bios, NewRAM(), NewGPU())
	cpu := NewCPU(bus)
	cpu.PC = InjectPC

	exe.Inject(cpu)

	assert.Equal(t, uint32(0x80010000), cpu.PC)
	assert.Equal(t, uint32(0x80010004), cpu.NextPC)
	assert.Equal(t, payload, bus.Ram.Data[0x10000:0x10008])
}
