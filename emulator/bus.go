package emulator

import "log"

// Bus is the system interconnect: it owns main RAM, the scratchpad, the BIOS
// ROM and the GPU, and exposes a single typed access primitive for both
// reads and writes, decoding the physical address into one of the regions
// below.
type Bus struct {
	Ram        *RAM
	Scratchpad *ScratchPad
	Bios       *BIOS
	Gpu        *GPU
	Debugger   *Debugger // optional; nil if no debugger is attached
}

// Creates a new Bus instance owning the given peripherals.
func NewBus(bios *BIOS, ram *RAM, gpu *GPU) *Bus {
	return &Bus{
		Ram:        ram,
		Scratchpad: NewScratchPad(),
		Bios:       bios,
		Gpu:        gpu,
	}
}

// mask folds KUSEG/KSEG0/KSEG1 onto the same physical region map. KSEG2
// (cache control, 0xFFFE0000+) is deliberately aliased into the same 29 bit
// window; no code in this core drives cache control registers, so the
// alias is harmless.
func mask(vaddr uint32) uint32 {
	return vaddr & 0x1fffffff
}

// Load reads a `size`-wide value at virtual address `vaddr`, dispatching to
// the region that contains it.
func (bus *Bus) Load(vaddr uint32, size AccessSize) interface{} {
	if bus.Debugger != nil {
		bus.Debugger.OnMemoryRead(vaddr)
	}

	paddr := mask(vaddr)

	switch {
	case RangeRAM.Contains(paddr):
		return bus.Ram.Load(RangeRAM.Offset(paddr), size)
	case RangeScratchpad.Contains(paddr):
		return bus.Scratchpad.Load(RangeScratchpad.Offset(paddr), size)
	case RangeIO.Contains(paddr):
		return accessSizeU32(size, bus.loadIO(RangeIO.Offset(paddr)))
	case RangeBIOS.Contains(paddr):
		return bus.Bios.Load(RangeBIOS.Offset(paddr), size)
	default:
		log.Printf("bus: unhandled load at address 0x%08x", vaddr)
		return accessSizeU32(size, 0)
	}
}

// Store writes a `size`-wide value `val` to virtual address `vaddr`,
// dispatching to the region that contains it.
func (bus *Bus) Store(vaddr uint32, size AccessSize, val interface{}) {
	if bus.Debugger != nil {
		bus.Debugger.OnMemoryWrite(vaddr)
	}

	paddr := mask(vaddr)

	switch {
	case RangeRAM.Contains(paddr):
		bus.Ram.Store(RangeRAM.Offset(paddr), size, val)
	case RangeScratchpad.Contains(paddr):
		bus.Scratchpad.Store(RangeScratchpad.Offset(paddr), size, val)
	case RangeIO.Contains(paddr):
		bus.storeIO(RangeIO.Offset(paddr), accessSizeToU32(size, val))
	case RangeBIOS.Contains(paddr):
		// BIOS ROM is read-only; writes are silently dropped.
	default:
		log.Printf("bus: unhandled store at address 0x%08x", vaddr)
	}
}

// loadIO dispatches reads within the I/O page.
func (bus *Bus) loadIO(offset uint32) uint32 {
	switch offset {
	case IOGP0:
		return bus.Gpu.Read()
	case IOGP1:
		// Stubbed GPUSTAT value that satisfies BIOS startup detection.
		return 0x1ff00000
	default:
		log.Printf("bus: unhandled I/O load at offset 0x%x", offset)
		return 0
	}
}

// storeIO dispatches writes within the I/O page.
func (bus *Bus) storeIO(offset, val uint32) {
	switch offset {
	case IOGP0:
		bus.Gpu.GP0(val)
	case IOGP1:
		bus.Gpu.GP1(val)
	default:
		log.Printf("bus: unhandled I/O store at offset 0x%x, value 0x%08x", offset, val)
	}
}

// Load32 reads a 32 bit little endian value at `vaddr`.
func (bus *Bus) Load32(vaddr uint32) uint32 {
	return bus.Load(vaddr, ACCESS_WORD).(uint32)
}

// Load16 reads a 16 bit little endian value at `vaddr`.
func (bus *Bus) Load16(vaddr uint32) uint16 {
	return bus.Load(vaddr, ACCESS_HALFWORD).(uint16)
}

// Load8 reads a byte at `vaddr`.
func (bus *Bus) Load8(vaddr uint32) byte {
	return bus.Load(vaddr, ACCESS_BYTE).(byte)
}

// Store32 writes a 32 bit little endian value `val` to `vaddr`.
func (bus *Bus) Store32(vaddr, val uint32) {
	bus.Store(vaddr, ACCESS_WORD, val)
}

// Store16 writes a 16 bit little endian value `val` to `vaddr`.
func (bus *Bus) Store16(vaddr uint32, val uint16) {
	bus.Store(vaddr, ACCESS_HALFWORD, val)
}

// Store8 writes a byte `val` to `vaddr`.
func (bus *Bus) Store8(vaddr uint32, val byte) {
	bus.Store(vaddr, ACCESS_BYTE, val)
}
