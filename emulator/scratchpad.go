package emulator

// 1kb scratchpad (fast RAM)
const SCRATCH_PAD_SIZE = 1024

type ScratchPad struct {
	Data [SCRATCH_PAD_SIZE]byte
}

// Returns a new ScratchPad instance, zero-initialized.
func NewScratchPad() *ScratchPad {
	return &ScratchPad{}
}

// Loads a value at `offset`
func (sp *ScratchPad) Load(offset uint32, size AccessSize) interface{} {
	var v uint32 = 0
	sizeI := uint32(size)

	for i := uint32(0); i < sizeI; i++ {
		v |= uint32(sp.Data[offset+i]) << (i * 8)
	}
	return accessSizeU32(size, v)
}

// Stores `val` into `offset`
func (sp *ScratchPad) Store(offset uint32, size AccessSize, val interface{}) {
	valU32 := accessSizeToU32(size, val)
	sizeI := uint32(size)

	for i := uint32(0); i < sizeI; i++ {
		sp.Data[offset+i] = byte(valU32 >> (i * 8))
	}
}

