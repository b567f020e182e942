package emulator

const (
	RAM_ALLOC_SIZE = 2 * 1024 * 1024 // Main PlayStation RAM: 2MB
)

type RAM struct {
	Data [RAM_ALLOC_SIZE]byte // RAM buffer
}

// Creates a new RAM instance, zero-initialized.
func NewRAM() *RAM {
	return &RAM{}
}

// Loads a value at `offset`
func (ram *RAM) Load(offset uint32, size AccessSize) interface{} {
	var v uint32 = 0
	sizeI := uint32(size)
	offset &= 0x1fffff

	for i := uint32(0); i < sizeI; i++ {
		v |= uint32(ram.Data[offset+i]) << (i * 8)
	}
	return accessSizeU32(size, v)
}

// Stores `val` into `offset`
func (ram *RAM) Store(offset uint32, size AccessSize, val interface{}) {
	valU32 := accessSizeToU32(size, val)
	sizeI := uint32(size)
	offset &= 0x1fffff

	for i := uint32(0); i < sizeI; i++ {
		ram.Data[offset+i] = byte(valU32 >> (i * 8))
	}
}

