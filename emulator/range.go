package emulator

// Region ranges the bus dispatches on, keyed on the physical address (after
// masking off the KUSEG/KSEG0/KSEG1 high bits).
var (
	RangeRAM        = NewRange(0x00000000, RAM_ALLOC_SIZE)
	RangeScratchpad = NewRange(0x1f800000, SCRATCH_PAD_SIZE)
	RangeIO         = NewRange(0x1f801000, 0x1000)
	RangeBIOS       = NewRange(0x1fc00000, BIOS_SIZE)
)

// I/O page offsets handled by the bus (relative to RangeIO.Start).
const (
	IOGP0 = 0x810 // GPU GP0 command/data port
	IOGP1 = 0x814 // GPU GP1 display control port
)

type Range struct {
	Start  uint32 // Start address
	Length uint32 // Length of the mapping
}

func NewRange(start uint32, length uint32) Range {
	return Range{Start: start, Length: length}
}

// Returns whether `addr` is located inside this range
func (r *Range) Contains(addr uint32) bool {
	return addr >= r.Start && addr < r.Start+r.Length
}

// Returns the offset between `addr` and the `Start` of the range.
// Does not check if the range contains the address, so if `addr`
// is smaller than `Start`, there will be an overflow
func (r *Range) Offset(addr uint32) uint32 {
	return addr - r.Start
}
