package emulator

import "log"

// VRAM dimensions, in halfwords.
const (
	VRAMWidth  = 1024
	VRAMHeight = 512
)

// GP0State is the phase of the GP0 command port's packet parser.
type GP0State int

const (
	AwaitingCommand     GP0State = iota // idle, top byte of the next packet selects a command
	ReceivingParameters                 // collecting a fixed-size command header
	ReceivingData                       // CPU->VRAM block transfer, consuming data words
	TransferringData                    // VRAM->CPU block transfer, producing data words on read
)

// blockCursor tracks the write/read position of an in-progress VRAM block
// transfer as plain state, rather than as captured closures.
type blockCursor struct {
	X, Y, X0, XMax uint32
}

// GPU is the command-driven front end of the graphics processor: a VRAM
// array and the GP0 port's packet state machine. GP1 (display control) is a
// no-op in this core.
type GPU struct {
	VRAM [VRAMWidth * VRAMHeight]uint16

	State          GP0State
	Cmd            CommandBuffer
	RemainingWords uint32
	ActiveCommand  byte
	Cursor         blockCursor
	GPURead        uint32
}

// Creates a new GPU instance. VRAM starts zeroed and the command port starts
// in AwaitingCommand.
func NewGPU() *GPU {
	return &GPU{}
}

func vramIndex(x, y uint32) uint32 {
	return (y&(VRAMHeight-1))*VRAMWidth + (x & (VRAMWidth - 1))
}

// GP0 handles a 32 bit packet written to the GP0 command/data port.
func (gpu *GPU) GP0(val uint32) {
	switch gpu.State {
	case AwaitingCommand:
		gpu.beginCommand(val)
	case ReceivingParameters:
		gpu.Cmd.PushWord(val)
		gpu.RemainingWords--
		if gpu.RemainingWords == 0 {
			gpu.finishParameters()
		}
	case ReceivingData:
		gpu.writeBlockWord(val)
	case TransferringData:
		log.Printf("gpu: unexpected GP0 write 0x%08x while transferring VRAM to CPU", val)
	}
}

func (gpu *GPU) beginCommand(val uint32) {
	op := byte(val >> 24)

	switch op {
	case 0x00:
		// NOP
	case 0x68:
		gpu.Cmd.Clear()
		gpu.Cmd.PushWord(val & 0x00ffffff)
		gpu.ActiveCommand = op
		gpu.RemainingWords = 1
		gpu.State = ReceivingParameters
	case 0xa0, 0xc0:
		gpu.Cmd.Clear()
		gpu.ActiveCommand = op
		gpu.RemainingWords = 2
		gpu.State = ReceivingParameters
	default:
		log.Printf("gpu: ignoring unknown GP0 command 0x%02x", op)
	}
}

// finishParameters runs once a command's full header has arrived, either
// finalizing it (0x68) or starting its data phase (0xA0/0xC0).
func (gpu *GPU) finishParameters() {
	switch gpu.ActiveCommand {
	case 0x68:
		gpu.drawRect(gpu.Cmd.Get(0), gpu.Cmd.Get(1))
		gpu.resetGP0()
	case 0xa0, 0xc0:
		dest := gpu.Cmd.Get(0)
		size := gpu.Cmd.Get(1)

		x0 := dest & 0x3ff
		y0 := (dest >> 16) & 0x1ff
		rawW := size & 0xffff
		rawH := (size >> 16) & 0xffff
		w := ((rawW - 1) & 0x3ff) + 1
		h := ((rawH - 1) & 0x1ff) + 1

		gpu.Cursor = blockCursor{X: x0, Y: y0, X0: x0, XMax: x0 + w}
		gpu.RemainingWords = (w * h) / 2

		if gpu.ActiveCommand == 0xa0 {
			gpu.State = ReceivingData
		} else {
			gpu.State = TransferringData
		}
		if gpu.RemainingWords == 0 {
			gpu.resetGP0()
		}
	}
}

// drawRect implements GP0(0x68): a 1x1 monochrome opaque rectangle.
func (gpu *GPU) drawRect(colorWord, posWord uint32) {
	r := uint16((colorWord & 0xff) / 8)
	g := uint16(((colorWord >> 8) & 0xff) / 8)
	b := uint16(((colorWord >> 16) & 0xff) / 8)
	// Deliberately nonstandard layout (g in [9:5], b in [14:10], r in
	// [4:0]); disagrees with PSX BGR555, kept for bit-equivalence with
	// software that depends on this quirk.
	pixel := (g << 5) | (b << 10) | r

	x := posWord & 0xffff
	y := (posWord >> 16) & 0xffff
	gpu.VRAM[vramIndex(x, y)] = pixel
}

// writeBlockWord consumes one data word of a CPU->VRAM transfer (0xA0),
// unpacking it into two pixels written left-to-right with row wraparound.
func (gpu *GPU) writeBlockWord(data uint32) {
	if gpu.RemainingWords == 0 {
		gpu.resetGP0()
		return
	}

	gpu.VRAM[vramIndex(gpu.Cursor.X, gpu.Cursor.Y)] = uint16(data)
	gpu.advanceCursor()
	gpu.VRAM[vramIndex(gpu.Cursor.X, gpu.Cursor.Y)] = uint16(data >> 16)
	gpu.advanceCursor()

	gpu.RemainingWords--
	if gpu.RemainingWords == 0 {
		gpu.resetGP0()
	}
}

// popTransferPixelPair produces the next data word of a VRAM->CPU transfer
// (0xC0) into gpuread. Real hardware advances the transfer on each read of
// the GP0 port rather than on a write.
func (gpu *GPU) popTransferPixelPair() uint32 {
	if gpu.RemainingWords == 0 {
		return gpu.GPURead
	}

	p0 := gpu.VRAM[vramIndex(gpu.Cursor.X, gpu.Cursor.Y)]
	gpu.advanceCursor()
	p1 := gpu.VRAM[vramIndex(gpu.Cursor.X, gpu.Cursor.Y)]
	gpu.advanceCursor()

	gpu.GPURead = uint32(p1)<<16 | uint32(p0)
	gpu.RemainingWords--
	if gpu.RemainingWords == 0 {
		gpu.resetGP0()
	}
	return gpu.GPURead
}

func (gpu *GPU) advanceCursor() {
	gpu.Cursor.X++
	if gpu.Cursor.X >= gpu.Cursor.XMax {
		gpu.Cursor.Y++
		gpu.Cursor.X = gpu.Cursor.X0
	}
}

func (gpu *GPU) resetGP0() {
	gpu.State = AwaitingCommand
	gpu.Cmd.Clear()
	gpu.RemainingWords = 0
	gpu.ActiveCommand = 0
	gpu.Cursor = blockCursor{}
}

// GP1 handles a 32 bit packet written to the GP1 display-control port.
// Display control is a no-op in this core.
func (gpu *GPU) GP1(val uint32) {}

// Read returns the value of the GPUREAD register. While a VRAM->CPU
// transfer is in progress, each read advances it by one pixel pair.
func (gpu *GPU) Read() uint32 {
	if gpu.State == TransferringData {
		return gpu.popTransferPixelPair()
	}
	return gpu.GPURead
}
