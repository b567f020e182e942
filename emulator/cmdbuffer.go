package emulator

// Buffer holding multi-word fixed-length GP0 command parameters
type CommandBuffer struct {
	// The longest header handled by this core is 2 words (0xA0/0xC0's
	// destination + size, or 0x68's color + position)
	Buffer [2]uint32
	Len    uint8 // Number of words queued in the buffer
}

// Clears the command buffer
func (cmdbuf *CommandBuffer) Clear() {
	cmdbuf.Len = 0
}

// Pushes a word (32 bit unsigned integer) into the command buffer
func (cmdbuf *CommandBuffer) PushWord(word uint32) {
	cmdbuf.Buffer[cmdbuf.Len] = word
	cmdbuf.Len++
}

// Returns value at `index`
func (cmdbuf *CommandBuffer) Get(index uint8) uint32 {
	return cmdbuf.Buffer[index]
}