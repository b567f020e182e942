package emulator

import (
	"encoding/binary"
	"fmt"
	"log"
)

// TraceEntry is one (pc, instruction) pair as recorded in the debugger's
// trace ring at the end of a step: the address and opcode of the next
// instruction to execute.
type TraceEntry struct {
	PC          uint32
	Instruction uint32
}

const traceEntrySize = 8 // bytes per TraceEntry once packed into the ring

// Debugger owns breakpoint/watchpoint address lists and a bounded trace of
// the (pc, instruction) pairs seen at the end of recent steps. It is pure observability: it
// never halts the CPU or alters control flow. Pausing/resuming the step
// loop is the host's responsibility.
type Debugger struct {
	Breakpoints      []uint32 // All breakpoint addresses
	ReadWatchpoints  []uint32 // All read watchpoints
	WriteWatchpoints []uint32 // All write watchpoints

	// Trace reuses the hardware command FIFO's fixed 16 byte ring as the
	// backing store for the last couple of recorded (pc, instruction)
	// pairs, 8 bytes each.
	Trace *FIFO
}

func NewDebugger() *Debugger {
	return &Debugger{Trace: NewFIFO()}
}

// Adds a breakpoint when the instruction at `addr` is about to be executed
func (debugger *Debugger) AddBreakpoint(addr uint32) {
	// check if that breakpoint already exists
	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == addr {
			return
		}
	}
	debugger.Breakpoints = append(debugger.Breakpoints, addr)
}

// Deletes a breakpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteBreakpoint(addr uint32) {
	for idx, breakpoint := range debugger.Breakpoints {
		if breakpoint == addr {
			// remove this breakpoint
			debugger.Breakpoints = append(debugger.Breakpoints[:idx], debugger.Breakpoints[idx+1:]...)
			return
		}
	}
}

// Adds a memory read watchpoint for `addr`
func (debugger *Debugger) AddReadWatchpoint(addr uint32) {
	for _, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			return
		}
	}
	debugger.ReadWatchpoints = append(debugger.ReadWatchpoints, addr)
}

// Adds a memory write watchpoint for `addr`
func (debugger *Debugger) AddWriteWatchpoint(addr uint32) {
	for _, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			return
		}
	}
	debugger.WriteWatchpoints = append(debugger.WriteWatchpoints, addr)
}

// Deletes a memory read watchpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteReadWatchpoint(addr uint32) {
	for idx, breakpoint := range debugger.ReadWatchpoints {
		if breakpoint == addr {
			debugger.ReadWatchpoints = append(
				debugger.ReadWatchpoints[:idx],
				debugger.ReadWatchpoints[idx+1:]...,
			)
			return
		}
	}
}

// Deletes a memory write watchpoint at `addr`. Does nothing if it doesn't exist
func (debugger *Debugger) DeleteWriteWatchpoint(addr uint32) {
	for idx, breakpoint := range debugger.WriteWatchpoints {
		if breakpoint == addr {
			debugger.WriteWatchpoints = append(
				debugger.WriteWatchpoints[:idx],
				debugger.WriteWatchpoints[idx+1:]...,
			)
			return
		}
	}
}

// OnStep is called by CPU.Step() at the very end of every step, after the
// zero-invariant. It records the trace entry and checks breakpoints.
func (debugger *Debugger) OnStep(pc uint32, instruction uint32) {
	// drop the oldest entry once the ring is full, so the 5-bit pointers
	// never wrap into reporting an empty ring
	if debugger.Trace.Length() >= uint8(len(debugger.Trace.Buffer)) {
		debugger.Trace.ReadPtr = (debugger.Trace.ReadPtr + traceEntrySize) & 0x1f
	}

	var b [traceEntrySize]byte
	binary.LittleEndian.PutUint32(b[0:4], pc)
	binary.LittleEndian.PutUint32(b[4:8], instruction)
	debugger.Trace.PushSlice(b[:])

	for _, breakpoint := range debugger.Breakpoints {
		if breakpoint == pc {
			log.Printf("debugger: hit breakpoint 0x%08x, %s", pc, debugger.Dump())
			return
		}
	}
}

// Called by the bus when it's about to read a value from memory
func (debugger *Debugger) OnMemoryRead(addr uint32) {
	for _, watchpoint := range debugger.ReadWatchpoints {
		if watchpoint == addr {
			log.Printf("debugger: read watchpoint triggered at 0x%08x", addr)
			return
		}
	}
}

// Called by the bus when it's about to write a value to memory
func (debugger *Debugger) OnMemoryWrite(addr uint32) {
	for _, watchpoint := range debugger.WriteWatchpoints {
		if watchpoint == addr {
			log.Printf("debugger: write watchpoint triggered at 0x%08x", addr)
			return
		}
	}
}

// Dump formats the debugger's trace ring as a string of recently recorded
// (pc, instruction) pairs, oldest first, for printing on exit. Alongside the
// raw opcode, it names the rs/rt/rd fields via GetRegisterName so the dump
// reads like a disassembly rather than bare hex.
func (debugger *Debugger) Dump() string {
	entries := debugger.trace()
	s := "trace:"
	for _, e := range entries {
		instr := Instruction(e.Instruction)
		s += fmt.Sprintf(" {pc:0x%08x instr:0x%08x rs:%s rt:%s rd:%s}",
			e.PC, e.Instruction,
			GetRegisterName(instr.Rs()), GetRegisterName(instr.Rt()), GetRegisterName(instr.Rd()))
	}
	return s
}

// trace decodes the ring buffer's contents into trace entries, oldest
// first, for diagnostic printing. It reads without permanently consuming
// the ring: the read/write pointers are restored on return.
func (debugger *Debugger) trace() []TraceEntry {
	n := debugger.Trace.Length() / traceEntrySize
	if n > uint8(len(debugger.Trace.Buffer)/traceEntrySize) {
		n = uint8(len(debugger.Trace.Buffer) / traceEntrySize)
	}
	entries := make([]TraceEntry, 0, n)
	saved := *debugger.Trace
	// read the most recently pushed n entries, oldest first
	debugger.Trace.ReadPtr = debugger.Trace.WritePtr - n*traceEntrySize
	for i := uint8(0); i < n; i++ {
		var b [traceEntrySize]byte
		for j := range b {
			b[j] = debugger.Trace.Pop()
		}
		entries = append(entries, TraceEntry{
			PC:          binary.LittleEndian.Uint32(b[0:4]),
			Instruction: binary.LittleEndian.Uint32(b[4:8]),
		})
	}
	*debugger.Trace = saved
	return entries
}
