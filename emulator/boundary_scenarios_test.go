package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// storeProgram writes a sequence of little-endian encoded instructions into
// RAM starting at 0, mirroring how a boundary-scenario program would be
// seeded before stepping the CPU.
func storeProgram(cpu *CPU, instructions ...Instruction) {
	for i, instr := range instructions {
		cpu.Bus.Store32(uint32(i*4), uint32(instr))
	}
}

// LUI+ORI constant synthesis.
func TestScenarioLuiOriConstantSynthesis(t *testing.T) {
	cpu := newTestCPU(t)
	storeProgram(cpu,
		encodeI(0x0f, 0, 8, 0x1234), // LUI $t0, 0x1234
		encodeI(0x0d, 8, 8, 0x5678), // ORI $t0, $t0, 0x5678
	)
	cpu.PC = 0
	cpu.NextPC = 4
	cpu.Instruction = Instruction(cpu.Bus.Load32(0))

	cpu.Step()
	cpu.Step()

	assert.Equal(t, uint32(0x12345678), cpu.Reg(8))
}

// Branch-delay slot visibility.
func TestScenarioBranchDelaySlotVisibility(t *testing.T) {
	cpu := newTestCPU(t)
	storeProgram(cpu,
		encodeI(0x04, 0, 0, 2),       // BEQ $zero, $zero, +2 (word offset)
		encodeI(0x09, 0, 8, 1),       // ADDIU $t0, $zero, 1 (delay slot, executes)
		encodeI(0x09, 0, 9, 2),       // ADDIU $t1, $zero, 2 (skipped)
		encodeI(0x09, 0, 10, 3),      // ADDIU $t2, $zero, 3 (branch target)
	)
	cpu.PC = 0
	cpu.NextPC = 4
	cpu.Instruction = Instruction(cpu.Bus.Load32(0))

	for i := 0; i < 4; i++ {
		cpu.Step()
	}

	assert.Equal(t, uint32(1), cpu.Reg(8), "delay slot instruction must execute")
	assert.Equal(t, uint32(0), cpu.Reg(9), "branch target skips over this instruction")
	assert.Equal(t, uint32(3), cpu.Reg(10))
}

// Load-delay slot, driven through Step().
func TestScenarioLoadDelaySlot(t *testing.T) {
	cpu := newTestCPU(t)
	// program occupies 0..15, the data word for the LW lives just past it
	storeProgram(cpu,
		encodeI(0x09, 0, 8, 0xaa),        // ADDIU $t0, $zero, 0xAA
		encodeI(0x23, 0, 8, 16),          // LW $t0, 16($zero)
		encode(0x00, 8, 0, 9, 0, 0x25),   // OR $t1, $t0, $zero
		encode(0x00, 8, 0, 10, 0, 0x25),  // OR $t2, $t0, $zero
	)
	cpu.Bus.Store32(16, 0xdeadbeef)

	cpu.PC = 0
	cpu.NextPC = 4
	cpu.Instruction = Instruction(cpu.Bus.Load32(0))

	for i := 0; i < 4; i++ {
		cpu.Step()
	}

	assert.Equal(t, uint32(0xaa), cpu.Reg(9), "OR right after the load observes the pre-load value")
	assert.Equal(t, uint32(0xdeadbeef), cpu.Reg(10), "OR one instruction later observes the loaded value")
}

// PSX BCOND link-regardless behavior.
func TestScenarioBcondLinksRegardlessOfCondition(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.PC = 0x2000
	cpu.NextPC = 0x2004
	cpu.SetReg(1, 0xffffffff) // rs = -1

	// rt = 0x10: link bit set, condition bit 0 clear (BLTZAL: branch if rs<0)
	cpu.OpBcond(encodeI(0x01, 1, 0x10, 0))

	assert.Equal(t, uint32(0x2004), cpu.Reg(31), "link must occur regardless of the branch condition")
}
