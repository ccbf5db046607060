package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	program := []int64{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}

	want := []string{
		"0000  ARB  1",
		"0002  OUT  [rb-1]",
		"0004  ADD  [100], 1 -> [100]",
		"0008  EQ   [100], 16 -> [101]",
		"0012  JF   [101], 0",
		"0015  HALT",
	}
	assert.Equal(t, want, DisassembleToLines(program))
	assert.Equal(t, 6, InstructionCount(program))
}

func TestDisassembleData(t *testing.T) {
	// 33 is not an opcode; the trailing ADD and MUL are truncated.
	lines := DisassembleToLines([]int64{1002, 4, 3, 4, 33, 1, 2})
	assert.Equal(t, []string{
		"0000  MUL  [4], 3 -> [4]",
		"0004  DATA 33",
		"0005  DATA 1",
		"0006  DATA 2",
	}, lines)
}

func TestDisassembleInstruction(t *testing.T) {
	line, width := DisassembleInstruction([]int64{3, 7, 21107, 1, 2, 3}, 2)
	assert.Equal(t, "0002  LT   1, 2 -> [rb+3]", line)
	assert.Equal(t, 4, width)

	line, width = DisassembleInstruction([]int64{3, 7}, 0)
	assert.Equal(t, "0000  IN   [7]", line)
	assert.Equal(t, 2, width)
}

func TestDisassembleString(t *testing.T) {
	assert.Equal(t, "0000  OUT  1125899906842624\n0002  HALT", Disassemble([]int64{104, 1125899906842624, 99}))
	assert.Equal(t, "", Disassemble(nil))
}
