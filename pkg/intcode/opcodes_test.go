package intcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOpcodesHaveMetadata(t *testing.T) {
	ops := []Opcode{
		OpAdd, OpMul, OpInput, OpOutput, OpJumpIfTrue,
		OpJumpIfFalse, OpLessThan, OpEquals, OpAdjustBase, OpHalt,
	}
	for _, op := range ops {
		info, ok := GetOpcodeInfo(op)
		assert.True(t, ok, "opcode %d has no metadata", op)
		assert.NotEmpty(t, info.Name)
	}
	assert.Len(t, opcodeInfoTable, len(ops))

	_, ok := GetOpcodeInfo(50)
	assert.False(t, ok)
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		op   Opcode
		want string
	}{
		{OpAdd, "ADD"},
		{OpMul, "MUL"},
		{OpInput, "IN"},
		{OpOutput, "OUT"},
		{OpJumpIfTrue, "JT"},
		{OpJumpIfFalse, "JF"},
		{OpLessThan, "LT"},
		{OpEquals, "EQ"},
		{OpAdjustBase, "ARB"},
		{OpHalt, "HALT"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
	assert.True(t, strings.HasPrefix(Opcode(42).String(), "UNKNOWN"))
}

func TestOpcodeWidth(t *testing.T) {
	widths := map[Opcode]int{
		OpAdd: 4, OpMul: 4, OpLessThan: 4, OpEquals: 4,
		OpInput: 2, OpOutput: 2, OpAdjustBase: 2,
		OpJumpIfTrue: 3, OpJumpIfFalse: 3,
		OpHalt: 1,
	}
	for op, want := range widths {
		assert.Equal(t, want, op.Width(), "width of %s", op)
	}
	assert.Equal(t, 1, Opcode(50).Width())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		word  int64
		op    Opcode
		modes [3]Mode
	}{
		{1002, OpMul, [3]Mode{ModePosition, ModeImmediate, ModePosition}},
		{21101, OpAdd, [3]Mode{ModeImmediate, ModeImmediate, ModeRelative}},
		{204, OpOutput, [3]Mode{ModeRelative, ModePosition, ModePosition}},
		{109, OpAdjustBase, [3]Mode{ModeImmediate, ModePosition, ModePosition}},
		{99, OpHalt, [3]Mode{}},
		{3, OpInput, [3]Mode{}},
	}

	for _, tt := range tests {
		ins, err := Decode(tt.word)
		require.NoError(t, err, "word %d", tt.word)
		assert.Equal(t, tt.op, ins.Op, "word %d", tt.word)
		assert.Equal(t, tt.modes, ins.Modes, "word %d", tt.word)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(0)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
	_, err = Decode(-1)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
	_, err = Decode(98)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
	_, err = Decode(30001)
	assert.ErrorIs(t, err, ErrUnknownMode)

	// Mode digits beyond an instruction's parameters are ignored.
	_, err = Decode(30004)
	assert.NoError(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "position", ModePosition.String())
	assert.Equal(t, "immediate", ModeImmediate.String())
	assert.Equal(t, "relative", ModeRelative.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
