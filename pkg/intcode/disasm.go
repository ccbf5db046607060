package intcode

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of program, one line per
// instruction. Words that do not decode, or instructions that run past the
// end of the program, are listed as DATA.
func Disassemble(program []int64) string {
	return strings.Join(DisassembleToLines(program), "\n")
}

// DisassembleToLines returns the listing produced by Disassemble as lines.
func DisassembleToLines(program []int64) []string {
	var lines []string
	for offset := 0; offset < len(program); {
		line, width := DisassembleInstruction(program, offset)
		lines = append(lines, line)
		offset += width
	}
	return lines
}

// DisassembleInstruction formats the instruction at offset and returns it
// along with its width in words.
func DisassembleInstruction(program []int64, offset int) (string, int) {
	word := program[offset]
	ins, err := Decode(word)
	if err != nil || offset+ins.Width() > len(program) {
		return fmt.Sprintf("%04d  DATA %d", offset, word), 1
	}
	ops := program[offset+1 : offset+ins.Width()]
	return fmt.Sprintf("%04d  %s", offset, formatInstruction(ins, ops)), ins.Width()
}

// InstructionCount returns the number of lines Disassemble would produce.
func InstructionCount(program []int64) int {
	return len(DisassembleToLines(program))
}

func formatInstruction(ins Instruction, ops []int64) string {
	info, _ := GetOpcodeInfo(ins.Op)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-4s", info.Name))
	for i, v := range ops {
		switch {
		case i == 0:
			sb.WriteString(" ")
		case info.Writes && i == len(ops)-1:
			sb.WriteString(" -> ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(formatOperand(ins.Modes[i], v))
	}
	return strings.TrimRight(sb.String(), " ")
}

func formatOperand(mode Mode, v int64) string {
	switch mode {
	case ModeImmediate:
		return fmt.Sprintf("%d", v)
	case ModeRelative:
		if v < 0 {
			return fmt.Sprintf("[rb%d]", v)
		}
		return fmt.Sprintf("[rb+%d]", v)
	default:
		return fmt.Sprintf("[%d]", v)
	}
}
