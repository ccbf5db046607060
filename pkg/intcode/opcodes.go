package intcode

import "fmt"

// Opcode is the operation selected by the low two decimal digits of an
// instruction word.
type Opcode int64

const (
	OpAdd         Opcode = 1  // mem[dst] = p1 + p2
	OpMul         Opcode = 2  // mem[dst] = p1 * p2
	OpInput       Opcode = 3  // mem[dst] = next input
	OpOutput      Opcode = 4  // append p1 to output
	OpJumpIfTrue  Opcode = 5  // if p1 != 0: ip = p2
	OpJumpIfFalse Opcode = 6  // if p1 == 0: ip = p2
	OpLessThan    Opcode = 7  // mem[dst] = p1 < p2
	OpEquals      Opcode = 8  // mem[dst] = p1 == p2
	OpAdjustBase  Opcode = 9  // relative base += p1
	OpHalt        Opcode = 99 // stop
)

// Mode selects how a single parameter is interpreted.
type Mode int64

const (
	// ModePosition reads from / writes to the address given by the operand.
	ModePosition Mode = 0
	// ModeImmediate uses the operand itself. Never valid as a destination.
	ModeImmediate Mode = 1
	// ModeRelative addresses relative base + operand.
	ModeRelative Mode = 2
)

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	default:
		return fmt.Sprintf("Mode(%d)", int64(m))
	}
}

// OpcodeInfo provides metadata about each opcode for decoding and disassembly.
type OpcodeInfo struct {
	Name   string // Human-readable mnemonic
	Params int    // Number of parameter words following the opcode
	Writes bool   // True if the last parameter is a write destination
}

var opcodeInfoTable = map[Opcode]OpcodeInfo{
	OpAdd:         {"ADD", 3, true},
	OpMul:         {"MUL", 3, true},
	OpInput:       {"IN", 1, true},
	OpOutput:      {"OUT", 1, false},
	OpJumpIfTrue:  {"JT", 2, false},
	OpJumpIfFalse: {"JF", 2, false},
	OpLessThan:    {"LT", 3, true},
	OpEquals:      {"EQ", 3, true},
	OpAdjustBase:  {"ARB", 1, false},
	OpHalt:        {"HALT", 0, false},
}

// GetOpcodeInfo returns metadata for an opcode and whether it is defined.
func GetOpcodeInfo(op Opcode) (OpcodeInfo, bool) {
	info, ok := opcodeInfoTable[op]
	return info, ok
}

// String returns the mnemonic of an opcode.
func (op Opcode) String() string {
	if info, ok := GetOpcodeInfo(op); ok {
		return info.Name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int64(op))
}

// Width returns the number of words an instruction with this opcode
// occupies, including the opcode word. Unknown opcodes are one word wide.
func (op Opcode) Width() int {
	info, _ := GetOpcodeInfo(op)
	return 1 + info.Params
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Decode splits an instruction word into its opcode and parameter modes.
// Opcode validity is checked here; mode validity is checked only for the
// parameters the opcode actually uses.
func Decode(word int64) (Instruction, error) {
	if word < 0 {
		return Instruction{}, fmt.Errorf("%w: %d", ErrUnknownOpcode, word)
	}
	ins := Instruction{
		Op: Opcode(word % 100),
		Modes: [3]Mode{
			Mode(word / 100 % 10),
			Mode(word / 1000 % 10),
			Mode(word / 10000 % 10),
		},
	}
	info, ok := GetOpcodeInfo(ins.Op)
	if !ok {
		return ins, fmt.Errorf("%w: %d", ErrUnknownOpcode, word)
	}
	for i := 0; i < info.Params; i++ {
		if ins.Modes[i] > ModeRelative {
			return ins, fmt.Errorf("%w: digit %d in word %d", ErrUnknownMode, ins.Modes[i], word)
		}
	}
	return ins, nil
}

// Width returns the encoded width of the instruction in words.
func (ins Instruction) Width() int {
	return ins.Op.Width()
}
