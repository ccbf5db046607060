package ascii

import (
	"errors"
	"fmt"
	"strings"
)

// MaxInstructions is the most instructions a springdroid accepts.
const MaxInstructions = 15

// Op is a springscript boolean operation.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpNot
)

var opNames = [...]string{"AND", "OR", "NOT"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("OP(%d)", int(op))
	}
	return opNames[op]
}

// Finish is the command that ends a program and starts the droid.
type Finish string

const (
	Walk Finish = "WALK"
	Run  Finish = "RUN"
)

// sensors returns the read-only registers available in this mode.
func (f Finish) sensors() string {
	if f == Run {
		return "ABCDEFGHI"
	}
	return "ABCD"
}

var (
	ErrBadInstruction = errors.New("bad springscript instruction")
	ErrTooLong        = errors.New("springscript program too long")
	ErrNoFinish       = errors.New("springscript program has no WALK or RUN")
)

// Instruction is one "OP X Y" line. Y is always a writable register.
type Instruction struct {
	Op  Op
	Src byte
	Dst byte
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s %c %c", ins.Op, ins.Src, ins.Dst)
}

// ParseInstruction parses a line such as "NOT A J".
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || len(fields[1]) != 1 || len(fields[2]) != 1 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, line)
	}
	var ins Instruction
	switch strings.ToUpper(fields[0]) {
	case "AND":
		ins.Op = OpAnd
	case "OR":
		ins.Op = OpOr
	case "NOT":
		ins.Op = OpNot
	default:
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, line)
	}
	ins.Src = upper(fields[1][0])
	ins.Dst = upper(fields[2][0])
	return ins, nil
}

// Program is a springscript program ready to be sent to a droid.
type Program struct {
	Instructions []Instruction
	Finish       Finish
}

// ParseProgram parses one instruction per line followed by WALK or RUN.
// Blank lines and lines starting with '#' are skipped.
func ParseProgram(text string) (*Program, error) {
	p := &Program{}
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if p.Finish != "" {
			return nil, fmt.Errorf("line %d: instruction after %s", n+1, p.Finish)
		}
		switch f := Finish(strings.ToUpper(line)); f {
		case Walk, Run:
			p.Finish = f
			continue
		}
		ins, err := ParseInstruction(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		p.Instructions = append(p.Instructions, ins)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the program against the droid's limits.
func (p *Program) Validate() error {
	if p.Finish != Walk && p.Finish != Run {
		return ErrNoFinish
	}
	if len(p.Instructions) > MaxInstructions {
		return fmt.Errorf("%w: %d instructions, limit %d", ErrTooLong, len(p.Instructions), MaxInstructions)
	}
	readable := p.Finish.sensors() + "TJ"
	for i, ins := range p.Instructions {
		if ins.Op < OpAnd || ins.Op > OpNot {
			return fmt.Errorf("instruction %d: %w: %v", i, ErrBadInstruction, ins.Op)
		}
		if !strings.ContainsRune(readable, rune(ins.Src)) {
			return fmt.Errorf("instruction %d: %w: cannot read %c in %s mode", i, ErrBadInstruction, ins.Src, p.Finish)
		}
		if ins.Dst != 'T' && ins.Dst != 'J' {
			return fmt.Errorf("instruction %d: %w: cannot write %c", i, ErrBadInstruction, ins.Dst)
		}
	}
	return nil
}

// Lines renders the program as the lines a droid expects.
func (p *Program) Lines() []string {
	lines := make([]string, 0, len(p.Instructions)+1)
	for _, ins := range p.Instructions {
		lines = append(lines, ins.String())
	}
	return append(lines, string(p.Finish))
}

// Encode renders the program as machine input.
func (p *Program) Encode() []int64 {
	return Encode(p.Lines()...)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
