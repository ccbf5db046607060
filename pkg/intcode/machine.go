package intcode

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kr/pretty"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode")

// Machine is a single Intcode computer. It owns its memory and queues
// exclusively and is not safe for concurrent use.
type Machine struct {
	mem      Memory
	ip       int
	relBase  int64
	input    []int64
	inputPos int
	output   []int64
	halted   bool
	steps    uint64

	word int64 // instruction word currently executing
	err  error // sticky fatal error

	// Trace logs each instruction at debug level before it executes.
	Trace bool
}

// New creates a machine running a private copy of program, with input
// seeded into its input queue.
func New(program []int64, input ...int64) *Machine {
	return &Machine{
		mem:   Memory(slices.Clone(program)),
		input: slices.Clone(input),
	}
}

// Step decodes and executes one instruction. It returns false once the
// machine has halted; stepping a halted machine does nothing.
func (m *Machine) Step() (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.halted {
		return false, nil
	}

	m.word = m.mem.Load(int64(m.ip))
	ins, err := Decode(m.word)
	if err != nil {
		if errors.Is(err, ErrUnknownMode) {
			return false, m.fault(ErrUnknownMode, m.word)
		}
		return false, m.fault(ErrUnknownOpcode, m.word)
	}
	if m.Trace {
		log.Debugf("[%04d] %s base=%d", m.ip, formatInstruction(ins, m.operands(ins)), m.relBase)
	}
	m.steps++

	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		a, err := m.read(ins, 0)
		if err != nil {
			return false, err
		}
		b, err := m.read(ins, 1)
		if err != nil {
			return false, err
		}
		dst, err := m.dest(ins, 2)
		if err != nil {
			return false, err
		}
		var v int64
		switch ins.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLessThan:
			v = boolWord(a < b)
		case OpEquals:
			v = boolWord(a == b)
		}
		m.mem.Store(dst, v)

	case OpInput:
		dst, err := m.dest(ins, 0)
		if err != nil {
			return false, err
		}
		if m.inputPos >= len(m.input) {
			return false, m.fault(ErrInputStarved, int64(m.inputPos))
		}
		m.mem.Store(dst, m.input[m.inputPos])
		m.inputPos++

	case OpOutput:
		v, err := m.read(ins, 0)
		if err != nil {
			return false, err
		}
		m.output = append(m.output, v)

	case OpJumpIfTrue, OpJumpIfFalse:
		cond, err := m.read(ins, 0)
		if err != nil {
			return false, err
		}
		target, err := m.read(ins, 1)
		if err != nil {
			return false, err
		}
		if (cond != 0) == (ins.Op == OpJumpIfTrue) {
			if err := m.checkAddress(target); err != nil {
				return false, err
			}
			m.ip = int(target)
			return true, nil
		}

	case OpAdjustBase:
		v, err := m.read(ins, 0)
		if err != nil {
			return false, err
		}
		m.relBase += v

	case OpHalt:
		m.halted = true
		m.ip += ins.Width()
		return false, nil
	}

	m.ip += ins.Width()
	return true, nil
}

// Run steps until the machine halts or fails.
func (m *Machine) Run() error {
	for {
		ok, err := m.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// RunToOutput queues input, then runs until one new value has been
// output and returns it. ok is false if the machine halted first.
// Each call resumes where the previous one stopped.
func (m *Machine) RunToOutput(input ...int64) (value int64, ok bool, err error) {
	m.Push(input...)
	start := len(m.output)
	for {
		running, err := m.Step()
		if err != nil {
			return 0, false, err
		}
		if !running {
			return 0, false, nil
		}
		if len(m.output) > start {
			return m.output[start], true, nil
		}
	}
}

// RunToNextInput queues input, then runs until the machine is about to
// execute another input instruction. It returns true when paused in front
// of an input instruction and false once halted. A machine already blocked
// on input with nothing queued returns true without executing anything.
func (m *Machine) RunToNextInput(input ...int64) (bool, error) {
	m.Push(input...)
	if m.err != nil {
		return false, m.err
	}
	if m.halted {
		return false, nil
	}
	if m.AwaitingInput() {
		return true, nil
	}
	for {
		running, err := m.Step()
		if err != nil {
			return false, err
		}
		if !running {
			return false, nil
		}
		if m.atInput() {
			return true, nil
		}
	}
}

// Push appends values to the input queue.
func (m *Machine) Push(values ...int64) {
	m.input = append(m.input, values...)
}

// AwaitingInput reports whether the next instruction is an input and
// nothing is queued for it.
func (m *Machine) AwaitingInput() bool {
	return m.err == nil && !m.halted && m.atInput() && m.InputPending() == 0
}

func (m *Machine) atInput() bool {
	if m.ip >= len(m.mem) {
		return false
	}
	return Opcode(m.mem[m.ip]%100) == OpInput
}

// Read returns the word at addr without growing memory.
func (m *Machine) Read(addr int64) (int64, error) {
	if err := validAddress(addr); err != nil {
		return 0, fmt.Errorf("intcode: read %d: %w", addr, err)
	}
	if addr >= int64(len(m.mem)) {
		return 0, nil
	}
	return m.mem[addr], nil
}

// Write stores v at addr, growing memory if needed. Used by callers to
// patch a program before or between runs.
func (m *Machine) Write(addr, v int64) error {
	if err := validAddress(addr); err != nil {
		return fmt.Errorf("intcode: write %d: %w", addr, err)
	}
	m.mem.Store(addr, v)
	return nil
}

// Memory returns a copy of the machine's memory.
func (m *Machine) Memory() []int64 {
	return slices.Clone(m.mem)
}

// Output returns every value output so far. The slice must not be modified.
func (m *Machine) Output() []int64 {
	return slices.Clip(m.output)
}

// LastOutput returns the most recent output value.
func (m *Machine) LastOutput() (int64, bool) {
	if len(m.output) == 0 {
		return 0, false
	}
	return m.output[len(m.output)-1], true
}

// Input returns the whole input queue, including values already consumed.
func (m *Machine) Input() []int64 {
	return slices.Clone(m.input)
}

// InputPending returns the number of queued values not yet consumed.
func (m *Machine) InputPending() int {
	return len(m.input) - m.inputPos
}

// IP returns the instruction pointer.
func (m *Machine) IP() int { return m.ip }

// RelativeBase returns the relative base register.
func (m *Machine) RelativeBase() int64 { return m.relBase }

// Halted reports whether the machine executed a halt instruction.
func (m *Machine) Halted() bool { return m.halted }

// Steps returns the number of instructions executed.
func (m *Machine) Steps() uint64 { return m.steps }

// Err returns the fatal error that stopped the machine, if any.
func (m *Machine) Err() error { return m.err }

// State returns a compact summary of the machine.
func (m *Machine) State() State {
	return State{
		IP:           m.ip,
		RelativeBase: m.relBase,
		MemorySize:   len(m.mem),
		InputCursor:  m.inputPos,
		InputLen:     len(m.input),
		OutputLen:    len(m.output),
		Steps:        m.steps,
	}
}

// Dump renders the complete machine state for diagnostics.
func (m *Machine) Dump() string {
	return pretty.Sprint(m.Snapshot())
}

func (m *Machine) operands(ins Instruction) []int64 {
	info, _ := GetOpcodeInfo(ins.Op)
	ops := make([]int64, info.Params)
	for i := range ops {
		ops[i] = m.mem.Load(int64(m.ip + 1 + i))
	}
	return ops
}

// read resolves parameter i as a value.
func (m *Machine) read(ins Instruction, i int) (int64, error) {
	raw := m.mem.Load(int64(m.ip + 1 + i))
	switch ins.Modes[i] {
	case ModeImmediate:
		return raw, nil
	case ModeRelative:
		raw += m.relBase
	}
	if err := m.checkAddress(raw); err != nil {
		return 0, err
	}
	return m.mem.Load(raw), nil
}

// dest resolves parameter i as a write address.
func (m *Machine) dest(ins Instruction, i int) (int64, error) {
	raw := m.mem.Load(int64(m.ip + 1 + i))
	switch ins.Modes[i] {
	case ModeImmediate:
		return 0, m.fault(ErrImmediateWrite, raw)
	case ModeRelative:
		raw += m.relBase
	}
	if err := m.checkAddress(raw); err != nil {
		return 0, err
	}
	return raw, nil
}

// checkAddress faults the machine if addr cannot index memory.
func (m *Machine) checkAddress(addr int64) error {
	if err := validAddress(addr); err != nil {
		return m.fault(err, addr)
	}
	return nil
}

func validAddress(addr int64) error {
	switch {
	case addr < 0:
		return ErrNegativeAddress
	case addr > MaxAddress:
		return ErrAddressOverflow
	}
	return nil
}

func (m *Machine) fault(sentinel error, value int64) error {
	m.err = &Error{Err: sentinel, Value: value, Word: m.word, State: m.State()}
	log.Debugf("%v", m.err)
	return m.err
}

func boolWord(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
