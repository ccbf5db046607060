package intcode

import (
	"errors"
	"fmt"
)

// Fatal machine conditions. A machine that reports one of these stops for
// good; every later run call returns the same error.
var (
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrUnknownMode     = errors.New("unknown parameter mode")
	ErrImmediateWrite  = errors.New("write to immediate-mode destination")
	ErrInputStarved    = errors.New("input instruction with no buffered input")
	ErrNegativeAddress = errors.New("negative memory address")
	ErrAddressOverflow = errors.New("memory address too large")
)

// ErrEmptyProgram is returned by Parse and Load when there is nothing to parse.
var ErrEmptyProgram = errors.New("empty program")

// State is a compact summary of a machine, attached to errors.
type State struct {
	IP           int
	RelativeBase int64
	MemorySize   int
	InputCursor  int
	InputLen     int
	OutputLen    int
	Steps        uint64
}

func (s State) String() string {
	return fmt.Sprintf("ip=%d base=%d mem=%d input=%d/%d output=%d steps=%d",
		s.IP, s.RelativeBase, s.MemorySize, s.InputCursor, s.InputLen, s.OutputLen, s.Steps)
}

// Error describes a fatal condition raised while executing an instruction.
type Error struct {
	Err   error // one of the Err* sentinels
	Value int64 // offending word, mode digit or address
	Word  int64 // instruction word being executed
	State State
}

func (e *Error) Error() string {
	return fmt.Sprintf("intcode: %v (value %d, instruction %d) at %s", e.Err, e.Value, e.Word, e.State)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err was raised by a machine while executing.
func IsFatal(err error) bool {
	var me *Error
	return errors.As(err, &me)
}
