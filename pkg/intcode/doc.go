// Package intcode implements the Intcode computer: a small stored-program
// machine with variable-width instructions, three parameter modes, a
// zero-extending memory and FIFO input/output queues.
//
// # Instruction Format
//
// The low two decimal digits of an instruction word select the opcode.
// The remaining digits, from least significant upward, give the mode of
// each parameter:
//
//	word 1002 -> opcode 02 (MUL), modes [position, immediate, position]
//
// Modes are position (operand is an address), immediate (operand is the
// value) and relative (operand is an offset from the relative base).
// Destination parameters never use immediate mode.
//
// # Execution
//
// A Machine is an explicit resumable state object. Three entry points
// drive it:
//
//   - Run steps until halt.
//   - RunToOutput steps until exactly one new output value exists and
//     returns it, so that successive calls stream the output.
//   - RunToNextInput steps until the machine is about to read input again,
//     which lets a controller inspect output before deciding what to send.
//
// Each call resumes where the last one stopped. Several machines can be
// chained by passing one machine's output to the next machine's input;
// see package pipeline.
//
// # Errors
//
// Unknown opcodes, unknown modes, immediate-mode destinations, negative
// addresses and reading input from an empty queue are fatal. The machine
// reports an *Error wrapping one of the Err* sentinels and refuses to run
// any further.
package intcode
