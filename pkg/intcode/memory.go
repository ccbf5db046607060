package intcode

import "math"

// MaxAddress is the highest address memory can grow to. Operand fetch
// reads up to three words past the instruction pointer, so the limit
// leaves room for them.
const MaxAddress = math.MaxInt - 4

// Memory is a zero-indexed, zero-extending word store. Addresses past the
// end are never out of range; touching one grows the store to include it.
type Memory []int64

// Grow extends the memory with zeros so that addr is addressable.
// addr must be within 0..MaxAddress.
func (m *Memory) Grow(addr int64) {
	if addr < int64(len(*m)) {
		return
	}
	need := int(addr) + 1
	if need <= cap(*m) {
		old := len(*m)
		*m = (*m)[:need]
		clear((*m)[old:])
		return
	}
	grown := make(Memory, need, max(need, 2*cap(*m)))
	copy(grown, *m)
	*m = grown
}

// Load returns the word at addr, growing memory if needed.
// Callers check that addr is within 0..MaxAddress.
func (m *Memory) Load(addr int64) int64 {
	m.Grow(addr)
	return (*m)[addr]
}

// Store writes v at addr, growing memory if needed.
func (m *Memory) Store(addr, v int64) {
	m.Grow(addr)
	(*m)[addr] = v
}
