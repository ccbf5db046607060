package intcode

import (
	"fmt"
	"os"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("intcode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot is a point-in-time copy of a machine's complete state.
type Snapshot struct {
	ID           string  `cbor:"id"`
	Memory       []int64 `cbor:"mem"`
	IP           int     `cbor:"ip"`
	RelativeBase int64   `cbor:"base"`
	Input        []int64 `cbor:"in"`
	InputCursor  int     `cbor:"cursor"`
	Output       []int64 `cbor:"out"`
	Halted       bool    `cbor:"halted"`
	Steps        uint64  `cbor:"steps"`
}

// Snapshot captures the machine's state. The machine is not affected.
func (m *Machine) Snapshot() *Snapshot {
	return &Snapshot{
		ID:           uuid.NewString(),
		Memory:       slices.Clone(m.mem),
		IP:           m.ip,
		RelativeBase: m.relBase,
		Input:        slices.Clone(m.input),
		InputCursor:  m.inputPos,
		Output:       slices.Clone(m.output),
		Halted:       m.halted,
		Steps:        m.steps,
	}
}

// Restore builds a machine that resumes from s.
func Restore(s *Snapshot) (*Machine, error) {
	if err := validAddress(int64(s.IP)); err != nil {
		return nil, fmt.Errorf("intcode: snapshot %s: instruction pointer %d: %w", s.ID, s.IP, err)
	}
	if s.InputCursor < 0 || s.InputCursor > len(s.Input) {
		return nil, fmt.Errorf("intcode: snapshot %s: input cursor %d outside queue of %d", s.ID, s.InputCursor, len(s.Input))
	}
	return &Machine{
		mem:      Memory(slices.Clone(s.Memory)),
		ip:       s.IP,
		relBase:  s.RelativeBase,
		input:    slices.Clone(s.Input),
		inputPos: s.InputCursor,
		output:   slices.Clone(s.Output),
		halted:   s.Halted,
		steps:    s.Steps,
	}, nil
}

// MarshalSnapshot serializes a Snapshot to canonical CBOR bytes.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("intcode: unmarshal snapshot: %w", err)
	}
	return &s, nil
}

// SaveSnapshot writes s to path.
func SaveSnapshot(path string, s *Snapshot) error {
	data, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return UnmarshalSnapshot(data)
}
