package ascii

import (
	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/pkg/intcode"
)

var log = commonlog.GetLogger("intcode.ascii")

// Reply is what a machine printed in response to a line.
type Reply struct {
	Text   string
	Values []int64 // out-of-band values, see Decode
	Halted bool
}

// Session drives a machine one line at a time. After every call the
// machine is either waiting for the next line or halted.
type Session struct {
	m      *intcode.Machine
	cursor int
}

// NewSession wraps m. The session takes over driving the machine.
func NewSession(m *intcode.Machine) *Session {
	return &Session{m: m}
}

// Machine returns the underlying machine.
func (s *Session) Machine() *intcode.Machine {
	return s.m
}

// Start runs the machine up to its first prompt and returns the output
// produced so far.
func (s *Session) Start() (Reply, error) {
	if _, err := s.m.RunToNextInput(); err != nil {
		return Reply{}, err
	}
	return s.collect(), nil
}

// Send feeds lines to the machine and runs it until every character has
// been consumed and the machine waits for more, or it halts.
func (s *Session) Send(lines ...string) (Reply, error) {
	input := Encode(lines...)
	log.Debugf("sending %d lines (%d values)", len(lines), len(input))
	s.m.Push(input...)
	for s.m.InputPending() > 0 {
		blocked, err := s.m.RunToNextInput()
		if err != nil {
			return Reply{}, err
		}
		if !blocked {
			break
		}
	}
	return s.collect(), nil
}

// collect returns the output produced since the previous call.
func (s *Session) collect() Reply {
	out := s.m.Output()
	text, values := Decode(out[s.cursor:])
	s.cursor = len(out)
	return Reply{Text: text, Values: values, Halted: s.m.Halted()}
}
