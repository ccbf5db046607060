package pipeline

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/pkg/intcode"
)

var log = commonlog.GetLogger("intcode.pipeline")

// ErrNoSignal is returned when an amplifier halts without producing the
// signal the next stage is waiting for.
var ErrNoSignal = errors.New("amplifier produced no signal")

// Chain runs one amplifier per phase setting in series. Each amplifier is
// seeded with its phase, given the previous amplifier's signal and asked
// for exactly one output, which becomes the next signal.
func Chain(program, phases []int64, signal int64) (int64, error) {
	for i, phase := range phases {
		amp := intcode.New(program, phase)
		out, ok, err := amp.RunToOutput(signal)
		if err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		if !ok {
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrNoSignal)
		}
		signal = out
	}
	return signal, nil
}

// Feedback wires the amplifiers into a loop: the last amplifier's output
// feeds the first. Amplifiers are resumed round-robin, one output at a
// time, until one of them halts. The result is the last signal emitted by
// the final amplifier.
func Feedback(program, phases []int64, signal int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoSignal
	}
	amps := make([]*intcode.Machine, len(phases))
	for i, phase := range phases {
		amps[i] = intcode.New(program, phase)
	}

	rounds := 0
	for i := 0; ; i = (i + 1) % len(amps) {
		out, ok, err := amps[i].RunToOutput(signal)
		if err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		if !ok {
			break
		}
		signal = out
		if i == len(amps)-1 {
			rounds++
		}
	}

	last, ok := amps[len(amps)-1].LastOutput()
	if !ok {
		return 0, fmt.Errorf("amplifier %d: %w", len(amps)-1, ErrNoSignal)
	}
	log.Debugf("feedback loop %v settled after %d rounds: %d", phases, rounds, last)
	return last, nil
}
