package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"gopkg.in/tomb.v2"
)

// SearchConfig is used to configure a phase search.
type SearchConfig struct {
	// The phase settings to permute.
	Phases []int64

	// Run the amplifiers as a feedback loop instead of a single chain.
	Feedback bool

	// The signal fed to the first amplifier.
	Signal int64

	// The number of parallel workers. Defaults to GOMAXPROCS.
	Workers int
}

// Result is the best phase ordering found by Search.
type Result struct {
	Phases []int64
	Signal int64
}

// Search evaluates every permutation of the configured phases and returns
// the one producing the highest signal. Each permutation gets its own
// amplifiers, so workers share nothing but the read-only program. Ties go
// to the lexicographically first ordering.
func Search(ctx context.Context, program []int64, config SearchConfig) (Result, error) {
	perms := Permutations(config.Phases)
	if len(perms) == 0 {
		return Result{}, errors.New("pipeline: no phases to search")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(perms))

	run := Chain
	if config.Feedback {
		run = Feedback
	}

	signals := make([]int64, len(perms))
	jobs := make(chan int)
	var t tomb.Tomb

	// workers go first: the tomb must not die before the producer is added
	for w := 0; w < workers; w++ {
		t.Go(func() error {
			for i := range jobs {
				signal, err := run(program, perms[i], config.Signal)
				if err != nil {
					return fmt.Errorf("phases %v: %w", perms[i], err)
				}
				signals[i] = signal
			}
			return nil
		})
	}

	t.Go(func() error {
		defer close(jobs)
		for i := range perms {
			select {
			case jobs <- i:
			case <-t.Dying():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := t.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for i, s := range signals {
		if s > signals[best] {
			best = i
		}
	}
	log.Infof("searched %d phase orderings with %d workers: best %v -> %d",
		len(perms), workers, perms[best], signals[best])

	return Result{Phases: perms[best], Signal: signals[best]}, nil
}
