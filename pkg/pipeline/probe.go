package pipeline

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"

	"github.com/chazu/intcode/pkg/intcode"
)

// DefaultProbeCacheSize is used when NewProbe is given a non-positive size.
const DefaultProbeCacheSize = 4096

type probeResult struct {
	value int64
	ok    bool
}

// Probe treats a program as a pure function of its input: every query
// boots a fresh machine seeded with the query values and returns its first
// output. Results are memoised in an LRU cache. A Probe is safe for
// concurrent use.
type Probe struct {
	program []int64
	cache   *lru.Cache

	queries atomic.Uint64
	hits    atomic.Uint64
}

// NewProbe creates a probe for program keeping up to size results.
func NewProbe(program []int64, size int) (*Probe, error) {
	if size <= 0 {
		size = DefaultProbeCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Probe{program: program, cache: cache}, nil
}

// Query runs the program with input and returns its first output. ok is
// false if the program halted without output.
func (p *Probe) Query(input ...int64) (int64, bool, error) {
	p.queries.Add(1)
	key := intcode.Format(input)
	if v, found := p.cache.Get(key); found {
		p.hits.Add(1)
		r := v.(probeResult)
		return r.value, r.ok, nil
	}

	m := intcode.New(p.program, input...)
	value, ok, err := m.RunToOutput()
	if err != nil {
		return 0, false, err
	}
	p.cache.Add(key, probeResult{value: value, ok: ok})
	return value, ok, nil
}

// Scan queries every (x, y) with 0 <= x < width and 0 <= y < height and
// returns the outputs indexed [y][x]. Queries without output read as 0.
func (p *Probe) Scan(width, height int64) ([][]int64, error) {
	grid := make([][]int64, height)
	for y := range grid {
		grid[y] = make([]int64, width)
		for x := range grid[y] {
			v, _, err := p.Query(int64(x), int64(y))
			if err != nil {
				return nil, err
			}
			grid[y][x] = v
		}
	}
	return grid, nil
}

// Count returns how many cells of a width x height scan are non-zero.
func (p *Probe) Count(width, height int64) (int, error) {
	grid, err := p.Scan(width, height)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range grid {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n, nil
}

// Stats returns the number of queries answered and how many were cache hits.
func (p *Probe) Stats() (queries, hits uint64) {
	return p.queries.Load(), p.hits.Load()
}
