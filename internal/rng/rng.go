package rng

import (
	"math/rand"
	"time"
)

// Source is the random stream the field and particles draw from.
type Source interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
}

// PRNG wraps math/rand so a run can be replayed from its seed.
type PRNG struct {
	seed int64
	rng  *rand.Rand
}

// New creates a generator for seed. A zero seed uses the current time.
func New(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *PRNG) Seed() int64 {
	return p.seed
}

func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Range returns a number in [lo, hi).
func Range(s Source, lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Duration returns a duration in [lo, hi).
func Duration(s Source, lo, hi time.Duration) time.Duration {
	return lo + time.Duration(s.Float64()*float64(hi-lo))
}

// Sign returns +1 or -1 with equal probability.
func Sign(s Source) float64 {
	if s.Float64() > 0.5 {
		return 1
	}
	return -1
}

// Coin reports true with probability one half.
func Coin(s Source) bool {
	return s.Float64() > 0.5
}

// Script replays a fixed list of values, cycling when it runs out.
// Tests use it to steer placement and spawn decisions.
type Script struct {
	Values []float64
	next   int
}

func (s *Script) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
