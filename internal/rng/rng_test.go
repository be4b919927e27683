package rng

import (
	"testing"
	"time"
)

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(1234), New(1234)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	if New(0).Seed() == 0 {
		t.Fatalf("zero seed should be replaced by a time based one")
	}
}

func TestHelpers(t *testing.T) {
	s := &Script{Values: []float64{0, 0.5, 0.75}}

	if got := Range(s, 10, 20); got != 10 {
		t.Errorf("Range at 0 = %v", got)
	}
	if got := Duration(s, time.Second, 3*time.Second); got != 2*time.Second {
		t.Errorf("Duration at 0.5 = %v", got)
	}
	if got := Sign(s); got != 1 {
		t.Errorf("Sign at 0.75 = %v", got)
	}
	// 0.5 is not above one half.
	s = &Script{Values: []float64{0.5}}
	if Coin(s) || Sign(s) != -1 {
		t.Errorf("0.5 should land on the negative side")
	}
}

func TestScriptCycles(t *testing.T) {
	s := &Script{Values: []float64{0.1, 0.2}}
	want := []float64{0.1, 0.2, 0.1, 0.2}
	for i, w := range want {
		if got := s.Float64(); got != w {
			t.Fatalf("draw %d = %v, want %v", i, got, w)
		}
	}
	if (&Script{}).Float64() != 0 {
		t.Fatalf("empty script should return 0")
	}
}
