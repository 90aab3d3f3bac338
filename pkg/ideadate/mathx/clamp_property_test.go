package mathx

import (
	"testing"

	"pgregory.net/rapid"
)

func TestClampIsAlwaysWithinBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-1000, 0).Draw(t, "lo")
		hi := rapid.Float64Range(0, 1000).Draw(t, "hi")
		v := rapid.Float64Range(-2000, 2000).Draw(t, "v")

		got := Clamp(v, lo, hi)
		if got < lo || got > hi {
			t.Fatalf("Clamp(%v, %v, %v) = %v, out of bounds", v, lo, hi, got)
		}
		if v >= lo && v <= hi && got != v {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want the unchanged value", v, lo, hi, got)
		}
	})
}

func TestClamp01IsIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-10, 10).Draw(t, "v")
		once := Clamp01(v)
		twice := Clamp01(once)
		if once != twice {
			t.Fatalf("Clamp01 is not idempotent: Clamp01(%v)=%v, Clamp01(%v)=%v", v, once, once, twice)
		}
		if once < 0 || once > 1 {
			t.Fatalf("Clamp01(%v) = %v, out of [0,1]", v, once)
		}
	})
}

func TestRound100StaysWithinIntegerPercentRangeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-5, 5).Draw(t, "v")
		got := Round100(v)
		if got < 0 || got > 100 {
			t.Fatalf("Round100(%v) = %d, out of [0,100]", v, got)
		}
	})
}
