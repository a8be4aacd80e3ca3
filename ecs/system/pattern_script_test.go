package system

import (
	"math"
	"testing"
)

func TestPatternRuntimeFan(t *testing.T) {
	r := NewPatternRuntime()

	offsets, ok := r.Offsets("fan", 3, 0.3)
	if !ok {
		t.Fatalf("expected fan pattern to resolve")
	}
	want := []float64{-0.3, 0, 0.3}
	if len(offsets) != len(want) {
		t.Fatalf("expected %d offsets, got %d", len(want), len(offsets))
	}
	for i := range want {
		if math.Abs(offsets[i]-want[i]) > 1e-9 {
			t.Fatalf("offset %d = %v, want %v", i, offsets[i], want[i])
		}
	}

	single, ok := r.Offsets("fan", 1, 0.3)
	if !ok || len(single) != 1 || single[0] != 0 {
		t.Fatalf("single pellet should center on the barrel, got %v ok=%v", single, ok)
	}
}

func TestPatternRuntimeUnknown(t *testing.T) {
	r := NewPatternRuntime()

	if _, ok := r.Offsets("no_such_pattern", 3, 0.3); ok {
		t.Fatalf("unknown pattern should not resolve")
	}
	// failure is cached
	if _, ok := r.Offsets("no_such_pattern", 3, 0.3); ok {
		t.Fatalf("cached failure should not resolve")
	}
	if _, ok := r.Offsets("", 3, 0.3); ok {
		t.Fatalf("empty name should not resolve")
	}
}

func TestPatternRuntimeInvalidate(t *testing.T) {
	r := NewPatternRuntime()
	if _, ok := r.Offsets("fan", 2, 0.1); !ok {
		t.Fatalf("expected fan pattern to resolve")
	}

	r.Invalidate("fan")
	if _, ok := r.Offsets("fan", 2, 0.1); !ok {
		t.Fatalf("pattern should recompile after invalidation")
	}
}
