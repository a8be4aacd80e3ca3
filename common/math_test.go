package common

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestWrapAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"pi_stays", math.Pi, math.Pi},
		{"neg_pi_wraps_up", -math.Pi, math.Pi},
		{"just_over_pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"two_pi", 2 * math.Pi, 0},
		{"large_negative", -5 * math.Pi, math.Pi},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := WrapAngle(c.in)
			if math.Abs(got-c.want) > eps {
				t.Fatalf("WrapAngle(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestRotateToward(t *testing.T) {
	cases := []struct {
		name     string
		from     float64
		to       float64
		maxDelta float64
		want     float64
	}{
		{"within_limit_reaches", 0, 0.1, 0.5, 0.1},
		{"clamped_positive", 0, 1.0, 0.25, 0.25},
		{"clamped_negative", 0, -1.0, 0.25, -0.25},
		{"shortest_path_across_pi", math.Pi - 0.1, -math.Pi + 0.1, 0.5, -math.Pi + 0.1},
		{"zero_delta_stays", 1.0, 2.0, 0, 1.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RotateToward(c.from, c.to, c.maxDelta)
			if math.Abs(WrapAngle(got-c.want)) > eps {
				t.Fatalf("RotateToward(%v, %v, %v) = %v, want %v", c.from, c.to, c.maxDelta, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := Clamp(-5, 0, 3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := Lerp(2, 2, 0.7); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}
