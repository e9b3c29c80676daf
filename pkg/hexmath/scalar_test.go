package hexmath

import (
	"math"
	"testing"
)

func TestWrapAngleRange(t *testing.T) {
	// Canonical range is (-Pi, Pi], and wrapping must preserve the
	// direction modulo a full turn.
	inputs := []float64{
		0, 1, -1, math.Pi, -math.Pi, 2 * math.Pi, -2 * math.Pi,
		3 * math.Pi, -3 * math.Pi, 100.5, -100.5, 7.25, -0.0001,
	}
	for _, in := range inputs {
		got := WrapAngle(in)
		if got <= -math.Pi || got > math.Pi {
			t.Errorf("WrapAngle(%v) = %v, outside (-Pi, Pi]", in, got)
		}
		// Same direction: difference must be a multiple of 2*Pi.
		diff := math.Mod(in-got, 2*math.Pi)
		if diff > math.Pi {
			diff -= 2 * math.Pi
		}
		if diff < -math.Pi {
			diff += 2 * math.Pi
		}
		if math.Abs(diff) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, not congruent mod 2*Pi (diff %v)", in, got, diff)
		}
	}
}

func TestWrapAnglePiBoundary(t *testing.T) {
	// Pi itself stays Pi; -Pi maps to the equivalent Pi.
	if got := WrapAngle(math.Pi); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("WrapAngle(Pi) = %v, want Pi", got)
	}
	if got := WrapAngle(-math.Pi); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("WrapAngle(-Pi) = %v, want Pi", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-3, 0, 1, 0},
		{7, 0, 1, 1},
		{-1.5, -1.2, 0.75, -1.2},
		{2.0, -1.2, 0.75, 0.75},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	for _, v := range []float64{-5, -1.2, -0.3, 0, 0.75, 1.4, 9} {
		once := Clamp(v, -1.2, 0.75)
		twice := Clamp(once, -1.2, 0.75)
		if once != twice {
			t.Errorf("Clamp not idempotent for %v: %v then %v", v, once, twice)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(2, 2, 0.9); got != 2 {
		t.Errorf("Lerp(2, 2, 0.9) = %v, want 2", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("normalizing zero vector should return zero vector")
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1, 2, 8}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", got)
	}
}
