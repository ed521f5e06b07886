package main

import (
	"math"
	"testing"
)

func TestWindForceMagnitudeAndDeterminism(t *testing.T) {
	w := newWindField(99)

	fx, fy := w.forceAt(300, 400, 1.5)
	if mag := math.Sqrt(fx*fx + fy*fy); math.Abs(mag-windStrength) > 1e-9 {
		t.Errorf("wind magnitude = %v, want %v", mag, windStrength)
	}

	w2 := newWindField(99)
	fx2, fy2 := w2.forceAt(300, 400, 1.5)
	if fx != fx2 || fy != fy2 {
		t.Error("same seed and sample point gave different forces")
	}
}

func TestWindVariesOverSpaceAndTime(t *testing.T) {
	w := newWindField(99)

	ax, ay := w.forceAt(100, 100, 0)
	bx, by := w.forceAt(900, 700, 0)
	cx, cy := w.forceAt(100, 100, 60)

	if ax == bx && ay == by {
		t.Error("wind identical at distant points")
	}
	if ax == cx && ay == cy {
		t.Error("wind identical at distant times")
	}
}
