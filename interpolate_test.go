package piirto_test

import (
	"testing"

	"github.com/piirto/piirto"
)

func TestLineInterpolatorEndpoints(t *testing.T) {
	f := piirto.LineInterpolator(1, 3, -0.5, 0.5)
	if got := f(1); got != -0.5 {
		t.Errorf("f(t0) = %v, want -0.5", got)
	}
	if got := f(3); got != 0.5 {
		t.Errorf("f(t1) = %v, want 0.5", got)
	}
	if got := f(2); !closeTo(got, 0, 1e-6) {
		t.Errorf("f(midpoint) = %v, want 0", got)
	}
}

func TestLineInterpolatorClamps(t *testing.T) {
	f := piirto.LineInterpolator(0, 1, 0.25, 0.75)
	if got := f(-10); got != 0.25 {
		t.Errorf("f before t0 = %v, want clamped 0.25", got)
	}
	if got := f(10); got != 0.75 {
		t.Errorf("f after t1 = %v, want clamped 0.75", got)
	}
}

func TestLineInterpolatorDegenerate(t *testing.T) {
	f := piirto.LineInterpolator(2, 2, 0.25, 0.75)
	for _, time := range []float64{0, 2, 5} {
		if got := f(time); got != 0.75 {
			t.Errorf("f(%v) = %v, want the newer value 0.75", time, got)
		}
	}
}

func TestLineInterpolatorBackwards(t *testing.T) {
	// dragging right to left gives t1 < t0; interpolation still runs between
	// the two anchors
	f := piirto.LineInterpolator(3, 1, 0, 1)
	if got := f(1); got != 1 {
		t.Errorf("f(t1) = %v, want 1", got)
	}
	if got := f(3); got != 0 {
		t.Errorf("f(t0) = %v, want 0", got)
	}
	if got := f(2); !closeTo(got, 0.5, 1e-6) {
		t.Errorf("f(midpoint) = %v, want 0.5", got)
	}
}

func TestLineInterpolatorDescending(t *testing.T) {
	f := piirto.LineInterpolator(0, 1, 0.75, 0.25)
	if got := f(0.5); !closeTo(got, 0.5, 1e-6) {
		t.Errorf("f(midpoint) = %v, want 0.5", got)
	}
	if got := f(2); got != 0.25 {
		t.Errorf("f after t1 = %v, want clamped 0.25", got)
	}
}
