package piirto_test

import (
	"testing"

	"github.com/piirto/piirto"
)

func TestValueOfPixelLinear(t *testing.T) {
	s := piirto.DefaultScale()
	height := 101
	for _, tt := range []struct {
		y    int
		want float32
	}{
		{y: 0, want: 1},
		{y: 50, want: 0},
		{y: 100, want: -1},
		{y: 25, want: 0.5},
	} {
		if got := s.ValueOfPixel(tt.y, height); !closeTo(got, tt.want, 1e-6) {
			t.Errorf("ValueOfPixel(%v, %v) = %v, want %v", tt.y, height, got, tt.want)
		}
	}
}

func TestValueOfPixelDegenerateHeight(t *testing.T) {
	s := piirto.AmplitudeScale{Min: -0.5, Max: 1}
	if got, want := s.ValueOfPixel(0, 1), float32(0.25); !closeTo(got, want, 1e-6) {
		t.Errorf("ValueOfPixel on a one pixel display = %v, want %v", got, want)
	}
}

func TestPixelOfValueLinear(t *testing.T) {
	s := piirto.DefaultScale()
	height := 101
	for _, tt := range []struct {
		value float32
		want  int
	}{
		{value: 1, want: 0},
		{value: 0, want: 50},
		{value: -1, want: 100},
		{value: 0.5, want: 25},
	} {
		if got := s.PixelOfValue(tt.value, height, true, false); got != tt.want {
			t.Errorf("PixelOfValue(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestPixelOfValueDB(t *testing.T) {
	s := piirto.AmplitudeScale{DB: true, DBRange: 60, Min: -1, Max: 1}
	height := 121
	if got, want := s.PixelOfValue(1, height, true, false), 0; got != want {
		t.Errorf("full scale should be at the top, got %v, want %v", got, want)
	}
	if got, want := s.PixelOfValue(-1, height, true, false), height-1; got != want {
		t.Errorf("negative full scale should be at the bottom, got %v, want %v", got, want)
	}
	// a sample at -60 dB is at the edge of the shown range, which is the
	// center of the display
	if got, want := s.PixelOfValue(0.001, height, true, false), (height-1)/2; got != want {
		t.Errorf("sample at the bottom of the dB range = %v, want %v", got, want)
	}
}

func TestPixelOfValueClips(t *testing.T) {
	s := piirto.DefaultScale()
	height := 101
	if got, want := s.PixelOfValue(2, height, true, true), 0; got != want {
		t.Errorf("clipped overscale value = %v, want %v", got, want)
	}
	if got := s.PixelOfValue(2, height, true, false); got >= 0 {
		t.Errorf("unclipped overscale value should be above the display, got %v", got)
	}
}

func TestPixelValueRoundTrip(t *testing.T) {
	height := 257
	for _, s := range []piirto.AmplitudeScale{
		{Min: -1, Max: 1},
		{Min: -0.25, Max: 0.25},
		{DB: true, DBRange: 60, Min: -1, Max: 1},
		{DB: true, DBRange: 120, Min: -1, Max: 1},
	} {
		for y := 0; y < height; y++ {
			v := s.ValueOfPixel(y, height)
			got := s.PixelOfValue(v, height, true, false)
			if d := got - y; d < -1 || d > 1 {
				t.Fatalf("scale %+v: pixel %v maps to value %v and back to pixel %v", s, y, v, got)
			}
		}
	}
}

func closeTo(got, want, tolerance float32) bool {
	d := got - want
	return d >= -tolerance && d <= tolerance
}
