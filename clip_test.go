package piirto_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/piirto/piirto"
)

func TestTimeToSamplesRounds(t *testing.T) {
	c := piirto.Clip{Rate: 100}
	for _, tt := range []struct {
		time float64
		want int
	}{
		{0, 0},
		{0.004, 0},
		{0.005, 1},
		{0.0149, 1},
		{-0.004, 0},
		{-0.006, -1},
	} {
		if got := c.TimeToSamples(tt.time); got != tt.want {
			t.Errorf("TimeToSamples(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestTimeToSamplesStretched(t *testing.T) {
	c := piirto.Clip{Rate: 100, Stretch: 2}
	if got := c.TimeToSamples(0.03); got != 2 {
		t.Errorf("TimeToSamples(0.03) = %v, want 2", got)
	}
	if got := c.SamplesToTime(2); got != 0.04 {
		t.Errorf("SamplesToTime(2) = %v, want 0.04", got)
	}
}

func TestSnapToSample(t *testing.T) {
	c := piirto.Clip{Start: 1, Rate: 100}
	if got := c.SnapToSample(1.234); !closeTo64(got, 1.23, 1e-9) {
		t.Errorf("SnapToSample(1.234) = %v, want 1.23", got)
	}
	if got := c.SnapToSample(1.236); !closeTo64(got, 1.24, 1e-9) {
		t.Errorf("SnapToSample(1.236) = %v, want 1.24", got)
	}
}

func TestClipEnd(t *testing.T) {
	c := piirto.Clip{Start: 1, Rate: 100, Stretch: 2, Samples: make([]float32, 50)}
	if got := c.End(); got != 2 {
		t.Errorf("End() = %v, want 2", got)
	}
}

func TestConvertFloat32PassesThrough(t *testing.T) {
	f := piirto.Float32
	for _, value := range []float32{0, 0.123, -0.5, 1.5, -2} {
		if got := f.Convert(value, piirto.WriteExact); got != value {
			t.Errorf("Convert(%v) = %v, want %v", value, got, value)
		}
	}
}

func TestConvertInt16Exact(t *testing.T) {
	f := piirto.Int16
	for _, tt := range []struct {
		value float32
		want  float32
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{2, 1},
		{-3, -1},
		{0.5, float32(16384) / 32767},
	} {
		if got := f.Convert(tt.value, piirto.WriteExact); got != tt.want {
			t.Errorf("Convert(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestConvertInt16Idempotent(t *testing.T) {
	f := piirto.Int16
	for _, value := range []float32{0.1, -0.987, 0.5, 0.33333} {
		once := f.Convert(value, piirto.WriteExact)
		twice := f.Convert(once, piirto.WriteExact)
		if once != twice {
			t.Errorf("Convert(Convert(%v)) = %v, want %v", value, twice, once)
		}
	}
}

func TestConvertInt16Dithered(t *testing.T) {
	f := piirto.Int16
	value := float32(0.25)
	exact := math32.Round(f.Convert(value, piirto.WriteExact) * 32767)
	for i := 0; i < 100; i++ {
		got := f.Convert(value, piirto.WriteDithered)
		if got < -1 || got > 1 {
			t.Fatalf("dithered Convert(%v) = %v, out of range", value, got)
		}
		level := math32.Round(got * 32767)
		if diff := math32.Abs(level - exact); diff > 2 {
			t.Fatalf("dithered level %v is %v steps from %v", level, diff, exact)
		}
	}
}

func TestClipSetQuantizes(t *testing.T) {
	c := piirto.Clip{Rate: 100, Format: piirto.Int16, Samples: make([]float32, 4)}
	c.Set(1, 0.5, piirto.WriteExact)
	if want := float32(16384) / 32767; c.Samples[1] != want {
		t.Errorf("Samples[1] = %v, want %v", c.Samples[1], want)
	}
	c.Format = piirto.Float32
	c.Set(2, 0.123456, piirto.WriteExact)
	if c.Samples[2] != 0.123456 {
		t.Errorf("Samples[2] = %v, want 0.123456", c.Samples[2])
	}
}

func closeTo64(got, want, tolerance float64) bool {
	diff := got - want
	return diff >= -tolerance && diff <= tolerance
}
