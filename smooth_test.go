package piirto_test

import (
	"testing"

	"github.com/piirto/piirto"
)

func fullRegion(cfg piirto.SmoothingConfig, value float32) ([]float32, piirto.Range) {
	region := make([]float32, cfg.RegionSize())
	for i := range region {
		region[i] = value
	}
	return region, piirto.Range{Start: 0, End: len(region)}
}

func TestSmoothFlatSignal(t *testing.T) {
	cfg := piirto.DefaultSmoothing()
	region, valid := fullRegion(cfg, 0.5)
	out := cfg.Smooth(region, valid)
	if len(out) != cfg.BrushSize() {
		t.Fatalf("brush output length = %v, want %v", len(out), cfg.BrushSize())
	}
	for i, v := range out {
		if !closeTo(v, 0.5, 1e-6) {
			t.Errorf("flat signal changed at %v: got %v, want 0.5", i, v)
		}
	}
}

func TestSmoothRampUnchanged(t *testing.T) {
	// a triangular kernel averages a linear ramp to its own center value, so
	// a ramp passes through the brush unchanged
	cfg := piirto.DefaultSmoothing()
	region := make([]float32, cfg.RegionSize())
	for i := range region {
		region[i] = 0.01 * float32(i-cfg.KernelRadius-cfg.BrushRadius)
	}
	valid := piirto.Range{Start: 0, End: len(region)}
	out := cfg.Smooth(region, valid)
	for j, v := range out {
		want := region[j+cfg.KernelRadius]
		if !closeTo(v, want, 1e-6) {
			t.Errorf("ramp changed at %v: got %v, want %v", j, v, want)
		}
	}
}

func TestSmoothSpike(t *testing.T) {
	cfg := piirto.DefaultSmoothing()
	region, valid := fullRegion(cfg, 0)
	center := cfg.KernelRadius + cfg.BrushRadius
	region[center] = 1
	out := cfg.Smooth(region, valid)
	// kernel averaging leaves 4/16 of the spike, and the center blend keeps
	// 30% of the original: 0.25*0.7 + 1*0.3
	if got, want := out[cfg.BrushRadius], float32(0.475); !closeTo(got, want, 1e-6) {
		t.Errorf("spike center = %v, want %v", got, want)
	}
	if out[cfg.BrushRadius] >= region[center] {
		t.Errorf("smoothing should pull the spike down, got %v", out[cfg.BrushRadius])
	}
	for j := 1; j <= cfg.BrushRadius; j++ {
		if !closeTo(out[cfg.BrushRadius-j], out[cfg.BrushRadius+j], 1e-6) {
			t.Errorf("spike response not symmetric at offset %v: %v vs %v",
				j, out[cfg.BrushRadius-j], out[cfg.BrushRadius+j])
		}
	}
}

func TestSmoothBrushEdgesKeepOriginal(t *testing.T) {
	// with MinBlend zero, the outermost brush samples keep their original
	// values exactly
	cfg := piirto.DefaultSmoothing()
	region, valid := fullRegion(cfg, 0)
	center := cfg.KernelRadius + cfg.BrushRadius
	region[center] = 1
	region[0] = 0.25
	region[len(region)-1] = -0.25
	out := cfg.Smooth(region, valid)
	if got, want := out[0], region[cfg.KernelRadius]; got != want {
		t.Errorf("left brush edge = %v, want original %v", got, want)
	}
	if got, want := out[len(out)-1], region[len(region)-1-cfg.KernelRadius]; got != want {
		t.Errorf("right brush edge = %v, want original %v", got, want)
	}
}

func TestSmoothEdgeLeansTowardZero(t *testing.T) {
	// samples past the end of a clip contribute nothing while the kernel
	// weight divisor stays fixed, so smoothing a constant signal next to the
	// clip edge pulls the result below the signal level
	cfg := piirto.DefaultSmoothing()
	region := make([]float32, cfg.RegionSize())
	valid := piirto.Range{Start: 0, End: cfg.KernelRadius + cfg.BrushRadius + 1}
	for i := valid.Start; i < valid.End; i++ {
		region[i] = 1
	}
	out := cfg.Smooth(region, valid)
	center := out[cfg.BrushRadius]
	// kernel at the center sees weights 1+2+3+4 of 16, then blends with the
	// original: 0.625*0.7 + 1*0.3
	if want := float32(0.7375); !closeTo(center, want, 1e-6) {
		t.Errorf("center next to clip edge = %v, want %v", center, want)
	}
	if center >= 1 {
		t.Errorf("smoothing next to a clip edge should lean towards zero, got %v", center)
	}
}

func TestSmoothCustomBrush(t *testing.T) {
	cfg := piirto.SmoothingConfig{KernelRadius: 1, BrushRadius: 2, MaxBlend: 1}
	if got, want := cfg.RegionSize(), 7; got != want {
		t.Fatalf("RegionSize = %v, want %v", got, want)
	}
	if got, want := cfg.BrushSize(), 5; got != want {
		t.Fatalf("BrushSize = %v, want %v", got, want)
	}
	region := []float32{0, 0, 0, 1, 0, 0, 0}
	out := cfg.Smooth(region, piirto.Range{Start: 0, End: 7})
	// full blend at the center: kernel 1,2,1 over 4 leaves half of the spike
	if got, want := out[2], float32(0.5); !closeTo(got, want, 1e-6) {
		t.Errorf("center = %v, want %v", got, want)
	}
	// blend tapers to zero at the brush edges
	if got, want := out[0], float32(0); !closeTo(got, want, 1e-6) {
		t.Errorf("edge = %v, want %v", got, want)
	}
}
