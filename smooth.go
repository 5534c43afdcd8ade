package piirto

// SmoothingConfig is the shape of the smoothing brush: a triangular averaging
// kernel reaching KernelRadius samples to each side, applied to the
// BrushRadius samples on each side of the center. The smoothed values are
// blended with the originals, by MaxBlend at the center of the brush and
// tapering linearly to MinBlend at its edges.
type SmoothingConfig struct {
	KernelRadius int
	BrushRadius  int
	MaxBlend     float32
	MinBlend     float32
}

// DefaultSmoothing returns the brush shape that smooths audible clicks away
// without flattening the waveform around them.
func DefaultSmoothing() SmoothingConfig {
	return SmoothingConfig{KernelRadius: 3, BrushRadius: 5, MaxBlend: 0.7}
}

// RegionSize returns the number of source samples the brush reads.
func (c SmoothingConfig) RegionSize() int { return 1 + 2*(c.KernelRadius+c.BrushRadius) }

// BrushSize returns the number of samples the brush rewrites.
func (c SmoothingConfig) BrushSize() int { return 1 + 2*c.BrushRadius }

// Smooth computes replacement values for the samples within the brush, from a
// source region of RegionSize samples centered on the same sample as the
// brush. valid tells which region indices hold actual samples. Source
// positions outside it contribute nothing while the kernel weight divisor
// stays fixed, so the result leans towards zero near clip edges.
func (c SmoothingConfig) Smooth(region []float32, valid Range) []float32 {
	k, b := c.KernelRadius, c.BrushRadius
	smoothed := make([]float32, c.BrushSize())
	for j := -b; j <= b; j++ {
		var sum float32
		for i := -k; i <= k; i++ {
			if p := i + j + k + b; valid.Contains(p) {
				sum += float32(k+1-abs(i)) * region[p]
			}
		}
		smoothed[j+b] = sum / float32((k+1)*(k+1))
	}
	for j := -b; j <= b; j++ {
		blend := c.MaxBlend
		if b > 0 {
			blend -= float32(abs(j)) / float32(b) * (c.MaxBlend - c.MinBlend)
		}
		smoothed[j+b] = smoothed[j+b]*blend + region[j+k+b]*(1-blend)
	}
	return smoothed
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
