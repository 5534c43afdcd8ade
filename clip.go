package piirto

import (
	"math"
	"math/rand"

	"github.com/chewxy/math32"
)

type (
	// SampleFormat is the storage format of the samples in a Clip. Samples are
	// always float32 in memory; the format only matters when values are
	// written to the clip, at which point they are rounded to the nearest
	// representable value of the format.
	SampleFormat int

	// WriteMode chooses how values are converted to the clip sample format
	// when writing. WriteDithered adds triangular dither before rounding,
	// which is the right choice when writing rendered or converted audio.
	// WriteExact rounds without dither, so that a value read back is exactly
	// the placed value rounded; sample editing uses this, as exact placement
	// is the whole point.
	WriteMode int

	// Clip is a continuous piece of audio on a track. Start is the time of its
	// first sample, in seconds from the track origin. Rate is the sample rate
	// of the stored samples. Stretch, when nonzero, plays the clip slower (>1)
	// or faster (<1) without resampling it, making the effective rate
	// Rate/Stretch. The optional Envelope scales the display and playback
	// amplitude and runs in clip-relative time.
	Clip struct {
		Name     string `yaml:",omitempty"`
		Start    float64
		Rate     float64
		Stretch  float64      `yaml:",omitempty"`
		Format   SampleFormat `yaml:",omitempty"`
		Samples  []float32    `yaml:",flow"`
		Envelope *Envelope    `yaml:",omitempty"`
	}
)

const (
	Float32 SampleFormat = iota
	Int16
)

const (
	WriteDithered WriteMode = iota
	WriteExact
)

func (c *Clip) Copy() Clip {
	samples := make([]float32, len(c.Samples))
	copy(samples, c.Samples)
	return Clip{
		Name:     c.Name,
		Start:    c.Start,
		Rate:     c.Rate,
		Stretch:  c.Stretch,
		Format:   c.Format,
		Samples:  samples,
		Envelope: c.Envelope.Copy(),
	}
}

// StretchRatio returns the stretch of the clip, treating the zero value as no
// stretching.
func (c *Clip) StretchRatio() float64 {
	if c.Stretch <= 0 {
		return 1
	}
	return c.Stretch
}

// End returns the time just past the stretched duration of the clip.
func (c *Clip) End() float64 {
	return c.Start + c.SamplesToTime(len(c.Samples))
}

// TimeToSamples converts a clip-relative time to the index of the nearest
// sample.
func (c *Clip) TimeToSamples(time float64) int {
	return int(math.Floor(time*c.Rate/c.StretchRatio() + 0.5))
}

// SamplesToTime converts a sample index to its clip-relative time.
func (c *Clip) SamplesToTime(index int) float64 {
	return float64(index) * c.StretchRatio() / c.Rate
}

// SnapToSample rounds an absolute time to the time of the nearest sample of
// the clip.
func (c *Clip) SnapToSample(time float64) float64 {
	return c.SamplesToTime(c.TimeToSamples(time-c.Start)) + c.Start
}

// Set overwrites the sample at the given index, converting the value to the
// clip sample format.
func (c *Clip) Set(index int, value float32, mode WriteMode) {
	c.Samples[index] = c.Format.Convert(value, mode)
}

// Convert rounds a value to the nearest value representable in the sample
// format, with triangular dither when the mode asks for it. Values outside
// [-1, 1] are clamped first. Float32 values pass through unchanged.
func (f SampleFormat) Convert(value float32, mode WriteMode) float32 {
	if f != Int16 {
		return value
	}
	v := min(max(value, -1), 1) * 32767
	if mode == WriteDithered {
		v += rand.Float32() - rand.Float32()
	}
	return min(max(math32.Round(v), -32767), 32767) / 32767
}
