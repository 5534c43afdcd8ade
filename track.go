package piirto

import "math"

// Track is a single channel of audio, consisting of clips. Clips are kept
// sorted by start time and do not overlap. Scale describes how the track
// samples map to the vertical axis when displayed.
type Track struct {
	Name  string `yaml:",omitempty"`
	Rate  float64
	Scale AmplitudeScale
	Clips []Clip
}

func (t *Track) Copy() Track {
	clips := make([]Clip, len(t.Clips))
	for i, c := range t.Clips {
		clips[i] = c.Copy()
	}
	return Track{Name: t.Name, Rate: t.Rate, Scale: t.Scale, Clips: clips}
}

// ClipAt returns the index of the clip whose time range contains the given
// time, or -1 if the time falls in a gap. Clip ranges include both end times
// here, and at a boundary shared by two adjacent clips the later clip wins.
func (t *Track) ClipAt(time float64) int {
	for i := len(t.Clips) - 1; i >= 0; i-- {
		if c := &t.Clips[i]; time >= c.Start && time <= c.End() {
			return i
		}
	}
	return -1
}

// SnapToSample rounds the time to the sample grid of the clip containing it,
// or to the track rate grid if the time falls in a gap.
func (t *Track) SnapToSample(time float64) float64 {
	if i := t.ClipAt(time); i >= 0 {
		return t.Clips[i].SnapToSample(time)
	}
	return math.Floor(time*t.Rate+0.5) / t.Rate
}

// EnvelopeAt returns the envelope value at the given time, or 1 if the time
// is not within any clip or the clip has no envelope.
func (t *Track) EnvelopeAt(time float64) float32 {
	i := t.ClipAt(time)
	if i < 0 {
		return 1
	}
	return t.Clips[i].Envelope.ValueAt(time - t.Clips[i].Start)
}

// FloatAtTime returns the value of the sample nearest to the given time. ok
// is false if the time is not within any clip.
func (t *Track) FloatAtTime(time float64) (value float32, ok bool) {
	i := t.ClipAt(time)
	if i < 0 || len(t.Clips[i].Samples) == 0 {
		return 0, false
	}
	c := &t.Clips[i]
	s := min(max(c.TimeToSamples(time-c.Start), 0), len(c.Samples)-1)
	return c.Samples[s], true
}

// SetFloatAtTime overwrites the sample nearest to the given time. Times not
// within any clip are ignored.
func (t *Track) SetFloatAtTime(time float64, value float32, mode WriteMode) {
	i := t.ClipAt(time)
	if i < 0 || len(t.Clips[i].Samples) == 0 {
		return
	}
	c := &t.Clips[i]
	c.Set(min(max(c.TimeToSamples(time-c.Start), 0), len(c.Samples)-1), value, mode)
}

// FloatsCenteredAroundTime reads sideSamples samples on both sides of the
// sample nearest to the given time, into a buffer of 2*sideSamples+1 values
// whose middle value is the nearest sample itself. Positions falling outside
// the clip containing the time are left zero; the returned range tells which
// buffer indices hold actual samples. The range is empty if the time is not
// within any clip.
func (t *Track) FloatsCenteredAroundTime(time float64, sideSamples int) ([]float32, Range) {
	buffer := make([]float32, 2*sideSamples+1)
	i := t.ClipAt(time)
	if i < 0 {
		return buffer, Range{}
	}
	c := &t.Clips[i]
	center := c.TimeToSamples(time - c.Start)
	valid := Range{0, len(buffer)}.Intersect(
		Range{sideSamples - center, sideSamples - center + len(c.Samples)})
	for j := valid.Start; j < valid.End; j++ {
		buffer[j] = c.Samples[center+j-sideSamples]
	}
	return buffer, valid
}

// SetFloatsCenteredAroundTime writes a buffer of 2*sideSamples+1 values so
// that its middle value lands on the sample nearest to the given time.
// Positions falling outside the clip are dropped.
func (t *Track) SetFloatsCenteredAroundTime(time float64, buffer []float32, sideSamples int, mode WriteMode) {
	i := t.ClipAt(time)
	if i < 0 {
		return
	}
	c := &t.Clips[i]
	center := c.TimeToSamples(time - c.Start)
	valid := Range{0, len(buffer)}.Intersect(
		Range{sideSamples - center, sideSamples - center + len(c.Samples)})
	for j := valid.Start; j < valid.End; j++ {
		c.Set(center+j-sideSamples, buffer[j], mode)
	}
}

// SetFloatsWithinTimeRange overwrites every sample whose time rounds into
// [t0, t1], on every clip the range touches, with values from the value
// function. The function receives the exact time of each sample it is asked
// to produce.
func (t *Track) SetFloatsWithinTimeRange(t0, t1 float64, value func(time float64) float32, mode WriteMode) {
	if t1 < t0 {
		t0, t1 = t1, t0
	}
	for i := range t.Clips {
		c := &t.Clips[i]
		if len(c.Samples) == 0 || t1 < c.Start || t0 > c.End() {
			continue
		}
		s0 := max(c.TimeToSamples(t0-c.Start), 0)
		s1 := min(c.TimeToSamples(t1-c.Start), len(c.Samples)-1)
		for s := s0; s <= s1; s++ {
			c.Set(s, value(c.Start+c.SamplesToTime(s)), mode)
		}
	}
}
