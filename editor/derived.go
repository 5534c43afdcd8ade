package editor

import (
	"fmt"

	"github.com/piirto/piirto"
	"github.com/viterin/vek/vek32"
)

/*
	from modelData we can derive useful information that is cached for
	performance or easy access; this file contains the definitions of that
	derived data, and the code to update it when the model changes

	the most important piece is the per-clip summary: the min and max of
	every bucket of summaryBucketSize samples, so that drawing a zoomed out
	waveform does not have to scan millions of samples on every frame
*/

const summaryBucketSize = 256

type (
	derivedForClip struct {
		min []float32
		max []float32
	}

	derivedForTrack struct {
		title string
		peak  float32
		clips []derivedForClip
	}

	derivedModelData struct {
		forTrack []derivedForTrack
	}
)

func (m *Model) initDerivedData() {
	m.derived = derivedModelData{}
	m.updateDerivedTrackData()
}

func (m *Model) updateDeriveData(t ChangeType) {
	if t&TrackChange != 0 {
		m.updateDerivedTrackData()
	}
}

func (m *Model) updateDerivedTrackData() {
	m.derived.forTrack = m.derived.forTrack[:0]
	for i := range m.d.Project.Tracks {
		t := &m.d.Project.Tracks[i]
		d := derivedForTrack{
			title: trackTitle(t, i),
			peak:  trackPeak(t),
		}
		for c := range t.Clips {
			d.clips = append(d.clips, summarizeClip(&t.Clips[c]))
		}
		m.derived.forTrack = append(m.derived.forTrack, d)
	}
}

func trackTitle(t *piirto.Track, index int) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("Track %d", index+1)
}

func trackPeak(t *piirto.Track) float32 {
	var peak float32
	for _, c := range t.Clips {
		if len(c.Samples) == 0 {
			continue
		}
		peak = max(peak, vek32.Max(c.Samples), -vek32.Min(c.Samples))
	}
	return peak
}

func summarizeClip(c *piirto.Clip) derivedForClip {
	var ret derivedForClip
	for i := 0; i < len(c.Samples); i += summaryBucketSize {
		bucket := c.Samples[i:min(i+summaryBucketSize, len(c.Samples))]
		ret.min = append(ret.min, vek32.Min(bucket))
		ret.max = append(ret.max, vek32.Max(bucket))
	}
	return ret
}

// TrackTitle returns the title of a track, for display purposes: the name of
// the track if it has one, "Track N" otherwise.
func (m *Model) TrackTitle(index int) string {
	if index < 0 || index >= len(m.derived.forTrack) {
		return ""
	}
	return m.derived.forTrack[index].title
}

// TrackPeak returns the largest absolute sample value of a track.
func (m *Model) TrackPeak(index int) float32 {
	if index < 0 || index >= len(m.derived.forTrack) {
		return 0
	}
	return m.derived.forTrack[index].peak
}

// ClipSummary returns the cached summary of a clip: the min and max sample
// values for every bucket of bucketSize samples. Used to draw the waveform
// when a pixel covers many samples.
func (m *Model) ClipSummary(track, clip int) (mins, maxs []float32, bucketSize int) {
	if track < 0 || track >= len(m.derived.forTrack) {
		return nil, nil, summaryBucketSize
	}
	t := &m.derived.forTrack[track]
	if clip < 0 || clip >= len(t.clips) {
		return nil, nil, summaryBucketSize
	}
	return t.clips[clip].min, t.clips[clip].max, summaryBucketSize
}
