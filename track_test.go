package piirto_test

import (
	"testing"

	"github.com/piirto/piirto"
)

func twoClipTrack() *piirto.Track {
	return &piirto.Track{
		Rate:  100,
		Scale: piirto.DefaultScale(),
		Clips: []piirto.Clip{
			{Start: 0, Rate: 100, Samples: make([]float32, 100)},
			{Start: 1, Rate: 100, Samples: make([]float32, 50)},
			{Start: 2, Rate: 100, Samples: make([]float32, 10)},
		},
	}
}

func TestClipAt(t *testing.T) {
	track := twoClipTrack()
	for _, tt := range []struct {
		time float64
		want int
	}{
		{0.5, 0},
		{1, 1},   // shared boundary belongs to the later clip
		{1.5, 1}, // clip end is still part of the clip
		{1.7, -1},
		{2.05, 2},
		{2.1, 2},
		{2.2, -1},
		{-0.1, -1},
	} {
		if got := track.ClipAt(tt.time); got != tt.want {
			t.Errorf("ClipAt(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestTrackSnapToSample(t *testing.T) {
	track := &piirto.Track{
		Rate:  100,
		Clips: []piirto.Clip{{Start: 0.005, Rate: 100, Samples: make([]float32, 10)}},
	}
	// inside a clip the clip sample grid wins, even when it is offset from
	// the track rate grid
	if got := track.SnapToSample(0.012); !closeTo64(got, 0.015, 1e-9) {
		t.Errorf("SnapToSample(0.012) = %v, want 0.015", got)
	}
	if got := track.SnapToSample(5.123); !closeTo64(got, 5.12, 1e-9) {
		t.Errorf("SnapToSample(5.123) = %v, want 5.12", got)
	}
}

func TestFloatAtTime(t *testing.T) {
	track := &piirto.Track{
		Rate:  100,
		Clips: []piirto.Clip{{Start: 1, Rate: 100, Samples: []float32{0.1, 0.2, 0.3, 0.4}}},
	}
	for _, tt := range []struct {
		time   float64
		want   float32
		wantOk bool
	}{
		{1, 0.1, true},
		{1.021, 0.3, true},
		{1.04, 0.4, true}, // clip end reads the last sample
		{0.5, 0, false},
		{1.2, 0, false},
	} {
		got, ok := track.FloatAtTime(tt.time)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("FloatAtTime(%v) = %v, %v, want %v, %v", tt.time, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestSetFloatAtTime(t *testing.T) {
	track := &piirto.Track{
		Rate:  100,
		Clips: []piirto.Clip{{Start: 1, Rate: 100, Samples: make([]float32, 4)}},
	}
	track.SetFloatAtTime(1.02, 0.9, piirto.WriteExact)
	if got := track.Clips[0].Samples[2]; got != 0.9 {
		t.Errorf("Samples[2] = %v, want 0.9", got)
	}
	track.SetFloatAtTime(3, 0.9, piirto.WriteExact)
	for i, s := range track.Clips[0].Samples {
		if i != 2 && s != 0 {
			t.Errorf("Samples[%v] = %v, want 0", i, s)
		}
	}
}

func TestFloatsCenteredAroundTime(t *testing.T) {
	samples := make([]float32, 10)
	for i := range samples {
		samples[i] = float32(i) / 10
	}
	track := &piirto.Track{
		Rate:  100,
		Clips: []piirto.Clip{{Start: 0, Rate: 100, Samples: samples}},
	}
	buffer, valid := track.FloatsCenteredAroundTime(0.05, 2)
	if want := (piirto.Range{Start: 0, End: 5}); valid != want {
		t.Fatalf("valid = %v, want %v", valid, want)
	}
	for i, want := range []float32{0.3, 0.4, 0.5, 0.6, 0.7} {
		if buffer[i] != want {
			t.Errorf("buffer[%v] = %v, want %v", i, buffer[i], want)
		}
	}
}

func TestFloatsCenteredAroundTimePartial(t *testing.T) {
	samples := make([]float32, 10)
	for i := range samples {
		samples[i] = float32(i) / 10
	}
	track := &piirto.Track{
		Rate:  100,
		Clips: []piirto.Clip{{Start: 0, Rate: 100, Samples: samples}},
	}
	buffer, valid := track.FloatsCenteredAroundTime(0.01, 3)
	if want := (piirto.Range{Start: 2, End: 7}); valid != want {
		t.Fatalf("valid = %v, want %v", valid, want)
	}
	for i, want := range []float32{0, 0, 0, 0.1, 0.2, 0.3, 0.4} {
		if buffer[i] != want {
			t.Errorf("buffer[%v] = %v, want %v", i, buffer[i], want)
		}
	}
}

func TestFloatsCenteredAroundTimeGap(t *testing.T) {
	track := twoClipTrack()
	buffer, valid := track.FloatsCenteredAroundTime(1.7, 3)
	if valid.Len() != 0 {
		t.Errorf("valid = %v, want empty", valid)
	}
	if len(buffer) != 7 {
		t.Errorf("len(buffer) = %v, want 7", len(buffer))
	}
}

func TestSetFloatsCenteredAroundTime(t *testing.T) {
	track := &piirto.Track{
		Rate:  100,
		Clips: []piirto.Clip{{Start: 0, Rate: 100, Samples: make([]float32, 10)}},
	}
	track.SetFloatsCenteredAroundTime(0, []float32{0.9, 0.9, 0.1, 0.2, 0.3}, 2, piirto.WriteExact)
	for i, want := range []float32{0.1, 0.2, 0.3, 0, 0} {
		if got := track.Clips[0].Samples[i]; got != want {
			t.Errorf("Samples[%v] = %v, want %v", i, got, want)
		}
	}
}

func TestSetFloatsWithinTimeRange(t *testing.T) {
	track := &piirto.Track{
		Rate:  100,
		Clips: []piirto.Clip{{Start: 0, Rate: 100, Samples: make([]float32, 10)}},
	}
	track.SetFloatsWithinTimeRange(0.02, 0.05, func(time float64) float32 { return 1 }, piirto.WriteExact)
	for i, s := range track.Clips[0].Samples {
		want := float32(0)
		if i >= 2 && i <= 5 {
			want = 1
		}
		if s != want {
			t.Errorf("Samples[%v] = %v, want %v", i, s, want)
		}
	}
}

func TestSetFloatsWithinTimeRangeAcrossGap(t *testing.T) {
	track := &piirto.Track{
		Rate: 100,
		Clips: []piirto.Clip{
			{Start: 0, Rate: 100, Samples: make([]float32, 5)},
			{Start: 0.1, Rate: 100, Samples: make([]float32, 5)},
		},
	}
	var times []float64
	// reversed bounds still cover the same range
	track.SetFloatsWithinTimeRange(0.12, 0.03, func(time float64) float32 {
		times = append(times, time)
		return 1
	}, piirto.WriteExact)
	wantTimes := []float64{0.03, 0.04, 0.1, 0.11, 0.12}
	if len(times) != len(wantTimes) {
		t.Fatalf("value function called %v times, want %v", len(times), len(wantTimes))
	}
	for i, want := range wantTimes {
		if !closeTo64(times[i], want, 1e-9) {
			t.Errorf("times[%v] = %v, want %v", i, times[i], want)
		}
	}
	for i, s := range track.Clips[0].Samples {
		want := float32(0)
		if i >= 3 {
			want = 1
		}
		if s != want {
			t.Errorf("first clip Samples[%v] = %v, want %v", i, s, want)
		}
	}
	for i, s := range track.Clips[1].Samples {
		want := float32(0)
		if i <= 2 {
			want = 1
		}
		if s != want {
			t.Errorf("second clip Samples[%v] = %v, want %v", i, s, want)
		}
	}
}

func TestEnvelopeAt(t *testing.T) {
	track := &piirto.Track{
		Rate: 100,
		Clips: []piirto.Clip{
			{Start: 1, Rate: 100, Samples: make([]float32, 100),
				Envelope: &piirto.Envelope{Points: []piirto.EnvelopePoint{{Time: 0, Value: 1}, {Time: 1, Value: 0.5}}}},
		},
	}
	if got := track.EnvelopeAt(1.5); !closeTo(got, 0.75, 1e-6) {
		t.Errorf("EnvelopeAt(1.5) = %v, want 0.75", got)
	}
	if got := track.EnvelopeAt(0.5); got != 1 {
		t.Errorf("EnvelopeAt in a gap = %v, want 1", got)
	}
}

func TestTrackCopy(t *testing.T) {
	track := &piirto.Track{
		Rate: 100,
		Clips: []piirto.Clip{
			{Start: 0, Rate: 100, Samples: []float32{0.1, 0.2},
				Envelope: &piirto.Envelope{Points: []piirto.EnvelopePoint{{Time: 0, Value: 1}}}},
		},
	}
	copied := track.Copy()
	copied.Clips[0].Samples[0] = 0.9
	copied.Clips[0].Envelope.Points[0].Value = 0.5
	if track.Clips[0].Samples[0] != 0.1 {
		t.Errorf("original samples changed to %v", track.Clips[0].Samples[0])
	}
	if track.Clips[0].Envelope.Points[0].Value != 1 {
		t.Errorf("original envelope changed to %v", track.Clips[0].Envelope.Points[0].Value)
	}
}
