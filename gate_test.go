package piirto_test

import (
	"testing"

	"github.com/piirto/piirto"
)

func sineTrack(rate float64, numSamples int) *piirto.Track {
	return &piirto.Track{
		Name:  "test",
		Rate:  rate,
		Scale: piirto.DefaultScale(),
		Clips: []piirto.Clip{{Rate: rate, Samples: make([]float32, numSamples)}},
	}
}

func TestSampleResolutionThreshold(t *testing.T) {
	track := sineTrack(100, 1000)
	for _, tt := range []struct {
		zoom float64
		want piirto.GateResult
	}{
		{zoom: 301, want: piirto.GatePass},
		{zoom: 300, want: piirto.GateFailSilent}, // exactly three pixels per sample is not enough
		{zoom: 100, want: piirto.GateFailSilent},
	} {
		view := piirto.ViewInfo{Start: 0, Zoom: tt.zoom}
		got := piirto.TestSampleResolution(view, track, 1, 640, piirto.GateHitTest)
		if got != tt.want {
			t.Errorf("zoom %v: got %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestSampleResolutionQueryKind(t *testing.T) {
	track := sineTrack(100, 1000)
	view := piirto.ViewInfo{Start: 0, Zoom: 100}
	if got := piirto.TestSampleResolution(view, track, 1, 640, piirto.GateClick); got != piirto.GateFailAdvisory {
		t.Errorf("a failing click should ask for an advisory, got %v", got)
	}
	if got := piirto.TestSampleResolution(view, track, 1, 640, piirto.GateHitTest); got != piirto.GateFailSilent {
		t.Errorf("a failing probe should stay silent, got %v", got)
	}
}

func TestSampleResolutionNoClip(t *testing.T) {
	track := sineTrack(100, 1000)
	view := piirto.ViewInfo{Start: 0, Zoom: 1}
	if got := piirto.TestSampleResolution(view, track, 100, 640, piirto.GateClick); got != piirto.GatePass {
		t.Errorf("a time in a gap should pass at any zoom, got %v", got)
	}
}

func TestSampleResolutionStretch(t *testing.T) {
	track := sineTrack(100, 1000)
	track.Clips[0].Stretch = 2 // effective rate 50 samples per second
	view := piirto.ViewInfo{Start: 0, Zoom: 151}
	if got := piirto.TestSampleResolution(view, track, 1, 640, piirto.GateClick); got != piirto.GatePass {
		t.Errorf("stretching should lower the zoom needed, got %v", got)
	}
	view.Zoom = 150
	if got := piirto.TestSampleResolution(view, track, 1, 640, piirto.GateClick); got != piirto.GateFailAdvisory {
		t.Errorf("three pixels per stretched sample is still not enough, got %v", got)
	}
}

func TestSampleResolutionSegments(t *testing.T) {
	track := sineTrack(100, 10000)
	view := piirto.ViewInfo{
		Start: 0,
		Zoom:  100,
		Segments: []piirto.ZoomInterval{
			{Position: 0, AverageZoom: 100},
			{Position: 320, AverageZoom: 400},
		},
	}
	// time 5 is at pixel 500, within the second, zoomed-in segment
	if got := piirto.TestSampleResolution(view, track, 5, 640, piirto.GateClick); got != piirto.GatePass {
		t.Errorf("zoomed-in segment should pass, got %v", got)
	}
	// time 1 is at pixel 100, within the first segment
	if got := piirto.TestSampleResolution(view, track, 1, 640, piirto.GateClick); got != piirto.GateFailAdvisory {
		t.Errorf("zoomed-out segment should fail, got %v", got)
	}
}
