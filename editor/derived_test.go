package editor_test

import (
	"testing"

	"github.com/piirto/piirto"
)

func TestDerivedData(t *testing.T) {
	model := newEditTestModel(t)
	if got := model.TrackTitle(0); got != "Track 1" {
		t.Errorf("default track title is %q, want %q", got, "Track 1")
	}
	model.TrackName().SetValue("")
	if got := model.TrackTitle(0); got != "Track 1" {
		t.Errorf("title of an unnamed track is %q, want %q", got, "Track 1")
	}
	model.TrackName().SetValue("bass")
	if got := model.TrackTitle(0); got != "bass" {
		t.Errorf("track title is %q, want %q", got, "bass")
	}
	if got := model.TrackPeak(0); got != 0 {
		t.Errorf("peak of a silent track is %v, want 0", got)
	}
	d := model.Draw()
	if !d.Click(0, 0, 150, editRect, 0) {
		t.Fatal("Click returned false")
	}
	d.Release()
	drawn := piirto.DefaultScale().ValueOfPixel(150, editRect.Dy())
	if got := model.TrackPeak(0); got != -drawn {
		t.Errorf("track peak is %v, want %v", got, -drawn)
	}
	mins, maxs, bucketSize := model.ClipSummary(0, 0)
	if bucketSize <= 0 || len(mins) == 0 || len(mins) != len(maxs) {
		t.Fatalf("clip summary has %d mins, %d maxs, bucket size %d", len(mins), len(maxs), bucketSize)
	}
	numSamples := len(model.Project().Tracks[0].Clips[0].Samples)
	if want := (numSamples + bucketSize - 1) / bucketSize; len(mins) != want {
		t.Errorf("clip summary has %d buckets, want %d", len(mins), want)
	}
	if mins[0] != drawn {
		t.Errorf("first bucket min is %v, want %v", mins[0], drawn)
	}
	if maxs[0] != 0 {
		t.Errorf("first bucket max is %v, want 0", maxs[0])
	}
	// undoing the edit refreshes the summary
	model.Undo().Do()
	mins, _, _ = model.ClipSummary(0, 0)
	if mins[0] != 0 {
		t.Errorf("first bucket min after undo is %v, want 0", mins[0])
	}
	// out of range queries are not an error
	if title := model.TrackTitle(7); title != "" {
		t.Errorf("title of a missing track is %q, want empty", title)
	}
	if mins, maxs, _ := model.ClipSummary(7, 0); mins != nil || maxs != nil {
		t.Error("summary of a missing track is not nil")
	}
}
