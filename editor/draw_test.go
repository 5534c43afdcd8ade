package editor_test

import (
	"bytes"
	"image"
	"io"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/piirto/piirto"
	"github.com/piirto/piirto/editor"
)

// editRect is the track lane used by the draw tests. The odd height makes the
// pixel of a sample value and the value of a pixel exact inverses of each
// other.
var editRect = image.Rect(0, 0, 400, 201)

func newEditTestModel(t *testing.T) *editor.Model {
	t.Helper()
	broker := editor.NewBroker()
	model := editor.NewModel(broker, editor.NullMIDIContext{}, "")
	model.Viewport().ZoomAt(0, 0, 1e9)
	return model
}

func sampleAt(m *editor.Model, index int) float32 {
	return m.Project().Tracks[0].Clips[0].Samples[index]
}

func samplePixel(m *editor.Model, index int) int {
	return m.ViewInfo().TimeToPixel(float64(index) / 44100)
}

func TestDrawClick(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	if !d.Click(0, 0, 50, editRect, 0) {
		t.Fatal("Click returned false on an editable sample")
	}
	if !d.Active() {
		t.Error("no gesture active after a successful click")
	}
	want := piirto.DefaultScale().ValueOfPixel(50, editRect.Dy())
	if got := sampleAt(model, 0); got != want {
		t.Errorf("sample after click is %v, want %v", got, want)
	}
	if model.ChangedSinceSave() {
		t.Error("project marked changed before the gesture ended")
	}
	d.Release()
	if d.Active() {
		t.Error("gesture still active after release")
	}
	if !model.ChangedSinceSave() {
		t.Error("project not marked changed after the gesture")
	}
	if !model.Undo().Enabled() {
		t.Fatal("no undo step after the gesture")
	}
	model.Undo().Do()
	if got := sampleAt(model, 0); got != 0 {
		t.Errorf("sample after undo is %v, want 0", got)
	}
	if !model.Redo().Enabled() {
		t.Fatal("no redo step after undo")
	}
	model.Redo().Do()
	if got := sampleAt(model, 0); got != want {
		t.Errorf("sample after redo is %v, want %v", got, want)
	}
}

func TestDrawDragRamp(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	v0 := piirto.DefaultScale().ValueOfPixel(80, editRect.Dy())
	v1 := piirto.DefaultScale().ValueOfPixel(40, editRect.Dy())
	if !d.Click(0, 0, 80, editRect, 0) {
		t.Fatal("Click returned false")
	}
	d.Drag(samplePixel(model, 4), 40, 0)
	if got := sampleAt(model, 0); got != v0 {
		t.Errorf("ramp starts at %v, want %v", got, v0)
	}
	for i := 1; i <= 4; i++ {
		if sampleAt(model, i) <= sampleAt(model, i-1) {
			t.Errorf("ramp not increasing at sample %d: %v <= %v", i, sampleAt(model, i), sampleAt(model, i-1))
		}
		if got := sampleAt(model, i); got > v1 {
			t.Errorf("ramp overshoots at sample %d: %v > %v", i, got, v1)
		}
	}
	// the next drag continues from where the previous one ended
	before := sampleAt(model, 1)
	d.Drag(samplePixel(model, 8), 100, 0)
	if got := sampleAt(model, 1); got != before {
		t.Errorf("drag rewrote a sample before its anchor: %v, want %v", got, before)
	}
	d.Release()
	model.Undo().Do()
	for i := 0; i <= 8; i++ {
		if got := sampleAt(model, i); got != 0 {
			t.Errorf("sample %d is %v after undoing the gesture, want 0", i, got)
		}
	}
}

func TestDrawCtrlKeepsAnchor(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	if !d.Click(0, 0, 100, editRect, 0) {
		t.Fatal("Click returned false")
	}
	d.Drag(samplePixel(model, 4), 40, editor.ModCtrl)
	level := piirto.DefaultScale().ValueOfPixel(40, editRect.Dy())
	d.Drag(samplePixel(model, 2), 80, editor.ModCtrl)
	if got := sampleAt(model, 0); got != level {
		t.Errorf("sample at the clicked pixel is %v, want the previous drag level %v", got, level)
	}
	d.Release()
}

func TestDrawCancelRollsBack(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	if !d.Click(0, 0, 50, editRect, 0) {
		t.Fatal("Click returned false")
	}
	d.Drag(samplePixel(model, 4), 40, 0)
	model.Viewport().ZoomAt(0, 0, 1e-9)
	d.Drag(samplePixel(model, 4), 60, 0)
	if d.Active() {
		t.Error("gesture still active after the view lost sample resolution")
	}
	for i := 0; i <= 4; i++ {
		if got := sampleAt(model, i); got != 0 {
			t.Errorf("sample %d is %v after cancel, want 0", i, got)
		}
	}
	if model.Undo().Enabled() {
		t.Error("cancelled gesture left an undo step")
	}
	if model.ChangedSinceSave() {
		t.Error("cancelled gesture marked the project changed")
	}
	// stray events after the cancel are no-ops
	d.Cancel()
	d.Release()
	d.Drag(samplePixel(model, 4), 60, 0)
}

func TestDrawSmoothing(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	// a lone full-scale spike to smooth out
	if !d.Click(0, 0, 0, editRect, 0) {
		t.Fatal("Click returned false")
	}
	d.Release()
	if got := sampleAt(model, 0); got != 1 {
		t.Fatalf("spike is %v, want 1", got)
	}
	if !d.Click(0, 0, 100, editRect, editor.ModAlt) {
		t.Fatal("smoothing click returned false")
	}
	smoothed := sampleAt(model, 0)
	if smoothed <= 0 || smoothed >= 1 {
		t.Errorf("smoothing left the spike at %v, want a value between 0 and 1", smoothed)
	}
	if got := sampleAt(model, 1); got <= 0 {
		t.Errorf("smoothing did not spread the spike to its neighbor: %v", got)
	}
	// smoothing is a point gesture; dragging does nothing
	d.Drag(samplePixel(model, 4), 0, editor.ModAlt)
	if got := sampleAt(model, 0); got != smoothed {
		t.Errorf("drag changed a sample during a smoothing gesture: %v, want %v", got, smoothed)
	}
	if got := sampleAt(model, 4); got != 0 {
		t.Errorf("drag edited sample 4 during a smoothing gesture: %v, want 0", got)
	}
	d.Release()
	model.Undo().Do()
	if got := sampleAt(model, 0); got != 1 {
		t.Errorf("undoing the smoothing gives %v, want the spike back at 1", got)
	}
}

func TestDrawGateAdvisory(t *testing.T) {
	broker := editor.NewBroker()
	model := editor.NewModel(broker, editor.NullMIDIContext{}, "")
	d := model.Draw()
	if d.Click(0, 100, 50, editRect, 0) {
		t.Fatal("Click started a gesture with the view zoomed all the way out")
	}
	if d.Active() {
		t.Error("gesture active after a rejected click")
	}
	found := false
	model.Alerts().Iterate(func(index int, a editor.Alert) bool {
		if a.Name == "DrawTool" {
			found = true
			if a.Priority != editor.Warning {
				t.Errorf("advisory priority is %v, want Warning", a.Priority)
			}
		}
		return true
	})
	if !found {
		t.Error("no advisory alert after a too-zoomed-out click")
	}
	// a repeated attempt replaces the advisory instead of stacking them
	d.Click(0, 100, 50, editRect, 0)
	if got := model.Alerts().Count(); got != 1 {
		t.Errorf("alert count after a second rejected click is %d, want 1", got)
	}
	// hit tests fail silently
	if d.HitTest(0, 100, 50, editRect) {
		t.Error("HitTest passes with the view zoomed all the way out")
	}
	if got := model.Alerts().Count(); got != 1 {
		t.Errorf("HitTest added an alert: count is %d, want 1", got)
	}
}

func TestDrawEnvelopeCompensation(t *testing.T) {
	broker := editor.NewBroker()
	model := editor.NewModel(broker, editor.NullMIDIContext{}, "")
	project := piirto.Project{Tracks: []piirto.Track{{
		Name:  "enveloped",
		Rate:  44100,
		Scale: piirto.DefaultScale(),
		Clips: []piirto.Clip{{
			Rate:     44100,
			Samples:  make([]float32, 44100),
			Envelope: &piirto.Envelope{Points: []piirto.EnvelopePoint{{Time: 0, Value: 0.5}}},
		}},
	}}}
	b, err := yaml.Marshal(project)
	if err != nil {
		t.Fatal(err)
	}
	model.ReadProject(io.NopCloser(bytes.NewReader(b)))
	if tracks := model.Project().Tracks; len(tracks) != 1 || len(tracks[0].Clips[0].Samples) != 44100 {
		t.Fatal("project did not load")
	}
	model.Viewport().ZoomAt(0, 0, 1e9)
	d := model.Draw()
	if !d.Click(0, 0, 80, editRect, 0) {
		t.Fatal("Click returned false")
	}
	d.Release()
	placed := piirto.DefaultScale().ValueOfPixel(80, editRect.Dy())
	want := piirto.ApplyEnvelope(placed, 0.5)
	if got := sampleAt(model, 0); got != want {
		t.Errorf("stored sample is %v, want %v to show at the clicked pixel", got, want)
	}
	// the drawn sample hits back at the pixel it was placed on, not at the
	// pixel of its raw value
	if !d.HitTest(0, 0, 80, editRect) {
		t.Error("drawn sample does not hit at the clicked pixel")
	}
	if d.HitTest(0, 0, 60, editRect) {
		t.Error("drawn sample hits at its raw level despite the envelope")
	}
	// values the envelope cannot reach clamp to full scale
	if !d.Click(0, 0, 0, editRect, 0) {
		t.Fatal("Click returned false")
	}
	d.Release()
	if got := sampleAt(model, 0); got != 1 {
		t.Errorf("stored sample is %v, want it clamped to 1", got)
	}
}

func TestDrawHitTestTolerance(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	// silence draws at the center line, pixel 100
	for _, c := range []struct {
		y   int
		hit bool
	}{{100, true}, {91, true}, {109, true}, {90, false}, {110, false}} {
		if got := d.HitTest(0, 0, c.y, editRect); got != c.hit {
			t.Errorf("HitTest at y=%d is %v, want %v", c.y, got, c.hit)
		}
	}
	// past the end of the clip there is nothing to hit
	if d.HitTest(0, model.ViewInfo().TimeToPixel(6), 100, editRect) {
		t.Error("HitTest passes past the end of the clip")
	}
	if d.HitTest(1, 0, 100, editRect) || d.HitTest(-1, 0, 100, editRect) {
		t.Error("HitTest passes on a track that does not exist")
	}
}

func TestDrawWhilePlaying(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	model.Play().Started().SetValue(true)
	if _, cursor := d.HitPreview(0); cursor != editor.CursorDisabled {
		t.Errorf("cursor during playback is %v, want CursorDisabled", cursor)
	}
	if d.Click(0, 0, 50, editRect, 0) {
		t.Fatal("Click started a gesture during playback")
	}
	model.Play().Started().SetValue(false)
	if !d.Click(0, 0, 50, editRect, 0) {
		t.Fatal("Click returned false after stopping")
	}
	model.Play().Started().SetValue(true)
	d.Release()
	if got := sampleAt(model, 0); got != 0 {
		t.Errorf("sample is %v after a release during playback, want the edit rolled back", got)
	}
	if model.Undo().Enabled() {
		t.Error("rolled back gesture left an undo step")
	}
}

func TestDrawClickDuringGesture(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	if !d.Click(0, 0, 50, editRect, 0) {
		t.Fatal("Click returned false")
	}
	// a second press means the release was lost; the first gesture rolls back
	if !d.Click(0, samplePixel(model, 2), 150, editRect, 0) {
		t.Fatal("second Click returned false")
	}
	if got := sampleAt(model, 0); got != 0 {
		t.Errorf("sample 0 is %v after the lost gesture, want 0", got)
	}
	want := piirto.DefaultScale().ValueOfPixel(150, editRect.Dy())
	if got := sampleAt(model, 2); got != want {
		t.Errorf("sample 2 is %v, want %v", got, want)
	}
	d.Release()
	model.Undo().Do()
	if got := sampleAt(model, 2); got != 0 {
		t.Errorf("sample 2 is %v after undo, want 0", got)
	}
	if model.Undo().Enabled() {
		t.Error("lost gesture left an undo step")
	}
}

func TestDrawHitPreview(t *testing.T) {
	model := newEditTestModel(t)
	d := model.Draw()
	msg, cursor := d.HitPreview(0)
	if msg == "" {
		t.Error("no status message for the draw tool")
	}
	if cursor != editor.CursorPencil {
		t.Errorf("cursor is %v, want CursorPencil", cursor)
	}
	if _, cursor := d.HitPreview(editor.ModAlt); cursor != editor.CursorSmooth {
		t.Errorf("cursor with alt held is %v, want CursorSmooth", cursor)
	}
}
