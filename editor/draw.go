package editor

import (
	"image"

	"github.com/piirto/piirto"
)

type (
	// Draw is the pencil tool: it turns pointer gestures over a track lane
	// into sample edits. A gesture is click, zero or more drags, and a
	// release; the whole gesture becomes a single undo step, and a cancelled
	// gesture rolls every edit back. All methods are called from the GUI
	// event loop goroutine.
	Draw Model

	// Modifiers is the state of the modifier keys during a pointer event.
	Modifiers int

	// Cursor tells the GUI which pointer cursor to show over a track lane.
	Cursor int

	// drawState is the state of one gesture, alive from a validated click to
	// its release or cancel. complete is the pending change completion;
	// calling it commits or, if the change was cancelled first, rolls back.
	drawState struct {
		trackIndex        int
		rect              image.Rectangle
		smoothing         bool
		clickedStartPixel int
		lastDragPixel     int
		lastDragValue     float32
		complete          func()
		active            bool
	}
)

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
)

const (
	CursorPencil Cursor = iota
	CursorSmooth
	CursorDisabled
)

// how close to the sample, in pixels, the pointer has to be to grab it
const yTolerance = 10

func (m *Model) Draw() *Draw { return (*Draw)(m) }

// HitPreview returns the status bar message and the cursor for a pointer
// hovering over a track lane.
func (d *Draw) HitPreview(mods Modifiers) (message string, cursor Cursor) {
	message = "Click and drag to edit the samples"
	m := (*Model)(d)
	if m.playing {
		return message, CursorDisabled
	}
	if mods&ModAlt != 0 {
		return message, CursorSmooth
	}
	return message, CursorPencil
}

// HitTest tells whether a click at the pixel would grab a sample of the
// track: the view has to be zoomed in enough around that time and the pixel
// has to be vertically close to the sample it is over. rect is the lane of
// the track on screen; x, y are in the same coordinates.
func (d *Draw) HitTest(track, x, y int, rect image.Rectangle) bool {
	m := (*Model)(d)
	if track < 0 || track >= len(m.d.Project.Tracks) {
		return false
	}
	t := &m.d.Project.Tracks[track]
	time := m.d.View.PixelToTime(x, rect.Min.X)
	if piirto.TestSampleResolution(m.d.View, t, time, rect.Dx(), piirto.GateHitTest) != piirto.GatePass {
		return false
	}
	tt := t.SnapToSample(time)
	sample, ok := t.FloatAtTime(tt)
	if !ok {
		return false
	}
	shown := sample * t.EnvelopeAt(tt)
	sy := t.Scale.PixelOfValue(shown, rect.Dy(), true, false) + rect.Min.Y
	dy := sy - y
	if dy < 0 {
		dy = -dy
	}
	return dy < yTolerance
}

// Click starts a gesture on the track, editing the sample under the pointer,
// or with ModAlt held, smoothing the samples around it. Returns false if the
// gesture could not start; in that case no edit was made.
func (d *Draw) Click(track, x, y int, rect image.Rectangle, mods Modifiers) bool {
	m := (*Model)(d)
	if d.draw.active { // we missed the release of the previous gesture
		d.Cancel()
	}
	if m.playing || track < 0 || track >= len(m.d.Project.Tracks) {
		return false
	}
	t := &m.d.Project.Tracks[track]
	time := m.d.View.PixelToTime(x, rect.Min.X)
	if r := piirto.TestSampleResolution(m.d.View, t, time, rect.Dx(), piirto.GateClick); r != piirto.GatePass {
		if r == piirto.GateFailAdvisory {
			m.Alerts().AddNamed("DrawTool", "To use Draw, zoom in further until you can see the individual samples.", Warning)
		}
		return false
	}
	d.draw = drawState{
		trackIndex: track,
		rect:       rect,
		smoothing:  mods&ModAlt != 0,
		active:     true,
	}
	d.draw.complete = m.change("MoveSamples", TrackChange, MajorChange)
	t0 := t.SnapToSample(time)
	d.draw.clickedStartPixel = m.d.View.TimeToPixel(t0)
	if d.draw.smoothing {
		region, valid := t.FloatsCenteredAroundTime(t0, m.d.Smoothing.KernelRadius+m.d.Smoothing.BrushRadius)
		out := m.d.Smoothing.Smooth(region, valid)
		t.SetFloatsCenteredAroundTime(t0, out, m.d.Smoothing.BrushRadius, piirto.WriteExact)
	} else {
		newLevel := d.sampleLevel(y, t0)
		t.SetFloatAtTime(t0, newLevel, piirto.WriteExact)
		d.draw.lastDragValue = newLevel
	}
	d.draw.lastDragPixel = d.draw.clickedStartPixel
	return true
}

// Drag extends the gesture to a new pointer position, interpolating a line of
// samples from the previous anchor. With ModCtrl held the anchor stays at the
// clicked pixel, so dragging redraws the same stretch over and over. If the
// gesture cannot continue, it is cancelled and all its edits roll back.
func (d *Draw) Drag(x, y int, mods Modifiers) {
	m := (*Model)(d)
	if !d.draw.active {
		return
	}
	t := &m.d.Project.Tracks[d.draw.trackIndex]
	time := m.d.View.PixelToTime(x, d.draw.rect.Min.X)
	if m.playing || piirto.TestSampleResolution(m.d.View, t, time, d.draw.rect.Dx(), piirto.GateHitTest) != piirto.GatePass {
		d.Cancel()
		return
	}
	if d.draw.smoothing {
		return
	}
	t0 := m.d.View.PixelToTime(d.draw.lastDragPixel, 0)
	t1 := time
	x1 := m.d.View.TimeToPixel(t1)
	if mods&ModCtrl != 0 {
		x1 = d.draw.clickedStartPixel
	}
	newLevel := d.sampleLevel(y, t0)
	interp := piirto.LineInterpolator(t0, t1, d.draw.lastDragValue, newLevel)
	t.SetFloatsWithinTimeRange(min(t0, t1), max(t0, t1), interp, piirto.WriteExact)
	d.draw.lastDragPixel = x1
	d.draw.lastDragValue = newLevel
}

// Release ends the gesture, committing all its edits as one undo step.
func (d *Draw) Release() {
	m := (*Model)(d)
	if !d.draw.active {
		return
	}
	if m.playing {
		d.Cancel()
		return
	}
	d.draw.complete()
	d.draw = drawState{}
}

// Cancel aborts the gesture and rolls back every edit it made. Calling it
// again once the gesture is gone is a no-op.
func (d *Draw) Cancel() {
	m := (*Model)(d)
	if !d.draw.active {
		return
	}
	m.changeCancel = true
	d.draw.complete()
	d.draw = drawState{}
}

// Active tells whether a gesture is going on.
func (d *Draw) Active() bool { return d.draw.active }

// sampleLevel converts the pointer y to the sample value that would show at
// that pixel, compensating for the envelope so that the drawn waveform lands
// where the pointer is.
func (d *Draw) sampleLevel(y int, t0 float64) float32 {
	t := &d.d.Project.Tracks[d.draw.trackIndex]
	level := t.Scale.ValueOfPixel(y-d.draw.rect.Min.Y, d.draw.rect.Dy())
	return piirto.ApplyEnvelope(level, t.EnvelopeAt(t0))
}
