package gioui

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"

	"github.com/piirto/piirto"
	"github.com/piirto/piirto/editor"
)

// zoomStepFactor is the zoom change of a single zoom in/out step, be it a key
// press or one notch of the scroll wheel.
const zoomStepFactor = 1.25

// stemZoomThreshold is the zoom level, in pixels per sample, above which the
// waveform is drawn as individual samples with stems instead of a filled
// min/max outline.
const stemZoomThreshold = 3

type WaveView struct {
	NameEditor *Editor

	size      image.Point
	statusMsg string
	cursor    pointer.Cursor
}

func NewWaveView() *WaveView {
	return &WaveView{
		NameEditor: NewEditor(true, true, text.Start),
		cursor:     pointer.CursorDefault,
	}
}

func (wv *WaveView) Layout(gtx C) D {
	g := GUIFromContext(gtx)
	wv.size = gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: wv.size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, wv)
	p := g.Play()
	if p.IsFollowing().Value() && p.Started().Value() {
		g.Viewport().EnsureVisible(p.Position(), wv.size.X)
	}
	wv.update(gtx, g)
	wv.cursor.Add(gtx.Ops)
	paint.FillShape(gtx.Ops, g.Theme.Wave.Bg, clip.Rect(image.Rectangle{Max: wv.size}).Op())
	project := g.Project()
	for i := range project.Tracks {
		wv.layoutLane(gtx, g, &project, i)
	}
	if p.Started().Value() || p.Position() > 0 {
		if x := g.ViewInfo().TimeToPixel(p.Position()); x >= 0 && x < wv.size.X {
			paint.FillShape(gtx.Ops, g.Theme.Wave.PlayCursor, clip.Rect(image.Rect(x, 0, x+1, wv.size.Y)).Op())
		}
	}
	if wv.statusMsg != "" {
		layout.SW.Layout(gtx, func(gtx C) D {
			return layout.UniformInset(4).Layout(gtx, Label(g.Theme, &g.Theme.Wave.Status, wv.statusMsg).Layout)
		})
	}
	return D{Size: wv.size}
}

func (wv *WaveView) update(gtx C, g *GUI) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  wv,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Leave | pointer.Scroll,
			ScrollX: pointer.ScrollRange{Min: -1e6, Max: 1e6},
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		x, y := int(e.Position.X), int(e.Position.Y)
		switch e.Kind {
		case pointer.Press:
			if e.Buttons != pointer.ButtonPrimary {
				continue
			}
			lane, rect := wv.laneAt(g, y)
			if lane < 0 {
				continue
			}
			g.SelectedTrack().SetValue(lane)
			if g.Draw().Click(lane, x, y, rect, drawModifiers(e.Modifiers)) {
				_, wv.cursor = wv.drawCursor(g, e.Modifiers, true)
			}
		case pointer.Drag:
			g.Draw().Drag(x, y, drawModifiers(e.Modifiers))
		case pointer.Release:
			g.Draw().Release()
			wv.hover(g, x, y, e.Modifiers)
		case pointer.Cancel:
			g.Draw().Cancel()
		case pointer.Leave:
			wv.statusMsg = ""
			wv.cursor = pointer.CursorDefault
		case pointer.Move:
			wv.hover(g, x, y, e.Modifiers)
		case pointer.Scroll:
			if e.Modifiers.Contain(key.ModShortcut) {
				factor := zoomStepFactor
				if e.Scroll.Y > 0 {
					factor = 1 / zoomStepFactor
				}
				g.Viewport().ZoomAt(x, 0, factor)
			} else {
				g.Viewport().Scroll(int(e.Scroll.X + e.Scroll.Y))
			}
		}
	}
}

func (wv *WaveView) hover(g *GUI, x, y int, mods key.Modifiers) {
	lane, rect := wv.laneAt(g, y)
	if lane < 0 {
		wv.statusMsg = ""
		wv.cursor = pointer.CursorDefault
		return
	}
	hit := g.Draw().HitTest(lane, x, y, rect)
	wv.statusMsg, wv.cursor = wv.drawCursor(g, mods, hit)
}

// drawCursor maps the draw tool state to a mouse cursor. The tool cursor is
// only shown when the pointer is within grabbing distance of a sample, so
// that the user can tell whether a click would edit anything.
func (wv *WaveView) drawCursor(g *GUI, mods key.Modifiers, hit bool) (string, pointer.Cursor) {
	msg, cur := g.Draw().HitPreview(drawModifiers(mods))
	if !hit {
		return msg, pointer.CursorDefault
	}
	switch cur {
	case editor.CursorSmooth:
		return msg, pointer.CursorGrab
	case editor.CursorDisabled:
		return msg, pointer.CursorNotAllowed
	default:
		return msg, pointer.CursorCrosshair
	}
}

func drawModifiers(mods key.Modifiers) editor.Modifiers {
	var ret editor.Modifiers
	if mods.Contain(key.ModAlt) {
		ret |= editor.ModAlt
	}
	if mods.Contain(key.ModCtrl) || mods.Contain(key.ModShortcut) {
		ret |= editor.ModCtrl
	}
	return ret
}

// laneAt returns the track lane containing the y coordinate and its screen
// rectangle. Lanes divide the view height equally between the tracks.
func (wv *WaveView) laneAt(g *GUI, y int) (int, image.Rectangle) {
	n := len(g.Project().Tracks)
	if n == 0 || wv.size.Y <= 0 {
		return -1, image.Rectangle{}
	}
	h := wv.size.Y / n
	if h <= 0 {
		return -1, image.Rectangle{}
	}
	lane := min(max(y/h, 0), n-1)
	return lane, image.Rect(0, lane*h, wv.size.X, (lane+1)*h)
}

func (wv *WaveView) layoutLane(gtx C, g *GUI, project *piirto.Project, index int) {
	n := len(project.Tracks)
	h := wv.size.Y / n
	if h <= 0 {
		return
	}
	rect := image.Rect(0, index*h, wv.size.X, (index+1)*h)
	track := &project.Tracks[index]
	theme := g.Theme
	selected := index == g.SelectedTrack().Value()
	if selected {
		paint.FillShape(gtx.Ops, theme.Wave.SelectedBg, clip.Rect(rect).Op())
	}
	if zeroY := track.Scale.PixelOfValue(0, h, true, true); zeroY >= 0 && zeroY < h {
		paint.FillShape(gtx.Ops, theme.Wave.Center, clip.Rect(image.Rect(0, rect.Min.Y+zeroY, wv.size.X, rect.Min.Y+zeroY+1)).Op())
	}
	view := g.ViewInfo()
	for c := range track.Clips {
		wv.layoutClip(gtx, g, track, index, c, view, rect)
	}
	paint.FillShape(gtx.Ops, theme.Wave.Border, clip.Rect(image.Rect(0, rect.Max.Y-1, wv.size.X, rect.Max.Y)).Op())
	defer op.Offset(rect.Min.Add(image.Pt(6, 2))).Push(gtx.Ops).Pop()
	if selected {
		gtx := gtx
		gtx.Constraints = layout.Exact(image.Pt(min(wv.size.X/3, gtx.Dp(200)), gtx.Dp(18)))
		wv.NameEditor.Layout(gtx, g.TrackName(), theme, &theme.Wave.Name, "Track name")
	} else {
		Label(theme, &theme.Wave.Title, g.TrackTitle(index)).Layout(gtx)
	}
}

func (wv *WaveView) layoutClip(gtx C, g *GUI, track *piirto.Track, trackIndex, clipIndex int, view piirto.ViewInfo, rect image.Rectangle) {
	c := &track.Clips[clipIndex]
	x0, x1 := view.TimeToPixel(c.Start), view.TimeToPixel(c.End())
	if x1 < 0 || x0 >= wv.size.X || len(c.Samples) == 0 {
		return
	}
	if view.Zoom > stemZoomThreshold*c.Rate/c.StretchRatio() {
		wv.layoutSamples(gtx, g, track, c, view, rect)
	} else {
		wv.layoutSummary(gtx, g, track, trackIndex, clipIndex, view, rect)
	}
	for _, x := range [2]int{x0, x1} {
		if x >= 0 && x < wv.size.X {
			paint.FillShape(gtx.Ops, g.Theme.Wave.ClipEdge, clip.Rect(image.Rect(x, rect.Min.Y, x+1, rect.Max.Y)).Op())
		}
	}
}

// layoutSamples draws each visible sample as a stem from the zero line with a
// dot at the sample value, the way the waveform looks when zoomed in far
// enough for the draw tool.
func (wv *WaveView) layoutSamples(gtx C, g *GUI, track *piirto.Track, c *piirto.Clip, view piirto.ViewInfo, rect image.Rectangle) {
	theme := g.Theme
	h := rect.Dy()
	zeroY := rect.Min.Y + track.Scale.PixelOfValue(0, h, true, true)
	i0 := max(c.TimeToSamples(view.PixelToTime(0, 0)), 0)
	i1 := min(c.TimeToSamples(view.PixelToTime(wv.size.X, 0))+1, len(c.Samples)-1)
	sampleY := func(i int) (x, y int, visible bool) {
		t := c.SamplesToTime(i)
		x = view.TimeToPixel(t)
		if x < 0 || x >= wv.size.X {
			return 0, 0, false
		}
		v := c.Samples[i] * c.Envelope.ValueAt(t-c.Start)
		return x, rect.Min.Y + track.Scale.PixelOfValue(v, h, true, false), true
	}
	paint.ColorOp{Color: theme.Wave.Stem}.Add(gtx.Ops)
	for i := i0; i <= i1; i++ {
		if x, y, ok := sampleY(i); ok {
			fillRect(gtx, clip.Rect(image.Rect(x, min(y, zeroY), x+1, max(y, zeroY)+1)))
		}
	}
	paint.ColorOp{Color: theme.Wave.Sample}.Add(gtx.Ops)
	for i := i0; i <= i1; i++ {
		if x, y, ok := sampleY(i); ok {
			fillRect(gtx, clip.Rect(image.Rect(x-1, y-1, x+2, y+2).Intersect(rect)))
		}
	}
}

// layoutSummary draws the clip as a filled min/max outline, one vertical span
// per pixel column. Columns covering many samples use the cached bucket
// summary instead of scanning the samples.
func (wv *WaveView) layoutSummary(gtx C, g *GUI, track *piirto.Track, trackIndex, clipIndex int, view piirto.ViewInfo, rect image.Rectangle) {
	c := &track.Clips[clipIndex]
	mins, maxs, bucketSize := g.ClipSummary(trackIndex, clipIndex)
	h := rect.Dy()
	xStart := max(view.TimeToPixel(c.Start), 0)
	xEnd := min(view.TimeToPixel(c.End()), wv.size.X)
	paint.ColorOp{Color: g.Theme.Wave.Fill}.Add(gtx.Ops)
	for x := xStart; x < xEnd; x++ {
		tl, tr := view.PixelToTime(x, 0), view.PixelToTime(x+1, 0)
		i0 := max(c.TimeToSamples(tl), 0)
		i1 := min(c.TimeToSamples(tr), len(c.Samples))
		if i0 >= len(c.Samples) {
			break
		}
		if i1 <= i0 {
			i1 = i0 + 1
		}
		var lo, hi float32
		if i1-i0 >= 2*bucketSize && len(mins) > 0 {
			b0, b1 := i0/bucketSize, min((i1-1)/bucketSize, len(mins)-1)
			lo, hi = mins[b0], maxs[b0]
			for b := b0 + 1; b <= b1; b++ {
				lo, hi = min(lo, mins[b]), max(hi, maxs[b])
			}
		} else {
			lo, hi = c.Samples[i0], c.Samples[i0]
			for _, v := range c.Samples[i0+1 : i1] {
				lo, hi = min(lo, v), max(hi, v)
			}
		}
		env := c.Envelope.ValueAt((tl+tr)/2 - c.Start)
		lo, hi = lo*env, hi*env
		if lo > hi {
			lo, hi = hi, lo
		}
		yTop := rect.Min.Y + track.Scale.PixelOfValue(hi, h, true, true)
		yBot := rect.Min.Y + track.Scale.PixelOfValue(lo, h, true, true)
		fillRect(gtx, clip.Rect(image.Rect(x, yTop, x+1, yBot+1)))
	}
}
