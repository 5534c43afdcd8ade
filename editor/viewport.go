package editor

type Viewport Model

// view zoom bounds, in pixels per second
const (
	minZoom = 0.01
	maxZoom = 1e6
)

// Viewport returns the manipulator for the horizontal time scale of the
// waveform display. Scrolling and zooming are not undoable and do not mark
// the project changed.
func (m *Model) Viewport() *Viewport { return (*Viewport)(m) }

// Scroll moves the view by the given number of pixels, positive towards
// later times.
func (v *Viewport) Scroll(pixels int) {
	m := (*Model)(v)
	m.d.View.Start = max(m.d.View.Start+float64(pixels)/m.d.View.Zoom, 0)
}

// ZoomAt multiplies the zoom level by factor, keeping the time under the
// pixel x in place; origin is the x coordinate of the left edge of the view.
func (v *Viewport) ZoomAt(x, origin int, factor float64) {
	m := (*Model)(v)
	t := m.d.View.PixelToTime(x, origin)
	m.d.View.Zoom = min(max(m.d.View.Zoom*factor, minZoom), maxZoom)
	m.d.View.Start = max(t-float64(x-origin)/m.d.View.Zoom, 0)
}

// ZoomToFit zooms so that the whole project fills a view of the given width.
func (v *Viewport) ZoomToFit(width int) {
	m := (*Model)(v)
	duration := m.d.Project.Duration()
	if duration <= 0 || width <= 0 {
		return
	}
	m.d.View.Start = 0
	m.d.View.Zoom = min(max(float64(width)/duration, minZoom), maxZoom)
}

// EnsureVisible scrolls the view the minimal amount to bring the given time
// into a view of the given width, e.g. to follow the play position.
func (v *Viewport) EnsureVisible(time float64, width int) {
	m := (*Model)(v)
	x := m.d.View.TimeToPixel(time)
	if x >= 0 && x < width {
		return
	}
	if x < 0 {
		m.d.View.Start = max(time, 0)
		return
	}
	m.d.View.Start = max(time-float64(width-1)/m.d.View.Zoom, 0)
}
