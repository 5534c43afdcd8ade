package piirto

import "math"

type (
	// ViewInfo is a snapshot of the horizontal mapping between time and
	// pixels: the time at the left edge of the view and the zoom level, in
	// pixels per second. The mapping is uniform. Segments can optionally carry
	// a piecewise partition of the view with per-part average zoom levels;
	// resolution queries walk the partition instead of assuming the uniform
	// zoom, but the time mapping itself ignores it.
	ViewInfo struct {
		Start    float64
		Zoom     float64
		Segments []ZoomInterval `yaml:"-" json:"-"`
	}

	// ZoomInterval is one part of a view partition: the leftmost pixel of the
	// part and the average zoom within it, in pixels per second.
	ZoomInterval struct {
		Position    int
		AverageZoom float64
	}
)

// PixelToTime returns the time shown at pixel x, where origin is the x
// coordinate of the left edge of the view.
func (v ViewInfo) PixelToTime(x, origin int) float64 {
	return v.Start + float64(x-origin)/v.Zoom
}

// TimeToPixel returns the pixel showing the given time, relative to the left
// edge of the view.
func (v ViewInfo) TimeToPixel(time float64) int {
	return int(math.Floor((time-v.Start)*v.Zoom + 0.5))
}

// Intervals returns the partition of a view of the given width, for
// resolution queries. Without explicit segments the whole width is a single
// interval at the uniform zoom.
func (v ViewInfo) Intervals(width int) []ZoomInterval {
	if len(v.Segments) > 0 {
		return v.Segments
	}
	return []ZoomInterval{{Position: 0, AverageZoom: v.Zoom}}
}
