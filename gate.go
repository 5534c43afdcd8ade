package piirto

type (
	// GateResult tells whether the view around a position is zoomed in far
	// enough for editing individual samples, and if not, whether the caller
	// should explain that to the user.
	GateResult int

	// GateQuery distinguishes a silent probe from an actual attempt to edit;
	// only attempts get the user-facing explanation when they fail.
	GateQuery int
)

const (
	GatePass GateResult = iota
	GateFailSilent
	GateFailAdvisory
)

const (
	GateHitTest GateQuery = iota
	GateClick
)

// TestSampleResolution checks that the view, over a display of the given
// width, shows the samples around the given time wider than three pixels
// each, so that editing them one at a time is meaningful. The zoom is taken
// from the view partition interval covering the pixel of the time. Times not
// within any clip pass unconditionally.
func TestSampleResolution(view ViewInfo, track *Track, time float64, width int, query GateQuery) GateResult {
	x := max(view.TimeToPixel(time), 0)
	i := track.ClipAt(time)
	if i < 0 {
		return GatePass
	}
	c := &track.Clips[i]
	rate := c.Rate / c.StretchRatio()
	intervals := view.Intervals(width)
	prev := intervals[0]
	for _, it := range intervals[1:] {
		if it.Position > x {
			break
		}
		prev = it
	}
	if prev.AverageZoom > 3*rate {
		return GatePass
	}
	if query == GateClick {
		return GateFailAdvisory
	}
	return GateFailSilent
}
