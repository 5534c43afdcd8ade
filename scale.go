package piirto

import "github.com/chewxy/math32"

// AmplitudeScale describes how sample values map to the vertical axis of a
// waveform display. Min and Max are the values shown at the bottom and the top
// of the display, in linear units. When DB is set, values are placed by their
// magnitude in decibels instead, with DBRange giving the dynamic range shown;
// the sign of the value still chooses the half of the display.
type AmplitudeScale struct {
	DB      bool    `yaml:",omitempty"`
	DBRange float32 `yaml:",omitempty"`
	Min     float32
	Max     float32
}

// DefaultScale is a linear display showing the full sample range.
func DefaultScale() AmplitudeScale { return AmplitudeScale{Min: -1, Max: 1} }

// ValueOfPixel returns the sample value that would be drawn at the given y
// coordinate, with y = 0 at the top of a display of the given height. It is
// the inverse of PixelOfValue with outer placement and no clipping.
func (s AmplitudeScale) ValueOfPixel(y, height int) float32 {
	var v float32
	if height == 1 {
		v = (s.Min + s.Max) / 2
	} else {
		v = s.Max - float32(y)/float32(height-1)*(s.Max-s.Min)
	}
	if s.DB {
		v = s.fromDB(v)
	}
	return v
}

// PixelOfValue returns the y coordinate at which the given sample value is
// drawn on a display of the given height. outer places the value on the outer
// edge of the waveform shape instead of its center line; clip limits the
// value to the displayed range before placing it.
func (s AmplitudeScale) PixelOfValue(value float32, height int, outer, clip bool) int {
	if s.DB {
		if value != 0 {
			sign := float32(1)
			if value < 0 {
				sign = -1
			}
			db := 20 * math32.Log10(math32.Abs(value))
			value = (db + s.DBRange) / s.DBRange
			if !outer {
				value -= 0.5
			}
			if value < 0 {
				value = 0
			}
			value *= sign
		}
	} else if !outer {
		if value >= 0 {
			value -= 0.5
		} else {
			value += 0.5
		}
	}
	if clip {
		value = min(max(value, s.Min), s.Max)
	}
	value = (s.Max - value) / (s.Max - s.Min)
	return int(value*float32(height-1) + 0.5)
}

// fromDB maps a position on the decibel axis, in [-1, 1], back to a linear
// sample value.
func (s AmplitudeScale) fromDB(value float32) float32 {
	if value == 0 {
		return 0
	}
	sign := float32(1)
	if value < 0 {
		sign = -1
	}
	return sign * math32.Pow(10, (math32.Abs(value)*s.DBRange-s.DBRange)/20)
}
