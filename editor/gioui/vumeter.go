package gioui

import (
	"image"

	"github.com/chewxy/math32"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// VuMeter shows the peak levels of the two playback channels as horizontal
// decibel bars.
type VuMeter struct {
	Theme *Theme
	Peaks [2]float32 // linear amplitudes
}

func (v VuMeter) Layout(gtx C) D {
	defer op.Offset(image.Point{}).Push(gtx.Ops).Pop()
	gtx.Constraints.Max.Y = gtx.Dp(unit.Dp(12))
	height := gtx.Dp(unit.Dp(6))
	rangeDB := v.Theme.VuMeter.RangeDB
	for j := 0; j < 2; j++ {
		db := 20 * math32.Log10(v.Peaks[j]) // silence gives -Inf and draws nothing
		if value := db + rangeDB; value > 0 {
			color := v.Theme.VuMeter.Bar
			if db >= 0 {
				color = v.Theme.VuMeter.Clip
			}
			x := min(int(value/rangeDB*float32(gtx.Constraints.Max.X)+0.5), gtx.Constraints.Max.X)
			paint.FillShape(gtx.Ops, color, clip.Rect(image.Rect(0, 0, x, height)).Op())
			paint.FillShape(gtx.Ops, v.Theme.VuMeter.Peak, clip.Rect(image.Rect(x-1, 0, x, height)).Op())
		}
		op.Offset(image.Point{Y: height}).Add(gtx.Ops)
	}
	return D{Size: gtx.Constraints.Max}
}
