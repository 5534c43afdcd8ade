package gioui

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Surface fills the background with a shade of gray before laying out the
// wrapped widget, brightening slightly when Focus is set.
type Surface struct {
	Gray    int
	Inset   layout.Inset
	FitSize bool
	Focus   bool
}

func (s Surface) Layout(gtx C, w layout.Widget) D {
	bg := func(gtx C) D {
		gray := s.Gray
		if s.Focus {
			gray += 8
		}
		g := uint8(min(max(gray, 0), 255))
		paint.FillShape(gtx.Ops, color.NRGBA{R: g, G: g, B: g, A: 255}, clip.Rect{Max: gtx.Constraints.Min}.Op())
		return D{Size: gtx.Constraints.Min}
	}
	fg := func(gtx C) D {
		return s.Inset.Layout(gtx, w)
	}
	if s.FitSize {
		macro := op.Record(gtx.Ops)
		dims := fg(gtx)
		call := macro.Stop()
		gtx.Constraints = layout.Exact(dims.Size)
		bg(gtx)
		call.Add(gtx.Ops)
		return dims
	}
	gtxbg := gtx
	gtxbg.Constraints.Min = gtxbg.Constraints.Max
	bg(gtxbg)
	return fg(gtx)
}
