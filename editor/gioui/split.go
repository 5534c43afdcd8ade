package gioui

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// Split lays out two widgets side by side, with a draggable bar between them
// for adjusting the sizes.
type Split struct {
	// Ratio is the current split position: 0 is center, -1 completely to the
	// left/top, 1 completely to the right/bottom.
	Ratio float32
	// Bar is the width of the draggable bar.
	Bar unit.Dp
	// Axis layout.Horizontal splits into left and right, layout.Vertical
	// into top and bottom.
	Axis layout.Axis

	drag      bool
	dragID    pointer.ID
	dragCoord float32
}

var defaultBarWidth = unit.Dp(10)

func (s *Split) update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if s.drag {
				break
			}
			s.dragID = e.PointerID
			if s.Axis == layout.Horizontal {
				s.dragCoord = e.Position.X
			} else {
				s.dragCoord = e.Position.Y
			}
			s.drag = true
		case pointer.Drag:
			if !s.drag || s.dragID != e.PointerID {
				break
			}
			var delta float32
			if s.Axis == layout.Horizontal {
				delta = e.Position.X - s.dragCoord
				s.dragCoord = e.Position.X
				s.Ratio += delta * 2 / float32(gtx.Constraints.Max.X)
			} else {
				delta = e.Position.Y - s.dragCoord
				s.dragCoord = e.Position.Y
				s.Ratio += delta * 2 / float32(gtx.Constraints.Max.Y)
			}
		case pointer.Release, pointer.Cancel:
			s.drag = false
		}
	}
}

func (s *Split) Layout(gtx C, first, second layout.Widget) D {
	s.update(gtx)

	bar := gtx.Dp(s.Bar)
	if bar <= 1 {
		bar = gtx.Dp(defaultBarWidth)
	}
	coord := gtx.Constraints.Max.X
	if s.Axis == layout.Vertical {
		coord = gtx.Constraints.Max.Y
	}

	low := -1 + float32(bar)/float32(coord)*2
	if s.Ratio < low {
		s.Ratio = low
	}
	if s.Ratio > 1 {
		s.Ratio = 1
	}

	proportion := (s.Ratio + 1) / 2
	firstSize := int(proportion*float32(coord) - float32(bar))
	secondOffset := firstSize + bar
	secondSize := coord - secondOffset

	// snap to the edges when the bar is dragged near them
	const snapMargin = 0.1
	if s.Ratio < low+snapMargin {
		firstSize = 0
		secondOffset = bar
		secondSize = coord - bar
	} else if s.Ratio > 1-snapMargin {
		firstSize = coord - bar
		secondOffset = coord
		secondSize = 0
	}

	var barRect image.Rectangle
	if s.Axis == layout.Horizontal {
		barRect = image.Rect(firstSize, 0, secondOffset, gtx.Constraints.Max.Y)
	} else {
		barRect = image.Rect(0, firstSize, gtx.Constraints.Max.X, secondOffset)
	}
	area := clip.Rect(barRect).Push(gtx.Ops)
	event.Op(gtx.Ops, s)
	if s.Axis == layout.Horizontal {
		pointer.CursorColResize.Add(gtx.Ops)
	} else {
		pointer.CursorRowResize.Add(gtx.Ops)
	}
	area.Pop()

	{
		gtx := gtx
		if s.Axis == layout.Horizontal {
			gtx.Constraints = layout.Exact(image.Pt(firstSize, gtx.Constraints.Max.Y))
		} else {
			gtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, firstSize))
		}
		area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops)
		first(gtx)
		area.Pop()
	}

	{
		gtx := gtx
		var transform op.TransformStack
		if s.Axis == layout.Horizontal {
			transform = op.Offset(image.Pt(secondOffset, 0)).Push(gtx.Ops)
			gtx.Constraints = layout.Exact(image.Pt(secondSize, gtx.Constraints.Max.Y))
		} else {
			transform = op.Offset(image.Pt(0, secondOffset)).Push(gtx.Ops)
			gtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, secondSize))
		}
		area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops)
		second(gtx)
		area.Pop()
		transform.Pop()
	}

	return D{Size: gtx.Constraints.Max}
}
