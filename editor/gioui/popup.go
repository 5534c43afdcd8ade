package gioui

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// PopupStyle draws a floating surface with a drop shadow on top of the rest
// of the ui. A press anywhere outside the surface closes it.
type PopupStyle struct {
	Visible        *bool
	SurfaceColor   color.NRGBA
	ShadowColor    color.NRGBA
	ShadowN        unit.Dp
	ShadowE        unit.Dp
	ShadowW        unit.Dp
	ShadowS        unit.Dp
	SE, SW, NW, NE unit.Dp
}

func Popup(style PopupStyle, visible *bool) PopupStyle {
	style.Visible = visible
	return style
}

func (s PopupStyle) Layout(gtx C, contents layout.Widget) D {
	if !*s.Visible {
		return D{}
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: s.Visible, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			*s.Visible = false
		}
	}
	bg := func(gtx C) D {
		rrect := clip.RRect{
			Rect: image.Rectangle{Max: gtx.Constraints.Min},
			SE:   gtx.Dp(s.SE),
			SW:   gtx.Dp(s.SW),
			NW:   gtx.Dp(s.NW),
			NE:   gtx.Dp(s.NE),
		}
		shadow := rrect
		shadow.Rect.Min = shadow.Rect.Min.Sub(image.Pt(gtx.Dp(s.ShadowW), gtx.Dp(s.ShadowN)))
		shadow.Rect.Max = shadow.Rect.Max.Add(image.Pt(gtx.Dp(s.ShadowE), gtx.Dp(s.ShadowS)))
		paint.FillShape(gtx.Ops, s.ShadowColor, shadow.Op(gtx.Ops))
		paint.FillShape(gtx.Ops, s.SurfaceColor, rrect.Op(gtx.Ops))
		// the whole window closes the popup, except the popup itself
		area := clip.Rect(image.Rect(-1e6, -1e6, 1e6, 1e6)).Push(gtx.Ops)
		event.Op(gtx.Ops, s.Visible)
		area.Pop()
		area = clip.Rect(shadow.Rect).Push(gtx.Ops)
		event.Op(gtx.Ops, &popupTag)
		area.Pop()
		return D{Size: gtx.Constraints.Min}
	}
	macro := op.Record(gtx.Ops)
	dims := layout.Stack{}.Layout(gtx,
		layout.Expanded(bg),
		layout.Stacked(contents),
	)
	op.Defer(gtx.Ops, macro.Stop())
	return dims
}

var popupTag bool
