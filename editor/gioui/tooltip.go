package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/x/component"
)

// TipArea shows a tooltip under the wrapped widget after the pointer has
// hovered it for a while, or after a long press. The zero value is ready to
// use.
type TipArea struct {
	component.VisibilityAnimation
	hover     component.InvalidateDeadline
	press     component.InvalidateDeadline
	longPress component.InvalidateDeadline
	exit      component.InvalidateDeadline
	init      bool
}

const (
	tipHoverDelay    = 500 * time.Millisecond
	tipLongPressTime = 500 * time.Millisecond
	tipShowDuration  = 1500 * time.Millisecond
	tipFadeDuration  = 250 * time.Millisecond
	// tooltips die out eventually even if we miss the pointer.Leave
	tipMaxDuration = 5000 * time.Millisecond
)

func (t *TipArea) update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Press | pointer.Release | pointer.Enter | pointer.Leave,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		t.exit.SetTarget(gtx.Now.Add(tipMaxDuration))
		switch e.Kind {
		case pointer.Enter:
			t.hover.SetTarget(gtx.Now.Add(tipHoverDelay))
		case pointer.Leave:
			t.VisibilityAnimation.Disappear(gtx.Now)
			t.hover.ClearTarget()
		case pointer.Press:
			t.press.SetTarget(gtx.Now.Add(tipLongPressTime))
		case pointer.Release:
			t.press.ClearTarget()
		case pointer.Cancel:
			t.hover.ClearTarget()
			t.press.ClearTarget()
		}
	}
	if t.hover.Process(gtx) {
		t.VisibilityAnimation.Appear(gtx.Now)
	}
	if t.press.Process(gtx) {
		t.VisibilityAnimation.Appear(gtx.Now)
		t.longPress.SetTarget(gtx.Now.Add(tipShowDuration))
	}
	if t.longPress.Process(gtx) {
		t.VisibilityAnimation.Disappear(gtx.Now)
	}
	if t.exit.Process(gtx) {
		t.VisibilityAnimation.Disappear(gtx.Now)
	}
}

func (t *TipArea) Layout(gtx C, tip component.Tooltip, w layout.Widget) D {
	if !t.init {
		t.init = true
		t.VisibilityAnimation.State = component.Invisible
		t.VisibilityAnimation.Duration = tipFadeDuration
	}
	t.update(gtx)
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(w),
		layout.Expanded(func(gtx C) D {
			defer pointer.PassOp{}.Push(gtx.Ops).Pop()
			defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
			event.Op(gtx.Ops, t)
			area := gtx.Constraints.Min
			gtx.Constraints.Min = image.Point{}
			if t.Visible() {
				macro := op.Record(gtx.Ops)
				tip.Bg = component.Interpolate(color.NRGBA{}, tip.Bg, t.VisibilityAnimation.Revealed(gtx))
				dims := tip.Layout(gtx)
				call := macro.Stop()
				macro = op.Record(gtx.Ops)
				op.Offset(image.Pt(area.X/2-dims.Size.X/2, area.Y)).Add(gtx.Ops)
				call.Add(gtx.Ops)
				op.Defer(gtx.Ops, macro.Stop())
			}
			return D{}
		}),
	)
}

func Tooltip(th *Theme, tip string) component.Tooltip {
	tooltip := component.PlatformTooltip(&th.Material, tip)
	tooltip.Bg = th.Tooltip.Bg
	tooltip.Text.Color = th.Tooltip.Color
	return tooltip
}
