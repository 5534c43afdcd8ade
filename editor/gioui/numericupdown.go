package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/piirto/piirto/editor"
)

type (
	NumericUpDownState struct {
		dragStartValue int
		dragStartXY    float32
		clickDecrease  gesture.Click
		clickIncrease  gesture.Click
		tipArea        TipArea
	}

	NumericUpDownStyle struct {
		TextColor         color.NRGBA
		DisabledTextColor color.NRGBA
		IconColor         color.NRGBA
		BgColor           color.NRGBA
		CornerRadius      unit.Dp
		ButtonWidth       unit.Dp
		UnitsPerStep      unit.Dp
		TextSize          unit.Sp
		Font              font.Font
		Width             unit.Dp
		Height            unit.Dp
	}

	// NumericUpDown edits an integer with - and + buttons, and additionally
	// by dragging: right and up increase the value, left and down decrease
	// it.
	NumericUpDown struct {
		Int   editor.Int
		Theme *Theme
		State *NumericUpDownState
		Tip   string
	}
)

func NewNumericUpDownState() *NumericUpDownState { return &NumericUpDownState{} }

func NumUpDown(v editor.Int, th *Theme, st *NumericUpDownState, tip string) NumericUpDown {
	return NumericUpDown{Int: v, Theme: th, State: st, Tip: tip}
}

func (n NumericUpDown) update(gtx C) {
	pxPerStep := float32(gtx.Dp(n.Theme.NumericUpDown.UnitsPerStep))
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: n.State,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release,
		})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok {
			switch e.Kind {
			case pointer.Press:
				n.State.dragStartValue = n.Int.Value()
				n.State.dragStartXY = e.Position.X - e.Position.Y
			case pointer.Drag:
				delta := e.Position.X - e.Position.Y - n.State.dragStartXY
				n.Int.SetValue(n.State.dragStartValue + int(delta/pxPerStep+0.5))
			}
		}
	}
	for ev, ok := n.State.clickDecrease.Update(gtx.Source); ok; ev, ok = n.State.clickDecrease.Update(gtx.Source) {
		if ev.Kind == gesture.KindClick {
			n.Int.Add(-1)
		}
	}
	for ev, ok := n.State.clickIncrease.Update(gtx.Source); ok; ev, ok = n.State.clickIncrease.Update(gtx.Source) {
		if ev.Kind == gesture.KindClick {
			n.Int.Add(1)
		}
	}
}

func (n NumericUpDown) Layout(gtx C) D {
	if n.Tip != "" {
		return n.State.tipArea.Layout(gtx, Tooltip(n.Theme, n.Tip), n.layout)
	}
	return n.layout(gtx)
}

func (n NumericUpDown) layout(gtx C) D {
	n.update(gtx)
	style := &n.Theme.NumericUpDown
	textColor := style.TextColor
	if !n.Int.Enabled() {
		textColor = style.DisabledTextColor
	}
	gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(style.Width), gtx.Dp(style.Height)))
	width := gtx.Dp(style.ButtonWidth)
	height := gtx.Dp(style.Height)
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(style.CornerRadius)).Push(gtx.Ops).Pop()
			paint.Fill(gtx.Ops, style.BgColor)
			if n.Int.Enabled() {
				// the whole widget drags, where the press misses the buttons
				event.Op(gtx.Ops, n.State)
			}
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					gtx.Constraints = layout.Exact(image.Pt(width, height))
					return layout.Background{}.Layout(gtx,
						func(gtx C) D {
							defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
							n.State.clickDecrease.Add(gtx.Ops)
							return D{Size: gtx.Constraints.Min}
						},
						func(gtx C) D { return n.Theme.Icon(icons.ContentRemove).Layout(gtx, style.IconColor) },
					)
				}),
				layout.Flexed(1, func(gtx C) D {
					paint.ColorOp{Color: textColor}.Add(gtx.Ops)
					return widget.Label{Alignment: text.Middle}.Layout(gtx, n.Theme.Material.Shaper, style.Font, style.TextSize, n.Int.String(), op.CallOp{})
				}),
				layout.Rigid(func(gtx C) D {
					gtx.Constraints = layout.Exact(image.Pt(width, height))
					return layout.Background{}.Layout(gtx,
						func(gtx C) D {
							defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Min}).Push(gtx.Ops).Pop()
							n.State.clickIncrease.Add(gtx.Ops)
							return D{Size: gtx.Constraints.Min}
						},
						func(gtx C) D { return n.Theme.Icon(icons.ContentAdd).Layout(gtx, style.IconColor) },
					)
				}),
			)
		},
	)
}
