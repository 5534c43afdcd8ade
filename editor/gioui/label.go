package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	LabelStyle struct {
		Color      color.NRGBA
		ShadeColor color.NRGBA
		Alignment  text.Alignment
		Font       font.Font
		TextSize   unit.Sp
	}

	LabelWidget struct {
		Text   string
		Shaper *text.Shaper
		LabelStyle
	}
)

func Label(th *Theme, style *LabelStyle, txt string) LabelWidget {
	return LabelWidget{Text: txt, Shaper: th.Material.Shaper, LabelStyle: *style}
}

func (l LabelWidget) Layout(gtx C) D {
	if l.ShadeColor.A > 0 {
		paint.ColorOp{Color: l.ShadeColor}.Add(gtx.Ops)
		offs := op.Offset(image.Pt(2, 2)).Push(gtx.Ops)
		widget.Label{Alignment: l.Alignment, MaxLines: 1}.Layout(gtx, l.Shaper, l.Font, l.TextSize, l.Text, op.CallOp{})
		offs.Pop()
	}
	paint.ColorOp{Color: l.Color}.Add(gtx.Ops)
	return widget.Label{Alignment: l.Alignment, MaxLines: 1}.Layout(gtx, l.Shaper, l.Font, l.TextSize, l.Text, op.CallOp{})
}
