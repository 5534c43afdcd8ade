package gioui

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/piirto/piirto/editor"
)

type (
	// Clickable wraps widget.Clickable with a tooltip state, so every button
	// can carry a tip without a separate TipArea field at the call site.
	Clickable struct {
		widget.Clickable
		TipArea TipArea
	}

	ButtonStyle struct {
		Color        color.NRGBA
		Bg           color.NRGBA
		CornerRadius unit.Dp
		Height       unit.Dp
		TextSize     unit.Sp
		Inset        layout.Inset
	}

	IconButtonStyle struct {
		Color color.NRGBA
		Size  unit.Dp
		Inset layout.Inset
	}

	Button struct {
		Theme     *Theme
		Style     *ButtonStyle
		Text      string
		Tip       string
		Clickable *Clickable
	}

	ActionButton struct {
		Action editor.Action
		Button
	}

	ToggleButton struct {
		Bool editor.Bool
		Button
	}

	IconButton struct {
		Theme     *Theme
		Style     *IconButtonStyle
		Icon      []byte
		Tip       string
		Clickable *Clickable
	}

	ActionIconButton struct {
		Action editor.Action
		IconButton
	}

	ToggleIconButton struct {
		Bool    editor.Bool
		OffIcon []byte
		OnIcon  []byte
		OffTip  string
		OnTip   string
		IconButton
	}
)

func Btn(th *Theme, style *ButtonStyle, c *Clickable, text, tip string) Button {
	return Button{Theme: th, Style: style, Text: text, Tip: tip, Clickable: c}
}

func ActionBtn(act editor.Action, th *Theme, c *Clickable, text, tip string) ActionButton {
	return ActionButton{Action: act, Button: Btn(th, &th.Button.Text, c, text, tip)}
}

func ToggleBtn(b editor.Bool, th *Theme, c *Clickable, text, tip string) ToggleButton {
	return ToggleButton{Bool: b, Button: Btn(th, &th.Button.Text, c, text, tip)}
}

func IconBtn(th *Theme, style *IconButtonStyle, c *Clickable, icon []byte, tip string) IconButton {
	return IconButton{Theme: th, Style: style, Icon: icon, Tip: tip, Clickable: c}
}

func ActionIconBtn(act editor.Action, th *Theme, c *Clickable, icon []byte, tip string) ActionIconButton {
	return ActionIconButton{Action: act, IconButton: IconBtn(th, &th.IconButton.Enabled, c, icon, tip)}
}

func ToggleIconBtn(b editor.Bool, th *Theme, c *Clickable, offIcon, onIcon []byte, offTip, onTip string) ToggleIconButton {
	return ToggleIconButton{Bool: b, OffIcon: offIcon, OnIcon: onIcon, OffTip: offTip, OnTip: onTip, IconButton: IconBtn(th, &th.IconButton.Enabled, c, nil, "")}
}

func (b Button) Layout(gtx C) D {
	if b.Tip != "" {
		return b.Clickable.TipArea.Layout(gtx, Tooltip(b.Theme, b.Tip), b.layout)
	}
	return b.layout(gtx)
}

func (b Button) layout(gtx C) D {
	btn := material.Button(&b.Theme.Material, &b.Clickable.Clickable, b.Text)
	btn.Color = b.Style.Color
	btn.Background = b.Style.Bg
	btn.CornerRadius = b.Style.CornerRadius
	btn.TextSize = b.Style.TextSize
	btn.Inset = b.Style.Inset
	return btn.Layout(gtx)
}

func (b ActionButton) Layout(gtx C) D {
	for b.Clickable.Clicked(gtx) {
		b.Action.Do()
	}
	if !b.Action.Enabled() {
		b.Style = &b.Theme.Button.Disabled
	}
	return b.Button.Layout(gtx)
}

func (t ToggleButton) Layout(gtx C) D {
	for t.Clickable.Clicked(gtx) {
		t.Bool.Toggle()
	}
	if !t.Bool.Enabled() {
		t.Style = &t.Theme.Button.Disabled
	} else if t.Bool.Value() {
		t.Style = &t.Theme.Button.Filled
	}
	return t.Button.Layout(gtx)
}

func (b IconButton) Layout(gtx C) D {
	if b.Tip != "" {
		return b.Clickable.TipArea.Layout(gtx, Tooltip(b.Theme, b.Tip), b.layout)
	}
	return b.layout(gtx)
}

func (b IconButton) layout(gtx C) D {
	btn := material.IconButton(&b.Theme.Material, &b.Clickable.Clickable, b.Theme.Icon(b.Icon), "")
	btn.Background = transparent
	btn.Color = b.Style.Color
	btn.Size = b.Style.Size
	btn.Inset = b.Style.Inset
	return btn.Layout(gtx)
}

func (b ActionIconButton) Layout(gtx C) D {
	for b.Clickable.Clicked(gtx) {
		b.Action.Do()
	}
	if !b.Action.Enabled() {
		b.Style = &b.Theme.IconButton.Disabled
	}
	return b.IconButton.Layout(gtx)
}

func (t ToggleIconButton) Layout(gtx C) D {
	for t.Clickable.Clicked(gtx) {
		t.Bool.Toggle()
	}
	t.Icon, t.Tip = t.OffIcon, t.OffTip
	if t.Bool.Value() {
		t.Icon, t.Tip = t.OnIcon, t.OnTip
	}
	if !t.Bool.Enabled() {
		t.Style = &t.Theme.IconButton.Disabled
	}
	return t.IconButton.Layout(gtx)
}
