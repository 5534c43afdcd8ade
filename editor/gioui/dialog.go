package gioui

import (
	"image/color"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/piirto/piirto/editor"
)

type (
	DialogState struct {
		clickables []Clickable
	}

	DialogStyle struct {
		Bg    color.NRGBA
		Title LabelStyle
		Text  LabelStyle
	}

	DialogButton struct {
		Text   string
		Action editor.Action
	}

	// DialogWidget is a modal dialog with a title, a text and any number of
	// buttons. The last button is the "safe" one: it gets the focus by
	// default and pressing Escape triggers it.
	DialogWidget struct {
		Theme   *Theme
		State   *DialogState
		Title   string
		Text    string
		Buttons []DialogButton
	}
)

var dialogInset = layout.Inset{Top: unit.Dp(12), Bottom: unit.Dp(12), Left: unit.Dp(20), Right: unit.Dp(20)}
var dialogTextInset = layout.Inset{Top: unit.Dp(12), Bottom: unit.Dp(12)}

func NewDialogState() *DialogState { return &DialogState{} }

func DialogBtn(text string, act editor.Action) DialogButton {
	return DialogButton{Text: text, Action: act}
}

func MakeDialog(th *Theme, st *DialogState, title, text string, btns ...DialogButton) DialogWidget {
	return DialogWidget{Theme: th, State: st, Title: title, Text: text, Buttons: btns}
}

func (d DialogWidget) handleKeys(gtx C) {
	st := d.State
	n := len(d.Buttons)
	if n == 0 {
		return
	}
	anyFocused := false
	for i := range d.Buttons {
		if gtx.Source.Focused(&st.clickables[i].Clickable) {
			anyFocused = true
		}
	}
	if !anyFocused {
		gtx.Execute(key.FocusCmd{Tag: &st.clickables[n-1].Clickable})
	}
	for i := range d.Buttons {
		tag := &st.clickables[i].Clickable
		for {
			e, ok := gtx.Event(
				key.Filter{Focus: tag, Name: key.NameLeftArrow},
				key.Filter{Focus: tag, Name: key.NameRightArrow},
				key.Filter{Focus: tag, Name: key.NameEscape},
				key.Filter{Focus: tag, Name: key.NameTab, Optional: key.ModShift},
			)
			if !ok {
				break
			}
			ke, ok := e.(key.Event)
			if !ok || ke.State != key.Press {
				continue
			}
			switch {
			case ke.Name == key.NameLeftArrow || (ke.Name == key.NameTab && ke.Modifiers.Contain(key.ModShift)):
				gtx.Execute(key.FocusCmd{Tag: &st.clickables[(i+n-1)%n].Clickable})
			case ke.Name == key.NameRightArrow || ke.Name == key.NameTab:
				gtx.Execute(key.FocusCmd{Tag: &st.clickables[(i+1)%n].Clickable})
			case ke.Name == key.NameEscape:
				d.Buttons[n-1].Action.Do()
			}
		}
	}
}

func (d DialogWidget) Layout(gtx C) D {
	st := d.State
	for len(st.clickables) < len(d.Buttons) {
		st.clickables = append(st.clickables, Clickable{})
	}
	d.handleKeys(gtx)
	paint.Fill(gtx.Ops, d.Theme.Dialog.Bg)
	visible := true
	return layout.Center.Layout(gtx, func(gtx C) D {
		return Popup(d.Theme.Popup.Dialog, &visible).Layout(gtx, func(gtx C) D {
			return dialogInset.Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(Label(d.Theme, &d.Theme.Dialog.Title, d.Title).Layout),
					layout.Rigid(func(gtx C) D {
						return dialogTextInset.Layout(gtx, d.layoutText)
					}),
					layout.Rigid(d.layoutButtons),
				)
			})
		})
	})
}

func (d DialogWidget) layoutText(gtx C) D {
	if m := gtx.Dp(unit.Dp(560)); gtx.Constraints.Max.X > m {
		gtx.Constraints.Max.X = m
	}
	style := &d.Theme.Dialog.Text
	paint.ColorOp{Color: style.Color}.Add(gtx.Ops)
	return widget.Label{Alignment: style.Alignment}.Layout(gtx, d.Theme.Material.Shaper, style.Font, style.TextSize, d.Text, op.CallOp{})
}

func (d DialogWidget) layoutButtons(gtx C) D {
	return layout.E.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min.X = gtx.Dp(unit.Dp(120))
		children := make([]layout.FlexChild, 0, len(d.Buttons))
		for i, b := range d.Buttons {
			btn := ActionBtn(b.Action, d.Theme, &d.State.clickables[i], b.Text, "")
			children = append(children, layout.Rigid(btn.Layout))
		}
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx, children...)
	})
}
