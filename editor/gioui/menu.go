package gioui

import (
	"image"
	"image/color"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/piirto/piirto/editor"
)

type (
	MenuState struct {
		visible bool
		clicks  []gesture.Click
		list    layout.List
	}

	MenuStyle struct {
		Text     LabelStyle
		Shortcut color.NRGBA
		Disabled color.NRGBA
		Hover    color.NRGBA
		IconSize unit.Dp
	}

	ActionMenuItem struct {
		Action   editor.Action
		Text     string
		Shortcut string
		Icon     []byte
	}

	MenuButton struct {
		Theme     *Theme
		State     *MenuState
		Clickable *Clickable
		Title     string
		Width     unit.Dp
	}
)

func MenuItem(act editor.Action, text, shortcut string, icon []byte) ActionMenuItem {
	return ActionMenuItem{Action: act, Text: text, Shortcut: shortcut, Icon: icon}
}

func MenuBtn(th *Theme, st *MenuState, c *Clickable, title string, width unit.Dp) MenuButton {
	return MenuButton{Theme: th, State: st, Clickable: c, Title: title, Width: width}
}

func (m MenuButton) Layout(gtx C, items ...ActionMenuItem) D {
	for m.Clickable.Clicked(gtx) {
		m.State.visible = true
	}
	btn := Btn(m.Theme, &m.Theme.Button.Text, m.Clickable, m.Title, "")
	if m.State.visible {
		btn.Style = &m.Theme.Button.Filled
	}
	dims := btn.Layout(gtx)
	trans := op.Offset(image.Pt(0, dims.Size.Y)).Push(gtx.Ops)
	gtx.Constraints.Min.X = gtx.Dp(m.Width)
	gtx.Constraints.Max.X = gtx.Dp(m.Width)
	m.State.layout(gtx, m.Theme, items...)
	trans.Pop()
	return dims
}

func (st *MenuState) layout(gtx C, th *Theme, items ...ActionMenuItem) D {
	for len(st.clicks) < len(items) {
		st.clicks = append(st.clicks, gesture.Click{})
	}
	contents := func(gtx C) D {
		st.list.Axis = layout.Vertical
		return st.list.Layout(gtx, len(items), func(gtx C, i int) D {
			defer op.Offset(image.Point{}).Push(gtx.Ops).Pop()
			item := &items[i]
			click := &st.clicks[i]
			for {
				ev, ok := click.Update(gtx.Source)
				if !ok {
					break
				}
				if ev.Kind != gesture.KindClick {
					continue
				}
				if item.Action.Enabled() {
					item.Action.Do()
					st.visible = false
				}
			}
			hovered := click.Hovered() && item.Action.Enabled()
			var macro op.MacroOp
			if hovered {
				macro = op.Record(gtx.Ops)
			}
			iconColor := th.Menu.Text.Color
			text := Label(th, &th.Menu.Text, item.Text)
			if !item.Action.Enabled() {
				iconColor = th.Menu.Disabled
				text.Color = th.Menu.Disabled
			}
			shortcut := Label(th, &th.Menu.Text, item.Shortcut)
			shortcut.Color = th.Menu.Shortcut
			iconInset := layout.Inset{Left: unit.Dp(12), Right: unit.Dp(6)}
			shortcutInset := layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Bottom: unit.Dp(2), Top: unit.Dp(2)}
			dims := layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					return iconInset.Layout(gtx, func(gtx C) D {
						p := gtx.Dp(th.Menu.IconSize)
						gtx.Constraints.Min = image.Pt(p, p)
						return th.Icon(item.Icon).Layout(gtx, iconColor)
					})
				}),
				layout.Rigid(text.Layout),
				layout.Flexed(1, func(gtx C) D { return D{Size: image.Pt(gtx.Constraints.Max.X, 1)} }),
				layout.Rigid(func(gtx C) D {
					return shortcutInset.Layout(gtx, shortcut.Layout)
				}),
			)
			if hovered {
				recording := macro.Stop()
				paint.FillShape(gtx.Ops, th.Menu.Hover, clip.Rect{Max: dims.Size}.Op())
				recording.Add(gtx.Ops)
			}
			area := clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops)
			click.Add(gtx.Ops)
			area.Pop()
			return dims
		})
	}
	popup := Popup(th.Popup.Menu, &st.visible)
	return popup.Layout(gtx, contents)
}

type intSetter struct {
	v   editor.Int
	val int
}

func (s intSetter) Do()           { s.v.SetValue(s.val) }
func (s intSetter) Enabled() bool { return s.v.Enabled() }

// IntMenuItems makes one menu item per possible value of v, for choosing the
// value from a menu. The current value gets the onIcon, the rest the offIcon.
func IntMenuItems(v editor.Int, offIcon, onIcon []byte) []ActionMenuItem {
	var ret []ActionMenuItem
	r := v.Range()
	for val := r.Min; val <= r.Max; val++ {
		icon := offIcon
		if val == v.Value() {
			icon = onIcon
		}
		ret = append(ret, MenuItem(editor.MakeAction(intSetter{v, val}), v.StringOf(val), "", icon))
	}
	return ret
}
