package gioui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/chewxy/math32"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/piirto/piirto/version"
)

type TrackPanel struct {
	MenuStates [4]MenuState
	MenuBtns   [4]Clickable

	TrackExpander *Expander
	DrawExpander  *Expander
	LevelExpander *Expander
	ScopeExpander *Expander

	SelectedTrack *NumericUpDownState
	DBRange       *NumericUpDownState
	BrushRadius   *NumericUpDownState
	KernelRadius  *NumericUpDownState
	Octave        *NumericUpDownState

	DBScaleBtn  Clickable
	AddTrackBtn Clickable
	DelTrackBtn Clickable
	PanicBtn    Clickable

	Scope   *OscilloscopeState
	PlayBar *PlayBar

	fileMenuItems []ActionMenuItem
	editMenuItems []ActionMenuItem
	helpMenuItems []ActionMenuItem

	panicHint   string
	addHint     string
	delHint     string
	dbScaleHint string
}

func NewTrackPanel(g *GUI) *TrackPanel {
	ret := &TrackPanel{
		TrackExpander: &Expander{Expanded: true},
		DrawExpander:  &Expander{Expanded: true},
		LevelExpander: &Expander{},
		ScopeExpander: &Expander{},

		SelectedTrack: NewNumericUpDownState(),
		DBRange:       NewNumericUpDownState(),
		BrushRadius:   NewNumericUpDownState(),
		KernelRadius:  NewNumericUpDownState(),
		Octave:        NewNumericUpDownState(),

		Scope:   NewOscilloscope(),
		PlayBar: NewPlayBar(),
	}
	ret.fileMenuItems = []ActionMenuItem{
		MenuItem(g.NewProject(), "New Project", keyActionMap["NewProject"], icons.ContentClear),
		MenuItem(g.OpenProject(), "Open Project", keyActionMap["OpenProject"], icons.FileFolder),
		MenuItem(g.SaveProject(), "Save Project", keyActionMap["SaveProject"], icons.ContentSave),
		MenuItem(g.SaveProjectAs(), "Save Project As...", keyActionMap["SaveProjectAs"], icons.ContentSave),
		MenuItem(g.Export(), "Export Wav...", keyActionMap["ExportWav"], icons.ImageAudiotrack),
		MenuItem(g.RequestQuit(), "Quit", keyActionMap["Quit"], icons.ActionExitToApp),
	}
	ret.editMenuItems = []ActionMenuItem{
		MenuItem(g.Undo(), "Undo", keyActionMap["Undo"], icons.ContentUndo),
		MenuItem(g.Redo(), "Redo", keyActionMap["Redo"], icons.ContentRedo),
	}
	ret.helpMenuItems = []ActionMenuItem{
		MenuItem(g.ShowManual(), "Manual", "", icons.ActionHelpOutline),
		MenuItem(g.ReportBug(), "Report a bug", "", icons.ActionBugReport),
		MenuItem(g.ShowLicense(), "License", "", icons.ActionCopyright),
	}
	ret.panicHint = makeHint("Panic", " (%s)", "PanicToggle")
	ret.addHint = makeHint("Add track", " (%s)", "AddTrack")
	ret.delHint = makeHint("Delete track", " (%s)", "DeleteTrack")
	ret.dbScaleHint = makeHint("Toggle dB scale", " (%s)", "DBScaleToggle")
	return ret
}

func (tp *TrackPanel) Layout(gtx C) D {
	g := GUIFromContext(gtx)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return tp.layoutMenuBar(gtx, g) }),
		layout.Flexed(1, func(gtx C) D { return tp.layoutOptions(gtx, g) }),
	)
}

func (tp *TrackPanel) layoutMenuBar(gtx C, g *GUI) D {
	gtx.Constraints.Max.Y = gtx.Dp(36)
	gtx.Constraints.Min.Y = gtx.Dp(36)
	th := g.Theme
	midiItems := IntMenuItems(g.MIDI().Input(), icons.ToggleRadioButtonUnchecked, icons.ToggleRadioButtonChecked)
	midiItems = append(midiItems, MenuItem(g.MIDI().Refresh(), "Refresh devices", "", icons.NavigationRefresh))
	panicBtn := ToggleIconBtn(g.Play().Panicked(), th, &tp.PanicBtn, icons.AlertErrorOutline, icons.AlertError, tp.panicHint, tp.panicHint)
	if g.Play().Panicked().Value() {
		panicBtn.Style = &th.IconButton.Error
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.End}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return MenuBtn(th, &tp.MenuStates[0], &tp.MenuBtns[0], "File", 200).Layout(gtx, tp.fileMenuItems...)
		}),
		layout.Rigid(func(gtx C) D {
			return MenuBtn(th, &tp.MenuStates[1], &tp.MenuBtns[1], "Edit", 200).Layout(gtx, tp.editMenuItems...)
		}),
		layout.Rigid(func(gtx C) D {
			return MenuBtn(th, &tp.MenuStates[2], &tp.MenuBtns[2], "MIDI", 250).Layout(gtx, midiItems...)
		}),
		layout.Rigid(func(gtx C) D {
			return MenuBtn(th, &tp.MenuStates[3], &tp.MenuBtns[3], "Help", 200).Layout(gtx, tp.helpMenuItems...)
		}),
		layout.Flexed(1, func(gtx C) D {
			return layout.E.Layout(gtx, panicBtn.Layout)
		}),
	)
}

func (tp *TrackPanel) layoutOptions(gtx C, g *GUI) D {
	th := g.Theme
	paint.FillShape(gtx.Ops, th.Panel.Bg, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(tp.PlayBar.Layout),
		layout.Rigid(func(gtx C) D {
			return tp.TrackExpander.Layout(gtx, th, "Track",
				Label(th, &th.Panel.RowValue, g.TrackTitle(g.SelectedTrack().Value())).Layout,
				func(gtx C) D {
					addBtn := ActionIconBtn(g.AddTrack(), th, &tp.AddTrackBtn, icons.ContentAdd, tp.addHint)
					delBtn := ActionIconBtn(g.DeleteTrack(), th, &tp.DelTrackBtn, icons.ContentRemove, tp.delHint)
					dbBtn := ToggleBtn(g.DBScale(), th, &tp.DBScaleBtn, "dB", tp.dbScaleHint)
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "Track", NumUpDown(g.SelectedTrack(), th, tp.SelectedTrack, "Selected track").Layout)
						}),
						layout.Rigid(func(gtx C) D {
							peak := g.TrackPeak(g.SelectedTrack().Value())
							return layoutOptionRow(gtx, th, "Peak", dbLabel(th, 20*math32.Log10(peak)).Layout)
						}),
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "Add / delete", func(gtx C) D {
								return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
									layout.Rigid(addBtn.Layout),
									layout.Rigid(delBtn.Layout),
								)
							})
						}),
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "Amplitude scale", dbBtn.Layout)
						}),
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "dB range", NumUpDown(g.DBRange(), th, tp.DBRange, "Range of the dB scale").Layout)
						}),
					)
				})
		}),
		layout.Rigid(func(gtx C) D {
			return tp.DrawExpander.Layout(gtx, th, "Draw tool",
				func(gtx C) D { return D{} },
				func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "Brush radius", NumUpDown(g.BrushRadius(), th, tp.BrushRadius, "Interpolation radius of a drag").Layout)
						}),
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "Smooth radius", NumUpDown(g.KernelRadius(), th, tp.KernelRadius, "Radius of the smoothing kernel").Layout)
						}),
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "Octave", NumUpDown(g.Octave(), th, tp.Octave, "Octave of the keyboard note keys").Layout)
						}),
					)
				})
		}),
		layout.Rigid(func(gtx C) D {
			return tp.LevelExpander.Layout(gtx, th, "Levels",
				func(gtx C) D {
					peaks := g.Play().PeakLevels()
					return dbLabel(th, 20*math32.Log10(max(peaks[0], peaks[1]))).Layout(gtx)
				},
				func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							return layout.Inset{Left: 6, Right: 6, Top: 2, Bottom: 2}.Layout(gtx, VuMeter{Theme: th, Peaks: g.Play().PeakLevels()}.Layout)
						}),
						layout.Rigid(func(gtx C) D {
							return layoutOptionRow(gtx, th, "CPU", cpuLabel(th, g.Play().CPULoad()).Layout)
						}),
					)
				})
		}),
		layout.Flexed(1, func(gtx C) D {
			return tp.ScopeExpander.Layout(gtx, th, "Oscilloscope",
				func(gtx C) D { return D{} },
				Scope(th, tp.Scope).Layout)
		}),
		layout.Rigid(Label(g.Theme, &th.Panel.Version, version.VersionOrHash).Layout),
	)
}

func dbLabel(th *Theme, db float32) LabelWidget {
	style := th.Panel.RowValue
	if db >= 0 {
		style.Color = th.Panel.ErrorColor
	}
	return LabelWidget{Text: fmt.Sprintf("%.1f dB", db), Shaper: th.Material.Shaper, LabelStyle: style}
}

func cpuLabel(th *Theme, load float64) LabelWidget {
	style := th.Panel.RowValue
	if load > 0.8 {
		style.Color = th.Panel.ErrorColor
	}
	return LabelWidget{Text: fmt.Sprintf("%.0f %%", load*100), Shaper: th.Material.Shaper, LabelStyle: style}
}

func layoutOptionRow(gtx C, th *Theme, label string, widget layout.Widget) D {
	leftSpacer := layout.Spacer{Width: 6, Height: 24}.Layout
	rightSpacer := layout.Spacer{Width: 6}.Layout
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(leftSpacer),
		layout.Rigid(Label(th, &th.Panel.RowHeader, label).Layout),
		layout.Flexed(1, func(gtx C) D { return D{Size: gtx.Constraints.Min} }),
		layout.Rigid(widget),
		layout.Rigid(rightSpacer),
	)
}

type Expander struct {
	Expanded bool
	click    gesture.Click
}

func (e *Expander) Update(gtx C) {
	for ev, ok := e.click.Update(gtx.Source); ok; ev, ok = e.click.Update(gtx.Source) {
		if ev.Kind == gesture.KindClick {
			e.Expanded = !e.Expanded
		}
	}
}

func (e *Expander) Layout(gtx C, th *Theme, title string, smallWidget, largeWidget layout.Widget) D {
	e.Update(gtx)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return e.layoutHeader(gtx, th, title, smallWidget) }),
		layout.Rigid(func(gtx C) D {
			if e.Expanded {
				return largeWidget(gtx)
			}
			return D{}
		}),
		layout.Rigid(func(gtx C) D {
			px := max(gtx.Dp(1), 1)
			paint.FillShape(gtx.Ops, color.NRGBA{255, 255, 255, 3}, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, px)).Op())
			return D{Size: image.Pt(gtx.Constraints.Max.X, px)}
		}),
	)
}

func (e *Expander) layoutHeader(gtx C, th *Theme, title string, smallWidget layout.Widget) D {
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			defer clip.Rect(image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)).Push(gtx.Ops).Pop()
			e.click.Add(gtx.Ops)
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			leftSpacer := layout.Spacer{Width: 6, Height: 24}.Layout
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(leftSpacer),
				layout.Rigid(Label(th, &th.Panel.Expander, title).Layout),
				layout.Flexed(1, func(gtx C) D { return D{Size: gtx.Constraints.Min} }),
				layout.Rigid(func(gtx C) D {
					if !e.Expanded {
						return smallWidget(gtx)
					}
					return D{}
				}),
				layout.Rigid(func(gtx C) D {
					icon := icons.NavigationExpandMore
					if e.Expanded {
						icon = icons.NavigationExpandLess
					}
					gtx.Constraints.Min = image.Pt(gtx.Dp(24), gtx.Dp(24))
					return th.Icon(icon).Layout(gtx, th.Material.Palette.Fg)
				}),
			)
		},
	)
}

type PlayBar struct {
	RewindBtn    Clickable
	ViewStartBtn Clickable
	PlayingBtn   Clickable
	FollowBtn    Clickable
	LoopBtn      Clickable

	rewindHint                  string
	viewStartHint               string
	playHint, stopHint          string
	followOnHint, followOffHint string
	loopOnHint, loopOffHint     string
}

func NewPlayBar() *PlayBar {
	ret := &PlayBar{}
	ret.rewindHint = makeHint("Play from the beginning", "\n(%s)", "PlayFromBeginningUnfollow")
	ret.viewStartHint = makeHint("Play from the view start", "\n(%s)", "PlayFromViewStartUnfollow")
	ret.playHint = makeHint("Play", " (%s)", "PlayingToggleUnfollow")
	ret.stopHint = makeHint("Stop", " (%s)", "StopPlaying")
	ret.followOnHint = makeHint("Follow on", " (%s)", "FollowToggle")
	ret.followOffHint = makeHint("Follow off", " (%s)", "FollowToggle")
	ret.loopOnHint = makeHint("Loop on", " (%s)", "LoopToggle")
	ret.loopOffHint = makeHint("Loop off", " (%s)", "LoopToggle")
	return ret
}

func (pb *PlayBar) Layout(gtx C) D {
	g := GUIFromContext(gtx)
	th := g.Theme
	p := g.Play()
	playBtn := ToggleIconBtn(p.Started(), th, &pb.PlayingBtn, icons.AVPlayArrow, icons.AVStop, pb.playHint, pb.stopHint)
	rewindBtn := ActionIconBtn(p.FromBeginning(), th, &pb.RewindBtn, icons.AVFastRewind, pb.rewindHint)
	viewStartBtn := ActionIconBtn(p.FromViewStart(), th, &pb.ViewStartBtn, icons.AVPlaylistPlay, pb.viewStartHint)
	followBtn := ToggleIconBtn(p.IsFollowing(), th, &pb.FollowBtn, icons.ImageCenterFocusWeak, icons.ImageCenterFocusStrong, pb.followOffHint, pb.followOnHint)
	loopBtn := ToggleIconBtn(p.IsLooping(), th, &pb.LoopBtn, icons.NavigationArrowForward, icons.AVLoop, pb.loopOffHint, pb.loopOnHint)
	return Surface{Gray: 37}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, playBtn.Layout),
			layout.Rigid(rewindBtn.Layout),
			layout.Rigid(viewStartBtn.Layout),
			layout.Rigid(followBtn.Layout),
			layout.Rigid(loopBtn.Layout),
		)
	})
}
