package gioui

import (
	"fmt"
	"image"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/io/transfer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/x/explorer"
	"github.com/piirto/piirto"
	"github.com/piirto/piirto/editor"
)

type (
	GUI struct {
		Theme       *Theme
		MainSplit   *Split
		KeyNoteMap  Keyboard[key.Name]
		PopupAlert  *AlertsState
		Zoom        int
		DialogState *DialogState

		WaveView   *WaveView
		TrackPanel *TrackPanel
		Explorer   *explorer.Explorer
		Exploring  bool

		filePathString editor.String

		preferences Preferences

		*editor.Model
	}

	ShowManual GUI
	ReportBug  GUI

	C = layout.Context
	D = layout.Dimensions
)

var ZoomFactors = []float32{.25, 1. / 3, .5, 2. / 3, .75, .8, 1, 1.1, 1.25, 1.5, 1.75, 2, 2.5, 3, 4, 5}

func NewGUI(model *editor.Model) *GUI {
	g := &GUI{
		MainSplit:   &Split{Ratio: .5},
		DialogState: new(DialogState),
		WaveView:    NewWaveView(),

		Zoom: 6,

		Model: model,

		filePathString: model.FilePath(),
	}
	g.TrackPanel = NewTrackPanel(g)
	g.KeyNoteMap = MakeKeyboard[key.Name](model)
	g.PopupAlert = NewAlertsState()
	var warn error
	if g.Theme, warn = NewTheme(); warn != nil {
		model.Alerts().AddAlert(editor.Alert{
			Priority: editor.Warning,
			Message:  warn.Error(),
			Duration: 10 * time.Second,
		})
	}
	g.Theme.Material.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	g.preferences = MakePreferences()
	if g.preferences.YmlError != nil {
		model.Alerts().AddAlert(editor.Alert{
			Priority: editor.Warning,
			Message:  g.preferences.YmlError.Error(),
			Duration: 10 * time.Second,
		})
	}
	return g
}

func (g *GUI) Main() {
	recoveryTicker := time.NewTicker(time.Second * 30)
	var ops op.Ops
	titlePath := ""
	globals := make(map[string]any, 1)
	globals["GUI"] = g
	for !g.Quitted() {
		w := g.newWindow()
		w.Option(app.Title(titleFromPath(titlePath)))
		g.Explorer = explorer.NewExplorer(w)
		acks := make(chan struct{})
		events := make(chan event.Event)
		go func() {
			for {
				ev := w.Event()
				events <- ev
				<-acks
				if _, ok := ev.(app.DestroyEvent); ok {
					return
				}
			}
		}()
	F:
		for {
			select {
			case e := <-g.Broker().ToGUI:
				switch e := e.(type) {
				case editor.MsgToGUI:
					switch e.Kind {
					case editor.GUIMessageEnsureCursorVisible:
						g.Viewport().EnsureVisible(e.Param, g.WaveView.size.X)
					}
				}
				w.Invalidate()
			case e := <-g.Broker().ToModel:
				g.ProcessMsg(e)
				w.Invalidate()
			case <-g.Broker().CloseGUI:
				g.ForceQuit().Do()
				w.Perform(system.ActionClose)
			case e := <-events:
				switch e := e.(type) {
				case app.DestroyEvent:
					g.RequestQuit().Do()
					acks <- struct{}{}
					break F // this window is done, we need to create a new one
				case app.FrameEvent:
					if titlePath != g.filePathString.Value() {
						titlePath = g.filePathString.Value()
						w.Option(app.Title(titleFromPath(titlePath)))
					}
					gtx := app.NewContext(&ops, e)
					gtx.Values = globals
					g.Layout(gtx, w)
					e.Frame(gtx.Ops)
					if g.Quitted() {
						w.Perform(system.ActionClose)
					}
				}
				acks <- struct{}{}
			case <-recoveryTicker.C:
				g.SaveRecovery()
			}
		}
	}
	recoveryTicker.Stop()
	g.SaveRecovery()
	close(g.Broker().FinishedGUI)
}

func GUIFromContext(gtx C) *GUI {
	g, ok := gtx.Values["GUI"]
	if !ok {
		panic("GUI not found in context values")
	}
	return g.(*GUI)
}

func (g *GUI) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Size(g.preferences.WindowSize()))
	if g.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func titleFromPath(path string) string {
	if path == "" {
		return "piirto"
	}
	return fmt.Sprintf("piirto - %s", path)
}

func (g *GUI) Layout(gtx layout.Context, w *app.Window) {
	zoomFactor := ZoomFactors[g.Zoom]
	gtx.Metric.PxPerDp *= zoomFactor
	gtx.Metric.PxPerSp *= zoomFactor
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, g.Theme.Material.Bg)
	event.Op(gtx.Ops, g) // area for capturing scroll events

	g.MainSplit.Layout(gtx, g.WaveView.Layout, g.TrackPanel.Layout)
	alerts := Alerts(g.Alerts(), g.Theme, g.PopupAlert)
	alerts.Layout(gtx)
	g.showDialog(gtx)
	// this is the top level input handler for the whole app
	// it handles all the global key events and file drops
	// we need to tell gio that we handle tabs too; otherwise
	// it will steal them for focus switching
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper},
			key.Filter{Name: key.NameTab, Optional: key.ModShift | key.ModShortcut},
			transfer.TargetFilter{Target: g, Type: "application/text"},
			pointer.Filter{Target: g, Kinds: pointer.Scroll, ScrollY: pointer.ScrollRange{Min: -1, Max: 1}},
		)
		if !ok {
			break
		}
		switch e := ev.(type) {
		case pointer.Event:
			if e.Kind == pointer.Scroll && e.Modifiers.Contain(key.ModShortcut) {
				g.Zoom = min(max(g.Zoom-int(e.Scroll.Y), 0), len(ZoomFactors)-1)
				g.Alerts().AddNamed("ZoomFactor", fmt.Sprintf("%.0f%%", ZoomFactors[g.Zoom]*100), editor.Info)
			}
		case key.Event:
			g.KeyEvent(e, gtx)
		case transfer.DataEvent:
			g.ReadProject(e.Open())
		}
	}
}

func (g *GUI) showDialog(gtx C) {
	if g.Exploring {
		return
	}
	switch g.Dialog() {
	case editor.NewProjectChanges, editor.OpenProjectChanges, editor.QuitChanges:
		dialog := MakeDialog(g.Theme, g.DialogState, "Save changes to project?", "Your changes will be lost if you don't save them.",
			DialogBtn("Save", g.SaveProject()),
			DialogBtn("Don't save", g.DiscardProject()),
			DialogBtn("Cancel", g.Cancel()),
		)
		dialog.Layout(gtx)
	case editor.Export:
		dialog := MakeDialog(g.Theme, g.DialogState, "Export format", "Choose the sample format for the exported .wav file.",
			DialogBtn("Int16", g.ExportInt16()),
			DialogBtn("Float32", g.ExportFloat()),
			DialogBtn("Cancel", g.Cancel()),
		)
		dialog.Layout(gtx)
	case editor.OpenProjectOpenExplorer:
		g.explorerChooseFile(g.ReadProject, ".yml", ".json")
	case editor.NewProjectSaveExplorer, editor.OpenProjectSaveExplorer, editor.QuitSaveExplorer, editor.SaveAsExplorer:
		filename := g.filePathString.Value()
		if filename == "" {
			filename = "project.yml"
		}
		g.explorerCreateFile(g.WriteProject, filename)
	case editor.ExportFloatExplorer, editor.ExportInt16Explorer:
		filename := "project.wav"
		if p := g.filePathString.Value(); p != "" {
			filename = p[:len(p)-len(filepath.Ext(p))] + ".wav"
		}
		g.explorerCreateFile(func(wc io.WriteCloser) {
			g.WriteWav(wc, g.Dialog() == editor.ExportInt16Explorer)
		}, filename)
	case editor.License:
		dialog := MakeDialog(g.Theme, g.DialogState, "License", piirto.License,
			DialogBtn("Close", g.Cancel()),
		)
		dialog.Layout(gtx)
	}
}

func (g *GUI) explorerChooseFile(success func(io.ReadCloser), extensions ...string) {
	g.Exploring = true
	go func() {
		file, err := g.Explorer.ChooseFile(extensions...)
		g.Broker().ToModel <- editor.MsgToModel{Data: func() {
			g.Exploring = false
			if err == nil {
				success(file)
			} else {
				g.Cancel().Do()
				if err != explorer.ErrUserDecline {
					g.Alerts().Add(err.Error(), editor.Error)
				}
			}
		}}
	}()
}

func (g *GUI) explorerCreateFile(success func(io.WriteCloser), filename string) {
	g.Exploring = true
	go func() {
		file, err := g.Explorer.CreateFile(filename)
		g.Broker().ToModel <- editor.MsgToModel{Data: func() {
			g.Exploring = false
			if err == nil {
				success(file)
			} else {
				g.Cancel().Do()
				if err != explorer.ErrUserDecline {
					g.Alerts().Add(err.Error(), editor.Error)
				}
			}
		}}
	}()
}

func (g *GUI) ShowManual() editor.Action { return editor.MakeAction((*ShowManual)(g)) }
func (t *ShowManual) Do()                { (*GUI)(t).openUrl("https://github.com/piirto/piirto/wiki") }

func (g *GUI) ReportBug() editor.Action { return editor.MakeAction((*ReportBug)(g)) }
func (t *ReportBug) Do()                { (*GUI)(t).openUrl("https://github.com/piirto/piirto/issues") }

func (g *GUI) openUrl(url string) {
	var err error
	// following https://gist.github.com/hyg/9c4afcd91fe24316cbf0
	switch runtime.GOOS {
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = fmt.Errorf("unsupported platform for opening urls %s", runtime.GOOS)
	}
	if err != nil {
		g.Alerts().Add(err.Error(), editor.Error)
	}
}
