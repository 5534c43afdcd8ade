package gioui

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gioui.org/io/key"
	"gopkg.in/yaml.v3"
)

type (
	KeyAction string

	KeyBinding struct {
		Key                                        string
		Shortcut, Ctrl, Command, Shift, Alt, Super bool
		Action                                     string
	}
)

var keyBindingMap = map[key.Event]string{}
var keyActionMap = map[KeyAction]string{} // informative string of the first key bound to an action

//go:embed keybindings.yml
var defaultKeyBindings []byte

func init() {
	var keyBindings, userKeybindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(defaultKeyBindings))
	dec.KnownFields(true)
	if err := dec.Decode(&keyBindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	if err := ReadCustomConfig("keybindings.yml", &userKeybindings); err == nil {
		keyBindings = append(keyBindings, userKeybindings...)
	}

	for _, kb := range keyBindings {
		var mods key.Modifiers
		if kb.Shortcut {
			mods |= key.ModShortcut
		}
		if kb.Ctrl {
			mods |= key.ModCtrl
		}
		if kb.Command {
			mods |= key.ModCommand
		}
		if kb.Shift {
			mods |= key.ModShift
		}
		if kb.Alt {
			mods |= key.ModAlt
		}
		if kb.Super {
			mods |= key.ModSuper
		}

		keyEvent := key.Event{Name: key.Name(kb.Key), Modifiers: mods, State: key.Press}
		if action, ok := keyBindingMap[keyEvent]; ok {
			// the key is being rebound, remove the old hint
			delete(keyActionMap, KeyAction(action))
		}
		if kb.Action == "" { // unbind
			delete(keyBindingMap, keyEvent)
		} else { // bind
			keyBindingMap[keyEvent] = kb.Action
			// last binding of an action wins for displaying the hint
			modString := strings.Replace(mods.String(), "-", "+", -1)
			text := kb.Key
			if modString != "" {
				text = modString + "+" + text
			}
			keyActionMap[KeyAction(kb.Action)] = text
		}
	}
}

// ReadCustomConfig reads a yaml file from the user config directory into
// data, refusing unknown fields so that typos in the config do not silently
// do nothing.
func ReadCustomConfig(filename string, data any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filepath.Join(configDir, "piirto", filename))
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(data)
}

func makeHint(hint, format, action string) string {
	if keyActionMap[KeyAction(action)] != "" {
		return hint + fmt.Sprintf(format, keyActionMap[KeyAction(action)])
	}
	return hint
}

// the lowest C the keyjazz can reach is MIDI note 12, at octave 0
const baseNote = 11

func noteAsValue(octave, note int) byte {
	return byte(min(max(baseNote+octave*12+note, 0), 127))
}

// KeyEvent handles incoming key events, dispatching them to the actions the
// key is bound to.
func (t *GUI) KeyEvent(e key.Event, gtx C) {
	if e.State == key.Release {
		t.KeyNoteMap.Release(e.Name)
		return
	}
	action, ok := keyBindingMap[e]
	if !ok {
		return
	}
	switch action {
	// Actions
	case "AddTrack":
		t.AddTrack().Do()
	case "DeleteTrack":
		t.DeleteTrack().Do()
	case "Undo":
		t.Undo().Do()
	case "Redo":
		t.Redo().Do()
	case "NewProject":
		t.NewProject().Do()
	case "OpenProject":
		t.OpenProject().Do()
	case "SaveProject":
		t.SaveProject().Do()
	case "SaveProjectAs":
		t.SaveProjectAs().Do()
	case "ExportWav":
		t.Export().Do()
	case "ExportFloat":
		t.ExportFloat().Do()
	case "ExportInt16":
		t.ExportInt16().Do()
	case "Quit":
		t.RequestQuit().Do()
	case "ShowLicense":
		t.ShowLicense().Do()
	case "StopPlaying":
		t.Play().Stop().Do()
	case "PlayFromBeginningFollow":
		t.Play().IsFollowing().SetValue(true)
		t.Play().FromBeginning().Do()
	case "PlayFromBeginningUnfollow":
		t.Play().IsFollowing().SetValue(false)
		t.Play().FromBeginning().Do()
	case "PlayFromViewStartFollow":
		t.Play().IsFollowing().SetValue(true)
		t.Play().FromViewStart().Do()
	case "PlayFromViewStartUnfollow":
		t.Play().IsFollowing().SetValue(false)
		t.Play().FromViewStart().Do()
	// Booleans
	case "PanicToggle":
		t.Play().Panicked().Toggle()
	case "LoopToggle":
		t.Play().IsLooping().Toggle()
	case "FollowToggle":
		t.Play().IsFollowing().Toggle()
	case "PlayingToggleFollow":
		t.Play().IsFollowing().SetValue(true)
		t.Play().Started().Toggle()
	case "PlayingToggleUnfollow":
		t.Play().IsFollowing().SetValue(false)
		t.Play().Started().Toggle()
	case "DBScaleToggle":
		t.DBScale().Toggle()
	case "ScopeOnceToggle":
		t.Scope().Once().Toggle()
	case "ScopeWrapToggle":
		t.Scope().Wrap().Toggle()
	// Integers
	case "OctaveAdd":
		t.Octave().Add(1)
	case "OctaveSubtract":
		t.Octave().Add(-1)
	case "SelectedTrackAdd":
		t.SelectedTrack().Add(1)
	case "SelectedTrackSubtract":
		t.SelectedTrack().Add(-1)
	case "BrushRadiusAdd":
		t.BrushRadius().Add(1)
	case "BrushRadiusSubtract":
		t.BrushRadius().Add(-1)
	case "KernelRadiusAdd":
		t.KernelRadius().Add(1)
	case "KernelRadiusSubtract":
		t.KernelRadius().Add(-1)
	case "DBRangeAdd":
		t.DBRange().Add(1)
	case "DBRangeSubtract":
		t.DBRange().Add(-1)
	// View
	case "ZoomIn":
		t.Viewport().ZoomAt(t.WaveView.size.X/2, 0, zoomStepFactor)
	case "ZoomOut":
		t.Viewport().ZoomAt(t.WaveView.size.X/2, 0, 1/zoomStepFactor)
	case "ZoomToFit":
		t.Viewport().ZoomToFit(t.WaveView.size.X)
	case "ScrollLeft":
		t.Viewport().Scroll(-max(t.WaveView.size.X/8, 16))
	case "ScrollRight":
		t.Viewport().Scroll(max(t.WaveView.size.X/8, 16))
	default:
		if len(action) > 4 && action[:4] == "Note" {
			val, err := strconv.Atoi(string(action[4:]))
			if err != nil {
				break
			}
			n := noteAsValue(t.Octave().Value(), val)
			t.KeyNoteMap.Press(e.Name, n)
		}
	}
}
