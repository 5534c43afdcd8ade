package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piirto/piirto"
)

type (
	// modelData is the part of the model that gets saved to the recovery
	// file: the project being edited and the lightweight editor state around
	// it. Undo and redo histories are not part of it, so a recovered session
	// starts with empty histories.
	modelData struct {
		Project    piirto.Project
		TrackIndex int
		View       piirto.ViewInfo
		Smoothing  piirto.SmoothingConfig
		Octave     int

		FilePath         string
		ChangedSinceSave bool

		RecoveryFilePath     string
		ChangedSinceRecovery bool
	}

	// Model is the root of the editor state. It is used from the GUI event
	// loop goroutine; the player runs in the audio callback goroutine and the
	// two communicate only through the Broker. Mutations to the project go
	// through change(), which takes care of the undo history, derived data
	// and pushing the updated project to the player.
	Model struct {
		d modelData

		undoStack       []modelData
		redoStack       []modelData
		prevUndoKind    string
		undoSkipCounter int

		changeLevel    int
		changeCancel   bool
		changeType     ChangeType
		changeSeverity ChangeSeverity
		changeKind     string
		undoSnapshot   modelData

		draw drawState

		playing      bool
		loop         bool
		panic        bool
		follow       bool
		playerStatus PlayerStatus

		quitted bool
		dialog  Dialog

		alerts []Alert

		midi midiState

		scope *ScopeModel

		derived derivedModelData

		broker *Broker
	}

	// ChangeType is a bitmask of the kinds of data a change touched, so that
	// the model knows what derived data to update and whether the player
	// needs a fresh copy of the project.
	ChangeType int

	// ChangeSeverity determines whether consecutive changes of the same kind
	// get collapsed into a single undo step (MinorChange) or not
	// (MajorChange).
	ChangeSeverity int

	// Dialog enumerates the modal dialogs of the GUI. The model tracks which
	// one is open so that the keyboard focus and the save-before-x flows work
	// the same way regardless of which frontend is driving the model.
	Dialog int
)

const (
	NoChange    ChangeType = 0
	TrackChange ChangeType = 1 << iota
	SmoothingChange

	ProjectChange ChangeType = TrackChange | SmoothingChange
)

const (
	MinorChange ChangeSeverity = iota
	MajorChange
)

const (
	NoDialog Dialog = iota
	NewProjectChanges
	OpenProjectChanges
	QuitChanges
	Export
	ExportFloatExplorer
	ExportInt16Explorer
	OpenProjectOpenExplorer
	SaveAsExplorer
	NewProjectSaveExplorer
	OpenProjectSaveExplorer
	QuitSaveExplorer
	License
)

const maxUndo = 256

// NewModel builds a new model, using the given broker for communication. The
// modelData is initialized from the recovery file if one exists at
// recoveryFilePath; empty recoveryFilePath disables recovery saving.
func NewModel(broker *Broker, midiContext MIDIContext, recoveryFilePath string) *Model {
	ret := &Model{broker: broker, scope: NewScopeModel()}
	ret.d.Octave = 4
	ret.d.Project = defaultProject.Copy()
	ret.d.View = defaultView
	ret.d.Smoothing = piirto.DefaultSmoothing()
	ret.d.RecoveryFilePath = recoveryFilePath
	if recoveryFilePath != "" {
		if bytes2, err := os.ReadFile(recoveryFilePath); err == nil {
			json.Unmarshal(bytes2, &ret.d)
		}
	}
	ret.initDerivedData()
	ret.midi.context = midiContext
	for input := range midiContext.InputDevices {
		ret.midi.inputs = append(ret.midi.inputs, input)
	}
	TrySend(broker.ToPlayer, any(ret.d.Project.Copy()))
	return ret
}

func (d *modelData) Copy() modelData {
	ret := *d
	ret.Project = d.Project.Copy()
	return ret
}

// change starts a new change to the model, with the given kind, type and
// severity. It returns a function that must be called when the change is
// done; usually this is deferred. Nested changes are allowed and only the
// outermost completion finishes the change. If changeCancel is set before the
// outermost completion, the whole change is rolled back from the snapshot
// instead.
func (m *Model) change(kind string, t ChangeType, severity ChangeSeverity) func() {
	if m.changeLevel == 0 {
		m.undoSnapshot = m.d.Copy()
		m.changeCancel = false
		m.changeType = NoChange
		m.changeSeverity = severity
		m.changeKind = kind
	} else if m.changeSeverity < severity {
		m.changeSeverity = severity
	}
	m.changeLevel++
	m.changeType |= t
	return func() {
		m.changeLevel--
		if m.changeLevel > 0 {
			return
		}
		if m.changeLevel < 0 {
			panic("changeLevel < 0, mismatched change calls")
		}
		if m.changeCancel {
			m.d = m.undoSnapshot
			return
		}
		if m.changeType == NoChange {
			return
		}
		m.pushUndo()
		m.d.ChangedSinceSave = true
		m.d.ChangedSinceRecovery = true
		m.updateDeriveData(m.changeType)
		if m.changeType&TrackChange != 0 {
			TrySend(m.broker.ToPlayer, any(m.d.Project.Copy()))
		}
	}
}

func (m *Model) pushUndo() {
	skip := 0
	if m.changeSeverity == MinorChange {
		// minor changes of the same kind are collapsed, so e.g. a burst of
		// sample edits does not eat hundreds of undo steps
		skip = 100
	}
	if m.prevUndoKind == m.changeKind && m.undoSkipCounter < skip {
		m.undoSkipCounter++
		return
	}
	m.prevUndoKind = m.changeKind
	m.undoSkipCounter = 0
	m.undoStack = append(m.undoStack, m.undoSnapshot)
	if len(m.undoStack) >= maxUndo {
		copy(m.undoStack, m.undoStack[len(m.undoStack)-maxUndo:])
		m.undoStack = m.undoStack[:maxUndo]
	}
	m.redoStack = m.redoStack[:0]
}

func (m *Model) resetProject() {
	m.d.Project = defaultProject.Copy()
	m.d.FilePath = ""
	m.d.TrackIndex = 0
	m.d.View = defaultView
	m.d.Smoothing = piirto.DefaultSmoothing()
	m.setLoop(false)
}

// MarshalRecovery is used to make a byte slice for storing the recovery data
// to e.g. browser local storage. It is not saved to the recovery file, so
// calling this function will remove the recovery file.
func (m *Model) MarshalRecovery() []byte {
	out, err := json.Marshal(m.d)
	if err != nil {
		return nil
	}
	if m.d.RecoveryFilePath != "" {
		os.Remove(m.d.RecoveryFilePath)
	}
	m.d.ChangedSinceRecovery = false
	return out
}

// SaveRecovery saves the recovery data to the recovery file, if the model
// data has changed since the last save.
func (m *Model) SaveRecovery() error {
	if !m.d.ChangedSinceRecovery {
		return nil
	}
	if m.d.RecoveryFilePath == "" {
		return errors.New("no backup file path")
	}
	out, err := json.Marshal(m.d)
	if err != nil {
		return fmt.Errorf("could not marshal recovery data: %w", err)
	}
	dir := filepath.Dir(m.d.RecoveryFilePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		os.MkdirAll(dir, os.ModePerm)
	}
	file, err := os.Create(m.d.RecoveryFilePath)
	if err != nil {
		return fmt.Errorf("could not create recovery file: %w", err)
	}
	defer file.Close()
	if _, err := file.Write(out); err != nil {
		return fmt.Errorf("could not write recovery file: %w", err)
	}
	m.d.ChangedSinceRecovery = false
	return nil
}

// UnmarshalRecovery loads the recovery data from a byte slice. If a recovery
// file also exists on disk, the file takes precedence, as it is likely more
// recent.
func (m *Model) UnmarshalRecovery(bytes []byte) {
	err := json.Unmarshal(bytes, &m.d)
	if err != nil {
		return
	}
	if m.d.RecoveryFilePath != "" {
		if bytes2, err := os.ReadFile(m.d.RecoveryFilePath); err == nil {
			json.Unmarshal(bytes2, &m.d)
		}
	}
	m.d.ChangedSinceRecovery = false
	m.initDerivedData()
	TrySend(m.broker.ToPlayer, any(m.d.Project.Copy()))
}

// ProcessMsg processes a message received from the player, updating the model
// state accordingly.
func (m *Model) ProcessMsg(msg MsgToModel) {
	if msg.HasPlayerStatus {
		m.playerStatus = msg.Status
	}
	if msg.Reset {
		m.scope.Reset()
	}
	switch e := msg.Data.(type) {
	case func():
		e()
	case Alert:
		m.Alerts().AddAlert(e)
	case IsPlayingMsg:
		m.playing = e.bool
	case *piirto.AudioBuffer:
		m.scope.ProcessAudioBuffer(e)
		m.broker.PutAudioBuffer(e)
	default:
	}
}

// completeAction is called to close the dialogs and to finish the new
// project / open project / quit flows, taking the "save before?" check into
// account when checkSave is true.
func (m *Model) completeAction(checkSave bool) {
	if checkSave && m.d.ChangedSinceSave {
		return
	}
	switch m.dialog {
	case NewProjectChanges, NewProjectSaveExplorer:
		c := m.change("NewProject", ProjectChange, MajorChange)
		m.resetProject()
		c()
		m.d.ChangedSinceSave = false
		m.dialog = NoDialog
	case OpenProjectChanges, OpenProjectSaveExplorer:
		m.dialog = OpenProjectOpenExplorer
	case QuitChanges, QuitSaveExplorer:
		m.quitted = true
		m.dialog = NoDialog
	default:
		m.dialog = NoDialog
	}
}

// NoteOn sends a note on message to the player, auditioning the selected
// track at the pitch of the note, e.g. when the user plays notes with the
// keyboard.
func (m *Model) NoteOn(note byte) {
	TrySend(m.broker.ToPlayer, any(NoteOnMsg{m.d.TrackIndex, note}))
}

// NoteOff sends a note off message to the player.
func (m *Model) NoteOff(note byte) {
	TrySend(m.broker.ToPlayer, any(NoteOffMsg{note}))
}

func (m *Model) Broker() *Broker            { return m.broker }
func (m *Model) Quitted() bool              { return m.quitted }
func (m *Model) Dialog() Dialog             { return m.dialog }
func (m *Model) PlayerStatus() PlayerStatus { return m.playerStatus }
func (m *Model) ChangedSinceSave() bool     { return m.d.ChangedSinceSave }

// Project returns the current project. Go does not have immutable slices, so
// the caller should not modify the returned project; all modifications should
// go through the operations of the model.
func (m *Model) Project() piirto.Project { return m.d.Project }

func (m *Model) TrackIndex() int { return m.d.TrackIndex }

func (m *Model) ViewInfo() piirto.ViewInfo { return m.d.View }

func (m *Model) SmoothingConfig() piirto.SmoothingConfig { return m.d.Smoothing }
