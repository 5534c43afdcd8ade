package editor

import (
	"os"

	"github.com/piirto/piirto"
)

// addTrack
type addTrack Model

func (m *Model) AddTrack() Action { return MakeAction((*addTrack)(m)) }
func (m *addTrack) Do() {
	defer (*Model)(m).change("AddTrack", TrackChange, MajorChange)()
	t := piirto.Track{
		Rate:  defaultRate,
		Scale: piirto.DefaultScale(),
		Clips: []piirto.Clip{{
			Name:    "Clip 1",
			Rate:    defaultRate,
			Samples: make([]float32, 5*defaultRate),
		}},
	}
	m.d.Project.Tracks = append(m.d.Project.Tracks, t)
	m.d.TrackIndex = len(m.d.Project.Tracks) - 1
}

// deleteTrack
type deleteTrack Model

func (m *Model) DeleteTrack() Action { return MakeAction((*deleteTrack)(m)) }
func (m *deleteTrack) Enabled() bool { return len(m.d.Project.Tracks) > 0 }
func (m *deleteTrack) Do() {
	defer (*Model)(m).change("DeleteTrack", TrackChange, MajorChange)()
	i := m.d.TrackIndex
	if i < 0 || i >= len(m.d.Project.Tracks) {
		m.changeCancel = true
		return
	}
	m.d.Project.Tracks = append(m.d.Project.Tracks[:i], m.d.Project.Tracks[i+1:]...)
	m.d.TrackIndex = max(min(m.d.TrackIndex, len(m.d.Project.Tracks)-1), 0)
}

// undo
type undo Model

func (m *Model) Undo() Action { return MakeAction((*undo)(m)) }
func (m *undo) Enabled() bool { return len((*Model)(m).undoStack) > 0 }
func (m *undo) Do() {
	m.redoStack = append(m.redoStack, m.d.Copy())
	if len(m.redoStack) >= maxUndo {
		copy(m.redoStack, m.redoStack[len(m.redoStack)-maxUndo:])
		m.redoStack = m.redoStack[:maxUndo]
	}
	m.d = m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.prevUndoKind = ""
	(*Model)(m).updateDeriveData(ProjectChange)
	TrySend(m.broker.ToPlayer, any(m.d.Project.Copy()))
}

// redo
type redo Model

func (m *Model) Redo() Action { return MakeAction((*redo)(m)) }
func (m *redo) Enabled() bool { return len((*Model)(m).redoStack) > 0 }
func (m *redo) Do() {
	m.undoStack = append(m.undoStack, m.d.Copy())
	if len(m.undoStack) >= maxUndo {
		copy(m.undoStack, m.undoStack[len(m.undoStack)-maxUndo:])
		m.undoStack = m.undoStack[:maxUndo]
	}
	m.d = m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.prevUndoKind = ""
	(*Model)(m).updateDeriveData(ProjectChange)
	TrySend(m.broker.ToPlayer, any(m.d.Project.Copy()))
}

// newProject
type newProject Model

func (m *Model) NewProject() Action { return MakeAction((*newProject)(m)) }
func (m *newProject) Do() {
	m.dialog = NewProjectChanges
	(*Model)(m).completeAction(true)
}

// openProject
type openProject Model

func (m *Model) OpenProject() Action { return MakeAction((*openProject)(m)) }
func (m *openProject) Do() {
	m.dialog = OpenProjectChanges
	(*Model)(m).completeAction(true)
}

// requestQuit
type requestQuit Model

func (m *Model) RequestQuit() Action { return MakeAction((*requestQuit)(m)) }
func (m *requestQuit) Do() {
	if !m.quitted {
		m.dialog = QuitChanges
		(*Model)(m).completeAction(true)
	}
}

// forceQuit
type forceQuit Model

func (m *Model) ForceQuit() Action { return MakeAction((*forceQuit)(m)) }
func (m *forceQuit) Do()           { m.quitted = true }

// saveProject
type saveProject Model

func (m *Model) SaveProject() Action { return MakeAction((*saveProject)(m)) }
func (m *saveProject) Do() {
	if m.d.FilePath == "" {
		switch m.dialog {
		case NoDialog:
			m.dialog = SaveAsExplorer
		case NewProjectChanges:
			m.dialog = NewProjectSaveExplorer
		case OpenProjectChanges:
			m.dialog = OpenProjectSaveExplorer
		case QuitChanges:
			m.dialog = QuitSaveExplorer
		}
		return
	}
	f, err := os.Create(m.d.FilePath)
	if err != nil {
		(*Model)(m).Alerts().Add("Error creating file: "+err.Error(), Error)
		return
	}
	(*Model)(m).WriteProject(f)
	m.d.ChangedSinceSave = false
}

type discardProject Model

func (m *Model) DiscardProject() Action { return MakeAction((*discardProject)(m)) }
func (m *discardProject) Do()           { (*Model)(m).completeAction(false) }

type saveProjectAs Model

func (m *Model) SaveProjectAs() Action { return MakeAction((*saveProjectAs)(m)) }
func (m *saveProjectAs) Do()           { m.dialog = SaveAsExplorer }

type cancel Model

func (m *Model) Cancel() Action { return MakeAction((*cancel)(m)) }
func (m *cancel) Do()           { m.dialog = NoDialog }

type exportAction Model

func (m *Model) Export() Action { return MakeAction((*exportAction)(m)) }
func (m *exportAction) Do()     { m.dialog = Export }

type exportFloat Model

func (m *Model) ExportFloat() Action { return MakeAction((*exportFloat)(m)) }
func (m *exportFloat) Do()           { m.dialog = ExportFloatExplorer }

type exportInt16 Model

func (m *Model) ExportInt16() Action { return MakeAction((*exportInt16)(m)) }
func (m *exportInt16) Do()           { m.dialog = ExportInt16Explorer }

type showLicense Model

func (m *Model) ShowLicense() Action { return MakeAction((*showLicense)(m)) }
func (m *showLicense) Do()           { m.dialog = License }
