package editor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/piirto/piirto"
)

// ReadProject loads a project from the reader, accepting both the .json and
// the .yml flavors of the project format. Loading replaces the open project
// and becomes a single undo step.
func (m *Model) ReadProject(r io.ReadCloser) {
	b, err := io.ReadAll(r)
	if err != nil {
		return
	}
	err = r.Close()
	if err != nil {
		return
	}
	var project piirto.Project
	if errJSON := json.Unmarshal(b, &project); errJSON != nil {
		if errYaml := yaml.Unmarshal(b, &project); errYaml != nil {
			m.Alerts().Add(fmt.Sprintf("Error unmarshaling a project file: %v / %v", errYaml, errJSON), Error)
			return
		}
	}
	fromFile := false
	f := m.change("LoadProject", ProjectChange, MajorChange)
	m.d.Project = project
	m.d.TrackIndex = max(min(m.d.TrackIndex, len(project.Tracks)-1), 0)
	if f, ok := r.(*os.File); ok {
		m.d.FilePath = f.Name()
		fromFile = true
	}
	f()
	if fromFile {
		// the file is persisted, so there are no changes to lose
		m.d.ChangedSinceSave = false
	}
	m.completeAction(false)
}

// WriteProject saves the project to the writer, as .json when the file name
// ends in .json and as yaml otherwise.
func (m *Model) WriteProject(w io.WriteCloser) {
	path := ""
	if f, ok := w.(*os.File); ok {
		path = f.Name()
	}
	var contents []byte
	var err error
	if filepath.Ext(path) == ".json" {
		contents, err = json.Marshal(m.d.Project)
	} else {
		contents, err = yaml.Marshal(m.d.Project)
	}
	if err != nil {
		m.Alerts().Add(fmt.Sprintf("Error marshaling a project file: %v", err), Error)
		return
	}
	if _, err := w.Write(contents); err != nil {
		m.Alerts().Add(fmt.Sprintf("Error writing to file: %v", err), Error)
		return
	}
	if err := w.Close(); err != nil {
		m.Alerts().Add(fmt.Sprintf("Error closing the file: %v", err), Error)
		return
	}
	if path != "" {
		m.d.FilePath = path
		m.d.ChangedSinceSave = false
	}
	m.completeAction(false)
}

// WriteWav renders the project and writes it to the writer as a .wav file,
// as 16-bit PCM when pcm16 is set and as 32-bit floats otherwise. The
// rendering and writing happen in a background goroutine.
func (m *Model) WriteWav(w io.WriteCloser, pcm16 bool) {
	m.dialog = NoDialog
	project := m.d.Project.Copy()
	go func() {
		data := project.RenderStereo()
		buffer, err := piirto.Wav(data, pcm16)
		if err != nil {
			txt := fmt.Sprintf("Error converting to .wav: %v", err)
			TrySend(m.broker.ToModel, MsgToModel{Data: Alert{Message: txt, Priority: Error, Duration: defaultAlertDuration}})
			return
		}
		if _, err := w.Write(buffer); err != nil {
			txt := fmt.Sprintf("Error writing the .wav file: %v", err)
			TrySend(m.broker.ToModel, MsgToModel{Data: Alert{Message: txt, Priority: Error, Duration: defaultAlertDuration}})
		}
		w.Close()
	}()
}
