package editor

type (
	filePath  Model
	trackName Model
)

// FilePath is the path of the file the project is saved to; changing it
// changes where the next save goes.
func (m *Model) FilePath() String { return MakeString((*filePath)(m)) }

// TrackName is the name of the selected track. An empty name shows up as
// "Track N" in the track header.
func (m *Model) TrackName() String { return MakeString((*trackName)(m)) }

func (v *filePath) Value() string { return v.d.FilePath }
func (v *filePath) SetValue(value string) bool {
	v.d.FilePath = value
	return true
}

func (v *trackName) Value() string {
	m := (*Model)(v)
	if m.d.TrackIndex < 0 || m.d.TrackIndex >= len(m.d.Project.Tracks) {
		return ""
	}
	return m.d.Project.Tracks[m.d.TrackIndex].Name
}
func (v *trackName) SetValue(value string) bool {
	m := (*Model)(v)
	if m.d.TrackIndex < 0 || m.d.TrackIndex >= len(m.d.Project.Tracks) {
		return false
	}
	defer m.change("TrackName", TrackChange, MinorChange)()
	m.d.Project.Tracks[m.d.TrackIndex].Name = value
	return true
}
