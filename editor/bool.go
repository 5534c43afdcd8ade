package editor

type dbScale Model

// DBScale returns a Bool toggling whether the selected track shows its
// samples on a logarithmic scale. Turning it on for the first time gives the
// scale a 60 dB dynamic range.
func (m *Model) DBScale() Bool { return MakeBool((*dbScale)(m)) }

func (v *dbScale) Value() bool {
	m := (*Model)(v)
	if m.d.TrackIndex < 0 || m.d.TrackIndex >= len(m.d.Project.Tracks) {
		return false
	}
	return m.d.Project.Tracks[m.d.TrackIndex].Scale.DB
}

func (v *dbScale) SetValue(val bool) {
	m := (*Model)(v)
	defer m.change("DBScale", TrackChange, MinorChange)()
	s := &m.d.Project.Tracks[m.d.TrackIndex].Scale
	s.DB = val
	if val && s.DBRange == 0 {
		s.DBRange = 60
	}
}

func (v *dbScale) Enabled() bool {
	m := (*Model)(v)
	return m.d.TrackIndex >= 0 && m.d.TrackIndex < len(m.d.Project.Tracks)
}
