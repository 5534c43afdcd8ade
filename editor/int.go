package editor

type (
	octaveInt     Model
	selectedTrack Model
	brushRadius   Model
	kernelRadius  Model
	dbRange       Model
)

func (m *Model) Octave() Int        { return MakeInt((*octaveInt)(m)) }
func (m *Model) SelectedTrack() Int { return MakeInt((*selectedTrack)(m)) }
func (m *Model) BrushRadius() Int   { return MakeInt((*brushRadius)(m)) }
func (m *Model) KernelRadius() Int  { return MakeInt((*kernelRadius)(m)) }
func (m *Model) DBRange() Int       { return MakeInt((*dbRange)(m)) }

// octaveInt

func (v *octaveInt) Value() int { return v.d.Octave }
func (v *octaveInt) SetValue(value int) bool {
	defer (*Model)(v).change("Octave", NoChange, MinorChange)()
	v.d.Octave = value
	return true
}
func (v *octaveInt) Range() RangeInclusive { return RangeInclusive{0, 9} }

// selectedTrack

func (v *selectedTrack) Value() int { return v.d.TrackIndex }
func (v *selectedTrack) SetValue(value int) bool {
	defer (*Model)(v).change("SelectedTrack", NoChange, MinorChange)()
	v.d.TrackIndex = value
	return true
}
func (v *selectedTrack) Range() RangeInclusive {
	return RangeInclusive{0, max(len(v.d.Project.Tracks)-1, 0)}
}
func (v *selectedTrack) StringOf(value int) string { return (*Model)(v).TrackTitle(value) }

// brushRadius

func (v *brushRadius) Value() int { return v.d.Smoothing.BrushRadius }
func (v *brushRadius) SetValue(value int) bool {
	defer (*Model)(v).change("BrushRadius", SmoothingChange, MinorChange)()
	v.d.Smoothing.BrushRadius = value
	return true
}
func (v *brushRadius) Range() RangeInclusive { return RangeInclusive{0, 100} }

// kernelRadius

func (v *kernelRadius) Value() int { return v.d.Smoothing.KernelRadius }
func (v *kernelRadius) SetValue(value int) bool {
	defer (*Model)(v).change("KernelRadius", SmoothingChange, MinorChange)()
	v.d.Smoothing.KernelRadius = value
	return true
}
func (v *kernelRadius) Range() RangeInclusive { return RangeInclusive{1, 50} }

// dbRange

func (v *dbRange) Value() int {
	m := (*Model)(v)
	r := v.Range()
	if m.d.TrackIndex < 0 || m.d.TrackIndex >= len(m.d.Project.Tracks) {
		return r.Min
	}
	return r.Clamp(int(m.d.Project.Tracks[m.d.TrackIndex].Scale.DBRange))
}
func (v *dbRange) SetValue(value int) bool {
	m := (*Model)(v)
	defer m.change("DBRange", TrackChange, MinorChange)()
	m.d.Project.Tracks[m.d.TrackIndex].Scale.DBRange = float32(value)
	return true
}
func (v *dbRange) Range() RangeInclusive { return RangeInclusive{6, 145} }
func (v *dbRange) Enabled() bool {
	m := (*Model)(v)
	return m.d.TrackIndex >= 0 && m.d.TrackIndex < len(m.d.Project.Tracks) &&
		m.d.Project.Tracks[m.d.TrackIndex].Scale.DB
}
