package editor

type Play Model

func (m *Model) Play() *Play { return (*Play)(m) }

// Position returns the current play position, in seconds from the start of
// the project.
func (m *Play) Position() float64 { return m.playerStatus.Position }

// PeakLevels returns the current output peak levels, for the level meter.
func (m *Play) PeakLevels() [2]float32 { return m.playerStatus.PeakLevels }

// CPULoad returns the fraction of the available render time the player spent
// in its last Process call.
func (m *Play) CPULoad() float64 { return m.playerStatus.CPULoad }

// FromBeginning returns an Action to start playing the project from the
// beginning.
func (m *Play) FromBeginning() Action { return MakeAction((*playStart)(m)) }

type playStart Play

func (m *playStart) Do() {
	(*Model)(m).setPanic(false)
	m.playing = true
	TrySend(m.broker.ToPlayer, any(StartPlayMsg{}))
	TrySend(m.broker.ToGUI, any(MsgToGUI{Kind: GUIMessageEnsureCursorVisible}))
}

// FromViewStart returns an Action to start playing from the left edge of the
// current view.
func (m *Play) FromViewStart() Action { return MakeAction((*playViewStart)(m)) }

type playViewStart Play

func (m *playViewStart) Do() {
	(*Model)(m).setPanic(false)
	m.playing = true
	start := max(m.d.View.Start, 0)
	TrySend(m.broker.ToPlayer, any(StartPlayMsg{start}))
	TrySend(m.broker.ToGUI, any(MsgToGUI{Kind: GUIMessageEnsureCursorVisible, Param: start}))
}

// Stop returns an Action to stop playing. Stopping when already stopped
// silences the auditioned notes.
func (m *Play) Stop() Action { return MakeAction((*stopPlaying)(m)) }

type stopPlaying Play

func (m *stopPlaying) Do() {
	if !m.playing {
		(*Model)(m).setPanic(true)
		return
	}
	m.playing = false
	TrySend(m.broker.ToPlayer, any(IsPlayingMsg{false}))
}

// Panicked returns a Bool to toggle whether the player is in panic mode or not.
func (m *Play) Panicked() Bool { return MakeBool((*playPanicked)(m)) }

type playPanicked Model

func (m *playPanicked) Value() bool       { return m.panic }
func (m *playPanicked) SetValue(val bool) { (*Model)(m).setPanic(val) }

// Started returns a Bool to toggle whether playback has started or not.
func (m *Play) Started() Bool { return MakeBool((*playStarted)(m)) }

type playStarted Play

func (m *playStarted) Value() bool { return m.playing }
func (m *playStarted) SetValue(val bool) {
	m.playing = val
	if m.playing {
		(*Model)(m).setPanic(false)
		TrySend(m.broker.ToPlayer, any(StartPlayMsg{}))
		TrySend(m.broker.ToGUI, any(MsgToGUI{Kind: GUIMessageEnsureCursorVisible}))
	} else {
		TrySend(m.broker.ToPlayer, any(IsPlayingMsg{val}))
	}
}

// IsFollowing returns a Bool to toggle whether the view scrolls along with
// the playback position.
func (m *Play) IsFollowing() Bool { return MakeBoolFromPtr(&m.follow) }

// IsLooping returns a Bool to toggle whether the playback loops back to the
// beginning at the end of the project.
func (m *Play) IsLooping() Bool { return MakeBool((*playIsLooping)(m)) }

type playIsLooping Play

func (m *playIsLooping) Value() bool       { return m.loop }
func (m *playIsLooping) SetValue(val bool) { (*Model)(m).setLoop(val) }

func (m *Model) setPanic(val bool) {
	if m.panic != val {
		m.panic = val
		TrySend(m.broker.ToPlayer, any(PanicMsg{val}))
	}
}

func (m *Model) setLoop(val bool) {
	if m.loop != val {
		m.loop = val
		TrySend(m.broker.ToPlayer, any(LoopMsg{val}))
	}
}
