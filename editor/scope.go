package editor

import (
	"github.com/piirto/piirto"
)

type (
	// ScopeModel is the model for the oscilloscope view, which shows the
	// audio played back by the player. The scope keeps its own copy of the
	// signal in a ring buffer, as the player borrows the buffers it sends and
	// they are returned to the pool right after processing.
	ScopeModel struct {
		waveForm       RingBuffer[[2]float32]
		once           bool
		wrap           bool
		lengthInMillis int
	}

	RingBuffer[T any] struct {
		Buffer []T
		Cursor int
	}

	SignalOnce   ScopeModel
	SignalWrap   ScopeModel
	SignalLength ScopeModel
)

func (r *RingBuffer[T]) WriteWrap(values []T) {
	r.Cursor = (r.Cursor + len(values)) % len(r.Buffer)
	a := min(len(values), r.Cursor)                 // how many values to copy before the cursor
	b := min(len(values)-a, len(r.Buffer)-r.Cursor) // how many values to copy to the end of the buffer
	copy(r.Buffer[r.Cursor-a:r.Cursor], values[len(values)-a:])
	copy(r.Buffer[len(r.Buffer)-b:], values[len(values)-a-b:])
}

func (r *RingBuffer[T]) WriteWrapSingle(value T) {
	r.Cursor = (r.Cursor + 1) % len(r.Buffer)
	r.Buffer[r.Cursor] = value
}

func (r *RingBuffer[T]) WriteOnce(values []T) {
	if r.Cursor < len(r.Buffer) {
		r.Cursor += copy(r.Buffer[r.Cursor:], values)
	}
}

func (r *RingBuffer[T]) WriteOnceSingle(value T) {
	if r.Cursor < len(r.Buffer) {
		r.Buffer[r.Cursor] = value
		r.Cursor++
	}
}

func NewScopeModel() *ScopeModel {
	s := &ScopeModel{lengthInMillis: 100, wrap: true}
	s.updateBufferLength()
	return s
}

func (m *Model) Scope() *ScopeModel { return m.scope }

func (s *ScopeModel) Waveform() RingBuffer[[2]float32] { return s.waveForm }

func (s *ScopeModel) Once() Bool  { return MakeBool((*SignalOnce)(s)) }
func (s *ScopeModel) Wrap() Bool  { return MakeBool((*SignalWrap)(s)) }
func (s *ScopeModel) Length() Int { return MakeInt((*SignalLength)(s)) }

func (m *SignalOnce) Value() bool { return m.once }

// enabling one-shot mode re-arms the capture
func (m *SignalOnce) SetValue(val bool) {
	m.once = val
	if val {
		m.waveForm.Cursor = 0
	}
}

func (m *SignalWrap) Value() bool       { return m.wrap }
func (m *SignalWrap) SetValue(val bool) { m.wrap = val }

func (m *SignalLength) Value() int { return m.lengthInMillis }
func (m *SignalLength) SetValue(val int) bool {
	m.lengthInMillis = val
	(*ScopeModel)(m).updateBufferLength()
	return true
}
func (m *SignalLength) Range() RangeInclusive { return RangeInclusive{10, 5000} }

func (s *ScopeModel) ProcessAudioBuffer(bufPtr *piirto.AudioBuffer) {
	if s.wrap {
		s.waveForm.WriteWrap(*bufPtr)
	} else {
		s.waveForm.WriteOnce(*bufPtr)
	}
}

func (s *ScopeModel) Reset() {
	if s.once && s.waveForm.Cursor >= len(s.waveForm.Buffer) {
		return
	}
	s.waveForm.Cursor = 0
	l := len(s.waveForm.Buffer)
	s.waveForm.Buffer = s.waveForm.Buffer[:0]
	s.waveForm.Buffer = append(s.waveForm.Buffer, make([][2]float32, l)...)
}

func (s *ScopeModel) updateBufferLength() {
	if s.lengthInMillis == 0 {
		return
	}
	setSliceLength(&s.waveForm.Buffer, defaultRate*s.lengthInMillis/1000)
}

func setSliceLength[T any](slice *[]T, length int) {
	if len(*slice) < length {
		*slice = append(*slice, make([]T, length-len(*slice))...)
	}
	*slice = (*slice)[:length]
}
