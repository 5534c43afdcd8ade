package editor_test

import (
	"reflect"
	"testing"

	"github.com/piirto/piirto"
	"github.com/piirto/piirto/editor"
)

func TestRingBufferWriteWrap(t *testing.T) {
	r := editor.RingBuffer[int]{Buffer: make([]int, 4)}
	r.WriteWrap([]int{1, 2})
	if got, want := r.Buffer, []int{1, 2, 0, 0}; !reflect.DeepEqual(got, want) || r.Cursor != 2 {
		t.Errorf("after first write buffer is %v cursor %d, want %v cursor 2", got, r.Cursor, want)
	}
	r.WriteWrap([]int{3, 4, 5})
	if got, want := r.Buffer, []int{5, 2, 3, 4}; !reflect.DeepEqual(got, want) || r.Cursor != 1 {
		t.Errorf("after wrapping write buffer is %v cursor %d, want %v cursor 1", got, r.Cursor, want)
	}
	// writes longer than the buffer keep only the tail
	r.WriteWrap([]int{6, 7, 8, 9, 10})
	if got, want := r.Buffer, []int{9, 10, 7, 8}; !reflect.DeepEqual(got, want) || r.Cursor != 2 {
		t.Errorf("after long write buffer is %v cursor %d, want %v cursor 2", got, r.Cursor, want)
	}
}

func TestRingBufferWriteOnce(t *testing.T) {
	r := editor.RingBuffer[int]{Buffer: make([]int, 4)}
	r.WriteOnce([]int{1, 2})
	r.WriteOnce([]int{3, 4, 5})
	if got, want := r.Buffer, []int{1, 2, 3, 4}; !reflect.DeepEqual(got, want) || r.Cursor != 4 {
		t.Errorf("buffer is %v cursor %d, want %v cursor 4", got, r.Cursor, want)
	}
	r.WriteOnce([]int{6})
	if r.Buffer[0] != 1 || r.Cursor != 4 {
		t.Error("WriteOnce overwrote a full buffer")
	}
}

func TestScopeCapture(t *testing.T) {
	s := editor.NewScopeModel()
	if got := len(s.Waveform().Buffer); got != 4410 {
		t.Errorf("default scope buffer is %d samples, want 4410", got)
	}
	s.Length().SetValue(10)
	if got := len(s.Waveform().Buffer); got != 441 {
		t.Errorf("10 ms scope buffer is %d samples, want 441", got)
	}
	buf := piirto.AudioBuffer{{0.5, 0.5}, {0.25, 0.25}}
	s.ProcessAudioBuffer(&buf)
	w := s.Waveform()
	if w.Cursor != 2 || w.Buffer[0][0] != 0.5 || w.Buffer[1][1] != 0.25 {
		t.Errorf("scope did not record the buffer: cursor %d, first samples %v %v", w.Cursor, w.Buffer[0], w.Buffer[1])
	}
	// in one-shot mode a completed capture survives the reset at play start
	s.Wrap().SetValue(false)
	s.Once().SetValue(true)
	big := make(piirto.AudioBuffer, 441)
	for i := range big {
		big[i] = [2]float32{1, 1}
	}
	s.ProcessAudioBuffer(&big)
	s.Reset()
	if w := s.Waveform(); w.Buffer[440][0] != 1 {
		t.Errorf("reset cleared a completed one-shot capture: %v", w.Buffer[440][0])
	}
	s.Once().SetValue(false)
	s.Reset()
	if w := s.Waveform(); w.Buffer[440][0] != 0 || w.Cursor != 0 {
		t.Errorf("reset did not clear the scope: %v cursor %d", w.Buffer[440][0], w.Cursor)
	}
}
