package editor_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/piirto/piirto"
	"github.com/piirto/piirto/editor"
)

func loadTestClip(t *testing.T, model *editor.Model, samples []float32) {
	t.Helper()
	b, err := json.Marshal(piirto.Project{Tracks: []piirto.Track{{
		Rate:  44100,
		Scale: piirto.DefaultScale(),
		Clips: []piirto.Clip{{Rate: 44100, Samples: samples}},
	}}})
	if err != nil {
		t.Fatal(err)
	}
	model.ReadProject(io.NopCloser(bytes.NewReader(b)))
}

func drainToModel(broker *editor.Broker, model *editor.Model) {
	for {
		select {
		case msg := <-broker.ToModel:
			model.ProcessMsg(msg)
		default:
			return
		}
	}
}

func TestPlayerPlaysProject(t *testing.T) {
	broker := editor.NewBroker()
	model := editor.NewModel(broker, editor.NullMIDIContext{}, "")
	player := editor.NewPlayer(broker)
	samples := make([]float32, 8)
	for i := range samples {
		samples[i] = 0.25
	}
	loadTestClip(t, model, samples)
	model.Play().FromBeginning().Do()
	buf := make([][2]float32, 64)
	player.Process(buf, editor.NullMIDIContext{})
	for i := 0; i < 8; i++ {
		if buf[i][0] != 0.25 || buf[i][1] != 0.25 {
			t.Errorf("frame %d is %v, want 0.25 in both channels", i, buf[i])
		}
	}
	for i := 10; i < len(buf); i++ {
		if buf[i][0] != 0 {
			t.Errorf("frame %d is %v after the end of the project, want 0", i, buf[i][0])
			break
		}
	}
	drainToModel(broker, model)
	if model.Play().Started().Value() {
		t.Error("player did not report stopping at the end of the project")
	}
	if got := model.Play().PeakLevels()[0]; got < 0.2 {
		t.Errorf("peak level after playback is %v, want at least 0.2", got)
	}
	if got := model.Scope().Waveform().Buffer[0][0]; got != 0.25 {
		t.Errorf("scope did not capture the playback: first sample is %v, want 0.25", got)
	}
}

func TestPlayerLoops(t *testing.T) {
	broker := editor.NewBroker()
	model := editor.NewModel(broker, editor.NullMIDIContext{}, "")
	player := editor.NewPlayer(broker)
	samples := make([]float32, 8)
	for i := range samples {
		samples[i] = 0.25
	}
	loadTestClip(t, model, samples)
	model.Play().IsLooping().SetValue(true)
	model.Play().FromBeginning().Do()
	buf := make([][2]float32, 64)
	player.Process(buf, editor.NullMIDIContext{})
	for _, i := range []int{0, 13, 31, 63} {
		if buf[i][0] != 0.25 {
			t.Errorf("frame %d is %v with looping on, want 0.25", i, buf[i][0])
		}
	}
	drainToModel(broker, model)
	if !model.Play().Started().Value() {
		t.Error("looping playback stopped at the end of the project")
	}
}

func TestPlayerAudition(t *testing.T) {
	broker := editor.NewBroker()
	model := editor.NewModel(broker, editor.NullMIDIContext{}, "")
	player := editor.NewPlayer(broker)
	samples := make([]float32, 8)
	for i := range samples {
		samples[i] = float32(i) / 8
	}
	loadTestClip(t, model, samples)
	model.NoteOn(60)
	buf := make([][2]float32, 4)
	player.Process(buf, editor.NullMIDIContext{})
	for i := 0; i < 4; i++ {
		if buf[i][0] != samples[i] {
			t.Errorf("auditioned frame %d is %v, want %v", i, buf[i][0], samples[i])
		}
	}
	// a released note keeps sounding while it fades out
	model.NoteOff(60)
	buf2 := make([][2]float32, 4)
	player.Process(buf2, editor.NullMIDIContext{})
	if got := buf2[0][0]; got != samples[4] {
		t.Errorf("first frame after the release is %v, want %v", got, samples[4])
	}
	if got := buf2[1][0]; got >= samples[5] || got <= samples[5]*0.99 {
		t.Errorf("second frame after the release is %v, want slightly below %v", got, samples[5])
	}
	// an octave up advances two samples per frame
	model.NoteOn(72)
	buf3 := make([][2]float32, 3)
	player.Process(buf3, editor.NullMIDIContext{})
	for i := 0; i < 3; i++ {
		if buf3[i][0] != samples[2*i] {
			t.Errorf("octave up frame %d is %v, want %v", i, buf3[i][0], samples[2*i])
		}
	}
	// stopping while already stopped silences the hanging notes
	model.Play().Stop().Do()
	buf4 := make([][2]float32, 2)
	player.Process(buf4, editor.NullMIDIContext{})
	if got := buf4[0][0]; got != 0 {
		t.Errorf("notes still sounding after a stop: %v", got)
	}
}
