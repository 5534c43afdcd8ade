package editor_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"testing"

	"github.com/piirto/piirto/editor"
)

type modelFuzzState struct {
	model  *editor.Model
	broker *editor.Broker
	file   []byte
}

type myWriteCloser struct {
	*bytes.Buffer
}

func (mwc *myWriteCloser) Close() error {
	// Noop
	return nil
}

func (s *modelFuzzState) Iterate(yield func(string, func(p string, t *testing.T)) bool, seed int) {
	// Ints
	s.IterateInt("Octave", s.model.Octave(), yield, seed)
	s.IterateInt("SelectedTrack", s.model.SelectedTrack(), yield, seed)
	s.IterateInt("BrushRadius", s.model.BrushRadius(), yield, seed)
	s.IterateInt("KernelRadius", s.model.KernelRadius(), yield, seed)
	s.IterateInt("DBRange", s.model.DBRange(), yield, seed)
	s.IterateInt("ScopeLength", s.model.Scope().Length(), yield, seed)
	s.IterateInt("MIDIInput", s.model.MIDI().Input(), yield, seed)
	// Bools
	s.IterateBool("Playing", s.model.Play().Started(), yield, seed)
	s.IterateBool("Looping", s.model.Play().IsLooping(), yield, seed)
	s.IterateBool("Panicked", s.model.Play().Panicked(), yield, seed)
	s.IterateBool("Following", s.model.Play().IsFollowing(), yield, seed)
	s.IterateBool("DBScale", s.model.DBScale(), yield, seed)
	s.IterateBool("ScopeOnce", s.model.Scope().Once(), yield, seed)
	s.IterateBool("ScopeWrap", s.model.Scope().Wrap(), yield, seed)
	// Strings
	s.IterateString("FilePath", s.model.FilePath(), yield, seed)
	s.IterateString("TrackName", s.model.TrackName(), yield, seed)
	// Actions
	s.IterateAction("AddTrack", s.model.AddTrack(), yield, seed)
	s.IterateAction("DeleteTrack", s.model.DeleteTrack(), yield, seed)
	s.IterateAction("Undo", s.model.Undo(), yield, seed)
	s.IterateAction("Redo", s.model.Redo(), yield, seed)
	s.IterateAction("NewProject", s.model.NewProject(), yield, seed)
	s.IterateAction("OpenProject", s.model.OpenProject(), yield, seed)
	s.IterateAction("SaveProjectAs", s.model.SaveProjectAs(), yield, seed)
	s.IterateAction("DiscardProject", s.model.DiscardProject(), yield, seed)
	s.IterateAction("Cancel", s.model.Cancel(), yield, seed)
	s.IterateAction("Export", s.model.Export(), yield, seed)
	s.IterateAction("ExportFloat", s.model.ExportFloat(), yield, seed)
	s.IterateAction("ExportInt16", s.model.ExportInt16(), yield, seed)
	s.IterateAction("ShowLicense", s.model.ShowLicense(), yield, seed)
	s.IterateAction("PlayFromBeginning", s.model.Play().FromBeginning(), yield, seed)
	s.IterateAction("PlayFromViewStart", s.model.Play().FromViewStart(), yield, seed)
	s.IterateAction("StopPlaying", s.model.Play().Stop(), yield, seed)
	s.IterateAction("RefreshMIDI", s.model.MIDI().Refresh(), yield, seed)
	// View
	yield("ZoomIn", func(p string, t *testing.T) {
		s.model.Viewport().ZoomAt(seed%400, 0, 2)
	})
	yield("ZoomOut", func(p string, t *testing.T) {
		s.model.Viewport().ZoomAt(seed%400, 0, 0.5)
	})
	yield("Scroll", func(p string, t *testing.T) {
		s.model.Viewport().Scroll(seed%100 - 50)
	})
	yield("ZoomToFit", func(p string, t *testing.T) {
		s.model.Viewport().ZoomToFit(400)
	})
	// Drawing
	yield("Draw", func(p string, t *testing.T) {
		rect := image.Rect(0, 0, 400, 200)
		d := s.model.Draw()
		track := s.model.TrackIndex()
		d.HitTest(track, seed%400, seed*7%200, rect)
		if d.Click(track, seed%400, seed*7%200, rect, editor.Modifiers(seed%4)) {
			d.Drag(seed*13%400, seed*31%200, editor.Modifiers(seed%4))
			if seed%3 == 0 {
				d.Cancel()
			} else {
				d.Release()
			}
		}
	})
	// Notes
	yield("NoteOnOff", func(p string, t *testing.T) {
		s.model.NoteOn(byte(48 + seed%24))
		s.model.NoteOff(byte(48 + seed%24))
	})
	// Messages from the player
	yield("ProcessMsg", func(p string, t *testing.T) {
		for {
			select {
			case msg := <-s.broker.ToModel:
				s.model.ProcessMsg(msg)
			default:
				return
			}
		}
	})
	// Recovery
	yield("Recovery", func(p string, t *testing.T) {
		b := s.model.MarshalRecovery()
		s.model.UnmarshalRecovery(b)
	})
	// File reading
	if s.file != nil {
		yield("ReadProject", func(p string, t *testing.T) {
			reader := bytes.NewReader(s.file)
			readCloser := io.NopCloser(reader)
			s.model.ReadProject(readCloser)
		})
	}
	// File saving
	yield("WriteProject", func(p string, t *testing.T) {
		writer := bytes.NewBuffer(nil)
		writeCloser := &myWriteCloser{writer}
		s.model.WriteProject(writeCloser)
		s.file = writer.Bytes()
	})
}

func (s *modelFuzzState) IterateInt(name string, i editor.Int, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	r := i.Range()
	yield(name+".Set", func(p string, t *testing.T) {
		i.SetValue(seed%(r.Max-r.Min+10) - 5 + r.Min)
	})
	yield(name+".Value", func(p string, t *testing.T) {
		if v := i.Value(); v < r.Min || v > r.Max {
			r := i.Range()
			t.Errorf("Path: %s %s value out of range [%d,%d]: %d", p, name, r.Min, r.Max, v)
		}
	})
}

func (s *modelFuzzState) IterateAction(name string, a editor.Action, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Do", func(p string, t *testing.T) {
		a.Do()
	})
}

func (s *modelFuzzState) IterateBool(name string, b editor.Bool, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		b.SetValue(seed%2 == 0)
	})
	yield(name+".Toggle", func(p string, t *testing.T) {
		b.Toggle()
	})
}

func (s *modelFuzzState) IterateString(name string, str editor.String, yield func(string, func(p string, t *testing.T)) bool, seed int) {
	yield(name+".Set", func(p string, t *testing.T) {
		str.SetValue(fmt.Sprintf("%d", seed))
	})
}

func FuzzModel(f *testing.F) {
	seed := make([]byte, 1)
	for i := range seed {
		seed[i] = byte(i)
	}
	f.Add(seed)
	f.Fuzz(func(t *testing.T, slice []byte) {
		reader := bytes.NewReader(slice)
		broker := editor.NewBroker()
		model := editor.NewModel(broker, editor.NullMIDIContext{}, "")
		player := editor.NewPlayer(broker)
		buf := make([][2]float32, 2048)
		closeChan := make(chan struct{})
		go func() {
		loop:
			for {
				select {
				case <-closeChan:
					break loop
				default:
					player.Process(buf, editor.NullMIDIContext{})
				}
			}
		}()
		state := modelFuzzState{model: model, broker: broker}
		count := 0
		state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
			count++
			return true
		}, 0)
		totalPath := ""
		for m, err := binary.ReadVarint(reader); err == nil; m, err = binary.ReadVarint(reader) {
			seed := int(m)
			index := seed % count
			state.Iterate(func(n string, f func(p string, t *testing.T)) bool {
				if index == 0 {
					totalPath += n + ". "
					f(totalPath, t)
				}
				index--
				return index > 0
			}, seed)
		}
		closeChan <- struct{}{}
	})
}
