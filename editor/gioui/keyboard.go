package gioui

import (
	"github.com/piirto/piirto/editor"
)

type (
	// Keyboard tracks which keys are currently auditioning a note, so that a
	// held key does not retrigger and releasing a key stops exactly the note
	// it started. T identifies the keys; for the computer keyboard it is
	// key.Name.
	Keyboard[T comparable] struct {
		model   *editor.Model
		pressed map[T]byte
	}
)

func MakeKeyboard[T comparable](m *editor.Model) Keyboard[T] {
	return Keyboard[T]{model: m, pressed: make(map[T]byte)}
}

func (k *Keyboard[T]) Press(key T, note byte) {
	if _, ok := k.pressed[key]; ok {
		return // key already down, do not retrigger
	}
	k.model.NoteOn(note)
	k.pressed[key] = note
}

func (k *Keyboard[T]) Release(key T) {
	if note, ok := k.pressed[key]; ok {
		k.model.NoteOff(note)
		delete(k.pressed, key)
	}
}

func (k *Keyboard[T]) ReleaseAll() {
	for key := range k.pressed {
		k.Release(key)
	}
}
