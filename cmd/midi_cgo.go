//go:build cgo

package cmd

import (
	"github.com/piirto/piirto/editor"
	"github.com/piirto/piirto/editor/gomidi"
)

func NewMIDIContext() editor.MIDIContext {
	return gomidi.NewContext()
}
