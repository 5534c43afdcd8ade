//go:build !cgo

package cmd

import (
	"github.com/piirto/piirto/editor"
)

func NewMIDIContext() editor.MIDIContext {
	// with no cgo, we cannot use rtmidi, so return a null context
	return editor.NullMIDIContext{}
}
