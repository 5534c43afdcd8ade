package editor

import (
	"fmt"
	"strings"
)

type (
	// MIDIContext is the access to the MIDI drivers of the system. The
	// player pulls note events straight from the context during Process, so
	// the model side only takes care of which input device is open.
	MIDIContext interface {
		PlayerProcessContext
		InputDevices(yield func(device MIDIDevice) bool)
		Support() MIDISupport
		Close()
	}

	MIDIDevice interface {
		Open() error
		Close() error
		String() string
	}

	// MIDISupport tells why there are no MIDI devices to list, if the build
	// or the system does not support MIDI.
	MIDISupport int

	midiState struct {
		context      MIDIContext
		currentInput MIDIDevice
		inputs       []MIDIDevice
	}

	// MIDIModel is the view model for choosing the MIDI input device.
	MIDIModel Model

	midiInput   MIDIModel
	refreshMidi MIDIModel
)

const (
	MIDISupportNotCompiled MIDISupport = iota
	MIDISupportNoDriver
	MIDISupported
)

func (m *Model) MIDI() *MIDIModel { return (*MIDIModel)(m) }

// NullMIDIContext is a MIDIContext with no devices, used when the build has
// no MIDI support and in tests.
type NullMIDIContext struct{}

func (m NullMIDIContext) NextEvent(frame int) (event MIDINoteEvent, ok bool) {
	return MIDINoteEvent{}, false
}
func (m NullMIDIContext) FinishBlock(frame int)                    {}
func (m NullMIDIContext) InputDevices(yield func(MIDIDevice) bool) {}
func (m NullMIDIContext) Support() MIDISupport                     { return MIDISupportNotCompiled }
func (m NullMIDIContext) Close()                                   {}

// FindMIDIInputIndex returns the one based index of the first input device
// whose name starts with the given prefix, suitable for passing to
// MIDIModel.Input().SetValue. 0 means no device matched.
func FindMIDIInputIndex(context MIDIContext, prefix string) int {
	i := 1
	for input := range context.InputDevices {
		if strings.HasPrefix(input.String(), prefix) {
			return i
		}
		i++
	}
	return 0
}

func (m *MIDIModel) Input() Int      { return MakeInt((*midiInput)(m)) }
func (m *MIDIModel) Refresh() Action { return MakeAction((*refreshMidi)(m)) }

// Value returns the index of the current input device plus one; 0 means no
// device is open.
func (v *midiInput) Value() int {
	for i, input := range v.midi.inputs {
		if input == v.midi.currentInput {
			return i + 1
		}
	}
	return 0
}

func (v *midiInput) SetValue(value int) bool {
	if v.midi.currentInput != nil {
		if err := v.midi.currentInput.Close(); err != nil {
			(*Model)(v).Alerts().Add(fmt.Sprintf("Failed to close current MIDI input port: %s", err.Error()), Error)
			return false
		}
		v.midi.currentInput = nil
	}
	if value == 0 {
		return true
	}
	input := v.midi.inputs[value-1]
	if err := input.Open(); err != nil {
		(*Model)(v).Alerts().Add(fmt.Sprintf("Failed to open MIDI input port: %s", err.Error()), Error)
		return false
	}
	v.midi.currentInput = input
	(*Model)(v).Alerts().Add(fmt.Sprintf("Opened MIDI input port: %s", input.String()), Info)
	return true
}

func (v *midiInput) Range() RangeInclusive { return RangeInclusive{0, len(v.midi.inputs)} }

func (v *midiInput) StringOf(value int) string {
	if value >= 1 && value <= len(v.midi.inputs) {
		return v.midi.inputs[value-1].String()
	}
	switch v.midi.context.Support() {
	case MIDISupportNotCompiled:
		return "Not compiled"
	case MIDISupportNoDriver:
		return "No driver"
	}
	return "Closed"
}

// Do relists the input devices, reopening the current one if it is still
// there, e.g. after plugging in a device.
func (v *refreshMidi) Do() {
	m := (*Model)(v)
	m.midi.inputs = m.midi.inputs[:0]
	for input := range m.midi.context.InputDevices {
		m.midi.inputs = append(m.midi.inputs, input)
	}
	if m.midi.currentInput == nil {
		return
	}
	name := m.midi.currentInput.String()
	m.midi.currentInput = nil
	for _, input := range m.midi.inputs {
		if input.String() != name {
			continue
		}
		if err := input.Open(); err != nil {
			m.Alerts().Add(fmt.Sprintf("Failed to reopen MIDI input port: %s", err.Error()), Error)
			return
		}
		m.midi.currentInput = input
		return
	}
}
