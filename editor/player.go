package editor

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/piirto/piirto"
)

type (
	// Player is the audio side of the editor. It runs in the audio callback
	// goroutine and renders the project into the buffers given to Process,
	// so it keeps its own copy of the project, updated through the broker.
	// Communication with the model goes strictly through the broker channels,
	// as Process must never block.
	Player struct {
		playing  bool
		loop     bool
		position float64 // play position, in seconds from the project start
		project  piirto.Project
		voices   []voice
		peaks    [2]float32
		cpuload  float64

		broker *Broker
	}

	// voice is a note being auditioned: the track played back at the pitch of
	// the note, with middle C (note 60) being the original speed.
	voice struct {
		track    int
		note     byte
		time     float64
		ratio    float64
		sustain  bool
		released int // frames since the note off, for the fade out
	}

	// PlayerProcessContext is the interface for the MIDI context the player
	// pulls note events from during a Process call.
	PlayerProcessContext interface {
		NextEvent(frame int) (event MIDINoteEvent, ok bool)
		FinishBlock(frame int)
	}

	// MIDINoteEvent is a MIDI note on/off event, with the frame indicating
	// the number of samples since the start of the current Process block.
	MIDINoteEvent struct {
		Frame    int
		On       bool
		Channel  int
		Note     byte
		Velocity byte
	}

	// PlayerStatus is the state of the player, sent to the model along with
	// every message so the GUI always has a fresh view of the player.
	PlayerStatus struct {
		Position   float64
		PeakLevels [2]float32
		CPULoad    float64
	}
)

// Messages to the player. Only the player should access the fields, as they
// are not copied when sent through the broker.
type (
	StartPlayMsg struct{ Position float64 }
	IsPlayingMsg struct{ bool }
	LoopMsg      struct{ bool }
	PanicMsg     struct{ bool }
	NoteOnMsg    struct {
		Track int
		Note  byte
	}
	NoteOffMsg struct{ Note byte }
)

const (
	maxVoices = 32

	// release fade time constant, in frames; the fade is exponential so the
	// note is inaudible after a few time constants
	releaseTau = 4410
)

func NewPlayer(broker *Broker) *Player {
	return &Player{broker: broker}
}

// Process renders into the given buffer, trying to fill it completely. It
// pulls MIDI events from the context as it goes and drains the control
// messages sent by the model before rendering.
func (p *Player) Process(buffer piirto.AudioBuffer, context PlayerProcessContext) {
	startTime := time.Now()
	p.processMessages()
	duration := p.project.Duration()
	frame := 0
	midi, midiOk := context.NextEvent(frame)
	for i := range buffer {
		for midiOk && frame >= midi.Frame {
			if midi.On {
				p.trigger(midi.Channel, midi.Note)
			} else {
				p.release(midi.Note)
			}
			midi, midiOk = context.NextEvent(frame)
		}
		var out float32
		if p.playing {
			out = p.sampleAt(p.position)
			p.position += 1.0 / defaultRate
			if p.position >= duration {
				p.position = 0
				if !p.loop || duration <= 0 {
					p.playing = false
					p.send(IsPlayingMsg{false})
				}
			}
		}
		out += p.renderVoices(duration)
		buffer[i][0], buffer[i][1] = out, out
		p.updatePeaks(buffer[i])
		frame++
	}
	context.FinishBlock(frame)
	p.sendToScope(buffer)
	elapsed := time.Since(startTime)
	p.cpuload = elapsed.Seconds() * defaultRate / float64(max(len(buffer), 1))
	p.send(nil)
}

// sampleAt mixes all the tracks of the project at the given time, with the
// clip envelopes applied.
func (p *Player) sampleAt(position float64) float32 {
	var ret float32
	for i := range p.project.Tracks {
		t := &p.project.Tracks[i]
		if sample, ok := t.FloatAtTime(position); ok {
			ret += sample * t.EnvelopeAt(position)
		}
	}
	return ret
}

func (p *Player) renderVoices(duration float64) float32 {
	var ret float32
	for i := 0; i < len(p.voices); {
		v := &p.voices[i]
		t := &p.project.Tracks[v.track]
		gain := float32(1)
		if !v.sustain {
			gain = math32.Exp(-float32(v.released) / releaseTau)
			v.released++
		}
		if sample, ok := t.FloatAtTime(v.time); ok {
			ret += sample * t.EnvelopeAt(v.time) * gain
		}
		v.time += v.ratio / defaultRate
		if (!v.sustain && gain < 1e-4) || v.time >= duration {
			p.voices[i] = p.voices[len(p.voices)-1]
			p.voices = p.voices[:len(p.voices)-1]
			continue
		}
		i++
	}
	return ret
}

func (p *Player) trigger(track int, note byte) {
	if len(p.project.Tracks) == 0 {
		return
	}
	track = max(min(track, len(p.project.Tracks)-1), 0)
	if len(p.voices) >= maxVoices {
		copy(p.voices, p.voices[1:])
		p.voices = p.voices[:len(p.voices)-1]
	}
	ratio := float64(math32.Exp2(float32(int(note)-60) / 12))
	p.voices = append(p.voices, voice{track: track, note: note, ratio: ratio, sustain: true})
}

func (p *Player) release(note byte) {
	for i := range p.voices {
		if p.voices[i].note == note && p.voices[i].sustain {
			p.voices[i].sustain = false
		}
	}
}

func (p *Player) updatePeaks(frame [2]float32) {
	for c := range frame {
		a := math32.Abs(frame[c])
		if a > p.peaks[c] {
			p.peaks[c] = a
		} else {
			p.peaks[c] *= 0.9999
		}
	}
}

// sendToScope copies the rendered buffer into a pooled buffer and sends it to
// the model for the oscilloscope. The model returns the buffer to the pool.
func (p *Player) sendToScope(buffer piirto.AudioBuffer) {
	bufPtr := p.broker.GetAudioBuffer()
	*bufPtr = append(*bufPtr, buffer...)
	if len(*bufPtr) == 0 || !TrySend(p.broker.ToModel, MsgToModel{HasPlayerStatus: true, Status: p.status(), Data: bufPtr}) {
		p.broker.PutAudioBuffer(bufPtr)
	}
}

func (p *Player) processMessages() {
loop:
	for {
		select {
		case msg := <-p.broker.ToPlayer:
			switch m := msg.(type) {
			case piirto.Project:
				p.project = m
				for i := 0; i < len(p.voices); {
					if p.voices[i].track >= len(m.Tracks) {
						p.voices[i] = p.voices[len(p.voices)-1]
						p.voices = p.voices[:len(p.voices)-1]
						continue
					}
					i++
				}
			case StartPlayMsg:
				p.playing = true
				p.position = m.Position
				TrySend(p.broker.ToModel, MsgToModel{HasPlayerStatus: true, Status: p.status(), Reset: true, Data: IsPlayingMsg{true}})
			case IsPlayingMsg:
				p.playing = m.bool
				if !p.playing {
					p.position = 0
				}
				p.send(m)
			case LoopMsg:
				p.loop = m.bool
			case PanicMsg:
				if m.bool {
					p.voices = p.voices[:0]
				}
			case NoteOnMsg:
				p.trigger(m.Track, m.Note)
			case NoteOffMsg:
				p.release(m.Note)
			default:
			}
		default:
			break loop
		}
	}
}

func (p *Player) status() PlayerStatus {
	return PlayerStatus{Position: p.position, PeakLevels: p.peaks, CPULoad: p.cpuload}
}

// send sends a message to the model, with the player status piggybacking.
func (p *Player) send(message any) {
	TrySend(p.broker.ToModel, MsgToModel{HasPlayerStatus: true, Status: p.status(), Data: message})
}

// SendAlert sends an alert to the model, to be shown to the user.
func (p *Player) SendAlert(name, message string, priority AlertPriority) {
	p.send(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}
