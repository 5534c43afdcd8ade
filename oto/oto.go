package oto

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/piirto/piirto"
)

type (
	// Context wraps an oto context so that it implements piirto.AudioContext.
	Context struct {
		context *oto.Context
	}

	// callbackReader adapts the pull style callback to the io.Reader the oto
	// player reads its audio from, converting the rendered samples to the
	// little-endian float32 bytes the player expects.
	callbackReader struct {
		callback func(buf piirto.AudioBuffer) error
		buffer   piirto.AudioBuffer
		err      error
	}

	playback struct {
		player *oto.Player
	}
)

const (
	sampleRate = 44100

	// bufferLength is the length of the driver buffer in stereo samples,
	// roughly 46 ms. Shorter buffers reduce latency but risk underruns when a
	// draw gesture makes the GUI goroutine hog the CPU.
	bufferLength = 2048
)

func NewContext() (*Context, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferLength * time.Second / sampleRate,
	}
	context, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{context: context}, nil
}

func (c *Context) Play(callback func(buf piirto.AudioBuffer) error) io.Closer {
	reader := &callbackReader{
		callback: callback,
		buffer:   make(piirto.AudioBuffer, bufferLength),
	}
	player := c.context.NewPlayer(reader)
	player.Play()
	return playback{player}
}

func (p playback) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

func (r *callbackReader) Read(b []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	samples := len(b) / 8 // 2 channels, 4 bytes per channel
	if samples == 0 {
		return 0, nil
	}
	if samples > len(r.buffer) {
		r.buffer = make(piirto.AudioBuffer, samples)
	}
	buf := r.buffer[:samples]
	if err := r.callback(buf); err != nil {
		r.err = err
		return 0, err
	}
	for i, s := range buf {
		binary.LittleEndian.PutUint32(b[i*8:], math.Float32bits(s[0]))
		binary.LittleEndian.PutUint32(b[i*8+4:], math.Float32bits(s[1]))
	}
	return samples * 8, nil
}
