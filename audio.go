package piirto

import "io"

type (
	// AudioBuffer is a buffer of stereo audio samples of little-endian float32s
	AudioBuffer [][2]float32

	// AudioContext represents the low-level audio drivers. There should be at
	// most one AudioContext at a time. The interface is implemented at least by
	// oto.Context.
	AudioContext interface {
		// Play starts the audio playback, calling the callback whenever the
		// driver needs more audio. The callback should fill the buffer it is
		// given. Play returns an io.Closer that stops the playback when
		// closed.
		Play(callback func(buf AudioBuffer) error) io.Closer
	}
)
