package editor

import (
	"github.com/piirto/piirto"
)

const defaultRate = 44100

// defaultProject is the project of a fresh editor: one track with five seconds
// of silence, ready to be drawn on.
var defaultProject = piirto.Project{
	Tracks: []piirto.Track{{
		Name:  "Track 1",
		Rate:  defaultRate,
		Scale: piirto.DefaultScale(),
		Clips: []piirto.Clip{{
			Name:    "Clip 1",
			Rate:    defaultRate,
			Samples: make([]float32, 5*defaultRate),
		}},
	}},
}

// defaultView shows the whole default project in a roughly thousand pixel wide
// window.
var defaultView = piirto.ViewInfo{Start: 0, Zoom: 200}
