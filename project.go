package piirto

// Project is the root of the document: the tracks being edited.
type Project struct {
	Tracks []Track
}

func (p *Project) Copy() Project {
	tracks := make([]Track, len(p.Tracks))
	for i, t := range p.Tracks {
		tracks[i] = t.Copy()
	}
	return Project{Tracks: tracks}
}

// Duration returns the end time of the clip ending last, across all tracks.
func (p *Project) Duration() float64 {
	var ret float64
	for _, t := range p.Tracks {
		for i := range t.Clips {
			if end := t.Clips[i].End(); end > ret {
				ret = end
			}
		}
	}
	return ret
}
