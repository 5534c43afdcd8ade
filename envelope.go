package piirto

type (
	// Envelope is a piecewise linear amplitude envelope. Point times are in
	// seconds from the start of the clip owning the envelope. Before the first
	// point and after the last one the envelope is flat.
	Envelope struct {
		Points []EnvelopePoint `yaml:",flow"`
	}

	EnvelopePoint struct {
		Time  float64
		Value float32
	}
)

// ValueAt returns the envelope value at the given time. A nil or empty
// envelope has the constant value 1.
func (e *Envelope) ValueAt(time float64) float32 {
	if e == nil || len(e.Points) == 0 {
		return 1
	}
	points := e.Points
	if time <= points[0].Time {
		return points[0].Value
	}
	for i := 1; i < len(points); i++ {
		if time <= points[i].Time {
			p, q := points[i-1], points[i]
			if q.Time == p.Time {
				return q.Value
			}
			return p.Value + float32((time-p.Time)/(q.Time-p.Time))*(q.Value-p.Value)
		}
	}
	return points[len(points)-1].Value
}

func (e *Envelope) Copy() *Envelope {
	if e == nil {
		return nil
	}
	points := make([]EnvelopePoint, len(e.Points))
	copy(points, e.Points)
	return &Envelope{Points: points}
}

// ApplyEnvelope converts a value the user placed on the display into the
// sample value to store, compensating for the envelope scaling that the
// display applies: the placed value is divided by the envelope value. When the
// envelope value is zero or negative the sample becomes zero. The result is
// always clamped to [-1, 1].
func ApplyEnvelope(value, envelope float32) float32 {
	if envelope > 0 {
		value /= envelope
	} else {
		value = 0
	}
	return min(max(value, -1), 1)
}
