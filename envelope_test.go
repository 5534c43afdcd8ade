package piirto_test

import (
	"testing"

	"github.com/piirto/piirto"
)

func TestEnvelopeValueAt(t *testing.T) {
	e := &piirto.Envelope{Points: []piirto.EnvelopePoint{
		{Time: 1, Value: 0.2},
		{Time: 3, Value: 1},
		{Time: 4, Value: 0.5},
	}}
	for _, tt := range []struct {
		time float64
		want float32
	}{
		{0, 0.2}, // flat before the first point
		{1, 0.2},
		{2, 0.6},
		{3, 1},
		{3.5, 0.75},
		{4, 0.5},
		{9, 0.5}, // flat after the last point
	} {
		if got := e.ValueAt(tt.time); !closeTo(got, tt.want, 1e-6) {
			t.Errorf("ValueAt(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestEnvelopeValueAtStep(t *testing.T) {
	e := &piirto.Envelope{Points: []piirto.EnvelopePoint{
		{Time: 0, Value: 1},
		{Time: 0.5, Value: 0.2},
		{Time: 0.5, Value: 0.8},
		{Time: 1, Value: 0.6},
	}}
	if got := e.ValueAt(0.5); got != 0.2 {
		t.Errorf("ValueAt(0.5) = %v, want 0.2", got)
	}
	if got := e.ValueAt(0.75); !closeTo(got, 0.7, 1e-6) {
		t.Errorf("ValueAt(0.75) = %v, want 0.7", got)
	}
}

func TestEnvelopeValueAtEmpty(t *testing.T) {
	var e *piirto.Envelope
	if got := e.ValueAt(1); got != 1 {
		t.Errorf("nil envelope ValueAt = %v, want 1", got)
	}
	e = &piirto.Envelope{}
	if got := e.ValueAt(1); got != 1 {
		t.Errorf("empty envelope ValueAt = %v, want 1", got)
	}
}

func TestEnvelopeCopy(t *testing.T) {
	var nilEnvelope *piirto.Envelope
	if nilEnvelope.Copy() != nil {
		t.Errorf("Copy of nil envelope is not nil")
	}
	e := &piirto.Envelope{Points: []piirto.EnvelopePoint{{Time: 0, Value: 1}}}
	copied := e.Copy()
	copied.Points[0].Value = 0.5
	if e.Points[0].Value != 1 {
		t.Errorf("original envelope changed to %v", e.Points[0].Value)
	}
}

func TestApplyEnvelope(t *testing.T) {
	for _, tt := range []struct {
		value, envelope, want float32
	}{
		{0.5, 1, 0.5},
		{0.5, 0.5, 1},
		{0.9, 0.5, 1},   // clamped after compensation
		{-0.9, 0.5, -1}, // clamped after compensation
		{0.3, 2, 0.15},
		{0.5, 0, 0},
		{0.5, -1, 0},
	} {
		if got := piirto.ApplyEnvelope(tt.value, tt.envelope); !closeTo(got, tt.want, 1e-6) {
			t.Errorf("ApplyEnvelope(%v, %v) = %v, want %v", tt.value, tt.envelope, got, tt.want)
		}
	}
}
