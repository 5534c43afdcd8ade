package editor

import (
	"time"
)

type (
	// Alerts is a list of brief messages shown to the user, with their
	// remaining durations and fade animation states. The GUI iterates the
	// alerts and renders them as popups on top of everything else.
	Alerts Model

	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const defaultAlertDuration = 3 * time.Second

var alertSpeed = 150 * time.Millisecond

func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

// AddNamed adds an alert with a name. If an alert with the same name already
// exists, it is replaced, instead of adding a new one.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

// ClearNamed makes the alert with the given name, if any, start fading out.
func (m *Alerts) ClearNamed(name string) {
	for i := range m.alerts {
		if m.alerts[i].Name == name {
			m.alerts[i].Duration = 0
		}
	}
}

func (m *Alerts) Count() int { return len(m.alerts) }

// Iterate is an iter.Seq2 of all the current alerts, in the order they were
// added, usable as "for _, alert := range alerts.Iterate".
func (m *Alerts) Iterate(yield func(index int, alert Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			return
		}
	}
}

// Update advances the fade animations of the alerts by d and drops the alerts
// that have completely faded out. It returns true if any alert is still
// animating, meaning the GUI should keep refreshing.
func (m *Alerts) Update(d time.Duration) (animating bool) {
	for i := len(m.alerts) - 1; i >= 0; i-- {
		a := &m.alerts[i]
		if a.Duration > 0 {
			a.Duration -= d
			if a.FadeLevel < 1 {
				animating = true
				a.FadeLevel += float64(d) / float64(alertSpeed)
				if a.FadeLevel > 1 {
					a.FadeLevel = 1
				}
			}
			continue
		}
		animating = true
		a.FadeLevel -= float64(d) / float64(alertSpeed)
		if a.FadeLevel < 0 {
			m.alerts = append(m.alerts[:i], m.alerts[i+1:]...)
		}
	}
	return
}
