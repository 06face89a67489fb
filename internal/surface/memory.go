package surface

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle stage of the widget's rendered content.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseLoading       Phase = "loading"
	PhaseDisplaying    Phase = "displaying"
	PhaseLocationError Phase = "location_error"
	PhaseWeatherError  Phase = "weather_error"
)

// Chip is a small badge rendered in the chip container.
type Chip struct {
	Kind string `json:"kind"` // "condition" or "temperature"
	Text string `json:"text"`
}

// State is everything the page needs to draw itself.
type State struct {
	Phase         Phase  `json:"phase"`
	Title         string `json:"title"`
	Emoji         string `json:"emoji"`
	Chips         []Chip `json:"chips"`
	ToggleVisible bool   `json:"toggleVisible"`
	ToggleLabel   string `json:"toggleLabel"`
	Background    string `json:"background"`
	Unit          string `json:"unit"`

	// Stamped by the surface on Apply.
	Version   uint64    `json:"version"`
	SessionID string    `json:"sessionId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Alert is a user-visible notice waiting to be shown by the page.
type Alert struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Surface is the display the widget controller renders to.
type Surface interface {
	Apply(state State)
	Alert(message string)
}

// Memory is a concurrency-safe in-memory surface polled by the host page.
type Memory struct {
	mu sync.RWMutex

	sessionID string
	state     State
	alerts    []Alert

	// alert retention configuration
	maxAlerts int           // max number of queued alerts (0 = unlimited)
	maxAge    time.Duration // optional max age for queued alerts

	now func() time.Time
}

// NewMemory creates a surface in the idle phase with a fresh session id.
func NewMemory(initial State, maxAlerts int, maxAge time.Duration) *Memory {
	m := &Memory{
		sessionID: uuid.NewString(),
		maxAlerts: maxAlerts,
		maxAge:    maxAge,
		now:       time.Now,
	}
	if initial.Phase == "" {
		initial.Phase = PhaseIdle
	}
	initial.SessionID = m.sessionID
	initial.UpdatedAt = m.now().UTC()
	m.state = initial
	return m
}

// SessionID identifies this process run; the page reloads when it changes.
func (m *Memory) SessionID() string {
	return m.sessionID
}

// Apply replaces the rendered state and bumps its version.
func (m *Memory) Apply(state State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state.Version = m.state.Version + 1
	state.SessionID = m.sessionID
	state.UpdatedAt = m.now().UTC()
	if state.Chips == nil {
		state.Chips = []Chip{}
	} else {
		state.Chips = append([]Chip(nil), state.Chips...)
	}
	m.state = state
}

// Snapshot returns a copy of the current state.
func (m *Memory) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := m.state
	out.Chips = append([]Chip{}, m.state.Chips...)
	return out
}

// Alert queues a message and enforces retention.
func (m *Memory) Alert(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerts = append(m.alerts, Alert{Message: message, At: m.now().UTC()})
	m.pruneLocked()
}

// DrainAlerts returns and clears the queued alerts, oldest first.
func (m *Memory) DrainAlerts() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()
	out := m.alerts
	m.alerts = nil
	if out == nil {
		out = []Alert{}
	}
	return out
}

func (m *Memory) pruneLocked() {
	// Enforce retention by count.
	if m.maxAlerts > 0 && len(m.alerts) > m.maxAlerts {
		over := len(m.alerts) - m.maxAlerts
		m.alerts = m.alerts[over:]
	}

	// Enforce retention by age.
	if m.maxAge > 0 {
		cutoff := m.now().UTC().Add(-m.maxAge)
		i := 0
		for ; i < len(m.alerts); i++ {
			if !m.alerts[i].At.Before(cutoff) {
				break
			}
		}
		m.alerts = m.alerts[i:]
	}
}
