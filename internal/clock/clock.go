// Package clock provides a bubbletea component that shows the wall-clock
// time and refreshes it on a fixed interval.
package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultInterval is a tenth of a minute.
	DefaultInterval = 6 * time.Second

	// Layout is the abbreviated weekday followed by zero-padded 12-hour time.
	Layout = "Mon, 03:04"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg asks a clock to re-read the wall clock.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Model is the clock component.
type Model struct {
	Interval time.Duration

	now     func() time.Time
	current time.Time
	id      int
	tag     int
	running bool
}

// Option configures a clock.
type Option func(*Model)

// WithInterval overrides the refresh interval.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.Interval = d
		}
	}
}

// WithNow replaces the wall-clock source.
func WithNow(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a clock showing the current time. It does not tick until
// Start is called.
func New(opts ...Option) Model {
	m := Model{
		Interval: DefaultInterval,
		now:      time.Now,
		id:       nextID(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.current = m.now()
	return m
}

// ID identifies this clock's ticks.
func (m Model) ID() int { return m.id }

// Time returns the last time read from the wall clock.
func (m Model) Time() time.Time { return m.current }

// Running reports whether the clock schedules ticks.
func (m Model) Running() bool { return m.running }

// Init does nothing; the clock ticks once Start is called.
func (m Model) Init() tea.Cmd {
	return nil
}

// Start begins ticking. The returned model must replace the old one.
func (m Model) Start() (Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	m.running = true
	m.tag++
	return m, m.tick()
}

// Stop cancels the pending tick; any tick already in flight is dropped.
func (m Model) Stop() Model {
	m.running = false
	m.tag++
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if tick.ID != m.id || tick.tag != m.tag || !m.running {
		return m, nil
	}

	m.current = m.now()
	return m, m.tick()
}

func (m Model) View() string {
	return m.current.Format(Layout)
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
