// Package refresh implements the pull-to-refresh state of the screen.
package refresh

import (
	"context"
	"time"

	"weatherdeck/internal/weather"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is how long the refresh indicator stays up.
const DefaultDelay = 2 * time.Second

// DoneMsg reports the end of one refresh.
type DoneMsg struct {
	Gen     uint64
	Reading weather.Reading
	Err     error
}

// Refresher tracks whether a refresh is in flight. It is owned by the UI
// loop and needs no locking.
type Refresher struct {
	source weather.Source
	delay  time.Duration

	refreshing bool
	gen        uint64
	closed     bool
}

// New creates a refresher that reloads from source.
func New(source weather.Source, delay time.Duration) *Refresher {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Refresher{source: source, delay: delay}
}

// Refreshing reports whether a refresh is in flight.
func (r *Refresher) Refreshing() bool { return r.refreshing }

// Delay returns how long each refresh lasts.
func (r *Refresher) Delay() time.Duration { return r.delay }

// Begin starts a refresh. The flag flips synchronously; the returned command
// reloads the reading and delivers DoneMsg once the delay has passed.
// It returns nil when a refresh is already running or the refresher is closed.
func (r *Refresher) Begin(ctx context.Context) tea.Cmd {
	if r.refreshing || r.closed {
		return nil
	}
	r.refreshing = true
	r.gen++

	gen, source, delay := r.gen, r.source, r.delay
	return func() tea.Msg {
		deadline := time.Now().Add(delay)
		msg := DoneMsg{Gen: gen}

		if source != nil {
			loadCtx, cancel := context.WithDeadline(ctx, deadline)
			msg.Reading, msg.Err = source.Current(loadCtx)
			cancel()
		}

		if wait := time.Until(deadline); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
			}
		}
		return msg
	}
}

// Complete applies a finished refresh. Completions that arrive after Close
// or belong to an earlier refresh are ignored and false is returned.
func (r *Refresher) Complete(msg DoneMsg) bool {
	if r.closed || msg.Gen != r.gen || !r.refreshing {
		return false
	}
	r.refreshing = false
	return true
}

// Close detaches the refresher from its screen.
func (r *Refresher) Close() {
	r.closed = true
}
