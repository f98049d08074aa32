package header

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultFrequency = 12.0
	DefaultDamping   = 1.0

	// AnimationFPS is the frame rate Step assumes.
	AnimationFPS = 60

	settleEpsilon = 0.05
)

// Scroller owns the scroll offset of the screen and the snap animation that
// brings it back to an anchor once a gesture ends.
type Scroller struct {
	offset     float64
	velocity   float64
	target     float64
	animating  bool
	contentMax float64
	spring     harmonica.Spring
}

// NewScroller creates a scroller that can travel from 0 to contentMax.
func NewScroller(contentMax, frequency, damping float64) *Scroller {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	if damping <= 0 {
		damping = DefaultDamping
	}
	s := &Scroller{
		spring: harmonica.NewSpring(harmonica.FPS(AnimationFPS), frequency, damping),
	}
	s.SetContentMax(contentMax)
	return s
}

// Offset returns the current scroll offset.
func (s *Scroller) Offset() float64 { return s.offset }

// Target returns the anchor of the running animation.
func (s *Scroller) Target() float64 { return s.target }

// Animating reports whether a snap animation is in flight.
func (s *Scroller) Animating() bool { return s.animating }

// ContentMax returns the largest reachable offset.
func (s *Scroller) ContentMax() float64 { return s.contentMax }

// SetContentMax changes the scrollable extent. It never drops below
// MaxScroll so the header can always fully collapse.
func (s *Scroller) SetContentMax(max float64) {
	if max < MaxScroll {
		max = MaxScroll
	}
	s.contentMax = max
	s.offset = clamp(s.offset, MinScroll, s.contentMax)
}

// ScrollBy moves the offset by delta and cancels any running snap.
// pulled is true when the user keeps scrolling up while already at the top.
func (s *Scroller) ScrollBy(delta float64) (pulled bool) {
	s.stop()
	if delta < 0 && s.offset <= MinScroll {
		return true
	}
	s.offset = clamp(s.offset+delta, MinScroll, s.contentMax)
	return false
}

// ScrollTo jumps to an offset without animating.
func (s *Scroller) ScrollTo(offset float64) {
	s.stop()
	s.offset = clamp(offset, MinScroll, s.contentMax)
}

// EndGesture applies the snap rule. It returns true when an animation
// toward an anchor was started.
func (s *Scroller) EndGesture() bool {
	target, ok := Snap(s.offset)
	if !ok {
		return false
	}
	s.target = target
	s.velocity = 0
	s.animating = true
	return true
}

// Toggle animates to the anchor opposite the current phase: a collapsed or
// scrolled-past header expands, anything else collapses.
func (s *Scroller) Toggle() {
	target := MaxScroll
	if s.offset >= MaxScroll {
		target = MinScroll
	}
	s.target = target
	s.velocity = 0
	s.animating = s.offset != target
}

// Step advances the snap animation by one frame and reports whether it is
// still running.
func (s *Scroller) Step() bool {
	if !s.animating {
		return false
	}

	s.offset, s.velocity = s.spring.Update(s.offset, s.velocity, s.target)
	s.offset = clamp(s.offset, MinScroll, s.contentMax)

	if math.Abs(s.offset-s.target) < settleEpsilon && math.Abs(s.velocity) < settleEpsilon {
		s.offset = s.target
		s.stop()
	}
	return s.animating
}

func (s *Scroller) stop() {
	s.animating = false
	s.velocity = 0
}
