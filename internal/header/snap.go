package header

import "math"

// Phase is the resting state of the header along the scroll axis.
type Phase int

const (
	Expanded Phase = iota
	Collapsing
	Collapsed
)

func (p Phase) String() string {
	switch p {
	case Expanded:
		return "expanded"
	case Collapsing:
		return "collapsing"
	case Collapsed:
		return "collapsed"
	}
	return "unknown"
}

// PhaseOf classifies a scroll offset.
func PhaseOf(offset float64) Phase {
	switch {
	case offset <= MinScroll:
		return Expanded
	case offset >= MaxScroll:
		return Collapsed
	default:
		return Collapsing
	}
}

// Closer returns whichever of a and b is nearer to v. Ties go to b.
func Closer(v, a, b float64) float64 {
	if math.Abs(v-a) < math.Abs(v-b) {
		return a
	}
	return b
}

// Snap picks the anchor a gesture ending at offset should settle on.
// ok is false when the header is already at rest and nothing should move.
func Snap(offset float64) (target float64, ok bool) {
	if offset > MinScroll && offset < MaxScroll {
		return Closer(offset, MinScroll, MaxScroll), true
	}
	return offset, false
}
