// Package header maps the scroll offset of the screen to the transforms of
// its collapsing header and decides where a scroll gesture should come to rest.
package header

// Layout constants, in layout units.
const (
	MaxHeaderHeight = 150.0
	MinHeaderHeight = 60.0
	MaxScroll       = MaxHeaderHeight - MinHeaderHeight
	MinScroll       = 0.0

	TranslateTextXMax = 80.0

	PaddingUnfolded = 5.0
	PaddingFolded   = 0.0
)

// Interpolation is a clamped linear map between two control points.
type Interpolation struct {
	In  [2]float64
	Out [2]float64
}

// At returns the interpolated value for v. Inputs outside the domain map to
// the nearest range boundary.
func (i Interpolation) At(v float64) float64 {
	lo, hi := i.In[0], i.In[1]
	if lo == hi {
		return i.Out[0]
	}

	t := (v - lo) / (hi - lo)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return i.Out[0] + t*(i.Out[1]-i.Out[0])
}

var (
	textY = Interpolation{
		In:  [2]float64{MinScroll, MaxScroll},
		Out: [2]float64{MaxHeaderHeight - MinHeaderHeight, 0},
	}
	textX = Interpolation{
		In:  [2]float64{MinScroll, MaxScroll},
		Out: [2]float64{PaddingUnfolded, TranslateTextXMax},
	}
	leadX = Interpolation{
		In:  [2]float64{MinScroll, MaxScroll},
		Out: [2]float64{PaddingUnfolded, PaddingFolded},
	}
	leadY = Interpolation{
		In:  [2]float64{MinScroll, MaxScroll},
		Out: [2]float64{PaddingUnfolded, PaddingFolded},
	}
	locationY = Interpolation{
		In:  [2]float64{MinScroll, MaxScroll},
		Out: [2]float64{0, -30},
	}
	// The label is gone by the time the header is half collapsed.
	locationOpacity = Interpolation{
		In:  [2]float64{MinScroll, MaxScroll / 2},
		Out: [2]float64{1, 0},
	}
)
