package header

// Presentation is the set of header transforms for one scroll offset.
type Presentation struct {
	TextY           float64 // range and clock block, vertical
	TextX           float64 // range and clock block, horizontal
	LeadX           float64 // current temperature, horizontal
	LeadY           float64 // current temperature, vertical
	LocationY       float64
	LocationOpacity float64
	HeaderHeight    float64
}

// DeriveAll computes every header transform from the scroll offset.
func DeriveAll(scroll float64) Presentation {
	return Presentation{
		TextY:           textY.At(scroll),
		TextX:           textX.At(scroll),
		LeadX:           leadX.At(scroll),
		LeadY:           leadY.At(scroll),
		LocationY:       locationY.At(scroll),
		LocationOpacity: locationOpacity.At(scroll),
		HeaderHeight:    MaxHeaderHeight - clamp(scroll, MinScroll, MaxScroll),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
