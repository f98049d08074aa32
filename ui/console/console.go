package console

import (
	"fmt"
	"io"
	"strings"

	"weatherdeck/internal/header"
	"weatherdeck/internal/weather"
)

const (
	colorReset  = "\033[0m"
	colorDim    = "\033[2m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Snapshot is the screen state at one scroll offset.
type Snapshot struct {
	Reading weather.Reading
	Offset  float64
	Clock   string
	Err     error
}

// Print renders the snapshot to the writer in a compact, non-interactive form.
func Print(w io.Writer, s Snapshot) {
	p := header.DeriveAll(s.Offset)

	fmt.Fprintf(w, "%s■ %s%s  %s\n", colorCyan, s.Reading.Location, colorReset, s.Clock)
	fmt.Fprintf(w, "  %s  %s\n", s.Reading.FormatTemp(), s.Reading.FormatRange())
	if s.Err != nil {
		fmt.Fprintf(w, "  %s!%s %v\n", colorYellow, colorReset, s.Err)
	}

	fmt.Fprintf(w, "%s─ Header%s: %s at %.1f\n", colorCyan, colorReset, header.PhaseOf(s.Offset), s.Offset)
	items := []struct {
		label string
		value float64
	}{
		{"Text Y", p.TextY},
		{"Text X", p.TextX},
		{"Lead X", p.LeadX},
		{"Lead Y", p.LeadY},
		{"Location Y", p.LocationY},
		{"Location opacity", p.LocationOpacity},
		{"Header height", p.HeaderHeight},
	}
	for _, it := range items {
		// Dots leader
		dots := strings.Repeat("·", 20-len(it.label))
		fmt.Fprintf(w, "  %s%s%s%s %8.2f\n", it.label, colorDim, dots, colorReset, it.value)
	}

	if target, ok := header.Snap(s.Offset); ok {
		fmt.Fprintf(w, "%s─ Snap%s: %.1f -> %.0f\n\n", colorCyan, colorReset, s.Offset, target)
	} else {
		fmt.Fprintf(w, "%s─ Snap%s: at rest\n\n", colorCyan, colorReset)
	}
}
