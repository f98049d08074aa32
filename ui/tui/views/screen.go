package views

import (
	"fmt"
	"strings"

	"weatherdeck/internal/header"
	"weatherdeck/ui/tui/components"
	"weatherdeck/ui/tui/state"
	"weatherdeck/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Zone ids for mouse hit testing.
const (
	ZoneHeader  = "header"
	ZoneContent = "content"
)

const (
	statusRows = 1

	panelUnits  = components.PanelUnits
	marginUnits = components.PanelMarginUnits
)

// ScreenView is the whole screen: the header pinned over the scrolled
// content, and a status line.
type ScreenView struct{}

func (v ScreenView) Render(s state.ScreenState, props ViewProps) string {
	if props.Width <= 0 || props.Height <= 0 {
		return ""
	}

	bodyRows := BodyRows(props.Height)
	headerLines := HeaderView{}.Lines(s, props)
	if len(headerLines) > bodyRows {
		headerLines = headerLines[:bodyRows]
	}

	content := ContentLines(props.Width, props.Panels)
	start := Rows(props.Offset)
	window := make([]string, 0, bodyRows)
	blank := styles.HeaderLineStyle.Render(strings.Repeat(" ", props.Width))
	for i := start + len(headerLines); i < start+bodyRows; i++ {
		if i >= 0 && i < len(content) {
			window = append(window, content[i])
		} else {
			window = append(window, blank)
		}
	}

	parts := []string{zone.Mark(ZoneHeader, strings.Join(headerLines, "\n"))}
	if len(window) > 0 {
		parts = append(parts, zone.Mark(ZoneContent, strings.Join(window, "\n")))
	}
	parts = append(parts, StatusLine(s, props))

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// BodyRows is the number of rows left for header and content.
func BodyRows(height int) int {
	return max(height-statusRows, 0)
}

// ContentLines lays out the scrollable content: padding as tall as the
// expanded header, then each panel between margins.
func ContentLines(width int, panels []string) []string {
	blank := styles.HeaderLineStyle.Render(strings.Repeat(" ", width))

	var lines []string
	for i := 0; i < Rows(header.MaxHeaderHeight); i++ {
		lines = append(lines, blank)
	}
	margin := Rows(marginUnits)
	for _, p := range panels {
		for i := 0; i < margin; i++ {
			lines = append(lines, blank)
		}
		lines = append(lines, strings.Split(p, "\n")...)
		for i := 0; i < margin; i++ {
			lines = append(lines, blank)
		}
	}
	return lines
}

// ContentUnits is the height of the scrollable content in layout units.
func ContentUnits(panelCount int) float64 {
	return header.MaxHeaderHeight + float64(panelCount)*(panelUnits+2*marginUnits)
}

// ScrollExtent is the largest offset that still fills the body.
func ScrollExtent(height, panelCount int) float64 {
	visible := float64(BodyRows(height)) * UnitsPerRow
	return max(ContentUnits(panelCount)-visible, header.MaxScroll)
}

// StatusLine shows the refresh state, the header phase and the key help.
func StatusLine(s state.ScreenState, props ViewProps) string {
	var left string
	switch {
	case props.Refreshing:
		left = props.SpinnerView + " Refreshing…"
	case s.Err != nil:
		left = lipgloss.NewStyle().Foreground(styles.ErrorColor).Render("Refresh failed: " + s.Err.Error())
	case !s.LastRefresh.IsZero():
		left = fmt.Sprintf("Updated %s from %s", s.LastRefresh.Format("15:04:05"), s.Source)
	default:
		left = "Pull down or press r to refresh"
	}

	mid := fmt.Sprintf(" • %s %.0f", header.PhaseOf(props.Offset), props.Offset)
	help := " • [↑/↓] Scroll • [R] Refresh • [Q] Quit"

	line := styles.StatusStyle.Render(left + mid + help)
	return lipgloss.NewStyle().MaxWidth(props.Width).Render(line)
}
