package views

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layout units per terminal cell.
const (
	UnitsPerRow = 30.0
	UnitsPerCol = 5.0
)

// Rows converts a vertical distance in layout units to terminal rows.
func Rows(units float64) int {
	return int(math.Round(units / UnitsPerRow))
}

// Cols converts a horizontal distance in layout units to terminal columns.
func Cols(units float64) int {
	return int(math.Round(units / UnitsPerCol))
}

// Layer is a single styled string placed at a cell position.
type Layer struct {
	Row, Col int
	Text     string
}

// Compose paints layers onto a block of rows×width cells. Layers on the
// same row are laid out left to right; a layer that would start inside its
// left neighbour is pushed one cell past it. Lines are padded with pad and
// cut at width.
func Compose(width, rows int, pad lipgloss.Style, layers []Layer) []string {
	if rows <= 0 {
		return nil
	}

	byRow := make([][]Layer, rows)
	for _, l := range layers {
		if l.Row < 0 || l.Row >= rows || l.Text == "" {
			continue
		}
		byRow[l.Row] = append(byRow[l.Row], l)
	}

	lines := make([]string, rows)
	for r, row := range byRow {
		sort.SliceStable(row, func(i, j int) bool { return row[i].Col < row[j].Col })

		var b strings.Builder
		cursor := 0
		for _, l := range row {
			col := l.Col
			if col < 0 {
				col = 0
			}
			if col < cursor {
				col = cursor + 1
			}
			if col > cursor {
				b.WriteString(pad.Render(strings.Repeat(" ", col-cursor)))
			}
			b.WriteString(l.Text)
			cursor = col + lipgloss.Width(l.Text)
		}

		line := ansi.Truncate(b.String(), width, "")
		if w := lipgloss.Width(line); w < width {
			line += pad.Render(strings.Repeat(" ", width-w))
		}
		lines[r] = line
	}
	return lines
}
