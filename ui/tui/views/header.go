package views

import (
	"strings"

	"weatherdeck/internal/header"
	"weatherdeck/ui/tui/state"
	"weatherdeck/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// locationBaseRow is where the location label sits when fully expanded.
const locationBaseRow = 1

// invisible is the opacity below which the label is not drawn at all.
const invisible = 0.05

type HeaderView struct{}

func (v HeaderView) Render(s state.ScreenState, props ViewProps) string {
	return strings.Join(v.Lines(s, props), "\n")
}

// Lines renders the header as one string per terminal row.
func (v HeaderView) Lines(s state.ScreenState, props ViewProps) []string {
	p := props.Presentation
	rows := HeaderRows(p)

	layers := []Layer{
		{
			Row:  Rows(p.LeadY),
			Col:  Cols(p.LeadX),
			Text: styles.TemperatureStyle.Render(s.Reading.FormatTemp()),
		},
	}

	if p.LocationOpacity >= invisible {
		layers = append(layers, Layer{
			Row:  locationBaseRow + Rows(p.LocationY),
			Col:  Cols(header.PaddingUnfolded),
			Text: FadeStyle(p.LocationOpacity).Render(s.Reading.Location),
		})
	}

	textRow, textCol := Rows(p.TextY), Cols(p.TextX)
	layers = append(layers,
		Layer{Row: textRow, Col: textCol, Text: styles.TextStyle.Render(s.Reading.FormatRange())},
		Layer{Row: textRow + 1, Col: textCol, Text: styles.TextStyle.Render(props.ClockView)},
	)

	return Compose(props.Width, rows, styles.HeaderLineStyle, layers)
}

// HeaderRows is the number of terminal rows the header covers.
func HeaderRows(p header.Presentation) int {
	return Rows(p.HeaderHeight)
}

// FadeStyle blends the foreground toward the header background.
func FadeStyle(opacity float64) lipgloss.Style {
	if opacity > 1 {
		opacity = 1
	}
	if opacity < 0 {
		opacity = 0
	}
	bg, _ := colorful.Hex(styles.BackgroundHex)
	fg, _ := colorful.Hex(styles.ForegroundHex)
	return styles.TextStyle.Foreground(lipgloss.Color(bg.BlendRgb(fg, opacity).Hex()))
}
