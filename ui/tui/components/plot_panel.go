package components

import (
	"weatherdeck/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// PanelUnits is the height of one panel in layout units.
	PanelUnits = 300.0
	// PanelMarginUnits is the gap above and below each panel.
	PanelMarginUnits = 30.0

	PlaceholderCaption = "Here will sit temperature plots"

	// Axis extents of the empty frame: hours of the day and degrees.
	frameMinX, frameMaxX = 0, 24
	frameMinY, frameMaxY = -10, 30
)

// PlotPanel is a placeholder for a future temperature plot: a caption over
// an empty chart frame.
type PlotPanel struct {
	Chart  linechart.Model
	Width  int
	Height int
}

// NewPlotPanel creates a panel occupying width×height cells, borders included.
func NewPlotPanel(width, height int) *PlotPanel {
	cw, ch := chartSize(width, height)
	lc := linechart.New(cw, ch, frameMinX, frameMaxX, frameMinY, frameMaxY)
	return &PlotPanel{
		Chart:  lc,
		Width:  width,
		Height: height,
	}
}

func (c *PlotPanel) Init() tea.Cmd {
	return nil
}

func (c *PlotPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *PlotPanel) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(chartSize(w, h))
}

func (c *PlotPanel) View() string {
	c.Chart.Clear()
	c.Chart.DrawXYAxisAndLabel()

	inner := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(styles.Foreground).Background(styles.PanelFill).Render(PlaceholderCaption),
		c.Chart.View(),
	)

	return styles.PanelStyle.
		Width(max(c.Width-2, 1)).
		Height(max(c.Height-2, 1)).
		MaxHeight(max(c.Height, 1)).
		Render(inner)
}

// chartSize leaves room for the border, padding and caption.
func chartSize(width, height int) (int, int) {
	return max(width-4, 1), max(height-3, 1)
}

var _ Component = (*PlotPanel)(nil)
