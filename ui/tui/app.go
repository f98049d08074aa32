package tui

import (
	"context"
	"log"
	"sync"
	"time"

	"weatherdeck/internal/clock"
	"weatherdeck/internal/config"
	"weatherdeck/internal/header"
	"weatherdeck/internal/refresh"
	"weatherdeck/internal/weather"
	"weatherdeck/ui/tui/components"
	"weatherdeck/ui/tui/state"
	"weatherdeck/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// panelCount is the number of placeholder plot panels below the header.
const panelCount = 2

var zoneOnce sync.Once

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	config    config.Config
	state     state.ScreenState
	scroller  *header.Scroller
	clock     clock.Model
	refresher *refresh.Refresher
	spinner   spinner.Model
	panels    []components.Component

	source     weather.Source
	ctx        context.Context
	cancel     context.CancelFunc
	gestureSeq int
	animating  bool // a frame tick is scheduled
	quitting   bool
	width      int
	height     int
}

// Messages
type AnimateMsg time.Time
type GestureEndMsg struct {
	Seq int
}
type ReadingLoadedMsg struct {
	Reading weather.Reading
	Err     error
}

func InitialModel(cfg config.Config, source weather.Source) MainModel {
	zoneOnce.Do(zone.NewGlobal)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	panels := make([]components.Component, panelCount)
	for i := range panels {
		panels[i] = components.NewPlotPanel(40, views.Rows(components.PanelUnits))
	}

	ctx, cancel := context.WithCancel(context.Background())

	sourceName := ""
	if source != nil {
		sourceName = source.Name()
	}

	return MainModel{
		config:    cfg,
		scroller:  header.NewScroller(header.MaxScroll, cfg.SpringFrequency, cfg.SpringDamping),
		clock:     clock.New(clock.WithInterval(cfg.ClockInterval)),
		refresher: refresh.New(source, cfg.RefreshDelay),
		spinner:   s,
		panels:    panels,
		source:    source,
		ctx:       ctx,
		cancel:    cancel,
		state: state.ScreenState{
			Reading: cfg.Reading(),
			Source:  sourceName,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	var clockCmd tea.Cmd
	m.clock, clockCmd = m.clock.Start()
	return tea.Batch(
		m.spinner.Tick,
		clockCmd,
		loadReadingCmd(m.ctx, m.source),
	)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Second/header.AnimationFPS, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func loadReadingCmd(ctx context.Context, source weather.Source) tea.Cmd {
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		r, err := source.Current(ctx)
		return ReadingLoadedMsg{Reading: r, Err: err}
	}
}

func settleCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return GestureEndMsg{Seq: seq}
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case GestureEndMsg:
		return m.handleGestureEndMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case clock.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		return m, cmd

	case refresh.DoneMsg:
		return m.handleRefreshDoneMsg(msg)

	case ReadingLoadedMsg:
		m.applyReading(msg.Reading, msg.Err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.config.ScrollStep
	page := float64(views.BodyRows(m.height)) * views.UnitsPerRow

	switch msg.String() {
	case "q", "ctrl+c":
		m.teardown()
		return m, tea.Quit
	case "r":
		return m, m.beginRefresh()
	case "up", "k":
		return m, m.scroll(-step)
	case "down", "j":
		return m, m.scroll(step)
	case "pgup":
		return m, m.scroll(-page)
	case "pgdown", " ":
		return m, m.scroll(page)
	case "home", "g":
		return m, m.scroll(-m.scroller.Offset())
	case "end", "G":
		return m, m.scroll(m.scroller.ContentMax() - m.scroller.Offset())
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, m.scroll(-m.config.ScrollStep)
		case tea.MouseButtonWheelDown:
			return m, m.scroll(m.config.ScrollStep)
		}
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if z := zone.Get(views.ZoneHeader); z != nil && z.InBounds(msg) {
			m.scroller.Toggle()
			return m, m.startAnimation()
		}
	}
	return m, nil
}

// scroll applies one scroll input and restarts the settle timer. Scrolling
// up while already at the top is a pull and starts a refresh.
func (m *MainModel) scroll(delta float64) tea.Cmd {
	if delta == 0 {
		return nil
	}
	m.gestureSeq++
	cmds := []tea.Cmd{settleCmd(m.config.SettleDelay, m.gestureSeq)}
	if pulled := m.scroller.ScrollBy(delta); pulled {
		cmds = append(cmds, m.beginRefresh())
	}
	return tea.Batch(cmds...)
}

func (m *MainModel) handleGestureEndMsg(msg GestureEndMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.gestureSeq || m.scroller.Animating() {
		return m, nil
	}
	if m.scroller.EndGesture() {
		log.Printf("snap: %.1f -> %.0f", m.scroller.Offset(), m.scroller.Target())
		return m, m.startAnimation()
	}
	return m, nil
}

// startAnimation schedules the next frame unless one is already pending.
func (m *MainModel) startAnimation() tea.Cmd {
	if m.animating || !m.scroller.Animating() {
		return nil
	}
	m.animating = true
	return animateCmd()
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.animating = false
	if m.scroller.Step() {
		return m, m.startAnimation()
	}
	return m, nil
}

func (m *MainModel) beginRefresh() tea.Cmd {
	cmd := m.refresher.Begin(m.ctx)
	if cmd != nil {
		log.Printf("refresh: started (source %s)", m.state.Source)
	}
	return cmd
}

func (m *MainModel) handleRefreshDoneMsg(msg refresh.DoneMsg) (tea.Model, tea.Cmd) {
	if !m.refresher.Complete(msg) {
		return m, nil
	}
	m.applyReading(msg.Reading, msg.Err)
	return m, nil
}

func (m *MainModel) applyReading(r weather.Reading, err error) {
	if m.quitting {
		return
	}
	if err != nil {
		log.Printf("refresh: %v", err)
		m.state.Err = err
		return
	}

	m.state.Err = nil
	m.state.Reading = r
	m.state.LastRefresh = time.Now()
	log.Printf("refresh: %s %s", r.Location, r.FormatTemp())
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	for _, p := range m.panels {
		p.Resize(msg.Width, views.Rows(components.PanelUnits))
	}
	m.scroller.SetContentMax(views.ScrollExtent(msg.Height, len(m.panels)))
	return m, nil
}

// teardown releases the clock timer and detaches any refresh in flight.
func (m *MainModel) teardown() {
	m.quitting = true
	m.clock = m.clock.Stop()
	m.refresher.Close()
	m.cancel()
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}

	panels := make([]string, len(m.panels))
	for i, p := range m.panels {
		panels[i] = p.View()
	}

	return views.RenderScreen(
		m.state,
		m.width,
		m.height,
		m.scroller.Offset(),
		m.clock.View(),
		m.spinner.View(),
		m.refresher.Refreshing(),
		panels,
	)
}

func Start(cfg config.Config, source weather.Source) error {
	m := InitialModel(cfg, source)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	m.teardown()
	return err
}
