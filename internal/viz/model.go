package viz

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/sim"
)

const (
	gridTop         = 2 // header and status lines sit above the board
	historyCapacity = 120
	sparkWidth      = 30
)

type startMsg struct{}

// Options configure the interactive board.
type Options struct {
	Title     string
	Theme     string
	Seed      int64
	Density   float64
	AutoStart bool
	Logger    *log.Logger
}

// Model is the Bubble Tea model for the interactive board. It owns no
// simulation state of its own: the App holds the field and the loop, and
// board records what the App reports.
type Model struct {
	app      *sim.App
	sched    *Scheduler
	board    *board
	opts     Options
	logger   *log.Logger
	theme    int
	styles   styles
	seed     int64
	showHelp bool
}

// NewModel wires a board observer into app. sched must be the scheduler the
// App was built with.
func NewModel(app *sim.App, sched *Scheduler, opts Options) Model {
	if opts.Density <= 0 || opts.Density > 1 {
		opts.Density = config.DefaultDensity
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := newBoard()
	b.OnGenerationAdvanced(app.Field(), app.Generation())
	app.AddObserver(b)

	theme := themeIndex(opts.Theme)
	return Model{
		app:    app,
		sched:  sched,
		board:  b,
		opts:   opts,
		logger: logger,
		theme:  theme,
		styles: newStyles(Themes[theme]),
		seed:   opts.Seed,
	}
}

func (m Model) Init() tea.Cmd {
	if m.opts.AutoStart {
		return func() tea.Msg { return startMsg{} }
	}
	return nil
}

// Update handles input and runs scheduled ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fireMsg:
		m.sched.fire(msg.handle)
	case startMsg:
		m.app.Start()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.app.Stop()
			return m, tea.Quit
		case " ":
			if m.app.Running() {
				m.app.Stop()
			} else {
				m.app.Start()
			}
		case "n":
			m.app.Step()
		case "c":
			m.app.Clear()
		case "r":
			m.reseed()
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = newStyles(Themes[m.theme])
			m.logger.Debug("theme changed", "theme", Themes[m.theme].Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.cellAt(msg.X, msg.Y); ok {
				m.app.ToggleState(x, y)
			}
		}
	}
	return m, nil
}

func (m *Model) reseed() {
	m.seed++
	seed, density := m.seed, m.opts.Density
	m.app.Reseed(func(f *life.Field) { pattern.Random(f, seed, density) })
	m.logger.Debug("field reseeded", "seed", seed, "density", density)
}

// cellAt maps a terminal position to a cell. Every cell is two columns wide.
func (m Model) cellAt(col, row int) (int, int, bool) {
	if col < 0 || row < gridTop {
		return 0, 0, false
	}
	x, y := col/2, row-gridTop
	return x, y, m.app.Field().Contains(x, y)
}

func (m Model) View() string {
	f := m.app.Field()

	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.opts.Title)) + "\n")

	status := m.styles.paused.Render("PAUSED")
	if m.app.Running() {
		status = m.styles.running.Render("RUNNING")
	}
	s.WriteString(fmt.Sprintf("%s  %dx%d @ %d tps\n", status, f.Width(), f.Height(), m.app.TicksPerSecond()))

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderGrid(f), m.styles.panel.Render(m.renderPanel(f))))
	return s.String()
}

func (m Model) renderGrid(f *life.Field) string {
	var s strings.Builder
	f.ForEachCell(func(c *life.Cell, x, y int) {
		switch {
		case m.board.edited && x == m.board.lastX && y == m.board.lastY:
			glyph := cursorGlyph
			if c.Alive {
				glyph = aliveGlyph
			}
			s.WriteString(m.styles.cursor.Render(glyph))
		case c.Alive:
			s.WriteString(m.styles.alive.Render(aliveGlyph))
		default:
			s.WriteString(m.styles.dead.Render(deadGlyph))
		}
		if x == f.Width()-1 && y < f.Height()-1 {
			s.WriteByte('\n')
		}
	})
	return s.String()
}

func (m Model) renderPanel(f *life.Field) string {
	st := m.styles
	row := func(label, value string) string {
		return st.label.Render(label) + st.value.Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(row("Generation", fmt.Sprintf("%d", m.app.Generation())))
	s.WriteString(row("Population", fmt.Sprintf("%d", f.Population())))
	s.WriteString(row("Peak", fmt.Sprintf("%d", m.board.peak)))
	s.WriteString(row("Activity", fmt.Sprintf("%.3f", m.board.activity.Value())))
	s.WriteString(row("Theme", Themes[m.theme].Name))

	if len(m.board.population) > 1 {
		chart := asciigraph.Plot(m.board.population, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("population"))
		s.WriteString(st.graph.Render(chart) + "\n")
		s.WriteString(st.label.Render("Trend") + st.value.Render(Sparkline(m.board.population, sparkWidth)) + "\n")
	}

	if m.showHelp {
		s.WriteString(st.help.Render("\nspace  start/stop\nn      step one generation\nc      clear\nr      random soup\nt      next theme\nclick  toggle cell\n?      hide help\nq      quit"))
	} else {
		s.WriteString(st.help.Render("\nSP:Run N:Step C:Clear R:Random\nT:Theme ?:Help Q:Quit"))
	}
	return s.String()
}

// Run opens the interactive board on the alternate screen and blocks until
// the user quits.
func Run(field *life.Field, opts Options, appOpts ...sim.Option) error {
	sched := NewScheduler()
	defer sched.Close()

	app := sim.NewApp(field, sched, appOpts...)
	p := tea.NewProgram(NewModel(app, sched, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	sched.Attach(p.Send)

	_, err := p.Run()
	return err
}
