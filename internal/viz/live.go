package viz

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/heatsim/internal/colormap"
	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/export"
	"github.com/san-kum/heatsim/internal/metrics"
	"github.com/san-kum/heatsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	sidebarWidth    = 46
	historyCapacity = 600
	maxStepsPerTick = 64
)

type TickMsg time.Time

type Options struct {
	Title         string
	Palette       string
	Theme         string
	FPS           int
	StepsPerFrame int
	// GIFPath is where the g key writes its recording.
	GIFPath string
}

// Model drives a diffusion grid from bubbletea ticks and renders it as a
// half-block heatmap with a stats sidebar.
type Model struct {
	grid         *diffusion.Grid
	driver       *sim.Simulator
	palette      colormap.Palette
	theme        Theme
	styles       styles
	title        string
	fps          int
	stepsPerTick int
	running      bool
	cols, rows   int
	maxCols      int
	maxRows      int
	meanHistory  []float64
	recording    bool
	frames       []*image.Paletted
	gifPath      string
	message      string
	showHelp     bool
}

func NewModel(grid *diffusion.Grid, opts Options) Model {
	pal, err := colormap.Get(opts.Palette)
	if err != nil {
		pal = colormap.Inferno
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.StepsPerFrame <= 0 {
		opts.StepsPerFrame = 1
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "heatsim.gif"
	}
	theme := GetTheme(opts.Theme)

	m := Model{
		grid:         grid,
		driver:       sim.New(grid),
		palette:      pal,
		theme:        theme,
		styles:       newStyles(theme),
		title:        opts.Title,
		fps:          opts.FPS,
		stepsPerTick: opts.StepsPerFrame,
		running:      true,
		maxCols:      width - sidebarWidth,
		maxRows:      height - 2,
		meanHistory:  make([]float64, 0, historyCapacity),
		gifPath:      opts.GIFPath,
	}
	m.fit()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step(1)
			}
		case "r":
			m.reset()
		case "p":
			m.palette = colormap.Next(m.palette.Name)
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "+", "=":
			if m.stepsPerTick < maxStepsPerTick {
				m.stepsPerTick *= 2
			}
		case "-", "_":
			if m.stepsPerTick > 1 {
				m.stepsPerTick /= 2
			}
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.maxCols = msg.Width - sidebarWidth
		m.maxRows = msg.Height - 2
		m.fit()
	case TickMsg:
		if m.running {
			m.step(m.stepsPerTick)
		}
		if m.recording {
			m.frames = append(m.frames, export.PalettedFrame(m.grid.Field(), m.palette, 2))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) fit() {
	m.cols, m.rows = FitCells(m.grid.Width(), m.grid.Height(), m.maxCols, m.maxRows)
}

func (m *Model) step(n int) {
	_ = m.driver.RunWithCallback(context.Background(), n, func(step int, g sim.Stepper) bool {
		if g.Field().IsFinite() {
			return true
		}
		m.running = false
		m.message = fmt.Sprintf("field diverged at step %d, press r to reset", step)
		return false
	})
	m.meanHistory = append(m.meanHistory, m.grid.Field().Stats().Mean)
	if len(m.meanHistory) > historyCapacity {
		m.meanHistory = m.meanHistory[1:]
	}
}

func (m *Model) reset() {
	m.grid.Reset()
	m.meanHistory = m.meanHistory[:0]
	m.message = ""
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.frames = make([]*image.Paletted, 0)
		m.message = ""
		return
	}
	m.recording = false
	if err := export.WriteGIF(m.gifPath, m.frames, 100/m.fps+1); err != nil {
		m.message = err.Error()
	} else {
		m.message = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
	}
	m.frames = nil
}

func (m Model) Running() bool     { return m.running }
func (m Model) StepsPerTick() int { return m.stepsPerTick }
func (m Model) Palette() string   { return m.palette.Name }
func (m Model) Theme() string     { return m.theme.Name }

// View renders the TUI interface.
func (m Model) View() string {
	st := m.styles
	f := m.grid.Field()
	stats := f.Stats()

	var s strings.Builder
	title := m.title
	if title == "" {
		title = "heatsim"
	}
	s.WriteString(st.header.Render(strings.ToUpper(title)) + "\n")

	switch {
	case m.recording:
		s.WriteString(st.record.Render(fmt.Sprintf("● REC %d", len(m.frames))) + "\n\n")
	case m.running:
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.meanHistory) > 1 {
		chart := asciigraph.Plot(m.meanHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Mean temperature"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Step", fmt.Sprintf("%d", m.grid.Steps()))
	row("Alpha", fmt.Sprintf("%.4f", m.grid.Alpha()))
	row("Min", fmt.Sprintf("%.4f", stats.Min))
	row("Max", fmt.Sprintf("%.4f", stats.Max))
	row("Mean", fmt.Sprintf("%.6f", stats.Mean))
	row("Heated", ProgressBar(metrics.HeatedFraction(f.Values(), m.grid.Source().Stats().Max), 16))
	row("Speed", fmt.Sprintf("%d steps/frame", m.stepsPerTick))
	row("Palette", m.palette.Name)
	row("Grid", fmt.Sprintf("%dx%d", m.grid.Width(), m.grid.Height()))
	if !diffusion.Stable(m.grid.Alpha()) {
		s.WriteString(st.paused.Render("alpha > 0.25: unstable") + "\n")
	}
	if m.message != "" {
		s.WriteString("\n" + st.value.Render(m.message) + "\n")
	}

	s.WriteString(st.help.Render("SP:Pause N:Step R:Reset Q:Quit\nP:Palette T:Theme +/-:Speed\nG:Record ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		Heatmap(f, m.palette, m.cols, m.rows)+"  ",
		st.panel.Render(s.String()))

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Single step when paused  ║
║  R        - Reset temperatures       ║
║  P        - Cycle palettes           ║
║  T        - Cycle themes             ║
║  + / -    - Double/halve speed       ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
