package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	mandel "github.com/marben/pixel_mandel"
	"github.com/marben/pixel_mandel/render"
)

// slider is an integer setting with the range and step of the workshop's controls.
type slider struct {
	min, max, step int
}

func (s slider) move(v, dir int) int {
	return max(s.min, min(s.max, v+dir*s.step))
}

var (
	sizeSlider = slider{min: 50, max: 400, step: 50}
	iterSlider = slider{min: 10, max: 100, step: 5}
	zoomSlider = slider{min: 1, max: 10, step: 1}
)

// rows of the terminal kept free for the HUD and the histogram
const hudLines = 14

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB000"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// frameMsg delivers a finished render. seq identifies the request so that stale frames can be dropped.
type frameMsg struct {
	seq     int
	frame   mandel.Frame
	err     error
	elapsed time.Duration
}

type model struct {
	provider mandel.FrameProvider

	cfg   mandel.ViewportConfig
	frame mandel.Frame
	err   error

	seq       int // sequence number of the newest render request
	rendering bool
	elapsed   time.Duration

	termW, termH int
}

// newModel renders through p, which is either a local evaluator or a render server.
func newModel(cfg mandel.ViewportConfig, p mandel.FrameProvider) model {
	return model{provider: p, cfg: cfg, termW: 80, termH: 40}
}

func (m model) Init() tea.Cmd {
	return renderCmd(m.provider, m.seq, m.cfg)
}

func renderCmd(p mandel.FrameProvider, seq int, cfg mandel.ViewportConfig) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		f, err := p.GetFrame(context.Background(), cfg)
		if err == nil {
			err = f.Answers(cfg)
		}
		log.Printf("rendered %s in %s", cfg, time.Since(start))
		return frameMsg{seq: seq, frame: f, err: err, elapsed: time.Since(start)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		return m, nil

	case frameMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.rendering = false
		m.err = msg.err
		m.elapsed = msg.elapsed
		if msg.err == nil {
			m.frame = msg.frame
		}
		return m, nil

	case tea.KeyMsg:
		cfg := m.cfg
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right":
			cfg.Width = sizeSlider.move(cfg.Width, 1)
		case "left":
			cfg.Width = sizeSlider.move(cfg.Width, -1)
		case "up":
			cfg.Height = sizeSlider.move(cfg.Height, 1)
		case "down":
			cfg.Height = sizeSlider.move(cfg.Height, -1)
		case "]":
			cfg.MaxIterations = iterSlider.move(cfg.MaxIterations, 1)
		case "[":
			cfg.MaxIterations = iterSlider.move(cfg.MaxIterations, -1)
		case "+", "=":
			cfg.Zoom = zoomSlider.move(cfg.Zoom, 1)
		case "-":
			cfg.Zoom = zoomSlider.move(cfg.Zoom, -1)
		}
		if cfg == m.cfg {
			return m, nil
		}
		m.cfg = cfg
		m.seq++
		m.rendering = true
		return m, renderCmd(m.provider, m.seq, cfg)
	}

	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Fractal pixel painting (simple Mandelbrot)") + "\n\n")

	if m.frame.Grid != nil {
		s.WriteString(picture(m.frame, m.termW, m.termH-hudLines))
		s.WriteString("\n")
	}

	s.WriteString(labelStyle.Render("Size") + valueStyle.Render(fmt.Sprintf("%dx%d", m.cfg.Width, m.cfg.Height)) + "\n")
	s.WriteString(labelStyle.Render("Iterations") + valueStyle.Render(fmt.Sprint(m.cfg.MaxIterations)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprint(m.cfg.Zoom)) + "\n")
	if m.frame.Grid != nil {
		s.WriteString(labelStyle.Render("Window") + valueStyle.Render(m.frame.Window.String()) + "\n")
	}

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	case m.rendering:
		s.WriteString(helpStyle.Render("rendering...") + "\n")
	default:
		s.WriteString(helpStyle.Render(fmt.Sprintf("rendered in %s", m.elapsed.Round(time.Millisecond))) + "\n")
	}

	if m.frame.Grid != nil {
		hist := render.Histogram(m.frame.Grid, m.frame.Config.MaxIterations)
		chart := asciigraph.Plot(hist,
			asciigraph.Height(4),
			asciigraph.Width(min(60, max(10, m.termW-12))),
			asciigraph.Caption("cells per iteration count"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("←/→ width  ↓/↑ height  [/] iterations  -/+ zoom  q quit"))
	return s.String()
}

// picture draws the frame in at most cols×lines terminal cells.
// Every cell shows two pixels: the foreground of an upper half block and its background.
func picture(f mandel.Frame, cols, lines int) string {
	w, h := f.Grid.Width(), f.Grid.Height()
	cols = max(1, min(cols, w))
	lines = max(1, min(lines, h/2))

	var s strings.Builder
	for line := range lines {
		// the top of the picture is the highest imaginary row
		top := h - 1 - (2*line*h)/(2*lines)
		bottom := h - 1 - ((2*line+1)*h)/(2*lines)
		for col := range cols {
			x := col * w / cols
			fg := render.Color(f.Grid[top][x], f.Config.MaxIterations)
			bg := render.Color(f.Grid[bottom][x], f.Config.MaxIterations)
			s.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(fg))).
				Background(lipgloss.Color(hex(bg))).
				Render("▀"))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
