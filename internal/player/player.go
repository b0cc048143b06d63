// Package player is the terminal playback adapter: a bubbletea program
// that drives the animation controller from a timer and draws frames
// through lipgloss, one styled write per draw batch.
package player

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cascii/internal/anim"
	"github.com/san-kum/cascii/internal/cframe"
	"github.com/san-kum/cascii/internal/loader"
	"github.com/san-kum/cascii/internal/project"
	"github.com/san-kum/cascii/internal/render"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// terminalConfig positions batches in character cells: one column per
// x unit, one row per y unit.
var terminalConfig = render.Config{FontSize: 1, CharWidthRatio: 1, LineHeightRatio: 1}

// Model is the bubbletea model for animation playback.
type Model struct {
	session *loader.Session
	ctrl    *anim.Controller
	colors  project.Colors

	styles map[cframe.Color]lipgloss.Style
	width  int
	height int
}

// New creates a player over a loaded session.
func New(session *loader.Session, fps int, mode anim.LoopMode, colors project.Colors) Model {
	ctrl := anim.New(fps)
	ctrl.SetFrameCount(session.FrameCount())
	ctrl.SetLoopMode(mode)
	ctrl.Play()
	return Model{
		session: session,
		ctrl:    ctrl,
		colors:  colors,
		styles:  make(map[cframe.Color]lipgloss.Style),
		width:   80,
		height:  24,
	}
}

type tickMsg time.Time

func (m Model) tick() tea.Cmd {
	interval := time.Duration(m.ctrl.IntervalMS()) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.ctrl.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case " ", "p":
		m.ctrl.Toggle()
	case "left", "h":
		m.ctrl.StepBackward()
	case "right", "l":
		m.ctrl.StepForward()
	case "s":
		m.ctrl.Stop()
	case "r":
		if m.ctrl.Direction() == anim.Forward {
			m.ctrl.SetDirection(anim.Backward)
		} else {
			m.ctrl.SetDirection(anim.Forward)
		}
	case "m":
		switch m.ctrl.LoopMode() {
		case anim.Once:
			m.ctrl.SetLoopMode(anim.Loop)
		case anim.Loop:
			m.ctrl.SetLoopMode(anim.PingPong)
		case anim.PingPong:
			m.ctrl.SetLoopMode(anim.Once)
		}
	case "+", "=":
		m.ctrl.SetFPS(m.ctrl.FPS() + 2)
	case "-", "_":
		m.ctrl.SetFPS(m.ctrl.FPS() - 2)
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			_ = m.ctrl.Seek(float64(key[0]-'0') / 10.0)
		}
	}
	return m, nil
}

func (m Model) View() string {
	frame, ok := m.session.Frame(m.ctrl.CurrentFrame())
	if !ok {
		return errorStyle.Render("no frames loaded") + "\n"
	}

	var sb strings.Builder
	if frame.HasColor() {
		m.renderGrid(&sb, frame.Grid)
	} else {
		m.renderText(&sb, frame)
	}
	sb.WriteString(m.statusLine())
	return sb.String()
}

// renderGrid writes the frame's draw batches, one styled write per
// maximal color run.
func (m Model) renderGrid(sb *strings.Builder, grid *cframe.Grid) {
	res := render.Render(grid, terminalConfig)
	row := 0.0
	for _, b := range res.Batches {
		for b.Y > row {
			sb.WriteByte('\n')
			row++
		}
		sb.WriteString(m.style(b.Color).Render(b.Text))
	}
	sb.WriteByte('\n')
}

func (m Model) renderText(sb *strings.Builder, frame *cframe.Frame) {
	fg := m.style(m.colors.Foreground)
	for _, line := range frame.Lines() {
		sb.WriteString(fg.Render(line))
		sb.WriteByte('\n')
	}
}

// style returns a cached truecolor style for the given frame color.
func (m Model) style(c cframe.Color) lipgloss.Style {
	if s, ok := m.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
	m.styles[c] = s
	return s
}

func (m Model) statusLine() string {
	loading := ""
	if p := m.session.Progress(); !p.ColorComplete() && m.session.Phase() == loader.LoadingColors {
		loading = statusStyle.Render(fmt.Sprintf("  colors %d%%", p.ColorPercent()))
	}
	return fmt.Sprintf("\n%s %s  %s%s\n%s\n",
		statusStyle.Render(fmt.Sprintf("frame %d/%d", m.ctrl.CurrentFrame()+1, m.ctrl.FrameCount())),
		statusStyle.Render(fmt.Sprintf("%d fps", m.ctrl.FPS())),
		statusStyle.Render(fmt.Sprintf("[%s, %s, %s]", m.ctrl.State(), m.ctrl.LoopMode(), m.ctrl.Direction())),
		loading,
		keyStyle.Render("space play/pause  ←/→ step  m loop mode  r reverse  0-9 seek  +/- speed  q quit"),
	)
}

// Run starts the player program and blocks until it exits.
func Run(session *loader.Session, fps int, mode anim.LoopMode, colors project.Colors) error {
	p := tea.NewProgram(New(session, fps, mode, colors), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RenderLines renders a single grid to styled terminal lines, for
// one-shot display outside the interactive player.
func RenderLines(grid *cframe.Grid) []string {
	res := render.Render(grid, terminalConfig)
	styles := make(map[cframe.Color]lipgloss.Style)
	lines := make([]strings.Builder, grid.Height)
	for _, b := range res.Batches {
		row := int(b.Y)
		s, ok := styles[b.Color]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B)))
			styles[b.Color] = s
		}
		lines[row].WriteString(s.Render(b.Text))
	}
	out := make([]string, len(lines))
	for i := range lines {
		out[i] = lines[i].String()
	}
	return out
}
