package viz

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortvis/internal/config"
	"github.com/san-kum/sortvis/internal/engine"
)

const (
	defaultCols = 80
	defaultRows = 24
	// title, two legend lines and a blank line
	headerLines = 4
	// status line, plus the help line when shown
	footerLines = 2
)

type TickMsg time.Time

// ConfigMsg delivers a reloaded configuration into the update loop.
type ConfigMsg struct {
	Config *config.Config
	Err    error
}

// Model is the terminal front end. It routes keys to the controller, ticks
// it at the configured rate and paints the projected frame.
type Model struct {
	ctrl    *engine.Controller
	cfg     *config.Config
	pending *config.Config

	theme    Theme
	help     help.Model
	showHelp bool
	cols     int
	rows     int
	interval time.Duration

	header     string
	field      string
	fieldDirty bool
	notice     string

	log *slog.Logger
}

func NewModel(ctrl *engine.Controller, cfg *config.Config, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := Model{
		ctrl:     ctrl,
		cfg:      cfg.Clone(),
		theme:    GetTheme(cfg.Theme),
		help:     help.New(),
		cols:     defaultCols,
		rows:     defaultRows,
		interval: cfg.TickInterval(),
		log:      log,
	}
	m.refresh(true)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil
		case key.Matches(msg, keys.Theme):
			m.theme = NextTheme(m.theme.Name)
			m.refresh(true)
			return m, nil
		}
		if in, ok := keys.intentFor(msg); ok {
			if m.ctrl.Apply(in) {
				m.refresh(true)
			}
		}

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh(true)

	case ConfigMsg:
		if msg.Err != nil {
			m.notice = "config: " + msg.Err.Error()
			m.log.Warn("config reload failed", "err", msg.Err)
			return m, nil
		}
		m.pending = msg.Config
		m.applyPending()

	case TickMsg:
		if m.ctrl.Mode() == engine.Running {
			m.ctrl.Tick()
			m.fieldDirty = true
		}
		m.applyPending()
		m.refresh(false)
		return m, m.tick()
	}
	return m, nil
}

// applyPending installs a reloaded configuration once the controller is idle.
func (m *Model) applyPending() {
	if m.pending == nil || m.ctrl.Mode() != engine.Idle {
		return
	}
	cfg := m.pending
	m.pending = nil

	if cfg.ShapeChanged(m.cfg) {
		if err := m.ctrl.Reshape(cfg.N, cfg.MinVal, cfg.MaxVal); err != nil {
			m.notice = "config: " + err.Error()
			return
		}
		m.ctrl.Reset()
	}
	if err := m.ctrl.SelectAlgorithm(cfg.Algorithm); err != nil {
		m.notice = "config: " + err.Error()
		return
	}
	if err := m.ctrl.SetDirection(cfg.SortDirection()); err != nil {
		m.notice = "config: " + err.Error()
		return
	}

	m.cfg = cfg.Clone()
	m.theme = GetTheme(cfg.Theme)
	m.interval = cfg.TickInterval()
	m.notice = "config reloaded"
	m.log.Info("config applied", "n", cfg.N, "algorithm", cfg.Algorithm, "direction", cfg.Direction)
	m.refresh(true)
}

func (m Model) frame() Frame {
	data := m.ctrl.Dataset()
	layout := NewLayout(m.cfg.Width, m.cfg.Height, data)
	return Project(layout, data.Values(), m.ctrl.Highlights(), m.ctrl.Algorithm().Name, m.ctrl.Direction())
}

func (m Model) fieldSize() (cols, rows int) {
	rows = m.rows - headerLines - footerLines
	if m.showHelp {
		rows -= 3
	}
	return max(m.cols, 1), max(rows, 1)
}

// refresh rebuilds the cached header when all is set and the bar field when
// it is stale.
func (m *Model) refresh(all bool) {
	if all {
		m.header = paintHeader(m.frame(), m.theme, m.cols)
		m.fieldDirty = true
	}
	if m.fieldDirty {
		cols, rows := m.fieldSize()
		m.field = paintField(m.frame(), m.theme, cols, rows)
		m.fieldDirty = false
	}
}

func (m Model) status() string {
	st := m.ctrl.Stats()
	s := fmt.Sprintf("%s | n=%d | steps %d | writes %d | theme %s",
		m.ctrl.Mode(), m.ctrl.Dataset().Len(), st.Steps, st.Mutations, m.theme.Name)
	if m.notice != "" {
		s += " | " + m.notice
	}
	return s
}

func (m Model) View() string {
	footer := statusStyle(m.theme).Width(m.cols).Render(m.status())
	parts := []string{m.header, m.field, footer}
	if m.showHelp {
		parts = append(parts, m.help.View(keys))
	} else {
		parts = append(parts, m.help.ShortHelpView(keys.ShortHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
