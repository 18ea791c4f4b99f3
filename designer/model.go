package designer

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quale-dev/tablesmith/export"
	"github.com/quale-dev/tablesmith/grid"
)

// previewPane selects what the preview viewport shows.
type previewPane int

const (
	previewOff previewPane = iota
	previewMarkup
	previewStylesheet
)

// Model is a Bubble Tea component that renders and edits a grid.Table.
type Model struct {
	cfg Config
	tbl *grid.Table

	focused bool
	width   int
	height  int

	preview viewport.Model
	pane    previewPane

	notice string

	mouseDragging bool
	pressedSpan   int
	pressCell     grid.CellPos
	lastMotion    time.Time

	lastVersion uint64
}

func New(cfg Config) Model {
	if cfg.Table == nil {
		cfg.Table = grid.New(grid.DefaultConfig())
	}
	if len(cfg.KeyMap.Reset.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.MotionThrottle == 0 {
		cfg.MotionThrottle = defaultMotionThrottle
	}

	m := Model{
		cfg:     cfg,
		tbl:     cfg.Table,
		focused: true,
		preview: viewport.New(0, 0),
	}
	if cfg.ShowPreview {
		m.pane = previewMarkup
	}
	m.lastVersion = m.tbl.Version()
	m.rebuildPreview()
	return m
}

// Table exposes the underlying model; hosts may mutate it directly and the
// component picks the change up on the next message.
func (m Model) Table() *grid.Table { return m.tbl }

// Markup returns the generated HTML for the current state.
func (m Model) Markup() string { return export.Markup(m.tbl) }

// Stylesheet returns the generated CSS for the current state.
func (m Model) Stylesheet() string { return export.Stylesheet(m.tbl) }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	l := layoutFor(m.tbl)
	pw := width - l.width() - 3
	if pw < 0 {
		pw = 0
	}
	ph := height - gridTop - 2
	if ph < 0 {
		ph = 0
	}
	m.preview.Width = pw
	m.preview.Height = ph
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		// Hosts may drive edits by mutating the table outside the
		// component.
		m.syncFromTable()
		return m, nil
	}
}

// syncFromTable notices version changes, notifies the host, and refreshes
// the preview pane.
func (m *Model) syncFromTable() {
	if m.tbl.Version() == m.lastVersion {
		return
	}
	m.lastVersion = m.tbl.Version()
	m.rebuildPreview()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
}

func (m *Model) rebuildPreview() {
	switch m.pane {
	case previewMarkup:
		m.preview.SetContent(export.Markup(m.tbl))
	case previewStylesheet:
		m.preview.SetContent(export.Stylesheet(m.tbl))
	}
}

func (m *Model) cyclePreview() {
	switch m.pane {
	case previewOff:
		m.pane = previewMarkup
	case previewMarkup:
		m.pane = previewStylesheet
	default:
		m.pane = previewOff
	}
	m.preview.SetYOffset(0)
	m.rebuildPreview()
}
