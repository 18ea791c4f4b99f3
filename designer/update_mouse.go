package designer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quale-dev/tablesmith/grid"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m = m.mousePress(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}
		if m.cfg.MotionThrottle > 0 {
			now := time.Now()
			if now.Sub(m.lastMotion) < m.cfg.MotionThrottle {
				return m, nil
			}
			m.lastMotion = now
		}
		px, py := pointerPx(msg.X, msg.Y)
		m.tbl.Drag(px, py)

	case tea.MouseActionRelease:
		if m.mouseDragging {
			applied := m.tbl.EndDrag()
			// A press-release on a span with no applied delta is a
			// click: unmerge it.
			if !applied && m.pressedSpan != 0 {
				m.tbl.ToggleCell(m.pressCell.Row, m.pressCell.Col)
			}
		}
		m.mouseDragging = false
		m.pressedSpan = 0
	}

	m.syncFromTable()
	return m, nil
}

func (m Model) mousePress(x, y int) Model {
	h := m.hitTest(x, y)
	px, py := pointerPx(x, y)
	m.pressCell = grid.CellPos{Row: h.row, Col: h.col}
	m.pressedSpan = 0

	switch h.kind {
	case hitCell:
		m.tbl.ToggleCell(h.row, h.col)
	case hitSpan:
		if m.tbl.StartMove(h.spanID, px, py) {
			m.mouseDragging = true
			m.pressedSpan = h.spanID
		}
	case hitSpanHandle:
		if m.tbl.StartSpanResize(h.spanID, px, py) {
			m.mouseDragging = true
		}
	case hitCellHandle:
		if m.tbl.StartCellResize(h.row, h.col, px, py) {
			m.mouseDragging = true
		}
	case hitColBoundary:
		if m.tbl.StartColumnResize(h.col, px, py) {
			m.mouseDragging = true
		}
	case hitRowBoundary:
		if m.tbl.StartRowResize(h.row, px, py) {
			m.mouseDragging = true
		}
	}
	return m
}
