package designer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cellClass uint8

const (
	classBorder cellClass = iota
	classCell
	classSelected
	classSpan
	classHandle
)

func (m Model) View() string {
	st := m.cfg.Style

	var b strings.Builder
	b.WriteString(st.Title.Render("tablesmith"))
	b.WriteString("\n\n")

	view := m.renderGrid()
	if m.pane != previewOff {
		label := "html"
		if m.pane == previewStylesheet {
			label = "css"
		}
		panel := lipgloss.JoinVertical(lipgloss.Left,
			st.Help.Render("preview: "+label),
			st.Preview.Render(m.preview.View()),
		)
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, "   ", panel)
	}
	b.WriteString(view)
	b.WriteString("\n")

	b.WriteString(st.Status.Render(m.statusLine()))
	if m.notice != "" {
		b.WriteString("  ")
		b.WriteString(st.Notice.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(st.Help.Render(m.helpLine()))
	return b.String()
}

// renderGrid draws the table as a character canvas: '+'/'-'/'|' boundary
// lines, cell interiors colored by state, and boundary segments interior to
// a span erased so the span reads as one cell.
func (m Model) renderGrid() string {
	l := layoutFor(m.tbl)
	w, h := l.width(), l.height()

	runes := make([][]rune, h)
	classes := make([][]cellClass, h)
	for y := range runes {
		runes[y] = make([]rune, w)
		classes[y] = make([]cellClass, w)
		for x := range runes[y] {
			runes[y][x] = ' '
			classes[y][x] = classCell
		}
	}

	m.paintInteriors(l, classes)
	m.paintBoundaries(l, runes, classes)
	m.paintLabels(l, runes)

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; {
			cl := classes[y][x]
			start := x
			for x < w && classes[y][x] == cl {
				x++
			}
			sb.WriteString(m.classStyle(cl).Render(string(runes[y][start:x])))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) paintInteriors(l gridLayout, classes [][]cellClass) {
	for r := 0; r < m.tbl.RowCount(); r++ {
		for c := 0; c < m.tbl.ColumnCount(); c++ {
			cl := classCell
			if m.tbl.IsOccupied(r, c) {
				cl = classSpan
			} else if m.tbl.Selected(r, c) {
				cl = classSelected
			}
			for y := l.rowY[r] + 1; y < l.rowY[r+1]; y++ {
				for x := l.colX[c] + 1; x < l.colX[c+1]; x++ {
					classes[y][x] = cl
				}
			}
		}
	}
}

func (m Model) paintBoundaries(l gridLayout, runes [][]rune, classes [][]cellClass) {
	type rect struct{ x0, x1, y0, y1 int }
	spans := m.tbl.Spans()
	rects := make([]rect, len(spans))
	for i, sp := range spans {
		rects[i] = rect{
			x0: l.colX[sp.ColStart], x1: l.colX[sp.ColEnd],
			y0: l.rowY[sp.RowStart], y1: l.rowY[sp.RowEnd],
		}
	}
	insideSpan := func(x, y int) bool {
		for _, r := range rects {
			if x > r.x0 && x < r.x1 && y > r.y0 && y < r.y1 {
				return true
			}
		}
		return false
	}
	spanHandle := func(x, y int) bool {
		for _, r := range rects {
			if x == r.x1 && y == r.y1 {
				return true
			}
		}
		return false
	}

	w, h := l.width(), l.height()
	for y := 0; y < h; y++ {
		onRow := l.boundaryRow(y) >= 0
		for x := 0; x < w; x++ {
			onCol := l.boundaryColumn(x) >= 0
			if !onRow && !onCol {
				continue
			}
			if insideSpan(x, y) {
				classes[y][x] = classSpan
				continue
			}
			switch {
			case onRow && onCol:
				runes[y][x] = '+'
				classes[y][x] = classBorder
				if spanHandle(x, y) {
					classes[y][x] = classHandle
				}
			case onCol:
				runes[y][x] = '|'
				classes[y][x] = classBorder
			default:
				runes[y][x] = '-'
				classes[y][x] = classBorder
			}
		}
	}
}

func (m Model) paintLabels(l gridLayout, runes [][]rune) {
	cfg := m.tbl.Config()

	place := func(row, col int, label string) {
		if label == "" {
			return
		}
		width := l.colX[col+1] - l.colX[col] - 3
		if width < 1 {
			return
		}
		label = runewidth.Truncate(label, width, "…")
		y := l.rowY[row] + 1
		x := l.colX[col] + 2
		for _, r := range label {
			runes[y][x] = r
			x++
		}
	}

	for _, sp := range m.tbl.Spans() {
		place(sp.RowStart, sp.ColStart, sp.Content)
	}
	for r := 0; r < cfg.RowCount; r++ {
		for c := 0; c < cfg.ColumnCount; c++ {
			if m.tbl.IsOccupied(r, c) || !cfg.FillSampleText {
				continue
			}
			place(r, c, fmt.Sprintf("Cell %d-%d", r+1, c+1))
		}
	}
}

func (m Model) classStyle(cl cellClass) lipgloss.Style {
	st := m.cfg.Style
	switch cl {
	case classBorder:
		return st.Border
	case classSelected:
		return st.Selected
	case classSpan:
		return st.Span
	case classHandle:
		return st.Handle
	default:
		return st.Cell
	}
}

func (m Model) statusLine() string {
	cfg := m.tbl.Config()
	sample := "off"
	if cfg.FillSampleText {
		sample = "on"
	}
	s := fmt.Sprintf("%dx%d  gap %dpx  pad %dpx  radius %dpx  border %s %s  bg %s  sample %s",
		cfg.RowCount, cfg.ColumnCount, cfg.GapPx, cfg.CellPaddingPx, cfg.BorderRadiusPx,
		cfg.BorderStyle, cfg.BorderColor, cfg.CellBackground, sample)
	if n := m.tbl.SelectionCount(); n > 0 {
		s += fmt.Sprintf("  selected %d", n)
	}
	return s
}

func (m Model) helpLine() string {
	km := m.cfg.KeyMap
	parts := []string{
		"click: select/merge",
		"click span: unmerge",
		"drag: move/resize",
	}
	for _, b := range []struct {
		key  string
		desc string
	}{
		{km.AddRow.Help().Key + "/" + km.RemoveRow.Help().Key, "rows"},
		{km.AddColumn.Help().Key + "/" + km.RemoveColumn.Help().Key, "cols"},
		{km.GapUp.Help().Key + "/" + km.GapDown.Help().Key, "gap"},
		{km.PaddingUp.Help().Key + "/" + km.PaddingDown.Help().Key, "pad"},
		{km.RadiusUp.Help().Key + "/" + km.RadiusDown.Help().Key, "radius"},
		{km.CycleBorderStyle.Help().Key, "border"},
		{km.CycleBorderColor.Help().Key, "border color"},
		{km.CycleBackground.Help().Key, "bg"},
		{km.ToggleSampleText.Help().Key, "sample"},
		{km.Reset.Help().Key, "reset"},
		{km.CopyMarkup.Help().Key, "copy html"},
		{km.CopyStylesheet.Help().Key, "copy css"},
		{km.TogglePreview.Help().Key, "preview"},
	} {
		parts = append(parts, b.key+" "+b.desc)
	}
	return strings.Join(parts, "  ")
}
