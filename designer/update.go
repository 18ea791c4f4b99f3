package designer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quale-dev/tablesmith/export"
	"github.com/quale-dev/tablesmith/grid"
	"github.com/quale-dev/tablesmith/internal/hexcolor"
)

var (
	borderPalette     = []string{"#cccccc", "#333333", "#e63946", "#2a9d8f", "#457b9d"}
	backgroundPalette = []string{"#ffffff", "#f1faee", "#ffe8d6", "#e0fbfc", "#212529"}
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap
	cfg := m.tbl.Config()

	switch {
	case key.Matches(msg, km.AddRow):
		m.tbl.SetDimensions(cfg.RowCount+1, cfg.ColumnCount)
	case key.Matches(msg, km.RemoveRow):
		m.tbl.SetDimensions(cfg.RowCount-1, cfg.ColumnCount)
	case key.Matches(msg, km.AddColumn):
		m.tbl.SetDimensions(cfg.RowCount, cfg.ColumnCount+1)
	case key.Matches(msg, km.RemoveColumn):
		m.tbl.SetDimensions(cfg.RowCount, cfg.ColumnCount-1)

	case key.Matches(msg, km.GapUp):
		m.tbl.SetGap(cfg.GapPx + 1)
	case key.Matches(msg, km.GapDown):
		m.tbl.SetGap(cfg.GapPx - 1)
	case key.Matches(msg, km.PaddingUp):
		m.tbl.SetPadding(cfg.CellPaddingPx + 1)
	case key.Matches(msg, km.PaddingDown):
		m.tbl.SetPadding(cfg.CellPaddingPx - 1)
	case key.Matches(msg, km.RadiusUp):
		m.tbl.SetRadius(cfg.BorderRadiusPx + 1)
	case key.Matches(msg, km.RadiusDown):
		m.tbl.SetRadius(cfg.BorderRadiusPx - 1)

	case key.Matches(msg, km.CycleBorderStyle):
		m.tbl.SetBorderStyle(nextBorderStyle(cfg.BorderStyle))
	case key.Matches(msg, km.CycleBorderColor):
		m.tbl.SetBorderColor(nextColor(borderPalette, cfg.BorderColor))
	case key.Matches(msg, km.CycleBackground):
		m.tbl.SetCellBackground(nextColor(backgroundPalette, cfg.CellBackground))
	case key.Matches(msg, km.ToggleSampleText):
		m.tbl.SetFillSampleText(!cfg.FillSampleText)

	case key.Matches(msg, km.Reset):
		m.tbl.Reset()

	case key.Matches(msg, km.CopyMarkup):
		m.copyToClipboard("html", export.Markup(m.tbl))
	case key.Matches(msg, km.CopyStylesheet):
		m.copyToClipboard("css", export.Stylesheet(m.tbl))
	case key.Matches(msg, km.TogglePreview):
		m.cyclePreview()

	default:
		if m.pane != previewOff {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}

	m.syncFromTable()
	return m, nil
}

// copyToClipboard writes text to the configured clipboard. Failure never
// touches table state; it only surfaces as a notice.
func (m *Model) copyToClipboard(what, text string) {
	if m.cfg.Clipboard == nil {
		m.notice = "clipboard unavailable"
		return
	}
	if err := m.cfg.Clipboard.WriteText(text); err != nil {
		m.notice = "copy failed: " + err.Error()
		return
	}
	m.notice = what + " copied"
}

func nextBorderStyle(s grid.BorderStyle) grid.BorderStyle {
	switch s {
	case grid.BorderSolid:
		return grid.BorderDashed
	case grid.BorderDashed:
		return grid.BorderNone
	default:
		return grid.BorderSolid
	}
}

// nextColor returns the palette entry after current, or the first entry when
// current is not in the palette.
func nextColor(palette []string, current string) string {
	cur := hexcolor.Normalize(current)
	for i, c := range palette {
		if hexcolor.Normalize(c) == cur {
			return palette[(i+1)%len(palette)]
		}
	}
	return palette[0]
}
