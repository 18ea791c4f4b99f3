package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/quale-dev/tablesmith/grid"
)

// SelectedBackground replaces the configured cell background on cells that
// are part of the pending selection, so the generated preview shows which
// cells a merge would fuse.
const SelectedBackground = "#d0e7ff"

// Markup renders the table as an HTML document fragment. Rows are emitted
// in order; a merged span appears once, at its anchor, carrying colspan and
// rowspan, and the cells it covers are skipped.
func Markup(t *grid.Table) string {
	cfg := t.Config()

	var b strings.Builder
	b.WriteString("<table>\n")
	for row := 0; row < cfg.RowCount; row++ {
		b.WriteString("  <tr>\n")
		for col := 0; col < cfg.ColumnCount; col++ {
			if sp, ok := t.SpanAt(row, col); ok {
				if sp.Anchor() != (grid.CellPos{Row: row, Col: col}) {
					continue
				}
				writeSpanCell(&b, cfg, sp)
				continue
			}
			writePlainCell(&b, cfg, t.Selected(row, col), row, col)
		}
		b.WriteString("  </tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

func writeSpanCell(b *strings.Builder, cfg grid.Config, sp grid.Span) {
	b.WriteString("    <td")
	if sp.Cols() > 1 {
		fmt.Fprintf(b, ` colspan="%d"`, sp.Cols())
	}
	if sp.Rows() > 1 {
		fmt.Fprintf(b, ` rowspan="%d"`, sp.Rows())
	}
	b.WriteString(` style="` + cellStyle(cfg, cfg.CellBackground) + `">`)
	b.WriteString(html.EscapeString(sp.Content))
	b.WriteString("</td>\n")
}

func writePlainCell(b *strings.Builder, cfg grid.Config, selected bool, row, col int) {
	background := cfg.CellBackground
	if selected {
		background = SelectedBackground
	}
	content := ""
	if cfg.FillSampleText {
		content = fmt.Sprintf("Cell %d-%d", row+1, col+1)
	}
	b.WriteString(`    <td style="` + cellStyle(cfg, background) + `">`)
	b.WriteString(html.EscapeString(content))
	b.WriteString("</td>\n")
}

// cellStyle composes the inline presentation attributes every cell carries.
// Color values are emitted exactly as configured.
func cellStyle(cfg grid.Config, background string) string {
	return fmt.Sprintf("border: %s; padding: %dpx; background-color: %s; border-radius: %dpx",
		borderValue(cfg), cfg.CellPaddingPx, background, cfg.BorderRadiusPx)
}

func borderValue(cfg grid.Config) string {
	if cfg.BorderStyle == grid.BorderNone {
		return "none"
	}
	return fmt.Sprintf("1px %s %s", cfg.BorderStyle, cfg.BorderColor)
}
