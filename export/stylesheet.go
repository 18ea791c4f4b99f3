package export

import (
	"fmt"
	"strings"

	"github.com/quale-dev/tablesmith/grid"
)

// Stylesheet renders the table's CSS: one rule for the table element, one
// shared rule for all cells, then one sizing rule per column and per row.
func Stylesheet(t *grid.Table) string {
	cfg := t.Config()

	var b strings.Builder
	fmt.Fprintf(&b, "table {\n  border-collapse: separate;\n  border-spacing: %dpx;\n  width: 100%%;\n}\n", cfg.GapPx)

	fmt.Fprintf(&b, "\ntd {\n  border: %s;\n  padding: %dpx;\n  background-color: %s;\n  border-radius: %dpx;\n}\n",
		borderValue(cfg), cfg.CellPaddingPx, cfg.CellBackground, cfg.BorderRadiusPx)

	for i, w := range cfg.ColumnWidthsPx {
		fmt.Fprintf(&b, "\ntd:nth-child(%d) {\n  width: %dpx;\n}\n", i+1, w)
	}
	for i, h := range cfg.RowHeightsPx {
		fmt.Fprintf(&b, "\ntr:nth-child(%d) td {\n  height: %dpx;\n}\n", i+1, h)
	}
	return b.String()
}
