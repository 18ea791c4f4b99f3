package export

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/quale-dev/tablesmith/grid"
)

func TestStylesheet_RuleCountsMatchDimensions(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.FillSampleText = false
	tbl := grid.New(cfg)

	out := Stylesheet(tbl)

	if got := strings.Count(out, "table {"); got != 1 {
		t.Fatalf("table rules: got %d, want 1", got)
	}
	if got := strings.Count(out, "\ntd {"); got != 1 {
		t.Fatalf("cell rules: got %d, want 1", got)
	}
	if got := strings.Count(out, "td:nth-child("); got != 3 {
		t.Fatalf("column rules: got %d, want 3", got)
	}
	if got := strings.Count(out, "tr:nth-child("); got != 3 {
		t.Fatalf("row rules: got %d, want 3", got)
	}
}

func TestStylesheet_SizingRulesFollowAxisArrays(t *testing.T) {
	tbl := grid.New(grid.DefaultConfig())
	tbl.SetAxisSize(grid.AxisColumn, 1, 120)
	tbl.SetAxisSize(grid.AxisRow, 2, 64)

	out := Stylesheet(tbl)

	if !strings.Contains(out, "td:nth-child(2) {\n  width: 120px;\n}") {
		t.Fatalf("column rule missing in:\n%s", out)
	}
	if !strings.Contains(out, "tr:nth-child(3) td {\n  height: 64px;\n}") {
		t.Fatalf("row rule missing in:\n%s", out)
	}
	if !strings.Contains(out, "td:nth-child(1) {\n  width: 80px;\n}") {
		t.Fatalf("untouched column rule missing in:\n%s", out)
	}
}

func TestStylesheet_TableRuleCarriesGap(t *testing.T) {
	tbl := grid.New(grid.DefaultConfig())
	tbl.SetGap(14)

	out := Stylesheet(tbl)

	if !strings.Contains(out, "border-spacing: 14px") {
		t.Fatalf("gap not reflected in:\n%s", out)
	}
	if !strings.Contains(out, "width: 100%;") {
		t.Fatalf("full-width rule missing in:\n%s", out)
	}
}

func TestStylesheet_DimensionChangeRegeneratesRules(t *testing.T) {
	tbl := grid.New(grid.DefaultConfig())
	tbl.SetAxisSize(grid.AxisColumn, 0, 200)

	tbl.SetDimensions(2, 5)

	out := Stylesheet(tbl)
	if got := strings.Count(out, "td:nth-child("); got != 5 {
		t.Fatalf("column rules after resize: got %d, want 5", got)
	}
	if got := strings.Count(out, "tr:nth-child("); got != 2 {
		t.Fatalf("row rules after resize: got %d, want 2", got)
	}
	if strings.Contains(out, "width: 200px") {
		t.Fatalf("manual sizing survived a dimension change:\n%s", out)
	}
}

func TestStylesheet_Idempotent(t *testing.T) {
	tbl := grid.New(grid.DefaultConfig())
	tbl.SetBorderStyle(grid.BorderDashed)

	if Stylesheet(tbl) != Stylesheet(tbl) {
		t.Fatalf("stylesheet differs across calls with no state change")
	}
}

func TestStylesheet_Snapshot(t *testing.T) {
	tbl := grid.New(grid.DefaultConfig())

	snaps.WithConfig(snaps.Ext(".css")).MatchSnapshot(t, Stylesheet(tbl))
}
