package grid

import "testing"

// mergedTable returns a 4x4 table with one 1x2 span anchored at (1,1).
func mergedTable(t *testing.T) (*Table, Span) {
	t.Helper()
	tbl := New(DefaultConfig())
	tbl.SetDimensions(4, 4)
	tbl.ToggleCell(1, 1)
	tbl.ToggleCell(1, 2)
	spans := tbl.Spans()
	if len(spans) != 1 {
		t.Fatalf("setup: got %d spans, want 1", len(spans))
	}
	return tbl, spans[0]
}

func TestDragMove_ShiftsByMeanStride(t *testing.T) {
	tbl, sp := mergedTable(t)
	// 4 default columns: mean stride = 80 + gap 2 = 82px. One stride right,
	// one row stride (52px) down.
	if !tbl.StartMove(sp.ID, 0, 0) {
		t.Fatalf("StartMove failed")
	}
	tbl.Drag(82, 52)
	if !tbl.EndDrag() {
		t.Fatalf("EndDrag: drag not reported as applied")
	}

	got, _ := tbl.SpanAt(2, 2)
	if got.RowStart != 2 || got.ColStart != 2 || got.Rows() != 1 || got.Cols() != 2 {
		t.Fatalf("moved span: got rows [%d,%d) cols [%d,%d), want [2,3)x[2,4)",
			got.RowStart, got.RowEnd, got.ColStart, got.ColEnd)
	}
}

func TestDragMove_JitterBelowThresholdIgnored(t *testing.T) {
	tbl, sp := mergedTable(t)
	tbl.StartMove(sp.ID, 100, 100)
	tbl.Drag(103, 98) // within the jitter threshold on both axes

	if applied := tbl.EndDrag(); applied {
		t.Fatalf("jitter was applied as a drag")
	}
	got, _ := tbl.SpanAt(1, 1)
	if got.Anchor() != sp.Anchor() {
		t.Fatalf("span moved under jitter: got %v, want %v", got.Anchor(), sp.Anchor())
	}
}

func TestDragMove_ClampsAtTableEdgePreservingSize(t *testing.T) {
	tbl, sp := mergedTable(t)
	tbl.StartMove(sp.ID, 0, 0)
	tbl.Drag(10000, -10000) // far past the right and top edges
	tbl.EndDrag()

	got, ok := tbl.SpanAt(0, 2)
	if !ok {
		t.Fatalf("span not found at clamped position")
	}
	if got.RowStart != 0 || got.ColEnd != 4 || got.Rows() != 1 || got.Cols() != 2 {
		t.Fatalf("clamped span: got rows [%d,%d) cols [%d,%d), want [0,1)x[2,4)",
			got.RowStart, got.RowEnd, got.ColStart, got.ColEnd)
	}
}

func TestDragMove_ReappliesFromOriginalGeometry(t *testing.T) {
	tbl, sp := mergedTable(t)
	tbl.StartMove(sp.ID, 0, 0)
	tbl.Drag(82, 0)  // one column right
	tbl.Drag(0, 0)   // back to the press point
	applied := tbl.EndDrag()

	got, _ := tbl.SpanAt(1, 1)
	if got.Anchor() != sp.Anchor() {
		t.Fatalf("span did not return to origin: got %v, want %v", got.Anchor(), sp.Anchor())
	}
	if !applied {
		t.Fatalf("round-trip drag should still count as a drag, not a click")
	}
}

func TestDragSpanResize_FloorAndCeiling(t *testing.T) {
	tbl, sp := mergedTable(t)

	tbl.StartSpanResize(sp.ID, 0, 0)
	tbl.Drag(-10000, -10000) // shrink far past the anchor
	tbl.EndDrag()
	got, _ := tbl.SpanAt(1, 1)
	if got.RowEnd != got.RowStart+1 || got.ColEnd != got.ColStart+1 {
		t.Fatalf("resize floor: got rows [%d,%d) cols [%d,%d), want 1x1",
			got.RowStart, got.RowEnd, got.ColStart, got.ColEnd)
	}

	tbl.StartSpanResize(sp.ID, 0, 0)
	tbl.Drag(10000, 10000) // grow far past the table bounds
	tbl.EndDrag()
	got, _ = tbl.SpanAt(1, 1)
	if got.RowEnd != 4 || got.ColEnd != 4 {
		t.Fatalf("resize ceiling: got ends (%d,%d), want (4,4)", got.RowEnd, got.ColEnd)
	}
	if got.RowStart != 1 || got.ColStart != 1 {
		t.Fatalf("resize moved the anchor: got %v, want (1,1)", got.Anchor())
	}
}

func TestDragColumnResize_RawDeltaWithMinimum(t *testing.T) {
	tbl := New(DefaultConfig())

	tbl.StartColumnResize(1, 500, 0)
	tbl.Drag(530, 999) // +30px; vertical displacement is irrelevant
	tbl.EndDrag()
	if got := tbl.Config().ColumnWidthsPx[1]; got != 110 {
		t.Fatalf("column width: got %d, want 110", got)
	}

	tbl.StartColumnResize(1, 0, 0)
	tbl.Drag(-10000, 0)
	tbl.EndDrag()
	if got := tbl.Config().ColumnWidthsPx[1]; got != MinColumnWidthPx {
		t.Fatalf("column width floor: got %d, want %d", got, MinColumnWidthPx)
	}
}

func TestDragRowResize_DoesNotTouchSpans(t *testing.T) {
	tbl, sp := mergedTable(t)

	tbl.StartRowResize(1, 0, 0)
	tbl.Drag(0, 25)
	tbl.EndDrag()

	if got := tbl.Config().RowHeightsPx[1]; got != 75 {
		t.Fatalf("row height: got %d, want 75", got)
	}
	got, _ := tbl.SpanAt(1, 1)
	if got != sp {
		t.Fatalf("axis resize mutated span: got %+v, want %+v", got, sp)
	}
}

func TestDragCellResize_CouplesColumnAndRow(t *testing.T) {
	tbl := New(DefaultConfig())

	if !tbl.StartCellResize(0, 0, 0, 0) {
		t.Fatalf("StartCellResize failed")
	}
	tbl.Drag(20, 10)
	tbl.EndDrag()

	cfg := tbl.Config()
	if cfg.ColumnWidthsPx[0] != 100 || cfg.RowHeightsPx[0] != 60 {
		t.Fatalf("cell resize: got w=%d h=%d, want 100/60", cfg.ColumnWidthsPx[0], cfg.RowHeightsPx[0])
	}
}

func TestStartCellResize_RejectsOccupiedCell(t *testing.T) {
	tbl, _ := mergedTable(t)
	if tbl.StartCellResize(1, 1, 0, 0) {
		t.Fatalf("cell resize started on a merged cell")
	}
}

func TestDrag_SingleSessionInvariant(t *testing.T) {
	tbl, sp := mergedTable(t)

	if !tbl.StartMove(sp.ID, 0, 0) {
		t.Fatalf("first session rejected")
	}
	if tbl.StartColumnResize(0, 0, 0) {
		t.Fatalf("second session started while one is active")
	}
	if !tbl.Dragging() {
		t.Fatalf("Dragging false with an active session")
	}

	tbl.EndDrag()
	if tbl.Dragging() {
		t.Fatalf("session survived EndDrag")
	}
	if !tbl.StartColumnResize(0, 0, 0) {
		t.Fatalf("new session rejected after EndDrag")
	}
	tbl.EndDrag()
}

func TestDrag_WithoutSessionIsNoop(t *testing.T) {
	tbl := New(DefaultConfig())
	v := tbl.Version()

	tbl.Drag(100, 100)
	if tbl.EndDrag() {
		t.Fatalf("EndDrag reported an applied drag with no session")
	}
	if tbl.Version() != v {
		t.Fatalf("sessionless drag mutated state")
	}
}
