package designer

import (
	"testing"

	"github.com/quale-dev/tablesmith/grid"
)

// The default 3x3 table draws 10x2 cell interiors, so the grid-local
// boundaries sit at colX={0,11,22,33} and rowY={0,3,6,9}, offset by
// gridTop/gridLeft on screen.

func TestHitTest_CellInteriors(t *testing.T) {
	m := New(Config{MotionThrottle: -1})

	cases := []struct {
		x, y     int
		wantRow  int
		wantCol  int
		wantKind hitKind
	}{
		{x: 1, y: gridTop + 1, wantRow: 0, wantCol: 0, wantKind: hitCell},
		{x: 10, y: gridTop + 2, wantRow: 0, wantCol: 0, wantKind: hitCell},
		{x: 12, y: gridTop + 1, wantRow: 0, wantCol: 1, wantKind: hitCell},
		{x: 23, y: gridTop + 7, wantRow: 2, wantCol: 2, wantKind: hitCell},
	}

	for _, tc := range cases {
		h := m.hitTest(tc.x, tc.y)
		if h.kind != tc.wantKind || h.row != tc.wantRow || h.col != tc.wantCol {
			t.Fatalf("hitTest(%d,%d): got kind=%d (%d,%d), want kind=%d (%d,%d)",
				tc.x, tc.y, h.kind, h.row, h.col, tc.wantKind, tc.wantRow, tc.wantCol)
		}
	}
}

func TestHitTest_Boundaries(t *testing.T) {
	m := New(Config{MotionThrottle: -1})

	// Vertical boundary right of column 0, inside row 0's interior.
	h := m.hitTest(11, gridTop+1)
	if h.kind != hitColBoundary || h.col != 0 {
		t.Fatalf("column boundary: got kind=%d col=%d, want kind=%d col=0", h.kind, h.col, hitColBoundary)
	}

	// Horizontal boundary below row 0, inside column 1's interior.
	h = m.hitTest(12, gridTop+3)
	if h.kind != hitRowBoundary || h.row != 0 {
		t.Fatalf("row boundary: got kind=%d row=%d, want kind=%d row=0", h.kind, h.row, hitRowBoundary)
	}

	// The top-left table edges resize nothing.
	if h := m.hitTest(0, gridTop+1); h.kind != hitNone {
		t.Fatalf("left edge: got kind=%d, want hitNone", h.kind)
	}
	if h := m.hitTest(5, gridTop); h.kind != hitNone {
		t.Fatalf("top edge: got kind=%d, want hitNone", h.kind)
	}
}

func TestHitTest_CellHandleAtJunction(t *testing.T) {
	m := New(Config{MotionThrottle: -1})

	h := m.hitTest(11, gridTop+3)
	if h.kind != hitCellHandle || h.row != 0 || h.col != 0 {
		t.Fatalf("junction: got kind=%d (%d,%d), want cell handle (0,0)", h.kind, h.row, h.col)
	}
}

func TestHitTest_SpanInteriorCoversErasedBoundaries(t *testing.T) {
	m := New(Config{MotionThrottle: -1})
	m.tbl.ToggleCell(0, 0)
	m.tbl.ToggleCell(0, 1)
	spanID := m.tbl.Spans()[0].ID

	// The boundary between the two merged columns now belongs to the span.
	h := m.hitTest(11, gridTop+1)
	if h.kind != hitSpan || h.spanID != spanID {
		t.Fatalf("erased boundary: got kind=%d span=%d, want span %d", h.kind, h.spanID, spanID)
	}

	// The span's bottom-right junction is its resize handle.
	h = m.hitTest(22, gridTop+3)
	if h.kind != hitSpanHandle || h.spanID != spanID {
		t.Fatalf("span handle: got kind=%d span=%d, want handle of span %d", h.kind, h.spanID, spanID)
	}

	// The junction on the span's bottom edge that is not its corner
	// still drags the span.
	h = m.hitTest(11, gridTop+3)
	if h.kind != hitSpan {
		t.Fatalf("mid-edge junction: got kind=%d, want hitSpan", h.kind)
	}
}

func TestHitTest_OutsideGrid(t *testing.T) {
	m := New(Config{MotionThrottle: -1})

	for _, p := range [][2]int{{-1, 5}, {5, 0}, {99, 5}, {5, 99}} {
		if h := m.hitTest(p[0], p[1]); h.kind != hitNone {
			t.Fatalf("hitTest(%d,%d): got kind=%d, want hitNone", p[0], p[1], h.kind)
		}
	}
}

func TestLayout_ScalesWithAxisSizes(t *testing.T) {
	m := New(Config{MotionThrottle: -1})
	l := layoutFor(m.tbl)

	if got, want := l.width(), 34; got != want {
		t.Fatalf("layout width: got %d, want %d", got, want)
	}
	if got, want := l.height(), 10; got != want {
		t.Fatalf("layout height: got %d, want %d", got, want)
	}

	m.tbl.SetAxisSize(grid.AxisColumn, 0, 160)
	l = layoutFor(m.tbl)
	if got, want := l.colX[1], 21; got != want {
		t.Fatalf("first boundary after widening: got %d, want %d", got, want)
	}
}
