package designer

type hitKind int

const (
	hitNone hitKind = iota
	hitCell
	hitSpan
	hitSpanHandle
	hitCellHandle
	hitColBoundary
	hitRowBoundary
)

// hit identifies what a viewport-local pointer coordinate lands on. row/col
// hold the base cell for cell hits and the axis index for boundary hits.
type hit struct {
	kind   hitKind
	row    int
	col    int
	spanID int
}

// hitTest maps viewport-local terminal coordinates to a grid target.
//
// Boundary lines shared with a span's interior belong to the span; the
// junction at a rectangle's bottom-right corner is its resize handle.
func (m *Model) hitTest(x, y int) hit {
	x -= gridLeft
	y -= gridTop
	if x < 0 || y < 0 {
		return hit{kind: hitNone}
	}

	l := layoutFor(m.tbl)
	if x >= l.width() || y >= l.height() {
		return hit{kind: hitNone}
	}

	bx := l.boundaryColumn(x)
	by := l.boundaryRow(y)

	switch {
	case bx > 0 && by > 0:
		return m.hitJunction(bx, by)
	case bx > 0:
		row := l.rowAt(y)
		if row < 0 {
			return hit{kind: hitNone}
		}
		// A boundary interior to a span is part of the span.
		if sp, ok := m.tbl.SpanAt(row, bx-1); ok && bx < sp.ColEnd {
			return hit{kind: hitSpan, row: row, col: bx - 1, spanID: sp.ID}
		}
		return hit{kind: hitColBoundary, col: bx - 1, row: row}
	case by > 0:
		col := l.columnAt(x)
		if col < 0 {
			return hit{kind: hitNone}
		}
		if sp, ok := m.tbl.SpanAt(by-1, col); ok && by < sp.RowEnd {
			return hit{kind: hitSpan, row: by - 1, col: col, spanID: sp.ID}
		}
		return hit{kind: hitRowBoundary, row: by - 1, col: col}
	case bx == 0 || by == 0:
		// The top and left table edges resize nothing.
		return hit{kind: hitNone}
	}

	row, col := l.rowAt(y), l.columnAt(x)
	if row < 0 || col < 0 {
		return hit{kind: hitNone}
	}
	if sp, ok := m.tbl.SpanAt(row, col); ok {
		return hit{kind: hitSpan, row: row, col: col, spanID: sp.ID}
	}
	return hit{kind: hitCell, row: row, col: col}
}

// hitJunction resolves the junction at boundary indexes (bx, by), which is
// the bottom-right corner of the cell or span up-left of it.
func (m *Model) hitJunction(bx, by int) hit {
	row, col := by-1, bx-1
	if sp, ok := m.tbl.SpanAt(row, col); ok {
		if sp.RowEnd == by && sp.ColEnd == bx {
			return hit{kind: hitSpanHandle, row: row, col: col, spanID: sp.ID}
		}
		// A junction interior to the span (or on a non-corner edge)
		// drags the whole span.
		return hit{kind: hitSpan, row: row, col: col, spanID: sp.ID}
	}
	return hit{kind: hitCellHandle, row: row, col: col}
}

// pointerPx converts viewport-local terminal coordinates into the pixel
// space drag sessions run in.
func pointerPx(x, y int) (int, int) {
	return (x - gridLeft) * pxPerTermCol, (y - gridTop) * pxPerTermLine
}
