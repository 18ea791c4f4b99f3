package grid

import "math"

// DragKind identifies which interaction a drag session performs.
type DragKind int

const (
	DragMove DragKind = iota
	DragSpanResize
	DragColumnResize
	DragRowResize
	DragCellResize
)

// moveJitterPx suppresses unit deltas for pointer displacement below this
// many pixels, so a shaky press does not nudge the span.
const moveJitterPx = 4

// dragSession records one in-flight pointer interaction. It exists between
// pointer-down and pointer-up and there is at most one per table.
type dragSession struct {
	kind DragKind

	spanID int
	col    int
	row    int

	startX int
	startY int

	// Geometry captured at session start; every Drag call reapplies the
	// total displacement to this snapshot rather than accumulating.
	orig  Span
	origW int
	origH int

	applied bool
}

func (t *Table) Dragging() bool { return t.drag != nil }

// StartMove begins moving the span with the given id. It reports false when
// another session is active or the span does not exist.
func (t *Table) StartMove(spanID, x, y int) bool {
	i, ok := t.spanByID(spanID)
	if t.drag != nil || !ok {
		return false
	}
	t.drag = &dragSession{kind: DragMove, spanID: spanID, startX: x, startY: y, orig: t.spans[i]}
	return true
}

// StartSpanResize begins resizing the span's bottom-right extent.
func (t *Table) StartSpanResize(spanID, x, y int) bool {
	i, ok := t.spanByID(spanID)
	if t.drag != nil || !ok {
		return false
	}
	t.drag = &dragSession{kind: DragSpanResize, spanID: spanID, startX: x, startY: y, orig: t.spans[i]}
	return true
}

// StartColumnResize begins adjusting one column width by raw pixel delta.
func (t *Table) StartColumnResize(index, x, y int) bool {
	if t.drag != nil || index < 0 || index >= t.cfg.ColumnCount {
		return false
	}
	t.drag = &dragSession{
		kind:   DragColumnResize,
		col:    index,
		startX: x,
		startY: y,
		origW:  t.cfg.ColumnWidthsPx[index],
	}
	return true
}

// StartRowResize begins adjusting one row height by raw pixel delta.
func (t *Table) StartRowResize(index, x, y int) bool {
	if t.drag != nil || index < 0 || index >= t.cfg.RowCount {
		return false
	}
	t.drag = &dragSession{
		kind:   DragRowResize,
		row:    index,
		startX: x,
		startY: y,
		origH:  t.cfg.RowHeightsPx[index],
	}
	return true
}

// StartCellResize begins resizing an unmerged cell's column width and row
// height together. There is no per-cell sizing, so the drag couples the
// whole column and row.
func (t *Table) StartCellResize(row, col, x, y int) bool {
	if t.drag != nil || !t.inBounds(row, col) || t.IsOccupied(row, col) {
		return false
	}
	t.drag = &dragSession{
		kind:   DragCellResize,
		row:    row,
		col:    col,
		startX: x,
		startY: y,
		origW:  t.cfg.ColumnWidthsPx[col],
		origH:  t.cfg.RowHeightsPx[row],
	}
	return true
}

// Drag applies the active session for the pointer now at (x, y) in the same
// pixel space the session was started in. Without an active session it is a
// no-op.
func (t *Table) Drag(x, y int) {
	d := t.drag
	if d == nil {
		return
	}
	dx := x - d.startX
	dy := y - d.startY

	switch d.kind {
	case DragMove:
		t.dragMove(d, dx, dy)
	case DragSpanResize:
		t.dragSpanResize(d, dx, dy)
	case DragColumnResize:
		t.SetAxisSize(AxisColumn, d.col, d.origW+dx)
		d.applied = d.applied || dx != 0
	case DragRowResize:
		t.SetAxisSize(AxisRow, d.row, d.origH+dy)
		d.applied = d.applied || dy != 0
	case DragCellResize:
		t.SetAxisSize(AxisColumn, d.col, d.origW+dx)
		t.SetAxisSize(AxisRow, d.row, d.origH+dy)
		d.applied = d.applied || dx != 0 || dy != 0
	}
}

// EndDrag clears the session unconditionally and reports whether the drag
// ever changed anything, letting UI layers tell a click from a drag.
func (t *Table) EndDrag() bool {
	if t.drag == nil {
		return false
	}
	applied := t.drag.applied
	t.drag = nil
	return applied
}

func (t *Table) dragMove(d *dragSession, dx, dy int) {
	dCol := t.unitDelta(dx, t.meanColumnStridePx())
	dRow := t.unitDelta(dy, t.meanRowStridePx())
	if dCol == 0 && dRow == 0 && !d.applied {
		return
	}

	i, ok := t.spanByID(d.spanID)
	if !ok {
		return
	}

	sp := d.orig
	rows, cols := sp.Rows(), sp.Cols()
	// Shift both edges, clamped so the span keeps its size inside the
	// table. No span-to-span overlap check is performed.
	sp.RowStart = clampInt(sp.RowStart+dRow, 0, t.cfg.RowCount-rows)
	sp.ColStart = clampInt(sp.ColStart+dCol, 0, t.cfg.ColumnCount-cols)
	sp.RowEnd = sp.RowStart + rows
	sp.ColEnd = sp.ColStart + cols

	if t.spans[i] == sp {
		d.applied = d.applied || dCol != 0 || dRow != 0
		return
	}
	t.spans[i] = sp
	d.applied = true
	t.version++
}

func (t *Table) dragSpanResize(d *dragSession, dx, dy int) {
	dCol := t.unitDelta(dx, t.meanColumnStridePx())
	dRow := t.unitDelta(dy, t.meanRowStridePx())
	if dCol == 0 && dRow == 0 && !d.applied {
		return
	}

	i, ok := t.spanByID(d.spanID)
	if !ok {
		return
	}

	sp := d.orig
	// Only the far edges move: floor one unit past the start, ceiling at
	// the table bounds.
	sp.RowEnd = clampInt(d.orig.RowEnd+dRow, sp.RowStart+1, t.cfg.RowCount)
	sp.ColEnd = clampInt(d.orig.ColEnd+dCol, sp.ColStart+1, t.cfg.ColumnCount)

	if t.spans[i] == sp {
		d.applied = d.applied || dCol != 0 || dRow != 0
		return
	}
	t.spans[i] = sp
	d.applied = true
	t.version++
}

// unitDelta converts a pixel displacement into a signed number of grid
// units, suppressing jitter below the threshold.
func (t *Table) unitDelta(px int, stridePx float64) int {
	if px > -moveJitterPx && px < moveJitterPx {
		return 0
	}
	if stridePx <= 0 {
		return 0
	}
	return int(math.Round(float64(px) / stridePx))
}

func (t *Table) meanColumnStridePx() float64 {
	sum := 0
	for _, w := range t.cfg.ColumnWidthsPx {
		sum += w
	}
	return float64(sum)/float64(len(t.cfg.ColumnWidthsPx)) + float64(t.cfg.GapPx)
}

func (t *Table) meanRowStridePx() float64 {
	sum := 0
	for _, h := range t.cfg.RowHeightsPx {
		sum += h
	}
	return float64(sum)/float64(len(t.cfg.RowHeightsPx)) + float64(t.cfg.GapPx)
}
