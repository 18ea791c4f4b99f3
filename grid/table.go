package grid

import "fmt"

// Table owns the full editor state: table-wide configuration, per-axis
// sizing, merged spans, the transient selection set, and at most one drag
// session.
//
// Mutating methods bump Version only when they actually change state, so UI
// layers can re-derive output on version change alone.
type Table struct {
	cfg     Config
	version uint64

	spans  []Span
	nextID int

	selection []CellPos

	drag *dragSession
}

// New builds a table from cfg. A zero-value cfg yields DefaultConfig();
// sizing slices whose lengths do not match the dimensions are reset to the
// uniform defaults.
func New(cfg Config) *Table {
	return &Table{cfg: normalizeConfig(cfg), nextID: 1}
}

func (t *Table) Version() uint64 { return t.version }

// Config returns a copy of the current configuration; the sizing slices are
// cloned so callers cannot mutate table state through them.
func (t *Table) Config() Config {
	cfg := t.cfg
	cfg.ColumnWidthsPx = append([]int(nil), t.cfg.ColumnWidthsPx...)
	cfg.RowHeightsPx = append([]int(nil), t.cfg.RowHeightsPx...)
	return cfg
}

func (t *Table) RowCount() int    { return t.cfg.RowCount }
func (t *Table) ColumnCount() int { return t.cfg.ColumnCount }

// SetDimensions clamps rows and cols into [1,20]. On change both sizing
// slices are regenerated at the uniform defaults, discarding manual sizing,
// and spans that no longer fit entirely inside the new bounds are removed.
func (t *Table) SetDimensions(rows, cols int) {
	rows = clampInt(rows, MinRows, MaxRows)
	cols = clampInt(cols, MinCols, MaxCols)
	if rows == t.cfg.RowCount && cols == t.cfg.ColumnCount {
		return
	}

	t.cfg.RowCount = rows
	t.cfg.ColumnCount = cols
	t.cfg.ColumnWidthsPx = uniformSizes(cols, DefaultColumnWidthPx)
	t.cfg.RowHeightsPx = uniformSizes(rows, DefaultRowHeightPx)

	kept := t.spans[:0]
	for _, sp := range t.spans {
		if sp.RowEnd <= rows && sp.ColEnd <= cols {
			kept = append(kept, sp)
		}
	}
	t.spans = kept

	t.selection = nil
	t.version++
}

// Axis selects one of the two sizing sequences.
type Axis int

const (
	AxisColumn Axis = iota
	AxisRow
)

// SetAxisSize writes one element of the column-width or row-height sequence,
// clamped to the axis minimum. Out-of-range indexes are ignored.
func (t *Table) SetAxisSize(axis Axis, index, px int) {
	var sizes []int
	min := MinColumnWidthPx
	if axis == AxisRow {
		min = MinRowHeightPx
	}
	switch axis {
	case AxisColumn:
		sizes = t.cfg.ColumnWidthsPx
	case AxisRow:
		sizes = t.cfg.RowHeightsPx
	}
	if index < 0 || index >= len(sizes) {
		return
	}
	if px < min {
		px = min
	}
	if sizes[index] == px {
		return
	}
	sizes[index] = px
	t.version++
}

func (t *Table) SetGap(px int) {
	t.setClamped(&t.cfg.GapPx, px, 0, MaxGapPx)
}

func (t *Table) SetPadding(px int) {
	t.setClamped(&t.cfg.CellPaddingPx, px, 0, MaxPaddingPx)
}

func (t *Table) SetRadius(px int) {
	t.setClamped(&t.cfg.BorderRadiusPx, px, 0, MaxRadiusPx)
}

func (t *Table) SetBorderStyle(s BorderStyle) {
	if t.cfg.BorderStyle == s {
		return
	}
	t.cfg.BorderStyle = s
	t.version++
}

// SetBorderColor accepts any string; malformed hex flows through unchanged
// into the generated output.
func (t *Table) SetBorderColor(hex string) {
	if t.cfg.BorderColor == hex {
		return
	}
	t.cfg.BorderColor = hex
	t.version++
}

// SetCellBackground accepts any string, like SetBorderColor.
func (t *Table) SetCellBackground(hex string) {
	if t.cfg.CellBackground == hex {
		return
	}
	t.cfg.CellBackground = hex
	t.version++
}

func (t *Table) SetFillSampleText(on bool) {
	if t.cfg.FillSampleText == on {
		return
	}
	t.cfg.FillSampleText = on
	t.version++
}

func (t *Table) setClamped(field *int, px, min, max int) {
	px = clampInt(px, min, max)
	if *field == px {
		return
	}
	*field = px
	t.version++
}

// Reset restores the default configuration and clears spans, the selection,
// and any active drag. Span ids keep counting up; they are never reused.
func (t *Table) Reset() {
	t.cfg = DefaultConfig()
	t.spans = nil
	t.selection = nil
	t.drag = nil
	t.version++
}

func (t *Table) inBounds(row, col int) bool {
	return row >= 0 && row < t.cfg.RowCount && col >= 0 && col < t.cfg.ColumnCount
}

// IsOccupied reports whether (row, col) falls inside any span.
func (t *Table) IsOccupied(row, col int) bool {
	_, ok := t.SpanAt(row, col)
	return ok
}

// SpanAt returns the span covering (row, col), if any.
func (t *Table) SpanAt(row, col int) (Span, bool) {
	for _, sp := range t.spans {
		if sp.Contains(row, col) {
			return sp, true
		}
	}
	return Span{}, false
}

// Spans returns a copy of the span list in creation order.
func (t *Table) Spans() []Span {
	return append([]Span(nil), t.spans...)
}

// SetSpanContent replaces the content of the span with the given id.
func (t *Table) SetSpanContent(id int, content string) bool {
	i, ok := t.spanByID(id)
	if !ok {
		return false
	}
	if t.spans[i].Content == content {
		return true
	}
	t.spans[i].Content = content
	t.version++
	return true
}

// RemoveSpan deletes the span with the given id.
func (t *Table) RemoveSpan(id int) bool {
	for i, sp := range t.spans {
		if sp.ID == id {
			t.spans = append(t.spans[:i], t.spans[i+1:]...)
			t.version++
			return true
		}
	}
	return false
}

// ToggleCell implements the click protocol:
//
//   - clicking an occupied cell deletes the owning span and clears the
//     selection (click-to-unmerge);
//   - clicking a selected cell unselects it;
//   - clicking anything else selects it, and the moment the selection holds
//     two cells a span covering their bounding box is created and the
//     selection is cleared.
//
// Out-of-bounds coordinates are ignored.
func (t *Table) ToggleCell(row, col int) {
	if !t.inBounds(row, col) {
		return
	}

	if sp, ok := t.SpanAt(row, col); ok {
		t.RemoveSpan(sp.ID)
		t.selection = nil
		return
	}

	for i, c := range t.selection {
		if c.Row == row && c.Col == col {
			t.selection = append(t.selection[:i], t.selection[i+1:]...)
			t.version++
			return
		}
	}

	t.selection = append(t.selection, CellPos{Row: row, Col: col})
	if len(t.selection) >= 2 {
		t.mergeSelection()
	}
	t.version++
}

func (t *Table) mergeSelection() {
	sp := boundingSpan(t.selection)
	sp.ID = t.nextID
	t.nextID++
	if t.cfg.FillSampleText {
		sp.Content = fmt.Sprintf("Merged %d-%d", sp.RowStart+1, sp.ColStart+1)
	}
	t.spans = append(t.spans, sp)
	t.selection = nil
}

// Selected reports whether (row, col) is in the pending selection.
func (t *Table) Selected(row, col int) bool {
	for _, c := range t.selection {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}

func (t *Table) SelectionCount() int { return len(t.selection) }

func (t *Table) ClearSelection() {
	if len(t.selection) == 0 {
		return
	}
	t.selection = nil
	t.version++
}

func (t *Table) spanByID(id int) (int, bool) {
	for i, sp := range t.spans {
		if sp.ID == id {
			return i, true
		}
	}
	return 0, false
}
