package grid

// CellPos addresses one base cell of the grid.
type CellPos struct {
	Row int
	Col int
}

// Span is a merged logical cell covering a rectangular range of base cells.
// The rectangle is half-open on both axes: [RowStart, RowEnd) x
// [ColStart, ColEnd), with RowStart < RowEnd and ColStart < ColEnd.
type Span struct {
	ID int

	RowStart int
	RowEnd   int
	ColStart int
	ColEnd   int

	Content string
}

func (s Span) Contains(row, col int) bool {
	return row >= s.RowStart && row < s.RowEnd && col >= s.ColStart && col < s.ColEnd
}

// Anchor is the top-left coordinate of the span, the only cell at which the
// span is emitted during serialization.
func (s Span) Anchor() CellPos {
	return CellPos{Row: s.RowStart, Col: s.ColStart}
}

func (s Span) Rows() int { return s.RowEnd - s.RowStart }
func (s Span) Cols() int { return s.ColEnd - s.ColStart }

// boundingSpan computes the axis-aligned bounding box of the given cells.
// A non-rectangular or disjoint set yields one rectangle covering every
// listed cell plus any cells between them; the merge protocol keeps that
// contract as-is.
func boundingSpan(cells []CellPos) Span {
	first := cells[0]
	sp := Span{
		RowStart: first.Row,
		RowEnd:   first.Row + 1,
		ColStart: first.Col,
		ColEnd:   first.Col + 1,
	}
	for _, c := range cells[1:] {
		if c.Row < sp.RowStart {
			sp.RowStart = c.Row
		}
		if c.Row+1 > sp.RowEnd {
			sp.RowEnd = c.Row + 1
		}
		if c.Col < sp.ColStart {
			sp.ColStart = c.Col
		}
		if c.Col+1 > sp.ColEnd {
			sp.ColEnd = c.Col + 1
		}
	}
	return sp
}
