package designer

import "github.com/quale-dev/tablesmith/grid"

// Terminal-to-pixel scale. One terminal column stands for 8px of table
// width, one terminal line for 25px of height, so the default 80x50 cell
// draws as a 10x2 interior.
const (
	pxPerTermCol  = 8
	pxPerTermLine = 25

	minInteriorCols  = 4
	minInteriorLines = 1
)

// The grid is drawn below a title line and a blank line.
const (
	gridTop  = 2
	gridLeft = 0
)

// gridLayout maps grid indexes to grid-local terminal rectangles.
// colX[i] is the x of the boundary line left of column i; colX[n] is the
// right edge. rowY is the same for rows. Boundary lines are one terminal
// cell wide and shared between neighbors.
type gridLayout struct {
	colX []int
	rowY []int
}

func layoutFor(t *grid.Table) gridLayout {
	cfg := t.Config()
	l := gridLayout{
		colX: make([]int, cfg.ColumnCount+1),
		rowY: make([]int, cfg.RowCount+1),
	}
	x := 0
	for i, w := range cfg.ColumnWidthsPx {
		x += 1 + interiorCols(w)
		l.colX[i+1] = x
	}
	y := 0
	for i, h := range cfg.RowHeightsPx {
		y += 1 + interiorLines(h)
		l.rowY[i+1] = y
	}
	return l
}

func interiorCols(px int) int {
	c := px / pxPerTermCol
	if c < minInteriorCols {
		c = minInteriorCols
	}
	return c
}

func interiorLines(px int) int {
	n := px / pxPerTermLine
	if n < minInteriorLines {
		n = minInteriorLines
	}
	return n
}

// width and height include the outer boundary lines.
func (l gridLayout) width() int  { return l.colX[len(l.colX)-1] + 1 }
func (l gridLayout) height() int { return l.rowY[len(l.rowY)-1] + 1 }

// boundaryColumn returns j when x sits on the boundary line colX[j], else -1.
func (l gridLayout) boundaryColumn(x int) int {
	for j, bx := range l.colX {
		if x == bx {
			return j
		}
	}
	return -1
}

func (l gridLayout) boundaryRow(y int) int {
	for j, by := range l.rowY {
		if y == by {
			return j
		}
	}
	return -1
}

// columnAt returns the column whose interior contains x, or -1.
func (l gridLayout) columnAt(x int) int {
	for i := 0; i < len(l.colX)-1; i++ {
		if x > l.colX[i] && x < l.colX[i+1] {
			return i
		}
	}
	return -1
}

func (l gridLayout) rowAt(y int) int {
	for i := 0; i < len(l.rowY)-1; i++ {
		if y > l.rowY[i] && y < l.rowY[i+1] {
			return i
		}
	}
	return -1
}
