package grid

// Dimension and sizing bounds. Out-of-range input is clamped, never
// rejected.
const (
	MinRows = 1
	MaxRows = 20
	MinCols = 1
	MaxCols = 20

	DefaultColumnWidthPx = 80
	DefaultRowHeightPx   = 50
	MinColumnWidthPx     = 40
	MinRowHeightPx       = 30

	MaxGapPx     = 50
	MaxPaddingPx = 50
	MaxRadiusPx  = 50
)

// BorderStyle selects the CSS line style applied to every cell border.
type BorderStyle int

const (
	BorderSolid BorderStyle = iota
	BorderDashed
	BorderNone
)

// String returns the CSS keyword for the style.
func (s BorderStyle) String() string {
	switch s {
	case BorderDashed:
		return "dashed"
	case BorderNone:
		return "none"
	default:
		return "solid"
	}
}

// Config holds table-wide presentation state.
//
// BorderColor and CellBackground are free-form hex strings; they flow into
// the generated markup and stylesheet unvalidated.
type Config struct {
	RowCount    int
	ColumnCount int

	GapPx          int
	CellPaddingPx  int
	BorderRadiusPx int

	BorderStyle    BorderStyle
	BorderColor    string
	CellBackground string

	// FillSampleText fills plain cells with positional labels and new
	// spans with a generated label.
	FillSampleText bool

	// Per-axis sizing. Lengths always track ColumnCount/RowCount; any
	// dimension change resets both to the uniform defaults.
	ColumnWidthsPx []int
	RowHeightsPx   []int
}

func DefaultConfig() Config {
	cfg := Config{
		RowCount:       3,
		ColumnCount:    3,
		GapPx:          2,
		CellPaddingPx:  8,
		BorderRadiusPx: 0,
		BorderStyle:    BorderSolid,
		BorderColor:    "#cccccc",
		CellBackground: "#ffffff",
		FillSampleText: true,
	}
	cfg.ColumnWidthsPx = uniformSizes(cfg.ColumnCount, DefaultColumnWidthPx)
	cfg.RowHeightsPx = uniformSizes(cfg.RowCount, DefaultRowHeightPx)
	return cfg
}

// normalizeConfig clamps every numeric field into its documented range and
// makes the sizing slices consistent with the dimensions. Slices whose
// length does not match are reset to uniform defaults.
func normalizeConfig(cfg Config) Config {
	if cfg.RowCount == 0 && cfg.ColumnCount == 0 {
		def := DefaultConfig()
		def.FillSampleText = cfg.FillSampleText
		if cfg.BorderColor != "" {
			def.BorderColor = cfg.BorderColor
		}
		if cfg.CellBackground != "" {
			def.CellBackground = cfg.CellBackground
		}
		return def
	}

	cfg.RowCount = clampInt(cfg.RowCount, MinRows, MaxRows)
	cfg.ColumnCount = clampInt(cfg.ColumnCount, MinCols, MaxCols)
	cfg.GapPx = clampInt(cfg.GapPx, 0, MaxGapPx)
	cfg.CellPaddingPx = clampInt(cfg.CellPaddingPx, 0, MaxPaddingPx)
	cfg.BorderRadiusPx = clampInt(cfg.BorderRadiusPx, 0, MaxRadiusPx)

	if len(cfg.ColumnWidthsPx) != cfg.ColumnCount {
		cfg.ColumnWidthsPx = uniformSizes(cfg.ColumnCount, DefaultColumnWidthPx)
	} else {
		cfg.ColumnWidthsPx = clampSizes(cfg.ColumnWidthsPx, MinColumnWidthPx)
	}
	if len(cfg.RowHeightsPx) != cfg.RowCount {
		cfg.RowHeightsPx = uniformSizes(cfg.RowCount, DefaultRowHeightPx)
	} else {
		cfg.RowHeightsPx = clampSizes(cfg.RowHeightsPx, MinRowHeightPx)
	}
	return cfg
}

func uniformSizes(n, px int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = px
	}
	return s
}

func clampSizes(sizes []int, min int) []int {
	out := make([]int, len(sizes))
	for i, px := range sizes {
		if px < min {
			px = min
		}
		out[i] = px
	}
	return out
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
