package designer

import "github.com/quale-dev/tablesmith/export"

// ChangeEvent describes one applied mutation and the artifacts derived from
// the resulting state.
type ChangeEvent struct {
	Version    uint64
	Markup     string
	Stylesheet string
}

func (m *Model) buildChangeEvent() ChangeEvent {
	return ChangeEvent{
		Version:    m.tbl.Version(),
		Markup:     export.Markup(m.tbl),
		Stylesheet: export.Stylesheet(m.tbl),
	}
}
