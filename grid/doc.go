// Package grid implements the pure table model for tablesmith: grid-wide
// configuration, per-axis sizing, the merged-span registry, the transient
// selection set, and pixel-space drag sessions.
//
// Coordinates are 0-based (Row, Col). Span rectangles are half-open on both
// axes: [RowStart, RowEnd) x [ColStart, ColEnd).
package grid
