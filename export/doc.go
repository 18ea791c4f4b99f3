// Package export serializes a grid.Table into its two textual artifacts:
// an HTML markup document and a CSS stylesheet.
//
// Both generators are pure functions of the table state at call time: no
// caching, no side effects, byte-identical output for identical state.
package export
