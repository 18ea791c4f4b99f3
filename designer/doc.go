// Package designer provides a Bubble Tea component for composing an HTML
// table visually.
//
// Click cells to select them; selecting a second cell merges the bounding
// box into one span. Click a merged cell to unmerge it. Drag a span to move
// it, drag its bottom-right corner to resize it, drag a column or row
// boundary to resize that axis, and drag an unmerged cell's bottom-right
// corner to resize its column and row together. Every mutation re-derives
// the HTML markup and CSS stylesheet, which can be copied to the clipboard
// or inspected in the preview pane.
package designer
