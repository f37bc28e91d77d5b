// Package tui provides immediate-mode drawing primitives over a terminal cell buffer.
//
// Core abstraction is Region, a rectangular window into a []terminal.Cell. Drawing is
// relative to the region origin and clipped to its bounds. Regions are small values;
// layout helpers split one region into others.
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	header, body := tui.SplitVFixed(root, 1)
//	header.TextCenter(0, "title", fg, bg, terminal.AttrBold)
//
//	term.Flush(cells, w, h)
package tui
