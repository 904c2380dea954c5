// Package projection turns JSON records into rows of text cells.
//
// A Projector is compiled from a Spec, which lists the output columns (a
// label and a path each), the flatten paths and the rendering mode.  Each
// record goes through two steps:
//
//	record -> flatten_1 -> ... -> flatten_n -> project
//
// Flattening replaces a record by the elements of the list found at the
// flatten path, one stage after the other, so one record can produce zero
// or more rows.  Projecting resolves each column path and renders the value
// found there as a cell.
package projection
