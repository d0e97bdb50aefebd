// Package buffer implements the plain-text document model behind the QuickPad
// edit area.
//
// Text is stored as lines of grapheme clusters. Coordinates are 0-based
// (Row, Col) with Col counted in clusters. Ranges are half-open: [Start, End).
package buffer
