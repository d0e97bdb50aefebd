package buffer

import (
	"strings"

	"github.com/iw2rmb/quickpad/internal/grapheme"
)

// InsertText inserts s at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteSelection removes the selected text. It reports whether anything was
// removed.
func (b *Buffer) DeleteSelection() bool {
	r, ok := b.Selection()
	if !ok {
		return false
	}
	return b.replace(r, "")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if b.DeleteSelection() {
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.replace(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		b.replace(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.DeleteSelection() {
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.replace(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(b.lines)-1:
		b.replace(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// replace swaps the text in r for s, leaves the cursor after the inserted
// text, and clears the selection. It reports whether the document changed.
func (b *Buffer) replace(r Range, s string) bool {
	r = NormalizeRange(Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)})
	if r.IsEmpty() && s == "" {
		return false
	}

	prefix := grapheme.Join(b.lines[r.Start.Row][:r.Start.Col])
	suffix := grapheme.Join(b.lines[r.End.Row][r.End.Col:])

	parts := strings.Split(s, "\n")
	replaced := make([][]string, len(parts))
	cursorCol := 0
	for i, part := range parts {
		if i == 0 {
			part = prefix + part
		}
		if i == len(parts)-1 {
			// Clusters may merge across the seam with suffix (combining marks),
			// so the cursor column is measured before the suffix is attached.
			cursorCol = len(grapheme.Split(part))
			part += suffix
		}
		replaced[i] = grapheme.Split(part)
	}

	lines := make([][]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+len(parts)-1)
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, replaced...)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines

	b.cursor = b.clampPos(Pos{Row: r.Start.Row + len(parts) - 1, Col: cursorCol})
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	return true
}
