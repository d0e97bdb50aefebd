package buffer

import (
	"strings"

	"github.com/iw2rmb/quickpad/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Version changes on every effective state change (text, cursor, selection).
// TextVersion changes only when the text itself is replaced or edited.
type Buffer struct {
	lines [][]string

	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState
}

func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range line {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

func (b *Buffer) Version() uint64     { return b.version }
func (b *Buffer) TextVersion() uint64 { return b.textVersion }
func (b *Buffer) Cursor() Pos         { return b.cursor }
func (b *Buffer) LineCount() int      { return len(b.lines) }

// Line returns the clusters of row. The slice must not be modified.
func (b *Buffer) Line(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// IsEmpty reports whether the document holds no text at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// SetText replaces the whole document, moving the cursor to the start and
// dropping the selection. It always counts as a text change, even when s
// equals the current text.
func (b *Buffer) SetText(s string) {
	b.lines = splitLines(s)
	b.cursor = Pos{}
	b.sel = selectionState{}
	b.version++
	b.textVersion++
}

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// HasSelection reports whether a non-empty selection is active.
func (b *Buffer) HasSelection() bool {
	_, ok := b.Selection()
	return ok
}

// SetSelection selects r and places the cursor at r.End. An empty r clears
// the selection.
func (b *Buffer) SetSelection(r Range) {
	anchor, end := b.clampPos(r.Start), b.clampPos(r.End)
	next := selectionState{active: anchor != end, anchor: anchor, end: end}
	if !next.active {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == end {
		return
	}
	b.sel = next
	b.cursor = end
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectAll selects the whole document. It is a no-op on an empty document.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	b.SetSelection(Range{End: Pos{Row: last, Col: len(b.lines[last])}})
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() (string, bool) {
	r, ok := b.Selection()
	if !ok {
		return "", false
	}
	return b.textInRange(r), true
}

func (b *Buffer) textInRange(r Range) string {
	r = NormalizeRange(r)
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		line := b.lines[row]
		start, end := 0, len(line)
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		sb.WriteString(grapheme.Join(line[start:end]))
	}
	return sb.String()
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
