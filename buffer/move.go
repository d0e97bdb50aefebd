package buffer

import "github.com/iw2rmb/quickpad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (doc start for MoveDoc)
	DirEnd  // line end (doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // extend the selection instead of clearing it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	// A plain left/right with an active selection collapses to its edge.
	if r, ok := b.Selection(); ok && !m.Extend && m.Unit == MoveGrapheme && (m.Dir == DirLeft || m.Dir == DirRight) {
		next := r.Start
		if m.Dir == DirRight {
			next = r.End
		}
		b.cursor = next
		b.sel = selectionState{}
		b.version++
		return
	}

	next := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	}
	return p
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, Col: len(b.lines[row-1])}
		}
		return p
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		if row < lastRow {
			return Pos{Row: row + 1}
		}
		return p
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return b.moveGrapheme(p, DirLeft)
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) {
			return b.moveGrapheme(p, DirRight)
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	case DirUp:
		if row == 0 {
			return Pos{}
		}
		return Pos{Row: row - 1, Col: min(col, len(b.lines[row-1]))}
	case DirDown:
		if row == len(b.lines)-1 {
			return Pos{Row: row, Col: len(b.lines[row])}
		}
		return Pos{Row: row + 1, Col: min(col, len(b.lines[row+1]))}
	}
	return p
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1
	switch dir {
	case DirHome, DirUp, DirLeft:
		return Pos{}
	case DirEnd, DirDown, DirRight:
		return Pos{Row: lastRow, Col: len(b.lines[lastRow])}
	}
	return p
}

// Word boundaries: skip whitespace, then skip non-whitespace. Newline is a
// hard boundary handled by the caller.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
