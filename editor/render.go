package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/quickpad/buffer"
	"github.com/iw2rmb/quickpad/internal/grapheme"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}
	width := m.contentWidth()

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		line := m.renderLine(row, cursor, sel, selOK)
		if width > 0 {
			line = ansi.Cut(line, m.xOffset, m.xOffset+width)
		}
		sb.WriteString(line)
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(row int, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	st := m.cfg.Style
	line := m.buf.Line(row)

	var sb strings.Builder
	cell := 0
	for col, g := range line {
		text, w := m.cellText(g, cell)
		style := st.Text
		if selOK && inRange(sel, buffer.Pos{Row: row, Col: col}) {
			style = st.Selection
		}
		if m.focused && cursor == (buffer.Pos{Row: row, Col: col}) {
			style = st.Cursor
		}
		sb.WriteString(style.Render(text))
		cell += w
	}
	if m.focused && cursor == (buffer.Pos{Row: row, Col: len(line)}) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// cellText returns the printable form of cluster g starting at cell, and its
// width in cells. Tabs expand to the next tab stop.
func (m *Model) cellText(g string, cell int) (string, int) {
	if g == "\t" {
		w := m.cfg.TabWidth - cell%m.cfg.TabWidth
		return strings.Repeat(" ", w), w
	}
	w := grapheme.Width(g)
	if w == 0 {
		// Control clusters render as a visible placeholder.
		return "·", 1
	}
	return g, w
}

func (m *Model) cursorCell() int {
	cur := m.buf.Cursor()
	cell := 0
	for _, g := range m.buf.Line(cur.Row)[:cur.Col] {
		_, w := m.cellText(g, cell)
		cell += w
	}
	return cell
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m *Model) contentWidth() int {
	return m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
}

func inRange(r buffer.Range, p buffer.Pos) bool {
	return buffer.ComparePos(p, r.Start) >= 0 && buffer.ComparePos(p, r.End) < 0
}

func gutterDigits(lines int) int {
	return max(len(fmt.Sprint(lines)), 1)
}
