package editor

import "github.com/iw2rmb/quickpad/buffer"

// ChangeEvent describes one effective state change caused by input.
type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}

	TextChanged      bool
	SelectionChanged bool
}

type changeSnapshot struct {
	version     uint64
	textVersion uint64
	sel         buffer.Range
	selOK       bool
}

func snapshotOf(b *buffer.Buffer) changeSnapshot {
	s := changeSnapshot{version: b.Version(), textVersion: b.TextVersion()}
	s.sel, s.selOK = b.Selection()
	return s
}

func buildChangeEvent(b *buffer.Buffer, before changeSnapshot) (ChangeEvent, bool) {
	after := snapshotOf(b)
	if after.version == before.version {
		return ChangeEvent{}, false
	}
	ev := ChangeEvent{
		Version:          after.version,
		TextVersion:      after.textVersion,
		Cursor:           b.Cursor(),
		TextChanged:      after.textVersion != before.textVersion,
		SelectionChanged: after.selOK != before.selOK || after.sel != before.sel,
	}
	ev.Selection.Active = after.selOK
	ev.Selection.Range = after.sel
	return ev, true
}
