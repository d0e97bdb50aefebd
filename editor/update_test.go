package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quickpad/buffer"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Col: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if got := m.Text(); got != "a b" {
		t.Fatalf("text after space: got %q, want %q", got, "a b")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text while blurred: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Text: "hello", Clipboard: clip})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if clip.s != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", clip.s, "he")
	}
	if got := m.Text(); got != "hello" {
		t.Fatalf("copy must not change text, got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}

	clip.s = "a\r\nb"
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Text(); got != "a\nbllo" {
		t.Fatalf("text after paste: got %q, want %q", got, "a\nbllo")
	}
}

func TestUpdate_DisabledBindingDoesNotFire(t *testing.T) {
	clip := &memClipboard{s: "zz"}
	m := New(Config{Text: "ab", Clipboard: clip})
	km := m.KeyMap()
	km.Paste.SetEnabled(false)
	m = m.SetKeyMap(km)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Text(); got != "ab" {
		t.Fatalf("disabled paste changed text: got %q", got)
	}
}

func TestUpdate_SelectAll(t *testing.T) {
	m := New(Config{Text: "one\ntwo"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if !m.HasSelection() {
		t.Fatalf("expected selection after ctrl+a")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Text(); got != "x" {
		t.Fatalf("typing over selection: got %q, want %q", got, "x")
	}
}

func TestUpdate_OnChangeReportsTextAndSelection(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "ab",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 || events[0].TextChanged || events[0].SelectionChanged {
		t.Fatalf("cursor move event: got %+v", events)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	if len(events) != 2 || !events[1].SelectionChanged || !events[1].Selection.Active {
		t.Fatalf("selection event: got %+v", events)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 || !events[2].TextChanged || !events[2].SelectionChanged {
		t.Fatalf("typing over selection event: got %+v", events)
	}

	// Host edits and unbound keys stay silent.
	n := len(events)
	m.SetText("host")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome, Alt: true})
	if len(events) != n {
		t.Fatalf("host edit fired OnChange: got %d events, want %d", len(events), n)
	}
}
