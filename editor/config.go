package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	TabWidth     int // default: 4
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// Clipboard backs cut/copy/paste. Nil disables them.
	Clipboard Clipboard

	// OnChange fires after input changes text, cursor, or selection.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
