// Package clipboard backs the edit area's cut/copy/paste with the system
// clipboard and reports content changes made by other programs.
package clipboard

import (
	"context"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/quickpad/shell"
)

// DefaultPollInterval is how often Watch samples the system clipboard.
const DefaultPollInterval = 500 * time.Millisecond

// Backend reads and writes raw clipboard text.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Supported reports whether a system clipboard utility is available.
func Supported() bool { return !clipboard.Unsupported }

// Clipboard adapts a Backend to both the editor (ReadText/WriteText) and the
// shell (HasText/OnChanged).
//
// ReadText and WriteText may be called from any goroutine. OnChanged
// handlers are delivered through the dispatch function given to New, so they
// run wherever the host wants its events.
type Clipboard struct {
	backend  Backend
	dispatch func(func())

	mu      sync.Mutex
	last    string
	changed shell.Signal
}

// New returns a clipboard over backend. A nil backend selects the system
// clipboard when one is available and an in-memory one otherwise. A nil
// dispatch runs handlers inline.
func New(backend Backend, dispatch func(func())) *Clipboard {
	if backend == nil {
		if Supported() {
			backend = systemBackend{}
		} else {
			backend = &Memory{}
		}
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	c := &Clipboard{backend: backend, dispatch: dispatch}
	c.last, _ = backend.ReadAll()
	return c
}

func (c *Clipboard) ReadText() (string, error) {
	return c.backend.ReadAll()
}

// WriteText stores s and notifies listeners immediately rather than waiting
// for the next poll.
func (c *Clipboard) WriteText(s string) error {
	if err := c.backend.WriteAll(s); err != nil {
		return err
	}
	c.observe(s)
	return nil
}

// HasText reports whether the last observed content is non-empty. It never
// touches the backend; Watch and WriteText keep the observation current.
func (c *Clipboard) HasText() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last != ""
}

// OnChanged registers fn for content changes. Registration must happen
// before Watch starts.
func (c *Clipboard) OnChanged(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changed.Connect(fn)
}

// Poll samples the backend once and notifies listeners if the content moved
// since the last sample. It reports whether a change was seen.
func (c *Clipboard) Poll() bool {
	s, err := c.backend.ReadAll()
	if err != nil {
		return false
	}
	return c.observe(s)
}

// Watch polls until ctx is done.
func (c *Clipboard) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Poll()
		}
	}
}

func (c *Clipboard) observe(s string) bool {
	c.mu.Lock()
	if s == c.last {
		c.mu.Unlock()
		return false
	}
	c.last = s
	c.mu.Unlock()

	c.dispatch(c.changed.Emit)
	return true
}

// Memory is an in-process Backend.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
