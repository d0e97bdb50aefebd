package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingBackend struct{}

func (failingBackend) ReadAll() (string, error) { return "", errors.New("no clipboard") }
func (failingBackend) WriteAll(string) error    { return errors.New("no clipboard") }

func TestClipboard_WriteNotifiesAndHasText(t *testing.T) {
	c := New(&Memory{}, nil)
	fired := 0
	c.OnChanged(func() { fired++ })

	require.False(t, c.HasText())
	require.NoError(t, c.WriteText("copied"))
	require.True(t, c.HasText())
	require.Equal(t, 1, fired)

	got, err := c.ReadText()
	require.NoError(t, err)
	require.Equal(t, "copied", got)

	// Writing the same content again is not a change.
	require.NoError(t, c.WriteText("copied"))
	require.Equal(t, 1, fired)
}

func TestClipboard_PollSeesExternalChangesOnce(t *testing.T) {
	mem := &Memory{}
	c := New(mem, nil)
	fired := 0
	c.OnChanged(func() { fired++ })

	require.False(t, c.Poll())
	require.NoError(t, mem.WriteAll("from another program"))
	require.False(t, c.HasText(), "external writes are seen on the next poll")
	require.True(t, c.Poll())
	require.True(t, c.HasText())
	require.False(t, c.Poll())
	require.Equal(t, 1, fired)
}

func TestClipboard_DispatchesHandlers(t *testing.T) {
	var queued []func()
	c := New(&Memory{}, func(fn func()) { queued = append(queued, fn) })
	fired := 0
	c.OnChanged(func() { fired++ })

	require.NoError(t, c.WriteText("x"))
	require.Zero(t, fired, "handlers run only when the dispatcher says so")
	require.Len(t, queued, 1)

	queued[0]()
	require.Equal(t, 1, fired)
}

func TestClipboard_BackendFailures(t *testing.T) {
	c := New(failingBackend{}, nil)
	require.False(t, c.HasText())
	require.False(t, c.Poll())
	require.Error(t, c.WriteText("x"))
}

func TestClipboard_WatchStopsWithContext(t *testing.T) {
	mem := &Memory{}
	changed := make(chan struct{}, 1)
	c := New(mem, nil)
	c.OnChanged(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Watch(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.NoError(t, mem.WriteAll("external"))
	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not report the change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

// countingBackend records reads so tests can tell cached answers apart.
type countingBackend struct {
	Memory
	reads int
}

func (b *countingBackend) ReadAll() (string, error) {
	b.reads++
	return b.Memory.ReadAll()
}

func TestClipboard_HasTextDoesNotReadBackend(t *testing.T) {
	b := &countingBackend{}
	require.NoError(t, b.WriteAll("seed"))
	c := New(b, nil)
	reads := b.reads

	for range 10 {
		require.True(t, c.HasText())
	}
	require.Equal(t, reads, b.reads)
}
