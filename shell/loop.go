package shell

import (
	"context"
	"sync"
)

// Loop runs posted handlers one at a time on the goroutine calling Run.
//
// The queue is unbounded so Post never blocks: the terminal goroutine posts
// input while the loop may be parked inside a modal dialog waiting on it.
type Loop struct {
	mu    sync.Mutex
	queue []func(context.Context)

	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
}

// Post queues fn. Handlers run in FIFO order.
func (l *Loop) Post(fn func(ctx context.Context)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Dispatch queues a context-free handler. It has the shape collaborators use
// to deliver events onto the loop.
func (l *Loop) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	l.Post(func(context.Context) { fn() })
}

// Stop makes Run return after the handler in progress. Queued handlers are
// dropped.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Run drains the queue until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		default:
		}

		if fn, ok := l.next(); ok {
			fn(ctx)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case <-l.wake:
		}
	}
}

func (l *Loop) next() (func(context.Context), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}
