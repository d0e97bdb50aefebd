package shell

// Signal is a named event with synchronously invoked handlers.
//
// The zero value is ready to use. Signal is not safe for concurrent use; it
// belongs to the goroutine that emits it.
type Signal struct {
	handlers []func()
}

// Connect registers fn. Handlers run in registration order.
func (s *Signal) Connect(fn func()) {
	if fn == nil {
		return
	}
	s.handlers = append(s.handlers, fn)
}

func (s *Signal) Emit() {
	for _, fn := range s.handlers {
		fn()
	}
}
