// Package dispatchtest provides a recording Dispatcher for tests.
package dispatchtest

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/sdui/pkg/widget"
)

// Recorder records dispatched events in order.
type Recorder struct {
	mu     sync.Mutex
	events []widget.Event
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Dispatch implements widget.Dispatcher.
func (r *Recorder) Dispatch(e widget.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []widget.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]widget.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Last returns the most recent event.
func (r *Recorder) Last() (widget.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return widget.Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset discards the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Context returns a render context dispatching to r. resolver may be nil.
func (r *Recorder) Context(resolver widget.Resolver) *widget.Context {
	return &widget.Context{Dispatcher: r, Resolver: resolver, Logger: slog.Default()}
}
