package registry

import (
	"log/slog"
	"sync"

	"github.com/vango-dev/sdui/internal/errors"
	"github.com/vango-dev/sdui/pkg/metrics"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Entry is one registered tag.
type Entry struct {
	Tag       string
	Component widget.Component
}

// Registry maps widget tags to decorated components.
type Registry struct {
	mu      sync.RWMutex
	index   map[string]int
	entries []Entry

	generation  uint64
	subscribers map[int]func(gen uint64)
	nextSub     int

	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithMetrics counts registrations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		index:       make(map[string]int),
		subscribers: make(map[int]func(uint64)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Register stores c under tag. Registering a tag again replaces the
// component and keeps the tag's original position in Entries.
func (r *Registry) Register(tag string, c widget.Component) error {
	if tag == "" {
		return errors.New("E208")
	}
	if c == nil {
		return errors.New("E208").WithDetailf("component for tag %q is nil", tag)
	}

	r.mu.Lock()
	i, exists := r.index[tag]
	if exists {
		r.entries[i].Component = c
	} else {
		r.index[tag] = len(r.entries)
		r.entries = append(r.entries, Entry{Tag: tag, Component: c})
	}
	r.mu.Unlock()

	if exists {
		r.logger.Debug("tag re-registered", "tag", tag)
	}
	r.metrics.Registered()
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(tag string, c widget.Component) {
	if err := r.Register(tag, c); err != nil {
		panic(err)
	}
}

// Lookup returns the component registered under tag.
func (r *Registry) Lookup(tag string) (widget.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[tag]
	if !ok {
		return nil, false
	}
	return r.entries[i].Component, true
}

// Entries returns a snapshot in first-registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Tags returns the registered tags in first-registration order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.Tag
	}
	return tags
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Generation returns the current snapshot generation.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// ForceUpdate starts a new snapshot generation and notifies subscribers
// so cached lookups are dropped. Subscribers run synchronously, in no
// particular order, outside the registry lock.
func (r *Registry) ForceUpdate() uint64 {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	subs := make([]func(uint64), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(gen)
	}
	return gen
}

// OnUpdate subscribes fn to ForceUpdate. The returned func unsubscribes.
func (r *Registry) OnUpdate(fn func(gen uint64)) (cancel func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subscribers[id] = fn
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subscribers, id)
			r.mu.Unlock()
		})
	}
}
