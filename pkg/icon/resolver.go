package icon

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/sdui/internal/errors"
	"github.com/vango-dev/sdui/pkg/metrics"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// State is the lifecycle of one canonical name's lookup.
type State int

const (
	Pending State = iota // Lookup in flight
	Ready                // Icon found
	Missing              // Module has no such icon
	Failed               // Lookup returned an error, panicked or timed out
)

// String returns the state name, also used as the metrics outcome label.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Ready:
		return "found"
	case Missing:
		return "missing"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Settled reports whether the lookup has finished.
func (s State) Settled() bool { return s != Pending }

// DefaultFallback is the built-in icon shown after a miss or failure.
const DefaultFallback = "IconQuestionMark"

// DefaultTimeout bounds a single module lookup.
const DefaultTimeout = 2 * time.Second

type entry struct {
	state   State
	factory Factory
	err     error
	done    chan struct{}
}

// Resolver maps icon names to nodes, loading each canonical name once.
type Resolver struct {
	module      Module
	prefix      string
	timeout     time.Duration
	placeholder Factory
	fallback    Factory
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	onSettle    []func(canonical string, state State)
	// unknownFallback is a WithFallbackName argument missing from the set.
	unknownFallback string

	mu      sync.Mutex
	entries map[string]*entry
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPrefix sets the canonical name prefix (default "Icon").
func WithPrefix(prefix string) Option {
	return func(r *Resolver) { r.prefix = prefix }
}

// WithTimeout bounds each module lookup.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) { r.timeout = d }
}

// WithPlaceholder replaces the pending placeholder.
func WithPlaceholder(f Factory) Option {
	return func(r *Resolver) { r.placeholder = f }
}

// WithFallback replaces the icon rendered for misses and failures.
func WithFallback(f Factory) Option {
	return func(r *Resolver) { r.fallback = f }
}

// WithFallbackName uses a built-in icon as the fallback. Unknown names
// keep the default question mark and are logged when the resolver is built.
func WithFallbackName(canonical string) Option {
	return func(r *Resolver) {
		paths, ok := outline[canonical]
		if !ok {
			r.unknownFallback = canonical
			return
		}
		r.fallback = SVG(canonical, paths...)
		r.unknownFallback = ""
	}
}

// WithLogger sets the logger used for misses and failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithMetrics records settled lookups.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// WithTracer sets the tracer used for lookup spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Resolver) { r.tracer = t }
}

// WithOnSettle registers a callback run after a lookup settles, typically
// to schedule a re-render. It runs on the lookup goroutine.
func WithOnSettle(fn func(canonical string, state State)) Option {
	return func(r *Resolver) { r.onSettle = append(r.onSettle, fn) }
}

// NewResolver creates a Resolver over module.
func NewResolver(module Module, opts ...Option) *Resolver {
	r := &Resolver{
		module:      module,
		prefix:      DefaultPrefix,
		timeout:     DefaultTimeout,
		placeholder: placeholder,
		fallback:    SVG(DefaultFallback, outline[DefaultFallback]...),
		entries:     make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.unknownFallback != "" {
		r.logger.Warn("unknown fallback icon, keeping default",
			"icon", r.unknownFallback,
			"default", DefaultFallback,
		)
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer("github.com/vango-dev/sdui/pkg/icon")
	}
	return r
}

// Canonical normalizes name with the resolver's prefix.
func (r *Resolver) Canonical(name string) string {
	return Canonical(name, r.prefix)
}

// Resolve returns the node for name: nil for an empty name, the placeholder
// while the lookup is pending, the icon once found, and the fallback after
// a miss or failure. props are passed to the icon without "name".
// Resolve never blocks on the module.
func (r *Resolver) Resolve(name string, props vdom.Props) *vdom.VNode {
	canonical := r.Canonical(name)
	if canonical == "" {
		return nil
	}

	e := r.acquire(canonical)
	r.mu.Lock()
	state, factory := e.state, e.factory
	r.mu.Unlock()

	pass := widget.Omit(props, "name")
	switch state {
	case Pending:
		return r.placeholder(pass)
	case Ready:
		return factory(pass)
	default:
		return r.fallback(pass)
	}
}

// State returns the lookup state for name without starting a lookup.
// Names never requested report Pending.
func (r *Resolver) State(name string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[r.Canonical(name)]; ok {
		return e.state
	}
	return Pending
}

// Wait starts the lookup for name if needed and blocks until it settles or
// ctx is done.
func (r *Resolver) Wait(ctx context.Context, name string) (State, error) {
	canonical := r.Canonical(name)
	if canonical == "" {
		return Missing, nil
	}
	e := r.acquire(canonical)
	select {
	case <-e.done:
		r.mu.Lock()
		defer r.mu.Unlock()
		return e.state, e.err
	case <-ctx.Done():
		return Pending, ctx.Err()
	}
}

// Forget drops the cached result for name so the next request looks it up
// again. An in-flight lookup still completes but its result is discarded.
func (r *Resolver) Forget(name string) {
	r.mu.Lock()
	delete(r.entries, r.Canonical(name))
	r.mu.Unlock()
}

// acquire returns the entry for canonical, starting its lookup on first use.
func (r *Resolver) acquire(canonical string) *entry {
	r.mu.Lock()
	e, ok := r.entries[canonical]
	if !ok {
		e = &entry{state: Pending, done: make(chan struct{})}
		r.entries[canonical] = e
	}
	r.mu.Unlock()

	if !ok {
		go r.load(canonical, e)
	}
	return e
}

func (r *Resolver) load(canonical string, e *entry) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	ctx, span := r.tracer.Start(ctx, "icon.lookup",
		trace.WithAttributes(attribute.String("icon", canonical)))
	defer span.End()

	factory, err := r.lookup(ctx, canonical)

	state := Ready
	switch {
	case err == nil && factory == nil, stderrors.Is(err, ErrNotFound):
		state, err = Missing, nil
	case err != nil:
		state = Failed
	}

	r.mu.Lock()
	e.state, e.factory, e.err = state, factory, err
	current := r.entries[canonical] == e
	r.mu.Unlock()

	span.SetAttributes(attribute.String("outcome", state.String()))
	switch state {
	case Missing:
		r.logger.Warn("icon not found", "icon", canonical)
	case Failed:
		span.RecordError(err)
		span.SetStatus(codes.Error, "icon load failed")
		r.logger.Error("icon load failed", "icon", canonical, "error", err)
	}
	r.metrics.IconResolved(state.String())
	close(e.done)

	if !current {
		return
	}
	for _, fn := range r.onSettle {
		fn(canonical, state)
	}
}

// lookup calls the module, converting panics into load errors.
func (r *Resolver) lookup(ctx context.Context, canonical string) (f Factory, err error) {
	defer func() {
		if p := recover(); p != nil {
			f = nil
			err = errors.New("E203").WithDetailf("%s: panic: %v", canonical, p)
		}
	}()
	if r.module == nil {
		return nil, ErrNotFound
	}
	f, err = r.module.Lookup(ctx, canonical)
	if err != nil && !stderrors.Is(err, ErrNotFound) {
		err = errors.New("E203").WithDetail(canonical).Wrap(err)
	}
	return f, err
}

// Component returns the widget rendered for the "icon" tag. Its name prop
// is either an icon name or a nested descriptor.
func (r *Resolver) Component() widget.Component {
	return widget.ComponentFunc(func(ctx *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
		return r.Node(ctx, props["name"], props)
	})
}

// Node renders an icon-valued attribute: a string resolves through the
// module, a descriptor or node goes through ctx.
func (r *Resolver) Node(ctx *widget.Context, value any, props vdom.Props) *vdom.VNode {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return r.Resolve(v, props)
	case *vdom.VNode:
		return v
	default:
		if widget.IsDescriptor(v) {
			return ctx.Resolve(v)
		}
		ctx.Log().Warn("unsupported icon value", "type", fmt.Sprintf("%T", v))
		return nil
	}
}

// placeholder is the stable graphic shown while a lookup is pending.
func placeholder(props vdom.Props) *vdom.VNode {
	size := sizeProp(props["size"], "24")
	return vdom.Svg(
		vdom.Attr{Key: "xmlns", Value: "http://www.w3.org/2000/svg"},
		vdom.Attr{Key: "width", Value: size},
		vdom.Attr{Key: "height", Value: size},
		vdom.ViewBox("0 0 24 24"),
		vdom.Class("icon", "icon-placeholder", props.GetString("class")),
		vdom.Data("icon-state", "pending"),
		vdom.AriaBusy(true),
		vdom.El("rect",
			vdom.Attr{Key: "x", Value: "3"},
			vdom.Attr{Key: "y", Value: "3"},
			vdom.Attr{Key: "width", Value: "18"},
			vdom.Attr{Key: "height", Value: "18"},
			vdom.Attr{Key: "rx", Value: "4"},
			vdom.Attr{Key: "fill", Value: "currentColor"},
			vdom.Attr{Key: "opacity", Value: "0.15"},
		),
	)
}
