package tree

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/sdui/pkg/dispatch"
	"github.com/vango-dev/sdui/pkg/metrics"
	"github.com/vango-dev/sdui/pkg/registry"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// dispatcher is implemented by decorated components that report events
// and therefore need a component id.
type dispatcher interface {
	Dispatches() bool
}

// Walker resolves descriptor trees to nodes through a registry.
// It implements widget.Resolver so decorators can resolve inline
// elements with the same lookups.
type Walker struct {
	reg        *registry.Registry
	dispatcher widget.Dispatcher
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	newID      func() string

	mu     sync.Mutex
	gen    uint64
	cache  map[string]widget.Component
	warned map[string]bool
	cancel func()
}

// Option configures a Walker.
type Option func(*Walker)

// WithDispatcher sets where component events are reported.
func WithDispatcher(d widget.Dispatcher) Option {
	return func(w *Walker) { w.dispatcher = d }
}

// WithLogger sets the walker logger. It is also handed to components.
func WithLogger(l *slog.Logger) Option {
	return func(w *Walker) { w.logger = l }
}

// WithMetrics records render durations, lookups and dispatches.
func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Walker) { w.metrics = m }
}

// WithTracer sets the tracer used for render spans.
func WithTracer(t trace.Tracer) Option {
	return func(w *Walker) { w.tracer = t }
}

// WithIDGenerator replaces the uuid generator used for components
// without an id.
func WithIDGenerator(fn func() string) Option {
	return func(w *Walker) { w.newID = fn }
}

// New creates a walker over reg. The walker subscribes to reg's
// ForceUpdate signal; call Close to unsubscribe.
func New(reg *registry.Registry, opts ...Option) *Walker {
	w := &Walker{
		reg:    reg,
		cache:  make(map[string]widget.Component),
		warned: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	if w.tracer == nil {
		w.tracer = otel.Tracer("github.com/vango-dev/sdui/pkg/tree")
	}
	if w.newID == nil {
		w.newID = func() string { return uuid.NewString() }
	}
	w.dispatcher = dispatch.Counting(w.dispatcher, w.metrics)
	w.gen = reg.Generation()
	w.cancel = reg.OnUpdate(w.invalidate)
	return w
}

// Close unsubscribes the walker from registry updates.
func (w *Walker) Close() {
	w.cancel()
}

// Generation returns the registry generation the cache belongs to.
func (w *Walker) Generation() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen
}

func (w *Walker) invalidate(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen = gen
	clear(w.cache)
	clear(w.warned)
}

// Render resolves d and its subtree.
func (w *Walker) Render(ctx context.Context, d *widget.Descriptor) *vdom.VNode {
	if d == nil {
		return nil
	}
	_, span := w.tracer.Start(ctx, "tree.render", trace.WithAttributes(
		attribute.String("sdui.tag", d.Tag),
	))
	defer span.End()

	start := time.Now()
	defer func() { w.metrics.ObserveRender(time.Since(start)) }()

	wctx := &widget.Context{
		Dispatcher: w.dispatcher,
		Resolver:   w,
		Logger:     w.logger,
	}
	return w.node(wctx, d)
}

// RenderValue decodes v as a descriptor and renders it.
func (w *Walker) RenderValue(ctx context.Context, v any) (*vdom.VNode, error) {
	d, err := widget.Decode(v)
	if err != nil {
		return nil, err
	}
	return w.Render(ctx, d), nil
}

// Resolve implements widget.Resolver. Descriptors are rendered through
// the registry; anything else becomes text or nil.
func (w *Walker) Resolve(ctx *widget.Context, v any) *vdom.VNode {
	if !widget.IsDescriptor(v) {
		return widget.Primitive(v)
	}
	d, err := widget.Decode(v)
	if err != nil {
		ctx.Log().Warn("malformed widget descriptor", "error", err)
		return nil
	}
	return w.node(ctx, d)
}

func (w *Walker) node(ctx *widget.Context, d *widget.Descriptor) *vdom.VNode {
	children := make([]*vdom.VNode, 0, len(d.Children))
	for _, child := range d.Children {
		if n := w.Resolve(ctx, child); n != nil {
			children = append(children, n)
		}
	}

	c := w.lookup(d.Tag)
	if c == nil {
		return vdom.El(d.Tag, d.Props.Clone(), children)
	}

	props := d.Props
	if dc, ok := c.(dispatcher); ok && dc.Dispatches() && widget.ComponentID(props) == "" {
		props = props.Clone()
		props["id"] = w.newID()
	}
	return w.render(ctx, d.Tag, c, props, children)
}

// render contains a panicking component to its own element.
func (w *Walker) render(ctx *widget.Context, tag string, c widget.Component, props vdom.Props, children []*vdom.VNode) (n *vdom.VNode) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Log().Error("widget render failed", "tag", tag, "error", fmt.Sprint(r))
			n = nil
		}
	}()
	return c.Render(ctx, props, children)
}

// lookup returns the component for tag, or nil for unknown tags.
// Results are cached until the next registry generation; a miss is
// logged once per tag per generation.
func (w *Walker) lookup(tag string) widget.Component {
	w.mu.Lock()
	c, cached := w.cache[tag]
	gen := w.gen
	w.mu.Unlock()
	if cached {
		w.metrics.Lookup(c != nil)
		return c
	}

	c, ok := w.reg.Lookup(tag)
	w.metrics.Lookup(ok)

	if w.store(tag, c, gen) {
		w.logger.Warn("unknown widget tag", "tag", tag, "code", "E201")
	}
	return c
}

// store caches c for tag when gen is still current and reports whether
// a miss should be logged. A lookup that raced a ForceUpdate is not
// cached: the next render looks the tag up again.
func (w *Walker) store(tag string, c widget.Component, gen uint64) (warn bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gen != gen || w.reg.Generation() != gen {
		return false
	}
	w.cache[tag] = c
	warn = c == nil && !w.warned[tag]
	if warn {
		w.warned[tag] = true
	}
	return warn
}
