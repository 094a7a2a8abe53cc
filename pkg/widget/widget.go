package widget

import (
	"log/slog"

	"github.com/vango-dev/sdui/pkg/vdom"
)

// Event is one user-driven event reported to the runtime.
type Event struct {
	ComponentID string
	Name        string
	Value       any
	HasValue    bool
}

// Dispatcher reports events to the external runtime. Dispatch is
// fire-and-forget: it returns nothing and the bridge never retries.
type Dispatcher interface {
	Dispatch(Event)
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(Event)

// Dispatch implements Dispatcher.
func (f DispatchFunc) Dispatch(e Event) { f(e) }

// Resolver turns a nested descriptor value into a node.
// Values that are not descriptors are returned as text nodes (or nil).
type Resolver interface {
	Resolve(ctx *Context, v any) *vdom.VNode
}

// Component renders resolved props and children.
type Component interface {
	Render(ctx *Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(ctx *Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode

// Render implements Component.
func (f ComponentFunc) Render(ctx *Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return f(ctx, props, children)
}

// Context is the per-render environment passed to components.
// A nil *Context is valid: it dispatches nowhere and resolves only text.
type Context struct {
	Dispatcher Dispatcher
	Resolver   Resolver
	Logger     *slog.Logger
}

// Dispatch forwards e to the configured dispatcher, if any.
func (c *Context) Dispatch(e Event) {
	if c == nil || c.Dispatcher == nil {
		return
	}
	c.Dispatcher.Dispatch(e)
}

// Resolve resolves a nested descriptor value. Without a Resolver only
// primitives and nodes are handled.
func (c *Context) Resolve(v any) *vdom.VNode {
	if c != nil && c.Resolver != nil {
		return c.Resolver.Resolve(c, v)
	}
	return Primitive(v)
}

// Log returns the context logger, falling back to slog.Default.
func (c *Context) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// ComponentID returns the id prop that identifies a component to the runtime.
func ComponentID(props vdom.Props) string {
	return props.GetString("id")
}

// Omit returns a copy of props without the given keys.
func Omit(props vdom.Props, keys ...string) vdom.Props {
	out := props.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
