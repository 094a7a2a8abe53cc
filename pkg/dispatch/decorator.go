// Package dispatch adapts concrete components to the declarative event
// contract of the server-driven runtime.
//
// A decorator wraps a widget.Component. At render time it resolves
// inline-element props, installs the native callback named by its Config
// and maps the declarative value onto the component's value attribute.
// The installed callbacks report widget.Events through the render
// Context's Dispatcher. Reporting is fire-and-forget: nothing is retried
// and nothing waits on delivery.
package dispatch

import (
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Decorator is a component wrapped by one decorator kind.
type Decorator struct {
	kind  Kind
	cfg   Config
	inner widget.Component
}

func decorate(kind Kind, c widget.Component, cfg Config) *Decorator {
	return &Decorator{kind: kind, cfg: cfg.withDefaults(kind), inner: c}
}

// Inline wraps c so the named props are resolved as nested descriptors.
func Inline(c widget.Component, attrs ...string) *Decorator {
	return decorate(KindInline, c, Config{InlineElementAttrs: attrs})
}

// Event wraps an action-only component: firing cfg.EventSourceAttr
// reports {componentId, eventName} with no value.
func Event(c widget.Component, cfg Config) *Decorator {
	return decorate(KindEvent, c, cfg)
}

// Value wraps a value-bearing component: firing cfg.EventSourceAttr with x
// reports {componentId, eventName, ValueExtractor(x)}, and the declarative
// "value" prop is handed to the component as cfg.ValueAttr.
func Value(c widget.Component, cfg Config) *Decorator {
	return decorate(KindValue, c, cfg)
}

// InputValue is Value for free-text inputs. cfg.Commit selects whether
// the text is reported on every change, on blur, or debounced.
func InputValue(c widget.Component, cfg Config) *Decorator {
	return decorate(KindInputValue, c, cfg)
}

// Callbacks wraps a component taking formatting callbacks. Each prop in
// cfg.CallbackAttrs that does not hold a function is replaced: a string
// naming a built-in formatter selects it, anything else gets the
// configured default.
func Callbacks(c widget.Component, cfg Config) *Decorator {
	return decorate(KindCallback, c, cfg)
}

// Kind returns the decorator kind.
func (d *Decorator) Kind() Kind { return d.kind }

// Config returns the effective configuration, defaults applied.
func (d *Decorator) Config() Config { return d.cfg }

// Unwrap returns the wrapped component.
func (d *Decorator) Unwrap() widget.Component { return d.inner }

// Dispatches reports whether the component reports events and therefore
// needs a component id.
func (d *Decorator) Dispatches() bool {
	switch d.kind {
	case KindEvent, KindValue, KindInputValue:
		return true
	}
	return false
}

// Render implements widget.Component.
func (d *Decorator) Render(ctx *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	props = props.Clone()
	ResolveInline(ctx, props, d.cfg.InlineElementAttrs)

	id := widget.ComponentID(props)
	switch d.kind {
	case KindEvent:
		name := d.cfg.EventName
		props[d.cfg.EventSourceAttr] = func(any) {
			ctx.Dispatch(widget.Event{ComponentID: id, Name: name})
		}

	case KindValue:
		d.controlValue(props)
		props[d.cfg.EventSourceAttr] = d.reporter(ctx, id)

	case KindInputValue:
		d.controlValue(props)
		report := d.reporter(ctx, id)
		switch d.cfg.Commit {
		case CommitBlur:
			props["onBlur"] = report
		case CommitDebounce:
			props[d.cfg.EventSourceAttr] = vdom.Debounce(d.cfg.Debounce, report)
		default:
			props[d.cfg.EventSourceAttr] = report
		}

	case KindCallback:
		for attr, def := range d.cfg.CallbackAttrs {
			props[attr] = callback(props[attr], def)
		}
	}

	return d.inner.Render(ctx, props, children)
}

// controlValue moves the declarative value onto the native value attribute.
// A value attr set explicitly wins, and a non-bool value of a checked
// control is its item identity within a group, so both stay in place.
func (d *Decorator) controlValue(props vdom.Props) {
	attr := d.cfg.ValueAttr
	if attr == "value" {
		return
	}
	v, ok := props["value"]
	if !ok {
		return
	}
	if _, set := props[attr]; set {
		return
	}
	if _, isBool := v.(bool); attr == "checked" && !isBool {
		return
	}
	props[attr] = v
	delete(props, "value")
}

// reporter returns the native callback reporting an extracted value.
func (d *Decorator) reporter(ctx *widget.Context, id string) func(any) {
	name, extract := d.cfg.EventName, d.cfg.ValueExtractor
	return func(arg any) {
		ctx.Dispatch(widget.Event{
			ComponentID: id,
			Name:        name,
			Value:       extract(arg),
			HasValue:    true,
		})
	}
}

// callback returns the function for a callback prop holding v.
func callback(v any, def Formatter) any {
	switch f := v.(type) {
	case func(any) string, func(float64) string:
		return f
	case string:
		if named, ok := Named(f); ok {
			return named
		}
	}
	if def == nil {
		return Formatter(IdentityFormat)
	}
	return def
}

// ResolveInline replaces each named prop holding a nested descriptor, or a
// list containing descriptors, with its rendered node. Other values are
// left for the component.
func ResolveInline(ctx *widget.Context, props vdom.Props, attrs []string) {
	for _, attr := range attrs {
		v, ok := props[attr]
		if !ok || v == nil {
			continue
		}
		if n := resolveInline(ctx, v); n != nil {
			props[attr] = n
		}
	}
}

func resolveInline(ctx *widget.Context, v any) *vdom.VNode {
	if widget.IsDescriptor(v) {
		return ctx.Resolve(v)
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	nested := false
	for _, item := range list {
		if widget.IsDescriptor(item) {
			nested = true
			break
		}
	}
	if !nested {
		return nil
	}
	frag := vdom.Fragment()
	for _, item := range list {
		if n := ctx.Resolve(item); n != nil {
			frag.Children = append(frag.Children, n)
		}
	}
	return frag
}
