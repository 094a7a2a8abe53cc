package toolkit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Target mirrors the element that emitted a change event.
type Target struct {
	Value   string
	Checked bool
}

// ChangeEvent is the argument of onChange for controls that report a
// native event object rather than a bare value.
type ChangeEvent struct {
	CurrentTarget Target
}

// itemAttr marks an item control so its group container can find it.
const itemAttr = "data-sdui-item"

// classFor returns the toolkit class for name merged with the caller's class.
func classFor(name string, props vdom.Props) vdom.Attr {
	return vdom.Class("sdui-"+name, props.GetString("class"))
}

// isCallback reports whether key names a native callback prop (onClick).
func isCallback(key string) bool {
	if len(key) < 3 || !strings.HasPrefix(key, "on") {
		return false
	}
	return unicode.IsUpper(rune(key[2]))
}

// rest returns the props a control forwards to its root element: scalars
// not consumed by the control. Callbacks, nodes and collections are dropped.
func rest(props vdom.Props, consumed ...string) vdom.Props {
	out := vdom.Props{}
	for k, v := range props {
		if k == "class" || k == "children" || isCallback(k) {
			continue
		}
		switch v.(type) {
		case string, bool, int, int64, float64:
			out[k] = v
		}
	}
	for _, k := range consumed {
		delete(out, k)
	}
	return out
}

// slot converts a slot prop (leftSection, label, title) into a node.
// Decorators resolve descriptor-valued slots before the control renders.
func slot(v any) *vdom.VNode {
	switch v.(type) {
	case nil:
		return nil
	case *vdom.VNode, string, bool, int, int64, float64:
		return widget.Primitive(v)
	default:
		return nil
	}
}

// section wraps a slot in a span with the given role class, or returns nil.
func section(name string, v any) *vdom.VNode {
	n := slot(v)
	if n == nil {
		return nil
	}
	return vdom.Span(vdom.Class("sdui-section", "sdui-section-"+name), n)
}

// forward binds a native callback to a DOM handler. adapt receives emit,
// which calls the callback with one argument, and returns the DOM handler.
// Client-side modifiers (debounce, throttle) on the callback move to the
// DOM handler.
func forward(callback any, adapt func(emit func(arg any)) any) any {
	if callback == nil {
		return nil
	}
	inner := callback
	mh, modified := callback.(vdom.ModifiedHandler)
	if modified {
		inner = mh.Unwrap()
	}
	h := adapt(func(arg any) { vdom.Invoke(inner, arg) })
	if modified {
		mh.Handler = h
		return mh
	}
	return h
}

// handler returns an EventHandler for the DOM event or nil when h is nil.
func handler(event string, h any) any {
	if h == nil {
		return nil
	}
	return vdom.EventHandler{Event: "on" + event, Handler: h}
}

// clicker binds a no-argument callback to onclick.
func clicker(callback any) any {
	return handler("click", forward(callback, func(emit func(any)) any {
		return func() { emit(nil) }
	}))
}

// stringValue renders a scalar prop as a string; nil is "".
func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

// stringList normalizes a multi-value prop to a string slice.
func stringList(v any) []string {
	switch s := v.(type) {
	case nil:
		return nil
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			out = append(out, stringValue(item))
		}
		return out
	case string:
		if s == "" {
			return nil
		}
		return []string{s}
	default:
		return []string{stringValue(s)}
	}
}

// number reads a numeric prop, accepting numeric strings.
func number(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return def
}

// boolProp reads a boolean prop; a present string other than "false" is true.
func boolProp(props vdom.Props, key string) bool {
	switch b := props[key].(type) {
	case bool:
		return b
	case string:
		return b != "false"
	}
	return false
}

// withChildren returns children, or the label/content prop as a single
// child when children is empty.
func withChildren(children []*vdom.VNode, props vdom.Props, key string) []*vdom.VNode {
	if len(children) > 0 {
		return children
	}
	if n := slot(props[key]); n != nil {
		return []*vdom.VNode{n}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
