package vdom

import (
	"fmt"
	"strings"
)

// Invoke calls handler with arg, adapting to the handler's signature.
// Supported signatures: func(), func(any), func(string), func(bool),
// func(float64), func([]string). It returns false when the handler type is
// not recognized or arg cannot be converted.
func Invoke(handler any, arg any) bool {
	if mh, ok := handler.(ModifiedHandler); ok {
		handler = mh.Unwrap()
	}

	switch h := handler.(type) {
	case nil:
		return false

	// Simple click handler - no arguments
	case func():
		h()
		return true

	case func(any):
		h(arg)
		return true

	// Input/Change handler - string value
	case func(string):
		switch v := arg.(type) {
		case string:
			h(v)
		case nil:
			h("")
		default:
			h(fmt.Sprint(v))
		}
		return true

	case func(bool):
		b, ok := arg.(bool)
		if !ok && arg != nil {
			return false
		}
		h(b)
		return true

	case func(float64):
		switch v := arg.(type) {
		case float64:
			h(v)
		case int:
			h(float64(v))
		default:
			return false
		}
		return true

	case func([]string):
		switch v := arg.(type) {
		case []string:
			h(v)
		case nil:
			h(nil)
		default:
			return false
		}
		return true

	default:
		return false
	}
}

// Fire triggers the handler stored on node under the given event prop
// (e.g. "onclick" or "click").
func Fire(node *VNode, eventProp string, arg any) error {
	if node == nil {
		return fmt.Errorf("vdom: fire %s on nil node", eventProp)
	}
	if !strings.HasPrefix(eventProp, "on") {
		eventProp = "on" + eventProp
	}
	handler, ok := node.Props[eventProp]
	if !ok {
		return fmt.Errorf("vdom: <%s> has no %s handler", node.Tag, eventProp)
	}
	if !Invoke(handler, arg) {
		return fmt.Errorf("vdom: %s handler %T cannot take %T", eventProp, handler, arg)
	}
	return nil
}

// Walk visits node and its descendants depth-first, pre-order. Component
// nodes are rendered in place. Returning false from fn stops the walk.
func Walk(node *VNode, fn func(*VNode) bool) bool {
	if node == nil {
		return true
	}
	if !fn(node) {
		return false
	}
	if node.Kind == KindComponent && node.Comp != nil {
		return Walk(node.Comp.Render(), fn)
	}
	for _, child := range node.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node for which match returns true.
func Find(root *VNode, match func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node for which match returns true, in document order.
func FindAll(root *VNode, match func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByTag matches element nodes with the given tag.
func ByTag(tag string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByProp matches element nodes whose prop key equals value.
func ByProp(key string, value any) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Kind == KindElement && n.Props[key] == value
	}
}

// TextContent concatenates the text of node and all descendants.
func TextContent(node *VNode) string {
	var b strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}
