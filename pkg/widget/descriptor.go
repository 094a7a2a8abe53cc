package widget

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/sdui/internal/errors"
	"github.com/vango-dev/sdui/pkg/vdom"
)

// Descriptor is the abstract description of one UI element.
// Children holds *Descriptor values and primitives (string, numbers, bool).
type Descriptor struct {
	Tag      string
	Props    vdom.Props
	Children []any
}

// New builds a descriptor; a nil props map is replaced by an empty one.
func New(tag string, props vdom.Props, children ...any) *Descriptor {
	if props == nil {
		props = vdom.Props{}
	}
	return &Descriptor{Tag: tag, Props: props, Children: children}
}

// IsDescriptor reports whether v is a descriptor or decodes as one.
func IsDescriptor(v any) bool {
	switch d := v.(type) {
	case *Descriptor:
		return d != nil
	case Descriptor:
		return true
	case map[string]any:
		_, ok := d["tag"].(string)
		return ok
	}
	return false
}

// Decode converts a decoded JSON or YAML value into a Descriptor.
// The accepted shape is {"tag": string, "props": object, "children": array}.
func Decode(v any) (*Descriptor, error) {
	switch d := v.(type) {
	case *Descriptor:
		if d == nil {
			return nil, errors.New("E204").WithDetail("nil descriptor")
		}
		return d, nil
	case Descriptor:
		return &d, nil
	case map[string]any:
		return decodeMap(d)
	default:
		return nil, errors.New("E204").WithDetailf("expected an object, got %T", v)
	}
}

func decodeMap(m map[string]any) (*Descriptor, error) {
	tag, ok := m["tag"].(string)
	if !ok || tag == "" {
		return nil, errors.New("E204").WithDetail(`missing "tag"`)
	}

	d := &Descriptor{Tag: tag, Props: vdom.Props{}}
	if raw, ok := m["props"]; ok && raw != nil {
		props, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.New("E204").WithDetailf("%s: props must be an object, got %T", tag, raw)
		}
		for k, v := range props {
			d.Props[k] = v
		}
	}

	if raw, ok := m["children"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			// A single child is accepted as shorthand.
			list = []any{raw}
		}
		for i, child := range list {
			if IsDescriptor(child) {
				cd, err := Decode(child)
				if err != nil {
					return nil, fmt.Errorf("%s: child %d: %w", tag, i, err)
				}
				d.Children = append(d.Children, cd)
				continue
			}
			d.Children = append(d.Children, child)
		}
	}
	return d, nil
}

// DecodeJSON parses a JSON document into a Descriptor.
func DecodeJSON(data []byte) (*Descriptor, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.New("E204").Wrap(err)
	}
	return Decode(v)
}

// DecodeYAML parses a YAML document into a Descriptor.
func DecodeYAML(data []byte) (*Descriptor, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, errors.New("E204").Wrap(err)
	}
	return Decode(v)
}

// Primitive converts a non-descriptor child into a node.
// nil yields nil; nodes pass through; scalars become text.
func Primitive(v any) *vdom.VNode {
	switch p := v.(type) {
	case nil:
		return nil
	case *vdom.VNode:
		return p
	case string:
		return vdom.Text(p)
	case bool:
		return vdom.Text(strconv.FormatBool(p))
	case float64:
		return vdom.Text(strconv.FormatFloat(p, 'f', -1, 64))
	case int:
		return vdom.Text(strconv.Itoa(p))
	default:
		return vdom.Text(fmt.Sprint(p))
	}
}
