package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/sdui/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Development use only.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer renders VNode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	ew := &errWriter{w: w}
	r.renderNode(ew, node, 0)
	return ew.err
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) str(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (r *Renderer) renderNode(w *errWriter, node *vdom.VNode, depth int) {
	if node == nil || w.err != nil {
		return
	}

	switch node.Kind {
	case vdom.KindElement:
		r.renderElement(w, node, depth)
	case vdom.KindText:
		w.str(escapeHTML(node.Text))
	case vdom.KindFragment:
		for _, child := range node.Children {
			r.renderNode(w, child, depth)
		}
	case vdom.KindComponent:
		if node.Comp != nil {
			r.renderNode(w, node.Comp.Render(), depth)
		}
	case vdom.KindRaw:
		w.str(node.Text)
	default:
		w.err = fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w *errWriter, node *vdom.VNode, depth int) {
	tag := node.Tag
	if r.config.Pretty && depth > 0 {
		w.str(strings.Repeat(r.config.Indent, depth))
	}

	w.str("<" + tag)
	r.renderAttributes(w, node)
	w.str(">")

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			w.str("\n")
		}
		return
	}

	block := r.config.Pretty && !inlineElements[tag] && hasElementChild(node)
	if block {
		w.str("\n")
	}
	for _, child := range node.Children {
		r.renderNode(w, child, depth+1)
	}
	if block {
		w.str(strings.Repeat(r.config.Indent, depth))
	}

	w.str("</" + tag + ">")
	if r.config.Pretty {
		w.str("\n")
	}
}

func (r *Renderer) renderAttributes(w *errWriter, node *vdom.VNode) {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]
		if key == "key" || strings.HasPrefix(key, "_") {
			continue
		}
		if strings.HasPrefix(key, "on") && isHandler(value) {
			events = append(events, strings.ToLower(key[2:]))
			continue
		}

		name := key
		switch key {
		case "className":
			name = "class"
		case "htmlFor":
			name = "for"
		}

		if b, ok := value.(bool); ok && booleanAttrs[name] {
			if b {
				w.str(" " + name)
			}
			continue
		}

		s, ok := scalar(value)
		if !ok || s == "" {
			continue
		}
		w.str(" " + name + `="` + escapeAttr(s) + `"`)
	}

	// Markers let the client runtime bind listeners.
	for _, ev := range events {
		w.str(" data-on-" + ev + `="true"`)
	}
}

func hasElementChild(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind != vdom.KindText {
			return true
		}
	}
	return false
}

// isHandler reports whether value is a function or a wrapped function.
func isHandler(value any) bool {
	if _, ok := value.(vdom.ModifiedHandler); ok {
		return true
	}
	return value != nil && strings.HasPrefix(fmt.Sprintf("%T", value), "func")
}

// scalar converts attribute values to strings. Maps, slices and nodes are
// not renderable as attributes.
func scalar(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
