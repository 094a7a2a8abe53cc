package toolkit

import (
	"math"
	"strconv"
	"strings"

	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Text renders a paragraph, or a span when inline is set.
func Text(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	el := "p"
	if boolProp(props, "inline") || props.GetString("component") == "span" {
		el = "span"
	}
	return vdom.El(el, rest(props, "inline", "component"), classFor("text", props), withChildren(children, props, "content"))
}

// Title renders a heading whose level comes from order (1-6, default 2).
func Title(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	order := int(number(props["order"], 2))
	if order < 1 || order > 6 {
		order = 2
	}
	return vdom.El("h"+strconv.Itoa(order), rest(props, "order"), classFor("title", props), withChildren(children, props, "content"))
}

// Anchor renders a link.
func Anchor(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	attrs := rest(props)
	if props.GetString("target") == "_blank" {
		attrs["rel"] = "noopener noreferrer"
	}
	return vdom.A(attrs, classFor("anchor", props), withChildren(children, props, "label"), clicker(props["onClick"]))
}

// Code renders inline code, or a pre block when block is set.
func Code(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	body := vdom.Code(rest(props, "block"), classFor("code", props), withChildren(children, props, "content"))
	if boolProp(props, "block") {
		return vdom.Pre(vdom.Class("sdui-code-block"), body)
	}
	return body
}

// Kbd renders a keyboard key.
func Kbd(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Kbd(rest(props), classFor("kbd", props), withChildren(children, props, "content"))
}

// Blockquote renders a quotation with an optional cite line.
func Blockquote(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Blockquote(
		rest(props, "cite"),
		classFor("blockquote", props),
		section("icon", props["icon"]),
		withChildren(children, props, "content"),
		vdom.If(props["cite"] != nil, vdom.El("cite", slot(props["cite"]))),
	)
}

// Mark renders highlighted text.
func Mark(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Mark(rest(props), classFor("mark", props), withChildren(children, props, "content"))
}

// Highlight renders its text content with every case-insensitive
// occurrence of the highlight prop wrapped in <mark>.
func Highlight(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	var text string
	for _, c := range withChildren(children, props, "content") {
		text += vdom.TextContent(c)
	}
	needle := props.GetString("highlight")

	root := vdom.Span(rest(props, "highlight"), classFor("highlight", props))
	if needle == "" {
		root.Children = append(root.Children, vdom.Text(text))
		return root
	}
	lower, lneedle := strings.ToLower(text), strings.ToLower(needle)
	if len(lower) != len(text) || len(lneedle) != len(needle) {
		// Case folding changed byte offsets; match exactly instead.
		lower, lneedle = text, needle
	}
	for {
		i := strings.Index(lower, lneedle)
		if i < 0 {
			break
		}
		if i > 0 {
			root.Children = append(root.Children, vdom.Text(text[:i]))
		}
		root.Children = append(root.Children, vdom.Mark(text[i:i+len(needle)]))
		text, lower = text[i+len(needle):], lower[i+len(needle):]
	}
	if text != "" {
		root.Children = append(root.Children, vdom.Text(text))
	}
	return root
}

// List renders an unordered list, or an ordered one when type is "ordered".
func List(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	el := "ul"
	if props.GetString("type") == "ordered" {
		el = "ol"
	}
	return vdom.El(el, rest(props, "type"), classFor("list", props), children)
}

// ListItem renders a list item with an optional icon slot.
func ListItem(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Li(rest(props), classFor("listitem", props), section("icon", props["icon"]), withChildren(children, props, "content"))
}

// NumberFormatter renders value with optional prefix, suffix, thousand
// separator and fixed decimal scale.
func NumberFormatter(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	return vdom.Span(
		rest(props, "value", "prefix", "suffix", "thousandSeparator", "decimalScale"),
		classFor("numberformatter", props),
		FormatNumber(props),
	)
}

// FormatNumber applies the NumberFormatter props to props["value"].
// Non-numeric values are returned unchanged.
func FormatNumber(props vdom.Props) string {
	raw := props["value"]
	if raw == nil {
		return ""
	}
	f := number(raw, math.NaN())
	if math.IsNaN(f) {
		return stringValue(raw)
	}

	prec := -1
	if _, ok := props["decimalScale"]; ok {
		prec = int(number(props["decimalScale"], 0))
	}
	s := strconv.FormatFloat(math.Abs(f), 'f', prec, 64)

	sep := ""
	switch v := props["thousandSeparator"].(type) {
	case bool:
		if v {
			sep = ","
		}
	case string:
		sep = v
	}
	if sep != "" {
		whole, frac, hasFrac := strings.Cut(s, ".")
		var b strings.Builder
		for i, r := range whole {
			if i > 0 && (len(whole)-i)%3 == 0 {
				b.WriteString(sep)
			}
			b.WriteRune(r)
		}
		s = b.String()
		if hasFrac {
			s += "." + frac
		}
	}
	if f < 0 {
		s = "-" + s
	}
	return props.GetString("prefix") + s + props.GetString("suffix")
}
