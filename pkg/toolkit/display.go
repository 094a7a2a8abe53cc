package toolkit

import (
	"strconv"
	"strings"

	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Badge renders a small status label with optional sections.
func Badge(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Span(
		rest(props),
		classFor("badge", props),
		section("left", props["leftSection"]),
		vdom.Span(vdom.Class("sdui-badge-label"), withChildren(children, props, "label")),
		section("right", props["rightSection"]),
	)
}

// Avatar renders an image when src is set and initials otherwise.
func Avatar(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	root := vdom.Div(rest(props, "src", "alt", "name"), classFor("avatar", props))
	if src := props.GetString("src"); src != "" {
		root.Children = append(root.Children, vdom.Img(vdom.Src(src), vdom.Alt(props.GetString("alt"))))
		return root
	}
	if len(children) > 0 {
		root.Children = append(root.Children, children...)
		return root
	}
	root.Children = append(root.Children, vdom.Span(vdom.AriaLabel(props.GetString("name")), initials(props.GetString("name"))))
	return root
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// Image renders an <img>; fallbackSrc is used when src is empty.
func Image(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	attrs := rest(props, "fallbackSrc")
	if props.GetString("src") == "" {
		attrs["src"] = props.GetString("fallbackSrc")
	}
	return vdom.Img(attrs, classFor("image", props))
}

// Table renders its children, or a head/body table from the data prop:
// {"head": [..], "body": [[..], ..]}.
func Table(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	root := vdom.Table(rest(props), classFor("table", props), children)
	data, ok := props["data"].(map[string]any)
	if !ok || len(children) > 0 {
		return root
	}
	if head, ok := data["head"].([]any); ok && len(head) > 0 {
		tr := vdom.Tr()
		for _, h := range head {
			tr.Children = append(tr.Children, vdom.Th(slot(h)))
		}
		root.Children = append(root.Children, vdom.Thead(tr))
	}
	if body, ok := data["body"].([]any); ok {
		tbody := vdom.Tbody()
		for _, row := range body {
			cells, _ := row.([]any)
			tr := vdom.Tr()
			for _, c := range cells {
				tr.Children = append(tr.Children, vdom.Td(slot(c)))
			}
			tbody.Children = append(tbody.Children, tr)
		}
		root.Children = append(root.Children, tbody)
	}
	return root
}

// TablePart returns a control for one of the table section elements.
func TablePart(element string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		return vdom.El(element, rest(props), classFor("table-"+element, props), withChildren(children, props, "content"))
	}
}

// Progress renders a determinate progress bar; value is 0-100.
func Progress(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	v := clamp(number(props["value"], 0), 0, 100)
	return vdom.Progress(
		rest(props, "value"),
		classFor("progress", props),
		vdom.Max("100"),
		vdom.Value(strconv.FormatFloat(v, 'f', -1, 64)),
		vdom.Attr{Key: "aria-valuenow", Value: strconv.FormatFloat(v, 'f', -1, 64)},
	)
}

// RingProgress renders a circular progress indicator from its sections:
// [{"value": n, "color": c}, ..] with a label slot in the middle.
func RingProgress(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	const circumference = 2 * 3.14159265 * 40
	svg := vdom.Svg(vdom.ViewBox("0 0 100 100"), vdom.AriaHidden(true))
	offset := 0.0
	sections, _ := props["sections"].([]any)
	for _, s := range sections {
		m, ok := s.(map[string]any)
		if !ok {
			continue
		}
		v := clamp(number(m["value"], 0), 0, 100)
		length := circumference * v / 100
		svg.Children = append(svg.Children, vdom.El("circle",
			vdom.Attr{Key: "cx", Value: "50"},
			vdom.Attr{Key: "cy", Value: "50"},
			vdom.Attr{Key: "r", Value: "40"},
			vdom.Attr{Key: "fill", Value: "none"},
			vdom.Attr{Key: "stroke", Value: stringValue(m["color"])},
			vdom.Attr{Key: "stroke-dasharray", Value: formatFloat(length) + " " + formatFloat(circumference)},
			vdom.Attr{Key: "stroke-dashoffset", Value: formatFloat(-offset)},
		))
		offset += length
	}
	return vdom.Div(
		rest(props, "sections"),
		classFor("ringprogress", props),
		vdom.Role("progressbar"),
		svg,
		vdom.If(props["label"] != nil, vdom.Div(vdom.Class("sdui-ringprogress-label"), slot(props["label"]))),
	)
}

// Skeleton renders a loading placeholder block.
func Skeleton(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	visible := true
	if b, ok := props["visible"].(bool); ok {
		visible = b
	}
	return vdom.Div(rest(props, "visible"), classFor("skeleton", props), vdom.Data("visible", strconv.FormatBool(visible)), vdom.AriaBusy(visible), children)
}

// Loader renders a spinner.
func Loader(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	return vdom.Span(rest(props), classFor("loader", props), vdom.Role("status"), vdom.AriaLabel("Loading"))
}

// Indicator decorates its children with a small badge.
func Indicator(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	disabled := boolProp(props, "disabled")
	return vdom.Div(
		rest(props, "label", "disabled"),
		classFor("indicator", props),
		children,
		vdom.If(!disabled, vdom.Span(vdom.Class("sdui-indicator-badge"), slot(props["label"]))),
	)
}

// Timeline renders its items, marking those up to active (inclusive).
func Timeline(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	active := int(number(props["active"], -1))
	items := make([]*vdom.VNode, 0, len(children))
	for i, c := range children {
		if c != nil && c.Kind == vdom.KindElement && i <= active {
			c.Props["data-active"] = "true"
		}
		items = append(items, c)
	}
	return vdom.Ul(rest(props, "active"), classFor("timeline", props), items)
}

// TimelineItem renders one timeline entry with a bullet slot and title.
func TimelineItem(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Li(
		rest(props, "title"),
		classFor("timelineitem", props),
		section("bullet", props["bullet"]),
		vdom.If(props["title"] != nil, vdom.Div(vdom.Class("sdui-timelineitem-title"), slot(props["title"]))),
		children,
	)
}

// Accordion renders its items; multiple opens several at once.
func Accordion(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	open := stringList(props["value"])
	for _, c := range children {
		if c != nil && c.Kind == vdom.KindElement && contains(open, c.Props.GetString("data-value")) {
			c.Props["open"] = true
		}
	}
	return vdom.Div(rest(props, "value", "multiple"), classFor("accordion", props), children)
}

// AccordionItem renders a disclosure with a label slot as its summary.
func AccordionItem(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	attrs := rest(props, "label", "value")
	if v := stringValue(props["value"]); v != "" {
		attrs["data-value"] = v
	}
	return vdom.Details(
		attrs,
		classFor("accordionitem", props),
		vdom.Summary(slot(props["label"])),
		vdom.Div(vdom.Class("sdui-accordionitem-panel"), children),
	)
}

// Spoiler clips its children behind a show-more toggle.
func Spoiler(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	show := slot(props["showLabel"])
	if show == nil {
		show = vdom.Text("Show more")
	}
	return vdom.Details(
		rest(props, "showLabel", "hideLabel"),
		classFor("spoiler", props),
		vdom.Summary(show),
		children,
	)
}

// ThemeIcon renders an icon inside a colored square.
func ThemeIcon(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Div(rest(props), classFor("themeicon", props), withChildren(children, props, "icon"))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
