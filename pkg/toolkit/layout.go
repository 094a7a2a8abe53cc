package toolkit

import (
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Spacing props forwarded as data attributes so the stylesheet can map
// the size tokens (xs..xl) or raw lengths.
var spacingProps = []string{"gap", "p", "px", "py", "m", "mx", "my", "justify", "align", "cols", "spacing", "wrap", "direction"}

// Layout returns a container control rendering element with the toolkit
// class for name. Spacing props become data attributes; leftSection and
// rightSection slots surround the children.
func Layout(name, element string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		attrs := rest(props, spacingProps...)
		for _, k := range spacingProps {
			if v, ok := props[k]; ok && v != nil {
				attrs["data-"+k] = stringValue(v)
			}
		}
		if vdom.IsVoidElement(element) {
			return vdom.El(element, attrs, classFor(name, props))
		}
		return vdom.El(element,
			attrs,
			classFor(name, props),
			section("left", props["leftSection"]),
			withChildren(children, props, "content"),
			section("right", props["rightSection"]),
		)
	}
}

var (
	Box         = Layout("box", "div")
	Stack       = Layout("stack", "div")
	Group       = Layout("group", "div")
	Flex        = Layout("flex", "div")
	Grid        = Layout("grid", "div")
	SimpleGrid  = Layout("simplegrid", "div")
	Container   = Layout("container", "div")
	Center      = Layout("center", "div")
	Space       = Layout("space", "div")
	Paper       = Layout("paper", "div")
	AspectRatio = Layout("aspectratio", "div")
	ScrollArea  = Layout("scrollarea", "div")
	Card        = Layout("card", "article")
	CardSection = Layout("cardsection", "section")
	AppShell    = Layout("appshell", "div")
	Navbar      = Layout("navbar", "nav")
	Main        = Layout("main", "main")
	GridCol     = Layout("gridcol", "div")
	Provider    = Layout("provider", "div")
	Affix       = Layout("affix", "div")

	ActionIconGroup        = Layout("actionicongroup", "div")
	ActionIconGroupSection = Layout("actionicongroupsection", "span")
)

// Fieldset groups controls under an optional legend.
func Fieldset(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Fieldset(
		rest(props, "legend"),
		classFor("fieldset", props),
		vdom.If(props["legend"] != nil, vdom.Legend(slot(props["legend"]))),
		children,
	)
}

// Divider renders a horizontal rule, or a labelled separator when label is set.
func Divider(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	label := slot(props["label"])
	if label == nil {
		return vdom.Hr(rest(props, "label"), classFor("divider", props))
	}
	return vdom.Div(
		rest(props, "label"),
		classFor("divider", props),
		vdom.Role("separator"),
		vdom.Span(vdom.Class("sdui-divider-label"), label),
	)
}
