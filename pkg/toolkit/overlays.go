package toolkit

import (
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Tooltip attaches the label slot to its children.
func Tooltip(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	id := props.GetString("id")
	tip := vdom.Span(vdom.Role("tooltip"), vdom.Class("sdui-tooltip-label"), slot(props["label"]))
	root := vdom.Span(rest(props, "label", "position", "opened"), classFor("tooltip", props), children, tip)
	if id != "" {
		tip.Props["id"] = id + "-tooltip"
		delete(root.Props, "id")
		root.Props["aria-describedby"] = id + "-tooltip"
	}
	if pos := props.GetString("position"); pos != "" {
		root.Props["data-position"] = pos
	}
	if boolProp(props, "opened") {
		root.Props["data-opened"] = "true"
	}
	return root
}

// floating renders a disclosure whose first child is the target and the
// rest the dropdown.
func floating(name string, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	var target *vdom.VNode
	dropdown := children
	if t := slot(props["target"]); t != nil {
		target = t
	} else if len(children) > 0 {
		target, dropdown = children[0], children[1:]
	}
	return vdom.Details(
		rest(props, "target", "opened", "position"),
		classFor(name, props),
		vdom.Open(boolProp(props, "opened")),
		vdom.Summary(target),
		vdom.Div(vdom.Class("sdui-"+name+"-dropdown"), dropdown),
	)
}

// Popover renders a click-opened dropdown.
func Popover(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return floating("popover", props, children)
}

// HoverCard renders a hover-opened dropdown.
func HoverCard(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	n := floating("hovercard", props, children)
	n.Props["data-trigger"] = "hover"
	return n
}
