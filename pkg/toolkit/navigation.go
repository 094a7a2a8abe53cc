package toolkit

import (
	"strconv"

	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

const (
	kindTab      = "tab"
	tabPanelAttr = "data-sdui-panel"
)

// Tabs owns the active tab. Tab items among its children are marked
// selected and report their value to onChange when clicked; panels other
// than the active one are hidden.
func Tabs(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	active := stringValue(props["value"])
	root := vdom.Div(rest(props, "value", "orientation"), classFor("tabs", props), children)
	if o := props.GetString("orientation"); o != "" {
		root.Props["data-orientation"] = o
	}
	for _, tab := range items(root, kindTab) {
		value := tab.Props.GetString("data-value")
		tab.Props["aria-selected"] = value == active
		tab.Props["tabindex"] = "-1"
		if value == active {
			tab.Props["tabindex"] = "0"
		}
		if h := forward(props["onChange"], func(emit func(any)) any {
			return func() { emit(value) }
		}); h != nil {
			tab.Props["onclick"] = h
		}
	}
	for _, panel := range vdom.FindAll(root, func(n *vdom.VNode) bool { return n.Kind == vdom.KindElement && n.Props.Has(tabPanelAttr) }) {
		panel.Props["hidden"] = panel.Props.GetString(tabPanelAttr) != active
	}
	return root
}

// TabList groups the tab buttons of a Tabs control.
func TabList(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Div(rest(props), classFor("tablist", props), vdom.Role("tablist"), children)
}

// Tab renders one tab button.
func Tab(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Button(
		rest(props, "value", "label"),
		vdom.Type("button"),
		vdom.Role("tab"),
		classFor("tab", props),
		vdom.Attr{Key: itemAttr, Value: kindTab},
		vdom.Data("value", stringValue(props["value"])),
		section("left", props["leftSection"]),
		withChildren(children, props, "label"),
		section("right", props["rightSection"]),
	)
}

// TabPanel renders the content shown while its value is the active tab.
func TabPanel(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Div(
		rest(props, "value"),
		vdom.Role("tabpanel"),
		classFor("tabpanel", props),
		vdom.Attr{Key: tabPanelAttr, Value: stringValue(props["value"])},
		children,
	)
}

// NavLink renders a navigation link with sections and an active state.
func NavLink(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	attrs := rest(props, "label", "description", "active")
	if boolProp(props, "active") {
		attrs["aria-current"] = "page"
		attrs["data-active"] = "true"
	}
	link := vdom.A(
		attrs,
		classFor("navlink", props),
		section("left", props["leftSection"]),
		vdom.Span(vdom.Class("sdui-navlink-body"),
			vdom.Span(vdom.Class("sdui-navlink-label"), slot(props["label"])),
			vdom.If(props["description"] != nil, vdom.Span(vdom.Class("sdui-navlink-description"), slot(props["description"]))),
		),
		section("right", props["rightSection"]),
		clicker(props["onClick"]),
	)
	if len(children) == 0 {
		return link
	}
	return vdom.Div(vdom.Class("sdui-navlink-group"), link, vdom.Div(vdom.Class("sdui-navlink-children"), children))
}

// Breadcrumbs renders its children separated by separator (default "/").
func Breadcrumbs(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	sep := props["separator"]
	if sep == nil {
		sep = "/"
	}
	list := vdom.El("ol", vdom.Class("sdui-breadcrumbs-list"))
	for i, c := range children {
		if i > 0 {
			list.Children = append(list.Children, vdom.Li(vdom.Class("sdui-breadcrumbs-separator"), vdom.AriaHidden(true), slot(sep)))
		}
		list.Children = append(list.Children, vdom.Li(c))
	}
	return vdom.Nav(rest(props, "separator"), classFor("breadcrumbs", props), vdom.AriaLabel("Breadcrumb"), list)
}

// Pagination renders page buttons; onChange receives the page as a float64.
// Pages far from the current one collapse into ellipses.
func Pagination(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	total := int(number(props["total"], 1))
	current := int(number(props["value"], 1))
	siblings := int(number(props["siblings"], 1))
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	root := vdom.Nav(rest(props, "total", "value", "siblings"), classFor("pagination", props), vdom.AriaLabel("Pagination"))
	page := func(label string, target int, disabled bool) *vdom.VNode {
		b := vdom.Button(vdom.Type("button"), vdom.Disabled(disabled), vdom.Data("page", strconv.Itoa(target)), label)
		if h := forward(props["onChange"], func(emit func(any)) any {
			return func() { emit(float64(target)) }
		}); h != nil && !disabled {
			b.Props["onclick"] = h
		}
		return b
	}

	root.Children = append(root.Children, page("‹", current-1, current <= 1))
	for _, p := range pageRange(total, current, siblings) {
		if p == 0 {
			root.Children = append(root.Children, vdom.Span(vdom.Class("sdui-pagination-dots"), "…"))
			continue
		}
		b := page(strconv.Itoa(p), p, false)
		if p == current {
			b.Props["aria-current"] = "page"
		}
		root.Children = append(root.Children, b)
	}
	root.Children = append(root.Children, page("›", current+1, current >= total))
	return root
}

// pageRange lists the pages to show; 0 marks an ellipsis. The first and
// last page are always shown along with siblings around current.
func pageRange(total, current, siblings int) []int {
	var out []int
	last := 0
	for p := 1; p <= total; p++ {
		if p == 1 || p == total || (p >= current-siblings && p <= current+siblings) {
			if last != 0 && p-last > 1 {
				out = append(out, 0)
			}
			out = append(out, p)
			last = p
		}
	}
	return out
}

// Stepper renders a step header from the steps prop (labels) followed by
// its children. onChange receives the clicked step index as a float64.
func Stepper(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	active := int(number(props["active"], 0))
	steps, _ := props["steps"].([]any)
	header := vdom.El("ol", vdom.Class("sdui-stepper-steps"))
	for i, s := range steps {
		idx := i
		state := "pending"
		switch {
		case idx < active:
			state = "completed"
		case idx == active:
			state = "active"
		}
		btn := vdom.Button(vdom.Type("button"), vdom.Data("state", state), slot(s))
		if h := forward(props["onChange"], func(emit func(any)) any {
			return func() { emit(float64(idx)) }
		}); h != nil {
			btn.Props["onclick"] = h
		}
		header.Children = append(header.Children, vdom.Li(vdom.Key(idx), btn))
	}
	return vdom.Div(rest(props, "active", "steps"), classFor("stepper", props), header, vdom.Div(vdom.Class("sdui-stepper-content"), children))
}

// Burger renders a menu toggle button.
func Burger(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	opened := boolProp(props, "opened")
	return vdom.Button(
		rest(props, "opened"),
		vdom.Type("button"),
		classFor("burger", props),
		vdom.Attr{Key: "aria-expanded", Value: boolString(opened)},
		vdom.AriaLabel("Toggle navigation"),
		vdom.Span(vdom.Class("sdui-burger-lines")),
		clicker(props["onClick"]),
	)
}

// Menu renders a disclosure whose summary is the target slot.
func Menu(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	target := slot(props["target"])
	if target == nil {
		target = slot(props["label"])
	}
	return vdom.Details(
		rest(props, "target", "label", "opened"),
		classFor("menu", props),
		vdom.Open(boolProp(props, "opened")),
		vdom.Summary(target),
		vdom.Div(vdom.Role("menu"), vdom.Class("sdui-menu-dropdown"), children),
	)
}

// MenuItem renders one menu entry.
func MenuItem(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Button(
		rest(props, "label"),
		vdom.Type("button"),
		vdom.Role("menuitem"),
		classFor("menuitem", props),
		section("left", props["leftSection"]),
		withChildren(children, props, "label"),
		section("right", props["rightSection"]),
		clicker(props["onClick"]),
	)
}

func boolString(b bool) string {
	return strconv.FormatBool(b)
}
