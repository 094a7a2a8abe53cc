package toolkit

import (
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Button renders a button; onClick is called with no arguments.
func Button(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	attrs := rest(props, "label", "loading", "type")
	loading := boolProp(props, "loading")
	if loading {
		attrs["aria-busy"] = true
	}
	buttonType := props.GetString("type")
	if buttonType == "" {
		buttonType = "button"
	}
	return vdom.Button(
		attrs,
		vdom.Type(buttonType),
		classFor("button", props),
		vdom.If(loading, vdom.Span(vdom.Class("sdui-loader"), vdom.AriaHidden(true))),
		section("left", props["leftSection"]),
		vdom.Span(vdom.Class("sdui-button-label"), withChildren(children, props, "label")),
		section("right", props["rightSection"]),
		clicker(props["onClick"]),
	)
}

// ActionIcon renders an icon-only button. The icon comes from name (a
// resolved icon node), followed by any children.
func ActionIcon(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Button(
		rest(props, "name", "icon"),
		vdom.Type("button"),
		classFor("actionicon", props),
		slot(props["name"]),
		withChildren(children, props, "icon"),
		clicker(props["onClick"]),
	)
}

// CloseButton renders an × button.
func CloseButton(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	content := withChildren(children, props, "icon")
	if content == nil {
		content = []*vdom.VNode{vdom.Text("×")}
	}
	attrs := rest(props, "icon")
	if _, ok := attrs["aria-label"]; !ok {
		attrs["aria-label"] = "Close"
	}
	return vdom.Button(attrs, vdom.Type("button"), classFor("closebutton", props), content, clicker(props["onClick"]))
}

// CopyButton renders a button carrying the text to copy in data-copy.
func CopyButton(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	label := withChildren(children, props, "label")
	if label == nil {
		label = []*vdom.VNode{vdom.Text("Copy")}
	}
	return vdom.Button(
		rest(props, "value", "label"),
		vdom.Type("button"),
		classFor("copybutton", props),
		vdom.Data("copy", stringValue(props["value"])),
		label,
		clicker(props["onClick"]),
	)
}

// closer renders the close button of a closeable control, or nil when the
// control has no close affordance.
func closer(props vdom.Props, flag string, defaultOn bool) *vdom.VNode {
	show := defaultOn
	if b, ok := props[flag].(bool); ok {
		show = b
	}
	if !show {
		return nil
	}
	p := vdom.Props{"onClick": props["onClose"]}
	if label := props.GetString("closeButtonLabel"); label != "" {
		p["aria-label"] = label
	}
	return CloseButton(nil, p, nil)
}

// Alert renders a status message; withCloseButton adds a button calling onClose.
func Alert(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Div(
		rest(props, "title", "withCloseButton", "closeButtonLabel"),
		vdom.Role("alert"),
		classFor("alert", props),
		section("icon", props["icon"]),
		vdom.If(props["title"] != nil, vdom.Div(vdom.Class("sdui-alert-title"), slot(props["title"]))),
		vdom.Div(vdom.Class("sdui-alert-body"), children),
		closer(props, "withCloseButton", false),
	)
}

// Notification renders a toast-style message, closeable by default.
func Notification(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Div(
		rest(props, "title", "withCloseButton", "closeButtonLabel", "loading"),
		vdom.Role("status"),
		classFor("notification", props),
		section("icon", props["icon"]),
		vdom.If(boolProp(props, "loading"), vdom.Span(vdom.Class("sdui-loader"))),
		vdom.If(props["title"] != nil, vdom.Div(vdom.Class("sdui-notification-title"), slot(props["title"]))),
		vdom.Div(vdom.Class("sdui-notification-body"), children),
		closer(props, "withCloseButton", true),
	)
}

// overlay renders a <dialog> shell shared by Dialog, Modal and Drawer.
// Nothing is rendered while opened is false.
func overlay(name string, props vdom.Props, children []*vdom.VNode, extra ...any) *vdom.VNode {
	if !boolProp(props, "opened") {
		return nil
	}
	args := []any{
		rest(props, "opened", "title", "withCloseButton", "closeButtonLabel", "position"),
		vdom.Open(true),
		classFor(name, props),
		vdom.Attr{Key: "aria-modal", Value: "true"},
	}
	args = append(args, extra...)
	header := vdom.Header(
		vdom.Class("sdui-"+name+"-header"),
		vdom.If(props["title"] != nil, vdom.H2(slot(props["title"]))),
		closer(props, "withCloseButton", true),
	)
	args = append(args, header, vdom.Div(vdom.Class("sdui-"+name+"-body"), children))
	return vdom.Dialog(args...)
}

// Dialog renders a non-blocking dialog.
func Dialog(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return overlay("dialog", props, children)
}

// Modal renders a centered modal dialog.
func Modal(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return overlay("modal", props, children)
}

// Drawer renders a dialog docked to position (default "left").
func Drawer(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	pos := props.GetString("position")
	if pos == "" {
		pos = "left"
	}
	return overlay("drawer", props, children, vdom.Data("position", pos))
}

// Pill renders a removable tag; withRemoveButton adds a button calling onClose.
func Pill(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Span(
		rest(props, "withRemoveButton", "label"),
		classFor("pill", props),
		vdom.Span(vdom.Class("sdui-pill-label"), withChildren(children, props, "label")),
		closer(props, "withRemoveButton", false),
	)
}
