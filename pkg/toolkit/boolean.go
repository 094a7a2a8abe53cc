package toolkit

import (
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Item kinds marked on toggle inputs for their group containers.
const (
	KindCheckbox = "checkbox"
	KindSwitch   = "switch"
	KindChip     = "chip"
	KindRadio    = "radio"
)

// toggleEvent adapts a DOM bool handler to onChange(ChangeEvent).
func toggleEvent(callback any, value string) any {
	return forward(callback, func(emit func(any)) any {
		return func(checked bool) {
			emit(ChangeEvent{CurrentTarget: Target{Value: value, Checked: checked}})
		}
	})
}

// toggle renders a labelled checkbox-like input. labelAsChildren selects
// the item shape: chips take their label from children, the others from
// the label prop.
func toggle(kind, inputType string, labelAsChildren bool) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		value := stringValue(props["value"])
		checked := boolProp(props, "checked")

		input := vdom.Input(
			rest(props, "label", "checked", "value", "description", "error", "id", "icon", "thumbIcon"),
			vdom.Type(inputType),
			vdom.Class("sdui-"+kind+"-input"),
			vdom.Checked(checked),
			vdom.Attr{Key: itemAttr, Value: kind},
			handler("change", toggleEvent(props["onChange"], value)),
		)
		if value != "" {
			input.Props["value"] = value
		}
		if id := props.GetString("id"); id != "" {
			input.Props["id"] = id
		}
		if kind == KindSwitch {
			input.Props["role"] = "switch"
			input.Props["aria-checked"] = checked
		}

		var label []*vdom.VNode
		if labelAsChildren {
			label = withChildren(children, props, "label")
		} else if l := slot(props["label"]); l != nil {
			label = []*vdom.VNode{l}
		}

		return vdom.Label(
			vdom.Class("sdui-"+kind, props.GetString("class")),
			input,
			vdom.If(kind == KindSwitch, vdom.Span(vdom.Class("sdui-switch-track"), vdom.AriaHidden(true),
				vdom.Span(vdom.Class("sdui-switch-thumb"), slot(props["thumbIcon"])))),
			vdom.If(kind == KindChip && checked, section("icon", props["icon"])),
			vdom.If(len(label) > 0, vdom.Span(vdom.Class("sdui-"+kind+"-label"), label)),
			vdom.If(props["description"] != nil, vdom.Span(vdom.Class("sdui-field-description"), slot(props["description"]))),
			vdom.If(props["error"] != nil, vdom.Span(vdom.Class("sdui-field-error"), slot(props["error"]))),
		)
	}
}

var (
	Checkbox = toggle(KindCheckbox, "checkbox", false)
	Switch   = toggle(KindSwitch, "checkbox", false)
	Chip     = toggle(KindChip, "checkbox", true)
	Radio    = toggle(KindRadio, "radio", false)
)

// groupShell renders the fieldset shared by the group containers.
func groupShell(name string, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	return vdom.Fieldset(
		rest(props, "label", "description", "error", "value", "multiple", "name"),
		classFor(name, props),
		vdom.Role("group"),
		vdom.If(props["label"] != nil, vdom.Legend(slot(props["label"]))),
		vdom.If(props["description"] != nil, vdom.Div(vdom.Class("sdui-field-description"), slot(props["description"]))),
		children,
		vdom.If(props["error"] != nil, vdom.Div(vdom.Class("sdui-field-error"), vdom.Role("alert"), slot(props["error"]))),
	)
}

// items returns the item inputs of kind among root's descendants.
func items(root *vdom.VNode, kind string) []*vdom.VNode {
	return vdom.FindAll(root, vdom.ByProp(itemAttr, kind))
}

// setChecked marks an item input as checked or not.
func setChecked(item *vdom.VNode, checked bool) {
	item.Props["checked"] = checked
	if item.Props["role"] == "switch" {
		item.Props["aria-checked"] = checked
	}
}

// multiGroup renders a container owning a []string selection over items
// of kind. Toggling an item reports the new selection to onChange: an
// item turned on is appended, one turned off is removed.
func multiGroup(name, kind string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		if kind == KindChip {
			if multiple, ok := props["multiple"].(bool); ok && !multiple {
				return singleGroup(name, kind)(nil, props, children)
			}
		}
		selected := stringList(props["value"])
		root := groupShell(name, props, children)
		for _, item := range items(root, kind) {
			value := item.Props.GetString("value")
			setChecked(item, contains(selected, value))
			item.Props["onchange"] = forward(props["onChange"], func(emit func(any)) any {
				return func(checked bool) { emit(toggled(selected, value, checked)) }
			})
			if item.Props["onchange"] == nil {
				delete(item.Props, "onchange")
			}
		}
		return root
	}
}

// singleGroup renders a container owning a single string selection.
// Items share one input name so the browser keeps them exclusive.
func singleGroup(name, kind string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		selected := stringValue(props["value"])
		group := props.GetString("name")
		if group == "" {
			group = props.GetString("id")
		}
		root := groupShell(name, props, children)
		root.Props["role"] = "radiogroup"
		for _, item := range items(root, kind) {
			value := item.Props.GetString("value")
			setChecked(item, value == selected)
			if group != "" {
				item.Props["name"] = group
			}
			item.Props["onchange"] = forward(props["onChange"], func(emit func(any)) any {
				return func(bool) { emit(value) }
			})
			if item.Props["onchange"] == nil {
				delete(item.Props, "onchange")
			}
		}
		return root
	}
}

// toggled returns selected with value added or removed.
func toggled(selected []string, value string, on bool) []string {
	out := make([]string, 0, len(selected)+1)
	for _, s := range selected {
		if s != value {
			out = append(out, s)
		}
	}
	if on {
		out = append(out, value)
	}
	return out
}

var (
	CheckboxGroup = multiGroup("checkboxgroup", KindCheckbox)
	SwitchGroup   = multiGroup("switchgroup", KindSwitch)
	ChipGroup     = multiGroup("chipgroup", KindChip)
	RadioGroup    = singleGroup("radiogroup", KindRadio)
)
