package group

import (
	"github.com/vango-dev/sdui/pkg/toolkit"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Adapter binds the generic renderer to one widget family: its group
// container and its leaf control.
type Adapter struct {
	Name string
	// Group is the native container owning the selection.
	Group widget.ComponentFunc
	// Item is the native leaf control.
	Item widget.ComponentFunc
	// LabelAsChildren renders the option label as the item's children
	// instead of its label prop.
	LabelAsChildren bool
}

var (
	Checkbox = Adapter{Name: "checkboxgroup", Group: toolkit.CheckboxGroup, Item: toolkit.Checkbox}
	Radio    = Adapter{Name: "radiogroup", Group: toolkit.RadioGroup, Item: toolkit.Radio}
	Chip     = Adapter{Name: "chipgroup", Group: toolkit.ChipGroup, Item: toolkit.Chip, LabelAsChildren: true}
	Switch   = Adapter{Name: "switchgroup", Group: toolkit.SwitchGroup, Item: toolkit.Switch}
)

// Adapters lists the four built-in group adapters.
func Adapters() []Adapter {
	return []Adapter{Checkbox, Radio, Chip, Switch}
}

// Component returns the widget for the adapter. Its props are "options"
// (the option list), "groupProps" (layout overrides for the option
// container) and everything else, which goes to the group container.
func (a Adapter) Component(r *Renderer) widget.Component {
	return widget.ComponentFunc(func(ctx *widget.Context, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		options, err := widget.ParseOptions(props["options"])
		if err != nil {
			ctx.Log().Warn("malformed options", "tag", a.Name, "id", widget.ComponentID(props), "error", err)
		}
		var layout vdom.Props
		switch g := props["groupProps"].(type) {
		case vdom.Props:
			layout = g
		case map[string]any:
			layout = g
		}
		other := widget.Omit(props, "options", "groupProps")

		group := func(children []*vdom.VNode, props vdom.Props) *vdom.VNode {
			return a.Group(ctx, props, children)
		}
		return r.Render(children, options, group, a.item(ctx), layout, other)
	})
}

// item renders one option as the adapter's leaf control. Extra option
// keys become item props; value and label are always the option's own.
func (a Adapter) item(ctx *widget.Context) ItemFunc {
	return func(opt widget.Option) *vdom.VNode {
		props := vdom.Props{}
		for k, v := range opt.Extra {
			props[k] = v
		}
		props["value"] = opt.Value
		if a.LabelAsChildren {
			return a.Item(ctx, props, []*vdom.VNode{vdom.Text(opt.Label)})
		}
		props["label"] = opt.Label
		return a.Item(ctx, props, nil)
	}
}
