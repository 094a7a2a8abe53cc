package toolkit

import (
	"strconv"
	"strings"

	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// fieldProps are consumed by the field wrapper rather than the input.
var fieldProps = []string{"label", "description", "error", "required", "withAsterisk"}

// field wraps an input with its label, description and error slots.
func field(name string, props vdom.Props, input *vdom.VNode) *vdom.VNode {
	id := props.GetString("id")
	var label *vdom.VNode
	if l := slot(props["label"]); l != nil {
		label = vdom.Label(vdom.Class("sdui-field-label"), l)
		if id != "" {
			label.Props["for"] = id
		}
		if boolProp(props, "required") || boolProp(props, "withAsterisk") {
			label.Children = append(label.Children, vdom.Span(vdom.Class("sdui-field-required"), vdom.AriaHidden(true), " *"))
		}
	}
	var errNode *vdom.VNode
	if e := slot(props["error"]); e != nil {
		errNode = vdom.Div(vdom.Class("sdui-field-error"), vdom.Role("alert"), e)
		input.Props["aria-invalid"] = "true"
	}
	return vdom.Div(
		vdom.Class("sdui-field", "sdui-"+name+"-field", props.GetString("class")),
		label,
		vdom.If(props["description"] != nil, vdom.Div(vdom.Class("sdui-field-description"), slot(props["description"]))),
		vdom.Div(
			vdom.Class("sdui-field-input"),
			section("left", props["leftSection"]),
			input,
			section("right", props["rightSection"]),
		),
		errNode,
	)
}

// inputAttrs returns the attributes forwarded to the <input> itself.
func inputAttrs(props vdom.Props, consumed ...string) vdom.Props {
	attrs := rest(props, append(consumed, fieldProps...)...)
	if boolProp(props, "required") {
		attrs["required"] = true
	}
	return attrs
}

// targetEvent adapts a DOM string handler to onChange(ChangeEvent).
func targetEvent(callback any) any {
	return forward(callback, func(emit func(any)) any {
		return func(v string) { emit(ChangeEvent{CurrentTarget: Target{Value: v}}) }
	})
}

// textField renders a text-like input reporting ChangeEvents: onChange on
// every keystroke (oninput) and onBlur when focus leaves.
func textField(name, inputType string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
		input := vdom.Input(
			inputAttrs(props, "value", "type"),
			vdom.Type(inputType),
			vdom.Class("sdui-"+name),
			vdom.Value(stringValue(props["value"])),
			handler("input", targetEvent(props["onChange"])),
			handler("blur", targetEvent(props["onBlur"])),
		)
		return field(name, props, input)
	}
}

var (
	TextInput     = textField("textinput", "text")
	PasswordInput = textField("passwordinput", "password")
	NumberInput   = textField("numberinput", "number")
)

// textArea renders a <textarea> reporting ChangeEvents like textField.
func textArea(name string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
		input := vdom.Textarea(
			inputAttrs(props, "value", "autosize", "formatOnBlur"),
			vdom.Class("sdui-"+name),
			stringValue(props["value"]),
			handler("input", targetEvent(props["onChange"])),
			handler("blur", targetEvent(props["onBlur"])),
		)
		if boolProp(props, "autosize") {
			input.Props["data-autosize"] = "true"
		}
		return field(name, props, input)
	}
}

var (
	Textarea  = textArea("textarea")
	JSONInput = textArea("jsoninput")
)

// PinInput renders length single-character inputs (default 4). Editing any
// cell reports the combined code as a ChangeEvent.
func PinInput(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	length := int(number(props["length"], 4))
	if length < 1 {
		length = 4
	}
	current := []rune(stringValue(props["value"]))
	root := vdom.Div(rest(props, "value", "length", "mask"), classFor("pininput", props), vdom.Role("group"))

	inputType := "text"
	if boolProp(props, "mask") {
		inputType = "password"
	}
	for i := 0; i < length; i++ {
		idx := i
		cell := ""
		if idx < len(current) {
			cell = string(current[idx])
		}
		onInput := forward(props["onChange"], func(emit func(any)) any {
			return func(v string) {
				code := make([]rune, length)
				for j := range code {
					code[j] = ' '
					if j < len(current) {
						code[j] = current[j]
					}
				}
				if r := []rune(v); len(r) > 0 {
					code[idx] = r[len(r)-1]
				} else {
					code[idx] = ' '
				}
				emit(ChangeEvent{CurrentTarget: Target{Value: strings.TrimRight(string(code), " ")}})
			}
		})
		root.Children = append(root.Children, vdom.Input(
			vdom.Type(inputType),
			vdom.Attr{Key: "maxlength", Value: "1"},
			vdom.AriaLabel("Digit "+strconv.Itoa(idx+1)),
			vdom.Value(cell),
			handler("input", onInput),
		))
	}
	return root
}

// stringEmitter passes a DOM string value straight to the callback.
func stringEmitter(callback any) any {
	return forward(callback, func(emit func(any)) any {
		return func(v string) { emit(v) }
	})
}

// Select renders a native select over the data options; onChange receives
// the selected value.
func Select(ctx *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	selected := stringValue(props["value"])
	sel := vdom.Select(
		inputAttrs(props, "value", "data", "placeholder", "searchable", "clearable"),
		vdom.Class("sdui-select"),
		handler("change", stringEmitter(props["onChange"])),
	)
	if ph := props.GetString("placeholder"); ph != "" {
		sel.Children = append(sel.Children, vdom.Option(vdom.Value(""), vdom.Disabled(true), vdom.Selected(selected == ""), ph))
	}
	for _, opt := range options(ctx, props) {
		sel.Children = append(sel.Children, vdom.Option(vdom.Value(opt.Value), vdom.Selected(opt.Value == selected), opt.Label))
	}
	return field("select", props, sel)
}

// MultiSelect renders a multiple select; onChange receives []string.
func MultiSelect(ctx *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	selected := stringList(props["value"])
	sel := vdom.Select(
		inputAttrs(props, "value", "data", "placeholder", "searchable", "clearable"),
		vdom.Attr{Key: "multiple", Value: true},
		vdom.Class("sdui-multiselect"),
		handler("change", forward(props["onChange"], func(emit func(any)) any {
			return func(v []string) { emit(v) }
		})),
	)
	for _, opt := range options(ctx, props) {
		sel.Children = append(sel.Children, vdom.Option(vdom.Value(opt.Value), vdom.Selected(contains(selected, opt.Value)), opt.Label))
	}
	return field("multiselect", props, sel)
}

// Autocomplete renders a free-text input with suggestions from data.
func Autocomplete(ctx *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	listID := props.GetString("id") + "-options"
	input := vdom.Input(
		inputAttrs(props, "value", "data"),
		vdom.Type("text"),
		vdom.Class("sdui-autocomplete"),
		vdom.Attr{Key: "list", Value: listID},
		vdom.Value(stringValue(props["value"])),
		handler("input", stringEmitter(props["onChange"])),
	)
	list := vdom.El("datalist", vdom.ID(listID))
	for _, opt := range options(ctx, props) {
		list.Children = append(list.Children, vdom.Option(vdom.Value(opt.Value), opt.Label))
	}
	return vdom.Fragment(field("autocomplete", props, input), list)
}

// SegmentedControl renders a row of buttons acting as a single choice.
func SegmentedControl(ctx *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	selected := stringValue(props["value"])
	root := vdom.Div(rest(props, "value", "data"), classFor("segmentedcontrol", props), vdom.Role("radiogroup"))
	for _, opt := range options(ctx, props) {
		value := opt.Value
		root.Children = append(root.Children, vdom.Button(
			vdom.Type("button"),
			vdom.Key(value),
			vdom.Role("radio"),
			vdom.AriaChecked(value == selected),
			vdom.Data("value", value),
			opt.Label,
			clicker(forward(props["onChange"], func(emit func(any)) any {
				return func() { emit(value) }
			})),
		))
	}
	return root
}

// numberEmitter adapts a DOM string handler to a float64 callback.
// Unparseable input is dropped.
func numberEmitter(callback any) any {
	return forward(callback, func(emit func(any)) any {
		return func(v string) {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				emit(f)
			}
		}
	})
}

func rangeAttrs(props vdom.Props) []any {
	return []any{
		vdom.Type("range"),
		vdom.Min(stringValue(orDefault(props["min"], 0.0))),
		vdom.Max(stringValue(orDefault(props["max"], 100.0))),
		vdom.Step(stringValue(orDefault(props["step"], 1.0))),
	}
}

// Slider renders a range input. onChange receives a float64 while
// dragging, onChangeEnd once the thumb is released.
func Slider(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	args := append(rangeAttrs(props),
		inputAttrs(props, "value", "min", "max", "step", "marks"),
		vdom.Class("sdui-slider"),
		vdom.Value(stringValue(number(props["value"], 0))),
		handler("input", numberEmitter(props["onChange"])),
		handler("change", numberEmitter(props["onChangeEnd"])),
	)
	return field("slider", props, vdom.Input(args...))
}

// RangeSlider renders two range inputs. onChange and onChangeEnd receive
// []float64{lo, hi}.
func RangeSlider(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	bounds := []float64{number(props["min"], 0), number(props["max"], 100)}
	if v, ok := props["value"].([]any); ok && len(v) == 2 {
		bounds = []float64{number(v[0], bounds[0]), number(v[1], bounds[1])}
	} else if v, ok := props["value"].([]float64); ok && len(v) == 2 {
		bounds = append(bounds[:0], v...)
	}
	root := vdom.Div(vdom.Class("sdui-rangeslider"), vdom.Role("group"))
	for i := range bounds {
		idx := i
		emitter := func(callback any) any {
			return forward(callback, func(emit func(any)) any {
				return func(v string) {
					f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
					if err != nil {
						return
					}
					next := []float64{bounds[0], bounds[1]}
					next[idx] = f
					if next[0] > next[1] {
						next[0], next[1] = next[1], next[0]
					}
					emit(next)
				}
			})
		}
		args := append(rangeAttrs(props),
			vdom.Value(stringValue(bounds[idx])),
			handler("input", emitter(props["onChange"])),
			handler("change", emitter(props["onChangeEnd"])),
		)
		root.Children = append(root.Children, vdom.Input(args...))
	}
	return field("rangeslider", props, root)
}

// Rating renders count star buttons (default 5); onChange receives the
// chosen rating as a float64.
func Rating(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	count := int(number(props["count"], 5))
	value := number(props["value"], 0)
	readOnly := boolProp(props, "readOnly")
	root := vdom.Div(rest(props, "value", "count", "readOnly"), classFor("rating", props), vdom.Role("radiogroup"))
	for i := 1; i <= count; i++ {
		score := float64(i)
		star := vdom.Button(
			vdom.Type("button"),
			vdom.Role("radio"),
			vdom.AriaLabel(strconv.Itoa(i)),
			vdom.AriaChecked(score == value),
			vdom.Data("filled", strconv.FormatBool(score <= value)),
			"★",
		)
		if h := forward(props["onChange"], func(emit func(any)) any {
			return func() { emit(score) }
		}); h != nil && !readOnly {
			star.Props["onclick"] = h
		}
		root.Children = append(root.Children, star)
	}
	return root
}

// ColorInput renders a text input with a color swatch. onChange fires
// while typing, onChangeEnd when the value is committed.
func ColorInput(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	value := stringValue(props["value"])
	if props["leftSection"] == nil {
		props = props.Clone()
		props["leftSection"] = vdom.Span(vdom.Class("sdui-swatch"), vdom.StyleAttr("background-color: "+value))
	}
	input := vdom.Input(
		inputAttrs(props, "value", "format"),
		vdom.Type("text"),
		vdom.Class("sdui-colorinput"),
		vdom.Value(value),
		handler("input", stringEmitter(props["onChange"])),
		handler("change", stringEmitter(props["onChangeEnd"])),
	)
	return field("colorinput", props, input)
}

// ColorPicker renders a grid of swatch buttons from the swatches prop.
func ColorPicker(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	value := stringValue(props["value"])
	root := vdom.Div(rest(props, "value", "swatches"), classFor("colorpicker", props), vdom.Role("listbox"))
	for _, swatch := range stringList(props["swatches"]) {
		color := swatch
		root.Children = append(root.Children, vdom.Button(
			vdom.Type("button"),
			vdom.Key(color),
			vdom.Role("option"),
			vdom.AriaSelected(color == value),
			vdom.AriaLabel(color),
			vdom.StyleAttr("background-color: "+color),
			clicker(forward(props["onChange"], func(emit func(any)) any {
				return func() { emit(color) }
			})),
		))
	}
	return root
}

// TagsInput renders the current tags as pills followed by a text input.
// Typing a comma-separated list reports the tags as []string.
func TagsInput(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	tags := stringList(props["value"])
	box := vdom.Div(vdom.Class("sdui-tagsinput"))
	for _, t := range tags {
		box.Children = append(box.Children, vdom.Span(vdom.Class("sdui-pill"), vdom.Key(t), t))
	}
	box.Children = append(box.Children, vdom.Input(
		inputAttrs(props, "value", "data"),
		vdom.Type("text"),
		vdom.Value(strings.Join(tags, ", ")),
		handler("input", forward(props["onChange"], func(emit func(any)) any {
			return func(v string) { emit(splitTags(v)) }
		})),
	))
	return field("tagsinput", props, box)
}

func splitTags(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" && !contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// FileInput renders a file picker; onChange receives the chosen file name.
func FileInput(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	input := vdom.Input(
		inputAttrs(props, "value", "multiple"),
		vdom.Type("file"),
		vdom.Class("sdui-fileinput"),
		handler("change", stringEmitter(props["onChange"])),
	)
	if boolProp(props, "multiple") {
		input.Props["multiple"] = true
	}
	if accept := props.GetString("accept"); accept != "" {
		input.Props["accept"] = accept
	}
	return field("fileinput", props, input)
}

// options parses the data prop; malformed entries are logged and skipped.
func options(ctx *widget.Context, props vdom.Props) []widget.Option {
	opts, err := widget.ParseOptions(props["data"])
	if err != nil {
		ctx.Log().Warn("malformed options", "id", props.GetString("id"), "error", err)
	}
	return opts
}

func orDefault(v, def any) any {
	if v == nil {
		return def
	}
	return v
}
