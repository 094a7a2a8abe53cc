package toolkit

import (
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// dateField renders a native date/time input; onChange receives the
// input's string value (ISO 8601 for the date kinds).
func dateField(name, inputType string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
		input := vdom.Input(
			inputAttrs(props, "value", "minDate", "maxDate", "valueFormat", "clearable"),
			vdom.Type(inputType),
			vdom.Class("sdui-"+name),
			vdom.Value(stringValue(props["value"])),
			handler("change", stringEmitter(props["onChange"])),
		)
		if v := stringValue(props["minDate"]); v != "" {
			input.Props["min"] = v
		}
		if v := stringValue(props["maxDate"]); v != "" {
			input.Props["max"] = v
		}
		return field(name, props, input)
	}
}

var (
	DateInput      = dateField("dateinput", "date")
	DatePicker     = dateField("datepicker", "date")
	DateTimePicker = dateField("datetimepicker", "datetime-local")
	TimeInput      = dateField("timeinput", "time")
	MonthPicker    = dateField("monthpicker", "month")
	YearPicker     = dateField("yearpicker", "number")
)
