package toolkit

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// formatter returns the formatting callback stored in v, or fmt.Sprint.
func formatter(v any) func(any) string {
	switch f := v.(type) {
	case func(any) string:
		return f
	case func(float64) string:
		return func(x any) string {
			if n, ok := x.(float64); ok {
				return f(n)
			}
			return fmt.Sprint(x)
		}
	}
	return func(x any) string { return stringValue(x) }
}

type series struct {
	name  string
	label string
	color string
}

func parseSeries(v any) []series {
	list, _ := v.([]any)
	out := make([]series, 0, len(list))
	for _, item := range list {
		switch s := item.(type) {
		case string:
			out = append(out, series{name: s, label: s})
		case map[string]any:
			name := stringValue(s["name"])
			if name == "" {
				continue
			}
			label := stringValue(s["label"])
			if label == "" {
				label = name
			}
			out = append(out, series{name: name, label: label, color: stringValue(s["color"])})
		}
	}
	return out
}

// Chart returns a chart control. Charts render as a figure holding an
// accessible data table: one row per data point, labelled by dataKey
// through tooltipLabelFormatter, with one cell per series formatted by
// valueFormatter.
func Chart(kind string) widget.ComponentFunc {
	return func(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
		valueFmt := formatter(props["valueFormatter"])
		labelFmt := formatter(props["tooltipLabelFormatter"])
		rows, _ := props["data"].([]any)

		table := vdom.Table(vdom.Class("sdui-chart-data"))
		switch kind {
		case "piechart", "donutchart", "funnelchart", "radialbarchart":
			body := vdom.Tbody()
			for _, r := range rows {
				m, ok := r.(map[string]any)
				if !ok {
					continue
				}
				body.Children = append(body.Children, vdom.Tr(
					vdom.Data("color", stringValue(m["color"])),
					vdom.Th(labelFmt(m["name"])),
					vdom.Td(valueFmt(m["value"])),
				))
			}
			table.Children = append(table.Children, body)
		case "sparkline":
			tr := vdom.Tr()
			for _, r := range rows {
				tr.Children = append(tr.Children, vdom.Td(valueFmt(r)))
			}
			table.Children = append(table.Children, vdom.Tbody(tr))
		default:
			key := props.GetString("dataKey")
			ss := parseSeries(props["series"])
			head := vdom.Tr(vdom.Th(key))
			for _, s := range ss {
				head.Children = append(head.Children, vdom.Th(vdom.Data("color", s.color), s.label))
			}
			body := vdom.Tbody()
			for _, r := range rows {
				m, ok := r.(map[string]any)
				if !ok {
					continue
				}
				tr := vdom.Tr(vdom.Th(labelFmt(m[key])))
				for _, s := range ss {
					tr.Children = append(tr.Children, vdom.Td(valueFmt(m[s.name])))
				}
				body.Children = append(body.Children, tr)
			}
			table.Children = append(table.Children, vdom.Thead(head), body)
		}

		return vdom.El("figure",
			rest(props, "dataKey", "title"),
			classFor(kind, props),
			vdom.Data("chart", kind),
			vdom.If(props["title"] != nil, vdom.El("figcaption", slot(props["title"]))),
			table,
		)
	}
}

var (
	LineChart      = Chart("linechart")
	BarChart       = Chart("barchart")
	AreaChart      = Chart("areachart")
	CompositeChart = Chart("compositechart")
	PieChart       = Chart("piechart")
	DonutChart     = Chart("donutchart")
	FunnelChart    = Chart("funnelchart")
	RadialBarChart = Chart("radialbarchart")
	RadarChart     = Chart("radarchart")
	ScatterChart   = Chart("scatterchart")
	BubbleChart    = Chart("bubblechart")
	Sparkline      = Chart("sparkline")
)

// HeatmapCell is the argument passed to a heatmap's getTooltipLabel.
type HeatmapCell struct {
	Date  string
	Value any
}

// HeatmapLabel is the default tooltip label: "<date> | <value>".
func HeatmapLabel(v any) string {
	c, ok := v.(HeatmapCell)
	if !ok {
		return stringValue(v)
	}
	return c.Date + " | " + stringValue(c.Value)
}

// Heatmap renders a calendar heatmap from data, a map of ISO date to
// value. Cells are ordered by date and titled by getTooltipLabel.
func Heatmap(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	label := HeatmapLabel
	if f, ok := props["getTooltipLabel"].(func(any) string); ok {
		label = f
	}
	data, _ := props["data"].(map[string]any)

	list := vdom.El("ol", vdom.Class("sdui-heatmap-cells"))
	for _, date := range slices.Sorted(maps.Keys(data)) {
		cell := HeatmapCell{Date: date, Value: data[date]}
		list.Children = append(list.Children, vdom.Li(
			vdom.Data("date", date),
			vdom.Data("value", stringValue(cell.Value)),
			vdom.Attr{Key: "title", Value: label(cell)},
		))
	}
	return vdom.El("figure",
		rest(props, "getTooltipLabel"),
		classFor("heatmap", props),
		vdom.Data("chart", "heatmap"),
		list,
	)
}
