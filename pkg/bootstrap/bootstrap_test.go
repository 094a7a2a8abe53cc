package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/sdui/internal/config"
	"github.com/vango-dev/sdui/pkg/dispatch"
	"github.com/vango-dev/sdui/pkg/dispatch/dispatchtest"
	"github.com/vango-dev/sdui/pkg/group"
	"github.com/vango-dev/sdui/pkg/icon"
	"github.com/vango-dev/sdui/pkg/registry"
	"github.com/vango-dev/sdui/pkg/tree"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

type harness struct {
	reg    *registry.Registry
	walker *tree.Walker
	rec    *dispatchtest.Recorder
	icons  *icon.Resolver
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	if opts.Icons == nil {
		opts.Icons = icon.NewResolver(icon.Builtin())
	}
	h := &harness{reg: registry.New(), rec: dispatchtest.New(), icons: opts.Icons}
	require.NoError(t, Register(h.reg, opts))
	h.walker = tree.New(h.reg, tree.WithDispatcher(h.rec))
	t.Cleanup(h.walker.Close)
	return h
}

func (h *harness) render(d *widget.Descriptor) *vdom.VNode {
	return h.walker.Render(context.Background(), d)
}

func TestTableCoversFamilies(t *testing.T) {
	widgets := Widgets(Options{})
	assert.GreaterOrEqual(t, len(widgets), 90)

	seen := map[string]bool{}
	families := map[Family]int{}
	for _, w := range widgets {
		assert.False(t, seen[w.Tag], "tag %q listed twice", w.Tag)
		seen[w.Tag] = true
		families[w.Family]++
		assert.NotNil(t, w.Component, w.Tag)
	}
	for _, f := range Families() {
		assert.NotZero(t, families[f], "family %q has no widgets", f)
	}
}

func TestTableDecorators(t *testing.T) {
	byTag := map[string]Widget{}
	for _, w := range Widgets(Options{}) {
		byTag[w.Tag] = w
	}
	tests := []struct {
		tag, kind, event, valueAttr string
	}{
		{"box", "inline", "", ""},
		{"text", "none", "", ""},
		{"button", "event", "click", ""},
		{"alert", "event", "close", ""},
		{"modal", "event", "close", ""},
		{"textinput", "input", "change", "value"},
		{"select", "value", "change", "value"},
		{"slider", "value", "change", "value"},
		{"checkbox", "value", "change", "checked"},
		{"switch", "value", "change", "checked"},
		{"chip", "value", "change", "checked"},
		{"checkboxgroup", "value", "change", "value"},
		{"stepper", "value", "change", "active"},
		{"navlink", "event", "click", ""},
		{"linechart", "callback", "", ""},
		{"heatmap", "callback", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			w, ok := byTag[tt.tag]
			require.True(t, ok)
			assert.Equal(t, tt.kind, w.Kind())
			assert.Equal(t, tt.event, w.Event())
			assert.Equal(t, tt.valueAttr, w.ValueAttr())
		})
	}
	d := byTag["slider"].Component.(*dispatch.Decorator)
	assert.Equal(t, "onChangeEnd", d.Config().EventSourceAttr)
}

func TestRegisterLogsAndSignals(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := registry.New()
	var gens []uint64
	reg.OnUpdate(func(gen uint64) { gens = append(gens, gen) })

	require.NoError(t, Register(reg, Options{Logger: logger}))
	assert.Equal(t, []uint64{1}, gens)
	assert.Equal(t, len(Widgets(Options{})), reg.Len())
	assert.Equal(t, "box", reg.Tags()[0])

	out := buf.String()
	assert.Equal(t, reg.Len(), strings.Count(out, "widget registered"))
	assert.Contains(t, out, "widgets registered")
	assert.Less(t, strings.Index(out, "tag=box"), strings.Index(out, "tag=heatmap"))
}

func TestCheckboxGroupScenario(t *testing.T) {
	h := newHarness(t, Options{})
	n := h.render(widget.New("checkboxgroup", vdom.Props{
		"id": "fruits",
		"options": []any{
			map[string]any{"label": "A", "value": "a"},
			map[string]any{"label": "B", "value": "b"},
		},
	}))
	require.NotNil(t, n)
	assert.Equal(t, "fieldset", n.Tag)

	inputs := vdom.FindAll(n, vdom.ByTag("input"))
	require.Len(t, inputs, 2)
	var keys []string
	for _, item := range vdom.FindAll(n, func(v *vdom.VNode) bool { return v.Key != "" }) {
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, vdom.Fire(inputs[1], "change", true))
	last, ok := h.rec.Last()
	require.True(t, ok)
	assert.Equal(t, widget.Event{ComponentID: "fruits", Name: "change", Value: []string{"b"}, HasValue: true}, last)
}

func TestSwitchScenario(t *testing.T) {
	h := newHarness(t, Options{})
	d := widget.New("switch", vdom.Props{"id": "dark", "value": false, "label": "Dark mode"})
	input := vdom.Find(h.render(d), vdom.ByTag("input"))
	require.NotNil(t, input)
	assert.Equal(t, false, input.Props["checked"])

	require.NoError(t, vdom.Fire(input, "change", true))
	last, _ := h.rec.Last()
	assert.Equal(t, widget.Event{ComponentID: "dark", Name: "change", Value: true, HasValue: true}, last)

	d.Props["value"] = last.Value
	input = vdom.Find(h.render(d), vdom.ByTag("input"))
	assert.Equal(t, true, input.Props["checked"])
}

func TestTextInputScenario(t *testing.T) {
	h := newHarness(t, Options{})
	input := vdom.Find(h.render(widget.New("textinput", vdom.Props{"id": "q"})), vdom.ByTag("input"))
	require.NoError(t, vdom.Fire(input, "input", "hi"))
	last, _ := h.rec.Last()
	assert.Equal(t, widget.Event{ComponentID: "q", Name: "change", Value: "hi", HasValue: true}, last)
}

func TestTextInputBlurCommit(t *testing.T) {
	h := newHarness(t, FromConfig(&config.Config{
		Icons:  config.Default().Icons,
		Groups: config.Default().Groups,
		Inputs: config.InputsConfig{Commit: "blur", Debounce: time.Second},
	}, nil, nil))
	input := vdom.Find(h.render(widget.New("textinput", vdom.Props{"id": "q"})), vdom.ByTag("input"))
	require.NoError(t, vdom.Fire(input, "input", "h"))
	assert.Zero(t, h.rec.Len())
	require.NoError(t, vdom.Fire(input, "blur", "hi"))
	assert.Equal(t, 1, h.rec.Len())
}

func TestSliderReportsOnChangeEnd(t *testing.T) {
	h := newHarness(t, Options{})
	input := vdom.Find(h.render(widget.New("slider", vdom.Props{"id": "vol", "value": 3.0})), vdom.ByTag("input"))
	require.NotNil(t, input)
	assert.NotContains(t, input.Props, "oninput")

	require.NoError(t, vdom.Fire(input, "change", "7"))
	last, _ := h.rec.Last()
	assert.Equal(t, widget.Event{ComponentID: "vol", Name: "change", Value: 7.0, HasValue: true}, last)
}

func TestAlertClose(t *testing.T) {
	h := newHarness(t, Options{})
	n := h.render(widget.New("alert", vdom.Props{"id": "warn", "withCloseButton": true}, "Careful"))
	button := vdom.Find(n, vdom.ByTag("button"))
	require.NotNil(t, button)
	require.NoError(t, vdom.Fire(button, "click", nil))
	last, _ := h.rec.Last()
	assert.Equal(t, widget.Event{ComponentID: "warn", Name: "close"}, last)
}

func TestIconPropsResolve(t *testing.T) {
	h := newHarness(t, Options{})
	d := widget.New("alert", vdom.Props{"icon": "infoCircle"}, "Heads up")

	// First render shows the placeholder while the lookup settles.
	n := h.render(d)
	assert.NotNil(t, vdom.Find(n, vdom.ByTag("svg")))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := h.icons.Wait(ctx, "infoCircle")
	require.NoError(t, err)
	assert.Equal(t, icon.Ready, state)

	svg := vdom.Find(h.render(d), vdom.ByTag("svg"))
	require.NotNil(t, svg)
	assert.Equal(t, "IconInfoCircle", svg.Props["data-icon"])

	// The icon tag itself, and a nested descriptor in an inline slot.
	n = h.render(widget.New("button", vdom.Props{
		"leftSection": map[string]any{"tag": "icon", "props": map[string]any{"name": "infoCircle"}},
	}, "Info"))
	svg = vdom.Find(n, vdom.ByTag("svg"))
	require.NotNil(t, svg)
	assert.Equal(t, "IconInfoCircle", svg.Props["data-icon"])
}

func TestActionIconName(t *testing.T) {
	h := newHarness(t, Options{})
	d := widget.New("actionicon", vdom.Props{"id": "a", "name": "home"})
	h.render(d)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := h.icons.Wait(ctx, "home")
	require.NoError(t, err)
	require.Equal(t, icon.Ready, state)

	n := h.render(d)
	require.NotNil(t, n)
	assert.Equal(t, "button", n.Tag)
	assert.NotContains(t, n.Props, "name")
	svg := vdom.Find(n, vdom.ByTag("svg"))
	require.NotNil(t, svg)
	assert.Equal(t, "IconHome", svg.Props["data-icon"])

	require.NoError(t, vdom.Fire(n, "click", nil))
	last, _ := h.rec.Last()
	assert.Equal(t, widget.Event{ComponentID: "a", Name: "click"}, last)

	// A nested descriptor works as well.
	n = h.render(widget.New("actionicon", vdom.Props{
		"id":   "b",
		"name": map[string]any{"tag": "icon", "props": map[string]any{"name": "home"}},
	}))
	svg = vdom.Find(n, vdom.ByTag("svg"))
	require.NotNil(t, svg)
	assert.Equal(t, "IconHome", svg.Props["data-icon"])
}

func TestGroupWithExplicitChildren(t *testing.T) {
	tests := []struct {
		group, item string
		selected    any
		fire        bool
		want        any
	}{
		{"checkboxgroup", "checkbox", []any{"x"}, false, []string{}},
		{"checkboxgroup", "checkbox", []any{}, true, []string{"x"}},
		{"switchgroup", "switch", []any{"x"}, false, []string{}},
		{"chipgroup", "chip", []any{"x"}, false, []string{}},
		{"radiogroup", "radio", "y", true, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			h := newHarness(t, Options{})
			n := h.render(widget.New(tt.group, vdom.Props{"id": "g", "value": tt.selected},
				widget.New(tt.item, vdom.Props{"value": "x", "label": "X"}),
			))
			require.NotNil(t, n)

			input := vdom.Find(n, vdom.ByTag("input"))
			require.NotNil(t, input)
			assert.Equal(t, "x", input.Props["value"])
			assert.Equal(t, !tt.fire, input.Props["checked"])

			require.NoError(t, vdom.Fire(input, "change", tt.fire))
			last, ok := h.rec.Last()
			require.True(t, ok)
			assert.Equal(t, widget.Event{ComponentID: "g", Name: "change", Value: tt.want, HasValue: true}, last)
		})
	}
}

func TestHeatmapDefaultLabel(t *testing.T) {
	h := newHarness(t, Options{})
	n := h.render(widget.New("heatmap", vdom.Props{
		"data": map[string]any{"2024-03-01": 4.0},
	}))
	cell := vdom.Find(n, vdom.ByTag("li"))
	require.NotNil(t, cell)
	assert.Equal(t, "2024-03-01 | 4", cell.Props["title"])
}

func TestChartNamedFormatter(t *testing.T) {
	h := newHarness(t, Options{})
	n := h.render(widget.New("piechart", vdom.Props{
		"valueFormatter": "percent",
		"data":           []any{map[string]any{"name": "a", "value": 0.25}},
	}))
	td := vdom.Find(n, vdom.ByTag("td"))
	require.NotNil(t, td)
	assert.Equal(t, "25%", vdom.TextContent(td))
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Groups.DuplicateValues = "error"
	cfg.Groups.Gap = "lg"
	cfg.Inputs.Commit = "debounce"
	opts := FromConfig(cfg, nil, nil)

	assert.Equal(t, dispatch.CommitDebounce, opts.Commit)
	assert.Equal(t, cfg.Inputs.Debounce, opts.Debounce)
	assert.Equal(t, group.Reject, opts.Groups.Duplicates)
	assert.Equal(t, "lg", opts.Groups.Gap)
	assert.NotNil(t, opts.Icons)
	assert.NotNil(t, opts.Logger)

	for _, w := range Widgets(opts) {
		if w.Tag == "textinput" {
			d := w.Component.(*dispatch.Decorator)
			assert.Equal(t, dispatch.CommitDebounce, d.Config().Commit)
		}
	}
}
