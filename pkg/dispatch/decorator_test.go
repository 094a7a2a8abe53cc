package dispatch

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/sdui/pkg/dispatch/dispatchtest"
	"github.com/vango-dev/sdui/pkg/metrics"
	"github.com/vango-dev/sdui/pkg/toolkit"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// capture is a component that records the props it was rendered with.
type capture struct {
	props vdom.Props
}

func (c *capture) Render(_ *widget.Context, props vdom.Props, _ []*vdom.VNode) *vdom.VNode {
	c.props = props
	return vdom.Div()
}

// tagResolver renders any descriptor as an element named after its tag.
type tagResolver struct{}

func (tagResolver) Resolve(_ *widget.Context, v any) *vdom.VNode {
	if d, err := widget.Decode(v); err == nil {
		return vdom.El(d.Tag)
	}
	return widget.Primitive(v)
}

func TestTextInputScenario(t *testing.T) {
	rec := dispatchtest.New()
	comp := InputValue(widget.ComponentFunc(toolkit.TextInput), Config{})
	n := comp.Render(rec.Context(nil), vdom.Props{"id": "name", "value": "h"}, nil)

	input := vdom.Find(n, vdom.ByTag("input"))
	require.NotNil(t, input)
	assert.Equal(t, "h", input.Props["value"])

	require.NoError(t, vdom.Fire(input, "input", "hi"))
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, widget.Event{ComponentID: "name", Name: "change", Value: "hi", HasValue: true}, rec.Events()[0])
}

func TestSwitchScenario(t *testing.T) {
	rec := dispatchtest.New()
	comp := Value(widget.ComponentFunc(toolkit.Switch), Config{ValueAttr: "checked", ValueExtractor: TargetChecked})

	n := comp.Render(rec.Context(nil), vdom.Props{"id": "sw", "value": false}, nil)
	input := vdom.Find(n, vdom.ByTag("input"))
	assert.Equal(t, false, input.Props["checked"])

	require.NoError(t, vdom.Fire(input, "change", true))
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, widget.Event{ComponentID: "sw", Name: "change", Value: true, HasValue: true}, last)

	// The runtime re-supplies the new state.
	n = comp.Render(rec.Context(nil), vdom.Props{"id": "sw", "value": last.Value}, nil)
	assert.Equal(t, true, vdom.Find(n, vdom.ByTag("input")).Props["checked"])
	assert.Equal(t, 1, rec.Len())
}

func TestValueDispatchUsesExtractor(t *testing.T) {
	tests := []struct {
		name      string
		extractor Extractor
		arg       any
		want      any
	}{
		{"identity default", nil, []string{"a"}, []string{"a"}},
		{"target value", TargetValue, toolkit.ChangeEvent{CurrentTarget: toolkit.Target{Value: "v"}}, "v"},
		{"target checked", TargetChecked, toolkit.ChangeEvent{CurrentTarget: toolkit.Target{Checked: true}}, true},
		{"target number", TargetNumber, toolkit.ChangeEvent{CurrentTarget: toolkit.Target{Value: " 4.5 "}}, 4.5},
		{"custom", func(any) any { return 7 }, "ignored", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := dispatchtest.New()
			c := &capture{}
			Value(c, Config{ValueExtractor: tt.extractor}).Render(rec.Context(nil), vdom.Props{"id": "x"}, nil)

			require.True(t, vdom.Invoke(c.props["onChange"], tt.arg))
			require.Equal(t, 1, rec.Len())
			assert.Equal(t, tt.want, rec.Events()[0].Value)
		})
	}
}

func TestValueAttrMapping(t *testing.T) {
	c := &capture{}
	Value(c, Config{ValueAttr: "checked"}).Render(nil, vdom.Props{"value": true}, nil)
	assert.Equal(t, true, c.props["checked"])
	assert.NotContains(t, c.props, "value")

	c = &capture{}
	Value(c, Config{}).Render(nil, vdom.Props{"value": "a"}, nil)
	assert.Equal(t, "a", c.props["value"])

	c = &capture{}
	Value(c, Config{ValueAttr: "active"}).Render(nil, vdom.Props{"value": 2}, nil)
	assert.Equal(t, 2, c.props["active"])
}

func TestValueAttrKeepsItemIdentity(t *testing.T) {
	tests := []struct {
		name  string
		props vdom.Props
		want  vdom.Props
	}{
		{"string value is identity", vdom.Props{"value": "x"}, vdom.Props{"value": "x"}},
		{"explicit checked wins", vdom.Props{"value": "x", "checked": true}, vdom.Props{"value": "x", "checked": true}},
		{"explicit checked with bool value", vdom.Props{"value": true, "checked": false}, vdom.Props{"value": true, "checked": false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &capture{}
			Value(c, Config{ValueAttr: "checked"}).Render(nil, tt.props, nil)
			for k, v := range tt.want {
				assert.Equal(t, v, c.props[k], k)
			}
			if _, ok := tt.want["checked"]; !ok {
				assert.NotContains(t, c.props, "checked")
			}
		})
	}
}

func TestDecoratorDoesNotMutateInput(t *testing.T) {
	props := vdom.Props{"value": true, "id": "a"}
	Value(&capture{}, Config{ValueAttr: "checked"}).Render(nil, props, nil)
	assert.Equal(t, vdom.Props{"value": true, "id": "a"}, props)
}

func TestEventDispatcher(t *testing.T) {
	rec := dispatchtest.New()
	n := Event(widget.ComponentFunc(toolkit.Button), Config{}).Render(rec.Context(nil), vdom.Props{"id": "b", "label": "Go"}, nil)
	require.NoError(t, vdom.Fire(n, "click", nil))
	assert.Equal(t, []widget.Event{{ComponentID: "b", Name: "click"}}, rec.Events())
}

func TestCloseEventDispatcher(t *testing.T) {
	rec := dispatchtest.New()
	comp := Event(widget.ComponentFunc(toolkit.Alert), Config{EventName: "close", EventSourceAttr: "onClose"})
	n := comp.Render(rec.Context(nil), vdom.Props{"id": "al", "withCloseButton": true}, nil)
	require.NoError(t, vdom.Fire(vdom.Find(n, vdom.ByTag("button")), "click", nil))
	assert.Equal(t, []widget.Event{{ComponentID: "al", Name: "close"}}, rec.Events())
}

func TestInputCommitModes(t *testing.T) {
	t.Run("blur", func(t *testing.T) {
		rec := dispatchtest.New()
		n := InputValue(widget.ComponentFunc(toolkit.TextInput), Config{Commit: CommitBlur}).
			Render(rec.Context(nil), vdom.Props{"id": "t"}, nil)
		input := vdom.Find(n, vdom.ByTag("input"))
		assert.NotContains(t, input.Props, "oninput")
		require.NoError(t, vdom.Fire(input, "blur", "done"))
		assert.Equal(t, "done", rec.Events()[0].Value)
	})

	t.Run("debounce", func(t *testing.T) {
		rec := dispatchtest.New()
		comp := InputValue(widget.ComponentFunc(toolkit.TextInput), Config{Commit: CommitDebounce})
		assert.Equal(t, DefaultDebounce, comp.Config().Debounce)

		n := comp.Render(rec.Context(nil), vdom.Props{"id": "t"}, nil)
		input := vdom.Find(n, vdom.ByTag("input"))
		mh, ok := input.Props["oninput"].(vdom.ModifiedHandler)
		require.True(t, ok)
		assert.Equal(t, 300*time.Millisecond, mh.Debounce)
		require.NoError(t, vdom.Fire(input, "input", "abc"))
		assert.Equal(t, "abc", rec.Events()[0].Value)
	})
}

func TestNumberInputReportsFloat(t *testing.T) {
	rec := dispatchtest.New()
	n := InputValue(widget.ComponentFunc(toolkit.NumberInput), Config{ValueExtractor: TargetNumber}).
		Render(rec.Context(nil), vdom.Props{"id": "n"}, nil)
	require.NoError(t, vdom.Fire(vdom.Find(n, vdom.ByTag("input")), "input", "12"))
	assert.Equal(t, 12.0, rec.Events()[0].Value)
}

func TestInlineElementResolution(t *testing.T) {
	c := &capture{}
	ctx := &widget.Context{Resolver: tagResolver{}}
	Inline(c, "leftSection", "rightSection", "icon").Render(ctx, vdom.Props{
		"leftSection":  widget.New("icon", vdom.Props{"name": "home"}),
		"rightSection": "text",
		"icon":         []any{map[string]any{"tag": "badge"}, "x"},
		"other":        widget.New("ignored", nil),
	}, nil)

	left, ok := c.props["leftSection"].(*vdom.VNode)
	require.True(t, ok)
	assert.Equal(t, "icon", left.Tag)
	assert.Equal(t, "text", c.props["rightSection"])

	frag, ok := c.props["icon"].(*vdom.VNode)
	require.True(t, ok)
	assert.Equal(t, vdom.KindFragment, frag.Kind)
	require.Len(t, frag.Children, 2)
	assert.Equal(t, "badge", frag.Children[0].Tag)

	_, resolved := c.props["other"].(*vdom.VNode)
	assert.False(t, resolved)
}

func TestCallbackDecorator(t *testing.T) {
	custom := func(v any) string { return "custom" }
	cfg := Config{CallbackAttrs: map[string]Formatter{
		"valueFormatter":        Compact,
		"tooltipLabelFormatter": nil,
	}}

	tests := []struct {
		name  string
		props vdom.Props
		value string
		label string
	}{
		{"defaults", vdom.Props{}, "1.5K", "1500"},
		{"named", vdom.Props{"valueFormatter": "currency"}, "$1,500.00", "1500"},
		{"unknown name falls back", vdom.Props{"valueFormatter": "roman"}, "1.5K", "1500"},
		{"function kept", vdom.Props{"tooltipLabelFormatter": custom}, "1.5K", "custom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &capture{}
			d := Callbacks(c, cfg)
			d.Render(nil, tt.props, nil)
			assert.Equal(t, tt.value, c.props["valueFormatter"].(func(any) string)(1500))
			assert.Equal(t, tt.label, c.props["tooltipLabelFormatter"].(func(any) string)(1500))
			assert.False(t, d.Dispatches())
		})
	}
}

func TestDecoratorMetadata(t *testing.T) {
	c := &capture{}
	d := Event(c, Config{})
	assert.Equal(t, KindEvent, d.Kind())
	assert.Equal(t, "click", d.Config().EventName)
	assert.Equal(t, "onClick", d.Config().EventSourceAttr)
	assert.True(t, d.Dispatches())
	assert.Same(t, c, d.Unwrap())

	v := Value(c, Config{})
	assert.Equal(t, "change", v.Config().EventName)
	assert.Equal(t, "value", v.Config().ValueAttr)
	assert.False(t, Inline(c).Dispatches())
	assert.Equal(t, "input", KindInputValue.String())
}

func TestParseCommit(t *testing.T) {
	for in, want := range map[string]Commit{"": CommitChange, "change": CommitChange, "blur": CommitBlur, "debounce": CommitDebounce} {
		got, ok := ParseCommit(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseCommit("never")
	assert.False(t, ok)
}

func TestCountingDispatcher(t *testing.T) {
	m := metrics.New()
	rec := dispatchtest.New()
	d := Logging(Counting(rec, m), nil)
	d.Dispatch(widget.Event{ComponentID: "a", Name: "click"})
	d.Dispatch(widget.Event{ComponentID: "a", Name: "change", Value: 1, HasValue: true})

	assert.Equal(t, 2, rec.Len())
	n, err := testutil.GatherAndCount(m.Registry(), "sdui_dispatches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	Counting(nil, nil).Dispatch(widget.Event{Name: "click"})
}
