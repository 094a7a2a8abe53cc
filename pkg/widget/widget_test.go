package widget

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/sdui/internal/errors"
	"github.com/vango-dev/sdui/pkg/vdom"
)

func TestNilContextIsSafe(t *testing.T) {
	var ctx *Context
	ctx.Dispatch(Event{Name: "click"})
	assert.Equal(t, "x", ctx.Resolve("x").Text)
	assert.Nil(t, ctx.Resolve(nil))
	assert.NotNil(t, ctx.Log())
}

func TestContextDispatch(t *testing.T) {
	var got []Event
	ctx := &Context{Dispatcher: DispatchFunc(func(e Event) { got = append(got, e) })}
	ctx.Dispatch(Event{ComponentID: "b1", Name: "click"})
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ComponentID)
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := &Context{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	ctx.Log().Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestComponentIDAndOmit(t *testing.T) {
	props := vdom.Props{"id": "c1", "label": "L", "x": 1}
	assert.Equal(t, "c1", ComponentID(props))

	rest := Omit(props, "label", "x")
	assert.Equal(t, vdom.Props{"id": "c1"}, rest)
	assert.Len(t, props, 3, "Omit must not mutate its input")
}

func TestPrimitive(t *testing.T) {
	node := vdom.Div()
	tests := []struct {
		in   any
		want string
	}{
		{"s", "s"},
		{true, "true"},
		{1.5, "1.5"},
		{3.0, "3"},
		{7, "7"},
		{int64(9), "9"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Primitive(tt.in).Text)
	}
	assert.Same(t, node, Primitive(node))
	assert.Nil(t, Primitive(nil))
}

func TestDecodeJSON(t *testing.T) {
	d, err := DecodeJSON([]byte(`{
		"tag": "stack",
		"props": {"gap": "md"},
		"children": [
			"hello",
			{"tag": "button", "props": {"id": "b1"}, "children": ["Go"]},
			42
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "stack", d.Tag)
	assert.Equal(t, "md", d.Props["gap"])
	require.Len(t, d.Children, 3)
	child, ok := d.Children[1].(*Descriptor)
	require.True(t, ok)
	assert.Equal(t, "button", child.Tag)
	assert.Equal(t, []any{"Go"}, child.Children)
	assert.Equal(t, 42.0, d.Children[2])
}

func TestDecodeYAML(t *testing.T) {
	d, err := DecodeYAML([]byte(`
tag: text
props:
  size: sm
children: hi
`))
	require.NoError(t, err)
	assert.Equal(t, "text", d.Tag)
	assert.Equal(t, []any{"hi"}, d.Children)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"not an object", "button"},
		{"missing tag", map[string]any{"props": map[string]any{}}},
		{"bad props", map[string]any{"tag": "x", "props": []any{1}}},
		{"bad child", map[string]any{"tag": "x", "children": []any{map[string]any{"tag": ""}}}},
		{"nil pointer", (*Descriptor)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.in)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, "E204"), "got %v", err)
		})
	}

	_, err := DecodeJSON([]byte(`{`))
	assert.True(t, errors.HasCode(err, "E204"))
}

func TestIsDescriptor(t *testing.T) {
	assert.True(t, IsDescriptor(New("icon", nil)))
	assert.True(t, IsDescriptor(Descriptor{Tag: "x"}))
	assert.True(t, IsDescriptor(map[string]any{"tag": "x"}))
	assert.False(t, IsDescriptor(map[string]any{"name": "x"}))
	assert.False(t, IsDescriptor("home"))
	assert.False(t, IsDescriptor((*Descriptor)(nil)))
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]any{
		map[string]any{"label": "A", "value": "a"},
		map[string]any{"value": 2.0, "disabled": true},
		"c",
	})
	require.NoError(t, err)
	require.Len(t, opts, 3)
	assert.Equal(t, Option{Label: "A", Value: "a"}, opts[0])
	assert.Equal(t, "2", opts[1].Value)
	assert.Equal(t, "2", opts[1].Label)
	assert.Equal(t, map[string]any{"disabled": true}, opts[1].Extra)
	assert.Equal(t, Option{Label: "c", Value: "c"}, opts[2])
}

func TestParseOptionsSkipsMalformed(t *testing.T) {
	opts, err := ParseOptions([]map[string]any{
		{"label": "no value"},
		{"label": "B", "value": "b"},
	})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E205"))
	require.Len(t, opts, 1)
	assert.Equal(t, "b", opts[0].Value)
}

func TestParseOptionsShapes(t *testing.T) {
	opts, err := ParseOptions(nil)
	assert.NoError(t, err)
	assert.Empty(t, opts)

	opts, err = ParseOptions([]string{"x", "y"})
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	given := []Option{{Label: "L", Value: "v"}}
	opts, err = ParseOptions(given)
	require.NoError(t, err)
	assert.Equal(t, given, opts)

	_, err = ParseOptions(42)
	assert.True(t, errors.HasCode(err, "E205"))
}
