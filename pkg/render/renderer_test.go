package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/sdui/pkg/vdom"
)

func renderString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	out, err := NewRenderer(RendererConfig{}).RenderToString(node)
	require.NoError(t, err)
	return out
}

func TestRenderElement(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"nil", nil, ""},
		{"empty div", vdom.Div(), "<div></div>"},
		{"text escaped", vdom.P("a < b & c"), "<p>a &lt; b &amp; c</p>"},
		{"sorted attrs", vdom.Div(vdom.ID("x"), vdom.Class("c")), `<div class="c" id="x"></div>`},
		{"void element", vdom.Input(vdom.Type("text")), `<input type="text">`},
		{"boolean true", vdom.Input(vdom.Checked(true)), `<input checked>`},
		{"boolean false", vdom.Input(vdom.Checked(false)), `<input>`},
		{"non-boolean bool", vdom.Div(vdom.AriaHidden(true)), `<div aria-hidden="true"></div>`},
		{"number", vdom.Progress(vdom.Value(0.5)), `<progress value="0.5"></progress>`},
		{"attr escaped", vdom.Div(vdom.Attr{Key: "title", Value: `"q"`}), `<div title="&quot;q&quot;"></div>`},
		{"internal and key skipped", vdom.Div(vdom.Key("k"), vdom.Attr{Key: "_x", Value: "y"}), `<div></div>`},
		{"non-scalar dropped", vdom.Div(vdom.Attr{Key: "data", Value: []int{1}}), `<div></div>`},
		{"className alias", vdom.Div(vdom.Attr{Key: "className", Value: "c"}), `<div class="c"></div>`},
		{"fragment", vdom.Fragment("a", vdom.Span("b")), "a<span>b</span>"},
		{"raw", vdom.Raw("<b>x</b>"), "<b>x</b>"},
		{"component", vdom.Div(vdom.Func(func() *vdom.VNode { return vdom.Text("c") })), "<div>c</div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderString(t, tt.node))
		})
	}
}

func TestRenderEventMarkers(t *testing.T) {
	node := vdom.Button(
		vdom.OnClick(func() {}),
		vdom.OnInput(vdom.Debounce(time.Millisecond, func(string) {})),
		"Go",
	)
	assert.Equal(t, `<button data-on-click="true" data-on-input="true">Go</button>`, renderString(t, node))
}

func TestRenderPretty(t *testing.T) {
	node := vdom.Div(vdom.Ul(vdom.Li("a")), vdom.Span("s"))
	out, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(node)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  <ul>\n")
	assert.Contains(t, out, "    <li>a</li>\n")
	assert.Contains(t, out, "  <span>s</span>\n")
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(99)})
	assert.Error(t, err)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	err := NewRenderer(RendererConfig{}).RenderToWriter(failWriter{}, vdom.Div("x"))
	assert.EqualError(t, err, "closed")
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{Title: "T", Body: vdom.Div("b")})
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n<html>"))
	assert.Contains(t, out, "<title>T</title>")
	assert.Contains(t, out, "<body><div>b</div></body>")
}
