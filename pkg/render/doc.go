// Package render writes resolved widget trees as HTML.
//
// It is used by the preview server and the render command, and by tests
// that assert on markup. Output is deterministic: attributes are sorted,
// event handlers are replaced by data-on-* markers, internal props (those
// starting with "_") and non-scalar values are dropped.
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(node)
package render
