package render

import (
	"io"

	"github.com/vango-dev/sdui/pkg/vdom"
)

// PageData describes a standalone HTML document wrapping a rendered tree.
type PageData struct {
	Title string
	Body  *vdom.VNode
}

// RenderPage writes a complete HTML5 document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	doc := vdom.El("html",
		vdom.El("head",
			vdom.El("meta", vdom.Attr{Key: "charset", Value: "utf-8"}),
			vdom.El("title", page.Title),
		),
		vdom.El("body", page.Body),
	)
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return r.RenderToWriter(w, doc)
}
