package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining non-empty classes with spaces.
func Class(classes ...string) Attr { return attr("class", CN(classes...)) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaChecked sets the aria-checked attribute.
func AriaChecked(checked bool) Attr { return attr("aria-checked", checked) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }

// AriaBusy sets the aria-busy attribute.
func AriaBusy(busy bool) Attr { return attr("aria-busy", busy) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v any) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Checked sets the checked attribute.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Selected sets the selected attribute.
func Selected(selected bool) Attr { return attr("selected", selected) }

// Open sets the open attribute.
func Open(open bool) Attr { return attr("open", open) }

// Min sets the min attribute.
func Min(v any) Attr { return attr("min", v) }

// Max sets the max attribute.
func Max(v any) Attr { return attr("max", v) }

// Step sets the step attribute.
func Step(v any) Attr { return attr("step", v) }

// ViewBox sets the SVG viewBox attribute.
func ViewBox(box string) Attr { return attr("viewBox", box) }

// D sets the SVG path data attribute.
func D(path string) Attr { return attr("d", path) }

// CN joins class names, dropping empty entries.
func CN(classes ...string) string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
