package icon

import (
	"context"
	"fmt"
	"sort"

	"github.com/vango-dev/sdui/pkg/vdom"
)

// outline holds 24x24 stroke path data for the built-in set.
var outline = map[string][]string{
	"IconAlertTriangle": {"M12 9v4", "M10.363 3.591l-8.106 13.534a1.914 1.914 0 0 0 1.636 2.871h16.214a1.914 1.914 0 0 0 1.636 -2.87l-8.106 -13.536a1.914 1.914 0 0 0 -3.274 0z", "M12 16h.01"},
	"IconBell":          {"M10 5a2 2 0 1 1 4 0a7 7 0 0 1 4 6v3a4 4 0 0 0 2 3h-16a4 4 0 0 0 2 -3v-3a7 7 0 0 1 4 -6", "M9 17v1a3 3 0 0 0 6 0v-1"},
	"IconCalendar":      {"M4 7a2 2 0 0 1 2 -2h12a2 2 0 0 1 2 2v12a2 2 0 0 1 -2 2h-12a2 2 0 0 1 -2 -2v-12z", "M16 3v4", "M8 3v4", "M4 11h16"},
	"IconCheck":         {"M5 12l5 5l10 -10"},
	"IconChevronDown":   {"M6 9l6 6l6 -6"},
	"IconChevronLeft":   {"M15 6l-6 6l6 6"},
	"IconChevronRight":  {"M9 6l6 6l-6 6"},
	"IconChevronUp":     {"M6 15l6 -6l6 6"},
	"IconClock":         {"M3 12a9 9 0 1 0 18 0a9 9 0 0 0 -18 0", "M12 7v5l3 3"},
	"IconCopy":          {"M7 7m0 2.667a2.667 2.667 0 0 1 2.667 -2.667h8.666a2.667 2.667 0 0 1 2.667 2.667v8.666a2.667 2.667 0 0 1 -2.667 2.667h-8.666a2.667 2.667 0 0 1 -2.667 -2.667z", "M4.012 16.737a2.005 2.005 0 0 1 -1.012 -1.737v-10c0 -1.1 .9 -2 2 -2h10c.75 0 1.158 .385 1.5 1"},
	"IconDownload":      {"M4 17v2a2 2 0 0 0 2 2h12a2 2 0 0 0 2 -2v-2", "M7 11l5 5l5 -5", "M12 4l0 12"},
	"IconEdit":          {"M7 7h-1a2 2 0 0 0 -2 2v9a2 2 0 0 0 2 2h9a2 2 0 0 0 2 -2v-1", "M20.385 6.585a2.1 2.1 0 0 0 -2.97 -2.97l-8.415 8.385v3h3l8.385 -8.415z", "M16 5l3 3"},
	"IconExternalLink":  {"M12 6h-6a2 2 0 0 0 -2 2v10a2 2 0 0 0 2 2h10a2 2 0 0 0 2 -2v-6", "M11 13l9 -9", "M15 4h5v5"},
	"IconFileUnknown":   {"M14 3v4a1 1 0 0 0 1 1h4", "M17 21h-10a2 2 0 0 1 -2 -2v-14a2 2 0 0 1 2 -2h7l5 5v11a2 2 0 0 1 -2 2z", "M12 17v.01", "M12 14a1.5 1.5 0 1 0 -1.14 -2.474"},
	"IconHeart":         {"M19.5 12.572l-7.5 7.428l-7.5 -7.428a5 5 0 1 1 7.5 -6.566a5 5 0 1 1 7.5 6.572"},
	"IconHome":          {"M5 12l-2 0l9 -9l9 9l-2 0", "M5 12v7a2 2 0 0 0 2 2h10a2 2 0 0 0 2 -2v-7", "M9 21v-6a2 2 0 0 1 2 -2h2a2 2 0 0 1 2 2v6"},
	"IconInfoCircle":    {"M3 12a9 9 0 1 0 18 0a9 9 0 0 0 -18 0", "M12 9h.01", "M11 12h1v4h1"},
	"IconMail":          {"M3 7a2 2 0 0 1 2 -2h14a2 2 0 0 1 2 2v10a2 2 0 0 1 -2 2h-14a2 2 0 0 1 -2 -2v-10z", "M3 7l9 6l9 -6"},
	"IconMenu2":         {"M4 6l16 0", "M4 12l16 0", "M4 18l16 0"},
	"IconMinus":         {"M5 12l14 0"},
	"IconPlus":          {"M12 5l0 14", "M5 12l14 0"},
	"IconQuestionMark":  {"M8 8a3.5 3 0 0 1 3.5 -3h1a3.5 3 0 0 1 3.5 3a3 3 0 0 1 -2 3a3 4 0 0 0 -2 4", "M12 19l0 .01"},
	"IconSearch":        {"M10 10m-7 0a7 7 0 1 0 14 0a7 7 0 1 0 -14 0", "M21 21l-6 -6"},
	"IconSettings":      {"M10.325 4.317c.426 -1.756 2.924 -1.756 3.35 0a1.724 1.724 0 0 0 2.573 1.066c1.543 -.94 3.31 .826 2.37 2.37a1.724 1.724 0 0 0 1.065 2.572c1.756 .426 1.756 2.924 0 3.35a1.724 1.724 0 0 0 -1.066 2.573c.94 1.543 -.826 3.31 -2.37 2.37a1.724 1.724 0 0 0 -2.572 1.065c-.426 1.756 -2.924 1.756 -3.35 0a1.724 1.724 0 0 0 -2.573 -1.066c-1.543 .94 -3.31 -.826 -2.37 -2.37a1.724 1.724 0 0 0 -1.065 -2.572c-1.756 -.426 -1.756 -2.924 0 -3.35a1.724 1.724 0 0 0 1.066 -2.573c-.94 -1.543 .826 -3.31 2.37 -2.37c1 .608 2.296 .07 2.572 -1.065z", "M9 12a3 3 0 1 0 6 0a3 3 0 0 0 -6 0"},
	"IconStar":          {"M12 17.75l-6.172 3.245l1.179 -6.873l-5 -4.867l6.9 -1l3.086 -6.253l3.086 6.253l6.9 1l-5 4.867l1.179 6.873z"},
	"IconTrash":         {"M4 7l16 0", "M10 11l0 6", "M14 11l0 6", "M5 7l1 12a2 2 0 0 0 2 2h8a2 2 0 0 0 2 -2l1 -12", "M9 7v-3a1 1 0 0 1 1 -1h4a1 1 0 0 1 1 1v3"},
	"IconUpload":        {"M4 17v2a2 2 0 0 0 2 2h12a2 2 0 0 0 2 -2v-2", "M7 9l5 -5l5 5", "M12 4l0 12"},
	"IconUser":          {"M8 7a4 4 0 1 0 8 0a4 4 0 0 0 -8 0", "M6 21v-2a4 4 0 0 1 4 -4h4a4 4 0 0 1 4 4v2"},
	"IconX":             {"M18 6l-12 12", "M6 6l12 12"},
}

// SetModule is an eagerly loaded Module backed by SVG path data.
type SetModule struct {
	icons map[string][]string
}

// Builtin returns the module holding the built-in outline set.
func Builtin() *SetModule {
	return &SetModule{icons: outline}
}

// NewSet returns a module over custom path data keyed by canonical name.
func NewSet(icons map[string][]string) *SetModule {
	return &SetModule{icons: icons}
}

// Lookup implements Module.
func (m *SetModule) Lookup(ctx context.Context, canonical string) (Factory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	paths, ok := m.icons[canonical]
	if !ok {
		return nil, ErrNotFound
	}
	return SVG(canonical, paths...), nil
}

// Names returns the canonical names in the set, sorted.
func (m *SetModule) Names() []string {
	names := make([]string, 0, len(m.icons))
	for name := range m.icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SVG returns a Factory that draws paths as a 24x24 outline icon.
// Recognized props: size (default 24), stroke (default 2), color, class.
// Remaining scalar props are copied onto the <svg> element.
func SVG(canonical string, paths ...string) Factory {
	return func(props vdom.Props) *vdom.VNode {
		size := sizeProp(props["size"], "24")
		stroke := sizeProp(props["stroke"], "2")
		color := props.GetString("color")
		if color == "" {
			color = "currentColor"
		}

		args := []any{
			extraAttrs(props),
			vdom.Attr{Key: "xmlns", Value: "http://www.w3.org/2000/svg"},
			vdom.Attr{Key: "width", Value: size},
			vdom.Attr{Key: "height", Value: size},
			vdom.ViewBox("0 0 24 24"),
			vdom.Attr{Key: "fill", Value: "none"},
			vdom.Attr{Key: "stroke", Value: color},
			vdom.Attr{Key: "stroke-width", Value: stroke},
			vdom.Attr{Key: "stroke-linecap", Value: "round"},
			vdom.Attr{Key: "stroke-linejoin", Value: "round"},
			vdom.Class("icon", props.GetString("class")),
			vdom.Data("icon", canonical),
		}
		for _, d := range paths {
			args = append(args, vdom.Path(vdom.D(d)))
		}
		return vdom.Svg(args...)
	}
}

func sizeProp(v any, def string) string {
	switch s := v.(type) {
	case nil:
		return def
	case string:
		if s == "" {
			return def
		}
		return s
	default:
		return fmt.Sprint(s)
	}
}

func extraAttrs(props vdom.Props) vdom.Props {
	out := vdom.Props{}
	for k, v := range props {
		switch k {
		case "size", "stroke", "color", "class", "name":
			continue
		}
		switch v.(type) {
		case string, bool, int, float64:
			out[k] = v
		}
	}
	return out
}
