// Package group renders option-group widgets: explicit children followed by
// one generated item per option, inside a group container that owns the
// selection state.
package group

import (
	"log/slog"

	"github.com/vango-dev/sdui/internal/errors"
	"github.com/vango-dev/sdui/pkg/toolkit"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// DefaultGap is the spacing of the option layout container.
const DefaultGap = "sm"

// Duplicates selects how repeated option values are handled.
type Duplicates int

const (
	// LastWins keeps the later option at the position of the first.
	LastWins Duplicates = iota
	// Reject drops the later option and logs an E206 error.
	Reject
)

// GroupFunc wraps the combined children in the group-level container.
type GroupFunc func(children []*vdom.VNode, props vdom.Props) *vdom.VNode

// ItemFunc renders the control for one option.
type ItemFunc func(opt widget.Option) *vdom.VNode

// LayoutFunc renders the container holding the generated items.
type LayoutFunc func(props vdom.Props, items []*vdom.VNode) *vdom.VNode

// Renderer is the generic option-group algorithm shared by the adapters.
type Renderer struct {
	Gap        string
	Duplicates Duplicates
	Layout     LayoutFunc
	Logger     *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGap sets the default spacing of the option container.
func WithGap(gap string) Option {
	return func(r *Renderer) { r.Gap = gap }
}

// WithDuplicates sets the duplicate value policy.
func WithDuplicates(d Duplicates) Option {
	return func(r *Renderer) { r.Duplicates = d }
}

// WithLayout replaces the option container.
func WithLayout(l LayoutFunc) Option {
	return func(r *Renderer) { r.Layout = l }
}

// WithLogger sets the logger used for rejected options.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.Logger = l }
}

// NewRenderer returns a Renderer laying options out in a toolkit Flex.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{Gap: DefaultGap}
	for _, opt := range opts {
		opt(r)
	}
	if r.Layout == nil {
		r.Layout = func(props vdom.Props, items []*vdom.VNode) *vdom.VNode {
			return toolkit.Flex(nil, props, items)
		}
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	return r
}

// Render builds the group: explicit children in order, then, when options
// is non-empty, a layout container holding one item per option keyed by
// its value. layoutProps override the default gap. The combined children
// and otherProps go to group.
func (r *Renderer) Render(children []*vdom.VNode, options []widget.Option, group GroupFunc, item ItemFunc, layoutProps, otherProps vdom.Props) *vdom.VNode {
	combined := make([]*vdom.VNode, 0, len(children)+1)
	for _, c := range children {
		if c != nil {
			combined = append(combined, c)
		}
	}

	options, err := r.Dedupe(options)
	if err != nil {
		r.Logger.Warn("duplicate option values", "id", otherProps.GetString("id"), "error", err)
	}
	if len(options) > 0 {
		items := make([]*vdom.VNode, 0, len(options))
		for _, opt := range options {
			n := item(opt)
			if n == nil {
				continue
			}
			n.Key = opt.Value
			if n.Props != nil {
				n.Props["key"] = opt.Value
			}
			items = append(items, n)
		}

		props := vdom.Props{"gap": r.gap()}
		for k, v := range layoutProps {
			props[k] = v
		}
		combined = append(combined, r.Layout(props, items))
	}
	return group(combined, otherProps)
}

func (r *Renderer) gap() string {
	if r.Gap == "" {
		return DefaultGap
	}
	return r.Gap
}

// Dedupe applies the duplicate policy to options. Under LastWins the later
// option replaces the earlier one in place; under Reject the later one is
// dropped and reported as an E206 error alongside the kept options.
func (r *Renderer) Dedupe(options []widget.Option) ([]widget.Option, error) {
	index := make(map[string]int, len(options))
	out := make([]widget.Option, 0, len(options))
	var dups []string
	for _, opt := range options {
		i, seen := index[opt.Value]
		switch {
		case !seen:
			index[opt.Value] = len(out)
			out = append(out, opt)
		case r.Duplicates == LastWins:
			out[i] = opt
		default:
			dups = append(dups, opt.Value)
		}
	}
	if len(dups) > 0 {
		return out, errors.New("E206").WithDetailf("%q", dups)
	}
	return out, nil
}
