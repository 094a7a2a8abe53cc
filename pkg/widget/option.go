package widget

import (
	stderrors "errors"
	"fmt"

	"github.com/vango-dev/sdui/internal/errors"
)

// Option is one selectable item of a group widget. Value identifies the
// item within its group; Label is display text. Extra carries any other
// keys present on the source object (e.g. "disabled", "color").
type Option struct {
	Label string
	Value string
	Extra map[string]any
}

// ParseOptions converts a decoded "options" prop into Options.
//
// Accepted inputs are []Option, []map[string]any and []any whose elements
// are maps or plain strings (a string s becomes {Label: s, Value: s}).
// Malformed entries are skipped; the returned error joins one E205 error per
// skipped entry, so callers may keep the valid options and log the error.
func ParseOptions(v any) ([]Option, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []Option:
		return list, nil
	case []map[string]any:
		items := make([]any, len(list))
		for i, m := range list {
			items[i] = m
		}
		return parseOptionList(items)
	case []any:
		return parseOptionList(list)
	case []string:
		out := make([]Option, len(list))
		for i, s := range list {
			out[i] = Option{Label: s, Value: s}
		}
		return out, nil
	default:
		return nil, errors.New("E205").WithDetailf("options must be a list, got %T", v)
	}
}

func parseOptionList(items []any) ([]Option, error) {
	out := make([]Option, 0, len(items))
	var errs []error
	for i, item := range items {
		opt, err := parseOption(item)
		if err != nil {
			errs = append(errs, errors.New("E205").WithDetailf("option %d: %s", i, err))
			continue
		}
		out = append(out, opt)
	}
	return out, stderrors.Join(errs...)
}

func parseOption(item any) (Option, error) {
	switch o := item.(type) {
	case Option:
		return o, nil
	case string:
		return Option{Label: o, Value: o}, nil
	case map[string]any:
		raw, ok := o["value"]
		if !ok || raw == nil {
			return Option{}, fmt.Errorf(`missing "value"`)
		}
		opt := Option{Value: scalarString(raw)}
		if label, ok := o["label"]; ok && label != nil {
			opt.Label = scalarString(label)
		} else {
			opt.Label = opt.Value
		}
		for k, v := range o {
			if k == "value" || k == "label" {
				continue
			}
			if opt.Extra == nil {
				opt.Extra = make(map[string]any)
			}
			opt.Extra[k] = v
		}
		return opt, nil
	default:
		return Option{}, fmt.Errorf("unsupported option type %T", item)
	}
}

func scalarString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
