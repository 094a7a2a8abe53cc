package dispatch

import (
	"strconv"
	"strings"

	"github.com/vango-dev/sdui/pkg/toolkit"
)

// Extractor maps a native callback argument to the dispatched value.
type Extractor func(arg any) any

// Identity reports the callback argument itself.
func Identity(arg any) any { return arg }

// TargetValue reports currentTarget.value of a change event. Bare values
// pass through.
func TargetValue(arg any) any {
	switch e := arg.(type) {
	case toolkit.ChangeEvent:
		return e.CurrentTarget.Value
	case *toolkit.ChangeEvent:
		if e == nil {
			return nil
		}
		return e.CurrentTarget.Value
	}
	return arg
}

// TargetChecked reports currentTarget.checked of a change event. Bare
// booleans pass through.
func TargetChecked(arg any) any {
	switch e := arg.(type) {
	case toolkit.ChangeEvent:
		return e.CurrentTarget.Checked
	case *toolkit.ChangeEvent:
		if e == nil {
			return false
		}
		return e.CurrentTarget.Checked
	}
	return arg
}

// TargetNumber reports currentTarget.value parsed as a float64. An empty
// value reports nil; text that does not parse is reported as is.
func TargetNumber(arg any) any {
	v := TargetValue(arg)
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
