package dispatch

import (
	"time"
)

// Kind identifies a decorator kind.
type Kind int

const (
	// KindInline only resolves inline-element props.
	KindInline Kind = iota
	// KindEvent reports an event with no value.
	KindEvent
	// KindValue reports an event with an extracted value and controls
	// the component through its value attribute.
	KindValue
	// KindInputValue is KindValue for free-text inputs with a commit mode.
	KindInputValue
	// KindCallback substitutes default callback implementations.
	KindCallback
)

// String returns the kind name used in registry listings.
func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindEvent:
		return "event"
	case KindValue:
		return "value"
	case KindInputValue:
		return "input"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// Commit selects when an Input Value decorator reports the text.
type Commit int

const (
	// CommitChange reports on every change (keystroke).
	CommitChange Commit = iota
	// CommitBlur reports when the input loses focus.
	CommitBlur
	// CommitDebounce reports changes after the client observes a quiet
	// period of Config.Debounce.
	CommitDebounce
)

// ParseCommit maps a configuration string to a Commit mode.
func ParseCommit(s string) (Commit, bool) {
	switch s {
	case "", "change":
		return CommitChange, true
	case "blur":
		return CommitBlur, true
	case "debounce":
		return CommitDebounce, true
	}
	return CommitChange, false
}

func (c Commit) String() string {
	switch c {
	case CommitBlur:
		return "blur"
	case CommitDebounce:
		return "debounce"
	default:
		return "change"
	}
}

// DefaultDebounce is the quiet period used by CommitDebounce when
// Config.Debounce is zero.
const DefaultDebounce = 300 * time.Millisecond

// Formatter is the callback shape substituted by the Callback decorator.
type Formatter = func(value any) string

// Config is the per-tag decorator configuration, fixed at registration.
type Config struct {
	// EventName is reported to the runtime. Defaults to "click" for event
	// decorators and "change" for value decorators.
	EventName string
	// EventSourceAttr is the native callback prop the decorator installs.
	// Defaults to "onClick" for event decorators and "onChange" otherwise.
	EventSourceAttr string
	// ValueAttr is the native prop carrying the current value. The
	// declarative "value" prop is moved there. Defaults to "value".
	ValueAttr string
	// ValueExtractor maps the native callback argument to the reported
	// value. Defaults to Identity (TargetValue for input decorators).
	ValueExtractor Extractor
	// InlineElementAttrs name props whose value may be a nested descriptor.
	InlineElementAttrs []string
	// CallbackAttrs maps callback props to their default implementation.
	CallbackAttrs map[string]Formatter
	// Commit and Debounce apply to input decorators only.
	Commit   Commit
	Debounce time.Duration
}

// withDefaults fills the zero fields of c for kind.
func (c Config) withDefaults(kind Kind) Config {
	switch kind {
	case KindEvent:
		if c.EventName == "" {
			c.EventName = "click"
		}
		if c.EventSourceAttr == "" {
			c.EventSourceAttr = "onClick"
		}
	case KindValue, KindInputValue:
		if c.EventName == "" {
			c.EventName = "change"
		}
		if c.EventSourceAttr == "" {
			c.EventSourceAttr = "onChange"
		}
		if c.ValueAttr == "" {
			c.ValueAttr = "value"
		}
		if c.ValueExtractor == nil {
			c.ValueExtractor = Identity
			if kind == KindInputValue {
				c.ValueExtractor = TargetValue
			}
		}
		if kind == KindInputValue && c.Commit == CommitDebounce && c.Debounce <= 0 {
			c.Debounce = DefaultDebounce
		}
	}
	return c
}
