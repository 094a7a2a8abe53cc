package vdom

import "time"

// ModifiedHandler wraps a handler with timing and lifecycle flags.
// The client runtime applies Debounce, Throttle and Once; server-side
// invocation always goes straight to the innermost handler.
type ModifiedHandler struct {
	// The wrapped handler function
	Handler any

	Debounce time.Duration // Debounce delay
	Throttle time.Duration // Throttle interval
	Once     bool          // Remove handler after first trigger
}

// Unwrap returns the innermost handler, unwrapping any nested ModifiedHandlers.
func (m ModifiedHandler) Unwrap() any {
	if inner, ok := m.Handler.(ModifiedHandler); ok {
		return inner.Unwrap()
	}
	return m.Handler
}

// Debounce wraps a handler so the client waits for d of quiet before
// sending the event.
//
// Example:
//
//	OnInput(vdom.Debounce(300*time.Millisecond, func(value string) {
//	    search(value)
//	}))
func Debounce(d time.Duration, handler any) ModifiedHandler {
	if mh, ok := handler.(ModifiedHandler); ok {
		mh.Debounce = d
		return mh
	}
	return ModifiedHandler{Handler: handler, Debounce: d}
}

// Throttle wraps a handler so the client sends at most one event per d.
func Throttle(d time.Duration, handler any) ModifiedHandler {
	if mh, ok := handler.(ModifiedHandler); ok {
		mh.Throttle = d
		return mh
	}
	return ModifiedHandler{Handler: handler, Throttle: d}
}

// Once wraps a handler so it is removed after its first trigger.
func Once(handler any) ModifiedHandler {
	if mh, ok := handler.(ModifiedHandler); ok {
		mh.Once = true
		return mh
	}
	return ModifiedHandler{Handler: handler, Once: true}
}
