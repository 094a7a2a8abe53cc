// Package vdom provides the virtual node model the widget bridge renders into.
//
// A resolved widget tree is a tree of *VNode values. Props holds attributes
// and event handlers; handlers are plain Go funcs stored under "on*" keys
// and are triggered with Fire or Invoke.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    Span(Text("Title")),
//	    OnClick(handler),
//	)
//
// # Handler modifiers
//
// Debounce, Throttle and Once wrap a handler in a ModifiedHandler. The
// client runtime applies the timing; Invoke always unwraps to the innermost
// handler.
package vdom
