// Package widget defines the contracts shared by every layer of the bridge.
//
// A Descriptor is the server-supplied description of one UI element: a tag,
// its props and its children. A Component turns resolved props and children
// into a *vdom.VNode. The Context handed to a Component carries the
// Dispatcher that reports user events back to the runtime and the Resolver
// that turns nested descriptors (inline elements) into nodes.
package widget
