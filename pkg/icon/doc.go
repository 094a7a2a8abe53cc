// Package icon resolves icon names to rendered SVG nodes.
//
// Names are canonicalized ("home" becomes "IconHome") and looked up in a
// Module. Lookups run in the background, one per canonical name: while a
// lookup is pending Resolve returns a stable placeholder, and once it
// settles every later request reuses the result. A miss or a load error
// renders the fallback icon and is logged, never returned to the caller.
//
//	r := icon.NewResolver(icon.Builtin(), icon.WithOnSettle(rerender))
//	node := r.Resolve("home", vdom.Props{"size": 20})
package icon
