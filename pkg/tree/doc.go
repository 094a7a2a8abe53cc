// Package tree walks widget descriptor trees and renders them through a
// component registry.
//
// Children are resolved leaves first. Primitive children become text
// nodes and nil children are skipped. A tag with no registered component
// renders as a plain element with the same name and its props passed
// through unmodified.
//
// Registry lookups are cached until the registry's ForceUpdate signal:
//
//	w := tree.New(reg, tree.WithDispatcher(runtime), tree.WithLogger(logger))
//	defer w.Close()
//	node := w.Render(ctx, desc)
//
// Components that dispatch events get a generated uuid as their id when
// the descriptor carries none.
package tree
