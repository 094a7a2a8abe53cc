// Package registry is the table that maps abstract widget tags to
// decorated components.
//
// A registry is filled once at startup and read by the tree walker on
// every render. Re-registering a tag replaces its component. After the
// write phase, ForceUpdate bumps the snapshot generation so walkers drop
// their cached lookups.
//
//	reg := registry.New(registry.WithLogger(logger))
//	reg.Register("button", button)
//	reg.ForceUpdate()
//
// The package also keeps a process-wide registry, filled through Init:
//
//	err := registry.Init(func(r *registry.Registry) error {
//	    return bootstrap.Register(r, opts)
//	})
package registry
