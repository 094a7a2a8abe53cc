package registry

import (
	"sync"

	"github.com/vango-dev/sdui/pkg/widget"
)

var (
	defaultRegistry = New()

	initOnce sync.Once
	initErr  error
)

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Init runs setup against the process-wide registry exactly once and
// then signals a snapshot change. Later calls return the first result
// without running setup again.
func Init(setup func(*Registry) error) error {
	initOnce.Do(func() {
		if initErr = setup(defaultRegistry); initErr != nil {
			return
		}
		defaultRegistry.ForceUpdate()
	})
	return initErr
}

// Register stores c under tag in the process-wide registry.
func Register(tag string, c widget.Component) error {
	return defaultRegistry.Register(tag, c)
}

// Lookup returns the component registered under tag in the process-wide
// registry.
func Lookup(tag string) (widget.Component, bool) {
	return defaultRegistry.Lookup(tag)
}

// ForceUpdate signals a snapshot change on the process-wide registry.
func ForceUpdate() uint64 {
	return defaultRegistry.ForceUpdate()
}
