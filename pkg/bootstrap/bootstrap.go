package bootstrap

import (
	"github.com/vango-dev/sdui/pkg/registry"
)

// Register writes the widget table into reg, then signals the snapshot
// change with ForceUpdate.
func Register(reg *registry.Registry, opts Options) error {
	if err := register(reg, opts); err != nil {
		return err
	}
	reg.ForceUpdate()
	return nil
}

// Init fills the process-wide registry once. Later calls return the
// result of the first.
func Init(opts Options) error {
	return registry.Init(func(reg *registry.Registry) error {
		return register(reg, opts)
	})
}

func register(reg *registry.Registry, opts Options) error {
	opts = opts.withDefaults()
	widgets := Widgets(opts)
	for _, w := range widgets {
		if err := reg.Register(w.Tag, w.Component); err != nil {
			return err
		}
		opts.Logger.Debug("widget registered",
			"tag", w.Tag,
			"family", string(w.Family),
			"kind", w.Kind(),
		)
	}
	opts.Logger.Info("widgets registered", "count", len(widgets))
	return nil
}
