package bootstrap

import (
	"log/slog"
	"time"

	"github.com/vango-dev/sdui/internal/config"
	"github.com/vango-dev/sdui/pkg/dispatch"
	"github.com/vango-dev/sdui/pkg/group"
	"github.com/vango-dev/sdui/pkg/icon"
	"github.com/vango-dev/sdui/pkg/metrics"
)

// Options configures the registered widgets.
type Options struct {
	// Icons resolves the icon tag and icon-valued props. Defaults to a
	// resolver over the built-in set.
	Icons *icon.Resolver

	// Groups renders the option groups. Defaults to group.NewRenderer().
	Groups *group.Renderer

	// Commit and Debounce configure the free-text inputs.
	Commit   dispatch.Commit
	Debounce time.Duration

	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Icons == nil {
		o.Icons = icon.NewResolver(icon.Builtin(), icon.WithLogger(o.Logger), icon.WithMetrics(o.Metrics))
	}
	if o.Groups == nil {
		o.Groups = group.NewRenderer(group.WithLogger(o.Logger))
	}
	return o
}

// FromConfig builds Options from cfg. iconOpts are applied to the icon
// resolver after the configured ones. Callers may still replace fields
// before registering.
func FromConfig(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics, iconOpts ...icon.Option) Options {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	commit, _ := dispatch.ParseCommit(cfg.Inputs.Commit)
	duplicates := group.LastWins
	if cfg.Groups.DuplicateValues == "error" {
		duplicates = group.Reject
	}
	resolverOpts := append([]icon.Option{
		icon.WithPrefix(cfg.Icons.Prefix),
		icon.WithFallbackName(cfg.Icons.Fallback),
		icon.WithTimeout(cfg.Icons.LoadTimeout),
		icon.WithLogger(logger),
		icon.WithMetrics(m),
	}, iconOpts...)
	return Options{
		Icons: icon.NewResolver(icon.Builtin(), resolverOpts...),
		Groups: group.NewRenderer(
			group.WithGap(cfg.Groups.Gap),
			group.WithDuplicates(duplicates),
			group.WithLogger(logger),
		),
		Commit:   commit,
		Debounce: cfg.Inputs.Debounce,
		Logger:   logger,
		Metrics:  m,
	}
}
