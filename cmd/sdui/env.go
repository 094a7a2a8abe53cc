package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/sdui/internal/config"
	"github.com/vango-dev/sdui/internal/errors"
	"github.com/vango-dev/sdui/pkg/bootstrap"
	"github.com/vango-dev/sdui/pkg/dispatch"
	"github.com/vango-dev/sdui/pkg/icon"
	"github.com/vango-dev/sdui/pkg/metrics"
	"github.com/vango-dev/sdui/pkg/registry"
	"github.com/vango-dev/sdui/pkg/tree"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

type globalFlags struct {
	dir      string
	logLevel string
}

// env is the wiring shared by the commands: configuration, logger,
// collectors, the populated registry and a walker over it.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	opts    bootstrap.Options
	reg     *registry.Registry
	walker  *tree.Walker

	// settled receives a token whenever an icon lookup settles.
	settled chan struct{}
}

func newEnv(flags *globalFlags) (*env, error) {
	cfg, err := config.LoadFromDir(flags.dir)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	e := &env{
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})),
		metrics: metrics.New(),
		settled: make(chan struct{}, 1),
	}
	e.reg = registry.New(registry.WithLogger(e.logger), registry.WithMetrics(e.metrics))
	e.opts = bootstrap.FromConfig(cfg, e.logger, e.metrics, icon.WithOnSettle(func(string, icon.State) {
		select {
		case e.settled <- struct{}{}:
		default:
		}
	}))
	if err := bootstrap.Register(e.reg, e.opts); err != nil {
		return nil, err
	}
	e.walker = tree.New(e.reg,
		tree.WithDispatcher(dispatch.Logging(nil, e.logger)),
		tree.WithLogger(e.logger),
		tree.WithMetrics(e.metrics),
	)
	return e, nil
}

func (e *env) Close() {
	e.walker.Close()
}

// render renders d and keeps re-rendering while icon placeholders are
// showing, until every lookup settled or the icon load timeout passed.
func (e *env) render(ctx context.Context, d *widget.Descriptor) *vdom.VNode {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Icons.LoadTimeout)
	defer cancel()

	n := e.walker.Render(ctx, d)
	for hasPendingIcon(n) {
		select {
		case <-e.settled:
		case <-ctx.Done():
			e.logger.Warn("icons still pending after timeout", "timeout", e.cfg.Icons.LoadTimeout)
			return n
		}
		n = e.walker.Render(ctx, d)
	}
	return n
}

func hasPendingIcon(n *vdom.VNode) bool {
	return vdom.Find(n, vdom.ByProp("data-icon-state", "pending")) != nil
}

// readDescriptor decodes a descriptor file. Files ending in .json are
// read as JSON, anything else as YAML.
func readDescriptor(path string) (*widget.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E204").WithDetail(path).Wrap(err)
	}
	var d *widget.Descriptor
	if strings.EqualFold(filepath.Ext(path), ".json") {
		d, err = widget.DecodeJSON(data)
	} else {
		d, err = widget.DecodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
