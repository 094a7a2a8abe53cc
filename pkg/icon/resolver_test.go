package icon

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/sdui/pkg/metrics"
	"github.com/vango-dev/sdui/pkg/vdom"
	"github.com/vango-dev/sdui/pkg/widget"
)

// gatedModule blocks every lookup until release is closed.
type gatedModule struct {
	release chan struct{}
	calls   atomic.Int32
	inner   Module
}

func newGated(inner Module) *gatedModule {
	return &gatedModule{release: make(chan struct{}), inner: inner}
}

func (g *gatedModule) Lookup(ctx context.Context, canonical string) (Factory, error) {
	g.calls.Add(1)
	<-g.release
	return g.inner.Lookup(ctx, canonical)
}

func waitSettled(t *testing.T, r *Resolver, name string) State {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, _ := r.Wait(ctx, name)
	require.True(t, state.Settled(), "lookup for %q did not settle", name)
	return state
}

func iconName(n *vdom.VNode) string {
	if n == nil {
		return ""
	}
	return n.Props.GetString("data-icon")
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestResolveEmptyName(t *testing.T) {
	r := NewResolver(Builtin())
	assert.Nil(t, r.Resolve("", nil))
	state, err := r.Wait(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, Missing, state)
}

func TestResolvePendingThenReady(t *testing.T) {
	mod := newGated(Builtin())
	r := NewResolver(mod)

	first := r.Resolve("home", vdom.Props{"size": 16})
	require.NotNil(t, first)
	assert.Equal(t, "pending", first.Props["data-icon-state"])
	assert.Equal(t, "16", first.Props["width"])
	assert.Equal(t, Pending, r.State("home"))

	close(mod.release)
	assert.Equal(t, Ready, waitSettled(t, r, "home"))

	node := r.Resolve("home", vdom.Props{"size": 16, "name": "home", "title": "Home"})
	assert.Equal(t, "IconHome", iconName(node))
	assert.Equal(t, "16", node.Props["width"])
	assert.Equal(t, "Home", node.Props["title"])
	assert.NotContains(t, node.Props, "name")
}

func TestResolveReusesLookupPerCanonicalName(t *testing.T) {
	mod := newGated(Builtin())
	r := NewResolver(mod)

	r.Resolve("home", nil)
	r.Resolve("IconHome", nil)
	r.Resolve("Home", nil)
	close(mod.release)
	waitSettled(t, r, "home")
	r.Resolve("home", nil)

	assert.Equal(t, int32(1), mod.calls.Load())

	// A different name is a fresh resolution.
	waitSettled(t, r, "check")
	assert.Equal(t, int32(2), mod.calls.Load())
}

func TestResolveIdempotentCanonicalization(t *testing.T) {
	r := NewResolver(Builtin())
	for _, n := range []string{"home", "settings", "nope"} {
		waitSettled(t, r, n)
		a := r.Resolve(n, nil)
		b := r.Resolve(r.Canonical(n), nil)
		assert.Equal(t, iconName(a), iconName(b))
	}
}

func TestResolveMissRendersFallbackAndLogs(t *testing.T) {
	logger, buf := newLogger()
	r := NewResolver(NewSet(map[string][]string{}), WithLogger(logger))

	assert.Equal(t, Missing, waitSettled(t, r, "home"))

	node := r.Resolve("home", nil)
	assert.Equal(t, "IconQuestionMark", iconName(node))
	assert.Contains(t, buf.String(), "icon not found")
	assert.Contains(t, buf.String(), "IconHome")
}

func TestResolveFailureRendersFallback(t *testing.T) {
	tests := []struct {
		name   string
		module Module
	}{
		{"error", ModuleFunc(func(context.Context, string) (Factory, error) {
			return nil, errors.New("disk on fire")
		})},
		{"panic", ModuleFunc(func(context.Context, string) (Factory, error) {
			panic("boom")
		})},
		{"timeout", ModuleFunc(func(ctx context.Context, _ string) (Factory, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newLogger()
			r := NewResolver(tt.module, WithLogger(logger), WithTimeout(20*time.Millisecond))

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			state, err := r.Wait(ctx, "home")
			assert.Equal(t, Failed, state)
			assert.Error(t, err)

			assert.NotPanics(t, func() {
				assert.Equal(t, "IconQuestionMark", iconName(r.Resolve("home", nil)))
			})
			assert.Contains(t, buf.String(), "icon load failed")
			assert.Contains(t, buf.String(), "IconHome")
		})
	}
}

func TestResolveNilFactoryIsMiss(t *testing.T) {
	r := NewResolver(ModuleFunc(func(context.Context, string) (Factory, error) { return nil, nil }))
	assert.Equal(t, Missing, waitSettled(t, r, "home"))
	assert.Equal(t, Missing, waitSettled(t, NewResolver(nil), "home"))
}

func TestCustomFallbackAndPlaceholder(t *testing.T) {
	mod := newGated(NewSet(nil))
	r := NewResolver(mod,
		WithPlaceholder(func(vdom.Props) *vdom.VNode { return vdom.Span("…") }),
		WithFallbackName("IconX"),
	)
	assert.Equal(t, "…", vdom.TextContent(r.Resolve("a", nil)))
	close(mod.release)
	waitSettled(t, r, "a")
	assert.Equal(t, "IconX", iconName(r.Resolve("a", nil)))

	r2 := NewResolver(NewSet(nil), WithFallback(func(vdom.Props) *vdom.VNode { return vdom.Span("?") }))
	waitSettled(t, r2, "a")
	assert.Equal(t, "?", vdom.TextContent(r2.Resolve("a", nil)))
}

func TestFallbackName(t *testing.T) {
	logger, buf := newLogger()
	r := NewResolver(NewSet(nil), WithLogger(logger), WithFallbackName("IconFileUnknown"))
	waitSettled(t, r, "a")
	assert.Equal(t, "IconFileUnknown", iconName(r.Resolve("a", nil)))
	assert.NotContains(t, buf.String(), "unknown fallback icon")

	logger, buf = newLogger()
	r = NewResolver(NewSet(nil), WithLogger(logger), WithFallbackName("IconNope"))
	assert.Contains(t, buf.String(), "unknown fallback icon")
	assert.Contains(t, buf.String(), "icon=IconNope")
	waitSettled(t, r, "a")
	assert.Equal(t, DefaultFallback, iconName(r.Resolve("a", nil)))
}

func TestOnSettleAndForget(t *testing.T) {
	var mu sync.Mutex
	var settled []string
	done := make(chan struct{}, 4)
	r := NewResolver(Builtin(), WithOnSettle(func(c string, s State) {
		mu.Lock()
		settled = append(settled, c+":"+s.String())
		mu.Unlock()
		done <- struct{}{}
	}))

	r.Resolve("home", nil)
	<-done
	r.Forget("home")
	assert.Equal(t, Pending, r.State("home"))
	r.Resolve("home", nil)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"IconHome:found", "IconHome:found"}, settled)
}

func TestWaitHonorsContext(t *testing.T) {
	mod := newGated(Builtin())
	defer close(mod.release)
	r := NewResolver(mod)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	state, err := r.Wait(ctx, "home")
	assert.Equal(t, Pending, state)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolverMetrics(t *testing.T) {
	m := metrics.New()
	r := NewResolver(Builtin(), WithMetrics(m))
	waitSettled(t, r, "home")
	waitSettled(t, r, "nope")

	n, err := testutil.GatherAndCount(m.Registry(), "sdui_icon_resolutions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

type stubResolver struct{}

func (stubResolver) Resolve(_ *widget.Context, v any) *vdom.VNode {
	d, err := widget.Decode(v)
	if err != nil {
		return nil
	}
	return vdom.El(d.Tag)
}

func TestComponent(t *testing.T) {
	r := NewResolver(Builtin())
	waitSettled(t, r, "check")
	comp := r.Component()
	ctx := &widget.Context{Resolver: stubResolver{}}

	node := comp.Render(ctx, vdom.Props{"name": "check", "color": "red"}, nil)
	assert.Equal(t, "IconCheck", iconName(node))
	assert.Equal(t, "red", node.Props["stroke"])

	nested := comp.Render(ctx, vdom.Props{"name": widget.New("badge", nil)}, nil)
	require.NotNil(t, nested)
	assert.Equal(t, "badge", nested.Tag)

	assert.Nil(t, comp.Render(ctx, vdom.Props{}, nil))
	assert.Nil(t, comp.Render(ctx, vdom.Props{"name": 42}, nil))

	raw := vdom.Span()
	assert.Same(t, raw, r.Node(ctx, raw, nil))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "found", Ready.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(9).String())
	assert.False(t, Pending.Settled())
}
