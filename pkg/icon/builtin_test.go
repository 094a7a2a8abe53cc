package icon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/sdui/pkg/vdom"
)

func TestBuiltinLookup(t *testing.T) {
	m := Builtin()
	f, err := m.Lookup(context.Background(), "IconHome")
	require.NoError(t, err)

	node := f(vdom.Props{"class": "nav", "stroke": 1.5, "aria-label": "home", "data": []int{1}})
	assert.Equal(t, "svg", node.Tag)
	assert.Equal(t, "icon nav", node.Props["class"])
	assert.Equal(t, "1.5", node.Props["stroke-width"])
	assert.Equal(t, "24", node.Props["width"])
	assert.Equal(t, "home", node.Props["aria-label"])
	assert.NotContains(t, node.Props, "data")
	assert.Len(t, vdom.FindAll(node, vdom.ByTag("path")), 3)

	_, err = m.Lookup(context.Background(), "home")
	assert.True(t, errors.Is(err, ErrNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.Lookup(ctx, "IconHome")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuiltinNames(t *testing.T) {
	names := Builtin().Names()
	assert.Contains(t, names, "IconQuestionMark")
	assert.IsIncreasing(t, names)
}
