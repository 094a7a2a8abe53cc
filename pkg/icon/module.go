package icon

import (
	"context"

	"github.com/vango-dev/sdui/internal/errors"
	"github.com/vango-dev/sdui/pkg/vdom"
)

// ErrNotFound is returned by a Module when it has no icon for a name.
// Errors matching it with errors.Is are treated as a miss; any other
// error is a load failure.
var ErrNotFound = errors.New("E202")

// Factory renders an icon with the given passthrough props.
type Factory func(props vdom.Props) *vdom.VNode

// Module is the icon set. Lookup may block; the Resolver calls it off the
// render path with a deadline.
type Module interface {
	Lookup(ctx context.Context, canonical string) (Factory, error)
}

// ModuleFunc adapts a function to the Module interface.
type ModuleFunc func(ctx context.Context, canonical string) (Factory, error)

// Lookup implements Module.
func (f ModuleFunc) Lookup(ctx context.Context, canonical string) (Factory, error) {
	return f(ctx, canonical)
}
