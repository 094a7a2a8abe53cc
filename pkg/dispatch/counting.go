package dispatch

import (
	"log/slog"

	"github.com/vango-dev/sdui/pkg/metrics"
	"github.com/vango-dev/sdui/pkg/widget"
)

// Counting returns a Dispatcher that counts each event by name before
// forwarding it to next. A nil next only counts.
func Counting(next widget.Dispatcher, m *metrics.Metrics) widget.Dispatcher {
	return widget.DispatchFunc(func(e widget.Event) {
		m.Dispatch(e.Name)
		if next != nil {
			next.Dispatch(e)
		}
	})
}

// Logging returns a Dispatcher that logs each event at debug level before
// forwarding it to next.
func Logging(next widget.Dispatcher, logger *slog.Logger) widget.Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return widget.DispatchFunc(func(e widget.Event) {
		attrs := []any{"id", e.ComponentID, "event", e.Name}
		if e.HasValue {
			attrs = append(attrs, "value", e.Value)
		}
		logger.Debug("dispatch", attrs...)
		if next != nil {
			next.Dispatch(e)
		}
	})
}
