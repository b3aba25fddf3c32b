// Package perf wraps interface calls with timing measures written to a debug logger.
package perf

import (
	"time"

	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	"github.com/alexisbeaulieu97/themestyle/pkg/style"
)

// Measure names used for the wrapped interface calls.
const (
	MeasureCreate  = "create"
	MeasureResolve = "resolve"
)

// WrapCreate returns fn unchanged unless log writes debug entries, in which
// case every call is timed.
func WrapCreate(log *logger.Logger, fn style.CreateFunc) style.CreateFunc {
	if fn == nil || !log.DebugEnabled() {
		return fn
	}
	return func(styles style.StyleMap) (*style.Stylesheet, error) {
		start := time.Now()
		sheet, err := fn(styles)
		log.Measure(MeasureCreate, time.Since(start))
		return sheet, err
	}
}

// WrapResolve is WrapCreate for resolve functions.
func WrapResolve(log *logger.Logger, fn style.ResolveFunc) style.ResolveFunc {
	if fn == nil || !log.DebugEnabled() {
		return fn
	}
	return func(refs []any) style.RenderableProps {
		start := time.Now()
		props := fn(refs)
		log.Measure(MeasureResolve, time.Since(start))
		return props
	}
}
