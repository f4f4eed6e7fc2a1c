package jsonkeep

import (
	"log/slog"
	"sync"
)

var hasFormatWarn sync.Once

// HasFormat reports whether formatting has been recorded for v.
//
// Deprecated: Use IsTracked. HasFormat logs a warning on first use and
// will be deleted in a future release.
func HasFormat(v any) bool {
	hasFormatWarn.Do(func() {
		slog.Warn("jsonkeep: HasFormat is deprecated; use IsTracked")
	})
	return IsTracked(v)
}
