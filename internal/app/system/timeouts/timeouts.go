// Package timeouts provides centralized timeout values for handler
// operations. Handlers wrap their request context with one of these
// before touching the database, so a slow Mongo node cannot pin a
// request forever.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and narrow writes
//   - Medium: list queries and snapshot loads over one collection
//   - Long: whole-snapshot loads across all four collections
package timeouts

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	Ping   = 2 * time.Second
	Short  = 5 * time.Second
	Medium = 10 * time.Second
	Long   = 30 * time.Second
)

// WithTimeout creates a context with the given timeout and returns a
// cancel function that logs a warning when the deadline was actually hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "dashboard snapshot")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
