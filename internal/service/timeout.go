package service

import (
	"context"
	"time"
)

// withCallTimeout bounds one external call. A non-positive d leaves ctx
// unbounded.
func withCallTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
