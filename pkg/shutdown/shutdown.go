package shutdown

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Stopper is anything with an http.Server-style Shutdown method.
type Stopper interface {
	Shutdown(ctx context.Context) error
}

// Drain blocks until ctx is cancelled, then gives s at most deadline to
// finish in-flight work.
func Drain(ctx context.Context, s Stopper, deadline time.Duration) error {
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()
	return s.Shutdown(stopCtx)
}
