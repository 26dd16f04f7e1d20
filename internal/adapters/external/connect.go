package external

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	pingTimeout         = 2 * time.Second
	connectInitialDelay = 200 * time.Millisecond
	connectMaxDelay     = 5 * time.Second
)

// pingWithRetry calls ping until it succeeds or retries extra attempts have failed
func pingWithRetry(ctx context.Context, retries int, ping func(ctx context.Context) error) error {
	if retries < 0 {
		retries = 0
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = connectInitialDelay
	bo.MaxInterval = connectMaxDelay
	bo.MaxElapsedTime = 0

	operation := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return ping(pingCtx)
	}

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(retries)), ctx))
}
