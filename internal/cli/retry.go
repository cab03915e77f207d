package cli

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/phillyhomelab/peco-outages/internal/logger"
	"github.com/phillyhomelab/peco-outages/peco"
)

// newBackOff builds the retry policy. Package variable so tests can swap in
// a policy without real wait intervals.
var newBackOff = func() backoff.BackOff {
	return backoff.NewExponentialBackOff()
}

// withRetry runs op, retrying transport failures with exponential backoff up
// to maxRetries additional attempts. Only FetchError is retryable:
// InvalidCountyError and ParseError cannot be fixed by asking again.
func withRetry(ctx context.Context, maxRetries int, log *logger.Logger, metrics *logger.Metrics, op func(context.Context) error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), uint64(maxRetries)), ctx)

	return backoff.Retry(func() error {
		metrics.Incr("fetch.attempts")
		stop := metrics.Time("fetch")
		err := op(ctx)
		stop()

		if err == nil {
			return nil
		}
		if isRetryable(err) {
			log.Warn("fetch failed", logger.Fields{"error": err.Error()})
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

// isRetryable reports whether err is a transport-level failure that a fresh
// attempt could succeed against.
func isRetryable(err error) bool {
	var fetchErr *peco.FetchError
	return errors.As(err, &fetchErr)
}
