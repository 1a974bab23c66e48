package searchindex

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// StatusError reports a response the server actually returned. Receiving one
// means the endpoint is reachable, so retrying the same request is pointless.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search index returned status %d: %s", e.Code, e.Body)
}

// Attempt is one try against a search backend.
type Attempt[T any] func(ctx context.Context) (T, error)

// Do runs primary up to maxRetries times, backing off linearly between
// connection failures. A StatusError stops the retry loop immediately. Once
// the primary is exhausted the fallback runs exactly once. When both fail the
// primary's error is surfaced; the fallback error only wins if the primary
// never produced one.
func Do[T any](ctx context.Context, primary, fallback Attempt[T], maxRetries int, delay time.Duration) (T, error) {
	var zero T
	var primaryErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := primary(ctx)
		if err == nil {
			return result, nil
		}
		primaryErr = err

		var status *StatusError
		if errors.As(err, &status) {
			break
		}

		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay * time.Duration(attempt)):
			}
		}
	}

	if fallback == nil {
		return zero, primaryErr
	}

	result, err := fallback(ctx)
	if err == nil {
		return result, nil
	}
	if primaryErr != nil {
		return zero, primaryErr
	}
	return zero, err
}
