package searchindex

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestDo_PrimarySucceeds(t *testing.T) {
	calls := 0
	primary := func(ctx context.Context) (string, error) {
		calls++
		return "primary", nil
	}
	fallback := func(ctx context.Context) (string, error) {
		t.Fatal("fallback should not run")
		return "", nil
	}

	result, err := Do(context.Background(), primary, fallback, 3, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, "primary", result)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesConnectionErrors(t *testing.T) {
	calls := 0
	primary := func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("connection refused")
		}
		return "primary", nil
	}

	result, err := Do[string](context.Background(), primary, nil, 3, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, "primary", result)
	assert.Equal(t, 3, calls)
}

func TestDo_StatusErrorStopsRetrying(t *testing.T) {
	calls := 0
	primary := func(ctx context.Context) (string, error) {
		calls++
		return "", &StatusError{Code: 500, Body: "boom"}
	}
	fallback := func(ctx context.Context) (string, error) {
		return "fallback", nil
	}

	result, err := Do(context.Background(), primary, fallback, 3, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, "fallback", result)
	// The server answered, so the primary runs exactly once.
	assert.Equal(t, 1, calls)
}

func TestDo_FallbackRunsOnce(t *testing.T) {
	primaryCalls, fallbackCalls := 0, 0
	primary := func(ctx context.Context) (int, error) {
		primaryCalls++
		return 0, errors.New("unreachable")
	}
	fallback := func(ctx context.Context) (int, error) {
		fallbackCalls++
		return 42, nil
	}

	result, err := Do(context.Background(), primary, fallback, 3, time.Millisecond)
	assert.Equal(t, nil, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, primaryCalls)
	assert.Equal(t, 1, fallbackCalls)
}

func TestDo_PrimaryErrorWinsWhenBothFail(t *testing.T) {
	primaryErr := errors.New("primary unreachable")
	primary := func(ctx context.Context) (int, error) {
		return 0, primaryErr
	}
	fallback := func(ctx context.Context) (int, error) {
		return 0, errors.New("fallback also down")
	}

	_, err := Do(context.Background(), primary, fallback, 2, time.Millisecond)
	assert.Equal(t, primaryErr, err)
}

func TestDo_NilFallback(t *testing.T) {
	primaryErr := errors.New("unreachable")
	primary := func(ctx context.Context) (int, error) {
		return 0, primaryErr
	}

	_, err := Do[int](context.Background(), primary, nil, 2, time.Millisecond)
	assert.Equal(t, primaryErr, err)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := func(ctx context.Context) (int, error) {
		return 0, errors.New("unreachable")
	}

	_, err := Do[int](ctx, primary, nil, 3, time.Minute)
	assert.Equal(t, context.Canceled, err)
}
