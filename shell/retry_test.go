package shell

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
	"github.com/AntonStoeckl/library-bookrecord-go/testutil/helper"
)

func Test_RetryWithExponentialBackoff_Success_NoRetries(t *testing.T) {
	ctx := context.Background()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		return nil
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn)

	assert.NoError(t, err)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 1, meta.Attempts)
	assert.Equal(t, time.Duration(0), meta.TotalDelay)
	assert.Equal(t, "none", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_RetryOnConcurrencyConflict(t *testing.T) {
	ctx := context.Background()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		if callCount < 3 {
			return bookstore.ErrConcurrencyConflict // fail twice
		}
		return nil
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn, WithBaseDelay(time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
	assert.Equal(t, 3, meta.Attempts)
	assert.Greater(t, meta.TotalDelay, time.Duration(0))
	assert.Equal(t, "none", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_RetryOnWrappedConcurrencyConflict(t *testing.T) {
	ctx := context.Background()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		if callCount == 1 {
			return errors.Join(errors.New("saving failed"), bookstore.ErrConcurrencyConflict)
		}
		return nil
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn, WithBaseDelay(0))

	assert.NoError(t, err)
	assert.Equal(t, 2, meta.Attempts)
}

func Test_RetryWithExponentialBackoff_NoRetryOnOtherErrors(t *testing.T) {
	ctx := context.Background()
	callCount := 0
	permanentErr := errors.New("permanent failure")

	fn := func(_ context.Context) error {
		callCount++
		return permanentErr
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn)

	assert.ErrorIs(t, err, permanentErr)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 1, meta.Attempts)
	assert.Equal(t, "other", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_MaxAttemptsReached(t *testing.T) {
	ctx := context.Background()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		return bookstore.ErrConcurrencyConflict
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn, WithMaxAttempts(3), WithBaseDelay(time.Millisecond))

	assert.ErrorIs(t, err, bookstore.ErrConcurrencyConflict)
	assert.Equal(t, 3, callCount)
	assert.Equal(t, 3, meta.Attempts)
	assert.Equal(t, "concurrency_conflict", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_ContextCanceledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		cancel()
		return bookstore.ErrConcurrencyConflict
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn, WithBaseDelay(time.Hour))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, "context_canceled", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_InvalidOptions(t *testing.T) {
	ctx := context.Background()
	fn := func(_ context.Context) error { return nil }

	testCases := []struct {
		name    string
		option  RetryOption
		wantErr error
	}{
		{name: "zero max attempts", option: WithMaxAttempts(0), wantErr: ErrInvalidMaxAttempts},
		{name: "negative base delay", option: WithBaseDelay(-1 * time.Second), wantErr: ErrNegativeBaseDelay},
		{name: "jitter factor too big", option: WithJitterFactor(1.5), wantErr: ErrInvalidJitterFactor},
		{name: "negative jitter factor", option: WithJitterFactor(-0.1), wantErr: ErrInvalidJitterFactor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RetryWithExponentialBackoff(ctx, fn, tc.option)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_RetryWithExponentialBackoff_WithRetryLogger_LogsRetriesAndGiveUp(t *testing.T) {
	// arrange
	ctx := context.Background()
	testHandler := helper.NewTestLogHandler(false)
	fn := func(_ context.Context) error { return bookstore.ErrConcurrencyConflict }

	// act
	_, err := RetryWithExponentialBackoff(
		ctx,
		fn,
		WithMaxAttempts(2),
		WithBaseDelay(0),
		WithRetryLogger(slog.New(testHandler)),
	)

	// assert
	assert.ErrorIs(t, err, bookstore.ErrConcurrencyConflict)
	assert.Equal(t, 2, testHandler.GetRecordCount())
	assert.True(t,
		testHandler.HasInfoLogWithMessage(logMsgRetrying).
			WithAttr(logAttrAttempt, "2").
			WithAttr(logAttrErrorType, "concurrency_conflict").
			Assert(),
	)
	assert.True(t, testHandler.HasWarnLogWithMessage(logMsgMaxRetriesReached).WithAttr(logAttrAttempt, "2").Assert())
}
