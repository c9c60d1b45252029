package shell

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
)

const (
	defaultMaxAttempts  = 6
	defaultBaseDelay    = 10 * time.Millisecond
	defaultJitterFactor = 0.3
)

const (
	logMsgRetrying          = "retrying after concurrency conflict"
	logMsgMaxRetriesReached = "giving up after max retry attempts"
	logAttrAttempt          = "attempt"
	logAttrDelayMS          = "delay_ms"
	logAttrErrorType        = "error_type"
)

const (
	errorTypeNone             = "none"
	errorTypeConflict         = "concurrency_conflict"
	errorTypeCanceled         = "context_canceled"
	errorTypeDeadlineExceeded = "context_deadline_exceeded"
	errorTypeOther            = "other"
)

var (
	// ErrInvalidMaxAttempts is returned when max attempts are not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")

	// ErrNegativeBaseDelay is returned when the base delay is negative.
	ErrNegativeBaseDelay = errors.New("base delay must not be negative")

	// ErrInvalidJitterFactor is returned when the jitter factor is not between 0.0 and 1.0.
	ErrInvalidJitterFactor = errors.New("jitter factor must be between 0.0 and 1.0")
)

// RetryableFunc is one attempt of an operation that may lose an optimistic concurrency race.
type RetryableFunc func(ctx context.Context) error

// RetryMetadata describes how a call to RetryWithExponentialBackoff went.
type RetryMetadata struct {
	Attempts      int
	TotalDelay    time.Duration
	LastErrorType string
}

// RetryOption configures a retry policy.
type RetryOption func(*retryPolicy) error

type retryPolicy struct {
	maxAttempts  int
	baseDelay    time.Duration
	jitterFactor float64
	logger       bookstore.ContextualLogger
}

// WithMaxAttempts sets the maximum number of attempts, the first one included.
func WithMaxAttempts(attempts int) RetryOption {
	return func(policy *retryPolicy) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}

		policy.maxAttempts = attempts

		return nil
	}
}

// WithBaseDelay sets the wait before the second attempt. Every further wait doubles.
func WithBaseDelay(delay time.Duration) RetryOption {
	return func(policy *retryPolicy) error {
		if delay < 0 {
			return ErrNegativeBaseDelay
		}

		policy.baseDelay = delay

		return nil
	}
}

// WithJitterFactor sets the random share, from 0.0 to 1.0, that is added on top of each wait.
func WithJitterFactor(factor float64) RetryOption {
	return func(policy *retryPolicy) error {
		if factor < 0.0 || factor > 1.0 {
			return ErrInvalidJitterFactor
		}

		policy.jitterFactor = factor

		return nil
	}
}

// WithRetryLogger makes every retry and the final give-up visible in the given logger.
// A nil logger keeps the retry loop silent.
func WithRetryLogger(logger bookstore.ContextualLogger) RetryOption {
	return func(policy *retryPolicy) error {
		policy.logger = logger
		return nil
	}
}

// RetryWithExponentialBackoff runs fn until it succeeds, fails with an error other than
// bookstore.ErrConcurrencyConflict, or runs out of attempts.
//
// With the defaults the waits before attempts two to six are roughly 10, 20, 40, 80 and 160 ms,
// each plus up to 30% jitter. A canceled context ends the wait immediately.
func RetryWithExponentialBackoff(
	ctx context.Context,
	fn RetryableFunc,
	options ...RetryOption,
) (RetryMetadata, error) {

	policy := retryPolicy{
		maxAttempts:  defaultMaxAttempts,
		baseDelay:    defaultBaseDelay,
		jitterFactor: defaultJitterFactor,
	}

	for _, option := range options {
		if err := option(&policy); err != nil {
			return RetryMetadata{}, err
		}
	}

	meta := RetryMetadata{LastErrorType: errorTypeNone}
	var err error

	for attempt := 1; attempt <= policy.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := policy.backoff(attempt)
			policy.logRetry(ctx, attempt, delay, err)

			if waitErr := wait(ctx, delay); waitErr != nil {
				meta.LastErrorType = errorType(waitErr)
				return meta, waitErr
			}

			meta.TotalDelay += delay
		}

		meta.Attempts++
		err = fn(ctx)
		meta.LastErrorType = errorType(err)

		if err == nil || !errors.Is(err, bookstore.ErrConcurrencyConflict) {
			return meta, err
		}
	}

	policy.logGiveUp(ctx, meta)

	return meta, err
}

// backoff returns the jittered wait before the given attempt; attempt 2 waits baseDelay.
func (policy retryPolicy) backoff(attempt int) time.Duration {
	delay := policy.baseDelay << (attempt - 2)
	jitter := rand.Float64() * float64(delay) * policy.jitterFactor //nolint:gosec // jitter needs no crypto randomness

	return delay + time.Duration(jitter)
}

func wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (policy retryPolicy) logRetry(ctx context.Context, attempt int, delay time.Duration, lastErr error) {
	if policy.logger == nil {
		return
	}

	policy.logger.InfoContext(
		ctx,
		logMsgRetrying,
		logAttrAttempt, attempt,
		logAttrDelayMS, float64(delay.Microseconds())/1000,
		logAttrErrorType, errorType(lastErr),
	)
}

func (policy retryPolicy) logGiveUp(ctx context.Context, meta RetryMetadata) {
	if policy.logger == nil {
		return
	}

	policy.logger.WarnContext(
		ctx,
		logMsgMaxRetriesReached,
		logAttrAttempt, meta.Attempts,
		logAttrErrorType, meta.LastErrorType,
	)
}

func errorType(err error) string {
	switch {
	case err == nil:
		return errorTypeNone
	case errors.Is(err, bookstore.ErrConcurrencyConflict):
		return errorTypeConflict
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeDeadlineExceeded
	default:
		return errorTypeOther
	}
}
