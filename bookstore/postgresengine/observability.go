package postgresengine

import (
	"context"
	"math"
	"time"
)

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (bs BookStore) logQueryWithDuration(
	ctx context.Context,
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	args := []any{logAttrDurationMS, bs.toMilliseconds(duration), logAttrQuery, sqlQuery}

	if bs.logger != nil {
		bs.logger.Debug(logMsgSQLExecuted+action, args...)
	}

	if bs.contextualLogger != nil {
		bs.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (bs BookStore) logOperation(ctx context.Context, action string, args ...any) {
	if bs.logger != nil {
		bs.logger.Info(logMsgOperation+action, args...)
	}

	if bs.contextualLogger != nil {
		bs.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (bs BookStore) logWarn(ctx context.Context, message string, err error) {
	if bs.logger != nil {
		bs.logger.Warn(message, logAttrError, err.Error())
	}

	if bs.contextualLogger != nil {
		bs.contextualLogger.WarnContext(ctx, message, logAttrError, err.Error())
	}
}

// logError logs error information at the error level if a logger is configured.
func (bs BookStore) logError(
	ctx context.Context,
	message string,
	err error,
	args ...any,
) {

	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if bs.logger != nil {
		bs.logger.Error(message, allArgs...)
	}

	if bs.contextualLogger != nil {
		bs.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (bs BookStore) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
