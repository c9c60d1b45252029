package postgresengine

import (
	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
)

// Option defines a functional option for configuring BookStore.
type Option func(*BookStore) error

// WithTableName sets the table name for the BookStore.
func WithTableName(tableName string) Option {
	return func(bs *BookStore) error {
		if tableName == "" {
			return bookstore.ErrEmptyTableName
		}

		bs.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the BookStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Loaded, inserted, saved, and deleted books, concurrency conflicts (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger bookstore.Logger) Option {
	return func(bs *BookStore) error {
		bs.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the BookStore.
// It receives the same messages as the Logger, together with the operation's context,
// which enables trace correlation when the logger supports it.
func WithContextualLogger(logger bookstore.ContextualLogger) Option {
	return func(bs *BookStore) error {
		bs.contextualLogger = logger
		return nil
	}
}
