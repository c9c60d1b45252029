// Package oteladapters provides OpenTelemetry implementations of bookstore.ContextualLogger,
// so the bookstore, the retry loop, and the circulation handlers can log with trace correlation
// without implementing the interface themselves.
package oteladapters
