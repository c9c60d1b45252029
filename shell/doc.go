// Package shell translates between book records and their stored form
// in the bookstore, and provides the retry loop used by the circulation use cases.
//
// This package implements the "imperative shell" around the pure book record:
// it serializes a Book into the JSON payload of a bookstore.StoredBook and back,
// and retries read-decide-write cycles that lost an optimistic concurrency race.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
