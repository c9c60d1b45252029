// Package bookstore provides the storage abstractions for persisting book records.
//
// This package defines the types shared by the store implementations:
// the StoredBook DTO, version numbers for optimistic concurrency, the logger interfaces,
// and the common error definitions.
//
// A StoredBook is built on scalars and a JSON payload, which keeps the store agnostic of
// how the book.Book record is structured in memory. Mapping between both happens in the shell package.
//
// Common usage pattern:
//
//	storedBook, version, err := store.Load(ctx, bookID)
//	if err != nil {
//		// handle error
//	}
//
//	// ... change the record, re-map it to a StoredBook ...
//
//	_, err = store.Save(ctx, changedStoredBook, version)
//	if errors.Is(err, bookstore.ErrConcurrencyConflict) {
//		// somebody else saved in between, reload and retry
//	}
package bookstore
