// Package postgresengine provides a PostgreSQL implementation of the book store.
//
// Each book record is one row: its ID, the title (kept in its own column so it can be sorted on),
// the JSON payload, and a version number used for optimistic concurrency control.
// A Save only succeeds if the stored version still equals the version the caller loaded,
// otherwise it fails with bookstore.ErrConcurrencyConflict.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - Optimistic concurrency via versioned rows
//   - SQL built with goqu for the postgres dialect
//   - Configurable table name and dual-logger support
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewBookStoreFromPGXPool(db)
//
//	// With a custom table and logging
//	store, _ := postgresengine.NewBookStoreFromPGXPool(
//		db,
//		postgresengine.WithTableName("my_books"),
//		postgresengine.WithLogger(slog.Default()),
//	)
//
//	version, _ := store.Insert(ctx, storedBook)
//	storedBook, version, _ = store.Load(ctx, storedBook.BookID)
//	version, err := store.Save(ctx, changedStoredBook, version)
package postgresengine
