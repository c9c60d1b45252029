// Package circulation implements the library use cases on top of stored book records:
// cataloging a book, queueing and returning borrowers, editing the catalog data,
// and moving records in and out of the line-oriented text format.
//
// Each command runs the same workflow: Load -> Decide -> Save.
// Decide functions are pure and work on a book.Book only,
// the CommandHandler owns persistence and retries a cycle that lost an optimistic concurrency race.
//
// Stored records are JSON, so a book whose catalog number is NaN or infinite is rejected with
// shell.ErrNonFiniteCatalogNumber, even though book.Book and the text format accept it.
package circulation
