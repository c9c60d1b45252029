package circulation

import (
	"context"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
)

// BookStore defines the interface needed by the CommandHandler for book record persistence.
// It is satisfied by postgresengine.BookStore.
type BookStore interface {
	Insert(ctx context.Context, storedBook bookstore.StoredBook) (bookstore.VersionUint, error)
	Load(ctx context.Context, bookID bookstore.BookIDString) (bookstore.StoredBook, bookstore.VersionUint, error)
	Save(
		ctx context.Context,
		storedBook bookstore.StoredBook,
		expectedVersion bookstore.VersionUint,
	) (bookstore.VersionUint, error)
}
