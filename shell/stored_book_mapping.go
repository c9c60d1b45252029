package shell

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
)

// ErrMappingToStoredBookFailed is returned when a Book cannot be converted into a StoredBook.
var ErrMappingToStoredBookFailed = errors.New("mapping to stored book failed")

// ErrMappingToBookFailed is returned when a StoredBook cannot be converted into a Book.
var ErrMappingToBookFailed = errors.New("mapping to book failed")

// ErrNonFiniteCatalogNumber is returned for a NaN or infinite catalog number, JSON has no encoding for them.
var ErrNonFiniteCatalogNumber = errors.New("catalog number must be a finite number")

// StoredBookFrom converts a Book into the StoredBook kept under the given ID.
func StoredBookFrom(bookID uuid.UUID, b book.Book) (bookstore.StoredBook, error) {
	if bookID == uuid.Nil {
		return bookstore.StoredBook{}, errors.Join(ErrMappingToStoredBookFailed, bookstore.ErrEmptyBookID)
	}

	if catalogNumber := b.CatalogNumber(); math.IsNaN(catalogNumber) || math.IsInf(catalogNumber, 0) {
		return bookstore.StoredBook{}, errors.Join(ErrMappingToStoredBookFailed, ErrNonFiniteCatalogNumber)
	}

	payloadJSON, err := marshalPayload(b)
	if err != nil {
		return bookstore.StoredBook{}, errors.Join(ErrMappingToStoredBookFailed, err)
	}

	storedBook, err := bookstore.BuildStoredBook(bookID.String(), b.Title(), payloadJSON)
	if err != nil {
		return bookstore.StoredBook{}, errors.Join(ErrMappingToStoredBookFailed, err)
	}

	return storedBook, nil
}

// BookFrom converts a StoredBook back into the Book it was built from.
func BookFrom(storedBook bookstore.StoredBook) (book.Book, error) {
	b, err := unmarshalPayload(storedBook.PayloadJSON)
	if err != nil {
		return book.Book{}, errors.Join(ErrMappingToBookFailed, err)
	}

	return b, nil
}
