package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
)

func GivenUniqueID(t testing.TB) uuid.UUID {
	bookID, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return bookID
}

func FixtureBook() book.Book {
	return book.Build("Learning Domain-Driven Design", "Vlad Khononov", 2021, 5.4)
}

func FixtureBookWithBorrowers(borrowerIDs ...string) book.Book {
	b := FixtureBook()
	for _, borrowerID := range borrowerIDs {
		b.AddBorrower(borrowerID)
	}

	return b
}

func FixtureStoredBook(t testing.TB, bookID uuid.UUID, title string) bookstore.StoredBook {
	storedBook, err := bookstore.BuildStoredBook(
		bookID.String(),
		title,
		[]byte(`{"title":"`+title+`","author":"Vlad Khononov","publicationYear":2021,"catalogNumber":5.4,"borrowers":[]}`),
	)
	assert.NoError(t, err, "error in arranging test data")

	return storedBook
}
