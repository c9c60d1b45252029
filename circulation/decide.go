package circulation

import (
	"errors"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
)

// ErrEmptyBorrowerID is returned when a borrower without an ID wants to borrow a book.
var ErrEmptyBorrowerID = errors.New("borrower id must not be empty")

// ReturnOutcome describes what happened when the current borrower returned a book.
type ReturnOutcome struct {
	ReturnedBy   book.BorrowerIDString
	NextBorrower book.BorrowerIDString // empty if the book is available now
	State        book.BorrowingState
}

// DecideCatalogBook builds the record of a newly cataloged book: available, nobody waiting.
func DecideCatalogBook(command CatalogBook) book.Book {
	return book.Build(command.Title, command.Author, command.PublicationYear, command.CatalogNumber)
}

// DecideAddBorrower appends the borrower to the book's queue.
//
// Business Rules:
//
//	GIVEN: A cataloged book in any state
//	WHEN: AddBorrower is received
//	THEN: the borrower is queued at the back, and holds the book if the queue was empty
//	ERROR: ErrEmptyBorrowerID if the borrower ID is empty
//	A borrower who already waits is queued again.
func DecideAddBorrower(current book.Book, command AddBorrower) (book.Book, error) {
	if command.BorrowerID == "" {
		return book.Book{}, ErrEmptyBorrowerID
	}

	next := current.Clone()
	next.AddBorrower(command.BorrowerID)

	return next, nil
}

// DecideRemoveBorrower takes the current borrower off the book's queue.
//
// Business Rules:
//
//	GIVEN: A book on loan
//	WHEN: RemoveBorrower is received
//	THEN: the front borrower leaves, the next one in line holds the book
//	ERROR: book.ErrNoPendingBorrowers if the book is available
func DecideRemoveBorrower(current book.Book) (book.Book, ReturnOutcome, error) {
	next := current.Clone()

	returnedBy, err := next.RemoveBorrower()
	if err != nil {
		return book.Book{}, ReturnOutcome{}, err
	}

	return next, ReturnOutcome{
		ReturnedBy:   returnedBy,
		NextBorrower: next.CurrentBorrower(),
		State:        next.State(),
	}, nil
}

// DecideUpdateBookInfo replaces the catalog data and keeps the borrower queue.
func DecideUpdateBookInfo(current book.Book, command UpdateBookInfo) book.Book {
	next := current.Clone()
	next.SetTitle(command.Title)
	next.SetAuthor(command.Author)
	next.SetPublicationYear(command.PublicationYear)
	next.SetCatalogNumber(command.CatalogNumber)

	return next
}
