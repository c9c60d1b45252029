package book

import (
	"errors"

	"github.com/AntonStoeckl/library-bookrecord-go/borrowerqueue"
)

// Book is a library book with its metadata and the FIFO queue of pending borrowers.
//
// Build instances with New or Build. The zero value is usable but has publication year 0.
// None of the fields is validated, e.g., negative years and catalog numbers are kept as they are.
type Book struct {
	title           TitleString
	author          AuthorString
	publicationYear PublicationYearInt
	catalogNumber   CatalogNumberFloat
	borrowers       borrowerqueue.Queue
}

// New creates a Book with default values: empty title and author,
// DefaultPublicationYear, catalog number 0, and no borrowers.
func New() Book {
	return Build("", "", DefaultPublicationYear, 0)
}

// Build creates a Book from the given metadata with no borrowers.
func Build(
	title TitleString,
	author AuthorString,
	publicationYear PublicationYearInt,
	catalogNumber CatalogNumberFloat,
) Book {

	return Book{
		title:           title,
		author:          author,
		publicationYear: publicationYear,
		catalogNumber:   catalogNumber,
	}
}

// Clone returns a fully independent copy of the Book, including its borrower queue.
func (b Book) Clone() Book {
	clone := b
	clone.borrowers = b.borrowers.Clone()

	return clone
}

// CopyFrom overwrites all fields of the Book with those of other.
// Copying a Book onto itself leaves it unchanged.
func (b *Book) CopyFrom(other *Book) {
	if other == nil || b == other {
		return
	}

	*b = other.Clone()
}

// Title returns the title.
func (b Book) Title() TitleString {
	return b.title
}

// Author returns the author.
func (b Book) Author() AuthorString {
	return b.author
}

// PublicationYear returns the publication year.
func (b Book) PublicationYear() PublicationYearInt {
	return b.publicationYear
}

// CatalogNumber returns the catalog number.
func (b Book) CatalogNumber() CatalogNumberFloat {
	return b.catalogNumber
}

// BorrowerQueue returns an independent copy of the borrower queue.
func (b Book) BorrowerQueue() borrowerqueue.Queue {
	return b.borrowers.Clone()
}

// Borrowers returns the pending borrower IDs, the current holder first.
func (b Book) Borrowers() []BorrowerIDString {
	return b.borrowers.Items()
}

// SetTitle overwrites the title without validation.
func (b *Book) SetTitle(title TitleString) {
	b.title = title
}

// SetAuthor overwrites the author without validation.
func (b *Book) SetAuthor(author AuthorString) {
	b.author = author
}

// SetPublicationYear overwrites the publication year; negative years are kept as given.
func (b *Book) SetPublicationYear(year PublicationYearInt) {
	b.publicationYear = year
}

// SetCatalogNumber overwrites the catalog number without validation.
func (b *Book) SetCatalogNumber(catalogNumber CatalogNumberFloat) {
	b.catalogNumber = catalogNumber
}

// IsBorrowed returns true if at least one borrower is pending.
func (b Book) IsBorrowed() bool {
	return !b.borrowers.IsEmpty()
}

// State returns the borrowing state derived from the borrower queue.
func (b Book) State() BorrowingState {
	if b.IsBorrowed() {
		return OnLoan
	}

	return Available
}

// CurrentBorrower returns the borrower holding the book, or "" if the book is available.
func (b Book) CurrentBorrower() BorrowerIDString {
	current, err := b.borrowers.Front()
	if err != nil {
		return ""
	}

	return current
}

// AddBorrower puts the borrower at the end of the line.
func (b *Book) AddBorrower(borrowerID BorrowerIDString) {
	b.borrowers.Enqueue(borrowerID)
}

// RemoveBorrower signals that the current borrower returned the book, the line advances.
// It returns the borrower who returned the book.
// Removing from an available book returns ErrNoPendingBorrowers and changes nothing.
func (b *Book) RemoveBorrower() (BorrowerIDString, error) {
	returnedBy, err := b.borrowers.Dequeue()
	if err != nil {
		return "", errors.Join(ErrNoPendingBorrowers, err)
	}

	return returnedBy, nil
}

// RestoreBorrowers replaces the borrower queue with the given IDs, the first one at the front.
// It is meant for mapping persisted or parsed records back into a Book.
func (b *Book) RestoreBorrowers(borrowerIDs ...BorrowerIDString) {
	b.borrowers = borrowerqueue.New(borrowerIDs...)
}
