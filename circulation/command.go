package circulation

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
)

const (
	commandTypeCatalogBook    = "CatalogBook"
	commandTypeAddBorrower    = "AddBorrower"
	commandTypeRemoveBorrower = "RemoveBorrower"
	commandTypeUpdateBookInfo = "UpdateBookInfo"
)

// CatalogBook represents the intent to put a new book record into the catalog.
type CatalogBook struct {
	BookID          uuid.UUID
	Title           book.TitleString
	Author          book.AuthorString
	PublicationYear book.PublicationYearInt
	CatalogNumber   book.CatalogNumberFloat
}

// CommandType returns the type identifier for this command, used for logging.
func (c CatalogBook) CommandType() string {
	return commandTypeCatalogBook
}

// BuildCatalogBook creates a new CatalogBook command.
func BuildCatalogBook(
	bookID uuid.UUID,
	title book.TitleString,
	author book.AuthorString,
	publicationYear book.PublicationYearInt,
	catalogNumber book.CatalogNumberFloat,
) CatalogBook {

	return CatalogBook{
		BookID:          bookID,
		Title:           title,
		Author:          author,
		PublicationYear: publicationYear,
		CatalogNumber:   catalogNumber,
	}
}

// AddBorrower represents the intent to borrow a book, or to wait for it if it is on loan.
type AddBorrower struct {
	BookID     uuid.UUID
	BorrowerID book.BorrowerIDString
}

// CommandType returns the type identifier for this command, used for logging.
func (c AddBorrower) CommandType() string {
	return commandTypeAddBorrower
}

// BuildAddBorrower creates a new AddBorrower command.
func BuildAddBorrower(bookID uuid.UUID, borrowerID book.BorrowerIDString) AddBorrower {
	return AddBorrower{
		BookID:     bookID,
		BorrowerID: borrowerID,
	}
}

// RemoveBorrower represents the current borrower returning the book.
type RemoveBorrower struct {
	BookID uuid.UUID
}

// CommandType returns the type identifier for this command, used for logging.
func (c RemoveBorrower) CommandType() string {
	return commandTypeRemoveBorrower
}

// BuildRemoveBorrower creates a new RemoveBorrower command.
func BuildRemoveBorrower(bookID uuid.UUID) RemoveBorrower {
	return RemoveBorrower{BookID: bookID}
}

// UpdateBookInfo represents a correction of a book's catalog data. The borrower queue is left untouched.
type UpdateBookInfo struct {
	BookID          uuid.UUID
	Title           book.TitleString
	Author          book.AuthorString
	PublicationYear book.PublicationYearInt
	CatalogNumber   book.CatalogNumberFloat
}

// CommandType returns the type identifier for this command, used for logging.
func (c UpdateBookInfo) CommandType() string {
	return commandTypeUpdateBookInfo
}

// BuildUpdateBookInfo creates a new UpdateBookInfo command.
func BuildUpdateBookInfo(
	bookID uuid.UUID,
	title book.TitleString,
	author book.AuthorString,
	publicationYear book.PublicationYearInt,
	catalogNumber book.CatalogNumberFloat,
) UpdateBookInfo {

	return UpdateBookInfo{
		BookID:          bookID,
		Title:           title,
		Author:          author,
		PublicationYear: publicationYear,
		CatalogNumber:   catalogNumber,
	}
}
