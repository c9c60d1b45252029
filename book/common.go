package book

import "errors"

// DefaultPublicationYear is the publication year of a Book built with New.
const DefaultPublicationYear = 1990

// ErrNoPendingBorrowers is returned when a borrower is removed from a book nobody has borrowed.
var ErrNoPendingBorrowers = errors.New("book has no pending borrowers")

// TitleString represents a book title.
type TitleString = string

// AuthorString represents the author of a book.
type AuthorString = string

// PublicationYearInt represents the year a book was published.
type PublicationYearInt = int

// CatalogNumberFloat represents a catalog number, e.g., a Dewey decimal classification.
// It is not guaranteed to be unique.
type CatalogNumberFloat = float64

// BorrowerIDString represents a borrower identifier.
type BorrowerIDString = string
