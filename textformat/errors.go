package textformat

import "errors"

var (
	// ErrMalformedPublicationYear is returned when the publication year line is not an integer.
	ErrMalformedPublicationYear = errors.New("malformed publication year")

	// ErrMalformedCatalogNumber is returned when the catalog number line is not a number.
	ErrMalformedCatalogNumber = errors.New("malformed catalog number")

	// ErrTruncatedRecord is returned when the stream ends within the title, author, year, or catalog number lines.
	ErrTruncatedRecord = errors.New("truncated book record")

	// ErrUnterminatedBorrowerList is returned when the stream ends before the borrower list sentinel.
	ErrUnterminatedBorrowerList = errors.New("borrower list is not terminated by sentinel")

	// ErrReadingRecordFailed is returned when the underlying reader fails.
	ErrReadingRecordFailed = errors.New("reading book record failed")

	// ErrUnencodableBorrowerID is returned for borrower IDs that would not survive a round trip:
	// empty IDs, IDs containing whitespace, and the sentinel itself.
	ErrUnencodableBorrowerID = errors.New("borrower id can not be encoded")

	// ErrUnencodableText is returned for a title or author containing a line break.
	ErrUnencodableText = errors.New("text field contains a line break")

	// ErrWritingRecordFailed is returned when the underlying writer fails.
	ErrWritingRecordFailed = errors.New("writing book record failed")
)
