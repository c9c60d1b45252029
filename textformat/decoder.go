package textformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
)

// Sentinel terminates the borrower list of a record.
const Sentinel = "0"

// Decoder reads successive book records from an input stream.
type Decoder struct {
	reader     *bufio.Reader
	lineNumber int
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: bufio.NewReader(r)}
}

// Parse reads exactly one book record from r.
func Parse(r io.Reader) (book.Book, error) {
	return NewDecoder(r).Decode()
}

// Decode reads the next record and builds a Book from it.
//
// It returns io.EOF if the stream ends before a new record starts.
// Any other failure leaves the Decoder positioned somewhere inside the broken record.
func (d *Decoder) Decode() (book.Book, error) {
	title, err := d.readLine()
	if err != nil {
		// a clean end of the stream between records is not an error
		return book.Book{}, err
	}

	author, err := d.readRequiredLine()
	if err != nil {
		return book.Book{}, err
	}

	yearLine, err := d.readRequiredLine()
	if err != nil {
		return book.Book{}, err
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearLine))
	if err != nil {
		return book.Book{}, errors.Join(ErrMalformedPublicationYear, d.lineError(err))
	}

	catalogLine, err := d.readRequiredLine()
	if err != nil {
		return book.Book{}, err
	}

	catalogNumber, err := strconv.ParseFloat(strings.TrimSpace(catalogLine), 64)
	if err != nil {
		return book.Book{}, errors.Join(ErrMalformedCatalogNumber, d.lineError(err))
	}

	borrowers, err := d.readBorrowers()
	if err != nil {
		return book.Book{}, err
	}

	newBook := book.Build(title, author, year, catalogNumber)
	newBook.RestoreBorrowers(borrowers...)

	return newBook, nil
}

// readBorrowers collects whitespace-separated tokens up to the sentinel, across lines if needed.
// The rest of the sentinel's line is discarded.
func (d *Decoder) readBorrowers() ([]book.BorrowerIDString, error) {
	borrowers := make([]book.BorrowerIDString, 0)

	for {
		line, err := d.readLine()
		if errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrUnterminatedBorrowerList, io.ErrUnexpectedEOF)
		}

		if err != nil {
			return nil, err
		}

		for _, token := range strings.Fields(line) {
			if token == Sentinel {
				return borrowers, nil
			}

			borrowers = append(borrowers, token)
		}
	}
}

// readRequiredLine reads a line that must exist because a record has already started.
func (d *Decoder) readRequiredLine() (string, error) {
	line, err := d.readLine()
	if errors.Is(err, io.EOF) {
		return "", errors.Join(ErrTruncatedRecord, io.ErrUnexpectedEOF)
	}

	return line, err
}

// readLine returns the next line without its line terminator.
// A final line without a trailing newline still counts as a line.
func (d *Decoder) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')

	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", errors.Join(ErrReadingRecordFailed, err)
	}

	d.lineNumber++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func (d *Decoder) lineError(err error) error {
	return fmt.Errorf("line %d: %w", d.lineNumber, err)
}
