package textformat

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
	"github.com/AntonStoeckl/library-bookrecord-go/borrowerqueue"
)

// Encoder writes book records to an output stream.
type Encoder struct {
	writer io.Writer
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: w}
}

// Encode writes one complete record of b to w, see Encoder.Encode.
func Encode(w io.Writer, b book.Book) error {
	return NewEncoder(w).Encode(b)
}

// Encode writes title, author, publication year, and catalog number, one per line,
// followed by the sentinel-terminated borrower queue line and a newline.
//
// Nothing is written if the record can not be represented in the text format.
func (e *Encoder) Encode(b book.Book) error {
	var sb strings.Builder

	if err := appendInfo(&sb, b); err != nil {
		return err
	}

	if err := appendQueue(&sb, b.BorrowerQueue()); err != nil {
		return err
	}

	sb.WriteByte('\n')

	return write(e.writer, sb.String())
}

// WriteInfo writes title, author, publication year, and catalog number, one per line, without the borrowers.
func WriteInfo(w io.Writer, b book.Book) error {
	var sb strings.Builder

	if err := appendInfo(&sb, b); err != nil {
		return err
	}

	return write(w, sb.String())
}

// WriteTitle writes the title on its own line.
func WriteTitle(w io.Writer, b book.Book) error {
	return write(w, b.Title()+"\n")
}

// WriteQueue writes the borrower IDs separated by spaces and terminated by the sentinel, without a newline.
// An empty queue is written as the sentinel alone.
func WriteQueue(w io.Writer, q borrowerqueue.Queue) error {
	var sb strings.Builder

	if err := appendQueue(&sb, q); err != nil {
		return err
	}

	return write(w, sb.String())
}

// FormatCatalogNumber renders a catalog number in the shortest form that parses back to the same value.
func FormatCatalogNumber(catalogNumber book.CatalogNumberFloat) string {
	return strconv.FormatFloat(catalogNumber, 'g', -1, 64)
}

func appendInfo(sb *strings.Builder, b book.Book) error {
	for _, text := range []string{b.Title(), b.Author()} {
		if strings.ContainsAny(text, "\r\n") {
			return ErrUnencodableText
		}
	}

	sb.WriteString(b.Title())
	sb.WriteByte('\n')
	sb.WriteString(b.Author())
	sb.WriteByte('\n')
	sb.WriteString(strconv.Itoa(b.PublicationYear()))
	sb.WriteByte('\n')
	sb.WriteString(FormatCatalogNumber(b.CatalogNumber()))
	sb.WriteByte('\n')

	return nil
}

func appendQueue(sb *strings.Builder, q borrowerqueue.Queue) error {
	for borrowerID := range q.All() {
		if !isEncodableBorrowerID(borrowerID) {
			return errors.Join(ErrUnencodableBorrowerID, errors.New(strconv.Quote(borrowerID)))
		}

		sb.WriteString(borrowerID)
		sb.WriteByte(' ')
	}

	sb.WriteString(Sentinel)

	return nil
}

func isEncodableBorrowerID(borrowerID book.BorrowerIDString) bool {
	return borrowerID != "" &&
		borrowerID != Sentinel &&
		!strings.ContainsFunc(borrowerID, unicode.IsSpace)
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Join(ErrWritingRecordFailed, err)
	}

	return nil
}
