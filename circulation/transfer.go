package circulation

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-bookrecord-go/textformat"
)

const (
	logMsgCatalogImported = "catalog imported"
	logMsgBookExported    = "book exported"
	logAttrBookCount      = "book_count"
)

// ErrGeneratingBookIDFailed is returned when no new BookID can be generated during an import.
var ErrGeneratingBookIDFailed = errors.New("generating book id failed")

// ExportBook writes the current record of a book in the text format to w.
func (h CommandHandler) ExportBook(ctx context.Context, bookID uuid.UUID, w io.Writer) error {
	b, _, err := h.Book(ctx, bookID)
	if err != nil {
		return err
	}

	if err = textformat.Encode(w, b); err != nil {
		return err
	}

	if h.logger != nil {
		h.logger.InfoContext(ctx, logMsgBookExported, logAttrBookID, bookID.String())
	}

	return nil
}

// ImportCatalog reads records in the text format until r is exhausted and stores each one under a new BookID,
// borrower queue included. It returns the IDs in input order.
//
// On a malformed record the import stops; the records stored before it stay stored
// and their IDs are returned together with the error.
func (h CommandHandler) ImportCatalog(ctx context.Context, r io.Reader) ([]uuid.UUID, error) {
	decoder := textformat.NewDecoder(r)
	bookIDs := make([]uuid.UUID, 0)

	for {
		b, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return bookIDs, err
		}

		bookID, err := uuid.NewV7()
		if err != nil {
			return bookIDs, errors.Join(ErrGeneratingBookIDFailed, err)
		}

		if _, err = h.insert(ctx, bookID, b); err != nil {
			return bookIDs, err
		}

		bookIDs = append(bookIDs, bookID)
	}

	if h.logger != nil {
		h.logger.InfoContext(ctx, logMsgCatalogImported, logAttrBookCount, len(bookIDs))
	}

	return bookIDs, nil
}
