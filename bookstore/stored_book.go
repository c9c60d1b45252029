package bookstore

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")

// StoredBook is a DTO (data transfer object) used by the BookStore to write book records and read them back.
//
// While its properties are exported, it should only be constructed with the supplied factory method BuildStoredBook.
type StoredBook struct {
	BookID      BookIDString
	Title       string
	PayloadJSON []byte
}

// BuildStoredBook is a factory method for StoredBook.
//
// The title is stored separately from the payload so that it can be indexed and sorted on.
// Returns an error if bookID is empty or payloadJSON is not valid JSON.
func BuildStoredBook(bookID BookIDString, title string, payloadJSON []byte) (StoredBook, error) {
	if bookID == "" {
		return StoredBook{}, ErrEmptyBookID
	}

	if !jsoniter.ConfigFastest.Valid(payloadJSON) {
		return StoredBook{}, ErrInvalidPayloadJSON
	}

	return StoredBook{
		BookID:      bookID,
		Title:       title,
		PayloadJSON: payloadJSON,
	}, nil
}
