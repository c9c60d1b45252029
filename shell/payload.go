package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
)

// ErrMarshalingPayloadFailed is returned when a book cannot be serialized into its JSON payload.
var ErrMarshalingPayloadFailed = errors.New("marshaling book payload failed")

// ErrUnmarshalingPayloadFailed is returned when a stored JSON payload cannot be read back into a book.
var ErrUnmarshalingPayloadFailed = errors.New("unmarshaling book payload failed")

// payloadJSONAPI keeps float64 values at full precision, which jsoniter's fastest config does not.
var payloadJSONAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// BookPayload is the JSON shape a Book is stored with.
type BookPayload struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	PublicationYear int      `json:"publicationYear"`
	CatalogNumber   float64  `json:"catalogNumber"`
	Borrowers       []string `json:"borrowers"`
}

// PayloadFrom builds the payload DTO of a Book, borrowers in queue order.
func PayloadFrom(b book.Book) BookPayload {
	return BookPayload{
		Title:           b.Title(),
		Author:          b.Author(),
		PublicationYear: b.PublicationYear(),
		CatalogNumber:   b.CatalogNumber(),
		Borrowers:       b.Borrowers(),
	}
}

// ToBook rebuilds the Book described by the payload.
func (p BookPayload) ToBook() book.Book {
	b := book.Build(p.Title, p.Author, p.PublicationYear, p.CatalogNumber)
	b.RestoreBorrowers(p.Borrowers...)

	return b
}

func marshalPayload(b book.Book) ([]byte, error) {
	payloadJSON, err := payloadJSONAPI.Marshal(PayloadFrom(b))
	if err != nil {
		return nil, errors.Join(ErrMarshalingPayloadFailed, err)
	}

	return payloadJSON, nil
}

func unmarshalPayload(payloadJSON []byte) (book.Book, error) {
	payload := BookPayload{}
	if err := payloadJSONAPI.Unmarshal(payloadJSON, &payload); err != nil {
		return book.Book{}, errors.Join(ErrUnmarshalingPayloadFailed, err)
	}

	return payload.ToBook(), nil
}
