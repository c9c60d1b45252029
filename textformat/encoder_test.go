package textformat_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
	"github.com/AntonStoeckl/library-bookrecord-go/borrowerqueue"
	"github.com/AntonStoeckl/library-bookrecord-go/textformat"
)

func Test_Encode_FullRecord(t *testing.T) {
	// arrange
	b := book.Build("Dune", "Herbert", 1965, 823.1)
	b.AddBorrower("alice")
	b.AddBorrower("bob")
	var buf bytes.Buffer

	// act
	err := textformat.Encode(&buf, b)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Dune\nHerbert\n1965\n823.1\nalice bob 0\n", buf.String())
}

func Test_Encode_EmptyQueue_WritesSentinelOnly(t *testing.T) {
	var buf bytes.Buffer

	err := textformat.Encode(&buf, book.New())

	require.NoError(t, err)
	assert.Equal(t, "\n\n1990\n0\n0\n", buf.String())
}

func Test_WriteQueue(t *testing.T) {
	tests := []struct {
		name     string
		queue    borrowerqueue.Queue
		expected string
	}{
		{name: "empty", queue: borrowerqueue.New(), expected: "0"},
		{name: "one borrower", queue: borrowerqueue.New("alice"), expected: "alice 0"},
		{name: "three borrowers", queue: borrowerqueue.New("alice", "bob", "carol"), expected: "alice bob carol 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := textformat.WriteQueue(&buf, tt.queue)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func Test_WriteInfo_OmitsBorrowers(t *testing.T) {
	b := book.Build("Dune", "Herbert", 1965, 823.1)
	b.AddBorrower("alice")
	var buf bytes.Buffer

	err := textformat.WriteInfo(&buf, b)

	require.NoError(t, err)
	assert.Equal(t, "Dune\nHerbert\n1965\n823.1\n", buf.String())
}

func Test_WriteTitle(t *testing.T) {
	var buf bytes.Buffer

	err := textformat.WriteTitle(&buf, book.Build("Dune", "Herbert", 1965, 823.1))

	require.NoError(t, err)
	assert.Equal(t, "Dune\n", buf.String())
}

func Test_Encode_RejectsUnencodableBorrowerIDs(t *testing.T) {
	for _, borrowerID := range []string{"", "0", "alice smith", "tab\there", "line\nbreak"} {
		t.Run(borrowerID, func(t *testing.T) {
			b := book.Build("Dune", "Herbert", 1965, 823.1)
			b.AddBorrower("alice")
			b.AddBorrower(borrowerID)
			var buf bytes.Buffer

			err := textformat.Encode(&buf, b)

			assert.ErrorIs(t, err, textformat.ErrUnencodableBorrowerID)
			assert.Zero(t, buf.Len(), "nothing should be written")
		})
	}
}

func Test_Encode_RejectsLineBreaksInText(t *testing.T) {
	var buf bytes.Buffer

	err := textformat.Encode(&buf, book.Build("Dune\nMessiah", "Herbert", 1969, 823.1))
	assert.ErrorIs(t, err, textformat.ErrUnencodableText)

	err = textformat.WriteInfo(&buf, book.Build("Dune", "Frank\rHerbert", 1969, 823.1))
	assert.ErrorIs(t, err, textformat.ErrUnencodableText)

	assert.Zero(t, buf.Len())
}

func Test_Encode_WriterFailure(t *testing.T) {
	writeErr := errors.New("disk full")

	err := textformat.Encode(failingWriter{err: writeErr}, book.New())

	assert.ErrorIs(t, err, textformat.ErrWritingRecordFailed)
	assert.ErrorIs(t, err, writeErr)
}

func Test_FormatCatalogNumber(t *testing.T) {
	assert.Equal(t, "823.1", textformat.FormatCatalogNumber(823.1))
	assert.Equal(t, "0", textformat.FormatCatalogNumber(0))
	assert.Equal(t, "-12", textformat.FormatCatalogNumber(-12))
	assert.Equal(t, "823.123456789", textformat.FormatCatalogNumber(823.123456789))
	assert.Equal(t, "1e+21", textformat.FormatCatalogNumber(1e21))
}

func Test_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		book      book.Book
		borrowers []string
	}{
		{
			name:      "dune with two borrowers",
			book:      book.Build("Dune", "Herbert", 1965, 823.1),
			borrowers: []string{"alice", "bob"},
		},
		{
			name:      "default book",
			book:      book.New(),
			borrowers: nil,
		},
		{
			name:      "precise catalog number and duplicates",
			book:      book.Build("The Left Hand of Darkness", "Ursula K. Le Guin", 1969, 813.5400000001),
			borrowers: []string{"zoe", "zoe", "00", "x0"},
		},
		{
			name:      "extreme values",
			book:      book.Build("  padded title  ", "", math.MinInt32, math.MaxFloat64),
			borrowers: []string{"alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			original := tt.book.Clone()
			for _, borrowerID := range tt.borrowers {
				original.AddBorrower(borrowerID)
			}
			var buf bytes.Buffer

			// act
			require.NoError(t, textformat.Encode(&buf, original))
			decoded, err := textformat.Parse(&buf)

			// assert
			require.NoError(t, err)
			assert.Equal(t, original.Title(), decoded.Title())
			assert.Equal(t, original.Author(), decoded.Author())
			assert.Equal(t, original.PublicationYear(), decoded.PublicationYear())
			assert.Equal(t, original.CatalogNumber(), decoded.CatalogNumber())
			assert.True(t, original.BorrowerQueue().Equal(decoded.BorrowerQueue()))
			assert.True(t, book.SameTitle(original, decoded))
		})
	}
}

func Test_RoundTrip_MultipleRecords(t *testing.T) {
	// arrange
	dune := book.Build("Dune", "Herbert", 1965, 823.1)
	dune.AddBorrower("alice")
	emma := book.Build("Emma", "Austen", 1815, 823.7)
	var buf bytes.Buffer
	encoder := textformat.NewEncoder(&buf)

	// act
	require.NoError(t, encoder.Encode(dune))
	require.NoError(t, encoder.Encode(emma))
	decoder := textformat.NewDecoder(strings.NewReader(buf.String()))
	first, firstErr := decoder.Decode()
	second, secondErr := decoder.Decode()
	_, endErr := decoder.Decode()

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, []string{"alice"}, first.Borrowers())
	assert.Equal(t, "Emma", second.Title())
	assert.False(t, second.IsBorrowed())
	assert.ErrorIs(t, endErr, io.EOF)
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}
