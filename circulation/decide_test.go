package circulation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-bookrecord-go/book"
	"github.com/AntonStoeckl/library-bookrecord-go/circulation"
	"github.com/AntonStoeckl/library-bookrecord-go/testutil/helper"
)

func Test_DecideCatalogBook_BuildsAnAvailableBook(t *testing.T) {
	// act
	b := circulation.DecideCatalogBook(circulation.BuildCatalogBook(uuid.New(), "Dune", "Frank Herbert", 1965, 813.54))

	// assert
	assert.Equal(t, "Dune", b.Title())
	assert.Equal(t, "Frank Herbert", b.Author())
	assert.Equal(t, 1965, b.PublicationYear())
	assert.Equal(t, 813.54, b.CatalogNumber())
	assert.Equal(t, book.Available, b.State())
}

func Test_DecideAddBorrower(t *testing.T) {
	testCases := []struct {
		name          string
		current       book.Book
		borrowerID    string
		wantErr       error
		wantBorrowers []string
	}{
		{
			name:          "available book is lent",
			current:       helper.FixtureBook(),
			borrowerID:    "alice",
			wantBorrowers: []string{"alice"},
		},
		{
			name:          "book on loan gets a waiting borrower",
			current:       helper.FixtureBookWithBorrowers("alice"),
			borrowerID:    "bob",
			wantBorrowers: []string{"alice", "bob"},
		},
		{
			name:          "the same borrower can queue twice",
			current:       helper.FixtureBookWithBorrowers("alice"),
			borrowerID:    "alice",
			wantBorrowers: []string{"alice", "alice"},
		},
		{
			name:       "empty borrower id",
			current:    helper.FixtureBook(),
			borrowerID: "",
			wantErr:    circulation.ErrEmptyBorrowerID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			next, err := circulation.DecideAddBorrower(tc.current, circulation.BuildAddBorrower(uuid.New(), tc.borrowerID))

			// assert
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantBorrowers, next.Borrowers())
		})
	}
}

func Test_DecideAddBorrower_LeavesCurrentUntouched(t *testing.T) {
	// arrange
	current := helper.FixtureBookWithBorrowers("alice")

	// act
	_, err := circulation.DecideAddBorrower(current, circulation.BuildAddBorrower(uuid.New(), "bob"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, current.Borrowers())
}

func Test_DecideRemoveBorrower(t *testing.T) {
	testCases := []struct {
		name        string
		current     book.Book
		wantErr     error
		wantOutcome circulation.ReturnOutcome
	}{
		{
			name:    "last borrower returns the book",
			current: helper.FixtureBookWithBorrowers("alice"),
			wantOutcome: circulation.ReturnOutcome{
				ReturnedBy: "alice",
				State:      book.Available,
			},
		},
		{
			name:    "next borrower takes over",
			current: helper.FixtureBookWithBorrowers("alice", "bob", "carol"),
			wantOutcome: circulation.ReturnOutcome{
				ReturnedBy:   "alice",
				NextBorrower: "bob",
				State:        book.OnLoan,
			},
		},
		{
			name:    "available book cannot be returned",
			current: helper.FixtureBook(),
			wantErr: book.ErrNoPendingBorrowers,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			next, outcome, err := circulation.DecideRemoveBorrower(tc.current)

			// assert
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOutcome, outcome)
			assert.Equal(t, tc.wantOutcome.NextBorrower, next.CurrentBorrower())
		})
	}
}

func Test_DecideUpdateBookInfo_KeepsTheQueue(t *testing.T) {
	// arrange
	current := helper.FixtureBookWithBorrowers("alice", "bob")

	// act
	next := circulation.DecideUpdateBookInfo(
		current,
		circulation.BuildUpdateBookInfo(uuid.New(), "Dune Messiah", "Frank Herbert", 1969, 813.55),
	)

	// assert
	assert.Equal(t, "Dune Messiah", next.Title())
	assert.Equal(t, "Frank Herbert", next.Author())
	assert.Equal(t, 1969, next.PublicationYear())
	assert.Equal(t, 813.55, next.CatalogNumber())
	assert.Equal(t, []string{"alice", "bob"}, next.Borrowers())
	assert.Equal(t, helper.FixtureBook().Title(), current.Title())
}
