package book

// BorrowingState is the observable borrowing state of a Book.
type BorrowingState int

const (
	// Available means no borrower is pending.
	Available BorrowingState = iota

	// OnLoan means at least one borrower is pending, the front one holds the book.
	OnLoan
)

// String provides a string representation of BorrowingState for logging and debugging.
func (s BorrowingState) String() string {
	switch s {
	case Available:
		return "available"
	case OnLoan:
		return "on_loan"
	default:
		return "unknown"
	}
}
