// Package book contains the record type for one library book:
// its catalog metadata plus the queue of borrowers waiting for it.
//
// A Book is a value. Copies (plain assignment, Clone, CopyFrom) never share the borrower queue,
// so a copy can be mutated without affecting the original.
//
// The borrowing state follows from the queue alone:
//   - Available: no borrower pending, CurrentBorrower returns ""
//   - OnLoan: the front of the queue holds the book, everyone behind waits
//
// Transitions are caller-driven via AddBorrower and RemoveBorrower.
//
// Books compare by title only (see CompareByTitle and friends). This is meant for sorting
// and searching collections of books, not for full record equality.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package book
