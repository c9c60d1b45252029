// Package borrowerqueue provides the first-in-first-out waiting line of borrowers for one library book.
//
// The oldest request is at the front: whoever asked first gets the book first.
// There is no priority and no deduplication, the same borrower ID may be enqueued repeatedly.
//
// Queue has value semantics. Mutating operations never write into storage that a copy
// could share, so a plain assignment already yields an independent queue:
//
//	q := borrowerqueue.New("alice")
//	c := q
//	c.Enqueue("bob") // q still holds only "alice"
//
// Accessing the front of an empty queue is a precondition violation, reported explicitly via ErrEmptyQueue.
package borrowerqueue
