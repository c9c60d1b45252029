package borrowerqueue

import (
	"errors"
	"iter"
	"slices"
)

// ErrEmptyQueue is returned when the front of an empty queue is accessed or removed.
var ErrEmptyQueue = errors.New("borrower queue is empty")

// BorrowerIDString represents a borrower identifier.
type BorrowerIDString = string

// Queue is an ordered FIFO sequence of borrower identifiers.
//
// The zero value is an empty queue ready to use.
type Queue struct {
	items []BorrowerIDString
}

// New creates a Queue holding the given borrower IDs, the first one at the front.
func New(borrowerIDs ...BorrowerIDString) Queue {
	return Queue{items: slices.Clone(borrowerIDs)}
}

// IsEmpty returns true if no borrowers are pending.
func (q Queue) IsEmpty() bool {
	return len(q.items) == 0
}

// Len returns the number of pending borrowers.
func (q Queue) Len() int {
	return len(q.items)
}

// Enqueue appends the borrower ID at the back of the queue.
//
// Every call copies the pending IDs into a fresh backing array, so its cost is linear in Len.
// This keeps a plainly assigned copy of the Queue independent of the original.
func (q *Queue) Enqueue(borrowerID BorrowerIDString) {
	// capping the capacity forces append to allocate
	n := len(q.items)
	q.items = append(q.items[:n:n], borrowerID)
}

// Dequeue removes and returns the borrower ID at the front of the queue.
func (q *Queue) Dequeue() (BorrowerIDString, error) {
	if q.IsEmpty() {
		return "", ErrEmptyQueue
	}

	front := q.items[0]
	q.items = q.items[1:]

	if len(q.items) == 0 {
		q.items = nil
	}

	return front, nil
}

// Front returns the borrower ID at the front of the queue without removing it.
func (q Queue) Front() (BorrowerIDString, error) {
	if q.IsEmpty() {
		return "", ErrEmptyQueue
	}

	return q.items[0], nil
}

// Clone returns an independent copy with the same borrower IDs in the same order.
func (q Queue) Clone() Queue {
	return Queue{items: slices.Clone(q.items)}
}

// Items returns a snapshot of the pending borrower IDs, front first.
// Modifying the returned slice does not affect the queue.
func (q Queue) Items() []BorrowerIDString {
	if q.IsEmpty() {
		return []BorrowerIDString{}
	}

	return slices.Clone(q.items)
}

// All iterates over the pending borrower IDs from front to back.
func (q Queue) All() iter.Seq[BorrowerIDString] {
	return slices.Values(q.items)
}

// Equal reports whether both queues hold the same borrower IDs in the same order.
func (q Queue) Equal(other Queue) bool {
	return slices.Equal(q.items, other.items)
}
