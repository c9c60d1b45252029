package helper

import (
	"context"
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
)

type inMemoryRecord struct {
	storedBook bookstore.StoredBook
	version    bookstore.VersionUint
}

// InMemoryBookStore keeps stored books in a map and enforces the same version rules as the postgres engine.
type InMemoryBookStore struct {
	mu              sync.Mutex
	records         map[bookstore.BookIDString]inMemoryRecord
	beforeSaveHooks []func()
	saveCalls       int
}

// NewInMemoryBookStore creates an empty InMemoryBookStore.
func NewInMemoryBookStore() *InMemoryBookStore {
	return &InMemoryBookStore{records: make(map[bookstore.BookIDString]inMemoryRecord)}
}

// Insert implements the BookStore interface of the circulation package.
func (s *InMemoryBookStore) Insert(_ context.Context, storedBook bookstore.StoredBook) (bookstore.VersionUint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[storedBook.BookID]; ok {
		return 0, bookstore.ErrBookAlreadyExists
	}

	s.records[storedBook.BookID] = inMemoryRecord{storedBook: copyStoredBook(storedBook), version: 1}

	return 1, nil
}

// Load implements the BookStore interface of the circulation package.
func (s *InMemoryBookStore) Load(_ context.Context, bookID bookstore.BookIDString) (
	bookstore.StoredBook,
	bookstore.VersionUint,
	error,
) {

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[bookID]
	if !ok {
		return bookstore.StoredBook{}, 0, bookstore.ErrBookNotFound
	}

	return copyStoredBook(record.storedBook), record.version, nil
}

// Save implements the BookStore interface of the circulation package.
// Hooks registered with BeforeNextSave run first, outside the lock, so they can write concurrently.
func (s *InMemoryBookStore) Save(
	ctx context.Context,
	storedBook bookstore.StoredBook,
	expectedVersion bookstore.VersionUint,
) (bookstore.VersionUint, error) {

	s.mu.Lock()
	s.saveCalls++
	var hook func()
	if len(s.beforeSaveHooks) > 0 {
		hook = s.beforeSaveHooks[0]
		s.beforeSaveHooks = s.beforeSaveHooks[1:]
	}
	s.mu.Unlock()

	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[storedBook.BookID]
	if !ok || record.version != expectedVersion {
		return 0, bookstore.ErrConcurrencyConflict
	}

	s.records[storedBook.BookID] = inMemoryRecord{storedBook: copyStoredBook(storedBook), version: expectedVersion + 1}

	return expectedVersion + 1, nil
}

// BeforeNextSave registers a function that runs at the start of the next Save call, e.g. a competing write.
func (s *InMemoryBookStore) BeforeNextSave(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beforeSaveHooks = append(s.beforeSaveHooks, hook)
}

// BumpVersion simulates a competing write that changes nothing but the version of a stored book.
func (s *InMemoryBookStore) BumpVersion(bookID bookstore.BookIDString) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record, ok := s.records[bookID]; ok {
		record.version++
		s.records[bookID] = record
	}
}

// SaveCalls returns how often Save was called.
func (s *InMemoryBookStore) SaveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveCalls
}

// Version returns the current version of a stored book, 0 if it is unknown.
func (s *InMemoryBookStore) Version(bookID bookstore.BookIDString) bookstore.VersionUint {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.records[bookID].version
}

func copyStoredBook(storedBook bookstore.StoredBook) bookstore.StoredBook {
	storedBook.PayloadJSON = slices.Clone(storedBook.PayloadJSON)
	return storedBook
}
