package bookstore

import (
	"errors"
)

var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrEmptyTableName = errors.New("empty table name supplied")
var ErrEmptyBookID = errors.New("book id must not be empty")

var ErrBookNotFound = errors.New("book not found")
var ErrBookAlreadyExists = errors.New("book already exists")
var ErrConcurrencyConflict = errors.New("concurrency error, no rows were affected")

var ErrBuildingQueryFailed = errors.New("building query failed")
var ErrQueryingBookFailed = errors.New("querying book failed")
var ErrScanningDBRowFailed = errors.New("scanning db row failed")
var ErrSavingBookFailed = errors.New("saving book failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
var ErrCreatingTableFailed = errors.New("creating table failed")

// VersionUint is a type alias for uint, representing the version of a stored book.
// A book that was never stored has version 0, the first stored version is 1.
type VersionUint = uint

// BookIDString represents the storage identifier of a book record.
type BookIDString = string
