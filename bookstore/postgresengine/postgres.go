package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
	"github.com/AntonStoeckl/library-bookrecord-go/bookstore/postgresengine/internal/adapters"
)

const (
	defaultTableName             = "book_records"
	logMsgBuildQueryFailed       = "failed to build query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgDBExecFailed           = "database execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgCreateTableFailed      = "failed to create table"
	logMsgBookLoaded             = "book loaded"
	logMsgBookInserted           = "book inserted"
	logMsgBookSaved              = "book saved"
	logMsgBookDeleted            = "book deleted"
	logMsgBookNotFound           = "book not found"
	logMsgBookAlreadyExists      = "book already exists"
	logMsgConcurrencyConflict    = "concurrency conflict detected"
	logMsgTableCreated           = "table created"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "bookstore operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrBookID                = "book_id"
	logAttrTable                 = "table"
	logAttrVersion               = "version"
	logAttrExpectedVersion       = "expected_version"
	logAttrDurationMS            = "duration_ms"
	logActionLoad                = "load"
	logActionInsert              = "insert"
	logActionSave                = "save"
	logActionDelete              = "delete"
	logActionCreateTable         = "create table"
	colBookID                    = "book_id"
	colTitle                     = "title"
	colPayload                   = "payload"
	colVersion                   = "version"
	dialectPostgres              = "postgres"
	castJsonb                    = "?::jsonb"
	firstVersion                 = bookstore.VersionUint(1)
	createTableStatementTemplate = `CREATE TABLE IF NOT EXISTS %[1]s (
	book_id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	payload JSONB NOT NULL,
	version BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS %[2]s ON %[1]s (title);`
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
)

// BookStore persists book records in a PostgreSQL table.
// It leverages a database adapter and supports customizable logging and table configuration.
type BookStore struct {
	db               adapters.DBAdapter
	tableName        string
	logger           bookstore.Logger
	contextualLogger bookstore.ContextualLogger
}

// NewBookStoreFromPGXPool creates a new BookStore using a pgx Pool with optional configuration.
func NewBookStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (BookStore, error) {
	if db == nil {
		return BookStore{}, bookstore.ErrNilDatabaseConnection
	}

	return newBookStore(adapters.NewPGXAdapter(db), options...)
}

// NewBookStoreFromSQLDB creates a new BookStore using a sql.DB with optional configuration.
// The sql.DB is expected to be opened with a postgres driver, e.g., github.com/lib/pq.
func NewBookStoreFromSQLDB(db *sql.DB, options ...Option) (BookStore, error) {
	if db == nil {
		return BookStore{}, bookstore.ErrNilDatabaseConnection
	}

	return newBookStore(adapters.NewSQLAdapter(db), options...)
}

// NewBookStoreFromSQLX creates a new BookStore using a sqlx.DB with optional configuration.
func NewBookStoreFromSQLX(db *sqlx.DB, options ...Option) (BookStore, error) {
	if db == nil {
		return BookStore{}, bookstore.ErrNilDatabaseConnection
	}

	return newBookStore(adapters.NewSQLXAdapter(db), options...)
}

func newBookStore(db adapters.DBAdapter, options ...Option) (BookStore, error) {
	bs := BookStore{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&bs); err != nil {
			return BookStore{}, err
		}
	}

	return bs, nil
}

// CreateTable creates the book table and its title index if they do not exist yet.
func (bs BookStore) CreateTable(ctx context.Context) error {
	statement := fmt.Sprintf(
		createTableStatementTemplate,
		quoteIdentifier(bs.tableName),
		quoteIdentifier(titleIndexName(bs.tableName)),
	)

	if _, _, err := bs.executeStatement(ctx, statement, logActionCreateTable); err != nil {
		bs.logError(ctx, logMsgCreateTableFailed, err, logAttrTable, bs.tableName)
		return errors.Join(bookstore.ErrCreatingTableFailed, err)
	}

	bs.logOperation(ctx, logMsgTableCreated, logAttrTable, bs.tableName)

	return nil
}

// Load retrieves the book with the given ID together with its current version.
// Returns bookstore.ErrBookNotFound if no such book is stored.
func (bs BookStore) Load(ctx context.Context, bookID bookstore.BookIDString) (
	bookstore.StoredBook,
	bookstore.VersionUint,
	error,
) {

	sqlQuery, err := bs.buildSelectQuery(bookID)
	if err != nil {
		return bookstore.StoredBook{}, 0, err
	}

	start := time.Now()
	rows, queryErr := bs.db.Query(ctx, sqlQuery)
	bs.logQueryWithDuration(ctx, sqlQuery, logActionLoad, time.Since(start))

	if queryErr != nil {
		bs.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return bookstore.StoredBook{}, 0, errors.Join(bookstore.ErrQueryingBookFailed, queryErr)
	}
	defer bs.closeRows(ctx, rows)

	storedBook, version, err := bs.scanSingleBook(ctx, bookID, rows)
	if err != nil {
		return bookstore.StoredBook{}, 0, err
	}

	bs.logOperation(ctx, logMsgBookLoaded, logAttrBookID, bookID, logAttrVersion, version)

	return storedBook, version, nil
}

// scanSingleBook reads the one row a select by primary key can return.
func (bs BookStore) scanSingleBook(
	ctx context.Context,
	bookID bookstore.BookIDString,
	rows adapters.DBRows,
) (bookstore.StoredBook, bookstore.VersionUint, error) {

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			bs.logError(ctx, logMsgDBQueryFailed, rowsErr, logAttrBookID, bookID)
			return bookstore.StoredBook{}, 0, errors.Join(bookstore.ErrQueryingBookFailed, rowsErr)
		}

		bs.logOperation(ctx, logMsgBookNotFound, logAttrBookID, bookID)

		return bookstore.StoredBook{}, 0, bookstore.ErrBookNotFound
	}

	var title string
	var payload []byte
	var version int64

	if scanErr := rows.Scan(&title, &payload, &version); scanErr != nil {
		bs.logError(ctx, logMsgScanRowFailed, scanErr, logAttrBookID, bookID)
		return bookstore.StoredBook{}, 0, errors.Join(bookstore.ErrScanningDBRowFailed, scanErr)
	}

	storedBook, buildErr := bookstore.BuildStoredBook(bookID, title, payload)
	if buildErr != nil {
		bs.logError(ctx, logMsgScanRowFailed, buildErr, logAttrBookID, bookID)
		return bookstore.StoredBook{}, 0, errors.Join(bookstore.ErrScanningDBRowFailed, buildErr)
	}

	return storedBook, bookstore.VersionUint(version), nil
}

// Insert stores a new book with version 1.
// Returns bookstore.ErrBookAlreadyExists if a book with the same ID is already stored.
func (bs BookStore) Insert(ctx context.Context, storedBook bookstore.StoredBook) (bookstore.VersionUint, error) {
	sqlQuery, err := bs.buildInsertQuery(storedBook)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := bs.executeWrite(ctx, sqlQuery, logActionInsert)
	if err != nil {
		return 0, err
	}

	if rowsAffected == 0 {
		bs.logOperation(ctx, logMsgBookAlreadyExists, logAttrBookID, storedBook.BookID)
		return 0, bookstore.ErrBookAlreadyExists
	}

	bs.logOperation(ctx, logMsgBookInserted, logAttrBookID, storedBook.BookID, logAttrVersion, firstVersion)

	return firstVersion, nil
}

// Save overwrites a stored book if its stored version still equals expectedVersion and returns the new version.
//
// Returns bookstore.ErrConcurrencyConflict if the book was changed (or deleted) since it was loaded.
// The caller should then reload the book, re-apply its change, and try again.
func (bs BookStore) Save(
	ctx context.Context,
	storedBook bookstore.StoredBook,
	expectedVersion bookstore.VersionUint,
) (bookstore.VersionUint, error) {

	sqlQuery, err := bs.buildUpdateQuery(storedBook, expectedVersion)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := bs.executeWrite(ctx, sqlQuery, logActionSave)
	if err != nil {
		return 0, err
	}

	if rowsAffected == 0 {
		bs.logOperation(
			ctx,
			logMsgConcurrencyConflict,
			logAttrBookID, storedBook.BookID,
			logAttrExpectedVersion, expectedVersion,
		)

		return 0, bookstore.ErrConcurrencyConflict
	}

	newVersion := expectedVersion + 1
	bs.logOperation(ctx, logMsgBookSaved, logAttrBookID, storedBook.BookID, logAttrVersion, newVersion)

	return newVersion, nil
}

// Delete removes the book with the given ID.
// Returns bookstore.ErrBookNotFound if no such book is stored.
func (bs BookStore) Delete(ctx context.Context, bookID bookstore.BookIDString) error {
	sqlQuery, err := bs.buildDeleteQuery(bookID)
	if err != nil {
		return err
	}

	rowsAffected, err := bs.executeWrite(ctx, sqlQuery, logActionDelete)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		bs.logOperation(ctx, logMsgBookNotFound, logAttrBookID, bookID)
		return bookstore.ErrBookNotFound
	}

	bs.logOperation(ctx, logMsgBookDeleted, logAttrBookID, bookID)

	return nil
}

// executeWrite executes an insert, update, or delete statement and returns the number of affected rows.
func (bs BookStore) executeWrite(ctx context.Context, sqlQuery string, action string) (rowsAffectedInt64, error) {
	result, _, execErr := bs.executeStatement(ctx, sqlQuery, action)
	if execErr != nil {
		bs.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return 0, errors.Join(bookstore.ErrSavingBookFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		bs.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, errors.Join(bookstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

// executeStatement executes the SQL statement and returns the result with timing information.
func (bs BookStore) executeStatement(ctx context.Context, sqlQuery string, action string) (
	adapters.DBResult,
	time.Duration,
	error,
) {

	start := time.Now()
	result, err := bs.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	bs.logQueryWithDuration(ctx, sqlQuery, action, duration)

	return result, duration, err
}

// closeRows safely closes database rows and logs any errors.
func (bs BookStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		bs.logWarn(ctx, logMsgCloseRowsFailed, closeErr)
	}
}

func (bs BookStore) buildSelectQuery(bookID bookstore.BookIDString) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(bs.tableName).
		Select(colTitle, colPayload, colVersion).
		Where(goqu.C(colBookID).Eq(bookID))

	return bs.toSQL(selectStmt)
}

func (bs BookStore) buildInsertQuery(storedBook bookstore.StoredBook) (sqlQueryString, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(bs.tableName).
		Rows(goqu.Record{
			colBookID:  storedBook.BookID,
			colTitle:   storedBook.Title,
			colPayload: goqu.L(castJsonb, storedBook.PayloadJSON),
			colVersion: firstVersion,
		}).
		OnConflict(goqu.DoNothing())

	return bs.toSQL(insertStmt)
}

func (bs BookStore) buildUpdateQuery(
	storedBook bookstore.StoredBook,
	expectedVersion bookstore.VersionUint,
) (sqlQueryString, error) {

	updateStmt := goqu.Dialect(dialectPostgres).
		Update(bs.tableName).
		Set(goqu.Record{
			colTitle:   storedBook.Title,
			colPayload: goqu.L(castJsonb, storedBook.PayloadJSON),
			colVersion: expectedVersion + 1,
		}).
		Where(
			goqu.C(colBookID).Eq(storedBook.BookID),
			goqu.C(colVersion).Eq(expectedVersion),
		)

	return bs.toSQL(updateStmt)
}

func (bs BookStore) buildDeleteQuery(bookID bookstore.BookIDString) (sqlQueryString, error) {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(bs.tableName).
		Where(goqu.C(colBookID).Eq(bookID))

	return bs.toSQL(deleteStmt)
}

// sqlBuilder is the part of the goqu datasets needed to render a statement.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func (bs BookStore) toSQL(builder sqlBuilder) (sqlQueryString, error) {
	sqlQuery, _, toSQLErr := builder.ToSQL()
	if toSQLErr != nil {
		bs.logError(context.Background(), logMsgBuildQueryFailed, toSQLErr)
		return "", errors.Join(bookstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// quoteIdentifier renders a table or index name as a quoted postgres identifier.
// A schema qualified name like "library.book_records" is split the same way the query builders split it.
func quoteIdentifier(name string) string {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).From(goqu.I(name)).ToSQL()
	if err != nil {
		return name
	}

	// goqu renders `SELECT * FROM "name"`, keep the quoted part only
	return sqlQuery[len(`SELECT * FROM `):]
}

// titleIndexName derives the index name from the table part only, postgres puts an index into its table's schema.
func titleIndexName(tableName string) string {
	if i := strings.LastIndex(tableName, "."); i >= 0 {
		tableName = tableName[i+1:]
	}

	return tableName + "_title_idx"
}
