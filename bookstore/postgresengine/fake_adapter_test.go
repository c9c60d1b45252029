package postgresengine

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore/postgresengine/internal/adapters"
)

// fakeDB is a scripted adapters.DBAdapter that records every statement it receives.
type fakeDB struct {
	statements   []string
	queryRows    [][]any
	queryErr     error
	rowsErr      error
	scanErr      error
	closeErr     error
	execErr      error
	rowsAffected int64
	affectedErr  error
}

func (f *fakeDB) Query(_ context.Context, query string) (adapters.DBRows, error) {
	f.statements = append(f.statements, query)
	if f.queryErr != nil {
		return nil, f.queryErr
	}

	return &fakeRows{rows: f.queryRows, err: f.rowsErr, scanErr: f.scanErr, closeErr: f.closeErr}, nil
}

func (f *fakeDB) Exec(_ context.Context, query string) (adapters.DBResult, error) {
	f.statements = append(f.statements, query)
	if f.execErr != nil {
		return nil, f.execErr
	}

	return fakeResult{rowsAffected: f.rowsAffected, err: f.affectedErr}, nil
}

func (f *fakeDB) lastStatement() string {
	if len(f.statements) == 0 {
		return ""
	}

	return f.statements[len(f.statements)-1]
}

type fakeRows struct {
	rows     [][]any
	next     int
	err      error
	scanErr  error
	closeErr error
}

func (r *fakeRows) Next() bool {
	if r.next >= len(r.rows) {
		return false
	}
	r.next++

	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}

	row := r.rows[r.next-1]
	if len(row) != len(dest) {
		return errors.New("fake rows: column count mismatch")
	}

	for i, value := range row {
		switch target := dest[i].(type) {
		case *string:
			*target = value.(string)
		case *[]byte:
			*target = value.([]byte)
		case *int64:
			*target = value.(int64)
		default:
			return errors.New("fake rows: unsupported scan target")
		}
	}

	return nil
}

func (r *fakeRows) Err() error {
	return r.err
}

func (r *fakeRows) Close() error {
	return r.closeErr
}

type fakeResult struct {
	rowsAffected int64
	err          error
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, r.err
}
