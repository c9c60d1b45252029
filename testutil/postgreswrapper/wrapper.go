package postgreswrapper

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore/postgresengine"
	"github.com/AntonStoeckl/library-bookrecord-go/config"
)

// Wrapper abstracts over the different engine types.
type Wrapper interface {
	GetBookStore() postgresengine.BookStore
	TableName() string
	Close()
}

type storeWrapper struct {
	bs        postgresengine.BookStore
	tableName string
	closeFn   func()
}

func (w *storeWrapper) GetBookStore() postgresengine.BookStore {
	return w.bs
}

func (w *storeWrapper) TableName() string {
	return w.tableName
}

func (w *storeWrapper) Close() {
	w.closeFn()
}

// CreateWrapperWithTestConfig creates a wrapper for the adapter named in ADAPTER_TYPE, with the book table in place.
// It skips the test if no test database is configured.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	if config.TestDSN() == "" {
		t.Skipf("set %s to run the postgres integration tests", config.TestDSNEnv)
	}

	driver := strings.ToLower(os.Getenv("ADAPTER_TYPE"))
	if driver == "" {
		driver = config.DriverPGXPool
	}

	cfg := config.TestConfig(driver)
	ctx := context.Background()

	bs, closeFn, err := config.OpenBookStore(ctx, cfg, options...)
	require.NoError(t, err, "error creating the book store in test setup")

	require.NoError(t, bs.CreateTable(ctx), "error creating the book table in test setup")

	return &storeWrapper{bs: bs, tableName: cfg.BookStore.TableName, closeFn: closeFn}
}

// CleanUp removes all rows from the book table of the given wrapper.
func CleanUp(t testing.TB, wrapper Wrapper) {
	ctx := context.Background()
	db, err := config.OpenSQLDB(ctx, config.TestConfig(config.DriverSQLDB).Postgres)
	require.NoError(t, err, "error connecting for clean up")
	defer func() { _ = db.Close() }()

	_, err = db.ExecContext(ctx, "TRUNCATE TABLE "+wrapper.TableName())
	require.NoError(t, err, "error cleaning up the book table")
}
