package config

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore/postgresengine"
)

const sqlDriverName = "postgres"

// ErrConnectingFailed is returned when a database connection cannot be opened or does not answer a ping.
var ErrConnectingFailed = errors.New("connecting to postgres failed")

// PGXPoolConfig creates a pgxpool.Config from the postgres settings.
func PGXPoolConfig(cfg PostgresConfig) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	dbConfig.MaxConns = cfg.MaxConns
	dbConfig.MinConns = cfg.MinConns

	// zero durations keep the pgx defaults
	if cfg.MaxConnLifetime > 0 {
		dbConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		dbConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.HealthCheckPeriod > 0 {
		dbConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	}
	if cfg.ConnectTimeout > 0 {
		dbConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	return dbConfig, nil
}

// OpenPGXPool creates a pgx pool and checks that the database answers.
func OpenPGXPool(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	dbConfig, err := PGXPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return pool, nil
}

// OpenSQLDB opens a *sql.DB with the lib/pq driver, applies the pool settings, and pings it.
func OpenSQLDB(ctx context.Context, cfg PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open(sqlDriverName, cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	db.SetMaxOpenConns(int(cfg.MaxConns))
	db.SetMaxIdleConns(int(cfg.MinConns))
	db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	if pingErr := pingWithTimeout(ctx, cfg, db.PingContext); pingErr != nil {
		_ = db.Close() // the ping error is the one that matters
		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return db, nil
}

// OpenSQLX opens a *sqlx.DB with the lib/pq driver, applies the pool settings, and pings it.
func OpenSQLX(ctx context.Context, cfg PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(sqlDriverName, cfg.DSN)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	db.SetMaxOpenConns(int(cfg.MaxConns))
	db.SetMaxIdleConns(int(cfg.MinConns))
	db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	if pingErr := pingWithTimeout(ctx, cfg, db.PingContext); pingErr != nil {
		_ = db.Close() // the ping error is the one that matters
		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return db, nil
}

func pingWithTimeout(ctx context.Context, cfg PostgresConfig, ping func(context.Context) error) error {
	if cfg.ConnectTimeout <= 0 {
		return ping(ctx)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	return ping(pingCtx)
}

// OpenBookStore connects with the configured driver and returns a BookStore on the configured table.
// The returned close function releases the connection pool.
func OpenBookStore(
	ctx context.Context,
	cfg Config,
	options ...postgresengine.Option,
) (postgresengine.BookStore, func(), error) {

	options = append([]postgresengine.Option{postgresengine.WithTableName(cfg.BookStore.TableName)}, options...)

	switch cfg.Postgres.Driver {
	case DriverPGXPool:
		pool, err := OpenPGXPool(ctx, cfg.Postgres)
		if err != nil {
			return postgresengine.BookStore{}, nil, err
		}

		bs, err := postgresengine.NewBookStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return postgresengine.BookStore{}, nil, err
		}

		return bs, pool.Close, nil

	case DriverSQLDB:
		db, err := OpenSQLDB(ctx, cfg.Postgres)
		if err != nil {
			return postgresengine.BookStore{}, nil, err
		}

		closeDB := func() { _ = db.Close() }

		bs, err := postgresengine.NewBookStoreFromSQLDB(db, options...)
		if err != nil {
			closeDB()
			return postgresengine.BookStore{}, nil, err
		}

		return bs, closeDB, nil

	case DriverSQLX:
		db, err := OpenSQLX(ctx, cfg.Postgres)
		if err != nil {
			return postgresengine.BookStore{}, nil, err
		}

		closeDB := func() { _ = db.Close() }

		bs, err := postgresengine.NewBookStoreFromSQLX(db, options...)
		if err != nil {
			closeDB()
			return postgresengine.BookStore{}, nil, err
		}

		return bs, closeDB, nil

	default:
		return postgresengine.BookStore{}, nil, ErrUnsupportedDriver
	}
}
