// Package postgreswrapper runs the same integration tests against every PostgreSQL adapter
// (pgx pool, sql.DB, sqlx.DB) of the book store.
//
// The adapter is picked by the ADAPTER_TYPE environment variable (pgx.pool, sql.db, sqlx.db; default pgx.pool),
// the database by BOOKRECORD_TEST_POSTGRES_DSN. Without a DSN the tests are skipped.
//
// Usage:
//
//	wrapper := CreateWrapperWithTestConfig(t)
//	defer wrapper.Close()
//	CleanUp(t, wrapper)
//	store := wrapper.GetBookStore()
package postgreswrapper
