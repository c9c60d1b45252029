package config

import (
	"os"
)

// TestDSNEnv names the environment variable holding the DSN of the integration test database.
const TestDSNEnv = "BOOKRECORD_TEST_POSTGRES_DSN"

// TestDSN returns the DSN of the integration test database, or "" if none is configured.
func TestDSN() string {
	return os.Getenv(TestDSNEnv)
}

// TestConfig returns a valid Config for the integration test database using the given driver.
func TestConfig(driver string) Config {
	return Config{
		Postgres: PostgresConfig{
			DSN:      TestDSN(),
			Driver:   driver,
			MaxConns: 8,
			MinConns: 2,
		},
		BookStore: BookStoreConfig{TableName: "book_records_test"},
		Log:       LogConfig{Level: "debug"},
	}
}
